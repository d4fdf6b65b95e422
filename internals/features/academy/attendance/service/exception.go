// file: internals/features/academy/attendance/service/exception.go
package service

import (
	"regexp"
	"strings"
)

/* =========================
   Schedule exception parsing
   ========================= */

// ExceptionSchedule is one per-date override parsed from the course's
// free-text schedule_change field:
//
//	20241005=09:00~18:00(12:00~13:00)   class window + explicit lunch
//	20241006=10:00~14:00                class window, explicitly no lunch
//
// A segment without the parenthetical part means "no lunch break that
// day" — deliberately not the same as inheriting the course default lunch,
// so HasExplicitLunch is true with a zero-width window.
type ExceptionSchedule struct {
	Start            int
	End              int
	LunchStart       int
	LunchEnd         int
	HasExplicitLunch bool
}

var (
	segmentSplitRe = regexp.MustCompile(`[\n,]+`)
	nonDigitRe     = regexp.MustCompile(`[^0-9]`)
)

// ParseExceptionSchedules parses the whole override text into a per-date
// map keyed by normalized YYYYMMDD. Malformed segments are skipped; the
// rest of the text is still honored.
func ParseExceptionSchedules(raw string) map[string]ExceptionSchedule {
	out := make(map[string]ExceptionSchedule)
	if raw == "" {
		return out
	}

	for _, segment := range segmentSplitRe.Split(raw, -1) {
		pair := strings.Split(segment, "=")
		if len(pair) != 2 {
			continue
		}

		dateKey := nonDigitRe.ReplaceAllString(strings.TrimSpace(pair[0]), "")
		if len(dateKey) != 8 {
			continue
		}
		content := strings.TrimSpace(pair[1])

		var start, end, lunchStart, lunchEnd int
		hasExplicitLunch := false

		if open := strings.Index(content, "("); open >= 0 && strings.Contains(content, ")") {
			classPart := strings.TrimSpace(content[:open])
			lunchPart := strings.TrimSpace(strings.Replace(content[open+1:], ")", "", 1))

			if ct := strings.Split(classPart, "~"); len(ct) == 2 {
				start = TimeToMinutes(strings.TrimSpace(ct[0]))
				end = TimeToMinutes(strings.TrimSpace(ct[1]))
			}
			if lt := strings.Split(lunchPart, "~"); len(lt) == 2 {
				lunchStart = TimeToMinutes(strings.TrimSpace(lt[0]))
				lunchEnd = TimeToMinutes(strings.TrimSpace(lt[1]))
				hasExplicitLunch = true
			}
		} else if ct := strings.Split(content, "~"); len(ct) == 2 {
			start = TimeToMinutes(strings.TrimSpace(ct[0]))
			end = TimeToMinutes(strings.TrimSpace(ct[1]))
			hasExplicitLunch = true // explicit "no lunch" marker
		}

		if start > 0 && end > 0 {
			out[dateKey] = ExceptionSchedule{
				Start:            start,
				End:              end,
				LunchStart:       lunchStart,
				LunchEnd:         lunchEnd,
				HasExplicitLunch: hasExplicitLunch,
			}
		}
	}
	return out
}
