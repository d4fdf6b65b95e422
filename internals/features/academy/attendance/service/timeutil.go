// file: internals/features/academy/attendance/service/timeutil.go
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

/* =========================
   Time helpers (HH:MM ↔ minutes)
   ========================= */

// TimeToMinutes converts "HH:MM" (1-2 digit hour, extra ":SS" tolerated)
// to minutes since midnight. Empty or malformed input degrades to 0 so one
// bad value never fails a whole computation.
func TimeToMinutes(s string) int {
	if s == "" || !strings.Contains(s, ":") {
		return 0
	}
	parts := strings.Split(s, ":")
	h, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	return h*60 + m
}

// FormatSignedHHMM renders a minute total as zero-padded "HH:MM" with a
// leading "-" for negative values. Display only, never fed back into math.
func FormatSignedHHMM(totalMinutes int) string {
	sign := ""
	if totalMinutes < 0 {
		sign = "-"
		totalMinutes = -totalMinutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, totalMinutes/60, totalMinutes%60)
}

// RegistryTimeMissing is what FormatRegistryTime returns when a raw
// check-in/out value is too short to be a timestamp.
const RegistryTimeMissing = "-"

// FormatRegistryTime normalizes a raw registry timestamp to "HH:MM". The
// registry sends either colon-delimited ("09:00:00") or concatenated
// ("0900") forms.
func FormatRegistryTime(raw string) string {
	if len(raw) < 4 {
		return RegistryTimeMissing
	}
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ":") {
		if len(s) > 5 {
			s = s[:5]
		}
		return s
	}
	if len(s) < 4 {
		return RegistryTimeMissing
	}
	return s[:2] + ":" + s[2:4]
}

/* =========================
   Date helpers (YYYYMMDD)
   ========================= */

// CompactDate strips the dashes from an ISO date ("2026-01-15" → "20260115").
func CompactDate(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "-", "")
}

func TodayYYYYMMDD(now time.Time) string {
	return now.Format("20060102")
}

// EffectiveEndDate caps a course end date at today: attendance past the
// current date cannot exist yet.
func EffectiveEndDate(endYYYYMMDD string, now time.Time) string {
	today := TodayYYYYMMDD(now)
	if endYYYYMMDD < today {
		return endYYYYMMDD
	}
	return today
}

// MonthSpan lists the inclusive YYYYMM chunks covered by [start, end]
// (both YYYYMMDD). The registry is queried one month at a time.
func MonthSpan(start, end string) []string {
	if len(start) < 6 || len(end) < 6 || start[:6] > end[:6] {
		return nil
	}
	sy, _ := strconv.Atoi(start[:4])
	sm, _ := strconv.Atoi(start[4:6])
	ey, _ := strconv.Atoi(end[:4])
	em, _ := strconv.Atoi(end[4:6])

	var months []string
	for y, m := sy, sm; y < ey || (y == ey && m <= em); {
		months = append(months, fmt.Sprintf("%04d%02d", y, m))
		m++
		if m > 12 {
			m = 1
			y++
		}
	}
	return months
}
