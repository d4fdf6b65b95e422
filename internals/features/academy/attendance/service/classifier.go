// file: internals/features/academy/attendance/service/classifier.go
package service

import (
	"strings"

	"academyops_backend/internals/features/academy/registry"
)

/* =========================
   Day classification
   ========================= */

type DayCategory string

const (
	DayBlank             DayCategory = "blank" // after a dropout; contributes nothing
	DayAbsent            DayCategory = "absent"
	DayDropout           DayCategory = "dropout"
	DayExcused           DayCategory = "excused"
	DayPresentComplete   DayCategory = "present-complete"
	DayPresentIncomplete DayCategory = "present-incomplete"
)

// Registry status vocabulary (HRD wire values).
const (
	statusCodeDropout = "99"
	statusCodeAbsent  = "02"
	statusNameAbsent  = "결석"
	textDropout       = "중도탈락"
	textCompleted     = "충족(수료)"
	textExpelled      = "제적"
	textMissing       = "-"
	textPerfect       = "O"
)

// Excused-presence codes earn a full day without timestamp arithmetic.
var excusedStatusCodes = map[string]bool{"06": true, "07": true, "09": true}

// Cell colors shared with the dashboard front-end.
const (
	colorBlank   = "#efefef"
	colorAbsent  = "#f4c7c3"
	colorDropout = "#ea9999"
	colorExcused = "#c9daf8"
	colorPerfect = "#d9ead3"
	colorPartial = "#fce8b2"
)

// Check-in/out within this many minutes of the scheduled boundary snaps to
// the boundary.
const graceMinutes = 10

// DailyClassification is the outcome for one student on one date.
type DailyClassification struct {
	Category           DayCategory
	NetMinutes         int
	UncompletedMinutes int
	DisplayText        string
	DisplayColor       string
}

type dayContext struct {
	sched      ResolvedDailySchedule
	hasLog     bool
	statusCode string
	statusName string
	inTime     string
	outTime    string
}

type dayRule struct {
	name  string
	match func(dayContext) bool
	apply func(dayContext) DailyClassification
}

// dayRules is a priority-ordered decision list: first match wins, and the
// order here carries the semantics (a "99" row must never be read as a
// presence, an absent label beats excused codes, and so on).
var dayRules = []dayRule{
	{
		name:  "no-record",
		match: func(d dayContext) bool { return !d.hasLog },
		apply: func(d dayContext) DailyClassification {
			return classifyAbsent(d, textMissing)
		},
	},
	{
		name:  "dropout",
		match: func(d dayContext) bool { return d.statusCode == statusCodeDropout },
		apply: func(d dayContext) DailyClassification {
			return DailyClassification{Category: DayDropout, DisplayText: textDropout, DisplayColor: colorDropout}
		},
	},
	{
		name: "absent",
		match: func(d dayContext) bool {
			return d.statusCode == statusCodeAbsent || d.statusName == statusNameAbsent
		},
		apply: func(d dayContext) DailyClassification {
			return classifyAbsent(d, statusNameAbsent)
		},
	},
	{
		name: "excused",
		match: func(d dayContext) bool {
			if d.statusCode == "" && d.statusName != "" && d.statusName != statusNameAbsent {
				return true
			}
			return excusedStatusCodes[d.statusCode]
		},
		apply: func(d dayContext) DailyClassification {
			return DailyClassification{
				Category:     DayExcused,
				NetMinutes:   d.sched.FullCreditMinutes,
				DisplayText:  d.statusName,
				DisplayColor: colorExcused,
			}
		},
	},
	{
		// Partial timestamp data earns zero credit, not partial credit.
		name: "incomplete-timestamps",
		match: func(d dayContext) bool {
			return d.inTime == RegistryTimeMissing || d.outTime == RegistryTimeMissing
		},
		apply: func(d dayContext) DailyClassification {
			cls := classifyAbsent(d, textMissing)
			cls.Category = DayPresentIncomplete
			return cls
		},
	},
	{
		name:  "present",
		match: func(d dayContext) bool { return true },
		apply: classifyPresent,
	},
}

// ClassifyDay resolves one student-date into a category and its minute
// contribution. priorDropout short-circuits everything: the date renders
// blank and contributes nothing, which the caller threads from the first
// dropout onward.
func ClassifyDay(log *registry.LogEntry, sched ResolvedDailySchedule, priorDropout bool) DailyClassification {
	if priorDropout {
		return DailyClassification{Category: DayBlank, DisplayColor: colorBlank}
	}

	d := dayContext{sched: sched}
	if log != nil {
		d.hasLog = true
		d.statusCode = strings.TrimSpace(log.StatusCode)
		d.statusName = strings.TrimSpace(log.StatusName)
		d.inTime = FormatRegistryTime(log.CheckInTime)
		d.outTime = FormatRegistryTime(log.CheckOutTime)
	}

	for _, rule := range dayRules {
		if rule.match(d) {
			return rule.apply(d)
		}
	}
	// unreachable: the present rule always matches
	return DailyClassification{}
}

func classifyAbsent(d dayContext, text string) DailyClassification {
	return DailyClassification{
		Category:           DayAbsent,
		UncompletedMinutes: d.sched.FullCreditMinutes,
		DisplayText:        text,
		DisplayColor:       colorAbsent,
	}
}

// classifyPresent runs the timestamp-adjustment algorithm: grace snap at
// both boundaries, lunch overlap against the adjusted window, then clamp
// into [0, full credit].
func classifyPresent(d dayContext) DailyClassification {
	actualIn := TimeToMinutes(d.inTime)
	actualOut := TimeToMinutes(d.outTime)

	recognizedIn := actualIn
	if actualIn <= d.sched.Start+graceMinutes {
		recognizedIn = d.sched.Start
	}
	recognizedOut := actualOut
	if actualOut >= d.sched.End-graceMinutes {
		recognizedOut = d.sched.End
	}

	net := (recognizedOut - recognizedIn) - lunchOverlap(recognizedIn, recognizedOut, d.sched.LunchStart, d.sched.LunchEnd)
	if net > d.sched.FullCreditMinutes {
		net = d.sched.FullCreditMinutes
	}
	if net < 0 {
		net = 0
	}

	cls := DailyClassification{
		Category:           DayPresentComplete,
		NetMinutes:         net,
		UncompletedMinutes: d.sched.FullCreditMinutes - net,
	}
	if cls.UncompletedMinutes == 0 {
		cls.DisplayText, cls.DisplayColor = textPerfect, colorPerfect
	} else {
		cls.DisplayText, cls.DisplayColor = d.inTime+"\n"+d.outTime, colorPartial
	}
	return cls
}
