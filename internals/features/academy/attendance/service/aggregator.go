// file: internals/features/academy/attendance/service/aggregator.go
package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"academyops_backend/internals/features/academy/attendance/dto"
	"academyops_backend/internals/features/academy/registry"
)

/* =========================
   Completion thresholds
   ========================= */

// 80% of the contractual hours must be attended; at most 20% may be missed.
type CompletionThresholds struct {
	TargetCompletionMin    int
	MaxAllowableAbsenceMin int
}

func ThresholdsFor(totalCourseHours float64) CompletionThresholds {
	total := totalCourseHours * 60
	return CompletionThresholds{
		TargetCompletionMin:    int(math.Round(total * 0.8)),
		MaxAllowableAbsenceMin: int(math.Round(total * 0.2)),
	}
}

type Verdict string

const (
	VerdictCompleted  Verdict = "completed"
	VerdictDroppedOut Verdict = "dropped-out"
	VerdictFailed     Verdict = "failed"
	VerdictAtRisk     Verdict = "at-risk"
	VerdictInProgress Verdict = "in-progress"
)

// A student whose remaining allowable absence falls under 4 hours is
// flagged before they actually fail.
const atRiskThresholdMin = 240

/* =========================
   Per-student aggregation
   ========================= */

type StudentAggregate struct {
	AttendedMinutes    int
	UncompletedMinutes int
	AttendCount        int
	AbsentCount        int
	DroppedOut         bool
	Verdict            Verdict
	Daily              map[string]DailyClassification
}

// AggregateStudent folds the ascending date sequence into the student's
// totals. The fold carries the dropout flag explicitly: the dropout date
// itself renders once (counted in neither attend nor absent), every later
// date renders blank and contributes nothing — not a zero-credit absence.
func AggregateStudent(dates []string, logsByDate map[string]*registry.LogEntry, schedules map[string]ResolvedDailySchedule, th CompletionThresholds) StudentAggregate {
	agg := StudentAggregate{Daily: make(map[string]DailyClassification, len(dates))}

	for _, date := range dates {
		cls := ClassifyDay(logsByDate[date], schedules[date], agg.DroppedOut)
		agg.Daily[date] = cls

		switch cls.Category {
		case DayBlank:
			continue
		case DayDropout:
			agg.DroppedOut = true
			continue
		case DayExcused, DayPresentComplete:
			agg.AttendCount++
		case DayAbsent, DayPresentIncomplete:
			agg.AbsentCount++
		}

		agg.AttendedMinutes += cls.NetMinutes
		agg.UncompletedMinutes += cls.UncompletedMinutes
	}

	agg.Verdict = verdictFor(agg, th)
	return agg
}

// verdictFor applies the documented precedence: a student who reached the
// completion target is completed even if a dropout record follows.
func verdictFor(agg StudentAggregate, th CompletionThresholds) Verdict {
	switch {
	case agg.AttendedMinutes >= th.TargetCompletionMin:
		return VerdictCompleted
	case agg.DroppedOut:
		return VerdictDroppedOut
	case agg.UncompletedMinutes > th.MaxAllowableAbsenceMin:
		return VerdictFailed
	case th.MaxAllowableAbsenceMin-agg.UncompletedMinutes < atRiskThresholdMin:
		return VerdictAtRisk
	default:
		return VerdictInProgress
	}
}

/* =========================
   Course-level orchestration
   ========================= */

// ComputeAttendance reconciles the raw registry logs against the course's
// calendar: window the logs to [start, min(end, today)], resolve each
// date's schedule, aggregate every student, and assemble the dashboard
// payload (course header is filled by the caller).
func ComputeAttendance(cfg CourseScheduleConfig, rawLogs []registry.LogEntry, now time.Time) *dto.CourseAttendanceResult {
	startDate := cfg.StartDate
	effectiveEnd := EffectiveEndDate(cfg.EndDate, now)

	exceptions := ParseExceptionSchedules(cfg.ScheduleExceptionsRaw)
	th := ThresholdsFor(cfg.TotalCourseHours)

	type studentLogs struct {
		name string
		logs map[string]*registry.LogEntry
	}

	dateSet := make(map[string]struct{})
	students := make(map[string]*studentLogs)
	for i := range rawLogs {
		entry := &rawLogs[i]
		d := strings.TrimSpace(entry.Date)
		if len(d) != 8 || d < startDate || d > effectiveEnd {
			continue
		}
		dateSet[d] = struct{}{}
		st, ok := students[entry.StudentID]
		if !ok {
			st = &studentLogs{name: entry.StudentName, logs: make(map[string]*registry.LogEntry)}
			students[entry.StudentID] = st
		}
		st.logs[d] = entry
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	schedules := make(map[string]ResolvedDailySchedule, len(dates))
	for _, d := range dates {
		schedules[d] = ResolveDay(d, cfg, exceptions)
	}

	// deterministic row order: by display name, then registry id
	ids := make([]string, 0, len(students))
	for id := range students {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := students[ids[i]], students[ids[j]]
		if a.name != b.name {
			return a.name < b.name
		}
		return ids[i] < ids[j]
	})

	res := &dto.CourseAttendanceResult{
		Dates:    make([]string, 0, len(dates)),
		RawDates: dates,
		Students: make([]dto.StudentRowDTO, 0, len(ids)),
	}
	for _, d := range dates {
		res.Dates = append(res.Dates, d[4:6]+"/"+d[6:8])
	}

	for i, id := range ids {
		st := students[id]
		agg := AggregateStudent(dates, st.logs, schedules, th)
		res.Students = append(res.Students, buildStudentRow(i+1, st.name, dates, agg, th))

		res.Summary.Total++
		switch agg.Verdict {
		case VerdictCompleted:
			res.Summary.Completed++
		case VerdictFailed, VerdictDroppedOut:
			res.Summary.FailedOrDropped++
		case VerdictAtRisk:
			res.Summary.AtRisk++
		}
	}
	return res
}

func buildStudentRow(no int, name string, dates []string, agg StudentAggregate, th CompletionThresholds) dto.StudentRowDTO {
	daily := make(map[string]dto.DailyCellDTO, len(dates))
	for _, d := range dates {
		cls := agg.Daily[d]
		daily[d] = dto.DailyCellDTO{Text: cls.DisplayText, Color: cls.DisplayColor}
	}

	row := dto.StudentRowDTO{
		No:           no,
		Name:         name,
		DailyData:    daily,
		Uncompleted:  FormatSignedHHMM(agg.UncompletedMinutes),
		AttendCount:  agg.AttendCount,
		AbsentCount:  agg.AbsentCount,
		IsDroppedOut: agg.DroppedOut,
		Verdict:      string(agg.Verdict),
		RowColor:     rowColorFor(agg.Verdict),
	}

	switch agg.Verdict {
	case VerdictCompleted:
		row.RemainingComplete = textCompleted
	case VerdictDroppedOut:
		row.RemainingComplete = textDropout
	default:
		row.RemainingComplete = FormatSignedHHMM(th.TargetCompletionMin - agg.AttendedMinutes)
	}

	switch agg.Verdict {
	case VerdictDroppedOut:
		row.RemainingAbsence = textMissing
	case VerdictFailed:
		row.RemainingAbsence = textExpelled
	default:
		row.RemainingAbsence = FormatSignedHHMM(th.MaxAllowableAbsenceMin - agg.UncompletedMinutes)
	}

	return row
}

func rowColorFor(v Verdict) string {
	switch v {
	case VerdictCompleted:
		return colorPerfect
	case VerdictDroppedOut, VerdictFailed:
		return colorDropout
	case VerdictAtRisk:
		return colorPartial
	default:
		return ""
	}
}
