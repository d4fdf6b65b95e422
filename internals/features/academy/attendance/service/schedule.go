// file: internals/features/academy/attendance/service/schedule.go
package service

import (
	cmodel "academyops_backend/internals/features/academy/course/model"
)

/* =========================
   Course config & daily resolution
   ========================= */

// CourseScheduleConfig is the immutable schedule input for one attendance
// computation. Times are minutes since midnight, dates compact YYYYMMDD.
type CourseScheduleConfig struct {
	DefaultStart      int `validate:"gt=0"`
	DefaultEnd        int `validate:"gtfield=DefaultStart"`
	DefaultLunchStart int
	DefaultLunchEnd   int

	StartDate string `validate:"len=8,numeric"`
	EndDate   string `validate:"len=8,numeric"`

	IsWeekendCourse       bool
	ScheduleExceptionsRaw string

	TotalCourseHours float64 `validate:"gt=0"`
}

// Fallback class window when a course row has no times set.
const (
	fallbackStartTime = "19:00"
	fallbackEndTime   = "22:00"
)

// ConfigFromCourse normalizes a persisted course row into engine input.
// Missing lunch columns mean no lunch deduction at all for the course.
func ConfigFromCourse(course *cmodel.CourseModel) CourseScheduleConfig {
	startTime := course.CourseStartTime
	if startTime == "" {
		startTime = fallbackStartTime
	}
	endTime := course.CourseEndTime
	if endTime == "" {
		endTime = fallbackEndTime
	}

	return CourseScheduleConfig{
		DefaultStart:          TimeToMinutes(startTime),
		DefaultEnd:            TimeToMinutes(endTime),
		DefaultLunchStart:     TimeToMinutes(course.CourseLunchStart),
		DefaultLunchEnd:       TimeToMinutes(course.CourseLunchEnd),
		StartDate:             CompactDate(course.CourseStartDate),
		EndDate:               CompactDate(course.CourseEndDate),
		IsWeekendCourse:       course.IsWeekendCourse(),
		ScheduleExceptionsRaw: course.CourseScheduleChange,
		TotalCourseHours:      course.CourseTotalHours,
	}
}

// ResolvedDailySchedule is the authoritative class/lunch window for one
// calendar date after exception overrides.
type ResolvedDailySchedule struct {
	Start             int
	End               int
	LunchStart        int
	LunchEnd          int
	FullCreditMinutes int
}

// lunchOverlap is the overlap in minutes between [startMin, endMin] and
// the lunch window. Unset (<= 0) or zero-width lunch windows deduct nothing.
func lunchOverlap(startMin, endMin, lunchStart, lunchEnd int) int {
	if lunchStart <= 0 || lunchEnd <= lunchStart {
		return 0
	}
	s := startMin
	if lunchStart > s {
		s = lunchStart
	}
	e := endMin
	if lunchEnd < e {
		e = lunchEnd
	}
	if e > s {
		return e - s
	}
	return 0
}

// ResolveDay applies any exception for the date on top of the course
// defaults. An exception overrides start/end unconditionally; lunch is
// overridden only when the entry carries an explicit lunch decision (which
// includes the explicit "no lunch" case — that is not "keep defaults").
func ResolveDay(date string, cfg CourseScheduleConfig, exceptions map[string]ExceptionSchedule) ResolvedDailySchedule {
	day := ResolvedDailySchedule{
		Start:      cfg.DefaultStart,
		End:        cfg.DefaultEnd,
		LunchStart: cfg.DefaultLunchStart,
		LunchEnd:   cfg.DefaultLunchEnd,
	}

	if exc, ok := exceptions[date]; ok {
		day.Start, day.End = exc.Start, exc.End
		if exc.HasExplicitLunch {
			day.LunchStart, day.LunchEnd = exc.LunchStart, exc.LunchEnd
		}
	}

	full := (day.End - day.Start) - lunchOverlap(day.Start, day.End, day.LunchStart, day.LunchEnd)
	if full < 0 {
		full = 0
	}
	day.FullCreditMinutes = full
	return day
}
