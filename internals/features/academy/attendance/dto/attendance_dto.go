// file: internals/features/academy/attendance/dto/attendance_dto.go
package dto

/* =========================
   Course attendance payload
   ========================= */

// DailyCellDTO is one rendered grid cell: display text + color hint.
type DailyCellDTO struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

type StudentRowDTO struct {
	No   int    `json:"no"`
	Name string `json:"name"`

	// keyed by raw YYYYMMDD date
	DailyData map[string]DailyCellDTO `json:"daily_data"`

	RemainingComplete string `json:"remaining_complete"`
	Uncompleted       string `json:"uncompleted"`
	RemainingAbsence  string `json:"remaining_absence"`

	AttendCount  int    `json:"attend_count"`
	AbsentCount  int    `json:"absent_count"`
	RowColor     string `json:"row_color,omitempty"`
	IsDroppedOut bool   `json:"is_dropped_out"`
	Verdict      string `json:"verdict"`
}

type CourseHeaderDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CourseCodeID string  `json:"course_code_id"`
	Round        int     `json:"round"`
	TotalHours   float64 `json:"total_hours"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	IsWeekend    bool    `json:"is_weekend"`
	LunchStart   string  `json:"lunch_start"`
	LunchEnd     string  `json:"lunch_end"`
}

type CourseSummaryDTO struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	FailedOrDropped int `json:"failed_or_dropped"`
	AtRisk          int `json:"at_risk"`
}

type CourseAttendanceResult struct {
	Course CourseHeaderDTO `json:"course"`

	// Dates is the short MM/DD display form, RawDates the YYYYMMDD keys
	// into each student's DailyData. Both share the same ascending order.
	Dates    []string `json:"dates"`
	RawDates []string `json:"raw_dates"`

	Students []StudentRowDTO  `json:"students"`
	Summary  CourseSummaryDTO `json:"summary"`
}
