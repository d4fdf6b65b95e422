// file: internals/features/academy/course/model/course_model.go
package model

import (
	"github.com/google/uuid"
)

// CourseModel maps one persisted course offering. Dates are stored as ISO
// strings ("2026-01-15"), times as "HH:MM"; both are normalized by the
// attendance service before any arithmetic.
type CourseModel struct {
	CourseID        uuid.UUID `json:"course_id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseName      string    `json:"course_name" gorm:"column:course_name;not null"`
	CourseCodeID    string    `json:"course_code_id" gorm:"column:course_code_id;not null"`
	CourseRound     int       `json:"round" gorm:"column:round;not null;default:1"`
	CourseStartDate string    `json:"start_date" gorm:"column:start_date;not null"`
	CourseEndDate   string    `json:"end_date" gorm:"column:end_date;not null"`
	CourseStartTime string    `json:"start_time" gorm:"column:start_time"`
	CourseEndTime   string    `json:"end_time" gorm:"column:end_time"`

	CourseTotalHours float64 `json:"total_hours" gorm:"column:total_hours;not null;default:0"`

	// "WEEKEND" marks weekend rounds; anything else is a weekday round.
	CourseIsWeekend string `json:"is_weekend" gorm:"column:is_weekend"`

	CourseLunchStart string `json:"lunch_start" gorm:"column:lunch_start"`
	CourseLunchEnd   string `json:"lunch_end" gorm:"column:lunch_end"`

	// Free-text per-date overrides, e.g. "20241005=09:00~18:00(12:00~13:00)".
	CourseScheduleChange string `json:"schedule_change" gorm:"column:schedule_change;type:text"`
}

func (CourseModel) TableName() string { return "courses" }

func (c *CourseModel) IsWeekendCourse() bool { return c.CourseIsWeekend == "WEEKEND" }
