// file: internals/features/academy/attendance/controller/attendance_controller.go
package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academyops_backend/internals/features/academy/attendance/dto"
	"academyops_backend/internals/features/academy/attendance/service"
	cmodel "academyops_backend/internals/features/academy/course/model"
	"academyops_backend/internals/features/academy/registry"
	helper "academyops_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

// MonthFetcher is the narrow registry surface the controller needs; the
// HRD client satisfies it, tests fake it.
type MonthFetcher interface {
	FetchRange(ctx context.Context, courseCodeID, round string, months []string) ([]registry.LogEntry, error)
}

type AttendanceController struct {
	DB       *gorm.DB
	Registry MonthFetcher
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, reg MonthFetcher) *AttendanceController {
	return &AttendanceController{DB: db, Registry: reg, Validate: validator.New()}
}

/* =========================
   Query: attendance detail
   ========================= */

// Detail handles GET /courses/:id/attendance — the reconciliation report
// for one course: per-student per-date grid, totals and verdicts.
func (ctl *AttendanceController) Detail(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course id invalid")
	}

	var course cmodel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("id = ?", id).
		Take(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load course")
	}

	cfg := service.ConfigFromCourse(&course)
	if err := ctl.Validate.Struct(cfg); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	months := service.MonthSpan(cfg.StartDate, service.EffectiveEndDate(cfg.EndDate, now))

	round := course.CourseRound
	if round < 1 {
		round = 1
	}

	// Chunk-level failures are already absorbed inside FetchRange; an error
	// here means the caller went away.
	logs, err := ctl.Registry.FetchRange(c.UserContext(), course.CourseCodeID, strconv.Itoa(round), months)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "attendance fetch cancelled")
	}

	result := service.ComputeAttendance(cfg, logs, now)
	result.Course = dto.CourseHeaderDTO{
		ID:           course.CourseID.String(),
		Name:         course.CourseName,
		CourseCodeID: course.CourseCodeID,
		Round:        round,
		TotalHours:   course.CourseTotalHours,
		StartTime:    course.CourseStartTime,
		EndTime:      course.CourseEndTime,
		StartDate:    course.CourseStartDate,
		EndDate:      course.CourseEndDate,
		IsWeekend:    course.IsWeekendCourse(),
		LunchStart:   course.CourseLunchStart,
		LunchEnd:     course.CourseLunchEnd,
	}

	return helper.Success(c, "attendance computed", result)
}
