// file: internals/features/academy/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendancectl "academyops_backend/internals/features/academy/attendance/controller"
)

// AttendanceAdminRoutes mounts the reconciliation endpoints. The router
// group passed in must already carry the auth middleware — session
// validation happens upstream of this feature.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB, reg attendancectl.MonthFetcher) {
	ctl := attendancectl.NewAttendanceController(db, reg)

	grp := admin.Group("/courses")
	grp.Get("/:id/attendance", ctl.Detail)
}
