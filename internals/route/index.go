// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyops_backend/internals/configs"
	attendanceroute "academyops_backend/internals/features/academy/attendance/route"
	"academyops_backend/internals/features/academy/registry"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	hrd := registry.NewClient(configs.HRDBaseURL, configs.HRDAuthKey)

	// ===================== ADMIN =====================
	// The /api/a group is wrapped with the deployment's auth middleware at
	// the proxy/gateway level; session validation is not handled here.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceroute.AttendanceAdminRoutes(admin, db, hrd)
}
