package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yuvasabha_backend/internals/constants"
	attCtrl "yuvasabha_backend/internals/features/attendance/attendance/controller"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	h := attCtrl.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Post("/", authmw.RequirePermissions(db, constants.PermViewAttendance), h.GetAttendance)
	g.Post("/toggle", authmw.RequirePermissions(db, constants.PermToggleAttendance), h.Toggle)
	g.Post("/report", authmw.RequirePermissions(db, constants.PermViewReports), h.MonthlyReport)
}
