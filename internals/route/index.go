package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attRoute "yuvasabha_backend/internals/features/attendance/attendance/route"
	suRoute "yuvasabha_backend/internals/features/members/sabha_users/route"
	desigRoute "yuvasabha_backend/internals/features/organization/designations/route"
	mandalRoute "yuvasabha_backend/internals/features/organization/mandals/route"
	zoneRoute "yuvasabha_backend/internals/features/organization/zones/route"
	roleRoute "yuvasabha_backend/internals/features/users/role/route"
	userRoute "yuvasabha_backend/internals/features/users/user/route"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public login endpoints and the authenticated API
// under /api/v1. Per-feature permission gates live in the feature routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	userRoute.AuthRoutes(app, db)

	api := app.Group("/api/v1", authmw.AuthMiddleware(db))

	zoneRoute.ZoneRoutes(api, db)
	mandalRoute.MandalRoutes(api, db)
	desigRoute.DesignationRoutes(api, db)
	suRoute.SabhaUserRoutes(api, db)
	attRoute.AttendanceRoutes(api, db)
	userRoute.UserRoutes(api, db)
	roleRoute.RoleRoutes(api, db)
}
