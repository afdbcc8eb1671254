package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	zCtrl "yuvasabha_backend/internals/features/organization/zones/controller"
	"yuvasabha_backend/internals/constants"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

func ZoneRoutes(r fiber.Router, db *gorm.DB) {
	h := zCtrl.NewZoneController(db)

	g := r.Group("/zone")
	g.Get("/", h.List)
	g.Get("/:id", h.Detail)

	manage := g.Group("/", authmw.RequirePermissions(db, constants.PermManageOrg))
	manage.Post("/", h.Create)
	manage.Patch("/:id", h.Update)
	manage.Delete("/:id", h.Delete)
}
