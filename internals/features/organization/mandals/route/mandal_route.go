package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yuvasabha_backend/internals/constants"
	mCtrl "yuvasabha_backend/internals/features/organization/mandals/controller"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

func MandalRoutes(r fiber.Router, db *gorm.DB) {
	h := mCtrl.NewMandalController(db)

	g := r.Group("/mandal")
	g.Get("/", h.List)
	g.Post("/by-zone", h.ListByZone)
	g.Get("/:id", h.Detail)

	manage := g.Group("/", authmw.RequirePermissions(db, constants.PermManageOrg))
	manage.Post("/", h.Create)
	manage.Patch("/:id", h.Update)
	manage.Delete("/:id", h.Delete)
}
