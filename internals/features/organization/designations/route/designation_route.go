package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yuvasabha_backend/internals/constants"
	dCtrl "yuvasabha_backend/internals/features/organization/designations/controller"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

func DesignationRoutes(r fiber.Router, db *gorm.DB) {
	h := dCtrl.NewDesignationController(db)

	g := r.Group("/designation")
	g.Get("/", h.List)

	manage := g.Group("/", authmw.RequirePermissions(db, constants.PermManageOrg))
	manage.Post("/", h.Create)
	manage.Patch("/:id", h.Update)
	manage.Delete("/:id", h.Delete)
}
