package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yuvasabha_backend/internals/constants"
	rCtrl "yuvasabha_backend/internals/features/users/role/controller"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

func RoleRoutes(r fiber.Router, db *gorm.DB) {
	h := rCtrl.NewRoleController(db)

	g := r.Group("/role",
		authmw.OnlyRoles(constants.RoleErrorAdmin("role management"), constants.AdminOnly),
	)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
