package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yuvasabha_backend/internals/constants"
	suCtrl "yuvasabha_backend/internals/features/members/sabha_users/controller"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

func SabhaUserRoutes(r fiber.Router, db *gorm.DB) {
	h := suCtrl.NewSabhaUserController(db)

	g := r.Group("/sabha-users")
	g.Post("/by-mandal", h.List)
	g.Get("/:id", h.Detail)

	manage := g.Group("/", authmw.RequirePermissions(db, constants.PermManageSabhaUsers))
	manage.Post("/", h.Add)
	manage.Post("/bulk-add", h.BulkAdd)
	manage.Patch("/:id", h.Update)
	manage.Delete("/:id", h.Delete)
	manage.Post("/:id/photo", h.UploadPhoto)
}
