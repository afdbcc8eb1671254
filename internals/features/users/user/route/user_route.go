package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yuvasabha_backend/internals/constants"
	uCtrl "yuvasabha_backend/internals/features/users/user/controller"
	"yuvasabha_backend/internals/middlewares"
	authmw "yuvasabha_backend/internals/middlewares/auth"
)

// AuthRoutes are mounted without the auth middleware.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := uCtrl.NewUserController(db)

	g := app.Group("/api/v1/users")
	g.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	g.Post("/login-google", middlewares.LoginRateLimiter(), h.LoginGoogle)
}

// UserRoutes require a valid access token.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	h := uCtrl.NewUserController(db)

	g := r.Group("/users")
	g.Get("/", h.List)
	g.Post("/update-password", h.UpdatePassword)

	admin := g.Group("/",
		authmw.OnlyRoles(constants.RoleErrorAdmin("user management"), constants.AdminOnly),
	)
	admin.Post("/register", h.Register)
	admin.Put("/accessible-mandals/add", h.AddAccessibleMandals)
	admin.Put("/accessible-mandals/remove", h.RemoveAccessibleMandals)
	admin.Post("/accessible-mandals", h.GetAccessibleMandals)
}
