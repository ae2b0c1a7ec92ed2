package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gymdesk_backend/internals/features/users/auth/controller"
	"gymdesk_backend/internals/middlewares"
)

// AuthRoutes mounts the public auth endpoints. Login carries its own
// tighter rate limit on top of the global one.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/forgot-password", ctl.ForgotPassword)
	auth.Post("/reset-password", ctl.ResetPassword)
}

// AuthUserRoutes mounts auth endpoints that need a valid token.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	user.Post("/auth/change-password", ctl.ChangePassword)
}
