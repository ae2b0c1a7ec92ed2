package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clientController "gymdesk_backend/internals/features/clients/controller"
)

func ClientUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := clientController.NewClientController(db)

	clients := user.Group("/clients")
	clients.Get("/", ctl.ListClients)
	clients.Get("/:id", ctl.GetClientByID)
}

func ClientAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := clientController.NewClientController(db)

	clients := admin.Group("/clients")
	clients.Post("/", ctl.CreateClient)
	clients.Put("/:id", ctl.UpdateClient)
	clients.Delete("/:id", ctl.DeleteClient)
}
