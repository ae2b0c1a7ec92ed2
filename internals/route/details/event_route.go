package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "gymdesk_backend/internals/features/events/controller"
)

func EventUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := eventController.NewEventController(db)

	events := user.Group("/events")
	events.Get("/", ctl.ListEvents)
	events.Get("/:id", ctl.GetEventByID)
}

func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := eventController.NewEventController(db)

	events := admin.Group("/events")
	events.Post("/", ctl.CreateEvent)
	events.Put("/:id", ctl.UpdateEvent)
	events.Delete("/:id", ctl.DeleteEvent)
}
