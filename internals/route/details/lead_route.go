package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leadController "gymdesk_backend/internals/features/leads/controller"
)

func LeadAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := leadController.NewLeadController(db)

	leads := admin.Group("/leads")
	leads.Post("/", ctl.CreateLead)
	leads.Get("/", ctl.ListLeads)
	leads.Get("/:id", ctl.GetLeadByID)
	leads.Put("/:id", ctl.UpdateLead)
	leads.Delete("/:id", ctl.DeleteLead)
}
