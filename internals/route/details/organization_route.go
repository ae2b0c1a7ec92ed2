package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	organizationController "gymdesk_backend/internals/features/organizations/controller"
)

func OrganizationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := organizationController.NewOrganizationController(db)
	user.Get("/organization", ctl.GetMyOrganization)
}

func OrganizationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := organizationController.NewOrganizationController(db)
	admin.Put("/organization", ctl.UpdateMyOrganization)
}
