package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	membershipController "gymdesk_backend/internals/features/memberships/controller"
	"gymdesk_backend/internals/middlewares"
)

func MembershipUserRoutes(user fiber.Router, db *gorm.DB) {
	planCtl := membershipController.NewMembershipPlanController(db)
	facilityCtl := membershipController.NewFacilityController(db)

	plans := user.Group("/membership-plans")
	plans.Get("/", planCtl.ListMembershipPlans)
	plans.Get("/:id", planCtl.GetMembershipPlanByID)

	facilities := user.Group("/facilities")
	facilities.Get("/", facilityCtl.ListFacilities)
	facilities.Get("/:id", facilityCtl.GetFacilityByID)
}

func MembershipAdminRoutes(admin fiber.Router, db *gorm.DB) {
	planCtl := membershipController.NewMembershipPlanController(db)
	facilityCtl := membershipController.NewFacilityController(db)
	invoiceCtl := membershipController.NewInvoiceController(db)

	plans := admin.Group("/membership-plans")
	plans.Post("/", planCtl.CreateMembershipPlan)
	plans.Put("/:id", planCtl.UpdateMembershipPlan)
	plans.Delete("/:id", planCtl.DeleteMembershipPlan)

	facilities := admin.Group("/facilities")
	facilities.Post("/", facilityCtl.CreateFacility)
	facilities.Put("/:id", facilityCtl.UpdateFacility)
	facilities.Delete("/:id", facilityCtl.DeleteFacility)

	invoices := admin.Group("/memberships/invoices")
	invoices.Post("/", invoiceCtl.CreateInvoice)
	invoices.Get("/", invoiceCtl.ListInvoices)
}

// PaymentWebhookRoutes mounts the gateway callback. The auth middleware
// skips this path, the gateway cannot carry a bearer token.
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	invoiceCtl := membershipController.NewInvoiceController(db)
	app.Post("/api/payments/notification",
		middlewares.DBMiddleware(db),
		invoiceCtl.HandlePaymentNotification,
	)
}
