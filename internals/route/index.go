package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/constants"
	database "gymdesk_backend/internals/databases"
	authMiddleware "gymdesk_backend/internals/middlewares/auth"
	routeDetails "gymdesk_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if err := database.Ping(); err != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startTime).String(),
		})
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up auth routes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up payment webhook...")
	routeDetails.PaymentWebhookRoutes(app, db)

	// ===================== PRIVATE (all personas) =====================
	log.Println("[INFO] Setting up /api/u group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyPersonas(constants.AllPersonas...),
	)

	// ===================== ADMIN (staff only) =====================
	log.Println("[INFO] Setting up /api/a group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyPersonas(constants.StaffOnly...),
	)

	// ===================== MOUNT ROUTES =====================
	routeDetails.AuthUserRoutes(user, db)
	routeDetails.OrganizationUserRoutes(user, db)
	routeDetails.OrganizationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting client routes...")
	routeDetails.ClientUserRoutes(user, db)
	routeDetails.ClientAdminRoutes(admin, db)

	log.Println("[INFO] Mounting coach routes...")
	routeDetails.CoachUserRoutes(user, db)
	routeDetails.CoachAdminRoutes(admin, db)

	log.Println("[INFO] Mounting exercise & workout routes...")
	routeDetails.ExerciseUserRoutes(user, db)
	routeDetails.ExerciseAdminRoutes(admin, db)
	routeDetails.WorkoutUserRoutes(user, db)
	routeDetails.WorkoutAdminRoutes(admin, db)

	log.Println("[INFO] Mounting nutrition routes...")
	routeDetails.FoodUserRoutes(user, db)
	routeDetails.FoodAdminRoutes(admin, db)
	routeDetails.MealPlanUserRoutes(user, db)
	routeDetails.MealPlanAdminRoutes(admin, db)

	log.Println("[INFO] Mounting membership routes...")
	routeDetails.MembershipUserRoutes(user, db)
	routeDetails.MembershipAdminRoutes(admin, db)

	log.Println("[INFO] Mounting lead & event routes...")
	routeDetails.LeadAdminRoutes(admin, db)
	routeDetails.EventUserRoutes(user, db)
	routeDetails.EventAdminRoutes(admin, db)
}
