package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coachController "gymdesk_backend/internals/features/coaches/controller"
)

func CoachUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := coachController.NewCoachController(db)

	coaches := user.Group("/coaches")
	coaches.Get("/", ctl.ListCoaches)
	coaches.Get("/:id", ctl.GetCoachByID)
}

func CoachAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := coachController.NewCoachController(db)

	coaches := admin.Group("/coaches")
	coaches.Post("/", ctl.CreateCoach)
	coaches.Put("/:id", ctl.UpdateCoach)
	coaches.Delete("/:id", ctl.DeleteCoach)
}
