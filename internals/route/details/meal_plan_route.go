package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mealPlanController "gymdesk_backend/internals/features/mealplans/controller"
)

func MealPlanUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := mealPlanController.NewMealPlanController(db)

	mealPlans := user.Group("/meal-plans")
	mealPlans.Get("/", ctl.ListMealPlans)
	mealPlans.Get("/:id", ctl.GetMealPlanByID)
}

func MealPlanAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := mealPlanController.NewMealPlanController(db)

	mealPlans := admin.Group("/meal-plans")
	mealPlans.Post("/", ctl.CreateMealPlan)
	mealPlans.Put("/:id", ctl.UpdateMealPlan)
	mealPlans.Delete("/:id", ctl.DeleteMealPlan)
}
