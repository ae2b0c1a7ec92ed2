package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	foodController "gymdesk_backend/internals/features/foods/controller"
)

func FoodUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := foodController.NewFoodController(db)

	foods := user.Group("/foods")
	foods.Get("/", ctl.ListFoods)
	foods.Get("/:id", ctl.GetFoodByID)
}

func FoodAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := foodController.NewFoodController(db)

	foods := admin.Group("/foods")
	foods.Post("/", ctl.CreateFood)
	foods.Put("/:id", ctl.UpdateFood)
	foods.Delete("/:id", ctl.DeleteFood)
}
