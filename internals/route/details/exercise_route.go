package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exerciseController "gymdesk_backend/internals/features/exercises/controller"
)

func ExerciseUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := exerciseController.NewExerciseController(db)

	exercises := user.Group("/exercises")
	exercises.Get("/", ctl.ListExercises)
	exercises.Get("/tag-catalogs", ctl.ListTagCatalogs)
	exercises.Get("/:id", ctl.GetExerciseByID)
}

func ExerciseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := exerciseController.NewExerciseController(db)

	exercises := admin.Group("/exercises")
	exercises.Post("/", ctl.CreateExercise)
	exercises.Put("/:id", ctl.UpdateExercise)
	exercises.Delete("/:id", ctl.DeleteExercise)
}
