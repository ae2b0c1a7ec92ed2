package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	workoutController "gymdesk_backend/internals/features/workouts/controller"
)

func WorkoutUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := workoutController.NewWorkoutController(db)

	workouts := user.Group("/workouts")
	workouts.Get("/", ctl.ListWorkouts)
	workouts.Get("/:id", ctl.GetWorkoutByID)
}

func WorkoutAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := workoutController.NewWorkoutController(db)

	workouts := admin.Group("/workouts")
	workouts.Post("/", ctl.CreateWorkout)
	workouts.Put("/:id", ctl.UpdateWorkout)
	workouts.Delete("/:id", ctl.DeleteWorkout)
}
