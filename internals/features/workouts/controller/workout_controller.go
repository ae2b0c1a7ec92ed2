package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/workouts/dto"
	"gymdesk_backend/internals/features/workouts/model"
	"gymdesk_backend/internals/features/workouts/service"
	helper "gymdesk_backend/internals/helpers"
)

type WorkoutController struct {
	DB *gorm.DB
}

func NewWorkoutController(db *gorm.DB) *WorkoutController {
	return &WorkoutController{DB: db}
}

var validate = validator.New()

/* =========================================================
   INTERNAL LOOKUPS
========================================================= */

func findWorkoutScoped(db *gorm.DB, orgID uint, id uint) (model.WorkoutModel, error) {
	var workout model.WorkoutModel
	err := db.
		Where("workout_id = ? AND workout_org_id = ? AND workout_is_deleted = FALSE", id, orgID).
		First(&workout).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return workout, helper.ErrNotFound
		}
		return workout, err
	}
	return workout, nil
}

func workoutNameTaken(db *gorm.DB, orgID uint, name string, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(&model.WorkoutModel{}).
		Where("workout_org_id = ? AND LOWER(workout_name) = LOWER(?) AND workout_is_deleted = FALSE", orgID, name)
	if excludeID != 0 {
		q = q.Where("workout_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func liveWorkoutExercises(db *gorm.DB, workoutID uint) ([]model.WorkoutExerciseModel, error) {
	var slots []model.WorkoutExerciseModel
	err := db.
		Where("workout_id = ? AND is_deleted = FALSE", workoutID).
		Order("position ASC, workout_exercise_id ASC").
		Find(&slots).Error
	return slots, err
}

/* =========================================================
   HANDLERS
========================================================= */

func (ctl *WorkoutController) CreateWorkout(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	taken, err := workoutNameTaken(ctl.DB, orgID, req.Name, 0)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	if taken {
		return helper.JsonServiceError(c, helper.ErrDuplicate)
	}

	workout := req.ToModel(orgID, userID)
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}
		for _, in := range req.Exercises {
			slot := model.WorkoutExerciseModel{
				WorkoutID:  workout.WorkoutID,
				ExerciseID: in.ExerciseID,
				Position:   in.Position,
				Sets:       in.Sets,
				Reps:       in.Reps,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	slots, err := liveWorkoutExercises(ctl.DB, workout.WorkoutID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "workout created", dto.NewWorkoutResponse(workout, slots))
}

func (ctl *WorkoutController) GetWorkoutByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	workout, err := findWorkoutScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	slots, err := liveWorkoutExercises(ctl.DB, workout.WorkoutID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "workout fetched", dto.NewWorkoutResponse(workout, slots))
}

func (ctl *WorkoutController) ListWorkouts(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 100)
	difficulty := strings.TrimSpace(c.Query("difficulty"))

	base := ctl.DB.Model(&model.WorkoutModel{}).
		Where("workouts.workout_org_id = ? AND workouts.workout_is_deleted = FALSE", orgID)

	var rows []dto.WorkoutListRow
	total, filtered, err := helper.NewListBuilder(base).
		SelectExpr(`
			workouts.workout_id,
			workouts.workout_name,
			workouts.workout_difficulty,
			workouts.workout_created_at,
			COALESCE((
				SELECT json_agg(json_build_object(
					'exercise_id', we.exercise_id,
					'position', we.position,
					'sets', we.sets,
					'reps', we.reps
				) ORDER BY we.position)
				FROM workout_exercises we
				WHERE we.workout_id = workouts.workout_id AND we.is_deleted = FALSE
			), '[]') AS exercises`).
		SearchColumns("workouts.workout_name", "workouts.workout_description").
		Filter("workouts.workout_difficulty = ?", nilIfEmpty(difficulty)).
		Sortable(map[string]string{
			"name":       "workouts.workout_name",
			"difficulty": "workouts.workout_difficulty",
			"created_at": "workouts.workout_created_at",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonSearchList(c, "workouts fetched", rows, total, filtered)
}

func (ctl *WorkoutController) UpdateWorkout(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	var req dto.UpdateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	workout, err := findWorkoutScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	if req.Name != nil {
		taken, err := workoutNameTaken(ctl.DB, orgID, *req.Name, workout.WorkoutID)
		if err != nil {
			return helper.JsonServiceError(c, err)
		}
		if taken {
			return helper.JsonServiceError(c, helper.ErrDuplicate)
		}
	}

	var (
		slotInserts []dto.WorkoutExerciseInput
		slotUpdates []service.SlotUpdate
		slotRemoves []uint
	)
	if req.Exercises != nil {
		existing, err := liveWorkoutExercises(ctl.DB, workout.WorkoutID)
		if err != nil {
			return helper.JsonServiceError(c, err)
		}
		slotInserts, slotUpdates, slotRemoves = service.DiffWorkoutExercises(existing, *req.Exercises)
	}

	req.ApplyToModel(&workout, userID)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&workout).Error; err != nil {
			return err
		}
		for _, in := range slotInserts {
			slot := model.WorkoutExerciseModel{
				WorkoutID:  workout.WorkoutID,
				ExerciseID: in.ExerciseID,
				Position:   in.Position,
				Sets:       in.Sets,
				Reps:       in.Reps,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		for _, up := range slotUpdates {
			if err := tx.Model(&model.WorkoutExerciseModel{}).
				Where("workout_exercise_id = ?", up.WorkoutExerciseID).
				Updates(map[string]interface{}{
					"position": up.Position,
					"sets":     up.Sets,
					"reps":     up.Reps,
				}).Error; err != nil {
				return err
			}
		}
		if len(slotRemoves) > 0 {
			if err := tx.Model(&model.WorkoutExerciseModel{}).
				Where("workout_exercise_id IN ?", slotRemoves).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	slots, err := liveWorkoutExercises(ctl.DB, workout.WorkoutID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "workout updated", dto.NewWorkoutResponse(workout, slots))
}

func (ctl *WorkoutController) DeleteWorkout(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	workout, err := findWorkoutScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	err = ctl.DB.Model(&model.WorkoutModel{}).
		Where("workout_id = ?", workout.WorkoutID).
		Updates(map[string]interface{}{
			"workout_is_deleted": true,
			"workout_updated_at": now,
			"workout_updated_by": userID,
		}).Error
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "workout deleted", fiber.Map{"workout_id": workout.WorkoutID})
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
