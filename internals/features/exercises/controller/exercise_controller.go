package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/exercises/dto"
	"gymdesk_backend/internals/features/exercises/model"
	"gymdesk_backend/internals/features/exercises/service"
	helper "gymdesk_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ExerciseController struct {
	DB *gorm.DB
}

func NewExerciseController(db *gorm.DB) *ExerciseController {
	return &ExerciseController{DB: db}
}

var validate = validator.New()

func findExerciseScoped(db *gorm.DB, orgID, exerciseID uint, includeDeleted bool) (*model.ExerciseModel, error) {
	q := db.Where("exercise_org_id = ? AND exercise_id = ?", orgID, exerciseID)
	if !includeDeleted {
		q = q.Where("exercise_is_deleted = FALSE")
	}
	var m model.ExerciseModel
	if err := q.Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// name must be unique per org among live rows
func exerciseNameTaken(db *gorm.DB, orgID uint, name string, excludeID uint) (bool, error) {
	q := db.Model(&model.ExerciseModel{}).
		Where("exercise_org_id = ? AND LOWER(exercise_name) = LOWER(?) AND exercise_is_deleted = FALSE", orgID, name)
	if excludeID > 0 {
		q = q.Where("exercise_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func attachTagIDs(db *gorm.DB, resp *dto.ExerciseResponse) error {
	var err error
	if resp.EquipmentIDs, err = service.LinkedTagIDs(db, service.TableEquipment, service.ColEquipment, resp.ExerciseID); err != nil {
		return err
	}
	if resp.PrimaryMuscleIDs, err = service.LinkedTagIDs(db, service.TablePrimaryMuscle, service.ColMuscle, resp.ExerciseID); err != nil {
		return err
	}
	if resp.SecondaryMuscleIDs, err = service.LinkedTagIDs(db, service.TableSecondaryMuscle, service.ColMuscle, resp.ExerciseID); err != nil {
		return err
	}
	if resp.PrimaryJointIDs, err = service.LinkedTagIDs(db, service.TablePrimaryJoint, service.ColJoint, resp.ExerciseID); err != nil {
		return err
	}
	return nil
}

/* ================= Handlers ================= */

// POST /api/a/exercises
func (ctl *ExerciseController) CreateExercise(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	taken, err := exerciseNameTaken(ctl.DB, orgID, req.ExerciseName, 0)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
	if taken {
		return helper.JsonServiceError(c, helper.ErrDuplicate)
	}

	exercise := req.ToModel(orgID, userID)
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(exercise).Error; err != nil {
			return err
		}
		return service.ReconcileTagSets(tx, exercise.ExerciseID, service.TagSetInput{
			EquipmentIDs:       &req.EquipmentIDs,
			PrimaryMuscleIDs:   &req.PrimaryMuscleIDs,
			SecondaryMuscleIDs: &req.SecondaryMuscleIDs,
			PrimaryJointIDs:    &req.PrimaryJointIDs,
		})
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to create exercise")
	}

	resp := dto.NewExerciseResponse(exercise)
	if err := attachTagIDs(ctl.DB, resp); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return helper.JsonCreated(c, "exercise created", resp)
}

// GET /api/u/exercises/:id
func (ctl *ExerciseController) GetExerciseByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	exercise, err := findExerciseScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	resp := dto.NewExerciseResponse(exercise)
	if err := attachTagIDs(ctl.DB, resp); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return helper.JsonOK(c, "", resp)
}

// GET /api/u/exercises: filtered list with aggregated tag arrays
func (ctl *ExerciseController) ListExercises(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 200)

	var difficulty, intensity, exType, equipmentID, muscleID interface{}
	if s := c.Query("difficulty"); s != "" {
		difficulty = s
	}
	if s := c.Query("intensity"); s != "" {
		intensity = s
	}
	if s := c.Query("type"); s != "" {
		exType = s
	}
	if n := c.QueryInt("equipment_id"); n > 0 {
		equipmentID = n
	}
	if n := c.QueryInt("muscle_id"); n > 0 {
		muscleID = n
	}

	base := ctl.DB.Table("exercises AS ex").
		Where("ex.exercise_org_id = ? AND ex.exercise_is_deleted = FALSE", orgID)

	var rows []dto.ExerciseListRow
	total, filtered, err := helper.NewListBuilder(base).
		SelectExpr(`
			ex.exercise_id, ex.exercise_name, ex.exercise_intensity,
			ex.exercise_difficulty, ex.exercise_type, ex.exercise_created_at,
			COALESCE((
				SELECT json_agg(json_build_object('equipment_id', eq.equipment_id, 'equipment_name', eq.equipment_name))
				FROM exercise_equipments ee
				JOIN equipments eq ON eq.equipment_id = ee.equipment_id AND eq.is_deleted = FALSE
				WHERE ee.exercise_id = ex.exercise_id AND ee.is_deleted = FALSE
			), '[]'::json) AS equipments,
			COALESCE((
				SELECT json_agg(json_build_object('muscle_id', mu.muscle_id, 'muscle_name', mu.muscle_name))
				FROM exercise_primary_muscles epm
				JOIN muscles mu ON mu.muscle_id = epm.muscle_id AND mu.is_deleted = FALSE
				WHERE epm.exercise_id = ex.exercise_id AND epm.is_deleted = FALSE
			), '[]'::json) AS primary_muscles,
			COALESCE((
				SELECT json_agg(json_build_object('muscle_id', mu.muscle_id, 'muscle_name', mu.muscle_name))
				FROM exercise_secondary_muscles esm
				JOIN muscles mu ON mu.muscle_id = esm.muscle_id AND mu.is_deleted = FALSE
				WHERE esm.exercise_id = ex.exercise_id AND esm.is_deleted = FALSE
			), '[]'::json) AS secondary_muscles,
			COALESCE((
				SELECT json_agg(json_build_object('joint_id', jo.joint_id, 'joint_name', jo.joint_name))
				FROM exercise_primary_joints epj
				JOIN joints jo ON jo.joint_id = epj.joint_id AND jo.is_deleted = FALSE
				WHERE epj.exercise_id = ex.exercise_id AND epj.is_deleted = FALSE
			), '[]'::json) AS primary_joints
		`).
		SearchColumns("ex.exercise_name", "ex.exercise_type").
		Filter("ex.exercise_difficulty = ?", difficulty).
		Filter("ex.exercise_intensity = ?", intensity).
		Filter("ex.exercise_type = ?", exType).
		Filter(`EXISTS (
			SELECT 1 FROM exercise_equipments fee
			WHERE fee.exercise_id = ex.exercise_id AND fee.is_deleted = FALSE AND fee.equipment_id = ?
		)`, equipmentID).
		Filter(`EXISTS (
			SELECT 1 FROM exercise_primary_muscles fpm
			WHERE fpm.exercise_id = ex.exercise_id AND fpm.is_deleted = FALSE AND fpm.muscle_id = ?
		)`, muscleID).
		Sortable(map[string]string{
			"name":       "ex.exercise_name",
			"created_at": "ex.exercise_created_at",
			"difficulty": "ex.exercise_difficulty",
			"intensity":  "ex.exercise_intensity",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	return helper.JsonSearchList(c, "", rows, total, filtered)
}

// PATCH /api/a/exercises/:id
func (ctl *ExerciseController) UpdateExercise(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	exercise, err := findExerciseScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	if req.ExerciseName != nil {
		taken, err := exerciseNameTaken(ctl.DB, orgID, *req.ExerciseName, exercise.ExerciseID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
		}
		if taken {
			return helper.JsonServiceError(c, helper.ErrDuplicate)
		}
	}

	req.ApplyToModel(exercise, userID)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(exercise).Error; err != nil {
			return err
		}
		return service.ReconcileTagSets(tx, exercise.ExerciseID, service.TagSetInput{
			EquipmentIDs:       req.EquipmentIDs,
			PrimaryMuscleIDs:   req.PrimaryMuscleIDs,
			SecondaryMuscleIDs: req.SecondaryMuscleIDs,
			PrimaryJointIDs:    req.PrimaryJointIDs,
		})
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to update exercise")
	}

	resp := dto.NewExerciseResponse(exercise)
	if err := attachTagIDs(ctl.DB, resp); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return helper.JsonUpdated(c, "exercise updated", resp)
}

// DELETE /api/a/exercises/:id (soft)
func (ctl *ExerciseController) DeleteExercise(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	exercise, err := findExerciseScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	if err := ctl.DB.Model(exercise).Updates(map[string]interface{}{
		"exercise_is_deleted": true,
		"exercise_updated_at": now,
		"exercise_updated_by": userID,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete exercise")
	}

	return helper.JsonDeleted(c, "exercise deleted", fiber.Map{"exercise_id": exercise.ExerciseID})
}

// GET /api/u/exercises/tag-catalogs: the equipment/muscle/joint lookup lists
// callers need before creating an exercise. Small catalogs, no pagination.
func (ctl *ExerciseController) ListTagCatalogs(c *fiber.Ctx) error {
	var equipments []model.EquipmentModel
	var muscles []model.MuscleModel
	var joints []model.JointModel

	if err := ctl.DB.Where("is_deleted = FALSE").Order("equipment_name").Find(&equipments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch tag catalogs")
	}
	if err := ctl.DB.Where("is_deleted = FALSE").Order("muscle_name").Find(&muscles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch tag catalogs")
	}
	if err := ctl.DB.Where("is_deleted = FALSE").Order("joint_name").Find(&joints).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch tag catalogs")
	}

	return helper.JsonList(c, "tag catalogs fetched", fiber.Map{
		"equipments": equipments,
		"muscles":    muscles,
		"joints":     joints,
	})
}
