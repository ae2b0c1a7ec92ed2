package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/mealplans/dto"
	"gymdesk_backend/internals/features/mealplans/model"
	"gymdesk_backend/internals/features/mealplans/service"
	helper "gymdesk_backend/internals/helpers"
)

type MealPlanController struct {
	DB *gorm.DB
}

func NewMealPlanController(db *gorm.DB) *MealPlanController {
	return &MealPlanController{DB: db}
}

var validate = validator.New()

/* =========================================================
   INTERNAL LOOKUPS
========================================================= */

func findMealPlanScoped(db *gorm.DB, orgID uint, id uint) (model.MealPlanModel, error) {
	var plan model.MealPlanModel
	err := db.
		Where("meal_plan_id = ? AND meal_plan_org_id = ? AND meal_plan_is_deleted = FALSE", id, orgID).
		First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return plan, helper.ErrNotFound
		}
		return plan, err
	}
	return plan, nil
}

func mealPlanNameTaken(db *gorm.DB, orgID uint, name string, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(&model.MealPlanModel{}).
		Where("meal_plan_org_id = ? AND LOWER(meal_plan_name) = LOWER(?) AND meal_plan_is_deleted = FALSE", orgID, name)
	if excludeID != 0 {
		q = q.Where("meal_plan_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func liveMeals(db *gorm.DB, planID uint) ([]model.MealModel, error) {
	var meals []model.MealModel
	err := db.
		Where("meal_plan_id = ? AND is_deleted = FALSE", planID).
		Order("meal_id ASC").
		Find(&meals).Error
	return meals, err
}

func liveMemberIDs(db *gorm.DB, planID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&model.MemberMealPlanModel{}).
		Where("meal_plan_id = ? AND is_deleted = FALSE", planID).
		Pluck("client_id", &ids).Error
	return ids, err
}

/* =========================================================
   HANDLERS
========================================================= */

func (ctl *MealPlanController) CreateMealPlan(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	taken, err := mealPlanNameTaken(ctl.DB, orgID, req.Name, 0)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	if taken {
		return helper.JsonServiceError(c, helper.ErrDuplicate)
	}

	plan := req.ToModel(orgID, userID)
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		for _, in := range req.Meals {
			meal := model.MealModel{
				MealPlanID:   plan.MealPlanID,
				MealTime:     in.MealTime,
				MealFoodID:   in.FoodID,
				MealQuantity: in.Quantity,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
		}
		for _, clientID := range dedupe(req.MemberIDs) {
			link := model.MemberMealPlanModel{MealPlanID: plan.MealPlanID, ClientID: clientID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	meals, err := liveMeals(ctl.DB, plan.MealPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	members, err := liveMemberIDs(ctl.DB, plan.MealPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "meal plan created", dto.NewMealPlanResponse(plan, meals, members))
}

func (ctl *MealPlanController) GetMealPlanByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid meal plan id")
	}

	plan, err := findMealPlanScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	meals, err := liveMeals(ctl.DB, plan.MealPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	members, err := liveMemberIDs(ctl.DB, plan.MealPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "meal plan fetched", dto.NewMealPlanResponse(plan, meals, members))
}

func (ctl *MealPlanController) ListMealPlans(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 100)

	base := ctl.DB.Model(&model.MealPlanModel{}).
		Where("meal_plans.meal_plan_org_id = ? AND meal_plans.meal_plan_is_deleted = FALSE", orgID)

	var rows []dto.MealPlanListRow
	total, filtered, err := helper.NewListBuilder(base).
		SelectExpr(`
			meal_plans.meal_plan_id,
			meal_plans.meal_plan_name,
			meal_plans.meal_plan_description,
			meal_plans.meal_plan_created_at,
			(SELECT COUNT(*) FROM member_meal_plans mmp
				WHERE mmp.meal_plan_id = meal_plans.meal_plan_id AND mmp.is_deleted = FALSE) AS member_count,
			COALESCE((
				SELECT json_agg(json_build_object(
					'meal_id', m.meal_id,
					'meal_time', m.meal_time,
					'food_id', m.meal_food_id,
					'quantity', m.meal_quantity
				))
				FROM meals m
				WHERE m.meal_plan_id = meal_plans.meal_plan_id AND m.is_deleted = FALSE
			), '[]') AS meals`).
		SearchColumns("meal_plans.meal_plan_name", "meal_plans.meal_plan_description").
		Sortable(map[string]string{
			"name":       "meal_plans.meal_plan_name",
			"created_at": "meal_plans.meal_plan_created_at",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonSearchList(c, "meal plans fetched", rows, total, filtered)
}

func (ctl *MealPlanController) UpdateMealPlan(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid meal plan id")
	}

	var req dto.UpdateMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	plan, err := findMealPlanScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	if req.Name != nil {
		taken, err := mealPlanNameTaken(ctl.DB, orgID, *req.Name, plan.MealPlanID)
		if err != nil {
			return helper.JsonServiceError(c, err)
		}
		if taken {
			return helper.JsonServiceError(c, helper.ErrDuplicate)
		}
	}

	// Diffs are computed before the transaction so the write set is fixed
	// up front.
	var (
		mealInserts []dto.MealInput
		mealUpdates []service.MealQtyUpdate
		mealRemoves []uint
	)
	if req.Meals != nil {
		existing, err := liveMeals(ctl.DB, plan.MealPlanID)
		if err != nil {
			return helper.JsonServiceError(c, err)
		}
		mealInserts, mealUpdates, mealRemoves = service.DiffMeals(existing, *req.Meals)
	}

	var memberAdds, memberRemoves []uint
	if req.MemberIDs != nil {
		existing, err := liveMemberIDs(ctl.DB, plan.MealPlanID)
		if err != nil {
			return helper.JsonServiceError(c, err)
		}
		memberAdds, memberRemoves = helper.DiffIDs(existing, *req.MemberIDs)
	}

	req.ApplyToModel(&plan, userID)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}

		for _, in := range mealInserts {
			meal := model.MealModel{
				MealPlanID:   plan.MealPlanID,
				MealTime:     in.MealTime,
				MealFoodID:   in.FoodID,
				MealQuantity: in.Quantity,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
		}
		for _, up := range mealUpdates {
			if err := tx.Model(&model.MealModel{}).
				Where("meal_id = ?", up.MealID).
				Update("meal_quantity", up.Quantity).Error; err != nil {
				return err
			}
		}
		if len(mealRemoves) > 0 {
			if err := tx.Model(&model.MealModel{}).
				Where("meal_id IN ?", mealRemoves).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}

		for _, clientID := range memberAdds {
			link := model.MemberMealPlanModel{MealPlanID: plan.MealPlanID, ClientID: clientID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		if len(memberRemoves) > 0 {
			if err := tx.Model(&model.MemberMealPlanModel{}).
				Where("meal_plan_id = ? AND client_id IN ?", plan.MealPlanID, memberRemoves).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	meals, err := liveMeals(ctl.DB, plan.MealPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	members, err := liveMemberIDs(ctl.DB, plan.MealPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "meal plan updated", dto.NewMealPlanResponse(plan, meals, members))
}

func (ctl *MealPlanController) DeleteMealPlan(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid meal plan id")
	}

	plan, err := findMealPlanScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	err = ctl.DB.Model(&model.MealPlanModel{}).
		Where("meal_plan_id = ?", plan.MealPlanID).
		Updates(map[string]interface{}{
			"meal_plan_is_deleted": true,
			"meal_plan_updated_at": now,
			"meal_plan_updated_by": userID,
		}).Error
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "meal plan deleted", fiber.Map{"meal_plan_id": plan.MealPlanID})
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
