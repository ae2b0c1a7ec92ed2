package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/foods/dto"
	"gymdesk_backend/internals/features/foods/model"
	helper "gymdesk_backend/internals/helpers"
)

type FoodController struct {
	DB *gorm.DB
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{DB: db}
}

var validate = validator.New()

func findFoodScoped(db *gorm.DB, orgID uint, id uint) (model.FoodModel, error) {
	var food model.FoodModel
	err := db.
		Where("food_id = ? AND food_org_id = ?", id, orgID).
		First(&food).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return food, helper.ErrNotFound
		}
		return food, err
	}
	return food, nil
}

func (ctl *FoodController) CreateFood(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	food := req.ToModel(orgID, userID)
	if err := ctl.DB.Create(&food).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "food created", food)
}

func (ctl *FoodController) GetFoodByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid food id")
	}

	food, err := findFoodScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "food fetched", food)
}

func (ctl *FoodController) ListFoods(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 100)
	category := strings.TrimSpace(c.Query("category"))

	base := ctl.DB.Model(&model.FoodModel{}).
		Where("foods.food_org_id = ?", orgID)

	var rows []model.FoodModel
	total, filtered, err := helper.NewListBuilder(base).
		SearchColumns("foods.food_name").
		Filter("foods.food_category = ?", nilIfEmpty(category)).
		Sortable(map[string]string{
			"name":       "foods.food_name",
			"calories":   "foods.food_calories",
			"created_at": "foods.food_created_at",
		}, "name").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonSearchList(c, "foods fetched", rows, total, filtered)
}

func (ctl *FoodController) UpdateFood(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid food id")
	}

	var req dto.UpdateFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	food, err := findFoodScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	req.ApplyToModel(&food, userID)
	if err := ctl.DB.Save(&food).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "food updated", food)
}

// DeleteFood removes the row for real; foods carry no history worth
// keeping and meal rows reference them only by id.
func (ctl *FoodController) DeleteFood(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid food id")
	}

	food, err := findFoodScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	if err := ctl.DB.Delete(&model.FoodModel{}, "food_id = ?", food.FoodID).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "food deleted", fiber.Map{"food_id": food.FoodID})
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
