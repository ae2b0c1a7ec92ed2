package dto

import (
	"time"

	"gymdesk_backend/internals/features/mealplans/model"

	"gorm.io/datatypes"
)

/* =========================================================
   REQUESTS
========================================================= */

type MealInput struct {
	MealTime string  `json:"meal_time" validate:"required,oneof=breakfast lunch dinner snack"`
	FoodID   uint    `json:"food_id" validate:"required,gt=0"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

type CreateMealPlanRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=120"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=2000"`
	Meals       []MealInput `json:"meals,omitempty" validate:"omitempty,dive"`
	MemberIDs   []uint      `json:"member_ids,omitempty" validate:"omitempty,dive,gt=0"`
}

// UpdateMealPlanRequest uses pointers so absent fields stay untouched.
// A nil Meals/MemberIDs leaves the set alone; an empty slice clears it.
type UpdateMealPlanRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string      `json:"description,omitempty" validate:"omitempty,max=2000"`
	Meals       *[]MealInput `json:"meals,omitempty" validate:"omitempty,dive"`
	MemberIDs   *[]uint      `json:"member_ids,omitempty" validate:"omitempty,dive,gt=0"`
}

func (r CreateMealPlanRequest) ToModel(orgID uint, createdBy uint) model.MealPlanModel {
	return model.MealPlanModel{
		MealPlanOrgID:       orgID,
		MealPlanName:        r.Name,
		MealPlanDescription: r.Description,
		MealPlanCreatedBy:   &createdBy,
	}
}

func (r UpdateMealPlanRequest) ApplyToModel(m *model.MealPlanModel, updatedBy uint) {
	if r.Name != nil {
		m.MealPlanName = *r.Name
	}
	if r.Description != nil {
		m.MealPlanDescription = r.Description
	}
	now := time.Now()
	m.MealPlanUpdatedAt = &now
	m.MealPlanUpdatedBy = &updatedBy
}

/* =========================================================
   RESPONSES
========================================================= */

type MealResponse struct {
	MealID   uint    `json:"meal_id"`
	MealTime string  `json:"meal_time"`
	FoodID   uint    `json:"food_id"`
	Quantity float64 `json:"quantity"`
}

type MealPlanResponse struct {
	MealPlanID  uint           `json:"meal_plan_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Meals       []MealResponse `json:"meals"`
	MemberIDs   []uint         `json:"member_ids"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

func NewMealPlanResponse(m model.MealPlanModel, meals []model.MealModel, memberIDs []uint) MealPlanResponse {
	out := MealPlanResponse{
		MealPlanID:  m.MealPlanID,
		Name:        m.MealPlanName,
		Description: m.MealPlanDescription,
		Meals:       make([]MealResponse, 0, len(meals)),
		MemberIDs:   memberIDs,
		CreatedAt:   m.MealPlanCreatedAt,
		UpdatedAt:   m.MealPlanUpdatedAt,
	}
	if out.MemberIDs == nil {
		out.MemberIDs = []uint{}
	}
	for _, meal := range meals {
		out.Meals = append(out.Meals, MealResponse{
			MealID:   meal.MealID,
			MealTime: meal.MealTime,
			FoodID:   meal.MealFoodID,
			Quantity: meal.MealQuantity,
		})
	}
	return out
}

/* =========================================================
   LIST ROW (aggregated via json_agg in the list query)
========================================================= */

type MealPlanListRow struct {
	MealPlanID  uint           `json:"meal_plan_id" gorm:"column:meal_plan_id"`
	Name        string         `json:"name" gorm:"column:meal_plan_name"`
	Description *string        `json:"description,omitempty" gorm:"column:meal_plan_description"`
	MemberCount int64          `json:"member_count" gorm:"column:member_count"`
	Meals       datatypes.JSON `json:"meals" gorm:"column:meals"`
	CreatedAt   time.Time      `json:"created_at" gorm:"column:meal_plan_created_at"`
}
