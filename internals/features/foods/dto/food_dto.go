package dto

import (
	"time"

	"gymdesk_backend/internals/features/foods/model"
)

type CreateFoodRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=120"`
	Category *string  `json:"category,omitempty" validate:"omitempty,max=60"`
	Calories float64  `json:"calories" validate:"gte=0"`
	Protein  *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fat      *float64 `json:"fat,omitempty" validate:"omitempty,gte=0"`
	Unit     *string  `json:"unit,omitempty" validate:"omitempty,max=30"`
}

type UpdateFoodRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Category *string  `json:"category,omitempty" validate:"omitempty,max=60"`
	Calories *float64 `json:"calories,omitempty" validate:"omitempty,gte=0"`
	Protein  *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fat      *float64 `json:"fat,omitempty" validate:"omitempty,gte=0"`
	Unit     *string  `json:"unit,omitempty" validate:"omitempty,max=30"`
}

func (r CreateFoodRequest) ToModel(orgID uint, createdBy uint) model.FoodModel {
	return model.FoodModel{
		FoodOrgID:     orgID,
		FoodName:      r.Name,
		FoodCategory:  r.Category,
		FoodCalories:  r.Calories,
		FoodProtein:   r.Protein,
		FoodCarbs:     r.Carbs,
		FoodFat:       r.Fat,
		FoodUnit:      r.Unit,
		FoodCreatedBy: &createdBy,
	}
}

func (r UpdateFoodRequest) ApplyToModel(m *model.FoodModel, updatedBy uint) {
	if r.Name != nil {
		m.FoodName = *r.Name
	}
	if r.Category != nil {
		m.FoodCategory = r.Category
	}
	if r.Calories != nil {
		m.FoodCalories = *r.Calories
	}
	if r.Protein != nil {
		m.FoodProtein = r.Protein
	}
	if r.Carbs != nil {
		m.FoodCarbs = r.Carbs
	}
	if r.Fat != nil {
		m.FoodFat = r.Fat
	}
	if r.Unit != nil {
		m.FoodUnit = r.Unit
	}
	now := time.Now()
	m.FoodUpdatedAt = &now
	m.FoodUpdatedBy = &updatedBy
}
