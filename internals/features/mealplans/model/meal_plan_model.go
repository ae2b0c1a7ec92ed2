package model

import (
	"time"
)

type MealPlanModel struct {
	MealPlanID          uint    `json:"meal_plan_id" gorm:"column:meal_plan_id;primaryKey;autoIncrement"`
	MealPlanOrgID       uint    `json:"meal_plan_org_id" gorm:"column:meal_plan_org_id;not null"`
	MealPlanName        string  `json:"meal_plan_name" gorm:"column:meal_plan_name;type:varchar(120);not null"`
	MealPlanDescription *string `json:"meal_plan_description,omitempty" gorm:"column:meal_plan_description;type:text"`

	MealPlanIsDeleted bool `json:"-" gorm:"column:meal_plan_is_deleted;not null;default:false"`

	MealPlanCreatedAt time.Time  `json:"meal_plan_created_at" gorm:"column:meal_plan_created_at;not null;autoCreateTime"`
	MealPlanUpdatedAt *time.Time `json:"meal_plan_updated_at,omitempty" gorm:"column:meal_plan_updated_at"`
	MealPlanCreatedBy *uint      `json:"meal_plan_created_by,omitempty" gorm:"column:meal_plan_created_by"`
	MealPlanUpdatedBy *uint      `json:"meal_plan_updated_by,omitempty" gorm:"column:meal_plan_updated_by"`
}

func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// MealModel is one slot in a plan. Identity inside a plan is
// (meal_time, food_id); quantity is the mutable attribute.
type MealModel struct {
	MealID       uint    `json:"meal_id" gorm:"column:meal_id;primaryKey;autoIncrement"`
	MealPlanID   uint    `json:"meal_plan_id" gorm:"column:meal_plan_id;not null"`
	MealTime     string  `json:"meal_time" gorm:"column:meal_time;type:varchar(20);not null"`
	MealFoodID   uint    `json:"meal_food_id" gorm:"column:meal_food_id;not null"`
	MealQuantity float64 `json:"meal_quantity" gorm:"column:meal_quantity;not null;default:1"`
	IsDeleted    bool    `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (MealModel) TableName() string {
	return "meals"
}

// MemberMealPlanModel assigns a plan to a client (set-like per plan).
type MemberMealPlanModel struct {
	MemberMealPlanID uint `json:"member_meal_plan_id" gorm:"column:member_meal_plan_id;primaryKey;autoIncrement"`
	MealPlanID       uint `json:"meal_plan_id" gorm:"column:meal_plan_id;not null"`
	ClientID         uint `json:"client_id" gorm:"column:client_id;not null"`
	IsDeleted        bool `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (MemberMealPlanModel) TableName() string {
	return "member_meal_plans"
}
