package model

import (
	"time"
)

// FoodModel is the nutrition catalog. Unlike the other entities it is
// hard-deleted: meal rows keep only the food id and plans are expected
// to drop stale references on their next reconcile.
type FoodModel struct {
	FoodID       uint     `json:"food_id" gorm:"column:food_id;primaryKey;autoIncrement"`
	FoodOrgID    uint     `json:"food_org_id" gorm:"column:food_org_id;not null"`
	FoodName     string   `json:"food_name" gorm:"column:food_name;type:varchar(120);not null"`
	FoodCategory *string  `json:"food_category,omitempty" gorm:"column:food_category;type:varchar(60)"`
	FoodCalories float64  `json:"food_calories" gorm:"column:food_calories;not null;default:0"`
	FoodProtein  *float64 `json:"food_protein,omitempty" gorm:"column:food_protein"`
	FoodCarbs    *float64 `json:"food_carbs,omitempty" gorm:"column:food_carbs"`
	FoodFat      *float64 `json:"food_fat,omitempty" gorm:"column:food_fat"`
	FoodUnit     *string  `json:"food_unit,omitempty" gorm:"column:food_unit;type:varchar(30)"`

	FoodCreatedAt time.Time  `json:"food_created_at" gorm:"column:food_created_at;not null;autoCreateTime"`
	FoodUpdatedAt *time.Time `json:"food_updated_at,omitempty" gorm:"column:food_updated_at"`
	FoodCreatedBy *uint      `json:"food_created_by,omitempty" gorm:"column:food_created_by"`
	FoodUpdatedBy *uint      `json:"food_updated_by,omitempty" gorm:"column:food_updated_by"`
}

func (FoodModel) TableName() string {
	return "foods"
}
