package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymdesk_backend/internals/features/mealplans/dto"
	"gymdesk_backend/internals/features/mealplans/model"
)

func TestDiffMealsQuantityUpdateAndInsert(t *testing.T) {
	existing := []model.MealModel{
		{MealID: 10, MealPlanID: 1, MealTime: "breakfast", MealFoodID: 1, MealQuantity: 2},
	}
	desired := []dto.MealInput{
		{MealTime: "breakfast", FoodID: 1, Quantity: 3},
		{MealTime: "lunch", FoodID: 5, Quantity: 1},
	}

	toInsert, toUpdate, toRemove := DiffMeals(existing, desired)

	// breakfast quantity changed in place, lunch inserted, nothing removed
	assert.Equal(t, []dto.MealInput{{MealTime: "lunch", FoodID: 5, Quantity: 1}}, toInsert)
	assert.Equal(t, []MealQtyUpdate{{MealID: 10, Quantity: 3}}, toUpdate)
	assert.Empty(t, toRemove)
}

func TestDiffMealsIdempotent(t *testing.T) {
	existing := []model.MealModel{
		{MealID: 10, MealTime: "breakfast", MealFoodID: 1, MealQuantity: 3},
		{MealID: 11, MealTime: "lunch", MealFoodID: 5, MealQuantity: 1},
	}
	desired := []dto.MealInput{
		{MealTime: "breakfast", FoodID: 1, Quantity: 3},
		{MealTime: "lunch", FoodID: 5, Quantity: 1},
	}

	toInsert, toUpdate, toRemove := DiffMeals(existing, desired)
	assert.Empty(t, toInsert)
	assert.Empty(t, toUpdate)
	assert.Empty(t, toRemove)
}

func TestDiffMealsEmptyDesiredRemovesAll(t *testing.T) {
	existing := []model.MealModel{
		{MealID: 10, MealTime: "breakfast", MealFoodID: 1, MealQuantity: 2},
		{MealID: 11, MealTime: "dinner", MealFoodID: 2, MealQuantity: 1},
	}

	toInsert, toUpdate, toRemove := DiffMeals(existing, nil)
	assert.Empty(t, toInsert)
	assert.Empty(t, toUpdate)
	assert.ElementsMatch(t, []uint{10, 11}, toRemove)
}

func TestDiffMealsSameFoodDifferentSlot(t *testing.T) {
	// identity is (meal_time, food_id): the same food at another slot is a
	// different meal
	existing := []model.MealModel{
		{MealID: 10, MealTime: "breakfast", MealFoodID: 1, MealQuantity: 2},
	}
	desired := []dto.MealInput{
		{MealTime: "snack", FoodID: 1, Quantity: 2},
	}

	toInsert, toUpdate, toRemove := DiffMeals(existing, desired)
	assert.Equal(t, []dto.MealInput{{MealTime: "snack", FoodID: 1, Quantity: 2}}, toInsert)
	assert.Empty(t, toUpdate)
	assert.Equal(t, []uint{10}, toRemove)
}

func TestDiffMealsDuplicateDesiredCollapses(t *testing.T) {
	desired := []dto.MealInput{
		{MealTime: "breakfast", FoodID: 1, Quantity: 2},
		{MealTime: "breakfast", FoodID: 1, Quantity: 4},
	}

	toInsert, toUpdate, toRemove := DiffMeals(nil, desired)
	assert.Equal(t, []dto.MealInput{{MealTime: "breakfast", FoodID: 1, Quantity: 4}}, toInsert)
	assert.Empty(t, toUpdate)
	assert.Empty(t, toRemove)
}
