package service

import (
	"gymdesk_backend/internals/features/mealplans/dto"
	"gymdesk_backend/internals/features/mealplans/model"
)

type mealKey struct {
	MealTime string
	FoodID   uint
}

// MealQtyUpdate points at an existing row whose quantity changed.
type MealQtyUpdate struct {
	MealID   uint
	Quantity float64
}

// DiffMeals compares the live meal rows of a plan with the desired set.
// A meal is identified by (meal_time, food_id); quantity is mutable, so a
// matching identity with a different quantity becomes an update rather
// than a delete+insert. Duplicate identities in desired collapse to the
// last occurrence.
func DiffMeals(existing []model.MealModel, desired []dto.MealInput) (toInsert []dto.MealInput, toUpdate []MealQtyUpdate, toRemove []uint) {
	want := make(map[mealKey]dto.MealInput, len(desired))
	order := make([]mealKey, 0, len(desired))
	for _, in := range desired {
		k := mealKey{MealTime: in.MealTime, FoodID: in.FoodID}
		if _, seen := want[k]; !seen {
			order = append(order, k)
		}
		want[k] = in
	}

	have := make(map[mealKey]model.MealModel, len(existing))
	for _, m := range existing {
		have[mealKey{MealTime: m.MealTime, FoodID: m.MealFoodID}] = m
	}

	for _, k := range order {
		in := want[k]
		cur, ok := have[k]
		if !ok {
			toInsert = append(toInsert, in)
			continue
		}
		if cur.MealQuantity != in.Quantity {
			toUpdate = append(toUpdate, MealQtyUpdate{MealID: cur.MealID, Quantity: in.Quantity})
		}
	}

	for _, m := range existing {
		if _, keep := want[mealKey{MealTime: m.MealTime, FoodID: m.MealFoodID}]; !keep {
			toRemove = append(toRemove, m.MealID)
		}
	}
	return toInsert, toUpdate, toRemove
}
