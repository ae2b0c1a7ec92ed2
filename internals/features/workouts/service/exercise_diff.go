package service

import (
	"gymdesk_backend/internals/features/workouts/dto"
	"gymdesk_backend/internals/features/workouts/model"
)

// SlotUpdate points at an existing slot whose position/sets/reps changed.
type SlotUpdate struct {
	WorkoutExerciseID uint
	Position          int
	Sets              int
	Reps              int
}

// DiffWorkoutExercises compares the live exercise slots of a workout
// with the desired set. Identity per workout is exercise_id; position,
// sets and reps are mutable. Duplicate exercise ids in desired collapse
// to the last occurrence.
func DiffWorkoutExercises(existing []model.WorkoutExerciseModel, desired []dto.WorkoutExerciseInput) (toInsert []dto.WorkoutExerciseInput, toUpdate []SlotUpdate, toRemove []uint) {
	want := make(map[uint]dto.WorkoutExerciseInput, len(desired))
	order := make([]uint, 0, len(desired))
	for _, in := range desired {
		if _, seen := want[in.ExerciseID]; !seen {
			order = append(order, in.ExerciseID)
		}
		want[in.ExerciseID] = in
	}

	have := make(map[uint]model.WorkoutExerciseModel, len(existing))
	for _, we := range existing {
		have[we.ExerciseID] = we
	}

	for _, exerciseID := range order {
		in := want[exerciseID]
		cur, ok := have[exerciseID]
		if !ok {
			toInsert = append(toInsert, in)
			continue
		}
		if cur.Position != in.Position || cur.Sets != in.Sets || cur.Reps != in.Reps {
			toUpdate = append(toUpdate, SlotUpdate{
				WorkoutExerciseID: cur.WorkoutExerciseID,
				Position:          in.Position,
				Sets:              in.Sets,
				Reps:              in.Reps,
			})
		}
	}

	for _, we := range existing {
		if _, keep := want[we.ExerciseID]; !keep {
			toRemove = append(toRemove, we.WorkoutExerciseID)
		}
	}
	return toInsert, toUpdate, toRemove
}
