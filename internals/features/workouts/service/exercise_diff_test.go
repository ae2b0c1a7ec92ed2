package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymdesk_backend/internals/features/workouts/dto"
	"gymdesk_backend/internals/features/workouts/model"
)

func TestDiffWorkoutExercises(t *testing.T) {
	existing := []model.WorkoutExerciseModel{
		{WorkoutExerciseID: 1, ExerciseID: 100, Position: 0, Sets: 3, Reps: 10},
		{WorkoutExerciseID: 2, ExerciseID: 101, Position: 1, Sets: 3, Reps: 12},
	}
	desired := []dto.WorkoutExerciseInput{
		{ExerciseID: 100, Position: 1, Sets: 4, Reps: 10}, // moved + more sets
		{ExerciseID: 102, Position: 0, Sets: 3, Reps: 8},  // new
		// exercise 101 dropped
	}

	toInsert, toUpdate, toRemove := DiffWorkoutExercises(existing, desired)
	assert.Equal(t, []dto.WorkoutExerciseInput{{ExerciseID: 102, Position: 0, Sets: 3, Reps: 8}}, toInsert)
	assert.Equal(t, []SlotUpdate{{WorkoutExerciseID: 1, Position: 1, Sets: 4, Reps: 10}}, toUpdate)
	assert.Equal(t, []uint{2}, toRemove)
}

func TestDiffWorkoutExercisesIdempotent(t *testing.T) {
	existing := []model.WorkoutExerciseModel{
		{WorkoutExerciseID: 1, ExerciseID: 100, Position: 0, Sets: 3, Reps: 10},
	}
	desired := []dto.WorkoutExerciseInput{
		{ExerciseID: 100, Position: 0, Sets: 3, Reps: 10},
	}

	toInsert, toUpdate, toRemove := DiffWorkoutExercises(existing, desired)
	assert.Empty(t, toInsert)
	assert.Empty(t, toUpdate)
	assert.Empty(t, toRemove)
}

func TestDiffWorkoutExercisesEmptyDesired(t *testing.T) {
	existing := []model.WorkoutExerciseModel{
		{WorkoutExerciseID: 1, ExerciseID: 100},
		{WorkoutExerciseID: 2, ExerciseID: 101},
	}

	toInsert, toUpdate, toRemove := DiffWorkoutExercises(existing, nil)
	assert.Empty(t, toInsert)
	assert.Empty(t, toUpdate)
	assert.ElementsMatch(t, []uint{1, 2}, toRemove)
}
