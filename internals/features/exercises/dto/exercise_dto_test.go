package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymdesk_backend/internals/features/exercises/model"
)

func strPtr(s string) *string { return &s }

func TestApplyToModelPartialPatch(t *testing.T) {
	m := model.ExerciseModel{
		ExerciseID:         3,
		ExerciseOrgID:      9,
		ExerciseName:       "Push Up",
		ExerciseIntensity:  strPtr("medium"),
		ExerciseDifficulty: strPtr("beginner"),
	}

	req := UpdateExerciseRequest{
		ExerciseIntensity: strPtr("high"),
	}
	req.ApplyToModel(&m, 42)

	// only the provided field changes
	assert.Equal(t, "Push Up", m.ExerciseName)
	assert.Equal(t, "high", *m.ExerciseIntensity)
	assert.Equal(t, "beginner", *m.ExerciseDifficulty)

	// audit stamps always move
	assert.NotNil(t, m.ExerciseUpdatedAt)
	assert.Equal(t, uint(42), *m.ExerciseUpdatedBy)
}

func TestApplyToModelEmptyRequestTouchesNothingButStamps(t *testing.T) {
	m := model.ExerciseModel{
		ExerciseName:        "Squat",
		ExerciseDescription: strPtr("legs"),
	}

	req := UpdateExerciseRequest{}
	req.ApplyToModel(&m, 7)

	assert.Equal(t, "Squat", m.ExerciseName)
	assert.Equal(t, "legs", *m.ExerciseDescription)
	assert.Equal(t, uint(7), *m.ExerciseUpdatedBy)
}
