package dto

import (
	"time"

	"gymdesk_backend/internals/features/workouts/model"

	"gorm.io/datatypes"
)

type WorkoutExerciseInput struct {
	ExerciseID uint `json:"exercise_id" validate:"required,gt=0"`
	Position   int  `json:"position" validate:"gte=0"`
	Sets       int  `json:"sets" validate:"required,gt=0"`
	Reps       int  `json:"reps" validate:"required,gt=0"`
}

type CreateWorkoutRequest struct {
	Name        string                 `json:"name" validate:"required,min=2,max=120"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=2000"`
	Difficulty  *string                `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Exercises   []WorkoutExerciseInput `json:"exercises,omitempty" validate:"omitempty,dive"`
}

type UpdateWorkoutRequest struct {
	Name        *string                 `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string                 `json:"description,omitempty" validate:"omitempty,max=2000"`
	Difficulty  *string                 `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Exercises   *[]WorkoutExerciseInput `json:"exercises,omitempty" validate:"omitempty,dive"`
}

func (r CreateWorkoutRequest) ToModel(orgID uint, createdBy uint) model.WorkoutModel {
	return model.WorkoutModel{
		WorkoutOrgID:       orgID,
		WorkoutName:        r.Name,
		WorkoutDescription: r.Description,
		WorkoutDifficulty:  r.Difficulty,
		WorkoutCreatedBy:   &createdBy,
	}
}

func (r UpdateWorkoutRequest) ApplyToModel(m *model.WorkoutModel, updatedBy uint) {
	if r.Name != nil {
		m.WorkoutName = *r.Name
	}
	if r.Description != nil {
		m.WorkoutDescription = r.Description
	}
	if r.Difficulty != nil {
		m.WorkoutDifficulty = r.Difficulty
	}
	now := time.Now()
	m.WorkoutUpdatedAt = &now
	m.WorkoutUpdatedBy = &updatedBy
}

type WorkoutExerciseResponse struct {
	WorkoutExerciseID uint `json:"workout_exercise_id"`
	ExerciseID        uint `json:"exercise_id"`
	Position          int  `json:"position"`
	Sets              int  `json:"sets"`
	Reps              int  `json:"reps"`
}

type WorkoutResponse struct {
	WorkoutID   uint                      `json:"workout_id"`
	Name        string                    `json:"name"`
	Description *string                   `json:"description,omitempty"`
	Difficulty  *string                   `json:"difficulty,omitempty"`
	Exercises   []WorkoutExerciseResponse `json:"exercises"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   *time.Time                `json:"updated_at,omitempty"`
}

func NewWorkoutResponse(m model.WorkoutModel, exercises []model.WorkoutExerciseModel) WorkoutResponse {
	out := WorkoutResponse{
		WorkoutID:   m.WorkoutID,
		Name:        m.WorkoutName,
		Description: m.WorkoutDescription,
		Difficulty:  m.WorkoutDifficulty,
		Exercises:   make([]WorkoutExerciseResponse, 0, len(exercises)),
		CreatedAt:   m.WorkoutCreatedAt,
		UpdatedAt:   m.WorkoutUpdatedAt,
	}
	for _, we := range exercises {
		out.Exercises = append(out.Exercises, WorkoutExerciseResponse{
			WorkoutExerciseID: we.WorkoutExerciseID,
			ExerciseID:        we.ExerciseID,
			Position:          we.Position,
			Sets:              we.Sets,
			Reps:              we.Reps,
		})
	}
	return out
}

type WorkoutListRow struct {
	WorkoutID  uint           `json:"workout_id" gorm:"column:workout_id"`
	Name       string         `json:"name" gorm:"column:workout_name"`
	Difficulty *string        `json:"difficulty,omitempty" gorm:"column:workout_difficulty"`
	Exercises  datatypes.JSON `json:"exercises" gorm:"column:exercises"`
	CreatedAt  time.Time      `json:"created_at" gorm:"column:workout_created_at"`
}
