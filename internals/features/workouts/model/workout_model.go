package model

import (
	"time"
)

type WorkoutModel struct {
	WorkoutID          uint    `json:"workout_id" gorm:"column:workout_id;primaryKey;autoIncrement"`
	WorkoutOrgID       uint    `json:"workout_org_id" gorm:"column:workout_org_id;not null"`
	WorkoutName        string  `json:"workout_name" gorm:"column:workout_name;type:varchar(120);not null"`
	WorkoutDescription *string `json:"workout_description,omitempty" gorm:"column:workout_description;type:text"`
	WorkoutDifficulty  *string `json:"workout_difficulty,omitempty" gorm:"column:workout_difficulty;type:varchar(20)"`

	WorkoutIsDeleted bool `json:"-" gorm:"column:workout_is_deleted;not null;default:false"`

	WorkoutCreatedAt time.Time  `json:"workout_created_at" gorm:"column:workout_created_at;not null;autoCreateTime"`
	WorkoutUpdatedAt *time.Time `json:"workout_updated_at,omitempty" gorm:"column:workout_updated_at"`
	WorkoutCreatedBy *uint      `json:"workout_created_by,omitempty" gorm:"column:workout_created_by"`
	WorkoutUpdatedBy *uint      `json:"workout_updated_by,omitempty" gorm:"column:workout_updated_by"`
}

func (WorkoutModel) TableName() string {
	return "workouts"
}

// WorkoutExerciseModel is one exercise slot in a workout. Identity per
// workout is exercise_id; position/sets/reps are mutable.
type WorkoutExerciseModel struct {
	WorkoutExerciseID uint `json:"workout_exercise_id" gorm:"column:workout_exercise_id;primaryKey;autoIncrement"`
	WorkoutID         uint `json:"workout_id" gorm:"column:workout_id;not null"`
	ExerciseID        uint `json:"exercise_id" gorm:"column:exercise_id;not null"`
	Position          int  `json:"position" gorm:"column:position;not null;default:0"`
	Sets              int  `json:"sets" gorm:"column:sets;not null;default:1"`
	Reps              int  `json:"reps" gorm:"column:reps;not null;default:1"`
	IsDeleted         bool `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (WorkoutExerciseModel) TableName() string {
	return "workout_exercises"
}
