package model

import (
	"time"
)

type ExerciseModel struct {
	ExerciseID          uint    `json:"exercise_id" gorm:"column:exercise_id;primaryKey;autoIncrement"`
	ExerciseOrgID       uint    `json:"exercise_org_id" gorm:"column:exercise_org_id;not null"`
	ExerciseName        string  `json:"exercise_name" gorm:"column:exercise_name;type:varchar(120);not null"`
	ExerciseDescription *string `json:"exercise_description,omitempty" gorm:"column:exercise_description;type:text"`
	ExerciseIntensity   *string `json:"exercise_intensity,omitempty" gorm:"column:exercise_intensity;type:varchar(20)"`
	ExerciseDifficulty  *string `json:"exercise_difficulty,omitempty" gorm:"column:exercise_difficulty;type:varchar(20)"`
	ExerciseType        *string `json:"exercise_type,omitempty" gorm:"column:exercise_type;type:varchar(40)"`
	ExerciseVideoURL    *string `json:"exercise_video_url,omitempty" gorm:"column:exercise_video_url;type:text"`

	ExerciseIsDeleted bool `json:"-" gorm:"column:exercise_is_deleted;not null;default:false"`

	ExerciseCreatedAt time.Time  `json:"exercise_created_at" gorm:"column:exercise_created_at;not null;autoCreateTime"`
	ExerciseUpdatedAt *time.Time `json:"exercise_updated_at,omitempty" gorm:"column:exercise_updated_at"`
	ExerciseCreatedBy *uint      `json:"exercise_created_by,omitempty" gorm:"column:exercise_created_by"`
	ExerciseUpdatedBy *uint      `json:"exercise_updated_by,omitempty" gorm:"column:exercise_updated_by"`
}

func (ExerciseModel) TableName() string {
	return "exercises"
}
