// dto/exercise_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"gymdesk_backend/internals/features/exercises/model"
)

/* ========== REQUEST DTOs ========== */

type CreateExerciseRequest struct {
	ExerciseName        string  `json:"exercise_name" validate:"required,min=2,max=120"`
	ExerciseDescription *string `json:"exercise_description"`
	ExerciseIntensity   *string `json:"exercise_intensity" validate:"omitempty,oneof=low medium high"`
	ExerciseDifficulty  *string `json:"exercise_difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	ExerciseType        *string `json:"exercise_type" validate:"omitempty,max=40"`
	ExerciseVideoURL    *string `json:"exercise_video_url" validate:"omitempty,url"`

	EquipmentIDs       []uint `json:"equipment_ids"`
	PrimaryMuscleIDs   []uint `json:"primary_muscle_ids"`
	SecondaryMuscleIDs []uint `json:"secondary_muscle_ids"`
	PrimaryJointIDs    []uint `json:"primary_joint_ids"`
}

// UpdateExerciseRequest: nil slice pointer = leave that tag set alone,
// empty slice = clear it.
type UpdateExerciseRequest struct {
	ExerciseName        *string `json:"exercise_name" validate:"omitempty,min=2,max=120"`
	ExerciseDescription *string `json:"exercise_description"`
	ExerciseIntensity   *string `json:"exercise_intensity" validate:"omitempty,oneof=low medium high"`
	ExerciseDifficulty  *string `json:"exercise_difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	ExerciseType        *string `json:"exercise_type" validate:"omitempty,max=40"`
	ExerciseVideoURL    *string `json:"exercise_video_url" validate:"omitempty,url"`

	EquipmentIDs       *[]uint `json:"equipment_ids"`
	PrimaryMuscleIDs   *[]uint `json:"primary_muscle_ids"`
	SecondaryMuscleIDs *[]uint `json:"secondary_muscle_ids"`
	PrimaryJointIDs    *[]uint `json:"primary_joint_ids"`
}

/* ========== RESPONSE DTOs ========== */

type ExerciseResponse struct {
	ExerciseID          uint       `json:"exercise_id"`
	ExerciseOrgID       uint       `json:"exercise_org_id"`
	ExerciseName        string     `json:"exercise_name"`
	ExerciseDescription *string    `json:"exercise_description,omitempty"`
	ExerciseIntensity   *string    `json:"exercise_intensity,omitempty"`
	ExerciseDifficulty  *string    `json:"exercise_difficulty,omitempty"`
	ExerciseType        *string    `json:"exercise_type,omitempty"`
	ExerciseVideoURL    *string    `json:"exercise_video_url,omitempty"`
	ExerciseCreatedAt   time.Time  `json:"exercise_created_at"`
	ExerciseUpdatedAt   *time.Time `json:"exercise_updated_at,omitempty"`

	EquipmentIDs       []uint `json:"equipment_ids,omitempty"`
	PrimaryMuscleIDs   []uint `json:"primary_muscle_ids,omitempty"`
	SecondaryMuscleIDs []uint `json:"secondary_muscle_ids,omitempty"`
	PrimaryJointIDs    []uint `json:"primary_joint_ids,omitempty"`
}

// ExerciseListRow: exercise columns with each tag set aggregated to a JSON
// array of {id, name} objects.
type ExerciseListRow struct {
	ExerciseID         uint           `json:"exercise_id" gorm:"column:exercise_id"`
	ExerciseName       string         `json:"exercise_name" gorm:"column:exercise_name"`
	ExerciseIntensity  *string        `json:"exercise_intensity,omitempty" gorm:"column:exercise_intensity"`
	ExerciseDifficulty *string        `json:"exercise_difficulty,omitempty" gorm:"column:exercise_difficulty"`
	ExerciseType       *string        `json:"exercise_type,omitempty" gorm:"column:exercise_type"`
	ExerciseCreatedAt  time.Time      `json:"exercise_created_at" gorm:"column:exercise_created_at"`
	Equipments         datatypes.JSON `json:"equipments" gorm:"column:equipments"`
	PrimaryMuscles     datatypes.JSON `json:"primary_muscles" gorm:"column:primary_muscles"`
	SecondaryMuscles   datatypes.JSON `json:"secondary_muscles" gorm:"column:secondary_muscles"`
	PrimaryJoints      datatypes.JSON `json:"primary_joints" gorm:"column:primary_joints"`
}

/* ========== MODEL <-> DTO ========== */

func NewExerciseResponse(m *model.ExerciseModel) *ExerciseResponse {
	if m == nil {
		return nil
	}
	return &ExerciseResponse{
		ExerciseID:          m.ExerciseID,
		ExerciseOrgID:       m.ExerciseOrgID,
		ExerciseName:        m.ExerciseName,
		ExerciseDescription: m.ExerciseDescription,
		ExerciseIntensity:   m.ExerciseIntensity,
		ExerciseDifficulty:  m.ExerciseDifficulty,
		ExerciseType:        m.ExerciseType,
		ExerciseVideoURL:    m.ExerciseVideoURL,
		ExerciseCreatedAt:   m.ExerciseCreatedAt,
		ExerciseUpdatedAt:   m.ExerciseUpdatedAt,
	}
}

func (r *CreateExerciseRequest) ToModel(orgID, createdBy uint) *model.ExerciseModel {
	return &model.ExerciseModel{
		ExerciseOrgID:       orgID,
		ExerciseName:        r.ExerciseName,
		ExerciseDescription: r.ExerciseDescription,
		ExerciseIntensity:   r.ExerciseIntensity,
		ExerciseDifficulty:  r.ExerciseDifficulty,
		ExerciseType:        r.ExerciseType,
		ExerciseVideoURL:    r.ExerciseVideoURL,
		ExerciseCreatedBy:   &createdBy,
	}
}

func (r *UpdateExerciseRequest) ApplyToModel(m *model.ExerciseModel, updatedBy uint) {
	if r.ExerciseName != nil {
		m.ExerciseName = *r.ExerciseName
	}
	if r.ExerciseDescription != nil {
		m.ExerciseDescription = r.ExerciseDescription
	}
	if r.ExerciseIntensity != nil {
		m.ExerciseIntensity = r.ExerciseIntensity
	}
	if r.ExerciseDifficulty != nil {
		m.ExerciseDifficulty = r.ExerciseDifficulty
	}
	if r.ExerciseType != nil {
		m.ExerciseType = r.ExerciseType
	}
	if r.ExerciseVideoURL != nil {
		m.ExerciseVideoURL = r.ExerciseVideoURL
	}
	now := time.Now()
	m.ExerciseUpdatedAt = &now
	m.ExerciseUpdatedBy = &updatedBy
}
