// dto/coach_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"gymdesk_backend/internals/features/coaches/model"
)

/* ========== REQUEST DTOs ========== */

type BankDetailInput struct {
	BankDetailBankName      string  `json:"bank_detail_bank_name" validate:"required,max=120"`
	BankDetailAccountName   string  `json:"bank_detail_account_name" validate:"required,max=120"`
	BankDetailAccountNumber string  `json:"bank_detail_account_number" validate:"required,max=40"`
	BankDetailBranchCode    *string `json:"bank_detail_branch_code" validate:"omitempty,max=20"`
}

type CreateCoachRequest struct {
	CoachFullName       string           `json:"coach_full_name" validate:"required,min=2,max=120"`
	CoachEmail          *string          `json:"coach_email" validate:"omitempty,email"`
	CoachPhone          *string          `json:"coach_phone" validate:"omitempty,max=30"`
	CoachSpecialization *string          `json:"coach_specialization" validate:"omitempty,max=120"`
	CoachBio            *string          `json:"coach_bio"`
	CoachExperienceYrs  *int             `json:"coach_experience_years" validate:"omitempty,min=0,max=80"`
	CoachOrgStatus      string           `json:"coach_org_status" validate:"omitempty,oneof=active inactive pending"`
	CoachOrgOwnID       *string          `json:"coach_org_own_id" validate:"omitempty,max=40"`
	BankDetail          *BankDetailInput `json:"bank_detail"`
}

type UpdateCoachRequest struct {
	CoachFullName       *string          `json:"coach_full_name" validate:"omitempty,min=2,max=120"`
	CoachEmail          *string          `json:"coach_email" validate:"omitempty,email"`
	CoachPhone          *string          `json:"coach_phone" validate:"omitempty,max=30"`
	CoachSpecialization *string          `json:"coach_specialization" validate:"omitempty,max=120"`
	CoachBio            *string          `json:"coach_bio"`
	CoachExperienceYrs  *int             `json:"coach_experience_years" validate:"omitempty,min=0,max=80"`
	CoachOrgStatus      *string          `json:"coach_org_status" validate:"omitempty,oneof=active inactive pending"`
	CoachOrgOwnID       *string          `json:"coach_org_own_id" validate:"omitempty,max=40"`
	BankDetail          *BankDetailInput `json:"bank_detail"`
}

/* ========== RESPONSE DTOs ========== */

type CoachResponse struct {
	CoachID             uint       `json:"coach_id"`
	CoachFullName       string     `json:"coach_full_name"`
	CoachEmail          *string    `json:"coach_email,omitempty"`
	CoachPhone          *string    `json:"coach_phone,omitempty"`
	CoachSpecialization *string    `json:"coach_specialization,omitempty"`
	CoachBio            *string    `json:"coach_bio,omitempty"`
	CoachExperienceYrs  *int       `json:"coach_experience_years,omitempty"`
	CoachCreatedAt      time.Time  `json:"coach_created_at"`
	CoachUpdatedAt      *time.Time `json:"coach_updated_at,omitempty"`
}

// CoachListRow: coach columns + per-org status + bank detail and client
// count aggregated into the flat row.
type CoachListRow struct {
	CoachID             uint           `json:"coach_id" gorm:"column:coach_id"`
	CoachFullName       string         `json:"coach_full_name" gorm:"column:coach_full_name"`
	CoachEmail          *string        `json:"coach_email,omitempty" gorm:"column:coach_email"`
	CoachPhone          *string        `json:"coach_phone,omitempty" gorm:"column:coach_phone"`
	CoachSpecialization *string        `json:"coach_specialization,omitempty" gorm:"column:coach_specialization"`
	CoachExperienceYrs  *int           `json:"coach_experience_years,omitempty" gorm:"column:coach_experience_years"`
	CoachOrgStatus      string         `json:"coach_org_status" gorm:"column:coach_org_status"`
	CoachOrgOwnID       *string        `json:"coach_org_own_id,omitempty" gorm:"column:coach_org_own_id"`
	CoachClientCount    int64          `json:"coach_client_count" gorm:"column:coach_client_count"`
	CoachCreatedAt      time.Time      `json:"coach_created_at" gorm:"column:coach_created_at"`
	BankDetail          datatypes.JSON `json:"bank_detail" gorm:"column:bank_detail"`
}

/* ========== MODEL <-> DTO ========== */

func NewCoachResponse(m *model.CoachModel) *CoachResponse {
	if m == nil {
		return nil
	}
	return &CoachResponse{
		CoachID:             m.CoachID,
		CoachFullName:       m.CoachFullName,
		CoachEmail:          m.CoachEmail,
		CoachPhone:          m.CoachPhone,
		CoachSpecialization: m.CoachSpecialization,
		CoachBio:            m.CoachBio,
		CoachExperienceYrs:  m.CoachExperienceYrs,
		CoachCreatedAt:      m.CoachCreatedAt,
		CoachUpdatedAt:      m.CoachUpdatedAt,
	}
}

func (r *CreateCoachRequest) ToModel(createdBy uint) *model.CoachModel {
	return &model.CoachModel{
		CoachFullName:       r.CoachFullName,
		CoachEmail:          r.CoachEmail,
		CoachPhone:          r.CoachPhone,
		CoachSpecialization: r.CoachSpecialization,
		CoachBio:            r.CoachBio,
		CoachExperienceYrs:  r.CoachExperienceYrs,
		CoachCreatedBy:      &createdBy,
	}
}

func (r *UpdateCoachRequest) ApplyToModel(m *model.CoachModel, updatedBy uint) {
	if r.CoachFullName != nil {
		m.CoachFullName = *r.CoachFullName
	}
	if r.CoachEmail != nil {
		m.CoachEmail = r.CoachEmail
	}
	if r.CoachPhone != nil {
		m.CoachPhone = r.CoachPhone
	}
	if r.CoachSpecialization != nil {
		m.CoachSpecialization = r.CoachSpecialization
	}
	if r.CoachBio != nil {
		m.CoachBio = r.CoachBio
	}
	if r.CoachExperienceYrs != nil {
		m.CoachExperienceYrs = r.CoachExperienceYrs
	}
	now := time.Now()
	m.CoachUpdatedAt = &now
	m.CoachUpdatedBy = &updatedBy
}
