// dto/client_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"gymdesk_backend/internals/features/clients/model"
)

/* ========== REQUEST DTOs ========== */

type CreateClientRequest struct {
	ClientFullName         string     `json:"client_full_name" validate:"required,min=2,max=120"`
	ClientEmail            *string    `json:"client_email" validate:"omitempty,email"`
	ClientPhone            *string    `json:"client_phone" validate:"omitempty,max=30"`
	ClientGender           *string    `json:"client_gender" validate:"omitempty,oneof=male female other"`
	ClientDOB              *time.Time `json:"client_dob"`
	ClientMembershipPlanID *uint      `json:"client_membership_plan_id"`
	ClientOrgStatus        string     `json:"client_org_status" validate:"omitempty,oneof=active inactive pending"`
	CoachIDs               []uint     `json:"coach_ids"`
}

type UpdateClientRequest struct {
	ClientFullName         *string    `json:"client_full_name" validate:"omitempty,min=2,max=120"`
	ClientEmail            *string    `json:"client_email" validate:"omitempty,email"`
	ClientPhone            *string    `json:"client_phone" validate:"omitempty,max=30"`
	ClientGender           *string    `json:"client_gender" validate:"omitempty,oneof=male female other"`
	ClientDOB              *time.Time `json:"client_dob"`
	ClientMembershipPlanID *uint      `json:"client_membership_plan_id"`
	ClientOrgStatus        *string    `json:"client_org_status" validate:"omitempty,oneof=active inactive pending"`
	// nil = leave assignments alone; empty slice = remove all coaches
	CoachIDs *[]uint `json:"coach_ids"`
}

/* ========== RESPONSE DTOs ========== */

type ClientResponse struct {
	ClientID               uint       `json:"client_id"`
	ClientFullName         string     `json:"client_full_name"`
	ClientEmail            *string    `json:"client_email,omitempty"`
	ClientPhone            *string    `json:"client_phone,omitempty"`
	ClientGender           *string    `json:"client_gender,omitempty"`
	ClientDOB              *time.Time `json:"client_dob,omitempty"`
	ClientMembershipPlanID *uint      `json:"client_membership_plan_id,omitempty"`
	ClientCreatedAt        time.Time  `json:"client_created_at"`
	ClientUpdatedAt        *time.Time `json:"client_updated_at,omitempty"`
}

// ClientListRow is the flat row shape for the list query: the client columns
// plus the org status and the assigned coaches aggregated as a JSON array.
type ClientListRow struct {
	ClientID               uint           `json:"client_id" gorm:"column:client_id"`
	ClientFullName         string         `json:"client_full_name" gorm:"column:client_full_name"`
	ClientEmail            *string        `json:"client_email,omitempty" gorm:"column:client_email"`
	ClientPhone            *string        `json:"client_phone,omitempty" gorm:"column:client_phone"`
	ClientMembershipPlanID *uint          `json:"client_membership_plan_id,omitempty" gorm:"column:client_membership_plan_id"`
	ClientOrgStatus        string         `json:"client_org_status" gorm:"column:client_org_status"`
	ClientCreatedAt        time.Time      `json:"client_created_at" gorm:"column:client_created_at"`
	Coaches                datatypes.JSON `json:"coaches" gorm:"column:coaches"`
}

/* ========== MODEL <-> DTO ========== */

func NewClientResponse(m *model.ClientModel) *ClientResponse {
	if m == nil {
		return nil
	}
	return &ClientResponse{
		ClientID:               m.ClientID,
		ClientFullName:         m.ClientFullName,
		ClientEmail:            m.ClientEmail,
		ClientPhone:            m.ClientPhone,
		ClientGender:           m.ClientGender,
		ClientDOB:              m.ClientDOB,
		ClientMembershipPlanID: m.ClientMembershipPlanID,
		ClientCreatedAt:        m.ClientCreatedAt,
		ClientUpdatedAt:        m.ClientUpdatedAt,
	}
}

func (r *CreateClientRequest) ToModel(createdBy uint) *model.ClientModel {
	return &model.ClientModel{
		ClientFullName:         r.ClientFullName,
		ClientEmail:            r.ClientEmail,
		ClientPhone:            r.ClientPhone,
		ClientGender:           r.ClientGender,
		ClientDOB:              r.ClientDOB,
		ClientMembershipPlanID: r.ClientMembershipPlanID,
		ClientCreatedBy:        &createdBy,
	}
}

// ApplyToModel overwrites only the fields present in the payload.
func (r *UpdateClientRequest) ApplyToModel(m *model.ClientModel, updatedBy uint) {
	if r.ClientFullName != nil {
		m.ClientFullName = *r.ClientFullName
	}
	if r.ClientEmail != nil {
		m.ClientEmail = r.ClientEmail
	}
	if r.ClientPhone != nil {
		m.ClientPhone = r.ClientPhone
	}
	if r.ClientGender != nil {
		m.ClientGender = r.ClientGender
	}
	if r.ClientDOB != nil {
		m.ClientDOB = r.ClientDOB
	}
	if r.ClientMembershipPlanID != nil {
		m.ClientMembershipPlanID = r.ClientMembershipPlanID
	}
	now := time.Now()
	m.ClientUpdatedAt = &now
	m.ClientUpdatedBy = &updatedBy
}
