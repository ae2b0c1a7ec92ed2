package dto

import (
	"time"

	"gymdesk_backend/internals/constants"
	"gymdesk_backend/internals/features/leads/model"
)

type CreateLeadRequest struct {
	FullName string  `json:"full_name" validate:"required,min=2,max=120"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Source   *string `json:"source,omitempty" validate:"omitempty,max=60"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=new contacted converted lost"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=4000"`
}

type UpdateLeadRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=120"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Source   *string `json:"source,omitempty" validate:"omitempty,max=60"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=new contacted converted lost"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=4000"`
}

func (r CreateLeadRequest) ToModel(orgID uint, createdBy uint) model.LeadModel {
	lead := model.LeadModel{
		LeadOrgID:     orgID,
		LeadFullName:  r.FullName,
		LeadEmail:     r.Email,
		LeadPhone:     r.Phone,
		LeadSource:    r.Source,
		LeadNotes:     r.Notes,
		LeadStatus:    constants.LeadStatusNew,
		LeadCreatedBy: &createdBy,
	}
	if r.Status != nil {
		lead.LeadStatus = *r.Status
	}
	return lead
}

func (r UpdateLeadRequest) ApplyToModel(m *model.LeadModel, updatedBy uint) {
	if r.FullName != nil {
		m.LeadFullName = *r.FullName
	}
	if r.Email != nil {
		m.LeadEmail = r.Email
	}
	if r.Phone != nil {
		m.LeadPhone = r.Phone
	}
	if r.Source != nil {
		m.LeadSource = r.Source
	}
	if r.Status != nil {
		m.LeadStatus = *r.Status
	}
	if r.Notes != nil {
		m.LeadNotes = r.Notes
	}
	now := time.Now()
	m.LeadUpdatedAt = &now
	m.LeadUpdatedBy = &updatedBy
}
