package dto

import (
	"time"

	"gymdesk_backend/internals/features/organizations/model"
)

type UpdateOrganizationRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=160"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=2000"`
}

func (r UpdateOrganizationRequest) ApplyToModel(m *model.OrganizationModel) {
	if r.Name != nil {
		m.OrgName = *r.Name
	}
	if r.Email != nil {
		m.OrgEmail = r.Email
	}
	if r.Phone != nil {
		m.OrgPhone = r.Phone
	}
	if r.Address != nil {
		m.OrgAddress = r.Address
	}
	now := time.Now()
	m.OrgUpdatedAt = &now
}
