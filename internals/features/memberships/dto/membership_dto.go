package dto

import (
	"time"

	"gymdesk_backend/internals/features/memberships/model"

	"gorm.io/datatypes"
)

/* =========================================================
   MEMBERSHIP PLANS
========================================================= */

type FacilityCreditInput struct {
	FacilityID uint `json:"facility_id" validate:"required,gt=0"`
	Credits    int  `json:"credits" validate:"gte=0"`
}

type CreateMembershipPlanRequest struct {
	Name            string                `json:"name" validate:"required,min=2,max=120"`
	Description     *string               `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price           int64                 `json:"price" validate:"gte=0"`
	DurationDays    int                   `json:"duration_days" validate:"required,gt=0"`
	FacilityCredits []FacilityCreditInput `json:"facility_credits,omitempty" validate:"omitempty,dive"`
}

type UpdateMembershipPlanRequest struct {
	Name            *string                `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description     *string                `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price           *int64                 `json:"price,omitempty" validate:"omitempty,gte=0"`
	DurationDays    *int                   `json:"duration_days,omitempty" validate:"omitempty,gt=0"`
	FacilityCredits *[]FacilityCreditInput `json:"facility_credits,omitempty" validate:"omitempty,dive"`
}

func (r CreateMembershipPlanRequest) ToModel(orgID uint, createdBy uint) model.MembershipPlanModel {
	return model.MembershipPlanModel{
		MembershipPlanOrgID:        orgID,
		MembershipPlanName:         r.Name,
		MembershipPlanDescription:  r.Description,
		MembershipPlanPrice:        r.Price,
		MembershipPlanDurationDays: r.DurationDays,
		MembershipPlanCreatedBy:    &createdBy,
	}
}

func (r UpdateMembershipPlanRequest) ApplyToModel(m *model.MembershipPlanModel, updatedBy uint) {
	if r.Name != nil {
		m.MembershipPlanName = *r.Name
	}
	if r.Description != nil {
		m.MembershipPlanDescription = r.Description
	}
	if r.Price != nil {
		m.MembershipPlanPrice = *r.Price
	}
	if r.DurationDays != nil {
		m.MembershipPlanDurationDays = *r.DurationDays
	}
	now := time.Now()
	m.MembershipPlanUpdatedAt = &now
	m.MembershipPlanUpdatedBy = &updatedBy
}

type FacilityCreditResponse struct {
	FacilityID uint `json:"facility_id"`
	Credits    int  `json:"credits"`
}

type MembershipPlanResponse struct {
	MembershipPlanID uint                     `json:"membership_plan_id"`
	Name             string                   `json:"name"`
	Description      *string                  `json:"description,omitempty"`
	Price            int64                    `json:"price"`
	DurationDays     int                      `json:"duration_days"`
	FacilityCredits  []FacilityCreditResponse `json:"facility_credits"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        *time.Time               `json:"updated_at,omitempty"`
}

func NewMembershipPlanResponse(m model.MembershipPlanModel, credits []model.FacilityMembershipPlanModel) MembershipPlanResponse {
	out := MembershipPlanResponse{
		MembershipPlanID: m.MembershipPlanID,
		Name:             m.MembershipPlanName,
		Description:      m.MembershipPlanDescription,
		Price:            m.MembershipPlanPrice,
		DurationDays:     m.MembershipPlanDurationDays,
		FacilityCredits:  make([]FacilityCreditResponse, 0, len(credits)),
		CreatedAt:        m.MembershipPlanCreatedAt,
		UpdatedAt:        m.MembershipPlanUpdatedAt,
	}
	for _, fc := range credits {
		out.FacilityCredits = append(out.FacilityCredits, FacilityCreditResponse{
			FacilityID: fc.FacilityID,
			Credits:    fc.Credits,
		})
	}
	return out
}

type MembershipPlanListRow struct {
	MembershipPlanID uint           `json:"membership_plan_id" gorm:"column:membership_plan_id"`
	Name             string         `json:"name" gorm:"column:membership_plan_name"`
	Price            int64          `json:"price" gorm:"column:membership_plan_price"`
	DurationDays     int            `json:"duration_days" gorm:"column:membership_plan_duration_days"`
	FacilityCredits  datatypes.JSON `json:"facility_credits" gorm:"column:facility_credits"`
	CreatedAt        time.Time      `json:"created_at" gorm:"column:membership_plan_created_at"`
}

/* =========================================================
   FACILITIES
========================================================= */

type CreateFacilityRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=60"`
}

type UpdateFacilityRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=60"`
}

func (r CreateFacilityRequest) ToModel(orgID uint, createdBy uint) model.FacilityModel {
	return model.FacilityModel{
		FacilityOrgID:     orgID,
		FacilityName:      r.Name,
		FacilityCategory:  r.Category,
		FacilityCreatedBy: &createdBy,
	}
}

func (r UpdateFacilityRequest) ApplyToModel(m *model.FacilityModel, updatedBy uint) {
	if r.Name != nil {
		m.FacilityName = *r.Name
	}
	if r.Category != nil {
		m.FacilityCategory = r.Category
	}
	now := time.Now()
	m.FacilityUpdatedAt = &now
	m.FacilityUpdatedBy = &updatedBy
}

/* =========================================================
   INVOICES
========================================================= */

type CreateInvoiceRequest struct {
	ClientID         uint `json:"client_id" validate:"required,gt=0"`
	MembershipPlanID uint `json:"membership_plan_id" validate:"required,gt=0"`
}

type InvoiceCreatedResponse struct {
	InvoiceID   uint   `json:"invoice_id"`
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
