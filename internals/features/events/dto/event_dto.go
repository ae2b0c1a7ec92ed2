package dto

import (
	"time"

	"gymdesk_backend/internals/features/events/model"
)

type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=160"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=4000"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,max=60"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=160"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Capacity    *int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=2,max=160"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=4000"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,max=60"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=160"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Capacity    *int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
}

func (r CreateEventRequest) ToModel(orgID uint, createdBy uint) model.EventModel {
	return model.EventModel{
		EventOrgID:       orgID,
		EventTitle:       r.Title,
		EventDescription: r.Description,
		EventCategory:    r.Category,
		EventLocation:    r.Location,
		EventStartsAt:    r.StartsAt,
		EventEndsAt:      r.EndsAt,
		EventCapacity:    r.Capacity,
		EventCreatedBy:   &createdBy,
	}
}

func (r UpdateEventRequest) ApplyToModel(m *model.EventModel, updatedBy uint) {
	if r.Title != nil {
		m.EventTitle = *r.Title
	}
	if r.Description != nil {
		m.EventDescription = r.Description
	}
	if r.Category != nil {
		m.EventCategory = r.Category
	}
	if r.Location != nil {
		m.EventLocation = r.Location
	}
	if r.StartsAt != nil {
		m.EventStartsAt = *r.StartsAt
	}
	if r.EndsAt != nil {
		m.EventEndsAt = r.EndsAt
	}
	if r.Capacity != nil {
		m.EventCapacity = r.Capacity
	}
	now := time.Now()
	m.EventUpdatedAt = &now
	m.EventUpdatedBy = &updatedBy
}
