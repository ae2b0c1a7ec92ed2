package model

import (
	"time"
)

type EventModel struct {
	EventID          uint       `json:"event_id" gorm:"column:event_id;primaryKey;autoIncrement"`
	EventOrgID       uint       `json:"event_org_id" gorm:"column:event_org_id;not null"`
	EventTitle       string     `json:"event_title" gorm:"column:event_title;type:varchar(160);not null"`
	EventDescription *string    `json:"event_description,omitempty" gorm:"column:event_description;type:text"`
	EventCategory    *string    `json:"event_category,omitempty" gorm:"column:event_category;type:varchar(60)"`
	EventLocation    *string    `json:"event_location,omitempty" gorm:"column:event_location;type:varchar(160)"`
	EventStartsAt    time.Time  `json:"event_starts_at" gorm:"column:event_starts_at;not null"`
	EventEndsAt      *time.Time `json:"event_ends_at,omitempty" gorm:"column:event_ends_at"`
	EventCapacity    *int       `json:"event_capacity,omitempty" gorm:"column:event_capacity"`

	EventIsDeleted bool `json:"-" gorm:"column:event_is_deleted;not null;default:false"`

	EventCreatedAt time.Time  `json:"event_created_at" gorm:"column:event_created_at;not null;autoCreateTime"`
	EventUpdatedAt *time.Time `json:"event_updated_at,omitempty" gorm:"column:event_updated_at"`
	EventCreatedBy *uint      `json:"event_created_by,omitempty" gorm:"column:event_created_by"`
	EventUpdatedBy *uint      `json:"event_updated_by,omitempty" gorm:"column:event_updated_by"`
}

func (EventModel) TableName() string {
	return "events"
}
