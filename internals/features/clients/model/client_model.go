package model

import (
	"time"
)

// ClientModel is the member profile. Org association (with status) lives in
// client_organizations; coach assignments in client_coaches.
type ClientModel struct {
	ClientID       uint       `json:"client_id" gorm:"column:client_id;primaryKey;autoIncrement"`
	ClientFullName string     `json:"client_full_name" gorm:"column:client_full_name;type:varchar(120);not null"`
	ClientEmail    *string    `json:"client_email,omitempty" gorm:"column:client_email;type:varchar(255)"`
	ClientPhone    *string    `json:"client_phone,omitempty" gorm:"column:client_phone;type:varchar(30)"`
	ClientGender   *string    `json:"client_gender,omitempty" gorm:"column:client_gender;type:varchar(10)"`
	ClientDOB      *time.Time `json:"client_dob,omitempty" gorm:"column:client_dob"`

	// NULL = no plan assigned
	ClientMembershipPlanID *uint `json:"client_membership_plan_id,omitempty" gorm:"column:client_membership_plan_id"`

	ClientIsDeleted bool `json:"-" gorm:"column:client_is_deleted;not null;default:false"`

	ClientCreatedAt time.Time  `json:"client_created_at" gorm:"column:client_created_at;not null;autoCreateTime"`
	ClientUpdatedAt *time.Time `json:"client_updated_at,omitempty" gorm:"column:client_updated_at"`
	ClientCreatedBy *uint      `json:"client_created_by,omitempty" gorm:"column:client_created_by"`
	ClientUpdatedBy *uint      `json:"client_updated_by,omitempty" gorm:"column:client_updated_by"`
}

func (ClientModel) TableName() string {
	return "clients"
}
