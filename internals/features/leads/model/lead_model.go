package model

import (
	"time"
)

type LeadModel struct {
	LeadID       uint    `json:"lead_id" gorm:"column:lead_id;primaryKey;autoIncrement"`
	LeadOrgID    uint    `json:"lead_org_id" gorm:"column:lead_org_id;not null"`
	LeadFullName string  `json:"lead_full_name" gorm:"column:lead_full_name;type:varchar(120);not null"`
	LeadEmail    *string `json:"lead_email,omitempty" gorm:"column:lead_email;type:varchar(255)"`
	LeadPhone    *string `json:"lead_phone,omitempty" gorm:"column:lead_phone;type:varchar(30)"`
	LeadSource   *string `json:"lead_source,omitempty" gorm:"column:lead_source;type:varchar(60)"`
	LeadStatus   string  `json:"lead_status" gorm:"column:lead_status;type:varchar(20);not null;default:'new'"`
	LeadNotes    *string `json:"lead_notes,omitempty" gorm:"column:lead_notes;type:text"`

	LeadIsDeleted bool `json:"-" gorm:"column:lead_is_deleted;not null;default:false"`

	LeadCreatedAt time.Time  `json:"lead_created_at" gorm:"column:lead_created_at;not null;autoCreateTime"`
	LeadUpdatedAt *time.Time `json:"lead_updated_at,omitempty" gorm:"column:lead_updated_at"`
	LeadCreatedBy *uint      `json:"lead_created_by,omitempty" gorm:"column:lead_created_by"`
	LeadUpdatedBy *uint      `json:"lead_updated_by,omitempty" gorm:"column:lead_updated_by"`
}

func (LeadModel) TableName() string {
	return "leads"
}
