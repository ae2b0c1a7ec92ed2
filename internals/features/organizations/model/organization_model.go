package model

import (
	"time"
)

// OrganizationModel is the tenant root. Every other table carries an
// org id scoping column that points here.
type OrganizationModel struct {
	OrgID      uint    `json:"org_id" gorm:"column:org_id;primaryKey;autoIncrement"`
	OrgName    string  `json:"org_name" gorm:"column:org_name;type:varchar(160);not null"`
	OrgEmail   *string `json:"org_email,omitempty" gorm:"column:org_email;type:varchar(255)"`
	OrgPhone   *string `json:"org_phone,omitempty" gorm:"column:org_phone;type:varchar(30)"`
	OrgAddress *string `json:"org_address,omitempty" gorm:"column:org_address;type:text"`

	OrgIsDeleted bool `json:"-" gorm:"column:org_is_deleted;not null;default:false"`

	OrgCreatedAt time.Time  `json:"org_created_at" gorm:"column:org_created_at;not null;autoCreateTime"`
	OrgUpdatedAt *time.Time `json:"org_updated_at,omitempty" gorm:"column:org_updated_at"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
