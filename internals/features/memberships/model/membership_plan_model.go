package model

import (
	"time"
)

type MembershipPlanModel struct {
	MembershipPlanID          uint    `json:"membership_plan_id" gorm:"column:membership_plan_id;primaryKey;autoIncrement"`
	MembershipPlanOrgID       uint    `json:"membership_plan_org_id" gorm:"column:membership_plan_org_id;not null"`
	MembershipPlanName        string  `json:"membership_plan_name" gorm:"column:membership_plan_name;type:varchar(120);not null"`
	MembershipPlanDescription *string `json:"membership_plan_description,omitempty" gorm:"column:membership_plan_description;type:text"`
	MembershipPlanPrice       int64   `json:"membership_plan_price" gorm:"column:membership_plan_price;not null;default:0"`
	MembershipPlanDurationDays int    `json:"membership_plan_duration_days" gorm:"column:membership_plan_duration_days;not null;default:30"`

	MembershipPlanIsDeleted bool `json:"-" gorm:"column:membership_plan_is_deleted;not null;default:false"`

	MembershipPlanCreatedAt time.Time  `json:"membership_plan_created_at" gorm:"column:membership_plan_created_at;not null;autoCreateTime"`
	MembershipPlanUpdatedAt *time.Time `json:"membership_plan_updated_at,omitempty" gorm:"column:membership_plan_updated_at"`
	MembershipPlanCreatedBy *uint      `json:"membership_plan_created_by,omitempty" gorm:"column:membership_plan_created_by"`
	MembershipPlanUpdatedBy *uint      `json:"membership_plan_updated_by,omitempty" gorm:"column:membership_plan_updated_by"`
}

func (MembershipPlanModel) TableName() string {
	return "membership_plans"
}

type FacilityModel struct {
	FacilityID        uint    `json:"facility_id" gorm:"column:facility_id;primaryKey;autoIncrement"`
	FacilityOrgID     uint    `json:"facility_org_id" gorm:"column:facility_org_id;not null"`
	FacilityName      string  `json:"facility_name" gorm:"column:facility_name;type:varchar(120);not null"`
	FacilityCategory  *string `json:"facility_category,omitempty" gorm:"column:facility_category;type:varchar(60)"`
	FacilityIsDeleted bool    `json:"-" gorm:"column:facility_is_deleted;not null;default:false"`

	FacilityCreatedAt time.Time  `json:"facility_created_at" gorm:"column:facility_created_at;not null;autoCreateTime"`
	FacilityUpdatedAt *time.Time `json:"facility_updated_at,omitempty" gorm:"column:facility_updated_at"`
	FacilityCreatedBy *uint      `json:"facility_created_by,omitempty" gorm:"column:facility_created_by"`
	FacilityUpdatedBy *uint      `json:"facility_updated_by,omitempty" gorm:"column:facility_updated_by"`
}

func (FacilityModel) TableName() string {
	return "facilities"
}

// FacilityMembershipPlanModel allocates facility credits to a plan.
// Identity per plan is facility_id; the credit amount is mutable.
type FacilityMembershipPlanModel struct {
	FacilityMembershipPlanID uint `json:"facility_membership_plan_id" gorm:"column:facility_membership_plan_id;primaryKey;autoIncrement"`
	MembershipPlanID         uint `json:"membership_plan_id" gorm:"column:membership_plan_id;not null"`
	FacilityID               uint `json:"facility_id" gorm:"column:facility_id;not null"`
	Credits                  int  `json:"credits" gorm:"column:credits;not null;default:0"`
	IsDeleted                bool `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (FacilityMembershipPlanModel) TableName() string {
	return "facility_membership_plans"
}
