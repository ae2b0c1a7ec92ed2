package model

import (
	"time"
)

type CoachModel struct {
	CoachID             uint    `json:"coach_id" gorm:"column:coach_id;primaryKey;autoIncrement"`
	CoachFullName       string  `json:"coach_full_name" gorm:"column:coach_full_name;type:varchar(120);not null"`
	CoachEmail          *string `json:"coach_email,omitempty" gorm:"column:coach_email;type:varchar(255)"`
	CoachPhone          *string `json:"coach_phone,omitempty" gorm:"column:coach_phone;type:varchar(30)"`
	CoachSpecialization *string `json:"coach_specialization,omitempty" gorm:"column:coach_specialization;type:varchar(120)"`
	CoachBio            *string `json:"coach_bio,omitempty" gorm:"column:coach_bio;type:text"`
	CoachExperienceYrs  *int    `json:"coach_experience_years,omitempty" gorm:"column:coach_experience_years"`

	CoachIsDeleted bool `json:"-" gorm:"column:coach_is_deleted;not null;default:false"`

	CoachCreatedAt time.Time  `json:"coach_created_at" gorm:"column:coach_created_at;not null;autoCreateTime"`
	CoachUpdatedAt *time.Time `json:"coach_updated_at,omitempty" gorm:"column:coach_updated_at"`
	CoachCreatedBy *uint      `json:"coach_created_by,omitempty" gorm:"column:coach_created_by"`
	CoachUpdatedBy *uint      `json:"coach_updated_by,omitempty" gorm:"column:coach_updated_by"`
}

func (CoachModel) TableName() string {
	return "coaches"
}

// BankDetailModel is the coach's 1:1 payout account.
type BankDetailModel struct {
	BankDetailID            uint    `json:"bank_detail_id" gorm:"column:bank_detail_id;primaryKey;autoIncrement"`
	BankDetailCoachID       uint    `json:"bank_detail_coach_id" gorm:"column:bank_detail_coach_id;not null;unique"`
	BankDetailBankName      string  `json:"bank_detail_bank_name" gorm:"column:bank_detail_bank_name;type:varchar(120);not null"`
	BankDetailAccountName   string  `json:"bank_detail_account_name" gorm:"column:bank_detail_account_name;type:varchar(120);not null"`
	BankDetailAccountNumber string  `json:"bank_detail_account_number" gorm:"column:bank_detail_account_number;type:varchar(40);not null"`
	BankDetailBranchCode    *string `json:"bank_detail_branch_code,omitempty" gorm:"column:bank_detail_branch_code;type:varchar(20)"`
	IsDeleted               bool    `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (BankDetailModel) TableName() string {
	return "bank_details"
}

// CoachOrganizationModel carries per-org status plus the org's own identifier
// for the coach (payroll code etc.).
type CoachOrganizationModel struct {
	CoachOrgID     uint    `json:"coach_org_id" gorm:"column:coach_org_id;primaryKey;autoIncrement"`
	CoachID        uint    `json:"coach_id" gorm:"column:coach_id;not null"`
	OrgID          uint    `json:"org_id" gorm:"column:org_id;not null"`
	CoachOrgStatus string  `json:"coach_org_status" gorm:"column:coach_org_status;type:varchar(20);not null;default:'active'"`
	CoachOrgOwnID  *string `json:"coach_org_own_id,omitempty" gorm:"column:coach_org_own_id;type:varchar(40)"`
	IsDeleted      bool    `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (CoachOrganizationModel) TableName() string {
	return "coach_organizations"
}
