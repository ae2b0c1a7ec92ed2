package model

import (
	"time"
)

// UserModel is the login identity. Persona decides which endpoints a token
// issued for this user may call (User, Staff, Coach).
type UserModel struct {
	UserID       uint   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserOrgID    uint   `json:"user_org_id" gorm:"column:user_org_id;not null"` // FK -> organizations(org_id)
	UserFullName string `json:"user_full_name" gorm:"column:user_full_name;type:varchar(120);not null"`
	UserEmail    string `json:"user_email" gorm:"column:user_email;type:varchar(255);unique;not null"`
	UserPassword string `json:"-" gorm:"column:user_password;not null"`
	UserPersona  string `json:"user_persona" gorm:"column:user_persona;type:varchar(20);not null;default:'User'"`

	UserIsActive  bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`
	UserIsDeleted bool `json:"-" gorm:"column:user_is_deleted;not null;default:false"`

	UserCreatedAt time.Time  `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty" gorm:"column:user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
