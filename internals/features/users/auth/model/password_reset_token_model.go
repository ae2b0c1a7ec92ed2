package model

import (
	"time"
)

// PasswordResetTokenModel stores issued reset tokens server-side so a link
// can be invalidated and is single-use. Expiry is a hard 30 minutes,
// independent of the access-token window.
type PasswordResetTokenModel struct {
	ResetTokenID     uint       `json:"reset_token_id" gorm:"column:reset_token_id;primaryKey;autoIncrement"`
	ResetTokenUserID uint       `json:"reset_token_user_id" gorm:"column:reset_token_user_id;not null"`
	ResetTokenValue  string     `json:"-" gorm:"column:reset_token_value;type:varchar(512);not null"`
	ResetTokenUsedAt *time.Time `json:"reset_token_used_at,omitempty" gorm:"column:reset_token_used_at"`

	ResetTokenCreatedAt time.Time `json:"reset_token_created_at" gorm:"column:reset_token_created_at;not null;autoCreateTime"`
	ResetTokenExpiresAt time.Time `json:"reset_token_expires_at" gorm:"column:reset_token_expires_at;not null"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
