package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/configs"
	"gymdesk_backend/internals/constants"
	authDTO "gymdesk_backend/internals/features/users/auth/dto"
	authHelper "gymdesk_backend/internals/features/users/auth/helper"
	authModel "gymdesk_backend/internals/features/users/auth/model"
	helper "gymdesk_backend/internals/helpers"
)

/* ==========================
   Lockout wiring
========================== */

var attempts AttemptStore

// InitLockout picks the attempt store: Redis when REDIS_ADDR is set (shared
// across instances), in-process map otherwise.
func InitLockout() {
	if configs.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		attempts = NewRedisAttemptStore(rdb, configs.LockoutThreshold, configs.LockoutWindow)
		log.Println("✅ Login lockout using Redis:", configs.RedisAddr)
		return
	}
	attempts = NewMemoryAttemptStore(configs.LockoutThreshold, configs.LockoutWindow)
	log.Println("✅ Login lockout using in-process store")
}

/* ==========================
   Register
========================== */

func Register(db *gorm.DB, c *fiber.Ctx, req *authDTO.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("user_email = ? AND user_is_deleted = FALSE", email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "email already registered")
	}

	hashed, err := authHelper.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	persona := req.UserPersona
	if persona == "" {
		persona = constants.PersonaUser
	}
	if !constants.IsValidPersona(persona) {
		return helper.JsonError(c, fiber.StatusBadRequest, "unknown persona")
	}

	user := authModel.UserModel{
		UserOrgID:    req.UserOrgID,
		UserFullName: strings.TrimSpace(req.UserFullName),
		UserEmail:    email,
		UserPassword: hashed,
		UserPersona:  persona,
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to create user")
	}

	return helper.JsonCreated(c, "user registered", authDTO.NewUserResponse(&user))
}

/* ==========================
   Login + lockout
========================== */

func Login(db *gorm.DB, c *fiber.Ctx, req *authDTO.LoginRequest) error {
	ctx := c.UserContext()
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	// a locked identifier is rejected before the password is even looked at
	locked, err := attempts.Locked(ctx, email)
	if err != nil {
		log.Printf("[ERROR] lockout check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
	if locked {
		return helper.JsonError(c, fiber.StatusForbidden, "account temporarily locked, try again later")
	}

	var user authModel.UserModel
	findErr := db.Where("user_email = ? AND user_is_deleted = FALSE", email).First(&user).Error

	passwordOK := false
	if findErr == nil {
		passwordOK = authHelper.CheckPasswordHash(user.UserPassword, req.UserPassword) == nil
	}

	if findErr != nil || !passwordOK {
		if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
		}
		count, ferr := attempts.Fail(ctx, email)
		if ferr != nil {
			log.Printf("[ERROR] lockout fail count: %v", ferr)
		}
		if ferr == nil && count >= configs.LockoutThreshold {
			return helper.JsonError(c, fiber.StatusForbidden, "account temporarily locked, try again later")
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account deactivated")
	}

	if err := attempts.Reset(ctx, email); err != nil {
		log.Printf("[ERROR] lockout reset: %v", err)
	}

	token, err := IssueAccessToken(configs.JWTSecret, user.UserID, user.UserOrgID, user.UserPersona)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}

	return helper.JsonOK(c, "login success", authDTO.LoginResponse{
		AccessToken: token,
		User:        authDTO.NewUserResponse(&user),
	})
}

/* ==========================
   Forgot / reset password
========================== */

// SendResetToken delivers a freshly issued reset token out of band. The
// default writes it to the server log; deployments swap in the mailer.
// The token must never appear in an HTTP response body.
var SendResetToken = func(email, token string) {
	log.Printf("[INFO] password reset token issued for %s: %s", email, token)
}

func ForgotPassword(db *gorm.DB, c *fiber.Ctx, req *authDTO.ForgotPasswordRequest) error {
	if configs.ResetPasswordSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "password reset not configured")
	}
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var user authModel.UserModel
	if err := db.Where("user_email = ? AND user_is_deleted = FALSE", email).First(&user).Error; err != nil {
		// do not reveal whether the email exists
		return helper.JsonOK(c, "if the email exists, a reset link was sent", nil)
	}

	token, err := IssueResetToken(configs.ResetPasswordSecret, user.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign reset token")
	}

	// previous links die the moment a new one is issued
	err = db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&authModel.PasswordResetTokenModel{}).
			Where("reset_token_user_id = ? AND reset_token_used_at IS NULL", user.UserID).
			Update("reset_token_used_at", now).Error; err != nil {
			return err
		}
		row := authModel.PasswordResetTokenModel{
			ResetTokenUserID:    user.UserID,
			ResetTokenValue:     token,
			ResetTokenExpiresAt: now.Add(ResetTokenMaxAge),
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store reset token")
	}

	// same body as the unknown-email branch so existence stays hidden
	SendResetToken(email, token)
	return helper.JsonOK(c, "if the email exists, a reset link was sent", nil)
}

func ResetPassword(db *gorm.DB, c *fiber.Ctx, req *authDTO.ResetPasswordRequest) error {
	if configs.ResetPasswordSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "password reset not configured")
	}

	userID, err := VerifyResetToken(configs.ResetPasswordSecret, req.ResetToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, ErrTokenInvalid.Error())
	}

	// the token must also still exist server-side, unused and unexpired
	var stored authModel.PasswordResetTokenModel
	if err := db.Where(
		"reset_token_user_id = ? AND reset_token_value = ? AND reset_token_used_at IS NULL AND reset_token_expires_at > ?",
		userID, req.ResetToken, time.Now(),
	).First(&stored).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, ErrTokenInvalid.Error())
	}

	hashed, err := authHelper.HashPassword(req.UserNewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&authModel.UserModel{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"user_password":   hashed,
				"user_updated_at": now,
			}).Error; err != nil {
			return err
		}
		// single-use
		return tx.Model(&stored).Update("reset_token_used_at", now).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reset password")
	}

	return helper.JsonUpdated(c, "password reset successfully", nil)
}

/* ==========================
   Change password (authenticated)
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx, req *authDTO.ChangePasswordRequest) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, ErrTokenInvalid.Error())
	}

	var user authModel.UserModel
	if err := db.Where("user_id = ? AND user_is_deleted = FALSE", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, ErrTokenInvalid.Error())
	}

	if err := authHelper.CheckPasswordHash(user.UserPassword, req.UserCurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "current password incorrect")
	}

	hashed, err := authHelper.HashPassword(req.UserNewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	now := time.Now()
	if err := db.Model(&user).Updates(map[string]interface{}{
		"user_password":   hashed,
		"user_updated_at": now,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	return helper.JsonUpdated(c, "password changed successfully", nil)
}

/* ==========================
   Reset-token sweep
========================== */

// StartResetTokenCleanup removes dead reset tokens on an interval.
func StartResetTokenCleanup(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where(
				"reset_token_expires_at < ? OR reset_token_used_at IS NOT NULL",
				time.Now().Add(-24*time.Hour),
			).Delete(&authModel.PasswordResetTokenModel{})
			if res.Error != nil {
				log.Printf("[ERROR] reset token sweep: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("🧹 reset token sweep removed %d rows", res.RowsAffected)
			}
		}
	}()
}
