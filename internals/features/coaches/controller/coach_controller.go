package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/constants"
	"gymdesk_backend/internals/features/coaches/dto"
	"gymdesk_backend/internals/features/coaches/model"
	helper "gymdesk_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type CoachController struct {
	DB *gorm.DB
}

func NewCoachController(db *gorm.DB) *CoachController {
	return &CoachController{DB: db}
}

var validate = validator.New()

func findCoachScoped(db *gorm.DB, orgID, coachID uint, includeDeleted bool) (*model.CoachModel, error) {
	q := db.Table("coaches").
		Joins("JOIN coach_organizations cog ON cog.coach_id = coaches.coach_id AND cog.is_deleted = FALSE").
		Where("cog.org_id = ? AND coaches.coach_id = ?", orgID, coachID)
	if !includeDeleted {
		q = q.Where("coaches.coach_is_deleted = FALSE")
	}
	var m model.CoachModel
	if err := q.Select("coaches.*").Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

/* ================= Handlers ================= */

// POST /api/a/coaches
func (ctl *CoachController) CreateCoach(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	status := req.CoachOrgStatus
	if status == "" {
		status = constants.ClientOrgStatusActive
	}

	coach := req.ToModel(userID)
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(coach).Error; err != nil {
			return err
		}
		link := model.CoachOrganizationModel{
			CoachID:        coach.CoachID,
			OrgID:          orgID,
			CoachOrgStatus: status,
			CoachOrgOwnID:  req.CoachOrgOwnID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		if req.BankDetail != nil {
			bank := model.BankDetailModel{
				BankDetailCoachID:       coach.CoachID,
				BankDetailBankName:      req.BankDetail.BankDetailBankName,
				BankDetailAccountName:   req.BankDetail.BankDetailAccountName,
				BankDetailAccountNumber: req.BankDetail.BankDetailAccountNumber,
				BankDetailBranchCode:    req.BankDetail.BankDetailBranchCode,
			}
			if err := tx.Create(&bank).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to create coach")
	}

	return helper.JsonCreated(c, "coach created", dto.NewCoachResponse(coach))
}

// GET /api/u/coaches/:id
func (ctl *CoachController) GetCoachByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	coach, err := findCoachScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.NewCoachResponse(coach))
}

// GET /api/u/coaches: search-and-sort with bank detail + client count
func (ctl *CoachController) ListCoaches(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 200)

	var statusFilter, specFilter interface{}
	if s := c.Query("status"); s != "" {
		statusFilter = s
	}
	if s := c.Query("specialization"); s != "" {
		specFilter = s
	}

	base := ctl.DB.Table("coaches AS ch").
		Joins("JOIN coach_organizations AS cog ON cog.coach_id = ch.coach_id AND cog.is_deleted = FALSE").
		Where("cog.org_id = ? AND ch.coach_is_deleted = FALSE", orgID)

	var rows []dto.CoachListRow
	total, filtered, err := helper.NewListBuilder(base).
		SelectExpr(`
			ch.coach_id, ch.coach_full_name, ch.coach_email, ch.coach_phone,
			ch.coach_specialization, ch.coach_experience_years,
			cog.coach_org_status, cog.coach_org_own_id, ch.coach_created_at,
			(
				SELECT COUNT(*)
				FROM client_coaches cc
				WHERE cc.coach_id = ch.coach_id AND cc.is_deleted = FALSE
			) AS coach_client_count,
			COALESCE((
				SELECT json_agg(json_build_object(
					'bank_detail_bank_name', bd.bank_detail_bank_name,
					'bank_detail_account_name', bd.bank_detail_account_name,
					'bank_detail_account_number', bd.bank_detail_account_number
				))
				FROM bank_details bd
				WHERE bd.bank_detail_coach_id = ch.coach_id AND bd.is_deleted = FALSE
			), '[]'::json) AS bank_detail
		`).
		SearchColumns("ch.coach_full_name", "ch.coach_email", "ch.coach_specialization").
		Filter("cog.coach_org_status = ?", statusFilter).
		Filter("ch.coach_specialization = ?", specFilter).
		Sortable(map[string]string{
			"name":       "ch.coach_full_name",
			"created_at": "ch.coach_created_at",
			"experience": "ch.coach_experience_years",
			"status":     "cog.coach_org_status",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	return helper.JsonSearchList(c, "", rows, total, filtered)
}

// PATCH /api/a/coaches/:id
func (ctl *CoachController) UpdateCoach(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	coach, err := findCoachScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	req.ApplyToModel(coach, userID)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(coach).Error; err != nil {
			return err
		}
		if req.CoachOrgStatus != nil || req.CoachOrgOwnID != nil {
			up := map[string]interface{}{}
			if req.CoachOrgStatus != nil {
				up["coach_org_status"] = *req.CoachOrgStatus
			}
			if req.CoachOrgOwnID != nil {
				up["coach_org_own_id"] = req.CoachOrgOwnID
			}
			if err := tx.Model(&model.CoachOrganizationModel{}).
				Where("coach_id = ? AND org_id = ? AND is_deleted = FALSE", coach.CoachID, orgID).
				Updates(up).Error; err != nil {
				return err
			}
		}
		if req.BankDetail != nil {
			// 1:1 row, overwrite in place, insert on first write
			var bank model.BankDetailModel
			err := tx.Where("bank_detail_coach_id = ? AND is_deleted = FALSE", coach.CoachID).
				Take(&bank).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				bank = model.BankDetailModel{BankDetailCoachID: coach.CoachID}
				fallthrough
			case err == nil:
				bank.BankDetailBankName = req.BankDetail.BankDetailBankName
				bank.BankDetailAccountName = req.BankDetail.BankDetailAccountName
				bank.BankDetailAccountNumber = req.BankDetail.BankDetailAccountNumber
				bank.BankDetailBranchCode = req.BankDetail.BankDetailBranchCode
				if err := tx.Save(&bank).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to update coach")
	}

	return helper.JsonUpdated(c, "coach updated", dto.NewCoachResponse(coach))
}

// DELETE /api/a/coaches/:id (soft)
func (ctl *CoachController) DeleteCoach(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	coach, err := findCoachScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	if err := ctl.DB.Model(coach).Updates(map[string]interface{}{
		"coach_is_deleted": true,
		"coach_updated_at": now,
		"coach_updated_by": userID,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete coach")
	}

	return helper.JsonDeleted(c, "coach deleted", fiber.Map{"coach_id": coach.CoachID})
}
