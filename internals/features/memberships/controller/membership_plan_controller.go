package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/memberships/dto"
	"gymdesk_backend/internals/features/memberships/model"
	"gymdesk_backend/internals/features/memberships/service"
	helper "gymdesk_backend/internals/helpers"
)

type MembershipPlanController struct {
	DB *gorm.DB
}

func NewMembershipPlanController(db *gorm.DB) *MembershipPlanController {
	return &MembershipPlanController{DB: db}
}

var validate = validator.New()

/* =========================================================
   INTERNAL LOOKUPS
========================================================= */

func findMembershipPlanScoped(db *gorm.DB, orgID uint, id uint) (model.MembershipPlanModel, error) {
	var plan model.MembershipPlanModel
	err := db.
		Where("membership_plan_id = ? AND membership_plan_org_id = ? AND membership_plan_is_deleted = FALSE", id, orgID).
		First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return plan, helper.ErrNotFound
		}
		return plan, err
	}
	return plan, nil
}

func membershipPlanNameTaken(db *gorm.DB, orgID uint, name string, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(&model.MembershipPlanModel{}).
		Where("membership_plan_org_id = ? AND LOWER(membership_plan_name) = LOWER(?) AND membership_plan_is_deleted = FALSE", orgID, name)
	if excludeID != 0 {
		q = q.Where("membership_plan_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func liveFacilityCredits(db *gorm.DB, planID uint) ([]model.FacilityMembershipPlanModel, error) {
	var credits []model.FacilityMembershipPlanModel
	err := db.
		Where("membership_plan_id = ? AND is_deleted = FALSE", planID).
		Order("facility_membership_plan_id ASC").
		Find(&credits).Error
	return credits, err
}

/* =========================================================
   HANDLERS
========================================================= */

func (ctl *MembershipPlanController) CreateMembershipPlan(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateMembershipPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	taken, err := membershipPlanNameTaken(ctl.DB, orgID, req.Name, 0)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	if taken {
		return helper.JsonServiceError(c, helper.ErrDuplicate)
	}

	plan := req.ToModel(orgID, userID)
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		for _, in := range req.FacilityCredits {
			fc := model.FacilityMembershipPlanModel{
				MembershipPlanID: plan.MembershipPlanID,
				FacilityID:       in.FacilityID,
				Credits:          in.Credits,
			}
			if err := tx.Create(&fc).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	credits, err := liveFacilityCredits(ctl.DB, plan.MembershipPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "membership plan created", dto.NewMembershipPlanResponse(plan, credits))
}

func (ctl *MembershipPlanController) GetMembershipPlanByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid membership plan id")
	}

	plan, err := findMembershipPlanScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	credits, err := liveFacilityCredits(ctl.DB, plan.MembershipPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "membership plan fetched", dto.NewMembershipPlanResponse(plan, credits))
}

func (ctl *MembershipPlanController) ListMembershipPlans(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 100)

	base := ctl.DB.Model(&model.MembershipPlanModel{}).
		Where("membership_plans.membership_plan_org_id = ? AND membership_plans.membership_plan_is_deleted = FALSE", orgID)

	var rows []dto.MembershipPlanListRow
	total, filtered, err := helper.NewListBuilder(base).
		SelectExpr(`
			membership_plans.membership_plan_id,
			membership_plans.membership_plan_name,
			membership_plans.membership_plan_price,
			membership_plans.membership_plan_duration_days,
			membership_plans.membership_plan_created_at,
			COALESCE((
				SELECT json_agg(json_build_object(
					'facility_id', fmp.facility_id,
					'credits', fmp.credits
				))
				FROM facility_membership_plans fmp
				WHERE fmp.membership_plan_id = membership_plans.membership_plan_id AND fmp.is_deleted = FALSE
			), '[]') AS facility_credits`).
		SearchColumns("membership_plans.membership_plan_name", "membership_plans.membership_plan_description").
		Sortable(map[string]string{
			"name":       "membership_plans.membership_plan_name",
			"price":      "membership_plans.membership_plan_price",
			"duration":   "membership_plans.membership_plan_duration_days",
			"created_at": "membership_plans.membership_plan_created_at",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonSearchList(c, "membership plans fetched", rows, total, filtered)
}

func (ctl *MembershipPlanController) UpdateMembershipPlan(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid membership plan id")
	}

	var req dto.UpdateMembershipPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	plan, err := findMembershipPlanScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	if req.Name != nil {
		taken, err := membershipPlanNameTaken(ctl.DB, orgID, *req.Name, plan.MembershipPlanID)
		if err != nil {
			return helper.JsonServiceError(c, err)
		}
		if taken {
			return helper.JsonServiceError(c, helper.ErrDuplicate)
		}
	}

	var (
		creditInserts []dto.FacilityCreditInput
		creditUpdates []service.CreditUpdate
		creditRemoves []uint
	)
	if req.FacilityCredits != nil {
		existing, err := liveFacilityCredits(ctl.DB, plan.MembershipPlanID)
		if err != nil {
			return helper.JsonServiceError(c, err)
		}
		creditInserts, creditUpdates, creditRemoves = service.DiffFacilityCredits(existing, *req.FacilityCredits)
	}

	req.ApplyToModel(&plan, userID)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}
		for _, in := range creditInserts {
			fc := model.FacilityMembershipPlanModel{
				MembershipPlanID: plan.MembershipPlanID,
				FacilityID:       in.FacilityID,
				Credits:          in.Credits,
			}
			if err := tx.Create(&fc).Error; err != nil {
				return err
			}
		}
		for _, up := range creditUpdates {
			if err := tx.Model(&model.FacilityMembershipPlanModel{}).
				Where("facility_membership_plan_id = ?", up.FacilityMembershipPlanID).
				Update("credits", up.Credits).Error; err != nil {
				return err
			}
		}
		if len(creditRemoves) > 0 {
			if err := tx.Model(&model.FacilityMembershipPlanModel{}).
				Where("facility_membership_plan_id IN ?", creditRemoves).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	credits, err := liveFacilityCredits(ctl.DB, plan.MembershipPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "membership plan updated", dto.NewMembershipPlanResponse(plan, credits))
}

func (ctl *MembershipPlanController) DeleteMembershipPlan(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid membership plan id")
	}

	plan, err := findMembershipPlanScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	err = ctl.DB.Model(&model.MembershipPlanModel{}).
		Where("membership_plan_id = ?", plan.MembershipPlanID).
		Updates(map[string]interface{}{
			"membership_plan_is_deleted": true,
			"membership_plan_updated_at": now,
			"membership_plan_updated_by": userID,
		}).Error
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "membership plan deleted", fiber.Map{"membership_plan_id": plan.MembershipPlanID})
}
