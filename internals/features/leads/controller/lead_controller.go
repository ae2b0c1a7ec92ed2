package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/leads/dto"
	"gymdesk_backend/internals/features/leads/model"
	helper "gymdesk_backend/internals/helpers"
)

type LeadController struct {
	DB *gorm.DB
}

func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{DB: db}
}

var validate = validator.New()

func findLeadScoped(db *gorm.DB, orgID uint, id uint) (model.LeadModel, error) {
	var lead model.LeadModel
	err := db.
		Where("lead_id = ? AND lead_org_id = ? AND lead_is_deleted = FALSE", id, orgID).
		First(&lead).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return lead, helper.ErrNotFound
		}
		return lead, err
	}
	return lead, nil
}

func (ctl *LeadController) CreateLead(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	lead := req.ToModel(orgID, userID)
	if err := ctl.DB.Create(&lead).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "lead created", lead)
}

func (ctl *LeadController) GetLeadByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lead id")
	}

	lead, err := findLeadScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "lead fetched", lead)
}

func (ctl *LeadController) ListLeads(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 100)
	status := strings.TrimSpace(c.Query("status"))
	source := strings.TrimSpace(c.Query("source"))

	base := ctl.DB.Model(&model.LeadModel{}).
		Where("leads.lead_org_id = ? AND leads.lead_is_deleted = FALSE", orgID)

	var rows []model.LeadModel
	total, filtered, err := helper.NewListBuilder(base).
		SearchColumns("leads.lead_full_name", "leads.lead_email", "leads.lead_phone").
		Filter("leads.lead_status = ?", nilIfEmpty(status)).
		Filter("leads.lead_source = ?", nilIfEmpty(source)).
		Sortable(map[string]string{
			"name":       "leads.lead_full_name",
			"status":     "leads.lead_status",
			"created_at": "leads.lead_created_at",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonSearchList(c, "leads fetched", rows, total, filtered)
}

func (ctl *LeadController) UpdateLead(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lead id")
	}

	var req dto.UpdateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	lead, err := findLeadScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	req.ApplyToModel(&lead, userID)
	if err := ctl.DB.Save(&lead).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "lead updated", lead)
}

func (ctl *LeadController) DeleteLead(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lead id")
	}

	lead, err := findLeadScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	err = ctl.DB.Model(&model.LeadModel{}).
		Where("lead_id = ?", lead.LeadID).
		Updates(map[string]interface{}{
			"lead_is_deleted": true,
			"lead_updated_at": now,
			"lead_updated_by": userID,
		}).Error
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "lead deleted", fiber.Map{"lead_id": lead.LeadID})
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
