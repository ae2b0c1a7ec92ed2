package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/organizations/dto"
	"gymdesk_backend/internals/features/organizations/model"
	helper "gymdesk_backend/internals/helpers"
)

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

var validate = validator.New()

// GetMyOrganization returns the caller's own tenant.
func (ctl *OrganizationController) GetMyOrganization(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var org model.OrganizationModel
	err = ctl.DB.
		Where("org_id = ? AND org_is_deleted = FALSE", orgID).
		First(&org).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonServiceError(c, helper.ErrNotFound)
		}
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "organization fetched", org)
}

func (ctl *OrganizationController) UpdateMyOrganization(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var org model.OrganizationModel
	err = ctl.DB.
		Where("org_id = ? AND org_is_deleted = FALSE", orgID).
		First(&org).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonServiceError(c, helper.ErrNotFound)
		}
		return helper.JsonServiceError(c, err)
	}

	req.ApplyToModel(&org)
	if err := ctl.DB.Save(&org).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "organization updated", org)
}
