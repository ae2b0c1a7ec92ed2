package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/memberships/dto"
	"gymdesk_backend/internals/features/memberships/model"
	helper "gymdesk_backend/internals/helpers"
)

type FacilityController struct {
	DB *gorm.DB
}

func NewFacilityController(db *gorm.DB) *FacilityController {
	return &FacilityController{DB: db}
}

func findFacilityScoped(db *gorm.DB, orgID uint, id uint) (model.FacilityModel, error) {
	var facility model.FacilityModel
	err := db.
		Where("facility_id = ? AND facility_org_id = ? AND facility_is_deleted = FALSE", id, orgID).
		First(&facility).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return facility, helper.ErrNotFound
		}
		return facility, err
	}
	return facility, nil
}

func facilityNameTaken(db *gorm.DB, orgID uint, name string, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(&model.FacilityModel{}).
		Where("facility_org_id = ? AND LOWER(facility_name) = LOWER(?) AND facility_is_deleted = FALSE", orgID, name)
	if excludeID != 0 {
		q = q.Where("facility_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ctl *FacilityController) CreateFacility(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	taken, err := facilityNameTaken(ctl.DB, orgID, req.Name, 0)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	if taken {
		return helper.JsonServiceError(c, helper.ErrDuplicate)
	}

	facility := req.ToModel(orgID, userID)
	if err := ctl.DB.Create(&facility).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "facility created", facility)
}

func (ctl *FacilityController) GetFacilityByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid facility id")
	}

	facility, err := findFacilityScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "facility fetched", facility)
}

func (ctl *FacilityController) ListFacilities(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 100)
	category := strings.TrimSpace(c.Query("category"))

	base := ctl.DB.Model(&model.FacilityModel{}).
		Where("facilities.facility_org_id = ? AND facilities.facility_is_deleted = FALSE", orgID)

	var rows []model.FacilityModel
	total, filtered, err := helper.NewListBuilder(base).
		SearchColumns("facilities.facility_name").
		Filter("facilities.facility_category = ?", nilIfEmpty(category)).
		Sortable(map[string]string{
			"name":       "facilities.facility_name",
			"category":   "facilities.facility_category",
			"created_at": "facilities.facility_created_at",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonSearchList(c, "facilities fetched", rows, total, filtered)
}

func (ctl *FacilityController) UpdateFacility(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid facility id")
	}

	var req dto.UpdateFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	facility, err := findFacilityScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	if req.Name != nil {
		taken, err := facilityNameTaken(ctl.DB, orgID, *req.Name, facility.FacilityID)
		if err != nil {
			return helper.JsonServiceError(c, err)
		}
		if taken {
			return helper.JsonServiceError(c, helper.ErrDuplicate)
		}
	}

	req.ApplyToModel(&facility, userID)
	if err := ctl.DB.Save(&facility).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "facility updated", facility)
}

func (ctl *FacilityController) DeleteFacility(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid facility id")
	}

	facility, err := findFacilityScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	err = ctl.DB.Model(&model.FacilityModel{}).
		Where("facility_id = ?", facility.FacilityID).
		Updates(map[string]interface{}{
			"facility_is_deleted": true,
			"facility_updated_at": now,
			"facility_updated_by": userID,
		}).Error
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "facility deleted", fiber.Map{"facility_id": facility.FacilityID})
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
