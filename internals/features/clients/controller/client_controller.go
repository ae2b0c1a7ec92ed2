package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/constants"
	"gymdesk_backend/internals/features/clients/dto"
	"gymdesk_backend/internals/features/clients/model"
	helper "gymdesk_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

var validate = validator.New()

/* ================= Scoped fetch ================= */

// findClientScoped fetches a client inside the caller's org. includeDeleted
// is the internal audit path; normal reads never see soft-deleted rows.
func findClientScoped(db *gorm.DB, orgID, clientID uint, includeDeleted bool) (*model.ClientModel, error) {
	q := db.Table("clients").
		Joins("JOIN client_organizations co ON co.client_id = clients.client_id AND co.is_deleted = FALSE").
		Where("co.org_id = ? AND clients.client_id = ?", orgID, clientID)
	if !includeDeleted {
		q = q.Where("clients.client_is_deleted = FALSE")
	}
	var m model.ClientModel
	if err := q.Select("clients.*").Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

/* ================= Handlers ================= */

// POST /api/a/clients
func (ctl *ClientController) CreateClient(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	status := req.ClientOrgStatus
	if status == "" {
		status = constants.ClientOrgStatusPending
	}

	client := req.ToModel(userID)
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return err
		}
		link := model.ClientOrganizationModel{
			ClientID:        client.ClientID,
			OrgID:           orgID,
			ClientOrgStatus: status,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		for _, coachID := range dedupe(req.CoachIDs) {
			row := model.ClientCoachModel{ClientID: client.ClientID, CoachID: coachID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to create client")
	}

	return helper.JsonCreated(c, "client created", dto.NewClientResponse(client))
}

// GET /api/u/clients/:id
func (ctl *ClientController) GetClientByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	client, err := findClientScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "", dto.NewClientResponse(client))
}

// GET /api/u/clients
func (ctl *ClientController) ListClients(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 200)

	var statusFilter interface{}
	if s := c.Query("status"); s != "" {
		statusFilter = s
	}

	base := ctl.DB.Table("clients AS cl").
		Joins("JOIN client_organizations AS co ON co.client_id = cl.client_id AND co.is_deleted = FALSE").
		Where("co.org_id = ? AND cl.client_is_deleted = FALSE", orgID)

	var rows []dto.ClientListRow
	total, filtered, err := helper.NewListBuilder(base).
		SelectExpr(`
			cl.client_id, cl.client_full_name, cl.client_email, cl.client_phone,
			cl.client_membership_plan_id, co.client_org_status, cl.client_created_at,
			COALESCE((
				SELECT json_agg(json_build_object(
					'coach_id', ch.coach_id,
					'coach_full_name', ch.coach_full_name
				))
				FROM client_coaches cc
				JOIN coaches ch ON ch.coach_id = cc.coach_id AND ch.coach_is_deleted = FALSE
				WHERE cc.client_id = cl.client_id AND cc.is_deleted = FALSE
			), '[]'::json) AS coaches
		`).
		SearchColumns("cl.client_full_name", "cl.client_email", "cl.client_phone").
		Filter("co.client_org_status = ?", statusFilter).
		Sortable(map[string]string{
			"name":       "cl.client_full_name",
			"created_at": "cl.client_created_at",
			"status":     "co.client_org_status",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	return helper.JsonSearchList(c, "", rows, total, filtered)
}

// PATCH /api/a/clients/:id
func (ctl *ClientController) UpdateClient(c *fiber.Ctx) error {
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

	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	client, err := findClientScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	// diff the coach set before any mutation
	var toAdd, toRemove []uint
	if req.CoachIDs != nil {
		var existing []uint
		if err := ctl.DB.Model(&model.ClientCoachModel{}).
			Where("client_id = ? AND is_deleted = FALSE", client.ClientID).
			Pluck("coach_id", &existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
		}
		toAdd, toRemove = helper.DiffIDs(existing, *req.CoachIDs)
	}

	req.ApplyToModel(client, userID)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(client).Error; err != nil {
			return err
		}
		if req.ClientOrgStatus != nil {
			if err := tx.Model(&model.ClientOrganizationModel{}).
				Where("client_id = ? AND org_id = ? AND is_deleted = FALSE", client.ClientID, orgID).
				Update("client_org_status", *req.ClientOrgStatus).Error; err != nil {
				return err
			}
		}
		for _, coachID := range toAdd {
			row := model.ClientCoachModel{ClientID: client.ClientID, CoachID: coachID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if len(toRemove) > 0 {
			if err := tx.Model(&model.ClientCoachModel{}).
				Where("client_id = ? AND coach_id IN ?", client.ClientID, toRemove).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to update client")
	}

	return helper.JsonUpdated(c, "client updated", dto.NewClientResponse(client))
}

// DELETE /api/a/clients/:id (soft)
func (ctl *ClientController) DeleteClient(c *fiber.Ctx) error {
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

	client, err := findClientScoped(ctl.DB, orgID, uint(id), false)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	if err := ctl.DB.Model(client).Updates(map[string]interface{}{
		"client_is_deleted": true,
		"client_updated_at": now,
		"client_updated_by": userID,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete client")
	}

	return helper.JsonDeleted(c, "client deleted", fiber.Map{"client_id": client.ClientID})
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
