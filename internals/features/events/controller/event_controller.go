package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymdesk_backend/internals/features/events/dto"
	"gymdesk_backend/internals/features/events/model"
	helper "gymdesk_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

var validate = validator.New()

func findEventScoped(db *gorm.DB, orgID uint, id uint) (model.EventModel, error) {
	var event model.EventModel
	err := db.
		Where("event_id = ? AND event_org_id = ? AND event_is_deleted = FALSE", id, orgID).
		First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return event, helper.ErrNotFound
		}
		return event, err
	}
	return event, nil
}

func (ctl *EventController) CreateEvent(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if req.EndsAt != nil && !req.EndsAt.After(req.StartsAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "ends_at must be after starts_at")
	}

	event := req.ToModel(orgID, userID)
	if err := ctl.DB.Create(&event).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "event created", event)
}

func (ctl *EventController) GetEventByID(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	event, err := findEventScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "event fetched", event)
}

func (ctl *EventController) ListEvents(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 100)
	category := strings.TrimSpace(c.Query("category"))

	base := ctl.DB.Model(&model.EventModel{}).
		Where("events.event_org_id = ? AND events.event_is_deleted = FALSE", orgID)

	var rows []model.EventModel
	total, filtered, err := helper.NewListBuilder(base).
		SearchColumns("events.event_title", "events.event_location").
		Filter("events.event_category = ?", nilIfEmpty(category)).
		Sortable(map[string]string{
			"title":      "events.event_title",
			"starts_at":  "events.event_starts_at",
			"created_at": "events.event_created_at",
		}, "starts_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonSearchList(c, "events fetched", rows, total, filtered)
}

func (ctl *EventController) UpdateEvent(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	event, err := findEventScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	req.ApplyToModel(&event, userID)
	if event.EventEndsAt != nil && !event.EventEndsAt.After(event.EventStartsAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "ends_at must be after starts_at")
	}
	if err := ctl.DB.Save(&event).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "event updated", event)
}

func (ctl *EventController) DeleteEvent(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	event, err := findEventScoped(ctl.DB, orgID, uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	now := time.Now()
	err = ctl.DB.Model(&model.EventModel{}).
		Where("event_id = ?", event.EventID).
		Updates(map[string]interface{}{
			"event_is_deleted": true,
			"event_updated_at": now,
			"event_updated_by": userID,
		}).Error
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "event deleted", fiber.Map{"event_id": event.EventID})
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
