package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymdesk_backend/internals/constants"
	clientModel "gymdesk_backend/internals/features/clients/model"
	"gymdesk_backend/internals/features/memberships/dto"
	"gymdesk_backend/internals/features/memberships/model"
	"gymdesk_backend/internals/features/memberships/service"
	helper "gymdesk_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

/* =========================================================
   CREATE
========================================================= */

// POST /api/a/memberships/invoices
func (ctl *InvoiceController) CreateInvoice(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	plan, err := findMembershipPlanScoped(ctl.DB, orgID, req.MembershipPlanID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	var client clientModel.ClientModel
	err = ctl.DB.
		Joins("JOIN client_organizations co ON co.client_id = clients.client_id AND co.org_id = ? AND co.is_deleted = FALSE", orgID).
		Where("clients.client_id = ? AND clients.client_is_deleted = FALSE", req.ClientID).
		First(&client).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonServiceError(c, helper.ErrNotFound)
		}
		return helper.JsonServiceError(c, err)
	}

	orderID := fmt.Sprintf("INV-%s", uuid.New().String())

	invoice := model.MembershipInvoiceModel{
		InvoiceOrgID:            orgID,
		InvoiceClientID:         client.ClientID,
		InvoiceMembershipPlanID: plan.MembershipPlanID,
		InvoiceOrderID:          orderID,
		InvoiceAmount:           plan.MembershipPlanPrice,
		InvoiceStatus:           constants.InvoiceStatusPending,
		InvoicePaymentGateway:   "midtrans",
	}
	if err := ctl.DB.Create(&invoice).Error; err != nil {
		log.Println("[ERROR] failed to create invoice:", err)
		return helper.JsonServiceError(c, err)
	}

	email := ""
	if client.ClientEmail != nil {
		email = *client.ClientEmail
	}
	token, redirectURL, err := service.GenerateSnapToken(invoice, client.ClientFullName, email)
	if err != nil {
		log.Println("[ERROR] GenerateSnapToken failed:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create payment token")
	}

	invoice.InvoicePaymentToken = &token
	if err := ctl.DB.Model(&invoice).Update("invoice_payment_token", &token).Error; err != nil {
		log.Println("[ERROR] failed to store payment token:", err)
		return helper.JsonServiceError(c, err)
	}

	return helper.JsonCreated(c, "invoice created, continue to payment", dto.InvoiceCreatedResponse{
		InvoiceID:   invoice.InvoiceID,
		OrderID:     orderID,
		Amount:      invoice.InvoiceAmount,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

/* =========================================================
   QUERY
========================================================= */

func (ctl *InvoiceController) ListInvoices(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgIDFromLocals(c)
	if err != nil {
		return err
	}
	params := helper.ResolveListParams(c, 20, 100)
	status := strings.TrimSpace(c.Query("status"))

	base := ctl.DB.Model(&model.MembershipInvoiceModel{}).
		Where("membership_invoices.invoice_org_id = ?", orgID)

	var rows []model.MembershipInvoiceModel
	total, filtered, err := helper.NewListBuilder(base).
		SearchColumns("membership_invoices.invoice_order_id").
		Filter("membership_invoices.invoice_status = ?", nilIfEmpty(status)).
		Sortable(map[string]string{
			"amount":     "membership_invoices.invoice_amount",
			"status":     "membership_invoices.invoice_status",
			"created_at": "membership_invoices.invoice_created_at",
		}, "created_at").
		Run(params, &rows)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonSearchList(c, "invoices fetched", rows, total, filtered)
}

/* =========================================================
   WEBHOOK
========================================================= */

// Map gateway transaction status to internal invoice status.
func mapGatewayStatus(txStatus, fraudStatus string) string {
	switch txStatus {
	case "capture", "settlement", "success":
		if txStatus == "capture" && fraudStatus == "challenge" {
			return constants.InvoiceStatusPending
		}
		return constants.InvoiceStatusPaid
	case "pending":
		return constants.InvoiceStatusPending
	case "expire", "expired":
		return constants.InvoiceStatusExpired
	case "cancel", "canceled", "deny", "failure", "failed", "refund", "partial_refund":
		return constants.InvoiceStatusCancelled
	default:
		return ""
	}
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func parseGatewayTime(body map[string]interface{}) time.Time {
	const layout = "2006-01-02 15:04:05"
	if s := getString(body, "settlement_time"); s != "" {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	if s := getString(body, "transaction_time"); s != "" {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

func (ctl *InvoiceController) applyInvoiceStatus(db *gorm.DB, body map[string]interface{}) error {
	orderID := getString(body, "order_id")
	txStatus := strings.ToLower(getString(body, "transaction_status"))
	if orderID == "" || txStatus == "" {
		return fmt.Errorf("invalid payload: order_id or transaction_status missing")
	}

	newStatus := mapGatewayStatus(txStatus, strings.ToLower(getString(body, "fraud_status")))
	if newStatus == "" {
		log.Printf("[WARN] unrecognized gateway status: %s (ignored)\n", txStatus)
		return nil
	}

	paymentType := strings.TrimSpace(getString(body, "payment_type"))

	var paidAtPtr *time.Time
	if newStatus == constants.InvoiceStatusPaid {
		t := parseGatewayTime(body)
		paidAtPtr = &t
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var invoice model.MembershipInvoiceModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("invoice_order_id = ?", orderID).
			First(&invoice).Error; err != nil {
			return fmt.Errorf("invoice not found for order_id %s: %w", orderID, err)
		}

		updates := map[string]interface{}{}
		if invoice.InvoiceStatus != newStatus {
			updates["invoice_status"] = newStatus
		}
		if paymentType != "" && (invoice.InvoicePaymentMethod == nil || *invoice.InvoicePaymentMethod != paymentType) {
			updates["invoice_payment_method"] = paymentType
		}
		if paidAtPtr != nil && (invoice.InvoicePaidAt == nil || !invoice.InvoicePaidAt.Equal(*paidAtPtr)) {
			updates["invoice_paid_at"] = *paidAtPtr
		}
		if len(updates) == 0 {
			log.Printf("ℹ️ invoice %s unchanged (status=%s)\n", orderID, invoice.InvoiceStatus)
			return nil
		}

		updates["invoice_updated_at"] = time.Now()
		if err := tx.Model(&invoice).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update invoice %s: %w", orderID, err)
		}
		log.Printf("✅ invoice %s updated: %+v\n", orderID, updates)
		return nil
	})
}

// POST /api/payments/notification (auth-skipped)
func (ctl *InvoiceController) HandlePaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}

	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	raw := string(c.Body())

	if strings.Contains(ct, "application/json") && len(raw) > 0 {
		if err := c.BodyParser(&body); err != nil {
			log.Println("[WARN] JSON parse failed:", err)
		}
	}

	// Fallback: the gateway also posts form-urlencoded (incl. its test button).
	if len(body) == 0 && (strings.Contains(ct, "application/x-www-form-urlencoded") || ct == "" || len(raw) == 0) {
		form := map[string]interface{}{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			form[string(k)] = string(v)
		})
		if len(form) > 0 {
			body = form
		}
	}

	if len(body) == 0 {
		log.Printf("[ERROR] webhook body empty. CT=%q raw=%q\n", ct, raw)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "empty body"})
	}

	log.Println("📥 payment webhook payload:", body)

	orderID := getString(body, "order_id")
	txStatus := strings.ToLower(getString(body, "transaction_status"))
	fraud := strings.ToLower(getString(body, "fraud_status"))

	if err := ctl.applyInvoiceStatus(ctl.DB, body); err != nil {
		log.Println("[ERROR] webhook processing failed:", err)
		// Answer 200 so the gateway does not retry aggressively.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "processed with warning",
			"error":   err.Error(),
		})
	}

	return helper.JsonOK(c, "payment webhook processed", struct {
		OrderID       string `json:"order_id"`
		GatewayStatus string `json:"gateway_status"`
		AppStatus     string `json:"app_status"`
	}{
		OrderID:       orderID,
		GatewayStatus: txStatus,
		AppStatus:     mapGatewayStatus(txStatus, fraud),
	})
}
