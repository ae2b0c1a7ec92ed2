package model

import (
	"time"
)

type MembershipInvoiceModel struct {
	InvoiceID               uint   `json:"invoice_id" gorm:"column:invoice_id;primaryKey;autoIncrement"`
	InvoiceOrgID            uint   `json:"invoice_org_id" gorm:"column:invoice_org_id;not null"`
	InvoiceClientID         uint   `json:"invoice_client_id" gorm:"column:invoice_client_id;not null"`
	InvoiceMembershipPlanID uint   `json:"invoice_membership_plan_id" gorm:"column:invoice_membership_plan_id;not null"`
	InvoiceOrderID          string `json:"invoice_order_id" gorm:"column:invoice_order_id;type:varchar(64);uniqueIndex;not null"`
	InvoiceAmount           int64  `json:"invoice_amount" gorm:"column:invoice_amount;not null"`
	InvoiceStatus           string `json:"invoice_status" gorm:"column:invoice_status;type:varchar(20);not null;default:'pending'"`

	InvoicePaymentGateway string     `json:"invoice_payment_gateway" gorm:"column:invoice_payment_gateway;type:varchar(30);not null;default:'midtrans'"`
	InvoicePaymentToken   *string    `json:"invoice_payment_token,omitempty" gorm:"column:invoice_payment_token;type:text"`
	InvoicePaymentMethod  *string    `json:"invoice_payment_method,omitempty" gorm:"column:invoice_payment_method;type:varchar(40)"`
	InvoicePaidAt         *time.Time `json:"invoice_paid_at,omitempty" gorm:"column:invoice_paid_at"`

	InvoiceCreatedAt time.Time  `json:"invoice_created_at" gorm:"column:invoice_created_at;not null;autoCreateTime"`
	InvoiceUpdatedAt *time.Time `json:"invoice_updated_at,omitempty" gorm:"column:invoice_updated_at"`
}

func (MembershipInvoiceModel) TableName() string {
	return "membership_invoices"
}
