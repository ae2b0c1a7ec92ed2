package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymdesk_backend/internals/constants"
)

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		txStatus    string
		fraudStatus string
		want        string
	}{
		{"settlement", "", constants.InvoiceStatusPaid},
		{"capture", "accept", constants.InvoiceStatusPaid},
		{"capture", "challenge", constants.InvoiceStatusPending},
		{"pending", "", constants.InvoiceStatusPending},
		{"expire", "", constants.InvoiceStatusExpired},
		{"deny", "", constants.InvoiceStatusCancelled},
		{"cancel", "", constants.InvoiceStatusCancelled},
		{"refund", "", constants.InvoiceStatusCancelled},
		{"somethingelse", "", ""},
	}
	for _, tc := range cases {
		got := mapGatewayStatus(tc.txStatus, tc.fraudStatus)
		assert.Equal(t, tc.want, got, "tx=%s fraud=%s", tc.txStatus, tc.fraudStatus)
	}
}

func TestGetStringIgnoresNonStrings(t *testing.T) {
	m := map[string]interface{}{"order_id": "INV-1", "gross_amount": 150000.0}
	assert.Equal(t, "INV-1", getString(m, "order_id"))
	assert.Equal(t, "", getString(m, "gross_amount"))
	assert.Equal(t, "", getString(m, "missing"))
}
