package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymdesk_backend/internals/constants"
)

func TestCreateLeadDefaultsToNewStatus(t *testing.T) {
	lead := CreateLeadRequest{FullName: "Walk-in Visitor"}.ToModel(3, 9)

	assert.Equal(t, constants.LeadStatusNew, lead.LeadStatus)
	assert.Equal(t, uint(3), lead.LeadOrgID)
}

func TestCreateLeadKeepsExplicitStatus(t *testing.T) {
	status := constants.LeadStatusContacted
	lead := CreateLeadRequest{FullName: "Walk-in Visitor", Status: &status}.ToModel(3, 9)

	assert.Equal(t, constants.LeadStatusContacted, lead.LeadStatus)
}
