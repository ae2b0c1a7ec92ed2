package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymdesk_backend/internals/features/memberships/dto"
	"gymdesk_backend/internals/features/memberships/model"
)

func TestDiffFacilityCredits(t *testing.T) {
	existing := []model.FacilityMembershipPlanModel{
		{FacilityMembershipPlanID: 1, FacilityID: 10, Credits: 4},
		{FacilityMembershipPlanID: 2, FacilityID: 11, Credits: 2},
	}
	desired := []dto.FacilityCreditInput{
		{FacilityID: 10, Credits: 8}, // bumped
		{FacilityID: 12, Credits: 1}, // new
		// facility 11 dropped
	}

	toInsert, toUpdate, toRemove := DiffFacilityCredits(existing, desired)
	assert.Equal(t, []dto.FacilityCreditInput{{FacilityID: 12, Credits: 1}}, toInsert)
	assert.Equal(t, []CreditUpdate{{FacilityMembershipPlanID: 1, Credits: 8}}, toUpdate)
	assert.Equal(t, []uint{2}, toRemove)
}

func TestDiffFacilityCreditsIdempotent(t *testing.T) {
	existing := []model.FacilityMembershipPlanModel{
		{FacilityMembershipPlanID: 1, FacilityID: 10, Credits: 4},
	}
	desired := []dto.FacilityCreditInput{
		{FacilityID: 10, Credits: 4},
	}

	toInsert, toUpdate, toRemove := DiffFacilityCredits(existing, desired)
	assert.Empty(t, toInsert)
	assert.Empty(t, toUpdate)
	assert.Empty(t, toRemove)
}

func TestDiffFacilityCreditsEmptyExisting(t *testing.T) {
	desired := []dto.FacilityCreditInput{
		{FacilityID: 10, Credits: 4},
		{FacilityID: 11, Credits: 2},
	}

	toInsert, toUpdate, toRemove := DiffFacilityCredits(nil, desired)
	assert.Len(t, toInsert, 2)
	assert.Empty(t, toUpdate)
	assert.Empty(t, toRemove)
}
