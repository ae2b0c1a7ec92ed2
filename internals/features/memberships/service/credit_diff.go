package service

import (
	"gymdesk_backend/internals/features/memberships/dto"
	"gymdesk_backend/internals/features/memberships/model"
)

// CreditUpdate points at an existing allocation row whose credit
// amount changed.
type CreditUpdate struct {
	FacilityMembershipPlanID uint
	Credits                  int
}

// DiffFacilityCredits compares a plan's live credit allocations with the
// desired set. Identity per plan is facility_id; credits are mutable, so
// a matching facility with a different amount becomes an update.
// Duplicate facility ids in desired collapse to the last occurrence.
func DiffFacilityCredits(existing []model.FacilityMembershipPlanModel, desired []dto.FacilityCreditInput) (toInsert []dto.FacilityCreditInput, toUpdate []CreditUpdate, toRemove []uint) {
	want := make(map[uint]dto.FacilityCreditInput, len(desired))
	order := make([]uint, 0, len(desired))
	for _, in := range desired {
		if _, seen := want[in.FacilityID]; !seen {
			order = append(order, in.FacilityID)
		}
		want[in.FacilityID] = in
	}

	have := make(map[uint]model.FacilityMembershipPlanModel, len(existing))
	for _, fc := range existing {
		have[fc.FacilityID] = fc
	}

	for _, facilityID := range order {
		in := want[facilityID]
		cur, ok := have[facilityID]
		if !ok {
			toInsert = append(toInsert, in)
			continue
		}
		if cur.Credits != in.Credits {
			toUpdate = append(toUpdate, CreditUpdate{
				FacilityMembershipPlanID: cur.FacilityMembershipPlanID,
				Credits:                  in.Credits,
			})
		}
	}

	for _, fc := range existing {
		if _, keep := want[fc.FacilityID]; !keep {
			toRemove = append(toRemove, fc.FacilityMembershipPlanID)
		}
	}
	return toInsert, toUpdate, toRemove
}
