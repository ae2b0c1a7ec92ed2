package service

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "gymdesk_backend/internals/helpers"
)

// The four tag link tables an exercise owns. Table/column names are fixed
// here, never taken from input.
const (
	TableEquipment       = "exercise_equipments"
	TablePrimaryMuscle   = "exercise_primary_muscles"
	TableSecondaryMuscle = "exercise_secondary_muscles"
	TablePrimaryJoint    = "exercise_primary_joints"

	ColEquipment = "equipment_id"
	ColMuscle    = "muscle_id"
	ColJoint     = "joint_id"
)

// TagSetInput: nil = leave the set alone, empty = clear it.
type TagSetInput struct {
	EquipmentIDs       *[]uint
	PrimaryMuscleIDs   *[]uint
	SecondaryMuscleIDs *[]uint
	PrimaryJointIDs    *[]uint
}

// LinkedTagIDs returns the active tag ids for one link table.
func LinkedTagIDs(db *gorm.DB, table, column string, exerciseID uint) ([]uint, error) {
	var arr pq.Int64Array
	q := fmt.Sprintf(
		`SELECT COALESCE(array_agg(%s), '{}') FROM %s WHERE exercise_id = ? AND is_deleted = FALSE`,
		column, table,
	)
	if err := db.Raw(q, exerciseID).Scan(&arr).Error; err != nil {
		return nil, err
	}
	out := make([]uint, 0, len(arr))
	for _, v := range arr {
		out = append(out, uint(v))
	}
	return out, nil
}

// ReplaceTagSet writes a full desired set for one link table: the diff is
// computed first, then additions are inserted and removals flagged. Must be
// called inside the caller's transaction.
func ReplaceTagSet(tx *gorm.DB, table, column string, exerciseID uint, desired []uint) error {
	existing, err := LinkedTagIDs(tx, table, column, exerciseID)
	if err != nil {
		return err
	}
	toAdd, toRemove := helper.DiffIDs(existing, desired)

	for _, id := range toAdd {
		ins := fmt.Sprintf(
			`INSERT INTO %s (exercise_id, %s, is_deleted) VALUES (?, ?, FALSE)`,
			table, column,
		)
		if err := tx.Exec(ins, exerciseID, id).Error; err != nil {
			return err
		}
	}
	if len(toRemove) > 0 {
		del := fmt.Sprintf(
			`UPDATE %s SET is_deleted = TRUE WHERE exercise_id = ? AND %s IN ? AND is_deleted = FALSE`,
			table, column,
		)
		if err := tx.Exec(del, exerciseID, toRemove).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReconcileTagSets applies every provided set for one exercise.
func ReconcileTagSets(tx *gorm.DB, exerciseID uint, in TagSetInput) error {
	if in.EquipmentIDs != nil {
		if err := ReplaceTagSet(tx, TableEquipment, ColEquipment, exerciseID, *in.EquipmentIDs); err != nil {
			return err
		}
	}
	if in.PrimaryMuscleIDs != nil {
		if err := ReplaceTagSet(tx, TablePrimaryMuscle, ColMuscle, exerciseID, *in.PrimaryMuscleIDs); err != nil {
			return err
		}
	}
	if in.SecondaryMuscleIDs != nil {
		if err := ReplaceTagSet(tx, TableSecondaryMuscle, ColMuscle, exerciseID, *in.SecondaryMuscleIDs); err != nil {
			return err
		}
	}
	if in.PrimaryJointIDs != nil {
		if err := ReplaceTagSet(tx, TablePrimaryJoint, ColJoint, exerciseID, *in.PrimaryJointIDs); err != nil {
			return err
		}
	}
	return nil
}
