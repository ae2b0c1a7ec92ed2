package model

// Shared tag catalogs. Muscles and joints serve both the primary and
// secondary link tables.

type EquipmentModel struct {
	EquipmentID   uint   `json:"equipment_id" gorm:"column:equipment_id;primaryKey;autoIncrement"`
	EquipmentName string `json:"equipment_name" gorm:"column:equipment_name;type:varchar(120);not null"`
	IsDeleted     bool   `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (EquipmentModel) TableName() string { return "equipments" }

type MuscleModel struct {
	MuscleID   uint   `json:"muscle_id" gorm:"column:muscle_id;primaryKey;autoIncrement"`
	MuscleName string `json:"muscle_name" gorm:"column:muscle_name;type:varchar(120);not null"`
	IsDeleted  bool   `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (MuscleModel) TableName() string { return "muscles" }

type JointModel struct {
	JointID   uint   `json:"joint_id" gorm:"column:joint_id;primaryKey;autoIncrement"`
	JointName string `json:"joint_name" gorm:"column:joint_name;type:varchar(120);not null"`
	IsDeleted bool   `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (JointModel) TableName() string { return "joints" }

/* =======================================================
   Link tables: set-like per exercise, (exercise_id, tag_id, is_deleted)
   ======================================================= */

type ExerciseEquipmentModel struct {
	ID          uint `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ExerciseID  uint `json:"exercise_id" gorm:"column:exercise_id;not null"`
	EquipmentID uint `json:"equipment_id" gorm:"column:equipment_id;not null"`
	IsDeleted   bool `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (ExerciseEquipmentModel) TableName() string { return "exercise_equipments" }

type ExercisePrimaryMuscleModel struct {
	ID         uint `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ExerciseID uint `json:"exercise_id" gorm:"column:exercise_id;not null"`
	MuscleID   uint `json:"muscle_id" gorm:"column:muscle_id;not null"`
	IsDeleted  bool `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (ExercisePrimaryMuscleModel) TableName() string { return "exercise_primary_muscles" }

type ExerciseSecondaryMuscleModel struct {
	ID         uint `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ExerciseID uint `json:"exercise_id" gorm:"column:exercise_id;not null"`
	MuscleID   uint `json:"muscle_id" gorm:"column:muscle_id;not null"`
	IsDeleted  bool `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (ExerciseSecondaryMuscleModel) TableName() string { return "exercise_secondary_muscles" }

type ExercisePrimaryJointModel struct {
	ID         uint `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ExerciseID uint `json:"exercise_id" gorm:"column:exercise_id;not null"`
	JointID    uint `json:"joint_id" gorm:"column:joint_id;not null"`
	IsDeleted  bool `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (ExercisePrimaryJointModel) TableName() string { return "exercise_primary_joints" }
