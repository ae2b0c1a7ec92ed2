package model

// ClientOrganizationModel links a client to an org, carrying the membership
// status for that org (active|inactive|pending).
type ClientOrganizationModel struct {
	ClientOrgID     uint   `json:"client_org_id" gorm:"column:client_org_id;primaryKey;autoIncrement"`
	ClientID        uint   `json:"client_id" gorm:"column:client_id;not null"`
	OrgID           uint   `json:"org_id" gorm:"column:org_id;not null"`
	ClientOrgStatus string `json:"client_org_status" gorm:"column:client_org_status;type:varchar(20);not null;default:'pending'"`
	IsDeleted       bool   `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (ClientOrganizationModel) TableName() string {
	return "client_organizations"
}

// ClientCoachModel is the client↔coach assignment join (set-like per client).
type ClientCoachModel struct {
	ClientCoachID uint `json:"client_coach_id" gorm:"column:client_coach_id;primaryKey;autoIncrement"`
	ClientID      uint `json:"client_id" gorm:"column:client_id;not null"`
	CoachID       uint `json:"coach_id" gorm:"column:coach_id;not null"`
	IsDeleted     bool `json:"-" gorm:"column:is_deleted;not null;default:false"`
}

func (ClientCoachModel) TableName() string {
	return "client_coaches"
}
