package model

// PartyRole is the V8 identity every write is attributed to.
type PartyRole struct {
	ID              int64  `gorm:"column:ID;primaryKey" json:"iD"`
	PartyID         int64  `gorm:"column:PartyID" json:"partyID"`
	PartyRoleTypeID int64  `gorm:"column:PartyRoleTypeID" json:"partyRoleTypeID"`
	Name            string `gorm:"column:Name" json:"name"`
}

func (PartyRole) TableName() string {
	return "PartyRole"
}
