package schema

import (
	"time"
)

// TokenNameStatus tracks moderation of player-chosen names
type TokenNameStatus string

const (
	// TokenNameStatusApproved means the name passed moderation and is live
	TokenNameStatusApproved TokenNameStatus = "approved"
	// TokenNameStatusPending means the name awaits moderation
	TokenNameStatusPending TokenNameStatus = "pending"
	// TokenNameStatusRejected means the name failed moderation
	TokenNameStatusRejected TokenNameStatus = "rejected"
)

// TokenName represents the token_names table - the history of names a
// token has carried. The newest approved row is the display name.
type TokenName struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the associated token
	TokenID int64 `gorm:"column:token_id;not null;index"`
	// Name is the player-chosen display name
	Name string `gorm:"column:name;not null;type:text"`
	// Status is the moderation status of this name
	Status TokenNameStatus `gorm:"column:status;not null;default:'approved';type:text"`
	// CreatedAt is the timestamp when the name was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the TokenName model
func (TokenName) TableName() string {
	return "token_names"
}
