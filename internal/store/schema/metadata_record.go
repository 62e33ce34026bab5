package schema

import (
	"time"

	"gorm.io/datatypes"
)

// MetadataRecord represents the metadata_records table - an append-only
// history of a token's published metadata, one row per lifecycle stage.
// The unique index on (token_id, stage) makes a stage transition
// committable at most once.
type MetadataRecord struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the associated token
	TokenID int64 `gorm:"column:token_id;not null;uniqueIndex:idx_metadata_records_token_stage,priority:1"`
	// Stage is the lifecycle stage this record belongs to (minted, revealed, customized)
	Stage string `gorm:"column:stage;not null;type:text;uniqueIndex:idx_metadata_records_token_stage,priority:2"`
	// MetadataURL is the published location of the full metadata document
	MetadataURL string `gorm:"column:metadata_url;not null;type:text"`
	// ImageURL is the image referenced by the metadata document
	ImageURL string `gorm:"column:image_url;not null;type:text"`
	// Document is the full metadata document as published
	Document datatypes.JSON `gorm:"column:document;type:jsonb"`
	// CreatedAt is the timestamp when this stage was committed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the MetadataRecord model
func (MetadataRecord) TableName() string {
	return "metadata_records"
}
