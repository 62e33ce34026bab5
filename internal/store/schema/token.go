package schema

import (
	"time"
)

// Token represents the tokens table - one row per revealed token. The row
// is created by the reveal commit, so its existence doubles as the
// "already revealed" marker. The unique index on (pool, slot_number)
// turns concurrent claims of the same recipe slot into constraint
// violations instead of silent double-spends.
type Token struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the base58 mint address of the token
	TokenAddress string `gorm:"column:token_address;not null;uniqueIndex;type:text"`
	// MintName is the collection-assigned name at mint time (e.g., "Hero #123")
	MintName string `gorm:"column:mint_name;not null;type:text"`
	// MintNumber is the sequence number within the mint
	MintNumber int `gorm:"column:mint_number;not null"`
	// Pool is the recipe pool the token drew from
	Pool string `gorm:"column:pool;not null;type:text;uniqueIndex:idx_tokens_pool_slot_number,priority:1"`
	// SlotNumber is the claimed recipe slot within the pool
	SlotNumber int `gorm:"column:slot_number;not null;uniqueIndex:idx_tokens_pool_slot_number,priority:2"`
	// StatPoints is the stat score copied from the claimed slot
	StatPoints int `gorm:"column:stat_points;not null"`
	// CosmeticPoints is the cosmetic score copied from the claimed slot
	CosmeticPoints int `gorm:"column:cosmetic_points;not null"`
	// StatTier is the rarity band derived from StatPoints
	StatTier string `gorm:"column:stat_tier;not null;type:text"`
	// CosmeticTier is the rarity band derived from CosmeticPoints
	CosmeticTier string `gorm:"column:cosmetic_tier;not null;type:text"`
	// HeroTier is the overall rarity label copied from the claimed slot
	HeroTier string `gorm:"column:hero_tier;not null;type:text"`
	// CreatedAt is the timestamp when the reveal was committed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	MetadataRecords []MetadataRecord `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
	Character       *Character       `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
	TokenNames      []TokenName      `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
