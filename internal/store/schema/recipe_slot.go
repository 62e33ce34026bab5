package schema

import (
	"time"
)

// RecipeSlot represents the recipe_slots table - one pre-generated recipe
// inside a finite pool. Slots are seeded before a drop opens and never
// change afterwards; claiming is recorded on the tokens table.
type RecipeSlot struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Pool is the recipe pool this slot belongs to (e.g., "Woodland Respite")
	Pool string `gorm:"column:pool;not null;type:text;uniqueIndex:idx_recipe_slots_pool_slot_number,priority:1"`
	// SlotNumber is the slot's position within its pool, starting at 1
	SlotNumber int `gorm:"column:slot_number;not null;uniqueIndex:idx_recipe_slots_pool_slot_number,priority:2"`
	// StatPoints is the stat score baked into this recipe (0-100)
	StatPoints int `gorm:"column:stat_points;not null"`
	// CosmeticPoints is the cosmetic score baked into this recipe (0-100)
	CosmeticPoints int `gorm:"column:cosmetic_points;not null"`
	// HeroTier is the overall rarity label of the recipe (e.g., "Legendary")
	HeroTier string `gorm:"column:hero_tier;not null;type:text"`
	// CreatedAt is the timestamp when this slot was seeded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RecipeSlot model
func (RecipeSlot) TableName() string {
	return "recipe_slots"
}
