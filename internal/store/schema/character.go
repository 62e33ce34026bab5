package schema

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// CharacterSkills is the six-stat skill split stored as JSONB
type CharacterSkills struct {
	Constitution int `json:"constitution"`
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Wisdom       int `json:"wisdom"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
}

// Scan implements the sql.Scanner interface for reading from database
func (s *CharacterSkills) Scan(value interface{}) error {
	if value == nil {
		*s = CharacterSkills{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// Value implements the driver.Valuer interface for writing to database
func (s CharacterSkills) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// CharacterTraits is the selected cosmetic trait set stored as JSONB
type CharacterTraits map[string]string

// Scan implements the sql.Scanner interface for reading from database
func (t *CharacterTraits) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, t)
}

// Value implements the driver.Valuer interface for writing to database
func (t CharacterTraits) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Character represents the characters table - the customization a player
// locked in for a revealed token. One row per token; the unique index on
// character_token_id reserves the player-chosen identifier globally.
type Character struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the associated token (one-to-one)
	TokenID int64 `gorm:"column:token_id;not null;uniqueIndex"`
	// CharacterTokenID is the player-chosen character identifier, unique across the collection
	CharacterTokenID string `gorm:"column:character_token_id;not null;uniqueIndex;type:text"`
	// Skills is the six-stat split the player chose
	Skills CharacterSkills `gorm:"column:skills;not null;type:jsonb"`
	// Traits are the cosmetic traits the player chose
	Traits CharacterTraits `gorm:"column:traits;not null;type:jsonb"`
	// CreatedAt is the timestamp when the customization was committed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Character model
func (Character) TableName() string {
	return "characters"
}
