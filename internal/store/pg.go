package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance.
// The gorm connection must be opened with TranslateError enabled so
// unique violations surface as gorm.ErrDuplicatedKey.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetTokenByAddress retrieves a revealed token by its mint address
func (s *pgStore) GetTokenByAddress(ctx context.Context, tokenAddress string) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("token_address = ?", tokenAddress).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &token, nil
}

// GetMetadataRecord retrieves the metadata record of a token at a given lifecycle stage
func (s *pgStore) GetMetadataRecord(ctx context.Context, tokenID int64, stage domain.Stage) (*schema.MetadataRecord, error) {
	var record schema.MetadataRecord
	err := s.db.WithContext(ctx).
		Where("token_id = ? AND stage = ?", tokenID, string(stage)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get metadata record: %w", err)
	}

	return &record, nil
}

// ListAvailableRecipeSlots retrieves the slots of a pool that no token has claimed yet
func (s *pgStore) ListAvailableRecipeSlots(ctx context.Context, pool domain.RecipePool) ([]*schema.RecipeSlot, error) {
	var slots []*schema.RecipeSlot
	err := s.db.WithContext(ctx).
		Model(&schema.RecipeSlot{}).
		Joins("LEFT JOIN tokens ON tokens.pool = recipe_slots.pool AND tokens.slot_number = recipe_slots.slot_number").
		Where("recipe_slots.pool = ? AND tokens.id IS NULL", string(pool)).
		Order("recipe_slots.slot_number ASC").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available recipe slots: %w", err)
	}

	return slots, nil
}

// CountRecipeSlots counts all seeded slots of a pool
func (s *pgStore) CountRecipeSlots(ctx context.Context, pool domain.RecipePool) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.RecipeSlot{}).
		Where("pool = ?", string(pool)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count recipe slots: %w", err)
	}

	return count, nil
}

// CountClaimedSlots counts the slots of a pool already claimed by revealed tokens
func (s *pgStore) CountClaimedSlots(ctx context.Context, pool domain.RecipePool) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("pool = ?", string(pool)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count claimed slots: %w", err)
	}

	return count, nil
}

// SeedRecipeSlots inserts pre-generated recipe slots, skipping already seeded ones
func (s *pgStore) SeedRecipeSlots(ctx context.Context, slots []schema.RecipeSlot) error {
	if len(slots) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pool"}, {Name: "slot_number"}},
		DoNothing: true,
	}).Create(&slots).Error
	if err != nil {
		return fmt.Errorf("failed to seed recipe slots: %w", err)
	}

	return nil
}

// IsCharacterTokenIDTaken checks if a character token id has been claimed
func (s *pgStore) IsCharacterTokenIDTaken(ctx context.Context, characterTokenID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Character{}).
		Where("character_token_id = ?", characterTokenID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check character token id: %w", err)
	}

	return count > 0, nil
}

// CommitReveal atomically records a completed reveal: the token row with
// its claimed slot, the pre-reveal metadata snapshot, and the revealed
// metadata record. The revealed record is written last so the stage
// marker can never exist without the rows it depends on.
//
// Unique violations are translated to domain errors after rollback:
// a duplicate token_address means the token was revealed concurrently,
// any other duplicate means the claimed slot was taken concurrently.
func (s *pgStore) CommitReveal(ctx context.Context, input CommitRevealInput) (*schema.Token, error) {
	token := schema.Token{
		TokenAddress:   input.TokenAddress,
		MintName:       input.MintName,
		MintNumber:     input.MintNumber,
		Pool:           string(input.Allocation.Pool),
		SlotNumber:     input.Allocation.SlotNumber,
		StatPoints:     input.Allocation.StatPoints,
		CosmeticPoints: input.Allocation.CosmeticPoints,
		StatTier:       string(input.Allocation.StatTier),
		CosmeticTier:   string(input.Allocation.CosmeticTier),
		HeroTier:       input.Allocation.HeroTier,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Create the token row. Its unique indexes are the claim:
		// token_address for the reveal-once guarantee, (pool, slot_number)
		// for the slot.
		if err := tx.Create(&token).Error; err != nil {
			return fmt.Errorf("failed to create token: %w", err)
		}

		// 2. Snapshot the pre-reveal metadata
		minted := schema.MetadataRecord{
			TokenID:     token.ID,
			Stage:       string(domain.StageMinted),
			MetadataURL: input.Minted.MetadataURL,
			ImageURL:    input.Minted.ImageURL,
			Document:    input.Minted.Document,
		}
		if err := tx.Create(&minted).Error; err != nil {
			return fmt.Errorf("failed to create minted metadata record: %w", err)
		}

		// 3. Record the revealed metadata
		revealed := schema.MetadataRecord{
			TokenID:     token.ID,
			Stage:       string(domain.StageRevealed),
			MetadataURL: input.Revealed.MetadataURL,
			ImageURL:    input.Revealed.ImageURL,
			Document:    input.Revealed.Document,
		}
		if err := tx.Create(&revealed).Error; err != nil {
			return fmt.Errorf("failed to create revealed metadata record: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyRevealConflict(ctx, input.TokenAddress)
		}
		return nil, err
	}

	return &token, nil
}

// classifyRevealConflict decides which constraint a reveal commit hit.
// The transaction has already rolled back, so the database reflects the
// competing writer's outcome.
func (s *pgStore) classifyRevealConflict(ctx context.Context, tokenAddress string) error {
	existing, err := s.GetTokenByAddress(ctx, tokenAddress)
	if err != nil {
		return fmt.Errorf("failed to classify reveal conflict: %w", err)
	}
	if existing != nil {
		return domain.ErrAlreadyRevealed
	}
	return domain.ErrAllocationCollision
}

// CommitCustomize atomically records a completed customization: the name
// history row, the character row, and the customized metadata record.
// The customized record is written last for the same reason as in
// CommitReveal.
func (s *pgStore) CommitCustomize(ctx context.Context, input CommitCustomizeInput) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. The token must have been revealed first
		var token schema.Token
		if err := tx.Where("token_address = ?", input.TokenAddress).First(&token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotRevealed
			}
			return fmt.Errorf("failed to get token: %w", err)
		}

		// 2. Record the chosen name
		tokenName := schema.TokenName{
			TokenID: token.ID,
			Name:    input.TokenName,
			Status:  schema.TokenNameStatusApproved,
		}
		if err := tx.Create(&tokenName).Error; err != nil {
			return fmt.Errorf("failed to create token name: %w", err)
		}

		// 3. Create the character. Unique indexes on token_id and
		// character_token_id are the customize-once and id-reservation
		// guarantees.
		character := schema.Character{
			TokenID:          token.ID,
			CharacterTokenID: input.CharacterTokenID,
			Skills: schema.CharacterSkills{
				Constitution: input.Skills.Constitution,
				Strength:     input.Skills.Strength,
				Dexterity:    input.Skills.Dexterity,
				Wisdom:       input.Skills.Wisdom,
				Intelligence: input.Skills.Intelligence,
				Charisma:     input.Skills.Charisma,
			},
			Traits: traitsToMap(input.Traits),
		}
		if err := tx.Create(&character).Error; err != nil {
			return fmt.Errorf("failed to create character: %w", err)
		}

		// 4. Record the customized metadata
		customized := schema.MetadataRecord{
			TokenID:     token.ID,
			Stage:       string(domain.StageCustomized),
			MetadataURL: input.Customized.MetadataURL,
			ImageURL:    input.Customized.ImageURL,
			Document:    input.Customized.Document,
		}
		if err := tx.Create(&customized).Error; err != nil {
			return fmt.Errorf("failed to create customized metadata record: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.classifyCustomizeConflict(ctx, input.TokenAddress, input.CharacterTokenID)
		}
		return err
	}

	return nil
}

// classifyCustomizeConflict decides which constraint a customize commit hit
func (s *pgStore) classifyCustomizeConflict(ctx context.Context, tokenAddress, characterTokenID string) error {
	token, err := s.GetTokenByAddress(ctx, tokenAddress)
	if err != nil {
		return fmt.Errorf("failed to classify customize conflict: %w", err)
	}
	if token != nil {
		var count int64
		err := s.db.WithContext(ctx).
			Model(&schema.Character{}).
			Where("token_id = ?", token.ID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to classify customize conflict: %w", err)
		}
		if count > 0 {
			return domain.ErrAlreadyCustomized
		}
	}

	taken, err := s.IsCharacterTokenIDTaken(ctx, characterTokenID)
	if err != nil {
		return fmt.Errorf("failed to classify customize conflict: %w", err)
	}
	if taken {
		return domain.ErrTokenNameTaken
	}

	return domain.ErrAlreadyCustomized
}

func traitsToMap(t domain.CosmeticTraits) schema.CharacterTraits {
	return schema.CharacterTraits{
		"race":         t.Race,
		"sex":          t.Sex,
		"faceStyle":    t.FaceStyle,
		"eyeDetail":    t.EyeDetail,
		"eyes":         t.Eyes,
		"facialHair":   t.FacialHair,
		"glasses":      t.Glasses,
		"hairStyle":    t.HairStyle,
		"hairColor":    t.HairColor,
		"necklace":     t.Necklace,
		"earring":      t.Earring,
		"nosePiercing": t.NosePiercing,
		"scar":         t.Scar,
		"tattoo":       t.Tattoo,
		"background":   t.Background,
	}
}
