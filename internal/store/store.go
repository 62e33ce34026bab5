package store

import (
	"context"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store_mock.go -package=mocks

// Store defines the interface for database operations
type Store interface {
	// GetTokenByAddress retrieves a revealed token by its mint address
	GetTokenByAddress(ctx context.Context, tokenAddress string) (*schema.Token, error)
	// GetMetadataRecord retrieves the metadata record of a token at a given lifecycle stage
	GetMetadataRecord(ctx context.Context, tokenID int64, stage domain.Stage) (*schema.MetadataRecord, error)
	// ListAvailableRecipeSlots retrieves the slots of a pool that no token has claimed yet
	ListAvailableRecipeSlots(ctx context.Context, pool domain.RecipePool) ([]*schema.RecipeSlot, error)
	// CountRecipeSlots counts all seeded slots of a pool
	CountRecipeSlots(ctx context.Context, pool domain.RecipePool) (int64, error)
	// CountClaimedSlots counts the slots of a pool already claimed by revealed tokens
	CountClaimedSlots(ctx context.Context, pool domain.RecipePool) (int64, error)
	// SeedRecipeSlots inserts pre-generated recipe slots, skipping already seeded ones
	SeedRecipeSlots(ctx context.Context, slots []schema.RecipeSlot) error
	// IsCharacterTokenIDTaken checks if a character token id has been claimed
	IsCharacterTokenIDTaken(ctx context.Context, characterTokenID string) (bool, error)
	// CommitReveal atomically records a completed reveal
	CommitReveal(ctx context.Context, input CommitRevealInput) (*schema.Token, error)
	// CommitCustomize atomically records a completed customization
	CommitCustomize(ctx context.Context, input CommitCustomizeInput) error
}

// StageDocument carries the published artifacts of one lifecycle stage
type StageDocument struct {
	MetadataURL string
	ImageURL    string
	Document    datatypes.JSON
}

// CommitRevealInput contains everything a reveal writes in one transaction
type CommitRevealInput struct {
	TokenAddress string
	MintName     string
	MintNumber   int
	Allocation   domain.Allocation
	// Minted is the token's metadata as it was before the reveal
	Minted StageDocument
	// Revealed is the newly published metadata
	Revealed StageDocument
}

// CommitCustomizeInput contains everything a customization writes in one transaction
type CommitCustomizeInput struct {
	TokenAddress     string
	CharacterTokenID string
	TokenName        string
	Skills           domain.Skills
	Traits           domain.CosmeticTraits
	// Customized is the newly published metadata
	Customized StageDocument
}
