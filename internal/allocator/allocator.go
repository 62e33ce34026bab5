package allocator

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/store"
)

// Allocator draws a random unclaimed recipe slot from a finite pool.
//
// The draw is optimistic: the slot is not reserved here. The claim
// happens when the reveal commits, where the database's unique
// constraints reject a slot that was taken in the meantime. Callers are
// expected to re-draw on domain.ErrAllocationCollision.
//
//go:generate mockgen -source=allocator.go -destination=../mocks/allocator.go -package=mocks -mock_names=Allocator=MockAllocator
type Allocator interface {
	// Allocate draws one unclaimed slot from the pool uniformly at random
	Allocate(ctx context.Context, pool domain.RecipePool) (*domain.Allocation, error)
}

// Option configures an allocator
type Option func(*allocator)

// WithIntN overrides the random source. Tests use this to make draws
// deterministic.
func WithIntN(intn func(n int) int) Option {
	return func(a *allocator) {
		a.intn = intn
	}
}

type allocator struct {
	store store.Store
	intn  func(n int) int
}

// NewAllocator creates an allocator backed by the given store
func NewAllocator(s store.Store, opts ...Option) Allocator {
	a := &allocator{
		store: s,
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *allocator) Allocate(ctx context.Context, pool domain.RecipePool) (*domain.Allocation, error) {
	if !domain.IsValidRecipePool(pool) {
		return nil, domain.ErrUnknownRecipePool
	}

	slots, err := a.store.ListAvailableRecipeSlots(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to list available slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, domain.ErrPoolExhausted
	}

	slot := slots[a.intn(len(slots))]

	logger.DebugCtx(ctx, "Drew recipe slot",
		zap.String("pool", string(pool)),
		zap.Int("slot_number", slot.SlotNumber),
		zap.Int("available", len(slots)))

	return &domain.Allocation{
		Pool:           pool,
		SlotNumber:     slot.SlotNumber,
		StatPoints:     slot.StatPoints,
		CosmeticPoints: slot.CosmeticPoints,
		StatTier:       domain.TierForPoints(slot.StatPoints),
		CosmeticTier:   domain.TierForPoints(slot.CosmeticPoints),
		HeroTier:       slot.HeroTier,
	}, nil
}
