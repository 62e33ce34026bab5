package lifecycle

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/store"
	"github.com/feral-file/ff-forge/internal/store/schema"
)

// Guard answers whether a token may enter a lifecycle transition.
//
// These checks are advisory fast-fails: the authoritative enforcement is
// the store's unique constraints at commit time. A token that passes the
// guard can still lose the race and get the same domain error from the
// commit.
//
//go:generate mockgen -source=guard.go -destination=../mocks/lifecycle_guard.go -package=mocks -mock_names=Guard=MockLifecycleGuard
type Guard interface {
	// AssertRevealable returns domain.ErrAlreadyRevealed if the token has
	// already been revealed
	AssertRevealable(ctx context.Context, tokenAddress string) error
	// AssertCustomizable returns the revealed token, domain.ErrNotRevealed
	// if it does not exist, or domain.ErrAlreadyCustomized if it has
	// already been customized
	AssertCustomizable(ctx context.Context, tokenAddress string) (*schema.Token, error)
}

type guard struct {
	store store.Store
}

// NewGuard creates a lifecycle guard backed by the given store
func NewGuard(s store.Store) Guard {
	return &guard{store: s}
}

func (g *guard) AssertRevealable(ctx context.Context, tokenAddress string) error {
	token, err := g.store.GetTokenByAddress(ctx, tokenAddress)
	if err != nil {
		return fmt.Errorf("failed to check token: %w", err)
	}
	if token != nil {
		return domain.ErrAlreadyRevealed
	}
	return nil
}

func (g *guard) AssertCustomizable(ctx context.Context, tokenAddress string) (*schema.Token, error) {
	token, err := g.store.GetTokenByAddress(ctx, tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check token: %w", err)
	}
	if token == nil {
		return nil, domain.ErrNotRevealed
	}

	record, err := g.store.GetMetadataRecord(ctx, token.ID, domain.StageCustomized)
	if err != nil {
		return nil, fmt.Errorf("failed to check customized stage: %w", err)
	}
	if record != nil {
		return nil, domain.ErrAlreadyCustomized
	}

	return token, nil
}
