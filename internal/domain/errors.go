package domain

import "errors"

var (
	// ErrAlreadyRevealed is returned when attempting to reveal a token that has already been revealed
	ErrAlreadyRevealed = errors.New("token already revealed")

	// ErrNotRevealed is returned when attempting to customize a token that has not been revealed yet
	ErrNotRevealed = errors.New("token not revealed")

	// ErrAlreadyCustomized is returned when attempting to customize a token that has already been customized
	ErrAlreadyCustomized = errors.New("token already customized")

	// ErrPoolExhausted is returned when a recipe pool has no unclaimed slots left
	ErrPoolExhausted = errors.New("recipe pool exhausted")

	// ErrAllocationCollision is returned when a slot was claimed concurrently between draw and commit
	ErrAllocationCollision = errors.New("allocation collision")

	// ErrUnknownRecipePool is returned when a request names a pool that is not configured
	ErrUnknownRecipePool = errors.New("unknown recipe pool")

	// ErrNoPriorMetadata is returned when the current on-chain metadata cannot be fetched
	ErrNoPriorMetadata = errors.New("prior metadata not found")

	// ErrTokenNameTaken is returned when a character token id has already been claimed
	ErrTokenNameTaken = errors.New("token id already taken")

	// ErrRenderFailed is returned when the render farm reports a failed job
	ErrRenderFailed = errors.New("render failed")
)
