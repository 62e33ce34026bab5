package workflows

import (
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/metadata"
)

// RevealWorkflow runs the reveal pipeline for a minted token:
// allocate a recipe slot, resolve the pre-pinned hero artwork for the
// drawn tier, publish metadata to IPFS, anchor the metadata URI on-chain,
// and persist the result. When the commit loses the slot race to a
// concurrent reveal the workflow re-draws the allocation, up to
// RevealMaxAttempts times.
func (w *workerForge) RevealWorkflow(ctx workflow.Context, request *domain.RevealRequest) (*domain.RevealResult, error) {
	logger.InfoWf(ctx, "Starting reveal",
		zap.String("tokenAddress", request.TokenAddress),
		zap.String("pool", string(request.Pool)),
	)

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Stop early if the token is already revealed
	err := workflow.ExecuteActivity(ctx, w.executor.CheckRevealable, request.TokenAddress).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to check reveal state"),
			zap.Error(err),
			zap.String("tokenAddress", request.TokenAddress),
		)
		return nil, err
	}

	// Step 2: Fetch the token's current metadata so unknown fields survive
	var prior metadata.Document
	err = workflow.ExecuteActivity(ctx, w.executor.FetchPriorMetadata, request.MetadataURI).Get(ctx, &prior)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to fetch prior metadata"),
			zap.Error(err),
			zap.String("tokenAddress", request.TokenAddress),
		)
		return nil, err
	}

	// Steps 3-7 run per allocation attempt. The draw is optimistic: the
	// slot is only claimed when the commit transaction inserts the token
	// row, so a concurrent reveal can win the slot between the draw and
	// the commit. The unique index turns that race into a collision error
	// and the loop draws again.
	var lastErr error
	for attempt := 1; attempt <= w.config.RevealMaxAttempts; attempt++ {
		// Step 3: Draw a random unclaimed slot
		var alloc *domain.Allocation
		err = workflow.ExecuteActivity(ctx, w.executor.AllocateSlot, request.Pool).Get(ctx, &alloc)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to allocate recipe slot"),
				zap.Error(err),
				zap.String("tokenAddress", request.TokenAddress),
				zap.Int("attempt", attempt),
			)
			return nil, err
		}

		logger.InfoWf(ctx, "Allocated recipe slot",
			zap.String("tokenAddress", request.TokenAddress),
			zap.Int("slotNumber", alloc.SlotNumber),
			zap.String("heroTier", string(alloc.HeroTier)),
			zap.Int("attempt", attempt),
		)

		// Step 4: Resolve the pre-pinned hero artwork for the drawn tier
		var heroImageURL string
		err = workflow.ExecuteActivity(ctx, w.executor.ResolveHeroImage, alloc).Get(ctx, &heroImageURL)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to resolve hero image"),
				zap.Error(err),
				zap.String("tokenAddress", request.TokenAddress),
			)
			return nil, err
		}

		// Step 5: Build and pin the revealed metadata
		var document metadata.Document
		err = workflow.ExecuteActivity(ctx, w.executor.BuildRevealMetadata, &RevealMetadataInput{
			TokenAddress: request.TokenAddress,
			Prior:        prior,
			Allocation:   alloc,
			ImageURL:     heroImageURL,
		}).Get(ctx, &document)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to build reveal metadata"),
				zap.Error(err),
				zap.String("tokenAddress", request.TokenAddress),
			)
			return nil, err
		}

		var published *PublishedObject
		metadataName := fmt.Sprintf("%s-revealed.json", request.TokenAddress)
		err = workflow.ExecuteActivity(ctx, w.executor.PublishMetadata, metadataName, document).Get(ctx, &published)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to publish metadata"),
				zap.Error(err),
				zap.String("tokenAddress", request.TokenAddress),
			)
			return nil, err
		}

		// Step 6: Anchor the new metadata URI on-chain
		var txSignature string
		err = workflow.ExecuteActivity(ctx, w.executor.AnchorMetadata, request.TokenAddress, published.URL).Get(ctx, &txSignature)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to anchor metadata"),
				zap.Error(err),
				zap.String("tokenAddress", request.TokenAddress),
			)
			return nil, err
		}

		// Step 7: Persist the reveal in one transaction
		err = workflow.ExecuteActivity(ctx, w.executor.CommitReveal, &RevealCommitInput{
			TokenAddress:     request.TokenAddress,
			MintName:         request.MintName,
			MintNumber:       request.MintNumber,
			Allocation:       alloc,
			PriorMetadataURL: request.MetadataURI,
			PriorDocument:    prior,
			MetadataURL:      published.URL,
			ImageURL:         heroImageURL,
			Document:         document,
		}).Get(ctx, nil)
		if err != nil {
			if isApplicationErrType(err, ErrTypeAllocationCollision) {
				logger.WarnWf(ctx, "Allocation collided with a concurrent reveal, drawing again",
					zap.String("tokenAddress", request.TokenAddress),
					zap.Int("slotNumber", alloc.SlotNumber),
					zap.Int("attempt", attempt),
				)
				lastErr = err
				continue
			}

			logger.ErrorWf(ctx,
				fmt.Errorf("failed to commit reveal"),
				zap.Error(err),
				zap.String("tokenAddress", request.TokenAddress),
			)
			return nil, err
		}

		logger.InfoWf(ctx, "Reveal completed",
			zap.String("tokenAddress", request.TokenAddress),
			zap.Int("slotNumber", alloc.SlotNumber),
			zap.String("metadataURL", published.URL),
		)

		return &domain.RevealResult{
			TokenAddress:   request.TokenAddress,
			StatPoints:     alloc.StatPoints,
			CosmeticPoints: alloc.CosmeticPoints,
			StatTier:       alloc.StatTier,
			CosmeticTier:   alloc.CosmeticTier,
			HeroTier:       alloc.HeroTier,
			MetadataURL:    published.URL,
		}, nil
	}

	logger.ErrorWf(ctx,
		fmt.Errorf("reveal gave up after losing %d slot races", w.config.RevealMaxAttempts),
		zap.Error(lastErr),
		zap.String("tokenAddress", request.TokenAddress),
	)

	return nil, lastErr
}

// isApplicationErrType reports whether err carries an application error
// of the given type
func isApplicationErrType(err error, errType string) bool {
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.Type() == errType
}
