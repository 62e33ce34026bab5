package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/metadata"
)

// CustomizeWorkflow runs the customization pipeline for a revealed token:
// render the customized character, publish artifact and metadata to IPFS,
// anchor the metadata URI on-chain, and persist the result.
func (w *workerForge) CustomizeWorkflow(ctx workflow.Context, request *domain.CustomizeRequest) (*domain.CustomizeResult, error) {
	logger.InfoWf(ctx, "Starting customization",
		zap.String("tokenAddress", request.TokenAddress),
		zap.String("tokenName", request.TokenName),
	)

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Stop early unless the token is revealed and uncustomized
	err := workflow.ExecuteActivity(ctx, w.executor.CheckCustomizable, request.TokenAddress).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to check customize state"),
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

	// Step 3: Render the customized character
	renderCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 15 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 2,
		},
	})

	var renderedImageURL string
	err = workflow.ExecuteActivity(renderCtx, w.executor.RenderCustomizeImage, request.TokenAddress, request.Skills, request.Traits).Get(ctx, &renderedImageURL)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to render customize image"),
			zap.Error(err),
			zap.String("tokenAddress", request.TokenAddress),
		)
		return nil, err
	}

	// Step 4: Pin the rendered image to IPFS
	var artifact *PublishedObject
	artifactName := fmt.Sprintf("%s-customized.png", request.TokenAddress)
	err = workflow.ExecuteActivity(ctx, w.executor.PublishArtifact, artifactName, renderedImageURL).Get(ctx, &artifact)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to publish artifact"),
			zap.Error(err),
			zap.String("tokenAddress", request.TokenAddress),
		)
		return nil, err
	}

	// Step 5: Build and pin the customized metadata
	var document metadata.Document
	err = workflow.ExecuteActivity(ctx, w.executor.BuildCustomizeMetadata, &CustomizeMetadataInput{
		TokenAddress: request.TokenAddress,
		Prior:        prior,
		TokenName:    request.TokenName,
		Skills:       request.Skills,
		Traits:       request.Traits,
		ImageURL:     artifact.URL,
	}).Get(ctx, &document)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to build customize metadata"),
			zap.Error(err),
			zap.String("tokenAddress", request.TokenAddress),
		)
		return nil, err
	}

	var published *PublishedObject
	metadataName := fmt.Sprintf("%s-customized.json", request.TokenAddress)
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

	// Step 7: Persist the customization in one transaction
	err = workflow.ExecuteActivity(ctx, w.executor.CommitCustomize, &CustomizeCommitInput{
		TokenAddress:     request.TokenAddress,
		CharacterTokenID: request.TokenID,
		TokenName:        request.TokenName,
		Skills:           request.Skills,
		Traits:           request.Traits,
		MetadataURL:      published.URL,
		ImageURL:         artifact.URL,
		Document:         document,
	}).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to commit customization"),
			zap.Error(err),
			zap.String("tokenAddress", request.TokenAddress),
		)
		return nil, err
	}

	logger.InfoWf(ctx, "Customization completed",
		zap.String("tokenAddress", request.TokenAddress),
		zap.String("metadataURL", published.URL),
	)

	return &domain.CustomizeResult{
		TokenAddress: request.TokenAddress,
		MetadataURL:  published.URL,
		ImageURL:     artifact.URL,
	}, nil
}
