package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-forge/internal/adapter"
	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/metadata"
	"github.com/feral-file/ff-forge/internal/providers/pinata"
	"github.com/feral-file/ff-forge/internal/providers/solana"
	"github.com/feral-file/ff-forge/internal/render"
	"github.com/feral-file/ff-forge/internal/store"

	allocatorpkg "github.com/feral-file/ff-forge/internal/allocator"
	"github.com/feral-file/ff-forge/internal/lifecycle"
)

// Application error types for failures no retry can fix. Workflows inspect
// these to decide between failing fast and re-drawing an allocation.
const (
	ErrTypeAlreadyRevealed     = "AlreadyRevealed"
	ErrTypeAlreadyCustomized   = "AlreadyCustomized"
	ErrTypeNotRevealed         = "NotRevealed"
	ErrTypeAllocationCollision = "AllocationCollision"
	ErrTypePoolExhausted       = "PoolExhausted"
	ErrTypeUnknownRecipePool   = "UnknownRecipePool"
	ErrTypeTokenNameTaken      = "TokenNameTaken"
	ErrTypeNoPriorMetadata     = "NoPriorMetadata"
)

// PublishedObject points at content pinned to IPFS
type PublishedObject struct {
	CID string
	URL string
}

// RevealMetadataInput is the input for building reveal metadata
type RevealMetadataInput struct {
	TokenAddress string
	Prior        metadata.Document
	Allocation   *domain.Allocation
	ImageURL     string
}

// CustomizeMetadataInput is the input for building customize metadata
type CustomizeMetadataInput struct {
	TokenAddress string
	Prior        metadata.Document
	TokenName    string
	Skills       domain.Skills
	Traits       domain.CosmeticTraits
	ImageURL     string
}

// RevealCommitInput is the input for persisting a completed reveal
type RevealCommitInput struct {
	TokenAddress     string
	MintName         string
	MintNumber       int
	Allocation       *domain.Allocation
	PriorMetadataURL string
	PriorDocument    metadata.Document
	MetadataURL      string
	ImageURL         string
	Document         metadata.Document
}

// CustomizeCommitInput is the input for persisting a completed customization
type CustomizeCommitInput struct {
	TokenAddress     string
	CharacterTokenID string
	TokenName        string
	Skills           domain.Skills
	Traits           domain.CosmeticTraits
	MetadataURL      string
	ImageURL         string
	Document         metadata.Document
}

// ExecutorConfig holds the settings shared by forge activities
type ExecutorConfig struct {
	// SiteURL is the public site used to build external_url links
	SiteURL string

	// HeroImages maps a domain.HeroImageKey to the URL of the pre-pinned
	// hero artwork for that pool and tier
	HeroImages map[string]string
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_forge.go -package=mocks -mock_names=Executor=MockForgeExecutor
type Executor interface {
	// CheckRevealable verifies the token has not been revealed yet
	CheckRevealable(ctx context.Context, tokenAddress string) error

	// CheckCustomizable verifies the token is revealed and not customized yet
	CheckCustomizable(ctx context.Context, tokenAddress string) error

	// FetchPriorMetadata downloads and parses the token's current metadata
	FetchPriorMetadata(ctx context.Context, metadataURI string) (metadata.Document, error)

	// AllocateSlot draws a random unclaimed recipe slot from a pool
	AllocateSlot(ctx context.Context, pool domain.RecipePool) (*domain.Allocation, error)

	// ResolveHeroImage resolves the pre-pinned hero artwork for an
	// allocation and returns its URL
	ResolveHeroImage(ctx context.Context, alloc *domain.Allocation) (string, error)

	// RenderCustomizeImage renders a customized character and returns the
	// URL of the rendered image
	RenderCustomizeImage(ctx context.Context, tokenAddress string, skills domain.Skills, traits domain.CosmeticTraits) (string, error)

	// PublishArtifact downloads a rendered image and pins it to IPFS
	PublishArtifact(ctx context.Context, name string, imageURL string) (*PublishedObject, error)

	// BuildRevealMetadata merges an allocation into the prior metadata
	BuildRevealMetadata(ctx context.Context, input *RevealMetadataInput) (metadata.Document, error)

	// BuildCustomizeMetadata merges skills and traits into the prior metadata
	BuildCustomizeMetadata(ctx context.Context, input *CustomizeMetadataInput) (metadata.Document, error)

	// PublishMetadata pins a metadata document to IPFS
	PublishMetadata(ctx context.Context, name string, document metadata.Document) (*PublishedObject, error)

	// AnchorMetadata points the token's on-chain metadata at a new URI
	AnchorMetadata(ctx context.Context, tokenAddress string, metadataURI string) (string, error)

	// CommitReveal atomically persists a completed reveal
	CommitReveal(ctx context.Context, input *RevealCommitInput) error

	// CommitCustomize atomically persists a completed customization
	CommitCustomize(ctx context.Context, input *CustomizeCommitInput) error
}

// executor is the concrete implementation of Executor
type executor struct {
	config      ExecutorConfig
	store       store.Store
	guard       lifecycle.Guard
	allocator   allocatorpkg.Allocator
	fetcher     metadata.Fetcher
	renderQueue render.Queue
	pinata      pinata.Client
	solana      solana.Client
	httpClient  adapter.HTTPClient
	json        adapter.JSON
}

// NewExecutor creates a new activity executor
func NewExecutor(
	config ExecutorConfig,
	s store.Store,
	guard lifecycle.Guard,
	alloc allocatorpkg.Allocator,
	fetcher metadata.Fetcher,
	renderQueue render.Queue,
	pinataClient pinata.Client,
	solanaClient solana.Client,
	httpClient adapter.HTTPClient,
	jsonAdapter adapter.JSON) Executor {
	return &executor{
		config:      config,
		store:       s,
		guard:       guard,
		allocator:   alloc,
		fetcher:     fetcher,
		renderQueue: renderQueue,
		pinata:      pinataClient,
		solana:      solanaClient,
		httpClient:  httpClient,
		json:        jsonAdapter,
	}
}

// CheckRevealable verifies the token has not been revealed yet
func (e *executor) CheckRevealable(ctx context.Context, tokenAddress string) error {
	err := e.guard.AssertRevealable(ctx, tokenAddress)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRevealed) {
			return temporal.NewNonRetryableApplicationError(
				"token is already revealed",
				ErrTypeAlreadyRevealed,
				err,
			)
		}
		return fmt.Errorf("failed to check reveal state: %w", err)
	}
	return nil
}

// CheckCustomizable verifies the token is revealed and not customized yet
func (e *executor) CheckCustomizable(ctx context.Context, tokenAddress string) error {
	_, err := e.guard.AssertCustomizable(ctx, tokenAddress)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotRevealed):
			return temporal.NewNonRetryableApplicationError(
				"token is not revealed yet",
				ErrTypeNotRevealed,
				err,
			)
		case errors.Is(err, domain.ErrAlreadyCustomized):
			return temporal.NewNonRetryableApplicationError(
				"token is already customized",
				ErrTypeAlreadyCustomized,
				err,
			)
		default:
			return fmt.Errorf("failed to check customize state: %w", err)
		}
	}
	return nil
}

// FetchPriorMetadata downloads and parses the token's current metadata
func (e *executor) FetchPriorMetadata(ctx context.Context, metadataURI string) (metadata.Document, error) {
	document, err := e.fetcher.Fetch(ctx, metadataURI)
	if err != nil {
		if errors.Is(err, domain.ErrNoPriorMetadata) {
			return nil, temporal.NewNonRetryableApplicationError(
				"token has no usable prior metadata",
				ErrTypeNoPriorMetadata,
				err,
			)
		}
		return nil, fmt.Errorf("failed to fetch prior metadata: %w", err)
	}
	return document, nil
}

// AllocateSlot draws a random unclaimed recipe slot from a pool
func (e *executor) AllocateSlot(ctx context.Context, pool domain.RecipePool) (*domain.Allocation, error) {
	alloc, err := e.allocator.Allocate(ctx, pool)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPoolExhausted):
			return nil, temporal.NewNonRetryableApplicationError(
				"recipe pool has no unclaimed slots left",
				ErrTypePoolExhausted,
				err,
			)
		case errors.Is(err, domain.ErrUnknownRecipePool):
			return nil, temporal.NewNonRetryableApplicationError(
				"unknown recipe pool",
				ErrTypeUnknownRecipePool,
				err,
			)
		default:
			return nil, fmt.Errorf("failed to allocate recipe slot: %w", err)
		}
	}
	return alloc, nil
}

// ResolveHeroImage resolves the pre-pinned hero artwork for an allocation.
// Reveal images are fixed per pool and tier, so there is nothing to render;
// the URLs come from configuration.
func (e *executor) ResolveHeroImage(ctx context.Context, alloc *domain.Allocation) (string, error) {
	key := domain.HeroImageKey(alloc.Pool, alloc.HeroTier)
	imageURL, ok := e.config.HeroImages[key]
	if !ok {
		return "", fmt.Errorf("no hero image configured for %q", key)
	}
	return imageURL, nil
}

// RenderCustomizeImage renders a customized character
func (e *executor) RenderCustomizeImage(ctx context.Context, tokenAddress string, skills domain.Skills, traits domain.CosmeticTraits) (string, error) {
	job, err := e.renderQueue.Submit(ctx, render.JobSpec{
		Kind:         render.JobKindCustomize,
		TokenAddress: tokenAddress,
		Skills:       &skills,
		Traits:       &traits,
	})
	if err != nil {
		return "", fmt.Errorf("failed to submit render job: %w", err)
	}

	result, err := job.Await(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render customize image: %w", err)
	}
	return result.ImageURL, nil
}

// PublishArtifact downloads a rendered image and pins it to IPFS
func (e *executor) PublishArtifact(ctx context.Context, name string, imageURL string) (*PublishedObject, error) {
	data, err := e.httpClient.GetBytes(ctx, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download rendered image: %w", err)
	}

	pinned, err := e.pinata.PinFile(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to pin artifact: %w", err)
	}

	logger.InfoCtx(ctx, "Published artifact",
		zap.String("name", name),
		zap.String("cid", pinned.CID),
	)

	return &PublishedObject{CID: pinned.CID, URL: pinned.URL}, nil
}

// BuildRevealMetadata merges an allocation into the prior metadata
func (e *executor) BuildRevealMetadata(ctx context.Context, input *RevealMetadataInput) (metadata.Document, error) {
	if input.Allocation == nil {
		return nil, fmt.Errorf("missing allocation")
	}
	return metadata.BuildReveal(input.Prior, *input.Allocation, input.ImageURL, e.externalURL()), nil
}

// BuildCustomizeMetadata merges skills and traits into the prior metadata
func (e *executor) BuildCustomizeMetadata(ctx context.Context, input *CustomizeMetadataInput) (metadata.Document, error) {
	return metadata.BuildCustomize(input.Prior, input.TokenName, input.Skills, input.Traits, input.ImageURL, e.externalURL()), nil
}

// PublishMetadata pins a metadata document to IPFS
func (e *executor) PublishMetadata(ctx context.Context, name string, document metadata.Document) (*PublishedObject, error) {
	pinned, err := e.pinata.PinJSON(ctx, name, document)
	if err != nil {
		return nil, fmt.Errorf("failed to pin metadata: %w", err)
	}

	logger.InfoCtx(ctx, "Published metadata",
		zap.String("name", name),
		zap.String("cid", pinned.CID),
	)

	return &PublishedObject{CID: pinned.CID, URL: pinned.URL}, nil
}

// AnchorMetadata points the token's on-chain metadata at a new URI
func (e *executor) AnchorMetadata(ctx context.Context, tokenAddress string, metadataURI string) (string, error) {
	txSignature, err := e.solana.UpdateMetadataURI(ctx, tokenAddress, metadataURI)
	if err != nil {
		return "", fmt.Errorf("failed to anchor metadata on-chain: %w", err)
	}
	return txSignature, nil
}

// CommitReveal atomically persists a completed reveal
func (e *executor) CommitReveal(ctx context.Context, input *RevealCommitInput) error {
	if input.Allocation == nil {
		return fmt.Errorf("missing allocation")
	}

	mintedDocument, err := e.json.Marshal(input.PriorDocument)
	if err != nil {
		return fmt.Errorf("failed to marshal prior document: %w", err)
	}
	revealedDocument, err := e.json.Marshal(input.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal revealed document: %w", err)
	}

	_, err = e.store.CommitReveal(ctx, store.CommitRevealInput{
		TokenAddress: input.TokenAddress,
		MintName:     input.MintName,
		MintNumber:   input.MintNumber,
		Allocation:   *input.Allocation,
		Minted: store.StageDocument{
			MetadataURL: input.PriorMetadataURL,
			ImageURL:    priorImageURL(input.PriorDocument),
			Document:    datatypes.JSON(mintedDocument),
		},
		Revealed: store.StageDocument{
			MetadataURL: input.MetadataURL,
			ImageURL:    input.ImageURL,
			Document:    datatypes.JSON(revealedDocument),
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRevealed):
			return temporal.NewNonRetryableApplicationError(
				"token is already revealed",
				ErrTypeAlreadyRevealed,
				err,
			)
		case errors.Is(err, domain.ErrAllocationCollision):
			return temporal.NewNonRetryableApplicationError(
				"another reveal claimed the slot first",
				ErrTypeAllocationCollision,
				err,
			)
		default:
			return fmt.Errorf("failed to commit reveal: %w", err)
		}
	}

	logger.InfoCtx(ctx, "Reveal committed",
		zap.String("token_address", input.TokenAddress),
		zap.String("pool", string(input.Allocation.Pool)),
		zap.Int("slot_number", input.Allocation.SlotNumber),
	)

	return nil
}

// CommitCustomize atomically persists a completed customization
func (e *executor) CommitCustomize(ctx context.Context, input *CustomizeCommitInput) error {
	document, err := e.json.Marshal(input.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal customized document: %w", err)
	}

	err = e.store.CommitCustomize(ctx, store.CommitCustomizeInput{
		TokenAddress:     input.TokenAddress,
		CharacterTokenID: input.CharacterTokenID,
		TokenName:        input.TokenName,
		Skills:           input.Skills,
		Traits:           input.Traits,
		Customized: store.StageDocument{
			MetadataURL: input.MetadataURL,
			ImageURL:    input.ImageURL,
			Document:    datatypes.JSON(document),
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotRevealed):
			return temporal.NewNonRetryableApplicationError(
				"token is not revealed yet",
				ErrTypeNotRevealed,
				err,
			)
		case errors.Is(err, domain.ErrAlreadyCustomized):
			return temporal.NewNonRetryableApplicationError(
				"token is already customized",
				ErrTypeAlreadyCustomized,
				err,
			)
		case errors.Is(err, domain.ErrTokenNameTaken):
			return temporal.NewNonRetryableApplicationError(
				"token name is already taken",
				ErrTypeTokenNameTaken,
				err,
			)
		default:
			return fmt.Errorf("failed to commit customization: %w", err)
		}
	}

	logger.InfoCtx(ctx, "Customization committed",
		zap.String("token_address", input.TokenAddress),
		zap.String("token_name", input.TokenName),
	)

	return nil
}

// externalURL is the public site link embedded in published metadata
func (e *executor) externalURL() string {
	return e.config.SiteURL
}

// priorImageURL extracts the image URL from a prior metadata document
func priorImageURL(document metadata.Document) string {
	if document == nil {
		return ""
	}
	if image, ok := document["image"].(string); ok {
		return image
	}
	return ""
}
