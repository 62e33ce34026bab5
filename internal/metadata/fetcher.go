package metadata

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-forge/internal/adapter"
	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/uri"
)

// Fetcher retrieves the current metadata document of a token
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	// Fetch resolves metadataURI and downloads the document it points at.
	// A document that cannot be fetched or parsed is reported as
	// domain.ErrNoPriorMetadata.
	Fetch(ctx context.Context, metadataURI string) (Document, error)
}

type fetcher struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	resolver   uri.Resolver
}

// NewFetcher creates a metadata fetcher
func NewFetcher(httpClient adapter.HTTPClient, json adapter.JSON, resolver uri.Resolver) Fetcher {
	return &fetcher{
		httpClient: httpClient,
		json:       json,
		resolver:   resolver,
	}
}

func (f *fetcher) Fetch(ctx context.Context, metadataURI string) (Document, error) {
	url, err := f.resolver.Resolve(ctx, metadataURI)
	if err != nil {
		logger.WarnCtx(ctx, "failed to resolve metadata URI", zap.Error(err), zap.String("uri", metadataURI))
		return nil, fmt.Errorf("resolve %s: %w", metadataURI, domain.ErrNoPriorMetadata)
	}

	body, err := f.httpClient.GetBytes(ctx, url, nil)
	if err != nil {
		logger.WarnCtx(ctx, "failed to download metadata", zap.Error(err), zap.String("url", url))
		return nil, fmt.Errorf("download %s: %w", url, domain.ErrNoPriorMetadata)
	}

	var doc Document
	if err := f.json.Unmarshal(body, &doc); err != nil {
		logger.WarnCtx(ctx, "failed to parse metadata", zap.Error(err), zap.String("url", url))
		return nil, fmt.Errorf("parse %s: %w", url, domain.ErrNoPriorMetadata)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("empty document at %s: %w", url, domain.ErrNoPriorMetadata)
	}

	return doc, nil
}
