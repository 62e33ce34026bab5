package metadata_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-forge/internal/adapter"
	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/metadata"
	"github.com/feral-file/ff-forge/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestFetcher_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	mockResolver := mocks.NewMockURIResolver(ctrl)

	mockResolver.
		EXPECT().
		Resolve(gomock.Any(), "ipfs://QmPrior").
		Return("https://ipfs.io/ipfs/QmPrior", nil)
	mockHTTP.
		EXPECT().
		GetBytes(gomock.Any(), "https://ipfs.io/ipfs/QmPrior", nil).
		Return([]byte(`{"name":"Hero #42","image":"https://arweave.net/a.png"}`), nil)

	fetcher := metadata.NewFetcher(mockHTTP, adapter.NewJSON(), mockResolver)
	doc, err := fetcher.Fetch(context.Background(), "ipfs://QmPrior")

	require.NoError(t, err)
	assert.Equal(t, "Hero #42", doc["name"])
	assert.Equal(t, "https://arweave.net/a.png", doc["image"])
}

func TestFetcher_FetchDownloadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	mockResolver := mocks.NewMockURIResolver(ctrl)

	mockResolver.
		EXPECT().
		Resolve(gomock.Any(), "ipfs://QmGone").
		Return("https://ipfs.io/ipfs/QmGone", nil)
	mockHTTP.
		EXPECT().
		GetBytes(gomock.Any(), "https://ipfs.io/ipfs/QmGone", nil).
		Return(nil, errors.New("status 404"))

	fetcher := metadata.NewFetcher(mockHTTP, adapter.NewJSON(), mockResolver)
	_, err := fetcher.Fetch(context.Background(), "ipfs://QmGone")

	assert.ErrorIs(t, err, domain.ErrNoPriorMetadata)
}

func TestFetcher_FetchInvalidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	mockResolver := mocks.NewMockURIResolver(ctrl)

	mockResolver.
		EXPECT().
		Resolve(gomock.Any(), "https://example.com/broken").
		Return("https://example.com/broken", nil)
	mockHTTP.
		EXPECT().
		GetBytes(gomock.Any(), "https://example.com/broken", nil).
		Return([]byte("not json"), nil)

	fetcher := metadata.NewFetcher(mockHTTP, adapter.NewJSON(), mockResolver)
	_, err := fetcher.Fetch(context.Background(), "https://example.com/broken")

	assert.ErrorIs(t, err, domain.ErrNoPriorMetadata)
}
