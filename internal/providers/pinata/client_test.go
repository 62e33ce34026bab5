package pinata_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-forge/internal/adapter"
	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/mocks"
	"github.com/feral-file/ff-forge/internal/providers/pinata"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func TestPinJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	c := pinata.NewClient(httpClient, adapter.NewJSON(), "https://api.pinata.cloud/", "https://gateway.pinata.cloud", "key", "secret")

	var capturedBody []byte
	httpClient.EXPECT().
		Post(gomock.Any(), "https://api.pinata.cloud/pinning/pinJSONToIPFS", "application/json", gomock.Any(), map[string]string{
			"pinata_api_key":        "key",
			"pinata_secret_api_key": "secret",
		}).
		DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader, _ map[string]string) ([]byte, error) {
			var err error
			capturedBody, err = io.ReadAll(body)
			require.NoError(t, err)
			return []byte(`{"IpfsHash":"QmTestHash","PinSize":128,"Timestamp":"2025-01-01T00:00:00Z"}`), nil
		})

	result, err := c.PinJSON(context.Background(), "hero-123", map[string]interface{}{"name": "Hero #123"})
	require.NoError(t, err)
	assert.Equal(t, "QmTestHash", result.CID)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmTestHash", result.URL)

	assert.Contains(t, string(capturedBody), `"pinataContent":{"name":"Hero #123"}`)
	assert.Contains(t, string(capturedBody), `"pinataMetadata":{"name":"hero-123"}`)
}

func TestPinJSONEmptyCID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	c := pinata.NewClient(httpClient, adapter.NewJSON(), "https://api.pinata.cloud", "https://gateway.pinata.cloud", "key", "secret")

	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"IpfsHash":""}`), nil)

	result, err := c.PinJSON(context.Background(), "hero-123", map[string]interface{}{})
	assert.ErrorIs(t, err, pinata.ErrEmptyCID)
	assert.Nil(t, result)
}

func TestPinJSONAPIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	c := pinata.NewClient(httpClient, adapter.NewJSON(), "https://api.pinata.cloud", "https://gateway.pinata.cloud", "key", "secret")

	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("HTTP request failed with status code: 401"))

	result, err := c.PinJSON(context.Background(), "hero-123", map[string]interface{}{})
	assert.ErrorContains(t, err, "failed to call Pinata API")
	assert.Nil(t, result)
}

func TestPinFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	c := pinata.NewClient(httpClient, adapter.NewJSON(), "https://api.pinata.cloud", "https://gateway.pinata.cloud", "key", "secret")

	// Minimal PNG header so mimetype detection kicks in
	data := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0}, 16)...)

	var capturedContentType string
	var capturedBody []byte
	httpClient.EXPECT().
		Post(gomock.Any(), "https://api.pinata.cloud/pinning/pinFileToIPFS", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, contentType string, body io.Reader, _ map[string]string) ([]byte, error) {
			capturedContentType = contentType
			var err error
			capturedBody, err = io.ReadAll(body)
			require.NoError(t, err)
			return []byte(`{"IpfsHash":"QmImageHash"}`), nil
		})

	result, err := c.PinFile(context.Background(), "hero-123.png", data)
	require.NoError(t, err)
	assert.Equal(t, "QmImageHash", result.CID)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmImageHash", result.URL)

	mediaType, params, err := mime.ParseMediaType(capturedContentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(capturedBody), params["boundary"])
	filePart, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "file", filePart.FormName())
	assert.Equal(t, "hero-123.png", filePart.FileName())
	assert.Equal(t, "image/png", filePart.Header.Get("Content-Type"))

	fileData, err := io.ReadAll(filePart)
	require.NoError(t, err)
	assert.Equal(t, data, fileData)

	metadataPart, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "pinataMetadata", metadataPart.FormName())
	metadataData, err := io.ReadAll(metadataPart)
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`{"name":%q}`, "hero-123.png"), string(metadataData))
}
