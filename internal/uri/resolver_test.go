package uri_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-forge/internal/logger"
	"github.com/feral-file/ff-forge/internal/mocks"
	"github.com/feral-file/ff-forge/internal/uri"
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

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		setupMocks  func(*mocks.MockHTTPClient)
		config      *uri.Config
		expected    string
		expectedErr string // Error message to assert, empty means no error expected
	}{
		{
			name: "regular HTTPS URL",
			uri:  "https://example.com/path/to/resource",
			config: &uri.Config{
				IPFSGateways:    []string{"https://ipfs.io"},
				ArweaveGateways: []string{"https://arweave.net"},
			},
			expected:    "https://example.com/path/to/resource",
			expectedErr: "",
		},
		{
			name: "IPFS URI",
			uri:  "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io", "https://gateway.pinata.cloud"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				// First gateway fails
				mockResp1 := &http.Response{
					StatusCode: http.StatusNotFound,
					Body:       io.NopCloser(bytes.NewReader(nil)),
				}
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(mockResp1, nil)

				// Second gateway succeeds
				mockResp2 := &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewReader(nil)),
				}
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(mockResp2, nil)
			},
			expected:    "https://gateway.pinata.cloud/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			expectedErr: "",
		},
		{
			name: "Arweave URI",
			uri:  "ar://abc123",
			config: &uri.Config{
				ArweaveGateways: []string{"https://arweave.net"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockResp := &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewReader(nil)),
				}
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://arweave.net/abc123").
					Return(mockResp, nil)
			},
			expected:    "https://arweave.net/abc123",
			expectedErr: "",
		},
		{
			name: "IPFS URI with no gateways configured",
			uri:  "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			config: &uri.Config{
				IPFSGateways: []string{},
			},
			expected:    "",
			expectedErr: "no IPFS gateways configured",
		},
		{
			name: "IPFS URI with all gateways failing",
			uri:  "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockResp := &http.Response{
					StatusCode: http.StatusBadGateway,
					Body:       io.NopCloser(bytes.NewReader(nil)),
				}
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG").
					Return(mockResp, nil)
			},
			expected:    "",
			expectedErr: "no working IPFS gateway found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockHTTP)
			}

			resolver := uri.NewResolver(mockHTTP, tt.config)
			got, err := resolver.Resolve(context.Background(), tt.uri)

			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractIPFSCID(t *testing.T) {
	assert.Equal(t, "QmXxx", uri.ExtractIPFSCID("ipfs://QmXxx"))
	assert.Equal(t, "QmXxx", uri.ExtractIPFSCID("https://gateway.pinata.cloud/ipfs/QmXxx"))
	assert.Equal(t, "", uri.ExtractIPFSCID("https://example.com/metadata.json"))
}
