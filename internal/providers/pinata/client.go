package pinata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/feral-file/ff-forge/internal/adapter"
)

const PROVIDER_NAME = "pinata"

// ErrEmptyCID is returned when Pinata responds without an IPFS hash
var ErrEmptyCID = errors.New("pinata returned an empty IPFS hash")

// PinResult holds the outcome of a successful pin operation
type PinResult struct {
	// CID is the IPFS content identifier of the pinned data
	CID string

	// URL is the gateway URL where the pinned data can be fetched
	URL string
}

// pinResponse is the response body of the Pinata pinning endpoints
type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// Client defines the interface for pinning content to IPFS through Pinata
//
//go:generate mockgen -source=client.go -destination=../../mocks/pinata_client.go -package=mocks -mock_names=Client=MockPinataClient
type Client interface {
	// PinJSON pins a JSON document and returns its CID and gateway URL
	PinJSON(ctx context.Context, name string, content interface{}) (*PinResult, error)

	// PinFile pins a binary file and returns its CID and gateway URL
	PinFile(ctx context.Context, name string, data []byte) (*PinResult, error)
}

type client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	apiURL     string
	gatewayURL string
	apiKey     string
	apiSecret  string
}

// NewClient creates a new Pinata client
func NewClient(
	httpClient adapter.HTTPClient,
	json adapter.JSON,
	apiURL string,
	gatewayURL string,
	apiKey string,
	apiSecret string) Client {
	return &client{
		httpClient: httpClient,
		json:       json,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		gatewayURL: strings.TrimSuffix(gatewayURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
	}
}

// PinJSON pins a JSON document and returns its CID and gateway URL
func (c *client) PinJSON(ctx context.Context, name string, content interface{}) (*PinResult, error) {
	body, err := c.json.Marshal(map[string]interface{}{
		"pinataContent": content,
		"pinataMetadata": map[string]interface{}{
			"name": name,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin request: %w", err)
	}

	url := fmt.Sprintf("%s/pinning/pinJSONToIPFS", c.apiURL)
	respBody, err := c.httpClient.Post(ctx, url, "application/json", bytes.NewReader(body), c.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to call Pinata API: %w", err)
	}

	return c.parsePinResponse(respBody)
}

// PinFile pins a binary file and returns its CID and gateway URL
func (c *client) PinFile(ctx context.Context, name string, data []byte) (*PinResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	mtype := mimetype.Detect(data)
	part, err := createFormFile(writer, "file", name, mtype.String())
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}

	metadata, err := c.json.Marshal(map[string]interface{}{
		"name": name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin metadata: %w", err)
	}
	if err := writer.WriteField("pinataMetadata", string(metadata)); err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}

	url := fmt.Sprintf("%s/pinning/pinFileToIPFS", c.apiURL)
	respBody, err := c.httpClient.Post(ctx, url, writer.FormDataContentType(), &buf, c.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to call Pinata API: %w", err)
	}

	return c.parsePinResponse(respBody)
}

// authHeaders returns the API key headers expected by Pinata
func (c *client) authHeaders() map[string]string {
	return map[string]string{
		"pinata_api_key":        c.apiKey,
		"pinata_secret_api_key": c.apiSecret,
	}
}

// parsePinResponse decodes a pinning response and derives the gateway URL
func (c *client) parsePinResponse(body []byte) (*PinResult, error) {
	var resp pinResponse
	if err := c.json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Pinata response: %w", err)
	}
	if resp.IpfsHash == "" {
		return nil, ErrEmptyCID
	}

	return &PinResult{
		CID: resp.IpfsHash,
		URL: fmt.Sprintf("%s/ipfs/%s", c.gatewayURL, resp.IpfsHash),
	}, nil
}

// createFormFile is like multipart.Writer.CreateFormFile but sets the
// detected content type instead of application/octet-stream
func createFormFile(writer *multipart.Writer, fieldName, fileName, contentType string) (io.Writer, error) {
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldName, fileName),
	}
	header["Content-Type"] = []string{contentType}
	return writer.CreatePart(header)
}
