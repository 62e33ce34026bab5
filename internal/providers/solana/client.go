package solana

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-forge/internal/adapter"
	"github.com/feral-file/ff-forge/internal/logger"
)

const PROVIDER_NAME = "solana"

// ErrEmptySignature is returned when the signer gateway responds without
// a transaction signature
var ErrEmptySignature = errors.New("signer gateway returned an empty transaction signature")

// updateMetadataRequest is the payload sent to the signer gateway. The
// gateway builds, signs with the update authority, and submits the
// metadata update transaction on-chain.
type updateMetadataRequest struct {
	TokenAddress string `json:"token_address"`
	MetadataURI  string `json:"metadata_uri"`
	Authority    string `json:"authority"`
	Signature    string `json:"signature"`
}

// updateMetadataResponse is the response body of the signer gateway
type updateMetadataResponse struct {
	TxSignature string `json:"tx_signature"`
}

// Client defines the interface for anchoring metadata URIs on Solana
//
//go:generate mockgen -source=client.go -destination=../../mocks/solana_client.go -package=mocks -mock_names=Client=MockSolanaClient
type Client interface {
	// UpdateMetadataURI points a token's on-chain metadata at a new URI
	// and returns the transaction signature
	UpdateMetadataURI(ctx context.Context, tokenAddress string, metadataURI string) (string, error)
}

type client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	gatewayURL string
	privateKey ed25519.PrivateKey
}

// NewClient creates a new Solana client backed by a signer gateway
func NewClient(
	httpClient adapter.HTTPClient,
	json adapter.JSON,
	gatewayURL string,
	privateKey ed25519.PrivateKey) Client {
	return &client{
		httpClient: httpClient,
		json:       json,
		gatewayURL: strings.TrimSuffix(gatewayURL, "/"),
		privateKey: privateKey,
	}
}

// UpdateMetadataURI points a token's on-chain metadata at a new URI
// and returns the transaction signature
func (c *client) UpdateMetadataURI(ctx context.Context, tokenAddress string, metadataURI string) (string, error) {
	publicKey := c.privateKey.Public().(ed25519.PublicKey)

	// The gateway verifies this signature before accepting the update
	message := fmt.Sprintf("%s:%s", tokenAddress, metadataURI)
	signature := ed25519.Sign(c.privateKey, []byte(message))

	body, err := c.json.Marshal(updateMetadataRequest{
		TokenAddress: tokenAddress,
		MetadataURI:  metadataURI,
		Authority:    base64.StdEncoding.EncodeToString(publicKey),
		Signature:    base64.StdEncoding.EncodeToString(signature),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal update request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/metadata/update", c.gatewayURL)
	respBody, err := c.httpClient.Post(ctx, url, "application/json", bytes.NewReader(body), nil)
	if err != nil {
		return "", fmt.Errorf("failed to call signer gateway: %w", err)
	}

	var resp updateMetadataResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal signer gateway response: %w", err)
	}
	if resp.TxSignature == "" {
		return "", ErrEmptySignature
	}

	logger.InfoCtx(ctx, "Anchored metadata URI on-chain",
		zap.String("token_address", tokenAddress),
		zap.String("metadata_uri", metadataURI),
		zap.String("tx_signature", resp.TxSignature))

	return resp.TxSignature, nil
}
