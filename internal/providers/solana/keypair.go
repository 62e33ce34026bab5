package solana

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"
)

// LoadKeypair reads a Solana CLI keypair file and returns the ed25519
// private key. The file format is a JSON array of 64 bytes: the 32-byte
// seed followed by the 32-byte public key.
func LoadKeypair(path string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keypair file: %w", err)
	}

	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse keypair file: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid keypair length: expected %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}

	key := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	for i, b := range raw {
		if b < 0 || b > 255 {
			return nil, fmt.Errorf("invalid keypair byte at index %d: %d", i, b)
		}
		key[i] = byte(b)
	}

	return key, nil
}
