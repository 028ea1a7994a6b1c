package encryption

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const kdfInfo = "goshare/aead/v1"

// deriveKey expands the shared key into the AES-256-GCM key.
func deriveKey(key []byte) ([]byte, error) {
	reader := hkdf.New(sha256.New, key, nil, []byte(kdfInfo))
	derived := make([]byte, KeySize)

	if _, err := io.ReadFull(reader, derived); err != nil {
		return nil, fmt.Errorf("deriving AEAD key: %w", err)
	}

	return derived, nil
}
