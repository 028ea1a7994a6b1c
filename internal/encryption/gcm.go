package encryption

import (
	"fmt"

	"github.com/tink-crypto/tink-go/v2/aead"
	"github.com/tink-crypto/tink-go/v2/tink"

	"github.com/idelchi/goshare/internal/secret"
)

// GCM implements Engine with AES-256-GCM.
type GCM struct{}

var _ Engine = GCM{}

// Encrypt implements Engine.
func (GCM) Encrypt(key, plaintext, associatedData []byte) (Blob, error) {
	primitive, err := newAEAD(key)
	if err != nil {
		return Blob{}, err
	}

	sealed, err := primitive.Encrypt(plaintext, associatedData)
	if err != nil {
		return Blob{}, fmt.Errorf("encrypting: %w", err)
	}

	if len(sealed) != NonceSize+len(plaintext)+TagSize {
		return Blob{}, fmt.Errorf("encrypting: unexpected output size %d", len(sealed))
	}

	return Blob{
		Nonce:      sealed[:NonceSize],
		Ciphertext: sealed[NonceSize : len(sealed)-TagSize],
		Tag:        sealed[len(sealed)-TagSize:],
	}, nil
}

// Decrypt implements Engine.
func (GCM) Decrypt(key []byte, blob Blob, associatedData []byte) ([]byte, error) {
	if len(blob.Nonce) != NonceSize || len(blob.Tag) != TagSize {
		return nil, ErrAuthentication
	}

	primitive, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, blob.Size())
	sealed = append(sealed, blob.Nonce...)
	sealed = append(sealed, blob.Ciphertext...)
	sealed = append(sealed, blob.Tag...)

	plaintext, err := primitive.Decrypt(sealed, associatedData)
	if err != nil {
		// The underlying error is dropped so callers cannot tell causes apart.
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

// newAEAD expands key and builds the Tink primitive.
// The derived key is wiped on return. The handle and primitive keep their own copies
// of the key and the AES key schedule, which are left to the garbage collector.
func newAEAD(key []byte) (tink.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrKeySize, len(key), KeySize)
	}

	derived, err := deriveKey(key)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe(derived)

	handle, err := newAEADKeyHandle(derived)
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	primitive, err := aead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("creating AEAD: %w", err)
	}

	return primitive, nil
}
