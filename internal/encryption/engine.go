package encryption

const (
	// KeySize is the size of the shared key in bytes.
	KeySize = 32
	// NonceSize is the size of the AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of the AES-GCM authentication tag in bytes.
	TagSize = 16
)

// Blob is the output of one encryption.
type Blob struct {
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// Size returns the number of bytes the blob occupies when framed.
func (b Blob) Size() int {
	return len(b.Nonce) + len(b.Ciphertext) + len(b.Tag)
}

// Engine encrypts and decrypts under a shared key.
// GCM is the only implementation.
type Engine interface {
	// Encrypt seals plaintext under key with a fresh random nonce.
	Encrypt(key, plaintext, associatedData []byte) (Blob, error)

	// Decrypt verifies the tag and only then returns the plaintext.
	Decrypt(key []byte, blob Blob, associatedData []byte) ([]byte, error)
}
