package escrow

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/idelchi/goshare/internal/encryption"
	"github.com/idelchi/goshare/internal/gf256"
	"github.com/idelchi/goshare/internal/secret"
	"github.com/idelchi/goshare/internal/shamir"
)

// Escrow runs the encrypt and decrypt lifecycles. It keeps no state between calls.
type Escrow struct {
	// rand feeds keys, polynomial coefficients and set identifiers.
	rand io.Reader

	// sharer splits and combines keys.
	sharer *shamir.Sharer

	// engine is the authenticated cipher.
	engine encryption.Engine

	// logger receives lifecycle transitions. Never key material.
	logger *slog.Logger

	// observer, when set, is called on every transition.
	observer Observer
}

// Option configures an Escrow.
type Option func(*Escrow)

// WithRandom replaces crypto/rand as the source of keys and coefficients.
func WithRandom(r io.Reader) Option {
	return func(e *Escrow) {
		e.rand = r
	}
}

// WithLogger sets the logger for lifecycle transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Escrow) {
		e.logger = logger
	}
}

// WithObserver registers a transition observer.
func WithObserver(observer Observer) Option {
	return func(e *Escrow) {
		e.observer = observer
	}
}

// New creates an Escrow.
func New(opts ...Option) *Escrow {
	escrow := &Escrow{
		rand:   rand.Reader,
		engine: encryption.GCM{},
	}

	for _, opt := range opts {
		opt(escrow)
	}

	if escrow.logger == nil {
		escrow.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	escrow.sharer = shamir.New(shamir.WithField(gf256.New()), shamir.WithRandom(escrow.rand))

	return escrow
}

// SplitAndEncrypt encrypts plaintext under a fresh key and splits the key into total
// shares with the given threshold. associatedData is authenticated but not encrypted.
// The share set receives a random identifier.
func (e *Escrow) SplitAndEncrypt(
	plaintext []byte,
	threshold, total int,
	associatedData []byte,
) (encryption.Blob, shamir.ShareSet, error) {
	return e.splitAndEncrypt(uuid.Nil, plaintext, threshold, total, associatedData)
}

// SplitAndEncryptWithID is SplitAndEncrypt with a caller chosen set identifier, for
// callers that bind the identifier into associatedData.
func (e *Escrow) SplitAndEncryptWithID(
	setID uuid.UUID,
	plaintext []byte,
	threshold, total int,
	associatedData []byte,
) (encryption.Blob, shamir.ShareSet, error) {
	if setID == uuid.Nil {
		return encryption.Blob{}, shamir.ShareSet{}, errors.New("share set id must not be nil")
	}

	return e.splitAndEncrypt(setID, plaintext, threshold, total, associatedData)
}

func (e *Escrow) splitAndEncrypt(
	setID uuid.UUID,
	plaintext []byte,
	threshold, total int,
	associatedData []byte,
) (blob encryption.Blob, set shamir.ShareSet, err error) {
	lc := e.begin(OpSplitAndEncrypt)
	defer lc.finish(&err)

	if err = shamir.ValidateParams(threshold, total); err != nil {
		return encryption.Blob{}, shamir.ShareSet{}, err
	}

	key, err := secret.Random(encryption.KeySize, e.rand)
	if err != nil {
		return encryption.Blob{}, shamir.ShareSet{}, err
	}

	lc.hold(key)

	blob, err = e.engine.Encrypt(key.Bytes(), plaintext, associatedData)
	if err != nil {
		return encryption.Blob{}, shamir.ShareSet{}, err
	}

	set, err = e.sharer.Split(key.Bytes(), threshold, total)
	if err != nil {
		return encryption.Blob{}, shamir.ShareSet{}, fmt.Errorf("splitting key: %w", err)
	}

	if setID == uuid.Nil {
		setID, err = uuid.NewRandomFromReader(e.rand)
		if err != nil {
			return encryption.Blob{}, shamir.ShareSet{}, fmt.Errorf("generating share set id: %w", err)
		}
	}

	set.ID = setID

	return blob, set, nil
}

// ReconstructAndDecrypt interpolates the key from shares and decrypts blob with it.
// Too few, wrong or mixed shares surface as encryption.ErrAuthentication, the same
// as a corrupted blob.
func (e *Escrow) ReconstructAndDecrypt(
	blob encryption.Blob,
	shares []shamir.Share,
	associatedData []byte,
) (plaintext []byte, err error) {
	lc := e.begin(OpReconstructAndDecrypt)
	defer lc.finish(&err)

	candidate, err := e.sharer.Combine(shares)
	if err != nil {
		return nil, fmt.Errorf("combining shares: %w", err)
	}

	key := secret.From(candidate)
	lc.hold(key)

	if key.Len() != encryption.KeySize {
		return nil, fmt.Errorf("%w: shares hold %d bytes, want %d",
			shamir.ErrDuplicateOrInvalidShare, key.Len(), encryption.KeySize)
	}

	plaintext, err = e.engine.Decrypt(key.Bytes(), blob, associatedData)
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}
