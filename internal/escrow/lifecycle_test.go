package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/goshare/internal/encryption"
)

// spyEngine keeps a reference to the key it was handed, without copying it.
type spyEngine struct {
	encryption.GCM

	key []byte
}

func (s *spyEngine) Encrypt(key, plaintext, associatedData []byte) (encryption.Blob, error) {
	s.key = key

	return s.GCM.Encrypt(key, plaintext, associatedData)
}

func (s *spyEngine) Decrypt(key []byte, blob encryption.Blob, associatedData []byte) ([]byte, error) {
	s.key = key

	return s.GCM.Decrypt(key, blob, associatedData)
}

func TestCandidateKeyScrubbed(t *testing.T) {
	t.Parallel()

	spy := &spyEngine{}
	e := New()
	e.engine = spy

	blob, set, err := e.SplitAndEncrypt([]byte("payload"), 2, 3, nil)
	require.NoError(t, err)
	require.Len(t, spy.key, encryption.KeySize)
	assert.Equal(t, make([]byte, encryption.KeySize), spy.key, "encryption key must be wiped")

	_, err = e.ReconstructAndDecrypt(blob, set.Shares[1:], nil)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, encryption.KeySize), spy.key, "reconstructed key must be wiped")

	_, err = e.ReconstructAndDecrypt(blob, set.Shares[:1:1], nil)
	require.Error(t, err)

	other, err := set.Subset(1, 3)
	require.NoError(t, err)

	other[0].Values = append([]byte(nil), other[0].Values...)
	other[0].Values[0] ^= 0xFF

	_, err = e.ReconstructAndDecrypt(blob, other, nil)
	require.ErrorIs(t, err, encryption.ErrAuthentication)
	assert.Equal(t, make([]byte, encryption.KeySize), spy.key, "rejected candidate key must be wiped")
}
