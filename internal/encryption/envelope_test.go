package encryption_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/goshare/internal/encryption"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	t.Parallel()

	blob := encryption.Blob{
		Nonce:      make([]byte, encryption.NonceSize),
		Ciphertext: []byte("ciphertext"),
		Tag:        make([]byte, encryption.TagSize),
	}

	for _, exec := range []bool{false, true} {
		setID := uuid.New()

		framed := encryption.Marshal(encryption.NewHeader(exec, setID), blob)
		assert.Len(t, framed, encryption.HeaderSize+blob.Size())

		header, got, err := encryption.Unmarshal(framed)
		require.NoError(t, err)
		assert.Equal(t, exec, header.Executable)
		assert.Equal(t, encryption.ModeAESGCM, header.Mode)
		assert.Equal(t, setID, header.SetID)
		assert.Equal(t, blob, got)
	}
}

func TestEnvelopeEmptyCiphertext(t *testing.T) {
	t.Parallel()

	blob := encryption.Blob{
		Nonce:      make([]byte, encryption.NonceSize),
		Ciphertext: []byte{},
		Tag:        make([]byte, encryption.TagSize),
	}

	_, got, err := encryption.Unmarshal(encryption.Marshal(encryption.NewHeader(false, uuid.Nil), blob))
	require.NoError(t, err)
	assert.Empty(t, got.Ciphertext)
}

func TestEnvelopeMalformed(t *testing.T) {
	t.Parallel()

	valid := encryption.Marshal(encryption.NewHeader(false, uuid.Nil), encryption.Blob{
		Nonce: make([]byte, encryption.NonceSize),
		Tag:   make([]byte, encryption.TagSize),
	})

	corrupt := func(i int, b byte) []byte {
		out := append([]byte(nil), valid...)
		out[i] = b

		return out
	}

	tests := map[string][]byte{
		"empty":   nil,
		"short":   valid[:len(valid)-1],
		"magic":   corrupt(0, 'X'),
		"version": corrupt(4, 9),
		"mode":    corrupt(6, 0x7f),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := encryption.Unmarshal(data)
			require.ErrorIs(t, err, encryption.ErrMalformed)
		})
	}
}

func TestHeaderBindsSetID(t *testing.T) {
	t.Parallel()

	first := encryption.NewHeader(false, uuid.New()).Bytes()
	second := encryption.NewHeader(false, uuid.New()).Bytes()

	assert.Len(t, first, encryption.HeaderSize)
	assert.NotEqual(t, first, second, "the set identifier is part of the associated data")
}

func TestParseHeaderLength(t *testing.T) {
	t.Parallel()

	_, err := encryption.ParseHeader([]byte("GOSH"))
	require.ErrorIs(t, err, encryption.ErrMalformed)
}
