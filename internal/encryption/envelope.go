package encryption

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

const (
	envelopeMagic   = "GOSH"
	envelopeVersion = byte(1)

	envelopeFlagExec = 0x01
)

// Mode identifies the cipher construction recorded in the envelope.
type Mode byte

// ModeAESGCM is AES-256-GCM under an HKDF-SHA256 expanded key.
const ModeAESGCM Mode = 0x01

// setIDOffset is where the share set identifier starts in the header.
const setIDOffset = len(envelopeMagic) + 3

// HeaderSize is the length of the envelope header in bytes.
const HeaderSize = setIDOffset + len(uuid.UUID{})

// Header precedes the blob in a cipher file and is authenticated as associated data.
type Header struct {
	Version    byte
	Executable bool
	Mode       Mode

	// SetID names the share set holding the key of this file.
	SetID uuid.UUID
}

// NewHeader returns the header for a new cipher file whose key is split into set setID.
func NewHeader(executable bool, setID uuid.UUID) Header {
	return Header{
		Version:    envelopeVersion,
		Executable: executable,
		Mode:       ModeAESGCM,
		SetID:      setID,
	}
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	header := make([]byte, HeaderSize)
	copy(header, envelopeMagic)

	header[len(envelopeMagic)] = h.Version

	var flags byte

	if h.Executable {
		flags |= envelopeFlagExec
	}

	header[len(envelopeMagic)+1] = flags
	header[len(envelopeMagic)+2] = byte(h.Mode)
	copy(header[setIDOffset:], h.SetID[:])

	return header
}

// ParseHeader parses and validates a serialized header.
func ParseHeader(header []byte) (Header, error) {
	if len(header) != HeaderSize {
		return Header{}, fmt.Errorf("%w: header is %d bytes, want %d", ErrMalformed, len(header), HeaderSize)
	}

	if !bytes.Equal(header[:len(envelopeMagic)], []byte(envelopeMagic)) {
		return Header{}, fmt.Errorf("%w: invalid magic", ErrMalformed)
	}

	version := header[len(envelopeMagic)]
	if version != envelopeVersion {
		return Header{}, fmt.Errorf("%w: unsupported version %d", ErrMalformed, version)
	}

	flags := header[len(envelopeMagic)+1]
	mode := Mode(header[len(envelopeMagic)+2])

	if mode != ModeAESGCM {
		return Header{}, fmt.Errorf("%w: unsupported mode %d", ErrMalformed, mode)
	}

	return Header{
		Version:    version,
		Executable: flags&envelopeFlagExec != 0,
		Mode:       mode,
		SetID:      uuid.UUID(header[setIDOffset:HeaderSize]),
	}, nil
}

// Marshal frames a blob behind its header: header | nonce | ciphertext | tag.
func Marshal(header Header, blob Blob) []byte {
	out := make([]byte, 0, HeaderSize+blob.Size())
	out = append(out, header.Bytes()...)
	out = append(out, blob.Nonce...)
	out = append(out, blob.Ciphertext...)
	out = append(out, blob.Tag...)

	return out
}

// Unmarshal parses a framed cipher file. The returned blob aliases data.
func Unmarshal(data []byte) (Header, Blob, error) {
	if len(data) < HeaderSize+NonceSize+TagSize {
		return Header{}, Blob{}, fmt.Errorf("%w: %d bytes is too short", ErrMalformed, len(data))
	}

	header, err := ParseHeader(data[:HeaderSize])
	if err != nil {
		return Header{}, Blob{}, err
	}

	body := data[HeaderSize:]

	return header, Blob{
		Nonce:      body[:NonceSize],
		Ciphertext: body[NonceSize : len(body)-TagSize],
		Tag:        body[len(body)-TagSize:],
	}, nil
}
