// Package secret holds key material in owned buffers that are scrubbed on release.
package secret

import (
	"crypto/rand"
	"fmt"
	"io"
	"runtime"
)

// Key is an owned buffer of key material.
// The zero value is an empty, destroyed key.
type Key struct {
	buf       []byte
	destroyed bool
}

// Random fills a new key of the given size from reader, or crypto/rand when reader is nil.
func Random(size int, reader io.Reader) (*Key, error) {
	if reader == nil {
		reader = rand.Reader
	}

	key := &Key{buf: make([]byte, size)}

	if _, err := io.ReadFull(reader, key.buf); err != nil {
		key.Destroy()

		return nil, fmt.Errorf("generating key material: %w", err)
	}

	return key, nil
}

// From takes ownership of b. The caller must not use b after the key is destroyed.
func From(b []byte) *Key {
	return &Key{buf: b}
}

// Bytes exposes the key material. The slice is only valid until Destroy.
func (k *Key) Bytes() []byte {
	if k == nil || k.destroyed {
		return nil
	}

	return k.buf
}

// Len returns the key size in bytes.
func (k *Key) Len() int {
	return len(k.Bytes())
}

// Alive reports whether the key still holds material.
func (k *Key) Alive() bool {
	return k != nil && !k.destroyed && k.buf != nil
}

// Destroy zeroes the buffer. Calling it more than once is fine.
func (k *Key) Destroy() {
	if k == nil || k.destroyed {
		return
	}

	Wipe(k.buf)

	k.buf = nil
	k.destroyed = true
}

// Wipe zeroes b in place.
func Wipe(b []byte) {
	clear(b)

	// Keep b reachable until after the stores so they are not dropped as dead.
	runtime.KeepAlive(b)
}
