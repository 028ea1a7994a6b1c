// Package encryption provides the authenticated encryption behind goshare.
// A 32-byte shared key is expanded with HKDF-SHA256 into an AES-256-GCM key, and
// the AEAD primitive is built from a raw Tink keyset. Output is split into nonce,
// ciphertext and tag, and framed on disk behind a small envelope header that is
// bound to the tag as associated data.
package encryption
