// Package escrow ties key generation, encryption and secret sharing together.
//
// SplitAndEncrypt generates a one-time key, encrypts with it, splits it into shares
// and destroys it. ReconstructAndDecrypt interpolates a candidate key from shares,
// lets the authentication tag decide whether it is right, and destroys it.
//
// Each call moves through Idle, KeyMaterialLive, Persisted or Failed, and finally
// Scrubbed. Scrubbing is deferred, so it runs on every return path.
package escrow
