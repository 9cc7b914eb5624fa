//
// Copyright (c) 2026 Ephemelier Authors
//
// All rights reserved.
//

// Package drbg provides the default randomness source for bignum's
// FillRandom/MillerRabin/GenPrime family: a ChaCha20 keystream seeded
// once from crypto/rand, so repeated calls don't pay a syscall per
// draw the way reading crypto/rand.Reader directly would.
package drbg

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// DRBG is an io.Reader producing a deterministic stream of bytes from
// a ChaCha20 cipher keyed and nonced from a cryptographically secure
// seed. Safe for concurrent use.
type DRBG struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
}

// New seeds a DRBG from seed (crypto/rand.Reader). Using an explicit
// io.Reader seed source keeps construction testable with a
// deterministic seed instead of always reaching for the OS RNG.
func New(seed io.Reader) (*DRBG, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	if _, err := io.ReadFull(seed, key[:]); err != nil {
		return nil, fmt.Errorf("drbg: seeding key: %w", err)
	}
	if _, err := io.ReadFull(seed, nonce[:]); err != nil {
		return nil, fmt.Errorf("drbg: seeding nonce: %w", err)
	}

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("drbg: %w", err)
	}
	return &DRBG{cipher: c}, nil
}

// NewFromSystemRandom seeds a DRBG from crypto/rand.Reader, the usual
// entry point for production callers.
func NewFromSystemRandom() (*DRBG, error) {
	return New(cryptorand.Reader)
}

// Read fills p with keystream bytes, implementing io.Reader so a DRBG
// can be passed directly to bignum.FillRandom and friends.
func (d *DRBG) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range p {
		p[i] = 0
	}
	d.cipher.XORKeyStream(p, p)
	return len(p), nil
}
