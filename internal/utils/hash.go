// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeyedHasher computes keyed BLAKE2b-256 digests using a pool of hash
// instances.
type KeyedHasher struct {
	pool sync.Pool
}

// NewKeyedHasher builds a hasher keyed by key. Keys longer than the 64 bytes
// BLAKE2b accepts are first reduced with an unkeyed BLAKE2b-256. An empty key
// is replaced by 32 random bytes, so digests then only match within one
// process.
func NewKeyedHasher(key string) (*KeyedHasher, error) {
	keyBytes := []byte(key)

	switch {
	case len(keyBytes) == 0:
		keyBytes = make([]byte, 32)
		if _, err := rand.Read(keyBytes); err != nil {
			return nil, fmt.Errorf("error generating hash key: %w", err)
		}
	case len(keyBytes) > blake2b.Size:
		sum := blake2b.Sum256(keyBytes)
		keyBytes = sum[:]
	}

	// validates the key once so the pool constructor cannot fail
	if _, err := blake2b.New256(keyBytes); err != nil {
		return nil, fmt.Errorf("error creating blake2b hasher: %w", err)
	}

	h := &KeyedHasher{}
	h.pool.New = func() any {
		hasher, _ := blake2b.New256(keyBytes)
		return hasher
	}

	return h, nil
}

// Hash returns the raw digest of data.
func (k *KeyedHasher) Hash(data []byte) []byte {
	h := k.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	k.pool.Put(h)

	return sum
}

// HashString returns the hex-encoded digest of data.
func (k *KeyedHasher) HashString(data string) string {
	return hex.EncodeToString(k.Hash([]byte(data)))
}
