// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"bytes"
	"sync"

	"github.com/awnumar/memguard"
)

// keyCache keeps loaded keys sealed in memguard enclaves. Callers always get
// a fresh copy of the plaintext.
type keyCache struct {
	mu       sync.RWMutex
	enclaves map[string]*memguard.Enclave
}

func newKeyCache() *keyCache {
	return &keyCache{enclaves: make(map[string]*memguard.Enclave)}
}

// get returns a copy of the key cached under name.
func (c *keyCache) get(name string) ([]byte, bool) {
	c.mu.RLock()
	enclave, ok := c.enclaves[name]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	buf, err := enclave.Open()
	if err != nil {
		return nil, false
	}
	defer buf.Destroy()

	return bytes.Clone(buf.Bytes()), true
}

// put seals a copy of key under name. key itself is left intact.
func (c *keyCache) put(name string, key []byte) {
	// NewEnclave wipes its argument
	enclave := memguard.NewEnclave(bytes.Clone(key))
	if enclave == nil {
		return
	}

	c.mu.Lock()
	c.enclaves[name] = enclave
	c.mu.Unlock()
}
