// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"sync"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordchain/record"
)

// Locked - a chain guarded for one writer and many verifiers
//
// pushes take the write lock, verification and reads take the read
// lock, so a verify can never observe a partially appended tail
type Locked struct {
	sync.RWMutex
	chain *Chain
}

// NewLocked - create a guarded chain holding only the genesis record
func NewLocked() *Locked {
	return &Locked{
		chain: New(),
	}
}

// Push - append one record under the write lock
func (locked *Locked) Push(payload []byte) error {
	locked.Lock()
	defer locked.Unlock()
	return locked.chain.Push(payload)
}

// PushOwned - append one signed record under the write lock
func (locked *Locked) PushOwned(payload []byte, privateKey ed25519.PrivateKey) error {
	locked.Lock()
	defer locked.Unlock()
	return locked.chain.PushOwned(payload, privateKey)
}

// Extend - append a batch under a single write lock
func (locked *Locked) Extend(payloads [][]byte) error {
	locked.Lock()
	defer locked.Unlock()
	return locked.chain.Extend(payloads)
}

// Verify - whole chain verification under the read lock
func (locked *Locked) Verify() (bool, error) {
	locked.RLock()
	defer locked.RUnlock()
	return locked.chain.Verify()
}

// Length - number of records including genesis
func (locked *Locked) Length() int {
	locked.RLock()
	defer locked.RUnlock()
	return locked.chain.Length()
}

// Record - copy of one record
//
// a copy, not a pointer into the chain, so the caller cannot race a
// concurrent push
func (locked *Locked) Record(i int) *record.Record {
	locked.RLock()
	defer locked.RUnlock()
	r := locked.chain.Record(i)
	if nil == r {
		return nil
	}
	return r.Copy()
}
