// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"math"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordchain/fault"
	"github.com/bitmark-inc/recordchain/genesis"
	"github.com/bitmark-inc/recordchain/record"
)

// Chain - an ordered, growable sequence of records
//
// insertion order is chain order; records are never reordered, never
// removed and never rewritten
type Chain struct {
	records []record.Record
}

// New - create a chain holding only the genesis record
func New() *Chain {
	return &Chain{
		records: []record.Record{*genesis.New()},
	}
}

// Push - append exactly one record to the tail
//
// the only failure is the index counter reaching its limit; payload
// content never causes a failure
func (chain *Chain) Push(payload []byte) error {
	last := &chain.records[len(chain.records)-1]
	if math.MaxUint64 == last.Index {
		return fault.ChainCapacityReached
	}

	// clamp so timestamps never decrease along the chain
	timestamp := uint64(time.Now().Unix())
	if timestamp < last.Timestamp {
		timestamp = last.Timestamp
	}

	r := record.NewWithTimestamp(last.Index+1, timestamp, payload, last.SelfDigest)
	chain.records = append(chain.records, *r)
	return nil
}

// PushOwned - append one record and sign it with the supplied key
func (chain *Chain) PushOwned(payload []byte, privateKey ed25519.PrivateKey) error {
	err := chain.Push(payload)
	if nil != err {
		return err
	}
	chain.records[len(chain.records)-1].Sign(privateKey)
	return nil
}

// Extend - append one record per payload, in order
//
// stops at the first failure leaving the already appended records in
// place; the chain remains valid either way
func (chain *Chain) Extend(payloads [][]byte) error {
	for _, payload := range payloads {
		err := chain.Push(payload)
		if nil != err {
			return err
		}
	}
	return nil
}

// Verify - walk the whole chain and check every record
//
// returns false if any check fails anywhere: a gap in the indices, a
// broken link, a self digest that no longer recomputes, or an invalid
// ownership signature; corruption is a result, not an error
//
// the only error is a chain with no genesis record at all, a state not
// reachable through this package's operations
func (chain *Chain) Verify() (bool, error) {
	if 0 == len(chain.records) {
		return false, fault.MissingGenesisRecord
	}

	ok := true

	// the anchor is checked on its own
	g := &chain.records[0]
	if genesis.Index != g.Index {
		ok = false
	}
	if !g.PrevDigest.IsEmpty() {
		ok = false
	}
	if g.Digest() != g.SelfDigest {
		ok = false
	}

	// every adjacent pair; scan the full chain, no early return
	for i := 1; i < len(chain.records); i += 1 {
		prev := &chain.records[i-1]
		cur := &chain.records[i]

		if cur.Index != prev.Index+1 {
			ok = false
		}
		if cur.PrevDigest != prev.SelfDigest {
			ok = false
		}
		if cur.Digest() != cur.SelfDigest {
			ok = false
		}
		if nil != cur.CheckSignature() {
			ok = false
		}
	}

	return ok, nil
}

// Length - number of records including genesis
func (chain *Chain) Length() int {
	return len(chain.records)
}

// Record - read access to one record
//
// returns nil when out of range; the pointer is valid until the next
// push
func (chain *Chain) Record(i int) *record.Record {
	if i < 0 || i >= len(chain.records) {
		return nil
	}
	return &chain.records[i]
}

// Last - read access to the tail record
func (chain *Chain) Last() *record.Record {
	if 0 == len(chain.records) {
		return nil
	}
	return &chain.records[len(chain.records)-1]
}
