// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis_test

import (
	"testing"

	"github.com/bitmark-inc/recordchain/genesis"
)

func TestNew(t *testing.T) {
	g := genesis.New()

	if genesis.Index != g.Index {
		t.Errorf("index: %d expected: %d", g.Index, genesis.Index)
	}
	if genesis.Timestamp != g.Timestamp {
		t.Errorf("timestamp: %d expected: %d", g.Timestamp, genesis.Timestamp)
	}
	if string(genesis.Payload) != string(g.Payload) {
		t.Errorf("payload: %q expected: %q", g.Payload, genesis.Payload)
	}
	if !g.PrevDigest.IsEmpty() {
		t.Errorf("prev digest: %v expected zero sentinel", g.PrevDigest)
	}
	if nil != g.Owner || 0 != len(g.Signature) {
		t.Errorf("genesis record must not be owned")
	}
	if g.Digest() != g.SelfDigest {
		t.Errorf("self digest does not recompute: %v != %v", g.Digest(), g.SelfDigest)
	}
}

// the anchor must be identical across constructions
func TestDeterministic(t *testing.T) {
	one := genesis.New()
	two := genesis.New()

	if one.SelfDigest != two.SelfDigest {
		t.Fatalf("genesis digests differ: %v != %v", one.SelfDigest, two.SelfDigest)
	}
}
