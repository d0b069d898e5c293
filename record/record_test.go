// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bitmark-inc/recordchain/digest"
	"github.com/bitmark-inc/recordchain/fault"
	"github.com/bitmark-inc/recordchain/record"
)

const (
	testIndex     = 7
	testTimestamp = 0x5e0be100
)

var testPayload = []byte("first sale: artwork #42")

func testPrevDigest() digest.Digest {
	return digest.NewDigest([]byte("previous record stand-in"))
}

// identical fields must always produce an identical self digest and
// the digest must not depend on which allocation holds the fields
func TestDeterministicDigest(t *testing.T) {
	one := record.NewWithTimestamp(testIndex, testTimestamp, testPayload, testPrevDigest())
	two := record.NewWithTimestamp(testIndex, testTimestamp, testPayload, testPrevDigest())

	if one.SelfDigest != two.SelfDigest {
		t.Fatalf("digests differ: %v != %v", one.SelfDigest, two.SelfDigest)
	}
	if one.Digest() != one.SelfDigest {
		t.Fatalf("self digest does not recompute: %v != %v", one.Digest(), one.SelfDigest)
	}

	// any single field change must change the digest
	changed := []*record.Record{
		record.NewWithTimestamp(testIndex+1, testTimestamp, testPayload, testPrevDigest()),
		record.NewWithTimestamp(testIndex, testTimestamp+1, testPayload, testPrevDigest()),
		record.NewWithTimestamp(testIndex, testTimestamp, []byte("first sale: artwork #43"), testPrevDigest()),
		record.NewWithTimestamp(testIndex, testTimestamp, testPayload, digest.Digest{}),
	}
	for i, r := range changed {
		if r.SelfDigest == one.SelfDigest {
			t.Errorf("%d: changed record digest collides", i)
		}
	}
}

// the record must own its payload: mutating the caller's slice after
// construction must not reach the stored record
func TestPayloadCopied(t *testing.T) {
	payload := append([]byte{}, testPayload...)
	r := record.NewWithTimestamp(testIndex, testTimestamp, payload, testPrevDigest())

	payload[0] ^= 0xff
	if r.Digest() != r.SelfDigest {
		t.Fatalf("record aliases the caller's payload")
	}
}

// the canonical prefix layout is part of the external contract
func TestPackLayout(t *testing.T) {
	prevDigest := testPrevDigest()
	r := record.NewWithTimestamp(testIndex, testTimestamp, testPayload, prevDigest)
	packed := r.Pack()

	expected := make([]byte, 0, len(packed))
	le := func(n uint64) []byte {
		buffer := make([]byte, 8)
		binary.LittleEndian.PutUint64(buffer, n)
		return buffer
	}
	expected = append(expected, le(testIndex)...)
	expected = append(expected, le(testTimestamp)...)
	expected = append(expected, prevDigest[:]...)
	expected = append(expected, le(uint64(len(testPayload)))...)
	expected = append(expected, testPayload...)

	canonicalLength := len(expected)
	if !bytes.Equal(expected, []byte(packed[:canonicalLength])) {
		t.Fatalf("canonical prefix: %x expected: %x", packed[:canonicalLength], expected)
	}

	// digest binds exactly the canonical prefix
	if digest.NewDigest(expected) != r.SelfDigest {
		t.Fatalf("self digest does not cover the canonical prefix")
	}
	d, err := packed.Digest()
	if nil != err {
		t.Fatalf("packed digest error: %v", err)
	}
	if d != r.SelfDigest {
		t.Fatalf("packed digest: %v expected: %v", d, r.SelfDigest)
	}

	// self digest then a single not-owned flag byte
	expected = append(expected, r.SelfDigest[:]...)
	expected = append(expected, 0x00)
	if !bytes.Equal(expected, []byte(packed)) {
		t.Fatalf("packed: %x expected: %x", packed, expected)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	r := record.NewWithTimestamp(testIndex, testTimestamp, testPayload, testPrevDigest())

	unpacked, err := r.Pack().Unpack()
	if nil != err {
		t.Fatalf("unpack error: %v", err)
	}

	if unpacked.Index != r.Index ||
		unpacked.Timestamp != r.Timestamp ||
		!bytes.Equal(unpacked.Payload, r.Payload) ||
		unpacked.PrevDigest != r.PrevDigest ||
		unpacked.SelfDigest != r.SelfDigest {
		t.Fatalf("unpacked: %+v expected: %+v", unpacked, r)
	}
	if nil != unpacked.Owner || 0 != len(unpacked.Signature) {
		t.Fatalf("unexpected ownership on unpacked record")
	}
}

func TestPackUnpackOwnedRoundTrip(t *testing.T) {
	_, privateKey, err := record.NewOwnerKeypair()
	if nil != err {
		t.Fatalf("keypair error: %v", err)
	}

	r := record.NewWithTimestamp(testIndex, testTimestamp, testPayload, testPrevDigest())
	r.Sign(privateKey)

	unpacked, err := r.Pack().Unpack()
	if nil != err {
		t.Fatalf("unpack error: %v", err)
	}
	if nil == unpacked.Owner {
		t.Fatalf("ownership lost in round trip")
	}
	if !bytes.Equal(unpacked.Owner.PublicKey, r.Owner.PublicKey) {
		t.Fatalf("owner: %x expected: %x", unpacked.Owner.PublicKey, r.Owner.PublicKey)
	}
	if !bytes.Equal(unpacked.Signature, r.Signature) {
		t.Fatalf("signature: %x expected: %x", unpacked.Signature, r.Signature)
	}
	if nil != unpacked.CheckSignature() {
		t.Fatalf("signature does not verify after round trip")
	}
}

func TestUnpackStructuralFailures(t *testing.T) {
	r := record.NewWithTimestamp(testIndex, testTimestamp, testPayload, testPrevDigest())
	packed := r.Pack()

	// truncated buffer
	_, err := packed[:len(packed)-1].Unpack()
	if fault.InvalidRecordSize != err {
		t.Errorf("truncated: err = %v expected %v", err, fault.InvalidRecordSize)
	}

	// payload length prefix pointing past the buffer
	oversize := append(record.PackedRecord{}, packed...)
	binary.LittleEndian.PutUint64(oversize[16+digest.Length:], uint64(len(oversize)))
	_, err = oversize.Unpack()
	if fault.InvalidRecordSize != err {
		t.Errorf("oversize length: err = %v expected %v", err, fault.InvalidRecordSize)
	}

	// unknown ownership trailer discriminator
	badFlag := append(record.PackedRecord{}, packed...)
	badFlag[len(badFlag)-1] = 0x7f
	_, err = badFlag.Unpack()
	if fault.InvalidOwnershipTrailer != err {
		t.Errorf("bad flag: err = %v expected %v", err, fault.InvalidOwnershipTrailer)
	}

	// not-owned flag followed by extra bytes
	extra := append(append(record.PackedRecord{}, packed...), 0x00)
	_, err = extra.Unpack()
	if fault.InvalidRecordSize != err {
		t.Errorf("trailing bytes: err = %v expected %v", err, fault.InvalidRecordSize)
	}
}

func TestCopy(t *testing.T) {
	_, privateKey, err := record.NewOwnerKeypair()
	if nil != err {
		t.Fatalf("keypair error: %v", err)
	}
	r := record.NewWithTimestamp(testIndex, testTimestamp, testPayload, testPrevDigest())
	r.Sign(privateKey)

	c := r.Copy()
	c.Payload[0] ^= 0xff
	c.Signature[0] ^= 0xff
	c.Owner.PublicKey[0] ^= 0xff

	if r.Digest() != r.SelfDigest {
		t.Errorf("copy aliases the payload")
	}
	if nil != r.CheckSignature() {
		t.Errorf("copy aliases the ownership trailer")
	}
}
