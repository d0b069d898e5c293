// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/recordchain/digest"
	"github.com/bitmark-inc/recordchain/fault"
)

// PackedRecord - packed records are just a byte slice
type PackedRecord []byte

// byte sizes for the fixed width fields
const (
	IndexSize         = 8             // record number within the chain
	TimestampSize     = 8             // creation time as seconds since 1970-01-01T00:00 UTC
	PrevDigestSize    = digest.Length // digest of the previous record's canonical encoding
	PayloadLengthSize = 8             // byte count of the variable length payload
	SelfDigestSize    = digest.Length // digest of this record's canonical encoding
	OwnerFlagSize     = 1             // ownership trailer discriminator
)

// offsets of the fields
//
// the canonical encoding digested into SelfDigest is the prefix up to
// and including the payload; the self digest and the optional
// ownership trailer follow it and are never part of the digest input
const (
	indexOffset         = 0
	timestampOffset     = indexOffset + IndexSize
	prevDigestOffset    = timestampOffset + TimestampSize
	payloadLengthOffset = prevDigestOffset + PrevDigestSize
	payloadOffset       = payloadLengthOffset + PayloadLengthSize
)

// ownership trailer discriminator values
const (
	flagNotOwned     = 0x00
	flagOwnedED25519 = 0x01
)

// Record - one immutable element of a chain
//
// all fields are exported as plain structured data so an external
// layer can serialise them in any wire or file format; mutating a
// record after creation is detected by chain verification
type Record struct {
	Index      uint64        `json:"index,string"`
	Timestamp  uint64        `json:"timestamp,string"`
	Payload    []byte        `json:"payload"`
	PrevDigest digest.Digest `json:"prevDigest"`
	SelfDigest digest.Digest `json:"selfDigest"`
	Owner      *Owner        `json:"owner,omitempty"`
	Signature  Signature     `json:"signature,omitempty"`
}

// New - create a record stamped with the current time
//
// the previous digest is the self digest of the preceding record or
// the zero sentinel for a genesis record; cannot fail
func New(index uint64, payload []byte, prevDigest digest.Digest) *Record {
	return NewWithTimestamp(index, uint64(time.Now().Unix()), payload, prevDigest)
}

// NewWithTimestamp - create a record with an explicit timestamp
//
// identical field values always produce an identical self digest
func NewWithTimestamp(index uint64, timestamp uint64, payload []byte, prevDigest digest.Digest) *Record {
	record := &Record{
		Index:      index,
		Timestamp:  timestamp,
		Payload:    append([]byte{}, payload...),
		PrevDigest: prevDigest,
	}
	record.SelfDigest = record.Digest()
	return record
}

// Digest - recompute the digest over the canonical encoding
//
// a record is self consistent when this equals the stored SelfDigest
func (record *Record) Digest() digest.Digest {
	return digest.NewDigest(record.packCanonical())
}

// Copy - deep copy so callers cannot alias chain internals
func (record *Record) Copy() *Record {
	result := *record
	result.Payload = append([]byte{}, record.Payload...)
	result.Signature = append(Signature{}, record.Signature...)
	if nil != record.Owner {
		owner := *record.Owner
		owner.PublicKey = append([]byte{}, record.Owner.PublicKey...)
		result.Owner = &owner
	}
	return &result
}

// canonical encoding: the digest input
func (record *Record) packCanonical() []byte {
	buffer := make([]byte, payloadOffset+len(record.Payload))
	binary.LittleEndian.PutUint64(buffer[indexOffset:], record.Index)
	binary.LittleEndian.PutUint64(buffer[timestampOffset:], record.Timestamp)
	copy(buffer[prevDigestOffset:], record.PrevDigest[:])
	binary.LittleEndian.PutUint64(buffer[payloadLengthOffset:], uint64(len(record.Payload)))
	copy(buffer[payloadOffset:], record.Payload)
	return buffer
}

// Pack - turn a record into an array of bytes
//
// canonical encoding, then self digest, then the ownership trailer
func (record *Record) Pack() PackedRecord {
	canonical := record.packCanonical()
	selfDigestOffset := len(canonical)
	flagOffset := selfDigestOffset + SelfDigestSize

	size := flagOffset + OwnerFlagSize
	if nil != record.Owner {
		size += OwnerSize + SignatureSize
	}

	buffer := make(PackedRecord, size)
	copy(buffer, canonical)
	copy(buffer[selfDigestOffset:], record.SelfDigest[:])

	if nil == record.Owner {
		buffer[flagOffset] = flagNotOwned
	} else {
		buffer[flagOffset] = flagOwnedED25519
		copy(buffer[flagOffset+OwnerFlagSize:], record.Owner.PublicKey)
		copy(buffer[flagOffset+OwnerFlagSize+OwnerSize:], record.Signature)
	}
	return buffer
}

// Unpack - turn a byte slice back into a record
//
// only structural validation: field widths, the payload length prefix
// and the ownership trailer discriminator; content binding is the
// chain verifier's job
func (packed PackedRecord) Unpack() (*Record, error) {
	payloadLength, err := packed.payloadLength()
	if nil != err {
		return nil, err
	}

	selfDigestOffset := payloadOffset + int(payloadLength)
	flagOffset := selfDigestOffset + SelfDigestSize
	if len(packed) < flagOffset+OwnerFlagSize {
		return nil, fault.InvalidRecordSize
	}

	record := &Record{
		Index:     binary.LittleEndian.Uint64(packed[indexOffset:]),
		Timestamp: binary.LittleEndian.Uint64(packed[timestampOffset:]),
		Payload:   append([]byte{}, packed[payloadOffset:selfDigestOffset]...),
	}

	err = digest.DigestFromBytes(&record.PrevDigest, packed[prevDigestOffset:payloadLengthOffset])
	if nil != err {
		return nil, err
	}
	err = digest.DigestFromBytes(&record.SelfDigest, packed[selfDigestOffset:flagOffset])
	if nil != err {
		return nil, err
	}

	trailer := packed[flagOffset+OwnerFlagSize:]
	switch packed[flagOffset] {
	case flagNotOwned:
		if 0 != len(trailer) {
			return nil, fault.InvalidRecordSize
		}
	case flagOwnedED25519:
		if OwnerSize+SignatureSize != len(trailer) {
			return nil, fault.InvalidRecordSize
		}
		record.Owner = &Owner{
			PublicKey: append([]byte{}, trailer[:OwnerSize]...),
		}
		record.Signature = append(Signature{}, trailer[OwnerSize:]...)
	default:
		return nil, fault.InvalidOwnershipTrailer
	}

	return record, nil
}

// Digest - digest for a packed record
//
// hashes only the canonical prefix, matching Record.Digest
func (packed PackedRecord) Digest() (digest.Digest, error) {
	payloadLength, err := packed.payloadLength()
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.NewDigest(packed[:payloadOffset+int(payloadLength)]), nil
}

func (packed PackedRecord) payloadLength() (uint64, error) {
	if len(packed) < payloadOffset {
		return 0, fault.InvalidRecordSize
	}
	payloadLength := binary.LittleEndian.Uint64(packed[payloadLengthOffset:])
	if payloadLength > uint64(len(packed)-payloadOffset) {
		return 0, fault.InvalidRecordSize
	}
	return payloadLength, nil
}
