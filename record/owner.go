// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordchain/fault"
	"github.com/bitmark-inc/recordchain/util"
)

// byte sizes for the ownership trailer
const (
	OwnerSize     = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

// number of checksum bytes appended to the base58 text form
const checksumLength = 4

// Owner - holder of the ed25519 public key that signed a record
type Owner struct {
	PublicKey []byte
}

// Signature - ed25519 signature over a record's self digest
type Signature []byte

// NewOwnerKeypair - generate a fresh ed25519 keypair
//
// the private key is handed back to the caller and never stored in a
// record or a chain
func NewOwnerKeypair() (*Owner, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	return &Owner{PublicKey: publicKey}, privateKey, nil
}

// Sign - attach ownership to a record
//
// signs the stored self digest, so the signature binds exactly the
// content the chain verifier recomputes
func (record *Record) Sign(privateKey ed25519.PrivateKey) {
	publicKey := privateKey.Public().(ed25519.PublicKey)
	record.Owner = &Owner{
		PublicKey: append([]byte{}, publicKey...),
	}
	record.Signature = ed25519.Sign(privateKey, record.SelfDigest[:])
}

// CheckSignature - verify the ownership of a record
//
// a record without an owner has nothing to check and passes
func (record *Record) CheckSignature() error {
	if nil == record.Owner {
		return nil
	}
	return record.Owner.CheckSignature(record.SelfDigest[:], record.Signature)
}

// CheckSignature - check that a message was signed by this owner
func (owner *Owner) CheckSignature(message []byte, signature Signature) error {
	if OwnerSize != len(owner.PublicKey) {
		return fault.InvalidSignature
	}
	if SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(owner.PublicKey), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (owner *Owner) Bytes() []byte {
	return append([]byte{flagOwnedED25519}, owner.PublicKey...)
}

// String - base58 encoding of encoded key
func (owner *Owner) String() string {
	buffer := owner.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an owner to its base58 JSON form
func (owner Owner) MarshalText() ([]byte, error) {
	return []byte(owner.String()), nil
}

// UnmarshalText - convert the base58 form back to an owner
func (owner *Owner) UnmarshalText(s []byte) error {
	decoded, err := OwnerFromBase58(string(s))
	if nil != err {
		return err
	}
	owner.PublicKey = decoded.PublicKey
	return nil
}

// OwnerFromBase58 - decode and validate the base58 text form
func OwnerFromBase58(ownerBase58Encoded string) (*Owner, error) {
	decoded := util.FromBase58(ownerBase58Encoded)
	if OwnerFlagSize+OwnerSize+checksumLength != len(decoded) {
		return nil, fault.CannotDecodeOwner
	}
	if flagOwnedED25519 != decoded[0] {
		return nil, fault.CannotDecodeOwner
	}

	prefix := decoded[:OwnerFlagSize+OwnerSize]
	checksum := sha3.Sum256(prefix)
	suffix := decoded[OwnerFlagSize+OwnerSize:]
	for i := 0; i < checksumLength; i += 1 {
		if checksum[i] != suffix[i] {
			return nil, fault.CannotDecodeOwner
		}
	}

	return &Owner{
		PublicKey: append([]byte{}, decoded[OwnerFlagSize:OwnerFlagSize+OwnerSize]...),
	}, nil
}

// MarshalText - convert a signature to its hex JSON form
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	buffer := make([]byte, size)
	hex.Encode(buffer, signature)
	return buffer, nil
}

// UnmarshalText - convert hex text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*signature = buffer[:byteCount]
	return nil
}
