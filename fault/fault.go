// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	CapacityError  GenericError
	InvalidError   GenericError
	MalformedError GenericError
)

// common errors - keep in alphabetic order
var (
	CannotDecodeOwner       = InvalidError("cannot decode owner")
	ChainCapacityReached    = CapacityError("chain capacity reached")
	InvalidOwnershipTrailer = InvalidError("invalid ownership trailer")
	InvalidRecordSize       = InvalidError("invalid record size")
	InvalidSignature        = InvalidError("invalid signature")
	MissingGenesisRecord    = MalformedError("missing genesis record")
	NotLink                 = InvalidError("not link")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CapacityError) Error() string  { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e MalformedError) Error() string { return string(e) }

// determine the class of an error
func IsErrCapacity(e error) bool  { _, ok := e.(CapacityError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrMalformed(e error) bool { _, ok := e.(MalformedError); return ok }
