// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the immutable unit held by a chain
//
// a record binds an index, a creation timestamp, an opaque payload and
// the digest of its predecessor under a single self digest; the
// canonical encoding uses fixed width little endian fields with a
// length prefixed payload so that no two distinct records encode to
// the same byte string
//
// records may optionally carry an ed25519 ownership trailer: the
// owner's public key and a signature over the self digest
package record
