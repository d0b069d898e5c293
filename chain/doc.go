// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - a tamper-evident append-only sequence of records
//
// each record carries the digest of its predecessor's canonical
// encoding, so any post-creation change to a stored record is caught
// by Verify; linkage is a value comparison, there are no pointers
// between records
//
// Note: an individual chain is not thread safe, so either access only
//       in a single go routine or use the Locked wrapper which
//       serialises one writer against concurrent verifiers.
package chain
