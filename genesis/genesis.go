// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis

import (
	"github.com/bitmark-inc/recordchain/digest"
	"github.com/bitmark-inc/recordchain/record"
)

// Index - the genesis record is always the first record
const Index = 0

// Timestamp - fixed creation time embedded in every genesis record
//
// date -u -r $(printf '%d\n' 0x5e0be100) '+%FT%TZ'
// 2020-01-01T00:00:00Z
const Timestamp = 0x5e0be100

// Payload - sentinel payload carried by the genesis record
var Payload = []byte("*** recordchain genesis ***")

// PrevDigest - the genesis record links to nothing
var PrevDigest = digest.Digest{}

// New - construct the anchor record
//
// every chain starts from this identical, re-derivable record
func New() *record.Record {
	return record.NewWithTimestamp(Index, Timestamp, Payload, PrevDigest)
}
