// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - the digest used to bind and link chain records
//
// a SHA3-256 over the canonical record encoding; the all zero value is
// reserved as the sentinel linking the genesis record to nothing
package digest
