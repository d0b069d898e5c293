// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// recordchain-cli - command line tool for record chains
//
// builds chains from payloads, verifies them, dumps them as JSON and
// generates owner keypairs; a thin external layer over the library,
// the core prescribes no wire or file format
package main
