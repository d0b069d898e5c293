// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordchain/chain"
	"github.com/bitmark-inc/recordchain/record"
)

// build a small provenance chain, tamper with one stored payload and
// show that verification flips from true to false
func runDemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, privateKey, err := record.NewOwnerKeypair()
	if nil != err {
		return err
	}
	m.infof("demo owner: %s", owner)

	ch := chain.New()
	err = ch.PushOwned([]byte("minted: artwork #1"), privateKey)
	if nil != err {
		return err
	}
	err = ch.Extend([][]byte{
		[]byte("listed for sale"),
		[]byte("sold to alice"),
	})
	if nil != err {
		return err
	}

	before, err := ch.Verify()
	if nil != err {
		return err
	}
	m.infof("before tamper: verified: %v", before)

	// flip one bit of a stored payload, bypassing push
	ch.Record(2).Payload[0] ^= 0x01

	after, err := ch.Verify()
	if nil != err {
		return err
	}
	m.infof("after tamper: verified: %v", after)

	err = printJson(m.w, struct {
		Owner        string `json:"owner"`
		Length       int    `json:"length"`
		BeforeTamper bool   `json:"beforeTamper"`
		AfterTamper  bool   `json:"afterTamper"`
	}{
		Owner:        owner.String(),
		Length:       ch.Length(),
		BeforeTamper: before,
		AfterTamper:  after,
	})
	if nil != err {
		return err
	}

	if !before || after {
		return fmt.Errorf("tamper detection failed: before: %v after: %v", before, after)
	}
	if m.verbose {
		fmt.Fprintf(m.e, "tampering detected\n")
	}
	return nil
}
