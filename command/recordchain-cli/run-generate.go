// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordchain/record"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, privateKey, err := record.NewOwnerKeypair()
	if nil != err {
		return err
	}

	m.infof("generated owner: %s", owner)

	return printJson(m.w, struct {
		Owner      string `json:"owner"`
		PrivateKey string `json:"privateKey"`
	}{
		Owner:      owner.String(),
		PrivateKey: hex.EncodeToString(privateKey),
	})
}
