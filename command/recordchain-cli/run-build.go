// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordchain/chain"
	"github.com/bitmark-inc/recordchain/record"
)

// JSON dump of a whole chain
type chainDump struct {
	Length   int              `json:"length"`
	Verified bool             `json:"verified"`
	Records  []*record.Record `json:"records"`
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := checkPrivateKey(c.String("key"))
	if nil != err {
		return err
	}

	payloads := make([][]byte, 0, len(c.Args()))
	for _, arg := range c.Args() {
		payloads = append(payloads, []byte(arg))
	}
	if 0 == len(payloads) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			payloads = append(payloads, append([]byte{}, scanner.Bytes()...))
		}
		err := scanner.Err()
		if nil != err {
			return err
		}
	}

	ch := chain.New()
	for i, payload := range payloads {
		if nil == privateKey {
			err = ch.Push(payload)
		} else {
			err = ch.PushOwned(payload, privateKey)
		}
		if nil != err {
			return err
		}
		m.infof("pushed record %d: %q", i+1, payload)
	}

	verified, err := ch.Verify()
	if nil != err {
		return err
	}
	m.infof("chain length: %d verified: %v", ch.Length(), verified)

	dump := chainDump{
		Length:   ch.Length(),
		Verified: verified,
		Records:  make([]*record.Record, ch.Length()),
	}
	for i := 0; i < ch.Length(); i += 1 {
		dump.Records[i] = ch.Record(i)
	}

	return printJson(m.w, dump)
}

// decode and validate an optional hex private key
func checkPrivateKey(key string) (ed25519.PrivateKey, error) {
	if "" == key {
		return nil, nil
	}
	decoded, err := hex.DecodeString(key)
	if nil != err {
		return nil, err
	}
	if ed25519.PrivateKeySize != len(decoded) {
		return nil, fmt.Errorf("private key must be %d bytes not %d", ed25519.PrivateKeySize, len(decoded))
	}
	return ed25519.PrivateKey(decoded), nil
}
