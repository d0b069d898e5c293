// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

// hold items from the global flags for the run commands
type metadata struct {
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "recordchain-cli"
	app.Usage = "build, inspect and verify tamper-evident record chains"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "log-dir, l",
			Value: "",
			Usage: " write a log file into `DIRECTORY`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an owner keypair, will not store it anywhere",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "build",
			Usage:     "build a chain from payload arguments, verify it and dump it as JSON",
			ArgsUsage: "payload... (reads lines from stdin when no arguments)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " sign every record with ed25519 private key `HEX`",
				},
			},
			Action: runBuild,
		},
		{
			Name:      "demo",
			Usage:     "scripted build/tamper/verify walkthrough showing detection",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runDemo,
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}

		if dir := c.GlobalString("log-dir"); "" != dir {
			err := logger.Initialise(logger.Configuration{
				Directory: dir,
				File:      "recordchain-cli.log",
				Size:      1048576,
				Count:     10,
				Console:   false,
				Levels: map[string]string{
					logger.DefaultTag: "info",
				},
			})
			if nil != err {
				return err
			}
			m.log = logger.New("cli")
		}

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.log {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// log only when a log file was configured
func (m *metadata) infof(format string, arguments ...interface{}) {
	if nil != m.log {
		m.log.Infof(format, arguments...)
	}
}
