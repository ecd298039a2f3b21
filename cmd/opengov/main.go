// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	submitReferendumCommand = cli.Command{
		Action:    submitReferendum,
		Name:      "submit-referendum",
		Usage:     "Build the calls submitting a proposal as an OpenGov referendum",
		ArgsUsage: "[proposal]",
		Flags:     SubmitReferendumFlags,
		Description: "Builds the preimages and referendum submissions of a proposal on the\n" +
			"\tgiven track, including the Fellowship whitelisting for the\n" +
			"\twhitelisted-caller track, and prints them with a batch per chain.\n" +
			"\tUsage: opengov submit-referendum --network polkadot --track root --proposal 0x...",
	}
	buildUpgradeCommand = cli.Command{
		Action: buildUpgrade,
		Name:   "build-upgrade",
		Usage:  "Build the relay chain batch authorizing runtime upgrades",
		Flags:  BuildUpgradeFlags,
		Description: "Fetches the runtimes of the relay chain and its system chains,\n" +
			"\tauthorizes their code hashes and writes the relay chain batch to a file.\n" +
			"\tUsage: opengov build-upgrade --network kusama --relay-version v1.2.3",
	}
)

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "opengov"
	app.Usage = "OpenGov proposal builder for Polkadot and Kusama"
	app.Version = "0.1.0"
	app.Writer = w
	app.Commands = []cli.Command{
		submitReferendumCommand,
		buildUpgradeCommand,
	}
	return app
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// signalContext is cancelled on interrupt or termination.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
