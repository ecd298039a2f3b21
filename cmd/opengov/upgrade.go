// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/lib/common"
	"github.com/ChainSafe/opengov-cli/lib/output"
	"github.com/ChainSafe/opengov-cli/lib/upgrade"
	"github.com/ChainSafe/opengov-cli/lib/weight"
	"github.com/urfave/cli"
)

var ErrInvalidRuntimeSource = errors.New("invalid runtime source")

// buildUpgrade is the action of the build-upgrade command.
func buildUpgrade(ctx *cli.Context) error {
	runCtx, stop := signalContext()
	defer stop()

	env, err := newEnvironment(ctx)
	if err != nil {
		return err
	}

	opts, err := upgradeOptions(ctx, env.network)
	if err != nil {
		return err
	}

	// the relay chain batches and sends every authorization
	ids := append([]chain.ID{env.network.Relay.ID}, opts.Only...)
	if len(opts.Only) == 0 {
		ids = ids[:0]
		for _, c := range env.network.Chains() {
			ids = append(ids, c.ID)
		}
	}
	err = env.resolveIndices(runCtx, ids...)
	if err != nil {
		return err
	}
	opts.Network = env.network

	fetcher := upgrade.NewFetcher(http.DefaultClient, 0)
	builder := upgrade.NewBuilder(fetcher, env.estimator, weight.DefaultLimits)
	result, err := builder.Build(runCtx, opts)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	for _, authorization := range result.Authorizations {
		_, _ = fmt.Fprintf(w, "%s: authorize code hash %s from %s\n",
			authorization.Chain.Name, authorization.CodeHash, authorization.Source)
	}

	filename := ctx.String(FilenameFlag.Name)
	if filename == "" {
		filename = upgrade.DefaultFilename(env.network.Name, opts.RelayVersion)
	}
	err = env.sink.Write(runCtx, filename, []byte(common.BytesToHex(result.Batch.Bytes())))
	if err != nil {
		return fmt.Errorf("writing upgrade call: %w", err)
	}

	printer := output.NewPrinter(w, env.format, false, env.recorder)
	printer.PrintCall(fmt.Sprintf("Batch to submit on %s:", env.network.Relay.Name), result.Batch)
	_, _ = fmt.Fprintf(w, "\nUpgrade call written to %s\n", filename)

	return env.writeMetrics()
}

// upgradeFlagsStore is the view of the command line flags of the
// build-upgrade command. It is implemented by *cli.Context.
type upgradeFlagsStore interface {
	String(name string) string
	StringSlice(name string) []string
}

func upgradeOptions(flags upgradeFlagsStore, network chain.Network) (opts upgrade.Options, err error) {
	opts.Network = network

	if s := flags.String(RelayVersionFlag.Name); s != "" {
		opts.RelayVersion, err = upgrade.ParseVersion(s)
		if err != nil {
			return upgrade.Options{}, fmt.Errorf("relay chain version: %w", err)
		}
	}
	if s := flags.String(ParachainVersionFlag.Name); s != "" {
		opts.ParachainVersion, err = upgrade.ParseVersion(s)
		if err != nil {
			return upgrade.Options{}, fmt.Errorf("parachain version: %w", err)
		}
	}

	opts.Sources, err = parseSources(flags.StringSlice(RuntimeFlag.Name), network)
	if err != nil {
		return upgrade.Options{}, err
	}

	for _, id := range flags.StringSlice(OnlyFlag.Name) {
		opts.Only = append(opts.Only, chain.ID(id))
	}
	return opts, nil
}

// parseSources parses <chain>=<path or url> entries.
func parseSources(entries []string, network chain.Network) (map[chain.ID]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	sources := make(map[chain.ID]string, len(entries))
	for _, entry := range entries {
		id, source, ok := strings.Cut(entry, "=")
		if !ok || id == "" || source == "" {
			return nil, fmt.Errorf("%w: %q, expected <chain>=<path or url>", ErrInvalidRuntimeSource, entry)
		}
		if !network.Contains(chain.ID(id)) {
			return nil, fmt.Errorf("%w: %s is not part of %s", ErrInvalidRuntimeSource, id, network.Name)
		}
		sources[chain.ID(id)] = source
	}
	return sources, nil
}
