// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"

	"github.com/ChainSafe/opengov-cli/lib/output"
	"github.com/ChainSafe/opengov-cli/lib/referendum"
	"github.com/ChainSafe/opengov-cli/lib/weight"
	"github.com/urfave/cli"
)

// submitReferendum is the action of the submit-referendum command.
func submitReferendum(ctx *cli.Context) error {
	runCtx, stop := signalContext()
	defer stop()

	env, err := newEnvironment(ctx)
	if err != nil {
		return err
	}

	proposalArg := ctx.String(ProposalFlag.Name)
	if proposalArg == "" {
		proposalArg = ctx.Args().First()
	}
	if proposalArg == "" {
		return fmt.Errorf("%w: no proposal given", referendum.ErrReadProposal)
	}
	proposal, err := referendum.ReadProposal(proposalArg)
	if err != nil {
		return err
	}

	track, err := referendum.ParseTrack(env.cfg.Track)
	if err != nil {
		return err
	}
	dispatch, err := dispatchTime(ctx, env.cfg.Dispatch)
	if err != nil {
		return err
	}

	err = env.resolveIndices(runCtx, env.network.Relay.ID, env.network.FellowshipChain)
	if err != nil {
		return err
	}

	details := referendum.ProposalDetails{
		Proposal:               proposal,
		Network:                env.network,
		Track:                  track,
		Dispatch:               dispatch,
		OutputLenLimit:         env.cfg.Output.LenLimit,
		TransactWeightOverride: env.cfg.Weight.Override(),
	}
	logger.Debugf("building %s referendum on %s enacted %s", track, env.network.Name, dispatch)

	calls, err := referendum.Generate(runCtx, details, referendum.Dependencies{
		Estimator: env.estimator,
		Sink:      env.sink,
		Observer:  env.recorder,
		Limits:    weight.DefaultLimits,
	})
	if err != nil {
		return err
	}

	printer := output.NewPrinter(ctx.App.Writer, env.format, !env.cfg.Output.NoBatch, env.recorder)
	err = printer.Deliver(calls)
	if err != nil {
		return err
	}
	if env.cfg.Output.Tree {
		_, _ = fmt.Fprintf(ctx.App.Writer, "\n%s\n", output.Tree(calls))
	}

	return env.writeMetrics()
}
