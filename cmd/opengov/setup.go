// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/chain/kusama"
	"github.com/ChainSafe/opengov-cli/chain/metadata"
	"github.com/ChainSafe/opengov-cli/chain/polkadot"
	"github.com/ChainSafe/opengov-cli/config"
	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/ChainSafe/opengov-cli/internal/metrics"
	"github.com/ChainSafe/opengov-cli/lib/artifact"
	"github.com/ChainSafe/opengov-cli/lib/output"
	"github.com/ChainSafe/opengov-cli/lib/rpc"
	"github.com/ChainSafe/opengov-cli/lib/weight"
	"github.com/urfave/cli"
)

// environment is what every command needs once flags and configuration
// are resolved.
type environment struct {
	cfg       *config.Config
	network   chain.Network
	format    output.Format
	recorder  *metrics.Recorder
	estimator *weight.Estimator
	sink      *artifact.Fanout
}

func newEnvironment(ctx *cli.Context) (*environment, error) {
	err := config.LoadEnv(ctx.String(EnvFileFlag.Name))
	if err != nil {
		return nil, err
	}

	cfg, err := createConfig(ctx)
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log.Patch(log.SetLevel(level))

	registry, err := newRegistry()
	if err != nil {
		return nil, err
	}
	network, err := registry.Network(cfg.Network)
	if err != nil {
		return nil, err
	}
	cfg.RPC.MergeEnv(network, os.Getenv)
	network, err = cfg.RPC.ApplyEndpoints(network)
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.Weight.QueryTimeout()
	if err != nil {
		return nil, err
	}

	recorder := metrics.NewRecorder()
	sink, err := newArtifactSink(cfg.Artifact, recorder)
	if err != nil {
		return nil, err
	}

	return &environment{
		cfg:       cfg,
		network:   network,
		format:    format,
		recorder:  recorder,
		estimator: weight.NewEstimator(weightDialer, timeout, recorder),
		sink:      sink,
	}, nil
}

func newRegistry() (*chain.Registry, error) {
	return chain.NewRegistry(polkadot.Network(), kusama.Network())
}

func newArtifactSink(cfg config.ArtifactConfig, observer artifact.Observer) (*artifact.Fanout, error) {
	sinks := []artifact.Sink{artifact.NewFileSink(cfg.Dir)}
	if cfg.S3Bucket != "" {
		s3Sink, err := artifact.NewS3Sink(cfg.S3Region, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s3Sink)
	}
	return artifact.NewFanout(observer, sinks...), nil
}

// resolveIndices replaces the static call indices of the chains with the
// ones of their live metadata, when enabled.
func (e *environment) resolveIndices(ctx context.Context, ids ...chain.ID) error {
	if !e.cfg.RPC.LiveIndices {
		return nil
	}

	seen := make(map[chain.ID]struct{}, len(ids))
	unique := make([]chain.ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	network, err := metadata.ResolveNetwork(ctx, e.network, metadataDialer{}, unique...)
	if err != nil {
		return fmt.Errorf("resolving call indices: %w", err)
	}
	e.network = network
	return nil
}

func (e *environment) writeMetrics() error {
	if e.cfg.Metrics.File == "" {
		return nil
	}
	return e.recorder.WriteTextfile(e.cfg.Metrics.File)
}

var weightDialer = weight.DialerFunc(func(ctx context.Context, endpoint string) (weight.StateCaller, error) {
	client, err := rpc.Dial(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return client, nil
})

type metadataDialer struct{}

func (metadataDialer) Dial(ctx context.Context, endpoint string) (metadata.Source, error) {
	client, err := rpc.Dial(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return client, nil
}
