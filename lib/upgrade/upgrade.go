// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package upgrade

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/common"
	"github.com/ChainSafe/opengov-cli/lib/weight"
	"github.com/ChainSafe/opengov-cli/lib/xcm"
	"golang.org/x/sync/errgroup"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "upgrade"))

var ErrNoRuntime = errors.New("no runtime to upgrade")

// maxConcurrentFetches bounds parallel runtime downloads.
const maxConcurrentFetches = 4

// BlobFetcher reads a runtime blob from a file path or URL.
type BlobFetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// WeightEstimator returns the weight a call needs on its chain.
type WeightEstimator interface {
	TransactWeightNeeded(ctx context.Context, c *call.CallInfo, fallback weight.Weight) weight.Weight
}

// Options select the runtimes of an upgrade.
type Options struct {
	Network chain.Network
	// RelayVersion is the release of the relay runtime, and of every system
	// chain when ParachainVersion is zero.
	RelayVersion     Version
	ParachainVersion Version
	// Sources overrides the release URL of a chain with a file path or URL.
	Sources map[chain.ID]string
	// Only restricts the upgrade to these chains when not empty.
	Only []chain.ID
}

// Authorization is the authorize_upgrade call of one chain.
type Authorization struct {
	Chain    chain.Chain
	Source   string
	CodeHash common.Hash
	Call     call.RuntimeCall
}

// Upgrade authorizes runtime upgrades of a network in one relay chain batch.
type Upgrade struct {
	Network        chain.Network
	Authorizations []Authorization
	// Batch is the relay force_batch of the relay authorization and of the
	// satellite authorizations wrapped in XCM.
	Batch call.RuntimeCall
}

// DefaultFilename is the file name of the upgrade call data.
func DefaultFilename(network string, relayVersion Version) string {
	if relayVersion.IsZero() {
		return fmt.Sprintf("upgrade-%s.call", strings.ToLower(network))
	}
	return fmt.Sprintf("upgrade-%s-%s.call", strings.ToLower(network), relayVersion)
}

// Builder builds runtime upgrades.
type Builder struct {
	fetcher   BlobFetcher
	estimator WeightEstimator
	limits    weight.Limits
}

// NewBuilder returns a builder. The estimator may be nil, the fallback
// weight is then used for every XCM Transact.
func NewBuilder(fetcher BlobFetcher, estimator WeightEstimator, limits weight.Limits) *Builder {
	return &Builder{
		fetcher:   fetcher,
		estimator: estimator,
		limits:    limits,
	}
}

// Build fetches the runtimes, checks and hashes them and builds the relay
// chain batch authorizing every upgrade.
func (b *Builder) Build(ctx context.Context, opts Options) (*Upgrade, error) {
	network := opts.Network
	chains, err := selectChains(network, opts.Only)
	if err != nil {
		return nil, err
	}

	sources := make([]string, len(chains))
	for i, c := range chains {
		sources[i], err = source(c, opts)
		if err != nil {
			return nil, err
		}
	}

	blobs := make([][]byte, len(chains))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentFetches)
	for i := range chains {
		i := i
		group.Go(func() error {
			blob, err := b.fetcher.Fetch(groupCtx, sources[i])
			if err != nil {
				return fmt.Errorf("fetching runtime of %s from %s: %w", chains[i].ID, sources[i], err)
			}
			err = checkRuntime(blob)
			if err != nil {
				return fmt.Errorf("runtime of %s from %s: %w", chains[i].ID, sources[i], err)
			}
			blobs[i] = blob
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return nil, err
	}

	upgrade := &Upgrade{Network: network}
	batchCalls := make([]call.RuntimeCall, 0, len(chains))
	for i, c := range chains {
		codeHash, err := common.Blake2bHash(blobs[i])
		if err != nil {
			return nil, fmt.Errorf("hashing runtime of %s: %w", c.ID, err)
		}
		authorize, err := call.AuthorizeUpgrade(c, codeHash)
		if err != nil {
			return nil, err
		}
		logger.Infof("%s runtime of %d bytes has code hash %s", c.ID, len(blobs[i]), codeHash)
		upgrade.Authorizations = append(upgrade.Authorizations, Authorization{
			Chain:    c,
			Source:   sources[i],
			CodeHash: codeHash,
			Call:     authorize,
		})

		if c.ID == network.Relay.ID {
			batchCalls = append(batchCalls, authorize)
			continue
		}
		envelope, err := b.envelope(ctx, network.Relay, c, authorize)
		if err != nil {
			return nil, err
		}
		batchCalls = append(batchCalls, envelope)
	}

	upgrade.Batch, err = call.ForceBatch(network.Relay, batchCalls)
	if err != nil {
		return nil, err
	}
	return upgrade, nil
}

// envelope sends the authorization from the relay chain to the satellite,
// dispatched there as Root.
func (b *Builder) envelope(ctx context.Context, relay, satellite chain.Chain,
	authorize call.RuntimeCall) (call.RuntimeCall, error) {
	info, err := call.FromRuntimeCall(authorize)
	if err != nil {
		return call.RuntimeCall{}, err
	}

	needed := weight.Fallback
	if b.estimator != nil {
		needed = b.estimator.TransactWeightNeeded(ctx, info, weight.Fallback)
	}
	limits := b.limits
	if limits == (weight.Limits{}) {
		limits = weight.DefaultLimits
	}
	return xcm.Envelope(relay, satellite, info.Encoded(), weight.SafetyMargin(needed, limits), xcm.Superuser)
}

// selectChains returns the chains to upgrade in registry order.
func selectChains(network chain.Network, only []chain.ID) ([]chain.Chain, error) {
	if len(only) == 0 {
		return network.Chains(), nil
	}

	selected := make(map[chain.ID]struct{}, len(only))
	for _, id := range only {
		if !network.Contains(id) {
			return nil, fmt.Errorf("%w: %s is not part of %s", chain.ErrUnknownChain, id, network.Name)
		}
		selected[id] = struct{}{}
	}

	var chains []chain.Chain
	for _, c := range network.Chains() {
		if _, ok := selected[c.ID]; ok {
			chains = append(chains, c)
		}
	}
	return chains, nil
}

func source(c chain.Chain, opts Options) (string, error) {
	if s, ok := opts.Sources[c.ID]; ok {
		return s, nil
	}

	version := opts.RelayVersion
	if c.Kind == chain.Satellite && !opts.ParachainVersion.IsZero() {
		version = opts.ParachainVersion
	}
	if version.IsZero() {
		return "", fmt.Errorf("%w: no version or source for %s", ErrNoRuntime, c.ID)
	}
	if c.Runtime == "" {
		return "", fmt.Errorf("%w: %s has no runtime name", ErrNoRuntime, c.ID)
	}
	return version.ReleaseURL(c.Runtime), nil
}
