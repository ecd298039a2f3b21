// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metadata overrides the static call indices, governance origins and
// call layouts of a chain with those found in its live runtime metadata.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metadata"))

var (
	ErrDecodeMetadata  = errors.New("cannot decode metadata")
	ErrOriginsNotFound = errors.New("origins not found in metadata")
)

// layoutVersion is the only metadata version call layouts are read from.
const layoutVersion = 14

// Fetcher returns the hex encoded runtime metadata of a chain.
type Fetcher interface {
	Metadata(ctx context.Context) (string, error)
}

// Source is a connection to a chain serving its metadata.
type Source interface {
	Fetcher
	Close()
}

// Dialer connects to the RPC endpoint of a chain.
type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Source, error)
}

// CallFinder resolves "Pallet.call" names to call indices.
type CallFinder interface {
	FindCallIndex(call string) (types.CallIndex, error)
}

// emittedCalls lists, per pallet, the calls this tool builds.
var emittedCalls = map[string][]string{
	"System":              {"remark", "authorize_upgrade"},
	"Preimage":            {"note_preimage"},
	"Referenda":           {"submit"},
	"FellowshipReferenda": {"submit"},
	"Whitelist":           {"whitelist_call", "dispatch_whitelisted_call_with_preimage"},
	"Utility":             {"force_batch"},
	"XcmPallet":           {"send"},
	"PolkadotXcm":         {"send"},
}

// Decode decodes hex encoded runtime metadata.
func Decode(metadataHex string) (*types.Metadata, error) {
	var metadata types.Metadata
	err := codec.DecodeFromHex(metadataHex, &metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeMetadata, err)
	}
	return &metadata, nil
}

// Apply returns a copy of c with the indices of the emitted calls taken
// from finder. Calls missing from the metadata keep their static index.
func Apply(c chain.Chain, finder CallFinder) chain.Chain {
	pallets := make([]string, 0, len(emittedCalls))
	for pallet := range emittedCalls {
		pallets = append(pallets, pallet)
	}
	sort.Strings(pallets)

	for _, pallet := range pallets {
		if _, ok := c.Pallets[pallet]; !ok {
			continue
		}
		for _, callName := range emittedCalls[pallet] {
			name := pallet + "." + callName
			index, err := finder.FindCallIndex(name)
			if err != nil {
				logger.Warnf("keeping static index of %s on %s: %s", name, c.ID, err)
				continue
			}
			live := chain.CallIndex{Pallet: index.SectionIndex, Method: index.MethodIndex}
			static, err := c.CallIndex(pallet, callName)
			if err == nil && static == live {
				continue
			}
			logger.Infof("%s on %s resolved to %d.%d", name, c.ID, live.Pallet, live.Method)
			c = c.WithCallIndex(pallet, callName, live)
		}
	}
	return c
}

// Resolve fetches and decodes the metadata of c and applies it.
func Resolve(ctx context.Context, c chain.Chain, fetcher Fetcher) (chain.Chain, error) {
	metadataHex, err := fetcher.Metadata(ctx)
	if err != nil {
		return chain.Chain{}, fmt.Errorf("fetching metadata of %s: %w", c.ID, err)
	}
	metadata, err := Decode(metadataHex)
	if err != nil {
		return chain.Chain{}, fmt.Errorf("metadata of %s: %w", c.ID, err)
	}

	c = Apply(c, metadata)
	c = ApplyOrigins(c, metadata)
	return ApplyLayouts(c, metadata), nil
}

// ApplyOrigins returns a copy of c with its custom governance origins read
// from the OriginCaller type of the metadata. The static origins are kept
// when the metadata does not describe them.
func ApplyOrigins(c chain.Chain, metadata *types.Metadata) chain.Chain {
	if c.OriginsPallet == "" {
		return c
	}

	caller, origins, err := findOrigins(metadata, c.OriginsPallet)
	if err != nil {
		logger.Warnf("keeping static origins of %s: %s", c.ID, err)
		return c
	}
	logger.Debugf("%s origins on %s resolved to caller %d with %d variants",
		c.OriginsPallet, c.ID, caller, len(origins))
	return c.WithOrigins(caller, origins)
}

// findOrigins returns the OriginCaller variant of the origins pallet and
// the variants of the origin enum it holds.
func findOrigins(metadata *types.Metadata, pallet string) (caller uint8, origins map[string]uint8, err error) {
	lookup := metadata.AsMetadataV14.EfficientLookup
	for _, portable := range metadata.AsMetadataV14.Lookup.Types {
		path := portable.Type.Path
		if len(path) == 0 || path[len(path)-1] != "OriginCaller" || !portable.Type.Def.IsVariant {
			continue
		}

		for _, variant := range portable.Type.Def.Variant.Variants {
			if string(variant.Name) != pallet {
				continue
			}
			if len(variant.Fields) != 1 {
				return 0, nil, fmt.Errorf("%w: %s variant has %d fields", ErrOriginsNotFound, pallet, len(variant.Fields))
			}
			originType, ok := lookup[variant.Fields[0].Type.Int64()]
			if !ok || !originType.Def.IsVariant {
				return 0, nil, fmt.Errorf("%w: %s origin is not an enum", ErrOriginsNotFound, pallet)
			}

			origins = make(map[string]uint8, len(originType.Def.Variant.Variants))
			for _, origin := range originType.Def.Variant.Variants {
				origins[string(origin.Name)] = uint8(origin.Index)
			}
			return uint8(variant.Index), origins, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: no %s variant in OriginCaller", ErrOriginsNotFound, pallet)
}

// ApplyLayouts returns a copy of c decoding calls with the layouts of the
// metadata. The static layouts stay in use when they cannot be built.
func ApplyLayouts(c chain.Chain, metadata *types.Metadata) chain.Chain {
	if metadata.Version != layoutVersion {
		logger.Warnf("decoding calls of %s with static layouts: metadata v%d has no call layouts",
			c.ID, metadata.Version)
		return c
	}

	layouts, err := registry.NewFactory().CreateCallRegistry(metadata)
	if err != nil {
		logger.Warnf("decoding calls of %s with static layouts: %s", c.ID, err)
		return c
	}
	c.Decoders = layouts
	return c
}

// ResolveNetwork resolves the chains of the network with the given IDs,
// dialing each at its RPC endpoint.
func ResolveNetwork(ctx context.Context, network chain.Network, dialer Dialer,
	ids ...chain.ID) (chain.Network, error) {
	for _, id := range ids {
		c, err := network.Chain(id)
		if err != nil {
			return chain.Network{}, err
		}

		resolved, err := resolveChain(ctx, c, dialer)
		if err != nil {
			return chain.Network{}, err
		}

		network, err = network.Replace(resolved)
		if err != nil {
			return chain.Network{}, err
		}
	}
	return network, nil
}

func resolveChain(ctx context.Context, c chain.Chain, dialer Dialer) (chain.Chain, error) {
	source, err := dialer.Dial(ctx, c.RPC)
	if err != nil {
		return chain.Chain{}, fmt.Errorf("dialing %s: %w", c.RPC, err)
	}
	defer source.Close()
	return Resolve(ctx, c, source)
}
