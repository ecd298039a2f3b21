// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/joho/godotenv"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "config"))

// LoadEnv loads the dotenv file at path into the environment, without
// overriding variables already set. A missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debugf("loaded environment from %s", path)
	return nil
}

// EnvKey is the environment variable overriding the RPC endpoint of a
// chain, for example OPENGOV_POLKADOT_ASSET_HUB_RPC.
func EnvKey(id chain.ID) string {
	name := strings.ToUpper(strings.ReplaceAll(string(id), "-", "_"))
	return "OPENGOV_" + name + "_RPC"
}

// MergeEnv overrides the endpoints of the chains of the network with the
// non empty environment variables returned by getenv.
func (r *RPCConfig) MergeEnv(network chain.Network, getenv func(key string) string) {
	for _, c := range network.Chains() {
		endpoint := getenv(EnvKey(c.ID))
		if endpoint == "" {
			continue
		}
		if r.Endpoints == nil {
			r.Endpoints = make(map[string]string)
		}
		r.Endpoints[string(c.ID)] = endpoint
	}
}

// ApplyEndpoints returns a copy of the network with the RPC endpoints of
// its chains replaced by the configured ones.
func (r RPCConfig) ApplyEndpoints(network chain.Network) (chain.Network, error) {
	ids := make([]string, 0, len(r.Endpoints))
	for id := range r.Endpoints {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		c, err := network.Chain(chain.ID(id))
		if err != nil {
			return chain.Network{}, fmt.Errorf("rpc endpoint: %w", err)
		}
		c.RPC = r.Endpoints[id]
		network, err = network.Replace(c)
		if err != nil {
			return chain.Network{}, err
		}
		logger.Debugf("using endpoint %s for %s", c.RPC, c.ID)
	}
	return network, nil
}
