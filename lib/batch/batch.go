// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package batch

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/lib/call"
)

// ErrForeignChain is returned for calls of chains outside the network.
var ErrForeignChain = errors.New("foreign chain")

// Batch is the Utility.force_batch of every call destined to one chain.
type Batch struct {
	Chain chain.Chain
	Calls []call.RuntimeCall
	Call  call.RuntimeCall
}

// Aggregate groups calls by chain into one force_batch per chain. Batches
// are ordered relay first and then in registry order, calls keep their
// relative order inside a batch. Chains without calls get no batch.
func Aggregate(network chain.Network, calls []call.RuntimeCall) ([]Batch, error) {
	grouped := make(map[chain.ID][]call.RuntimeCall)
	for _, c := range calls {
		if !network.Contains(c.Chain.ID) {
			return nil, fmt.Errorf("%w: %s is not part of %s", ErrForeignChain, c.Chain.ID, network.Name)
		}
		grouped[c.Chain.ID] = append(grouped[c.Chain.ID], c)
	}

	var batches []Batch
	for _, c := range network.Chains() {
		chainCalls, ok := grouped[c.ID]
		if !ok {
			continue
		}
		batchCall, err := call.ForceBatch(c, chainCalls)
		if err != nil {
			return nil, fmt.Errorf("batching calls of %s: %w", c.ID, err)
		}
		batches = append(batches, Batch{
			Chain: c,
			Calls: chainCalls,
			Call:  batchCall,
		})
	}
	return batches, nil
}
