// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownChain   = errors.New("unknown chain")
	ErrInvalidNetwork = errors.New("invalid network")
)

// Network is a relay chain together with its system chains.
type Network struct {
	Name       string
	Relay      Chain
	Satellites []Chain
	// FellowshipChain hosts the Fellowship referenda. It is either the relay
	// itself or one of the satellites reached over XCM.
	FellowshipChain ID
}

// Chains returns the relay chain followed by the satellites in registry order.
func (n Network) Chains() []Chain {
	chains := make([]Chain, 0, 1+len(n.Satellites))
	chains = append(chains, n.Relay)
	return append(chains, n.Satellites...)
}

// Chain returns the chain with the given ID if it belongs to the network.
func (n Network) Chain(id ID) (Chain, error) {
	for _, c := range n.Chains() {
		if c.ID == id {
			return c, nil
		}
	}
	return Chain{}, fmt.Errorf("%w: %s is not part of %s", ErrUnknownChain, id, n.Name)
}

// Contains returns true if the chain belongs to the network.
func (n Network) Contains(id ID) bool {
	_, err := n.Chain(id)
	return err == nil
}

// Fellowship returns the chain hosting the Fellowship.
func (n Network) Fellowship() (Chain, error) {
	return n.Chain(n.FellowshipChain)
}

// FellowshipColocated returns true if the Fellowship lives on the relay chain.
func (n Network) FellowshipColocated() bool {
	return n.FellowshipChain == n.Relay.ID
}

// Replace returns a copy of the network where the chain with the same ID
// as c is swapped for c.
func (n Network) Replace(c Chain) (Network, error) {
	if n.Relay.ID == c.ID {
		n.Relay = c
		return n, nil
	}
	satellites := make([]Chain, len(n.Satellites))
	copy(satellites, n.Satellites)
	for i := range satellites {
		if satellites[i].ID == c.ID {
			satellites[i] = c
			n.Satellites = satellites
			return n, nil
		}
	}
	return n, fmt.Errorf("%w: %s is not part of %s", ErrUnknownChain, c.ID, n.Name)
}

// Validate checks the topology of the network.
func (n Network) Validate() error {
	if n.Relay.Kind != Relay {
		return fmt.Errorf("%w: %s: %s is not a relay chain", ErrInvalidNetwork, n.Name, n.Relay.ID)
	}

	seenIDs := map[ID]struct{}{n.Relay.ID: {}}
	seenParaIDs := make(map[uint32]ID, len(n.Satellites))
	for _, s := range n.Satellites {
		if s.Kind != Satellite {
			return fmt.Errorf("%w: %s: %s is not a satellite", ErrInvalidNetwork, n.Name, s.ID)
		}
		if s.ParaID == 0 {
			return fmt.Errorf("%w: %s: %s has no para ID", ErrInvalidNetwork, n.Name, s.ID)
		}
		if _, ok := seenIDs[s.ID]; ok {
			return fmt.Errorf("%w: %s: duplicate chain %s", ErrInvalidNetwork, n.Name, s.ID)
		}
		if other, ok := seenParaIDs[s.ParaID]; ok {
			return fmt.Errorf("%w: %s: para ID %d used by %s and %s",
				ErrInvalidNetwork, n.Name, s.ParaID, other, s.ID)
		}
		seenIDs[s.ID] = struct{}{}
		seenParaIDs[s.ParaID] = s.ID
	}

	if !n.Contains(n.FellowshipChain) {
		return fmt.Errorf("%w: %s: fellowship chain %q not found",
			ErrInvalidNetwork, n.Name, n.FellowshipChain)
	}
	return nil
}
