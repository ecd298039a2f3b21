// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownNetwork = errors.New("unknown network")

// Registry holds the networks the tool can build proposals for.
type Registry struct {
	networks map[string]Network
	names    []string
}

// NewRegistry validates and registers the networks given.
func NewRegistry(networks ...Network) (*Registry, error) {
	r := &Registry{
		networks: make(map[string]Network, len(networks)),
	}
	for _, n := range networks {
		err := n.Validate()
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(n.Name)
		if _, ok := r.networks[key]; ok {
			return nil, fmt.Errorf("%w: duplicate network %s", ErrInvalidNetwork, n.Name)
		}
		r.networks[key] = n
		r.names = append(r.names, key)
	}
	return r, nil
}

// Network returns the network with the given name, matched case-insensitively.
func (r *Registry) Network(name string) (Network, error) {
	n, ok := r.networks[strings.ToLower(name)]
	if !ok {
		return Network{}, fmt.Errorf("%w: %s (known: %s)",
			ErrUnknownNetwork, name, strings.Join(r.names, ", "))
	}
	return n, nil
}

// Update replaces a registered network, for example after RPC overrides.
func (r *Registry) Update(n Network) error {
	key := strings.ToLower(n.Name)
	if _, ok := r.networks[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNetwork, n.Name)
	}
	err := n.Validate()
	if err != nil {
		return err
	}
	r.networks[key] = n
	return nil
}

// Names returns the registered network names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
