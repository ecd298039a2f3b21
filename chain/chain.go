// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/centrifuge/go-substrate-rpc-client/v4/registry"
)

var (
	ErrUnknownPallet = errors.New("unknown pallet")
	ErrUnknownCall   = errors.New("unknown call")
	ErrUnknownOrigin = errors.New("unknown origin")
)

// ID identifies a chain in the registry, e.g. "polkadot" or "polkadot-collectives".
type ID string

// Kind tells a relay chain apart from the system chains it coordinates.
type Kind uint8

const (
	// Relay is the root chain of a network.
	Relay Kind = iota
	// Satellite is a system parachain addressed by its para ID.
	Satellite
)

func (k Kind) String() string {
	switch k {
	case Relay:
		return "relay"
	case Satellite:
		return "satellite"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// CallIndex is the two byte prefix of an encoded runtime call.
type CallIndex struct {
	Pallet uint8
	Method uint8
}

// Pallet is one entry of a runtime's pallet table. A nil Calls table leaves
// the calls of the pallet unnamed and undecodable without live metadata.
type Pallet struct {
	Index uint8
	Calls map[string]uint8
}

// Chain describes one ledger of a network together with the static
// encoding tables needed to build calls for it.
type Chain struct {
	ID   ID
	Name string
	Kind Kind
	// ParaID is the routing number relative to the relay chain. Zero for relays.
	ParaID uint32
	RPC    string
	// Runtime is the release artifact prefix, e.g. "asset-hub-polkadot".
	Runtime string

	Pallets map[string]Pallet

	// XcmPallet names the pallet that exposes send, XcmPallet on relays
	// and PolkadotXcm on system parachains.
	XcmPallet string
	// OriginsPallet names the pallet whose Origin enum holds the custom
	// governance origins listed in Origins.
	OriginsPallet string
	Origins       map[string]uint8

	// Decoders holds the call layouts read from the live runtime metadata.
	// It is nil when only the static tables are known.
	Decoders registry.CallRegistry
}

// CallIndex returns the pallet and call index of pallet.call.
func (c Chain) CallIndex(pallet, call string) (CallIndex, error) {
	p, ok := c.Pallets[pallet]
	if !ok {
		return CallIndex{}, fmt.Errorf("%w: %s on %s", ErrUnknownPallet, pallet, c.ID)
	}
	method, ok := p.Calls[call]
	if !ok {
		return CallIndex{}, fmt.Errorf("%w: %s.%s on %s", ErrUnknownCall, pallet, call, c.ID)
	}
	return CallIndex{Pallet: p.Index, Method: method}, nil
}

// PalletIndex returns the index of the named pallet.
func (c Chain) PalletIndex(pallet string) (uint8, error) {
	p, ok := c.Pallets[pallet]
	if !ok {
		return 0, fmt.Errorf("%w: %s on %s", ErrUnknownPallet, pallet, c.ID)
	}
	return p.Index, nil
}

// PalletByIndex looks up a pallet by its index.
func (c Chain) PalletByIndex(index uint8) (name string, pallet Pallet, ok bool) {
	for name, pallet := range c.Pallets {
		if pallet.Index == index {
			return name, pallet, true
		}
	}
	return "", Pallet{}, false
}

// CallName renders a call index as Pallet.call, falling back to the raw
// indices for anything missing from the tables.
func (c Chain) CallName(index CallIndex) string {
	palletName, pallet, ok := c.PalletByIndex(index.Pallet)
	if !ok {
		return fmt.Sprintf("%d.%d", index.Pallet, index.Method)
	}
	for callName, method := range pallet.Calls {
		if method == index.Method {
			return palletName + "." + callName
		}
	}
	return fmt.Sprintf("%s.%d", palletName, index.Method)
}

// Origin returns the OriginCaller variant and the custom origin variant
// of a named governance origin.
func (c Chain) Origin(name string) (caller, variant uint8, err error) {
	variant, ok := c.Origins[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s on %s", ErrUnknownOrigin, name, c.ID)
	}
	caller, err = c.PalletIndex(c.OriginsPallet)
	if err != nil {
		return 0, 0, err
	}
	return caller, variant, nil
}

// OriginNames returns the custom origin names in variant order.
func (c Chain) OriginNames() []string {
	names := make([]string, 0, len(c.Origins))
	for name := range c.Origins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return c.Origins[names[i]] < c.Origins[names[j]]
	})
	return names
}

// AppsRPC returns the RPC endpoint escaped for use in an explorer link.
func (c Chain) AppsRPC() string {
	return url.QueryEscape(c.RPC)
}

// WithCallIndex returns a copy of the chain where pallet.call resolves to
// index. Tables of the receiver are left untouched.
func (c Chain) WithCallIndex(pallet, call string, index CallIndex) Chain {
	pallets := make(map[string]Pallet, len(c.Pallets))
	for name, p := range c.Pallets {
		pallets[name] = p
	}

	p := pallets[pallet]
	p.Index = index.Pallet
	calls := make(map[string]uint8, len(p.Calls)+1)
	for name, method := range p.Calls {
		calls[name] = method
	}
	calls[call] = index.Method
	p.Calls = calls
	pallets[pallet] = p

	c.Pallets = pallets
	return c
}

// WithOrigins returns a copy of the chain whose origins pallet sits at
// caller and holds the given origin variants.
func (c Chain) WithOrigins(caller uint8, origins map[string]uint8) Chain {
	pallets := make(map[string]Pallet, len(c.Pallets))
	for name, p := range c.Pallets {
		pallets[name] = p
	}
	p := pallets[c.OriginsPallet]
	p.Index = caller
	pallets[c.OriginsPallet] = p
	c.Pallets = pallets

	c.Origins = make(map[string]uint8, len(origins))
	for name, variant := range origins {
		c.Origins[name] = variant
	}
	return c
}
