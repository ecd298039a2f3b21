// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package call

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Origin is an OriginCaller value: the variant of the pallet that defines the
// origin followed by the variant of that pallet's origin enum.
type Origin struct {
	Caller  uint8
	Variant uint8
}

// RootOrigin returns system(Root) for the chain.
func RootOrigin(c chain.Chain) (Origin, error) {
	system, err := c.PalletIndex("System")
	if err != nil {
		return Origin{}, err
	}
	return Origin{Caller: system}, nil
}

// CustomOrigin returns the named custom governance origin of the chain.
func CustomOrigin(c chain.Chain, name string) (Origin, error) {
	caller, variant, err := c.Origin(name)
	if err != nil {
		return Origin{}, err
	}
	return Origin{Caller: caller, Variant: variant}, nil
}

// Encode implements scale.Encodeable.
func (o Origin) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(o.Caller)
	if err != nil {
		return err
	}
	return encoder.PushByte(o.Variant)
}

// ErrNoDispatchTime is returned when encoding an unset enactment moment.
var ErrNoDispatchTime = errors.New("no enactment moment given")

type dispatchKind uint8

const (
	dispatchUnset dispatchKind = iota
	dispatchAt
	dispatchAfter
)

// DispatchTime is the enactment moment of a referendum. The zero value is
// unset and cannot be encoded.
type DispatchTime struct {
	kind  dispatchKind
	Block uint32
}

// At enacts at the given block number.
func At(block uint32) DispatchTime {
	return DispatchTime{kind: dispatchAt, Block: block}
}

// After enacts the given number of blocks after approval.
func After(blocks uint32) DispatchTime {
	return DispatchTime{kind: dispatchAfter, Block: blocks}
}

// IsAfter returns true for a relative enactment moment.
func (d DispatchTime) IsAfter() bool {
	return d.kind == dispatchAfter
}

// IsZero returns true if no enactment moment is set.
func (d DispatchTime) IsZero() bool {
	return d.kind == dispatchUnset
}

// Encode implements scale.Encodeable.
func (d DispatchTime) Encode(encoder scale.Encoder) error {
	if d.IsZero() {
		return ErrNoDispatchTime
	}
	// At is variant 0 and After variant 1 of DispatchTime.
	err := encoder.PushByte(byte(d.kind - dispatchAt))
	if err != nil {
		return err
	}
	return encoder.Encode(d.Block)
}

func (d DispatchTime) String() string {
	switch d.kind {
	case dispatchAt:
		return fmt.Sprintf("At(%d)", d.Block)
	case dispatchAfter:
		return fmt.Sprintf("After(%d)", d.Block)
	default:
		return "unset"
	}
}

const boundedLookup = 2

// Lookup is the Bounded::Lookup reference to a noted preimage.
type Lookup struct {
	Hash common.Hash
	Len  uint32
}

// Encode implements scale.Encodeable.
func (l Lookup) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(boundedLookup)
	if err != nil {
		return err
	}
	err = encoder.Write(l.Hash[:])
	if err != nil {
		return err
	}
	return encoder.Encode(l.Len)
}
