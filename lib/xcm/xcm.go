// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/weight"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var ErrNoRoute = errors.New("no XCM route")

const version = 4

// OriginKind selects the origin a Transact dispatches with.
type OriginKind uint8

const (
	Native OriginKind = iota
	SovereignAccount
	Superuser
	Xcm
)

func (k OriginKind) String() string {
	switch k {
	case Native:
		return "Native"
	case SovereignAccount:
		return "SovereignAccount"
	case Superuser:
		return "Superuser"
	case Xcm:
		return "Xcm"
	default:
		return fmt.Sprintf("OriginKind(%d)", uint8(k))
	}
}

// Location is a relative XCM location. Only parachain junctions are needed.
type Location struct {
	Parents    uint8
	Parachains []uint32
}

// Encode implements scale.Encodeable for a v4 Location.
func (l Location) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(l.Parents)
	if err != nil {
		return err
	}
	// Junctions::Here is variant 0, X1 to X8 follow in order.
	err = encoder.PushByte(byte(len(l.Parachains)))
	if err != nil {
		return err
	}
	for _, id := range l.Parachains {
		const junctionParachain = 0
		err = encoder.PushByte(junctionParachain)
		if err != nil {
			return err
		}
		err = encoder.EncodeUintCompact(*big.NewInt(int64(id)))
		if err != nil {
			return err
		}
	}
	return nil
}

// VersionedLocation wraps a Location as VersionedLocation::V4.
type VersionedLocation struct {
	Location Location
}

// Encode implements scale.Encodeable.
func (v VersionedLocation) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(version)
	if err != nil {
		return err
	}
	return encoder.Encode(v.Location)
}

// Instruction is a single v4 XCM instruction.
type Instruction interface {
	scale.Encodeable
	isInstruction()
}

// UnpaidExecution with an unlimited weight limit and no origin check.
type UnpaidExecution struct{}

func (UnpaidExecution) isInstruction() {}

// Encode implements scale.Encodeable.
func (UnpaidExecution) Encode(encoder scale.Encoder) error {
	const (
		index                = 0x2f
		weightLimitUnlimited = 0
		checkOriginNone      = 0
	)
	return encoder.Write([]byte{index, weightLimitUnlimited, checkOriginNone})
}

// Transact dispatches Call on the destination with the given origin and
// weight budget.
type Transact struct {
	OriginKind          OriginKind
	RequireWeightAtMost weight.Weight
	Call                []byte
}

func (Transact) isInstruction() {}

// Encode implements scale.Encodeable.
func (t Transact) Encode(encoder scale.Encoder) error {
	const index = 0x06
	err := encoder.PushByte(index)
	if err != nil {
		return err
	}
	err = encoder.PushByte(byte(t.OriginKind))
	if err != nil {
		return err
	}
	err = encoder.Encode(t.RequireWeightAtMost)
	if err != nil {
		return err
	}
	// the double encoded call is a length prefixed byte vector
	return encoder.Encode(t.Call)
}

// VersionedXcm wraps a program as VersionedXcm::V4.
type VersionedXcm struct {
	Instructions []Instruction
}

// Encode implements scale.Encodeable.
func (v VersionedXcm) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(version)
	if err != nil {
		return err
	}
	err = encoder.EncodeUintCompact(*big.NewInt(int64(len(v.Instructions))))
	if err != nil {
		return err
	}
	for _, instruction := range v.Instructions {
		err = instruction.Encode(encoder)
		if err != nil {
			return err
		}
	}
	return nil
}

// Destination returns the location of to as seen from from.
func Destination(from, to chain.Chain) (Location, error) {
	switch {
	case from.Kind == chain.Satellite && to.Kind == chain.Relay:
		return Location{Parents: 1}, nil
	case from.Kind == chain.Relay && to.Kind == chain.Satellite:
		return Location{Parachains: []uint32{to.ParaID}}, nil
	case from.Kind == chain.Satellite && to.Kind == chain.Satellite && from.ID != to.ID:
		return Location{Parents: 1, Parachains: []uint32{to.ParaID}}, nil
	default:
		return Location{}, fmt.Errorf("%w: from %s (%s) to %s (%s)",
			ErrNoRoute, from.ID, from.Kind, to.ID, to.Kind)
	}
}

// Envelope builds the send call on from that makes to execute inner with the
// given origin kind and weight, without paying for execution.
func Envelope(from, to chain.Chain, inner []byte, w weight.Weight, kind OriginKind) (call.RuntimeCall, error) {
	dest, err := Destination(from, to)
	if err != nil {
		return call.RuntimeCall{}, err
	}

	message := VersionedXcm{Instructions: []Instruction{
		UnpaidExecution{},
		Transact{OriginKind: kind, RequireWeightAtMost: w, Call: inner},
	}}
	return call.New(from, from.XcmPallet, "send", VersionedLocation{Location: dest}, message)
}
