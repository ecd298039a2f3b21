// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package weight

import (
	"fmt"
	"math"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Weight is the two dimensional execution budget of a call.
type Weight struct {
	RefTime   uint64
	ProofSize uint64
}

// Fallback is used when the destination chain cannot be queried. It covers
// the cost of typical governance calls such as whitelist_call.
var Fallback = Weight{RefTime: 1_000_000_000, ProofSize: 10_000}

// Encode implements scale.Encodeable, both dimensions are compact encoded.
func (w Weight) Encode(encoder scale.Encoder) error {
	err := encoder.EncodeUintCompact(*new(big.Int).SetUint64(w.RefTime))
	if err != nil {
		return err
	}
	return encoder.EncodeUintCompact(*new(big.Int).SetUint64(w.ProofSize))
}

// Decode implements scale.Decodeable.
func (w *Weight) Decode(decoder scale.Decoder) error {
	refTime, err := decodeCompactUint64(decoder)
	if err != nil {
		return fmt.Errorf("decoding ref time: %w", err)
	}
	proofSize, err := decodeCompactUint64(decoder)
	if err != nil {
		return fmt.Errorf("decoding proof size: %w", err)
	}
	*w = Weight{RefTime: refTime, ProofSize: proofSize}
	return nil
}

func decodeCompactUint64(decoder scale.Decoder) (uint64, error) {
	value, err := decoder.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s overflows uint64", value)
	}
	return value.Uint64(), nil
}

func (w Weight) String() string {
	return fmt.Sprintf("{ref_time: %d, proof_size: %d}", w.RefTime, w.ProofSize)
}

// Limits bound the weight given to a remote Transact.
type Limits struct {
	MaxRefTime   uint64
	MaxProofSize uint64
	MinProofSize uint64
}

// DefaultLimits stay just under the block limits of the relay chains.
var DefaultLimits = Limits{
	MaxRefTime:   2_000_000_000_000 - 1,
	MaxProofSize: 5*1024*1024 - 1,
	MinProofSize: Fallback.ProofSize,
}

// SafetyMargin doubles w so the Transact still succeeds if a runtime upgrade
// lands during the referendum, then clamps it to the limits.
func SafetyMargin(w Weight, limits Limits) Weight {
	margin := Weight{
		RefTime:   saturatingDouble(w.RefTime),
		ProofSize: saturatingDouble(w.ProofSize),
	}
	if margin.RefTime > limits.MaxRefTime {
		margin.RefTime = limits.MaxRefTime
	}
	if margin.ProofSize > limits.MaxProofSize {
		margin.ProofSize = limits.MaxProofSize
	}
	if margin.ProofSize < limits.MinProofSize {
		margin.ProofSize = limits.MinProofSize
	}
	return margin
}

func saturatingDouble(v uint64) uint64 {
	if v > math.MaxUint64/2 {
		return math.MaxUint64
	}
	return 2 * v
}
