// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package call

import (
	"github.com/ChainSafe/opengov-cli/lib/common"
)

// CallOrHash holds either the decoded call or, when the call is too large to
// print, only its hash.
type CallOrHash struct {
	Call *RuntimeCall
	Hash *common.Hash
}

// IsHash returns true if only the hash is held.
func (c CallOrHash) IsHash() bool {
	return c.Hash != nil
}

// PrintOutput is a call prepared for display together with its length.
type PrintOutput struct {
	CallOrHash
	Length uint32
}

// CreatePrintOutput returns the hash of the call if it is longer than
// limit bytes, and the call split into index and arguments otherwise. The
// arguments are not decoded: printed calls are built by this package.
func (ci *CallInfo) CreatePrintOutput(limit uint32) (PrintOutput, error) {
	if ci.length > limit {
		hash := ci.hash
		return PrintOutput{
			CallOrHash: CallOrHash{Hash: &hash},
			Length:     ci.length,
		}, nil
	}

	index, err := ci.callIndex()
	if err != nil {
		return PrintOutput{}, err
	}
	decoded := ci.split(index)
	return PrintOutput{
		CallOrHash: CallOrHash{Call: &decoded},
		Length:     ci.length,
	}, nil
}
