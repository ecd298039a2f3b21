// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package call

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// New builds pallet.method on the chain with the given arguments encoded
// in order.
func New(c chain.Chain, pallet, method string, args ...interface{}) (RuntimeCall, error) {
	index, err := c.CallIndex(pallet, method)
	if err != nil {
		return RuntimeCall{}, err
	}

	buffer := bytes.NewBuffer(nil)
	encoder := scale.NewEncoder(buffer)
	for i, arg := range args {
		err = encoder.Encode(arg)
		if err != nil {
			return RuntimeCall{}, fmt.Errorf("encoding argument %d of %s.%s: %w", i, pallet, method, err)
		}
	}

	return RuntimeCall{Chain: c, Index: index, Args: buffer.Bytes()}, nil
}

// Remark builds System.remark.
func Remark(c chain.Chain, remark []byte) (RuntimeCall, error) {
	return New(c, "System", "remark", remark)
}

// AuthorizeUpgrade builds System.authorize_upgrade.
func AuthorizeUpgrade(c chain.Chain, codeHash common.Hash) (RuntimeCall, error) {
	return New(c, "System", "authorize_upgrade", codeHash)
}

// NotePreimage builds Preimage.note_preimage.
func NotePreimage(c chain.Chain, preimage []byte) (RuntimeCall, error) {
	return New(c, "Preimage", "note_preimage", preimage)
}

// Submit builds submit on the given referenda pallet, either Referenda or
// FellowshipReferenda.
func Submit(c chain.Chain, pallet string, origin Origin, proposal Lookup,
	enactment DispatchTime) (RuntimeCall, error) {
	return New(c, pallet, "submit", origin, proposal, enactment)
}

// WhitelistCall builds Whitelist.whitelist_call.
func WhitelistCall(c chain.Chain, callHash common.Hash) (RuntimeCall, error) {
	return New(c, "Whitelist", "whitelist_call", callHash)
}

// DispatchWhitelistedCallWithPreimage builds
// Whitelist.dispatch_whitelisted_call_with_preimage around inner.
func DispatchWhitelistedCallWithPreimage(c chain.Chain, inner RuntimeCall) (RuntimeCall, error) {
	if inner.Chain.ID != c.ID {
		return RuntimeCall{}, fmt.Errorf("%w: cannot dispatch %s call on %s", ErrWrongChain, inner.Chain.ID, c.ID)
	}
	return New(c, "Whitelist", "dispatch_whitelisted_call_with_preimage", inner)
}

// ForceBatch builds Utility.force_batch over calls.
func ForceBatch(c chain.Chain, calls []RuntimeCall) (RuntimeCall, error) {
	for _, inner := range calls {
		if inner.Chain.ID != c.ID {
			return RuntimeCall{}, fmt.Errorf("%w: cannot batch %s call on %s", ErrWrongChain, inner.Chain.ID, c.ID)
		}
	}
	return New(c, "Utility", "force_batch", calls)
}
