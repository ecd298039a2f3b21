// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package call

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

var (
	ErrWrongChain = errors.New("wrong chain")
	ErrDecode     = errors.New("cannot decode call")
)

// RuntimeCall is a call of a chain's runtime: the pallet and call index
// followed by the SCALE encoded arguments.
type RuntimeCall struct {
	Chain chain.Chain
	Index chain.CallIndex
	Args  []byte
}

// Encode implements scale.Encodeable. A runtime call is not length prefixed.
func (c RuntimeCall) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(c.Index.Pallet)
	if err != nil {
		return err
	}
	err = encoder.PushByte(c.Index.Method)
	if err != nil {
		return err
	}
	return encoder.Write(c.Args)
}

// Bytes returns the encoded call.
func (c RuntimeCall) Bytes() []byte {
	encoded := make([]byte, 0, 2+len(c.Args))
	encoded = append(encoded, c.Index.Pallet, c.Index.Method)
	return append(encoded, c.Args...)
}

func (c RuntimeCall) String() string {
	return fmt.Sprintf("%s %s(0x%x)", c.Chain.ID, c.Chain.CallName(c.Index), c.Args)
}

// CallInfo is an encoded call bound to the chain it executes on, along with
// its blake2b-256 hash and length. It is immutable once built.
type CallInfo struct {
	chain   chain.Chain
	encoded []byte
	hash    common.Hash
	length  uint32
}

// FromRuntimeCall encodes the call and computes its hash and length.
func FromRuntimeCall(c RuntimeCall) (*CallInfo, error) {
	encoded, err := codec.Encode(c)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", c.Chain.CallName(c.Index), err)
	}
	return FromBytes(encoded, c.Chain), nil
}

// FromBytes wraps an already encoded call of the given chain.
func FromBytes(encoded []byte, c chain.Chain) *CallInfo {
	owned := make([]byte, len(encoded))
	copy(owned, encoded)
	return &CallInfo{
		chain:   c,
		encoded: owned,
		hash:    common.MustBlake2bHash(owned),
		length:  uint32(len(owned)),
	}
}

// Chain returns the chain the call belongs to.
func (ci *CallInfo) Chain() chain.Chain { return ci.chain }

// Encoded returns a copy of the encoded call.
func (ci *CallInfo) Encoded() []byte {
	encoded := make([]byte, len(ci.encoded))
	copy(encoded, ci.encoded)
	return encoded
}

// Hash returns the blake2b-256 hash of the encoded call.
func (ci *CallInfo) Hash() common.Hash { return ci.hash }

// Length returns the byte length of the encoded call.
func (ci *CallInfo) Length() uint32 { return ci.length }

// Lookup returns the preimage reference to this call.
func (ci *CallInfo) Lookup() Lookup {
	return Lookup{Hash: ci.hash, Len: ci.length}
}

// DecodeAs decodes the encoded bytes as a call of the given chain, using the
// layouts of its live metadata when known and its static tables otherwise.
// The whole call, arguments included, must decode without bytes left over.
func (ci *CallInfo) DecodeAs(id chain.ID) (RuntimeCall, error) {
	if ci.chain.ID != id {
		return RuntimeCall{}, fmt.Errorf("%w: call belongs to %s, not %s", ErrWrongChain, ci.chain.ID, id)
	}

	index, err := ci.callIndex()
	if err != nil {
		return RuntimeCall{}, err
	}

	layouts, live := layoutsOf(ci.chain)
	layout, ok := layouts[types.CallIndex{SectionIndex: index.Pallet, MethodIndex: index.Method}]
	if !ok {
		return RuntimeCall{}, missingLayout(ci.chain, index, live)
	}

	reader := bytes.NewReader(ci.encoded[2:])
	_, err = layout.Decode(scale.NewDecoder(reader))
	if err != nil {
		return RuntimeCall{}, fmt.Errorf("%w: arguments of %s: %s", ErrDecode, layout.Name, err)
	}
	if reader.Len() > 0 {
		return RuntimeCall{}, fmt.Errorf("%w: %d bytes left after the arguments of %s",
			ErrDecode, reader.Len(), layout.Name)
	}

	return ci.split(index), nil
}

func (ci *CallInfo) callIndex() (chain.CallIndex, error) {
	if len(ci.encoded) < 2 {
		return chain.CallIndex{}, fmt.Errorf("%w: %d bytes is too short for a call", ErrDecode, len(ci.encoded))
	}
	return chain.CallIndex{Pallet: ci.encoded[0], Method: ci.encoded[1]}, nil
}

// split cuts the encoded call into its index and arguments.
func (ci *CallInfo) split(index chain.CallIndex) RuntimeCall {
	args := make([]byte, len(ci.encoded)-2)
	copy(args, ci.encoded[2:])
	return RuntimeCall{
		Chain: ci.chain,
		Index: index,
		Args:  args,
	}
}
