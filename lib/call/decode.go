// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package call

import (
	"fmt"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/centrifuge/go-substrate-rpc-client/v4/registry"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// maxBytesLen bounds a decoded byte vector. It is above the block length
// limit of both relay chains.
const maxBytesLen = 16 << 20

// bytesDecoder decodes a Vec<u8> in a single read.
type bytesDecoder struct{}

func (*bytesDecoder) Decode(decoder *scale.Decoder) (any, error) {
	length, err := decoder.DecodeUintCompact()
	if err != nil {
		return nil, fmt.Errorf("reading byte vector length: %w", err)
	}
	if !length.IsUint64() || length.Uint64() > maxBytesLen {
		return nil, fmt.Errorf("byte vector length %s exceeds %d", length, maxBytesLen)
	}

	value := make([]byte, length.Uint64())
	if len(value) == 0 {
		return value, nil
	}
	err = decoder.Read(value)
	if err != nil {
		return nil, fmt.Errorf("reading %d bytes: %w", len(value), err)
	}
	return value, nil
}

// nestedCallDecoder decodes a runtime call argument using the layouts of
// the enclosing chain.
type nestedCallDecoder struct {
	layouts registry.CallRegistry
}

func (n *nestedCallDecoder) Decode(decoder *scale.Decoder) (any, error) {
	pallet, err := decoder.ReadOneByte()
	if err != nil {
		return nil, fmt.Errorf("reading nested pallet index: %w", err)
	}
	method, err := decoder.ReadOneByte()
	if err != nil {
		return nil, fmt.Errorf("reading nested call index: %w", err)
	}

	layout, ok := n.layouts[types.CallIndex{SectionIndex: pallet, MethodIndex: method}]
	if !ok {
		return nil, fmt.Errorf("no layout for nested call %d.%d", pallet, method)
	}
	fields, err := layout.Decode(decoder)
	if err != nil {
		return nil, fmt.Errorf("decoding nested %s: %w", layout.Name, err)
	}
	return fields, nil
}

var (
	u16Decoder     = &registry.ValueDecoder[types.U16]{}
	u32Decoder     = &registry.ValueDecoder[types.U32]{}
	u64Decoder     = &registry.ValueDecoder[types.U64]{}
	compactDecoder = &registry.ValueDecoder[types.UCompact]{}
	hashDecoder    = &registry.ValueDecoder[types.H256]{}
	vecDecoder     = &bytesDecoder{}
	noop           = &registry.NoopDecoder{}
)

func field(name string, decoder registry.FieldDecoder) *registry.Field {
	return &registry.Field{Name: name, FieldDecoder: decoder}
}

func composite(name string, fields ...*registry.Field) *registry.CompositeDecoder {
	return &registry.CompositeDecoder{FieldName: name, Fields: fields}
}

func weightDecoder() registry.FieldDecoder {
	return composite("Weight",
		field("ref_time", compactDecoder),
		field("proof_size", compactDecoder))
}

// originCallerDecoder decodes the OriginCaller variants known from the
// static tables: the system origins and the custom governance origins.
func originCallerDecoder(c chain.Chain) registry.FieldDecoder {
	variants := map[byte]registry.FieldDecoder{}
	if system, err := c.PalletIndex("System"); err == nil {
		variants[system] = &registry.VariantDecoder{FieldDecoderMap: map[byte]registry.FieldDecoder{
			0: noop,
			1: &registry.ArrayDecoder{Length: 32, ItemDecoder: &registry.ValueDecoder[types.U8]{}},
			2: noop,
		}}
	}
	if caller, err := c.PalletIndex(c.OriginsPallet); err == nil && len(c.Origins) > 0 {
		origins := make(map[byte]registry.FieldDecoder, len(c.Origins))
		for _, variant := range c.Origins {
			origins[variant] = noop
		}
		variants[caller] = &registry.VariantDecoder{FieldDecoderMap: origins}
	}
	return &registry.VariantDecoder{FieldDecoderMap: variants}
}

func boundedCallDecoder() registry.FieldDecoder {
	return &registry.VariantDecoder{FieldDecoderMap: map[byte]registry.FieldDecoder{
		0: composite("Legacy", field("hash", hashDecoder)),
		1: vecDecoder,
		2: composite("Lookup", field("hash", hashDecoder), field("len", u32Decoder)),
	}}
}

func dispatchTimeDecoder() registry.FieldDecoder {
	return &registry.VariantDecoder{FieldDecoderMap: map[byte]registry.FieldDecoder{
		0: u32Decoder,
		1: u32Decoder,
	}}
}

// argumentLayouts returns, per pallet and call, the argument fields of the
// calls in the static tables.
func argumentLayouts(c chain.Chain, nested registry.FieldDecoder) map[string]map[string][]*registry.Field {
	calls := &registry.SliceDecoder{ItemDecoder: nested}
	origin := originCallerDecoder(c)

	referenda := map[string][]*registry.Field{
		"submit": {
			field("proposal_origin", origin),
			field("proposal", boundedCallDecoder()),
			field("enactment_moment", dispatchTimeDecoder()),
		},
		"place_decision_deposit":    {field("index", u32Decoder)},
		"refund_decision_deposit":   {field("index", u32Decoder)},
		"cancel":                    {field("index", u32Decoder)},
		"kill":                      {field("index", u32Decoder)},
		"nudge_referendum":          {field("index", u32Decoder)},
		"one_fewer_deciding":        {field("track", u16Decoder)},
		"refund_submission_deposit": {field("index", u32Decoder)},
		"set_metadata": {
			field("index", u32Decoder),
			field("maybe_hash", &registry.VariantDecoder{FieldDecoderMap: map[byte]registry.FieldDecoder{
				0: noop,
				1: hashDecoder,
			}}),
		},
	}

	return map[string]map[string][]*registry.Field{
		"System": {
			"remark":                  {field("remark", vecDecoder)},
			"set_heap_pages":          {field("pages", u64Decoder)},
			"set_code":                {field("code", vecDecoder)},
			"set_code_without_checks": {field("code", vecDecoder)},
			"set_storage": {field("items", &registry.SliceDecoder{
				ItemDecoder: composite("KeyValue", field("key", vecDecoder), field("value", vecDecoder)),
			})},
			"kill_storage":                     {field("keys", &registry.SliceDecoder{ItemDecoder: vecDecoder})},
			"kill_prefix":                      {field("prefix", vecDecoder), field("subkeys", u32Decoder)},
			"remark_with_event":                {field("remark", vecDecoder)},
			"authorize_upgrade":                {field("code_hash", hashDecoder)},
			"authorize_upgrade_without_checks": {field("code_hash", hashDecoder)},
			"apply_authorized_upgrade":         {field("code", vecDecoder)},
		},
		"Preimage": {
			"note_preimage":      {field("bytes", vecDecoder)},
			"unnote_preimage":    {field("hash", hashDecoder)},
			"request_preimage":   {field("hash", hashDecoder)},
			"unrequest_preimage": {field("hash", hashDecoder)},
			"ensure_updated":     {field("hashes", &registry.SliceDecoder{ItemDecoder: hashDecoder})},
		},
		"Referenda":           referenda,
		"FellowshipReferenda": referenda,
		"Whitelist": {
			"whitelist_call":          {field("call_hash", hashDecoder)},
			"remove_whitelisted_call": {field("call_hash", hashDecoder)},
			"dispatch_whitelisted_call": {
				field("call_hash", hashDecoder),
				field("call_encoded_len", u32Decoder),
				field("call_weight_witness", weightDecoder()),
			},
			"dispatch_whitelisted_call_with_preimage": {field("call", nested)},
		},
		"Utility": {
			"batch":         {field("calls", calls)},
			"as_derivative": {field("index", u16Decoder), field("call", nested)},
			"batch_all":     {field("calls", calls)},
			"dispatch_as":   {field("as_origin", origin), field("call", nested)},
			"force_batch":   {field("calls", calls)},
			"with_weight":   {field("call", nested), field("weight", weightDecoder())},
		},
	}
}

// staticLayouts builds the call layouts of the chain from its static
// tables. Calls without a known argument layout are left out.
func staticLayouts(c chain.Chain) registry.CallRegistry {
	layouts := make(registry.CallRegistry)
	arguments := argumentLayouts(c, &nestedCallDecoder{layouts: layouts})

	for palletName, pallet := range c.Pallets {
		for callName, method := range pallet.Calls {
			fields, ok := arguments[palletName][callName]
			if !ok {
				continue
			}
			index := types.CallIndex{SectionIndex: pallet.Index, MethodIndex: method}
			layouts[index] = &registry.TypeDecoder{
				Name:   palletName + "." + callName,
				Fields: fields,
			}
		}
	}
	return layouts
}

// layoutsOf returns the live layouts of the chain, or its static ones.
func layoutsOf(c chain.Chain) (layouts registry.CallRegistry, live bool) {
	if c.Decoders != nil {
		return c.Decoders, true
	}
	return staticLayouts(c), false
}

// missingLayout explains why no layout exists for index on the chain.
func missingLayout(c chain.Chain, index chain.CallIndex, live bool) error {
	if live {
		return fmt.Errorf("%w: no call %d.%d in the metadata of %s", ErrDecode, index.Pallet, index.Method, c.ID)
	}

	palletName, pallet, ok := c.PalletByIndex(index.Pallet)
	if !ok {
		return fmt.Errorf("%w: no pallet with index %d on %s", ErrDecode, index.Pallet, c.ID)
	}
	if pallet.Calls == nil {
		return fmt.Errorf("%w: calls of %s on %s can only be decoded with live metadata",
			ErrDecode, palletName, c.ID)
	}
	if !hasMethod(pallet.Calls, index.Method) {
		return fmt.Errorf("%w: no call with index %d in %s on %s", ErrDecode, index.Method, palletName, c.ID)
	}
	return fmt.Errorf("%w: %s on %s can only be decoded with live metadata",
		ErrDecode, c.CallName(index), c.ID)
}

func hasMethod(calls map[string]uint8, method uint8) bool {
	for _, index := range calls {
		if index == method {
			return true
		}
	}
	return false
}
