// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/chain/kusama"
	"github.com/ChainSafe/opengov-cli/chain/polkadot"
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// utilityMetadataHex is V14 metadata with a single Utility pallet at index
// 40 whose only call is force_batch at index 4.
const utilityMetadataHex = "0x6d657461" + "0e" +
	// lookup: one variant type
	"04" + "00" + "00" + "00" + "01" + "04" + "2c" + "666f7263655f6261746368" + "00" + "04" + "00" + "00" +
	// pallets: Utility with calls of type 0
	"04" + "1c" + "5574696c697479" + "00" + "01" + "00" + "00" + "00" + "00" + "28" +
	// extrinsic
	"00" + "04" + "00" +
	// runtime type
	"00"

func Test_Decode(t *testing.T) {
	t.Parallel()

	metadata, err := Decode(utilityMetadataHex)
	require.NoError(t, err)

	index, err := metadata.FindCallIndex("Utility.force_batch")
	require.NoError(t, err)
	assert.Equal(t, types.CallIndex{SectionIndex: 40, MethodIndex: 4}, index)

	_, err = Decode("0xzz")
	assert.ErrorIs(t, err, ErrDecodeMetadata)
}

func Test_Apply(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	errTest := errors.New("test error")
	finder := NewMockCallFinder(ctrl)
	finder.EXPECT().FindCallIndex("Utility.force_batch").
		Return(types.CallIndex{SectionIndex: 30, MethodIndex: 4}, nil)
	finder.EXPECT().FindCallIndex("System.remark").
		Return(types.CallIndex{SectionIndex: 0, MethodIndex: 0}, nil)
	finder.EXPECT().FindCallIndex(gomock.Any()).Return(types.CallIndex{}, errTest).AnyTimes()

	relay := polkadot.Network().Relay
	resolved := Apply(relay, finder)

	index, err := resolved.CallIndex("Utility", "force_batch")
	require.NoError(t, err)
	assert.Equal(t, chain.CallIndex{Pallet: 30, Method: 4}, index)
	index, err = resolved.CallIndex("System", "remark")
	require.NoError(t, err)
	assert.Equal(t, chain.CallIndex{Pallet: 0, Method: 0}, index)
	index, err = resolved.CallIndex("Referenda", "submit")
	require.NoError(t, err)
	assert.Equal(t, chain.CallIndex{Pallet: 21, Method: 0}, index)

	// The static chain is left untouched.
	index, err = relay.CallIndex("Utility", "force_batch")
	require.NoError(t, err)
	assert.Equal(t, chain.CallIndex{Pallet: 26, Method: 4}, index)
}

// originsMetadata returns V14 metadata whose OriginCaller holds the system
// origins, the custom origins of an Origins pallet at index 30 and an
// XcmPallet origin of unknown type.
func originsMetadata() *types.Metadata {
	variant := func(name string, index uint8, fields ...types.Si1Field) types.Si1Variant {
		return types.Si1Variant{Name: types.Text(name), Index: types.U8(index), Fields: fields}
	}
	enum := func(path types.Si1Path, variants ...types.Si1Variant) types.Si1Type {
		return types.Si1Type{
			Path: path,
			Def: types.Si1TypeDef{
				IsVariant: true,
				Variant:   types.Si1TypeDefVariant{Variants: variants},
			},
		}
	}

	origin := enum(types.Si1Path{"polkadot_runtime", "governance", "origins", "pallet_custom_origins", "Origin"},
		variant("StakingAdmin", 0),
		variant("Treasurer", 1),
		variant("WhitelistedCaller", 2),
	)
	rawOrigin := enum(types.Si1Path{"frame_support", "dispatch", "RawOrigin"},
		variant("Root", 0),
		variant("None", 2),
	)
	originCaller := enum(types.Si1Path{"polkadot_runtime", "OriginCaller"},
		variant("system", 0, types.Si1Field{Type: types.NewSi1LookupTypeIDFromUInt(1)}),
		variant("Origins", 30, types.Si1Field{Type: types.NewSi1LookupTypeIDFromUInt(0)}),
		variant("XcmPallet", 99, types.Si1Field{Type: types.NewSi1LookupTypeIDFromUInt(9)}),
	)

	v14 := types.MetadataV14{
		Lookup: types.PortableRegistryV14{Types: []types.PortableTypeV14{
			{ID: types.NewSi1LookupTypeIDFromUInt(0), Type: origin},
			{ID: types.NewSi1LookupTypeIDFromUInt(1), Type: rawOrigin},
			{ID: types.NewSi1LookupTypeIDFromUInt(2), Type: originCaller},
		}},
		EfficientLookup: map[int64]*types.Si1Type{0: &origin, 1: &rawOrigin, 2: &originCaller},
	}
	return &types.Metadata{Version: 14, AsMetadataV14: v14}
}

func Test_ApplyOrigins(t *testing.T) {
	t.Parallel()

	relay := polkadot.Network().Relay
	resolved := ApplyOrigins(relay, originsMetadata())

	caller, variant, err := resolved.Origin("WhitelistedCaller")
	require.NoError(t, err)
	assert.Equal(t, uint8(30), caller)
	assert.Equal(t, uint8(2), variant)
	_, _, err = resolved.Origin("WishForChange")
	assert.ErrorIs(t, err, chain.ErrUnknownOrigin)

	// The static chain is left untouched.
	caller, variant, err = relay.Origin("WhitelistedCaller")
	require.NoError(t, err)
	assert.Equal(t, uint8(22), caller)
	assert.Equal(t, uint8(13), variant)

	// Chains whose origins are not in the metadata keep their static ones.
	collectives, err := polkadot.Network().Chain(polkadot.Collectives)
	require.NoError(t, err)
	assert.Equal(t, collectives, ApplyOrigins(collectives, originsMetadata()))
}

func Test_findOrigins_errors(t *testing.T) {
	t.Parallel()

	metadata := originsMetadata()

	_, _, err := findOrigins(metadata, "FellowshipOrigins")
	assert.ErrorIs(t, err, ErrOriginsNotFound)
	assert.EqualError(t, err, "origins not found in metadata: no FellowshipOrigins variant in OriginCaller")

	_, _, err = findOrigins(metadata, "XcmPallet")
	assert.ErrorIs(t, err, ErrOriginsNotFound)
	assert.EqualError(t, err, "origins not found in metadata: XcmPallet origin is not an enum")
}

func Test_ApplyLayouts(t *testing.T) {
	t.Parallel()

	relay := kusama.Network().Relay

	metadata, err := Decode(utilityMetadataHex)
	require.NoError(t, err)
	resolved := ApplyLayouts(relay, metadata)
	require.NotNil(t, resolved.Decoders)
	assert.Equal(t, "Utility.force_batch", resolved.Decoders[types.CallIndex{SectionIndex: 40, MethodIndex: 4}].Name)
	assert.Nil(t, relay.Decoders)

	unsupported := &types.Metadata{Version: 13}
	assert.Nil(t, ApplyLayouts(relay, unsupported).Decoders)
}

func Test_ResolveNetwork(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		network := kusama.Network()
		source := NewMockSource(ctrl)
		source.EXPECT().Metadata(gomock.Any()).Return(utilityMetadataHex, nil)
		source.EXPECT().Close()
		dialer := NewMockDialer(ctrl)
		dialer.EXPECT().Dial(gomock.Any(), network.Relay.RPC).Return(source, nil)

		resolved, err := ResolveNetwork(context.Background(), network, dialer, kusama.Relay)
		require.NoError(t, err)

		index, err := resolved.Relay.CallIndex("Utility", "force_batch")
		require.NoError(t, err)
		assert.Equal(t, chain.CallIndex{Pallet: 40, Method: 4}, index)
		index, err = resolved.Relay.CallIndex("Preimage", "note_preimage")
		require.NoError(t, err)
		assert.Equal(t, chain.CallIndex{Pallet: 32, Method: 0}, index)
		assert.Equal(t, network.Satellites, resolved.Satellites)

		// calls decode against the live layouts only
		_, err = call.FromBytes([]byte{40, 4}, resolved.Relay).DecodeAs(kusama.Relay)
		assert.NoError(t, err)
		_, err = call.FromBytes([]byte{40, 4, 0}, resolved.Relay).DecodeAs(kusama.Relay)
		assert.ErrorIs(t, err, call.ErrDecode)
		_, err = call.FromBytes([]byte{0, 0, 0}, resolved.Relay).DecodeAs(kusama.Relay)
		assert.ErrorIs(t, err, call.ErrDecode)
	})

	t.Run("dial_error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		dialer := NewMockDialer(ctrl)
		dialer.EXPECT().Dial(gomock.Any(), "wss://kusama-rpc.dwellir.com").Return(nil, errTest)

		_, err := ResolveNetwork(context.Background(), kusama.Network(), dialer, kusama.Relay)

		assert.ErrorIs(t, err, errTest)
		assert.EqualError(t, err, "dialing wss://kusama-rpc.dwellir.com: test error")
	})

	t.Run("metadata_error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		source := NewMockSource(ctrl)
		source.EXPECT().Metadata(gomock.Any()).Return("", errTest)
		source.EXPECT().Close()
		dialer := NewMockDialer(ctrl)
		dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(source, nil)

		_, err := ResolveNetwork(context.Background(), polkadot.Network(), dialer, polkadot.Collectives)

		assert.ErrorIs(t, err, errTest)
		assert.EqualError(t, err, "fetching metadata of polkadot-collectives: test error")
	})

	t.Run("unknown_chain", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		_, err := ResolveNetwork(context.Background(), polkadot.Network(), NewMockDialer(ctrl), kusama.Relay)

		assert.ErrorIs(t, err, chain.ErrUnknownChain)
		assert.EqualError(t, err, "unknown chain: kusama is not part of polkadot")
	})
}
