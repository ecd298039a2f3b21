// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package kusama

import (
	"fmt"

	"github.com/ChainSafe/opengov-cli/chain"
)

const (
	// Name is the network name used on the command line.
	Name = "kusama"

	Relay     chain.ID = "kusama"
	AssetHub  chain.ID = "kusama-asset-hub"
	Encointer chain.ID = "kusama-encointer"
	BridgeHub chain.ID = "kusama-bridge-hub"
	People    chain.ID = "kusama-people"
	Coretime  chain.ID = "kusama-coretime"
)

// Network returns the Kusama network with its system chains. The Fellowship
// is co-located on the relay chain.
func Network() chain.Network {
	return chain.Network{
		Name:  Name,
		Relay: relay(),
		Satellites: []chain.Chain{
			satellite(AssetHub, "Kusama Asset Hub", 1000,
				"wss://kusama-asset-hub-rpc.polkadot.io", "asset-hub-kusama"),
			satellite(Encointer, "Encointer", 1001,
				"wss://kusama.api.encointer.org", "encointer-kusama"),
			satellite(BridgeHub, "Kusama Bridge Hub", 1002,
				"wss://kusama-bridge-hub-rpc.polkadot.io", "bridge-hub-kusama"),
			satellite(People, "Kusama People", 1004,
				"wss://kusama-people-rpc.polkadot.io", "people-kusama"),
			satellite(Coretime, "Kusama Coretime", 1005,
				"wss://kusama-coretime-rpc.polkadot.io", "coretime-kusama"),
		},
		FellowshipChain: Relay,
	}
}

func relay() chain.Chain {
	origins := chain.GovernanceOrigins()
	origins["FellowshipInitiates"] = 14
	origins["Fellows"] = 15
	origins["FellowshipExperts"] = 16
	origins["FellowshipMasters"] = 17
	for dan := uint8(1); dan <= 9; dan++ {
		origins[fmt.Sprintf("Fellowship%dDan", dan)] = 17 + dan
	}
	origins["WishForChange"] = 27

	return chain.Chain{
		ID:      Relay,
		Name:    "Kusama Relay Chain",
		Kind:    chain.Relay,
		RPC:     "wss://kusama-rpc.dwellir.com",
		Runtime: "kusama",
		Pallets: map[string]chain.Pallet{
			"System":               {Index: 0, Calls: chain.SystemCalls()},
			"Babe":                 {Index: 1},
			"Timestamp":            {Index: 2},
			"Indices":              {Index: 3},
			"Balances":             {Index: 4},
			"Staking":              {Index: 6},
			"Session":              {Index: 8},
			"Treasury":             {Index: 18},
			"Claims":               {Index: 19},
			"ConvictionVoting":     {Index: 20},
			"Referenda":            {Index: 21, Calls: chain.ReferendaCalls()},
			"FellowshipCollective": {Index: 22},
			"FellowshipReferenda":  {Index: 23, Calls: chain.ReferendaCalls()},
			"Utility":              {Index: 24, Calls: chain.UtilityCalls()},
			"Society":              {Index: 26},
			"Recovery":             {Index: 27},
			"Vesting":              {Index: 28},
			"Scheduler":            {Index: 29},
			"Proxy":                {Index: 30},
			"Multisig":             {Index: 31},
			"Preimage":             {Index: 32, Calls: chain.PreimageCalls()},
			"TransactionPayment":   {Index: 33},
			"Bounties":             {Index: 35},
			"ChildBounties":        {Index: 40},
			"NominationPools":      {Index: 41},
			"Origins":              {Index: 43},
			"Whitelist":            {Index: 44, Calls: chain.WhitelistCalls()},
			"Registrar":            {Index: 70},
			"XcmPallet":            {Index: 99, Calls: chain.XcmCalls()},
		},
		XcmPallet:     "XcmPallet",
		OriginsPallet: "Origins",
		Origins:       origins,
	}
}

func satellite(id chain.ID, name string, paraID uint32, rpc, runtime string) chain.Chain {
	return chain.Chain{
		ID:        id,
		Name:      name,
		Kind:      chain.Satellite,
		ParaID:    paraID,
		RPC:       rpc,
		Runtime:   runtime,
		Pallets:   chain.SystemParachainPallets(),
		XcmPallet: "PolkadotXcm",
	}
}
