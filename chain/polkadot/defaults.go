// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package polkadot

import (
	"github.com/ChainSafe/opengov-cli/chain"
)

const (
	// Name is the network name used on the command line.
	Name = "polkadot"

	Relay       chain.ID = "polkadot"
	AssetHub    chain.ID = "polkadot-asset-hub"
	Collectives chain.ID = "polkadot-collectives"
	BridgeHub   chain.ID = "polkadot-bridge-hub"
	People      chain.ID = "polkadot-people"
	Coretime    chain.ID = "polkadot-coretime"
)

// Network returns the Polkadot network with its system chains. The
// Fellowship lives on the Collectives parachain.
func Network() chain.Network {
	return chain.Network{
		Name:  Name,
		Relay: relay(),
		Satellites: []chain.Chain{
			satellite(AssetHub, "Polkadot Asset Hub", 1000,
				"wss://polkadot-asset-hub-rpc.polkadot.io", "asset-hub-polkadot"),
			collectives(),
			satellite(BridgeHub, "Polkadot Bridge Hub", 1002,
				"wss://polkadot-bridge-hub-rpc.polkadot.io", "bridge-hub-polkadot"),
			satellite(People, "Polkadot People", 1004,
				"wss://polkadot-people-rpc.polkadot.io", "people-polkadot"),
			satellite(Coretime, "Polkadot Coretime", 1005,
				"wss://polkadot-coretime-rpc.polkadot.io", "coretime-polkadot"),
		},
		FellowshipChain: Collectives,
	}
}

func relay() chain.Chain {
	origins := chain.GovernanceOrigins()
	origins["WishForChange"] = 14

	return chain.Chain{
		ID:      Relay,
		Name:    "Polkadot Relay Chain",
		Kind:    chain.Relay,
		RPC:     "wss://polkadot-rpc.dwellir.com",
		Runtime: "polkadot",
		Pallets: map[string]chain.Pallet{
			"System":             {Index: 0, Calls: chain.SystemCalls()},
			"Scheduler":          {Index: 1},
			"Babe":               {Index: 2},
			"Timestamp":          {Index: 3},
			"Indices":            {Index: 4},
			"Balances":           {Index: 5},
			"Staking":            {Index: 7},
			"Session":            {Index: 9},
			"Preimage":           {Index: 10, Calls: chain.PreimageCalls()},
			"Treasury":           {Index: 19},
			"ConvictionVoting":   {Index: 20},
			"Referenda":          {Index: 21, Calls: chain.ReferendaCalls()},
			"Origins":            {Index: 22},
			"Whitelist":          {Index: 23, Calls: chain.WhitelistCalls()},
			"Claims":             {Index: 24},
			"Vesting":            {Index: 25},
			"Utility":            {Index: 26, Calls: chain.UtilityCalls()},
			"Proxy":              {Index: 29},
			"Multisig":           {Index: 30},
			"TransactionPayment": {Index: 32},
			"Bounties":           {Index: 34},
			"ChildBounties":      {Index: 38},
			"NominationPools":    {Index: 39},
			"Paras":              {Index: 56},
			"Hrmp":               {Index: 60},
			"Registrar":          {Index: 70},
			"Slots":              {Index: 71},
			"Auctions":           {Index: 72},
			"Crowdloan":          {Index: 73},
			"Coretime":           {Index: 74},
			"XcmPallet":          {Index: 99, Calls: chain.XcmCalls()},
			"MessageQueue":       {Index: 100},
		},
		XcmPallet:     "XcmPallet",
		OriginsPallet: "Origins",
		Origins:       origins,
	}
}

func collectives() chain.Chain {
	c := satellite(Collectives, "Polkadot Collectives", 1001,
		"wss://polkadot-collectives-rpc.polkadot.io", "collectives-polkadot")
	c.Pallets["Preimage"] = chain.Pallet{Index: 43, Calls: chain.PreimageCalls()}
	c.Pallets["Scheduler"] = chain.Pallet{Index: 44}
	c.Pallets["FellowshipCollective"] = chain.Pallet{Index: 60}
	c.Pallets["FellowshipReferenda"] = chain.Pallet{Index: 61, Calls: chain.ReferendaCalls()}
	c.Pallets["FellowshipOrigins"] = chain.Pallet{Index: 62}
	c.OriginsPallet = "FellowshipOrigins"
	c.Origins = map[string]uint8{
		"Members":        0,
		"Fellowship2Dan": 1,
		"Fellows":        2,
		"Architects":     3,
		"Fellowship5Dan": 4,
		"Fellowship6Dan": 5,
		"Masters":        6,
	}
	return c
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
