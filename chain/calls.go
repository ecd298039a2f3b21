// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package chain

// Call tables of the FRAME pallets whose calls the tool emits. They are shared
// by every runtime built from the polkadot-fellows runtimes.

// SystemCalls returns the frame_system call table.
func SystemCalls() map[string]uint8 {
	return map[string]uint8{
		"remark":                           0,
		"set_heap_pages":                   1,
		"set_code":                         2,
		"set_code_without_checks":          3,
		"set_storage":                      4,
		"kill_storage":                     5,
		"kill_prefix":                      6,
		"remark_with_event":                7,
		"authorize_upgrade":                9,
		"authorize_upgrade_without_checks": 10,
		"apply_authorized_upgrade":         11,
	}
}

// PreimageCalls returns the pallet_preimage call table.
func PreimageCalls() map[string]uint8 {
	return map[string]uint8{
		"note_preimage":      0,
		"unnote_preimage":    1,
		"request_preimage":   2,
		"unrequest_preimage": 3,
		"ensure_updated":     4,
	}
}

// ReferendaCalls returns the pallet_referenda call table.
func ReferendaCalls() map[string]uint8 {
	return map[string]uint8{
		"submit":                    0,
		"place_decision_deposit":    1,
		"refund_decision_deposit":   2,
		"cancel":                    3,
		"kill":                      4,
		"nudge_referendum":          5,
		"one_fewer_deciding":        6,
		"refund_submission_deposit": 7,
		"set_metadata":              8,
	}
}

// WhitelistCalls returns the pallet_whitelist call table.
func WhitelistCalls() map[string]uint8 {
	return map[string]uint8{
		"whitelist_call":                          0,
		"remove_whitelisted_call":                 1,
		"dispatch_whitelisted_call":               2,
		"dispatch_whitelisted_call_with_preimage": 3,
	}
}

// UtilityCalls returns the pallet_utility call table.
func UtilityCalls() map[string]uint8 {
	return map[string]uint8{
		"batch":         0,
		"as_derivative": 1,
		"batch_all":     2,
		"dispatch_as":   3,
		"force_batch":   4,
		"with_weight":   5,
	}
}

// XcmCalls returns the pallet_xcm call table.
func XcmCalls() map[string]uint8 {
	return map[string]uint8{
		"send":                                0,
		"teleport_assets":                     1,
		"reserve_transfer_assets":             2,
		"execute":                             3,
		"force_xcm_version":                   4,
		"force_default_xcm_version":           5,
		"force_subscribe_version_notify":      6,
		"force_unsubscribe_version_notify":    7,
		"limited_reserve_transfer_assets":     8,
		"limited_teleport_assets":             9,
		"force_suspension":                    10,
		"transfer_assets":                     11,
		"claim_assets":                        12,
		"transfer_assets_using_type_and_then": 13,
	}
}

// GovernanceOrigins returns the custom origins shared by the Polkadot and
// Kusama relay runtimes.
func GovernanceOrigins() map[string]uint8 {
	return map[string]uint8{
		"StakingAdmin":        0,
		"Treasurer":           1,
		"FellowshipAdmin":     2,
		"GeneralAdmin":        3,
		"AuctionAdmin":        4,
		"LeaseAdmin":          5,
		"ReferendumCanceller": 6,
		"ReferendumKiller":    7,
		"SmallTipper":         8,
		"BigTipper":           9,
		"SmallSpender":        10,
		"MediumSpender":       11,
		"BigSpender":          12,
		"WhitelistedCaller":   13,
	}
}

// SystemParachainPallets returns the pallets every system parachain exposes
// to the tool.
func SystemParachainPallets() map[string]Pallet {
	return map[string]Pallet{
		"System":          {Index: 0, Calls: SystemCalls()},
		"ParachainSystem": {Index: 1},
		"Timestamp":       {Index: 3},
		"Balances":        {Index: 10},
		"PolkadotXcm":     {Index: 31, Calls: XcmCalls()},
		"Utility":         {Index: 40, Calls: UtilityCalls()},
	}
}
