// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package referendum

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/common"
	"github.com/ChainSafe/opengov-cli/lib/weight"
)

var (
	ErrReadProposal        = errors.New("cannot read proposal")
	ErrConflictingDispatch = errors.New("enactment can be given either at a block or after a number of blocks, not both")
	// ErrUnknownNetwork is returned for networks missing from the registry.
	ErrUnknownNetwork = chain.ErrUnknownNetwork
)

const (
	// DefaultOutputLenLimit is the length above which preimages are printed
	// as their hash.
	DefaultOutputLenLimit uint32 = 1000
	// DefaultEnactmentDelay applies when no enactment moment is requested.
	DefaultEnactmentDelay uint32 = 10
	// FellowshipEnactmentDelay is the fixed delay of Fellowship referenda.
	FellowshipEnactmentDelay uint32 = 10
)

// ProposalDetails is everything needed to build a proposal pipeline.
type ProposalDetails struct {
	Proposal       []byte
	Network        chain.Network
	Track          Track
	Dispatch       call.DispatchTime
	OutputLenLimit uint32
	// TransactWeightOverride skips the weight query and safety margin.
	TransactWeightOverride *weight.Weight
}

// ReadProposal returns the call data given either inline as 0x prefixed hex
// or as the path of a file holding it.
func ReadProposal(proposal string) ([]byte, error) {
	if strings.HasPrefix(proposal, "0x") {
		return common.HexToBytes(proposal)
	}

	content, err := os.ReadFile(proposal)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadProposal, err)
	}

	data, err := common.TrimmedHexToBytes(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: file %s: %w", ErrReadProposal, proposal, err)
	}
	return data, nil
}

// ParseDispatch returns the enactment moment from the optional at and after
// block numbers, defaulting to After(10).
func ParseDispatch(at, after *uint32) (call.DispatchTime, error) {
	switch {
	case at != nil && after != nil:
		return call.DispatchTime{}, ErrConflictingDispatch
	case at != nil:
		return call.At(*at), nil
	case after != nil:
		return call.After(*after), nil
	default:
		return call.After(DefaultEnactmentDelay), nil
	}
}

// ArtifactName is the file name of the public referendum preimage written
// when it is too large to print.
func ArtifactName(network string) string {
	return strings.ToLower(network) + "_relay_public_referendum_preimage_to_note.call"
}
