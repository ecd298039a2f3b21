// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package referendum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/common"
	"github.com/ChainSafe/opengov-cli/lib/weight"
	"github.com/ChainSafe/opengov-cli/lib/xcm"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "referendum"))

const fellowsOrigin = "Fellows"

// WeightEstimator returns the weight a call needs on its chain.
type WeightEstimator interface {
	TransactWeightNeeded(ctx context.Context, c *call.CallInfo, fallback weight.Weight) weight.Weight
}

// ArtifactSink stores a build artifact for out of band use.
type ArtifactSink interface {
	Write(ctx context.Context, name string, data []byte) error
}

// Observer records pipeline builds.
type Observer interface {
	ObserveBuild(network, path string)
	ObserveOversizedPreimage(chain string)
}

// Dependencies are the collaborators of Generate. Any of them may be nil:
// the fallback weight is used without an estimator and oversized preimages
// are not written without a sink. Zero Limits mean weight.DefaultLimits.
type Dependencies struct {
	Estimator WeightEstimator
	Sink      ArtifactSink
	Observer  Observer
	Limits    weight.Limits
}

// PossibleCallsToSubmit is the result of a pipeline build. The Fellowship
// fields are only set on the whitelisted caller path.
type PossibleCallsToSubmit struct {
	Network chain.Network
	Path    Path

	PreimageForWhitelistCall       *call.PrintOutput
	FellowshipReferendumSubmission *call.RuntimeCall
	PreimageForPublicReferendum    call.PrintOutput
	PublicReferendumSubmission     call.RuntimeCall

	// Artifact names the file holding the public referendum preimage when it
	// was too large to print.
	Artifact string
}

// Calls returns the calls to submit in order, leaving out preimages that are
// only printed as their hash.
func (p *PossibleCallsToSubmit) Calls() []call.RuntimeCall {
	var calls []call.RuntimeCall
	if p.PreimageForWhitelistCall != nil && !p.PreimageForWhitelistCall.IsHash() {
		calls = append(calls, *p.PreimageForWhitelistCall.Call)
	}
	if p.FellowshipReferendumSubmission != nil {
		calls = append(calls, *p.FellowshipReferendumSubmission)
	}
	if !p.PreimageForPublicReferendum.IsHash() {
		calls = append(calls, *p.PreimageForPublicReferendum.Call)
	}
	return append(calls, p.PublicReferendumSubmission)
}

// Generate builds every call needed to take the proposal through the
// authorization path of its track. Either the whole pipeline is returned or
// an error.
func Generate(ctx context.Context, details ProposalDetails, deps Dependencies) (*PossibleCallsToSubmit, error) {
	err := details.Network.Validate()
	if err != nil {
		return nil, err
	}
	if details.Track.IsZero() {
		return nil, fmt.Errorf("%w: no track given", ErrUnknownTrack)
	}
	if details.Dispatch.IsZero() {
		return nil, call.ErrNoDispatchTime
	}

	path := PathFor(details.Track)
	logger.Debugf("building %s pipeline for %s on %s", path, details.Track, details.Network.Name)

	var calls *PossibleCallsToSubmit
	switch path {
	case WhitelistedCallerPath:
		calls, err = whitelistedCaller(ctx, details, deps)
	default:
		calls, err = direct(ctx, details, deps)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s pipeline: %w", path, err)
	}

	calls.Network = details.Network
	calls.Path = path
	if deps.Observer != nil {
		deps.Observer.ObserveBuild(details.Network.Name, path.String())
	}
	return calls, nil
}

// direct submits the proposal itself as a public referendum.
func direct(ctx context.Context, details ProposalDetails, deps Dependencies) (*PossibleCallsToSubmit, error) {
	relay := details.Network.Relay
	proposal := call.FromBytes(details.Proposal, relay)

	origin, err := trackOrigin(relay, details.Track)
	if err != nil {
		return nil, err
	}

	notePreimage, err := callInfo(call.NotePreimage(relay, details.Proposal))
	if err != nil {
		return nil, err
	}
	submission, err := call.Submit(relay, "Referenda", origin, proposal.Lookup(), details.Dispatch)
	if err != nil {
		return nil, err
	}

	preimage, artifact, err := printPreimage(ctx, details, deps, notePreimage, proposal)
	if err != nil {
		return nil, err
	}

	return &PossibleCallsToSubmit{
		PreimageForPublicReferendum: preimage,
		PublicReferendumSubmission:  submission,
		Artifact:                    artifact,
	}, nil
}

// whitelistedCaller has the Fellowship whitelist the proposal hash and then
// submits a public referendum dispatching the whitelisted proposal.
func whitelistedCaller(ctx context.Context, details ProposalDetails,
	deps Dependencies) (*PossibleCallsToSubmit, error) {
	network := details.Network
	relay := network.Relay
	proposal := call.FromBytes(details.Proposal, relay)

	// The proposal must be a call of this relay chain to be dispatched.
	proposalCall, err := proposal.DecodeAs(relay.ID)
	if err != nil {
		return nil, err
	}

	whitelist, err := callInfo(call.WhitelistCall(relay, proposal.Hash()))
	if err != nil {
		return nil, err
	}

	fellowshipChain, err := network.Fellowship()
	if err != nil {
		return nil, err
	}
	// What the Fellowship votes on: the whitelist call itself, or an XCM
	// message carrying it to the relay chain.
	fellowshipProposal := whitelist
	if !network.FellowshipColocated() {
		w := transactWeight(ctx, details, deps, whitelist)
		fellowshipProposal, err = callInfo(xcm.Envelope(fellowshipChain, relay, whitelist.Encoded(), w, xcm.Xcm))
		if err != nil {
			return nil, err
		}
	}

	whitelistPreimage, err := callInfo(call.NotePreimage(fellowshipChain, fellowshipProposal.Encoded()))
	if err != nil {
		return nil, err
	}
	fellows, err := call.CustomOrigin(fellowshipChain, fellowsOrigin)
	if err != nil {
		return nil, err
	}
	fellowshipSubmission, err := call.Submit(fellowshipChain, "FellowshipReferenda", fellows,
		fellowshipProposal.Lookup(), call.After(FellowshipEnactmentDelay))
	if err != nil {
		return nil, err
	}

	dispatch, err := callInfo(call.DispatchWhitelistedCallWithPreimage(relay, proposalCall))
	if err != nil {
		return nil, err
	}
	dispatchPreimage, err := callInfo(call.NotePreimage(relay, dispatch.Encoded()))
	if err != nil {
		return nil, err
	}
	origin, err := trackOrigin(relay, details.Track)
	if err != nil {
		return nil, err
	}
	publicSubmission, err := call.Submit(relay, "Referenda", origin, dispatch.Lookup(), details.Dispatch)
	if err != nil {
		return nil, err
	}

	whitelistPrint, err := whitelistPreimage.CreatePrintOutput(details.OutputLenLimit)
	if err != nil {
		return nil, err
	}
	if whitelistPrint.IsHash() {
		observeOversized(deps, fellowshipChain)
	}
	publicPrint, artifact, err := printPreimage(ctx, details, deps, dispatchPreimage, dispatch)
	if err != nil {
		return nil, err
	}

	return &PossibleCallsToSubmit{
		PreimageForWhitelistCall:       &whitelistPrint,
		FellowshipReferendumSubmission: &fellowshipSubmission,
		PreimageForPublicReferendum:    publicPrint,
		PublicReferendumSubmission:     publicSubmission,
		Artifact:                       artifact,
	}, nil
}

// transactWeight returns the weight for executing c over XCM.
func transactWeight(ctx context.Context, details ProposalDetails, deps Dependencies,
	c *call.CallInfo) weight.Weight {
	if details.TransactWeightOverride != nil {
		return *details.TransactWeightOverride
	}
	needed := weight.Fallback
	if deps.Estimator != nil {
		needed = deps.Estimator.TransactWeightNeeded(ctx, c, weight.Fallback)
	}
	limits := deps.Limits
	if limits == (weight.Limits{}) {
		limits = weight.DefaultLimits
	}
	return weight.SafetyMargin(needed, limits)
}

// printPreimage prepares the public referendum preimage for printing and,
// if it is too large, writes the noted bytes to the artifact sink.
func printPreimage(ctx context.Context, details ProposalDetails, deps Dependencies,
	notePreimage, noted *call.CallInfo) (call.PrintOutput, string, error) {
	output, err := notePreimage.CreatePrintOutput(details.OutputLenLimit)
	if err != nil {
		return call.PrintOutput{}, "", err
	}
	if !output.IsHash() {
		return output, "", nil
	}

	observeOversized(deps, details.Network.Relay)
	if deps.Sink == nil {
		logger.Warnf("no artifact sink configured, preimage of %d bytes not written", noted.Length())
		return output, "", nil
	}
	name := ArtifactName(details.Network.Name)
	err = deps.Sink.Write(ctx, name, []byte(common.BytesToHex(noted.Encoded())))
	if err != nil {
		return call.PrintOutput{}, "", fmt.Errorf("writing artifact %s: %w", name, err)
	}
	logger.Infof("preimage of %d bytes written to %s", noted.Length(), name)
	return output, name, nil
}

func trackOrigin(relay chain.Chain, track Track) (call.Origin, error) {
	if track.IsRoot() {
		return call.RootOrigin(relay)
	}
	origin, err := call.CustomOrigin(relay, track.Origin())
	if errors.Is(err, chain.ErrUnknownOrigin) {
		return call.Origin{}, fmt.Errorf("%w: %s is not available on %s", ErrUnknownTrack, track, relay.ID)
	}
	return origin, err
}

func callInfo(c call.RuntimeCall, err error) (*call.CallInfo, error) {
	if err != nil {
		return nil, err
	}
	return call.FromRuntimeCall(c)
}

func observeOversized(deps Dependencies, c chain.Chain) {
	if deps.Observer != nil {
		deps.Observer.ObserveOversizedPreimage(string(c.ID))
	}
}
