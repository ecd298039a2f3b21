// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package output

import (
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/common"
	"github.com/ChainSafe/opengov-cli/lib/referendum"
	"github.com/qdm12/gotree"
)

// Tree returns the pipeline as a tree of its steps, each with the call it
// submits, the call hash and length.
func Tree(calls *referendum.PossibleCallsToSubmit) *gotree.Node {
	root := gotree.New("%s %s pipeline", calls.Network.Name, calls.Path)

	if calls.PreimageForWhitelistCall != nil {
		appendPrintOutput(root, "Fellowship preimage", *calls.PreimageForWhitelistCall)
	}
	if calls.FellowshipReferendumSubmission != nil {
		appendCall(root, "Fellowship referendum", *calls.FellowshipReferendumSubmission)
	}
	appendPrintOutput(root, "Public preimage", calls.PreimageForPublicReferendum)
	appendCall(root, "Public referendum", calls.PublicReferendumSubmission)
	return root
}

func appendPrintOutput(parent *gotree.Node, step string, output call.PrintOutput) {
	if !output.IsHash() {
		appendCall(parent, step, *output.Call)
		return
	}
	node := parent.Appendf("%s: too large to print", step)
	node.Appendf("Hash: %s", output.Hash)
	node.Appendf("Length: %d bytes", output.Length)
}

func appendCall(parent *gotree.Node, step string, c call.RuntimeCall) {
	encoded := c.Bytes()
	node := parent.Appendf("%s: %s on %s", step, c.Chain.CallName(c.Index), c.Chain.ID)
	node.Appendf("Hash: %s", common.MustBlake2bHash(encoded))
	node.Appendf("Length: %d bytes", len(encoded))
}
