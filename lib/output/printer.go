// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package output

import (
	"fmt"
	"io"

	"github.com/ChainSafe/opengov-cli/chain"
	"github.com/ChainSafe/opengov-cli/lib/batch"
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/referendum"
	"github.com/fatih/color"
)

// BatchObserver records printed batches.
type BatchObserver interface {
	ObserveBatch(chain string)
}

// Printer writes the calls to submit, for a human to paste into a wallet.
type Printer struct {
	writer     io.Writer
	format     Format
	printBatch bool
	observer   BatchObserver
	warning    *color.Color
}

// NewPrinter returns a printer writing to w. The observer may be nil.
func NewPrinter(w io.Writer, format Format, printBatch bool, observer BatchObserver) *Printer {
	return &Printer{
		writer:     w,
		format:     format,
		printBatch: printBatch,
		observer:   observer,
		warning:    color.New(color.FgYellow),
	}
}

// Deliver prints every call of the pipeline in submission order, followed
// by one batch per chain unless batches are disabled.
func (p *Printer) Deliver(calls *referendum.PossibleCallsToSubmit) error {
	if whitelist := calls.PreimageForWhitelistCall; whitelist != nil {
		if whitelist.IsHash() {
			p.warnf("Preimage for the public whitelist call too large (%d bytes). Not included in batch.\n",
				whitelist.Length)
			p.printf("Submission should have the hash: %s\n", whitelist.Hash)
		} else {
			p.PrintCall("Submit the preimage for the Fellowship referendum:", *whitelist.Call)
		}
	}
	if calls.FellowshipReferendumSubmission != nil {
		p.PrintCall("Open a Fellowship referendum to whitelist the call:", *calls.FellowshipReferendumSubmission)
	}

	public := calls.PreimageForPublicReferendum
	if public.IsHash() {
		p.warnf("Preimage for the public referendum too large (%d bytes). Not included in batch.\n",
			public.Length)
		if calls.Artifact != "" {
			p.printf("A file was created that you can upload in `preimage.note_preimage` in Apps UI: %s\n",
				calls.Artifact)
		}
		p.printf("Submission should have the hash: %s\n", public.Hash)
	} else {
		p.PrintCall("Submit the preimage for the public referendum:", *public.Call)
	}
	p.PrintCall("Open a public referendum to dispatch the call:", calls.PublicReferendumSubmission)

	if !p.printBatch {
		return nil
	}
	return p.PrintBatches(calls.Network, calls.Calls())
}

// PrintBatches prints a Utility.force_batch for each chain with calls.
func (p *Printer) PrintBatches(network chain.Network, calls []call.RuntimeCall) error {
	batches, err := batch.Aggregate(network, calls)
	if err != nil {
		return err
	}
	for _, b := range batches {
		p.PrintCall(fmt.Sprintf("Batch to submit on %s:", b.Chain.Name), b.Call)
		if p.observer != nil {
			p.observer.ObserveBatch(string(b.Chain.ID))
		}
	}
	return nil
}

// PrintCall prints the heading on its own paragraph followed by the call.
func (p *Printer) PrintCall(heading string, c call.RuntimeCall) {
	p.printf("\n%s\n%s\n", heading, p.format.Render(c))
}

func (p *Printer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.writer, format, args...)
}

func (p *Printer) warnf(format string, args ...interface{}) {
	_, _ = fmt.Fprint(p.writer, "\n")
	_, _ = p.warning.Fprintf(p.writer, format, args...)
}
