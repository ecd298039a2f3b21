// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package artifact

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/opengov-cli/internal/log"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "artifact"))

// ErrNoSink is returned when writing to a fanout without sinks.
var ErrNoSink = errors.New("no artifact sink configured")

// Fanout writes every artifact to each of its sinks in order.
type Fanout struct {
	sinks    []Sink
	observer Observer
}

// NewFanout returns a sink writing to all of sinks. The observer may be nil.
func NewFanout(observer Observer, sinks ...Sink) *Fanout {
	return &Fanout{
		sinks:    sinks,
		observer: observer,
	}
}

// Write writes data to each sink and stops at the first failure.
func (f *Fanout) Write(ctx context.Context, name string, data []byte) error {
	if len(f.sinks) == 0 {
		return ErrNoSink
	}
	for _, sink := range f.sinks {
		err := sink.Write(ctx, name, data)
		if err != nil {
			return fmt.Errorf("%s sink: %w", sink.Kind(), err)
		}
		if f.observer != nil {
			f.observer.ObserveArtifactWrite(sink.Kind())
		}
	}
	return nil
}
