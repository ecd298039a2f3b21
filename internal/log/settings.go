// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	colour  *bool
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values for empty fields of the receiver
// settings using the values from the other settings argument.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.colour == nil && other.colour != nil {
		value := *other.colour
		s.colour = &value
	}

	newContext := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kv := range other.context {
		newContext = append(newContext, contextKeyValues{
			key:    kv.key,
			values: append([]string(nil), kv.values...),
		})
	}
	for _, kv := range s.context {
		merged := false
		for i := range newContext {
			if newContext[i].key == kv.key {
				newContext[i].values = append(newContext[i].values, kv.values...)
				merged = true
				break
			}
		}
		if !merged {
			newContext = append(newContext, kv)
		}
	}
	if len(newContext) > 0 {
		s.context = newContext
	}
}

// overrideWith sets the fields of the receiver settings with
// the non-empty fields of the other settings argument.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}
	if other.level != nil {
		value := *other.level
		s.level = &value
	}
	if other.colour != nil {
		value := *other.colour
		s.colour = &value
	}
	if other.context != nil {
		s.context = other.context
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stderr
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.colour == nil {
		colour := true
		s.colour = &colour
	}
}
