// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ChainSafe/opengov-cli/internal/log"
)

var ErrLogLevelIntegerOutOfRange = errors.New("log level integer can only be between 0 and 5 included")

// ParseLogLevel parses a log level given either as an integer from 0
// (trace) to 5 (critical) or as a level name.
func ParseLogLevel(s string) (level log.Level, err error) {
	levelInt, err := strconv.Atoi(s)
	if err == nil { // level given as an integer
		if levelInt < 0 || levelInt > 5 {
			return 0, fmt.Errorf("%w: log level given: %d", ErrLogLevelIntegerOutOfRange, levelInt)
		}
		return log.Level(levelInt), nil
	}

	level, err = log.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse log level string: %w", err)
	}
	return level, nil
}
