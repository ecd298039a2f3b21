// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

const (
	// Trace is the trace (trce) level.
	Trace Level = iota
	// Debug is the debug (dbug) level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the error (eror) level.
	Error
	// Critical is the critical (crit) level.
	Critical
)

// levelNames holds, per level, its short tag, its long name and the colour
// of its tag.
var levelNames = [...]struct {
	short  string
	long   string
	colour color.Attribute
}{
	Trace:    {short: "TRCE", long: "TRACE", colour: color.FgHiCyan},
	Debug:    {short: "DBUG", long: "DEBUG", colour: color.FgHiBlue},
	Info:     {short: "INFO", long: "INFO", colour: color.FgCyan},
	Warn:     {short: "WARN", long: "WARNING", colour: color.FgYellow},
	Error:    {short: "EROR", long: "ERROR", colour: color.FgHiRed},
	Critical: {short: "CRIT", long: "CRITICAL", colour: color.FgRed},
}

func (level Level) String() (s string) {
	if int(level) >= len(levelNames) {
		return "???"
	}
	return levelNames[level].short
}

// ColouredString returns the corresponding coloured
// string for the level.
func (level Level) ColouredString() (s string) {
	attribute := color.Reset
	if int(level) < len(levelNames) {
		attribute = levelNames[level].colour
	}
	return color.New(attribute).Sprint(level.String())
}

// ErrLevelNotRecognised is an error returned if the level string is
// not recognised by the ParseLevel function.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a string into a level, and returns an
// error if it fails. Both the short forms (dbug, eror) and the
// long forms (debug, error) are accepted.
func ParseLevel(s string) (level Level, err error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, names := range levelNames {
		if upper == names.short || upper == names.long {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
