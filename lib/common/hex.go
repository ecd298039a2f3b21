// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPrefix is returned when trying to convert a hex-encoded string with no 0x prefix
	ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")
	// ErrInvalidHex is returned when the string contains non hexadecimal characters
	ErrInvalidHex = errors.New("invalid hex")
	// ErrInvalidHashLength is returned when decoded bytes do not fit a hash
	ErrInvalidHashLength = errors.New("invalid hash length")
)

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, fmt.Errorf("%w: %q", ErrNoPrefix, in)
	}
	return TrimmedHexToBytes(in)
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice
// it panics if it cannot decode the string
func MustHexToBytes(in string) []byte {
	b, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return b
}

// TrimmedHexToBytes decodes a hex string after stripping surrounding
// whitespace and an optional 0x prefix.
func TrimmedHexToBytes(in string) ([]byte, error) {
	in = strings.TrimSpace(in)
	in = strings.TrimPrefix(in, "0x")
	b, err := hex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHex, err)
	}
	return b, nil
}

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}
