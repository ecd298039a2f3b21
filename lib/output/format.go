// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/common"
)

var ErrUnknownOutput = errors.New("unknown output format")

// Format is how calls are printed.
type Format uint8

const (
	// AppsUiLink prints a polkadot.js Apps link decoding the call.
	AppsUiLink Format = iota
	// CallData prints the 0x prefixed call data.
	CallData
)

// ParseFormat parses an output format name, case insensitively. The empty
// string selects AppsUiLink.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "appsuilink", "apps-ui-link":
		return AppsUiLink, nil
	case "calldata", "call-data":
		return CallData, nil
	default:
		return 0, fmt.Errorf("%w: %q, expected calldata or appsuilink", ErrUnknownOutput, s)
	}
}

func (f Format) String() string {
	switch f {
	case AppsUiLink:
		return "appsuilink"
	case CallData:
		return "calldata"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Render returns the printed form of c.
func (f Format) Render(c call.RuntimeCall) string {
	data := common.BytesToHex(c.Bytes())
	if f == CallData {
		return data
	}
	return fmt.Sprintf("https://polkadot.js.org/apps/?rpc=%s#/extrinsics/decode/%s", c.Chain.AppsRPC(), data)
}
