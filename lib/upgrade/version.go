// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package upgrade

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var ErrInvalidVersion = errors.New("invalid runtime version")

const releaseURLFormat = "https://github.com/polkadot-fellows/runtimes/releases/download/" +
	"v%s/%s_runtime-v%d.compact.compressed.wasm"

// Version is a fellowship runtimes release version such as 1.2.3.
type Version struct {
	version *semver.Version
}

// ParseVersion parses s, with or without a leading v.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	version, err := semver.StrictNewVersion(trimmed)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %s", ErrInvalidVersion, s, err)
	}
	if version.Minor() > 999 || version.Patch() > 999 {
		return Version{}, fmt.Errorf("%w: %q: minor and patch must be below 1000", ErrInvalidVersion, s)
	}
	return Version{version: version}, nil
}

// IsZero returns true for the zero Version.
func (v Version) IsZero() bool { return v.version == nil }

// SpecVersion returns the runtime spec_version of the release, for example
// 1002003 for 1.2.3.
func (v Version) SpecVersion() uint64 {
	return v.version.Major()*1_000_000 + v.version.Minor()*1_000 + v.version.Patch()
}

// ReleaseURL returns the download URL of the compressed runtime blob of the
// release.
func (v Version) ReleaseURL(runtime string) string {
	return fmt.Sprintf(releaseURLFormat, v, runtime, v.SpecVersion())
}

func (v Version) String() string {
	if v.version == nil {
		return ""
	}
	return v.version.String()
}
