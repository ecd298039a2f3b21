// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package referendum

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTrack = errors.New("unknown track")

// Track is the governance origin a referendum is submitted with, either
// Root or one of the custom origins.
type Track struct {
	name   string
	origin string
}

// Root is the unrestricted track.
var Root = Track{name: "root"}

// WhitelistedCaller is the track requiring Fellowship whitelisting first.
var WhitelistedCaller = Track{name: "whitelisted-caller", origin: "WhitelistedCaller"}

var tracks = []Track{
	Root,
	WhitelistedCaller,
	{name: "staking-admin", origin: "StakingAdmin"},
	{name: "treasurer", origin: "Treasurer"},
	{name: "lease-admin", origin: "LeaseAdmin"},
	{name: "fellowship-admin", origin: "FellowshipAdmin"},
	{name: "general-admin", origin: "GeneralAdmin"},
	{name: "auction-admin", origin: "AuctionAdmin"},
	{name: "referendum-killer", origin: "ReferendumKiller"},
	{name: "referendum-canceller", origin: "ReferendumCanceller"},
}

func normalise(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
}

// ParseTrack matches s against the known tracks, ignoring case and hyphens.
func ParseTrack(s string) (Track, error) {
	normalised := normalise(s)
	for _, track := range tracks {
		if normalise(track.name) == normalised {
			return track, nil
		}
	}
	return Track{}, fmt.Errorf("%w: %q, expected one of %s", ErrUnknownTrack, s, strings.Join(TrackNames(), ", "))
}

// TrackNames lists the known tracks.
func TrackNames() []string {
	names := make([]string, len(tracks))
	for i, track := range tracks {
		names[i] = track.name
	}
	return names
}

// IsRoot returns true for the Root track.
func (t Track) IsRoot() bool { return t == Root }

// IsZero returns true for the zero Track, which names no track at all.
func (t Track) IsZero() bool { return t == Track{} }

// Origin returns the custom origin name, empty for Root.
func (t Track) Origin() string { return t.origin }

func (t Track) String() string { return t.name }

// Path is the authorization path a proposal takes.
type Path uint8

const (
	RootPath Path = iota
	NamedOriginPath
	WhitelistedCallerPath
)

func (p Path) String() string {
	switch p {
	case RootPath:
		return "root"
	case NamedOriginPath:
		return "named-origin"
	case WhitelistedCallerPath:
		return "whitelisted-caller"
	default:
		return fmt.Sprintf("path(%d)", uint8(p))
	}
}

// PathFor returns the authorization path of the track.
func PathFor(t Track) Path {
	switch {
	case t.IsRoot():
		return RootPath
	case t == WhitelistedCaller:
		return WhitelistedCallerPath
	default:
		return NamedOriginPath
	}
}
