// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"math"

	"github.com/ChainSafe/opengov-cli/config"
	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/referendum"
)

// flagsKVStore is the view of the command line flags used to build the
// configuration. It is implemented by *cli.Context.
type flagsKVStore interface {
	String(name string) string
	Uint(name string) uint
	Uint64(name string) uint64
	Bool(name string) bool
	IsSet(name string) bool
}

// createConfig returns the defaults overridden by the configuration file
// and then by the flags set.
func createConfig(flags flagsKVStore) (*config.Config, error) {
	cfg := config.Default()

	if path := flags.String(ConfigFlag.Name); path != "" {
		err := config.Load(path, cfg)
		if err != nil {
			return nil, err
		}
		logger.Debugf("loaded configuration file %s", path)
	}

	level, err := getLogLevel(flags, LogFlag.Name, cfg.Log.Level, log.Info)
	if err != nil {
		return nil, fmt.Errorf("cannot get global log level: %w", err)
	}
	cfg.Log.Level = level.String()

	err = setFlagsConfig(flags, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func getLogLevel(flagsKVStore flagsKVStore, flagName, tomlValue string, defaultLevel log.Level) (
	level log.Level, err error) {
	if flagValue := flagsKVStore.String(flagName); flagValue != "" {
		return config.ParseLogLevel(flagValue)
	}

	if tomlValue == "" {
		return defaultLevel, nil
	}

	return config.ParseLogLevel(tomlValue)
}

func setFlagsConfig(flags flagsKVStore, cfg *config.Config) error {
	setString(flags, NetworkFlag.Name, &cfg.Network)
	setString(flags, TrackFlag.Name, &cfg.Track)
	setString(flags, OutputFlag.Name, &cfg.Output.Format)
	setString(flags, WeightTimeoutFlag.Name, &cfg.Weight.Timeout)
	setString(flags, ArtifactDirFlag.Name, &cfg.Artifact.Dir)
	setString(flags, ArtifactS3BucketFlag.Name, &cfg.Artifact.S3Bucket)
	setString(flags, ArtifactS3RegionFlag.Name, &cfg.Artifact.S3Region)
	setString(flags, ArtifactS3PrefixFlag.Name, &cfg.Artifact.S3Prefix)
	setString(flags, MetricsFileFlag.Name, &cfg.Metrics.File)

	if flags.IsSet(OutputLenLimitFlag.Name) {
		limit, err := uint32Flag(flags, OutputLenLimitFlag.Name)
		if err != nil {
			return err
		}
		cfg.Output.LenLimit = limit
	}
	if flags.IsSet(TransactRefTimeFlag.Name) {
		cfg.Weight.RefTime = flags.Uint64(TransactRefTimeFlag.Name)
	}
	if flags.IsSet(TransactProofSizeFlag.Name) {
		cfg.Weight.ProofSize = flags.Uint64(TransactProofSizeFlag.Name)
	}

	// boolean flags can only switch on what the file leaves off
	cfg.Output.NoBatch = cfg.Output.NoBatch || flags.Bool(NoBatchFlag.Name)
	cfg.Output.Tree = cfg.Output.Tree || flags.Bool(TreeFlag.Name)
	cfg.RPC.LiveIndices = cfg.RPC.LiveIndices || flags.Bool(LiveIndicesFlag.Name)
	return nil
}

// uint32Flag returns the value of a uint flag that must fit 32 bits.
func uint32Flag(flags flagsKVStore, name string) (uint32, error) {
	value := flags.Uint(name)
	if uint64(value) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: --%s %d exceeds %d",
			config.ErrInvalidConfig, name, value, uint32(math.MaxUint32))
	}
	return uint32(value), nil
}

func setString(flags flagsKVStore, name string, value *string) {
	if flagValue := flags.String(name); flagValue != "" {
		*value = flagValue
	}
}

// dispatchTime returns the enactment moment from the flags if either of
// them is set, otherwise from the configuration.
func dispatchTime(flags flagsKVStore, cfg config.DispatchConfig) (call.DispatchTime, error) {
	atSet, afterSet := flags.IsSet(AtFlag.Name), flags.IsSet(AfterFlag.Name)
	if !atSet && !afterSet {
		return cfg.Time()
	}

	var at, after *uint32
	if atSet {
		block, err := uint32Flag(flags, AtFlag.Name)
		if err != nil {
			return call.DispatchTime{}, err
		}
		at = &block
	}
	if afterSet {
		blocks, err := uint32Flag(flags, AfterFlag.Name)
		if err != nil {
			return call.DispatchTime{}, err
		}
		after = &blocks
	}
	return referendum.ParseDispatch(at, after)
}
