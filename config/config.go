// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ChainSafe/opengov-cli/lib/call"
	"github.com/ChainSafe/opengov-cli/lib/referendum"
	"github.com/ChainSafe/opengov-cli/lib/weight"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the configuration of a proposal build. It is read from a TOML
// file and completed by environment variables and command line flags.
type Config struct {
	Network  string         `toml:"network,omitempty" validate:"required"`
	Track    string         `toml:"track,omitempty"`
	Dispatch DispatchConfig `toml:"dispatch,omitempty"`
	Output   OutputConfig   `toml:"output,omitempty"`
	Weight   WeightConfig   `toml:"weight,omitempty"`
	RPC      RPCConfig      `toml:"rpc,omitempty"`
	Artifact ArtifactConfig `toml:"artifact,omitempty"`
	Metrics  MetricsConfig  `toml:"metrics,omitempty"`
	Log      LogConfig      `toml:"log,omitempty"`
}

// DispatchConfig is the enactment moment of the public referendum. Zero
// values are unset.
type DispatchConfig struct {
	At    uint32 `toml:"at,omitempty"`
	After uint32 `toml:"after,omitempty"`
}

// OutputConfig controls how the calls to submit are printed.
type OutputConfig struct {
	Format   string `toml:"format,omitempty" validate:"omitempty,oneof=calldata call-data appsuilink apps-ui-link"`
	LenLimit uint32 `toml:"len-limit,omitempty"`
	NoBatch  bool   `toml:"no-batch,omitempty"`
	Tree     bool   `toml:"tree,omitempty"`
}

// WeightConfig overrides or bounds the weight queries.
type WeightConfig struct {
	RefTime   uint64 `toml:"ref-time,omitempty" validate:"required_with=ProofSize"`
	ProofSize uint64 `toml:"proof-size,omitempty" validate:"required_with=RefTime"`
	Timeout   string `toml:"timeout,omitempty"`
}

// RPCConfig holds the endpoint overrides, keyed by chain ID.
type RPCConfig struct {
	Endpoints   map[string]string `toml:"endpoints,omitempty" validate:"dive,url"`
	LiveIndices bool              `toml:"live-indices,omitempty"`
}

// ArtifactConfig is where oversized preimages are written.
type ArtifactConfig struct {
	Dir      string `toml:"dir,omitempty"`
	S3Bucket string `toml:"s3-bucket,omitempty"`
	S3Region string `toml:"s3-region,omitempty" validate:"required_with=S3Bucket"`
	S3Prefix string `toml:"s3-prefix,omitempty"`
}

// MetricsConfig is the textfile run metrics are written to, if any.
type MetricsConfig struct {
	File string `toml:"file,omitempty"`
}

// LogConfig is the global log level, as a name or an integer from 0 to 5.
type LogConfig struct {
	Level string `toml:"level,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   "appsuilink",
			LenLimit: referendum.DefaultOutputLenLimit,
		},
		Weight: WeightConfig{
			Timeout: weight.DefaultTimeout.String(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load decodes the TOML file at path over cfg. Keys missing from the file
// keep their value in cfg.
func Load(path string, cfg *Config) error {
	fp, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path of configuration file: %w", err)
	}

	/* #nosec */
	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return fmt.Errorf("opening configuration file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			logger.Warnf("closing configuration file: %s", closeErr)
		}
	}()

	err = toml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return fmt.Errorf("decoding configuration file %s: %w", path, err)
	}
	return nil
}

// Validate checks the field constraints of the configuration.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

// Time returns the enactment moment, After(10) when neither is set.
func (d DispatchConfig) Time() (call.DispatchTime, error) {
	var at, after *uint32
	if d.At != 0 {
		at = &d.At
	}
	if d.After != 0 {
		after = &d.After
	}
	return referendum.ParseDispatch(at, after)
}

// Override returns the configured Transact weight, or nil when the weight
// is to be queried.
func (w WeightConfig) Override() *weight.Weight {
	if w.RefTime == 0 && w.ProofSize == 0 {
		return nil
	}
	return &weight.Weight{RefTime: w.RefTime, ProofSize: w.ProofSize}
}

// QueryTimeout returns the bound of one weight query.
func (w WeightConfig) QueryTimeout() (time.Duration, error) {
	if w.Timeout == "" {
		return weight.DefaultTimeout, nil
	}
	timeout, err := time.ParseDuration(w.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: weight timeout: %s", ErrInvalidConfig, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("%w: weight timeout must be positive: %s", ErrInvalidConfig, w.Timeout)
	}
	return timeout, nil
}
