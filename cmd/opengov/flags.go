// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Configuration flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// EnvFileFlag dotenv file with OPENGOV_<CHAIN>_RPC endpoint overrides
	EnvFileFlag = cli.StringFlag{
		Name:  "env-file",
		Usage: "Dotenv file with OPENGOV_<CHAIN>_RPC endpoint overrides",
		Value: ".env",
	}
	// LogFlag global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// NetworkFlag network to build for
	NetworkFlag = cli.StringFlag{
		Name:  "network",
		Usage: "Network to build for: polkadot or kusama",
	}
)

// Referendum flags
var (
	// ProposalFlag call to submit, as 0x prefixed hex or a file path
	ProposalFlag = cli.StringFlag{
		Name:  "proposal",
		Usage: "Call to submit, either as 0x prefixed hex or the path of a file holding it",
	}
	// TrackFlag governance track of the referendum
	TrackFlag = cli.StringFlag{
		Name:  "track",
		Usage: "Track of the referendum, eg. root, whitelisted-caller or staking-admin",
	}
	// AtFlag enactment block number
	AtFlag = cli.UintFlag{
		Name:  "at",
		Usage: "Enact the proposal at this block number",
	}
	// AfterFlag enactment delay in blocks
	AfterFlag = cli.UintFlag{
		Name:  "after",
		Usage: "Enact the proposal this many blocks after approval (default 10)",
	}
	// OutputFlag output format
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "Output format of the calls: calldata or appsuilink",
	}
	// OutputLenLimitFlag preimage length above which only the hash is printed
	OutputLenLimitFlag = cli.UintFlag{
		Name:  "output-len-limit",
		Usage: "Preimage length in bytes above which only its hash is printed",
	}
	// NoBatchFlag disables the per chain batches
	NoBatchFlag = cli.BoolFlag{
		Name:  "no-batch",
		Usage: "Do not print a batch of the calls to submit on each chain",
	}
	// TreeFlag prints the pipeline as a tree
	TreeFlag = cli.BoolFlag{
		Name:  "tree",
		Usage: "Print the pipeline as a tree of calls with their hash and length",
	}
	// TransactRefTimeFlag overrides the ref_time of the XCM Transact
	TransactRefTimeFlag = cli.Uint64Flag{
		Name:  "transact-ref-time",
		Usage: "Use this ref_time for the XCM Transact instead of querying it",
	}
	// TransactProofSizeFlag overrides the proof_size of the XCM Transact
	TransactProofSizeFlag = cli.Uint64Flag{
		Name:  "transact-proof-size",
		Usage: "Use this proof_size for the XCM Transact instead of querying it",
	}
)

// Remote chain flags
var (
	// WeightTimeoutFlag bound of a weight query
	WeightTimeoutFlag = cli.StringFlag{
		Name:  "weight-timeout",
		Usage: "Timeout of a weight query, eg. 10s",
	}
	// LiveIndicesFlag resolves the chain tables from the runtime metadata
	LiveIndicesFlag = cli.BoolFlag{
		Name:  "live-indices",
		Usage: "Resolve call indices and origins from the runtime metadata of the chains and decode calls against it",
	}
)

// Artifact and metrics flags
var (
	// ArtifactDirFlag directory of written artifacts
	ArtifactDirFlag = cli.StringFlag{
		Name:  "artifact-dir",
		Usage: "Directory oversized preimages and upgrade calls are written to",
	}
	// ArtifactS3BucketFlag S3 bucket artifacts are uploaded to
	ArtifactS3BucketFlag = cli.StringFlag{
		Name:  "artifact-s3-bucket",
		Usage: "S3 bucket artifacts are also uploaded to",
	}
	// ArtifactS3RegionFlag region of the S3 bucket
	ArtifactS3RegionFlag = cli.StringFlag{
		Name:  "artifact-s3-region",
		Usage: "Region of the S3 bucket",
	}
	// ArtifactS3PrefixFlag key prefix of uploaded artifacts
	ArtifactS3PrefixFlag = cli.StringFlag{
		Name:  "artifact-s3-prefix",
		Usage: "Key prefix of the uploaded artifacts",
	}
	// MetricsFileFlag node exporter textfile of the run metrics
	MetricsFileFlag = cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Write run metrics to this node exporter textfile",
	}
)

// Upgrade flags
var (
	// RelayVersionFlag fellowship runtimes release of the relay chain
	RelayVersionFlag = cli.StringFlag{
		Name:  "relay-version",
		Usage: "Runtime release of the relay chain, eg. v1.2.3. Also used for the system chains without their own version",
	}
	// ParachainVersionFlag fellowship runtimes release of the system chains
	ParachainVersionFlag = cli.StringFlag{
		Name:  "parachain-version",
		Usage: "Runtime release of the system chains, if different from the relay chain",
	}
	// RuntimeFlag runtime blob of a chain
	RuntimeFlag = cli.StringSliceFlag{
		Name:  "runtime",
		Usage: "Runtime blob of a chain as <chain>=<path or url>, eg. --runtime=polkadot=./polkadot.wasm",
	}
	// OnlyFlag chains to upgrade
	OnlyFlag = cli.StringSliceFlag{
		Name:  "only",
		Usage: "Only upgrade these chains, eg. --only=polkadot --only=polkadot-asset-hub",
	}
	// FilenameFlag file the upgrade call is written to
	FilenameFlag = cli.StringFlag{
		Name:  "filename",
		Usage: "File the upgrade call data is written to (default upgrade-<network>-<relay version>.call)",
	}
)

var (
	// commonFlags are used by every command
	commonFlags = []cli.Flag{
		ConfigFlag,
		EnvFileFlag,
		LogFlag,
		NetworkFlag,
		OutputFlag,
		WeightTimeoutFlag,
		LiveIndicesFlag,
		ArtifactDirFlag,
		ArtifactS3BucketFlag,
		ArtifactS3RegionFlag,
		ArtifactS3PrefixFlag,
		MetricsFileFlag,
	}

	// SubmitReferendumFlags are flags of the submit-referendum command
	SubmitReferendumFlags = append([]cli.Flag{
		ProposalFlag,
		TrackFlag,
		AtFlag,
		AfterFlag,
		OutputLenLimitFlag,
		NoBatchFlag,
		TreeFlag,
		TransactRefTimeFlag,
		TransactProofSizeFlag,
	}, commonFlags...)

	// BuildUpgradeFlags are flags of the build-upgrade command
	BuildUpgradeFlags = append([]cli.Flag{
		RelayVersionFlag,
		ParachainVersionFlag,
		RuntimeFlag,
		OnlyFlag,
		FilenameFlag,
	}, commonFlags...)
)
