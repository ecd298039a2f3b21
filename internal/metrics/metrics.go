// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"fmt"

	"github.com/ChainSafe/opengov-cli/internal/log"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "opengov"

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// Recorder collects the counters of a single run. They are written out
// once at exit in the node exporter textfile format.
type Recorder struct {
	registry      *prometheus.Registry
	builds        *prometheus.CounterVec
	weightQueries *prometheus.CounterVec
	oversized     *prometheus.CounterVec
	artifacts     *prometheus.CounterVec
	batches       *prometheus.CounterVec
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_builds_total",
			Help:      "Proposal pipelines built, by network and authorization path.",
		}, []string{"network", "path"}),
		weightQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weight_queries_total",
			Help:      "Transact weight queries, by chain and outcome.",
		}, []string{"chain", "outcome"}),
		oversized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oversized_preimages_total",
			Help:      "Preimages printed as hash only because they exceed the output limit.",
		}, []string{"chain"}),
		artifacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifact_writes_total",
			Help:      "Artifacts written, by sink.",
		}, []string{"sink"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Utility.force_batch calls emitted, by chain.",
		}, []string{"chain"}),
	}
	r.registry.MustRegister(r.builds, r.weightQueries, r.oversized, r.artifacts, r.batches)
	return r
}

// ObserveBuild counts a pipeline build.
func (r *Recorder) ObserveBuild(network, path string) {
	r.builds.WithLabelValues(network, path).Inc()
}

// ObserveWeightQuery counts a weight query outcome.
func (r *Recorder) ObserveWeightQuery(chain, outcome string) {
	r.weightQueries.WithLabelValues(chain, outcome).Inc()
}

// ObserveOversizedPreimage counts a preimage replaced by its hash.
func (r *Recorder) ObserveOversizedPreimage(chain string) {
	r.oversized.WithLabelValues(chain).Inc()
}

// ObserveArtifactWrite counts an artifact write.
func (r *Recorder) ObserveArtifactWrite(sink string) {
	r.artifacts.WithLabelValues(sink).Inc()
}

// ObserveBatch counts a batch call.
func (r *Recorder) ObserveBatch(chain string) {
	r.batches.WithLabelValues(chain).Inc()
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, r.registry)
	if err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	logger.Debugf("metrics written to %s", path)
	return nil
}
