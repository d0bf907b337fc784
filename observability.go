// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package traversal

import "go.opentelemetry.io/otel/attribute"

// ResolveOutcome classifies a single resolution attempt.
type ResolveOutcome string

const (
	// OutcomeResolved means a child instance was produced.
	OutcomeResolved ResolveOutcome = "resolved"

	// OutcomeNotFound means no edge matched, a guard failed, or the init
	// hook reported the entity as absent.
	OutcomeNotFound ResolveOutcome = "not_found"

	// OutcomeError means the init hook failed with an error that is not
	// ErrNotExist; the error propagated to the caller unchanged.
	OutcomeError ResolveOutcome = "error"
)

// Recorder receives one event per resolution attempt. Implementations
// typically feed metrics (counters by outcome and type) or trace span
// events; see the package examples for Prometheus and OpenTelemetry
// recorders.
//
// path is the requesting instance's resolved path (template-free, so
// high-cardinality; recorders aiming at metrics should prefer the type
// attribute over path as a label). attrs carries structured context:
//
//	traversal.parent_type  declared type of the requesting instance
//	traversal.child_type   declared type of the produced instance (resolved only)
//
// Thread safety: resolution is concurrent by construction, so OnResolve
// must be safe for concurrent use.
type Recorder interface {
	OnResolve(path, segment string, outcome ResolveOutcome, attrs ...attribute.KeyValue)
}

// RecorderFunc is a function adapter for Recorder.
type RecorderFunc func(path, segment string, outcome ResolveOutcome, attrs ...attribute.KeyValue)

func (f RecorderFunc) OnResolve(path, segment string, outcome ResolveOutcome, attrs ...attribute.KeyValue) {
	f(path, segment, outcome, attrs...)
}
