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

// DiagnosticEvent describes a declaration-time event of a hierarchy.
// Diagnostics are informational: the hierarchy behaves identically whether
// they are collected or not.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagStaticMounted is emitted once per static edge when the hierarchy
	// is built.
	DiagStaticMounted DiagnosticKind = "static_mounted"

	// DiagDynamicMounted is emitted once per dynamic edge when the hierarchy
	// is built.
	DiagDynamicMounted DiagnosticKind = "dynamic_mounted"

	// DiagRecursionSanctioned is emitted for an edge whose condition or
	// guard contains a Recursion matcher, marking a sanctioned declaration
	// cycle.
	DiagRecursionSanctioned DiagnosticKind = "recursion_sanctioned"

	// DiagHierarchyFrozen is emitted once when the declaration phase ends.
	DiagHierarchyFrozen DiagnosticKind = "hierarchy_frozen"
)

// DiagnosticHandler receives diagnostic events from a hierarchy.
// Implementations may log, emit metrics, or ignore them.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := traversal.DiagnosticHandlerFunc(func(e traversal.DiagnosticEvent) {
//	    slog.Debug(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	h := traversal.MustNew(root, traversal.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}
