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

import (
	"io"
	"log/slog"
)

// NoopLogger returns a logger that discards all output. It is the default
// logger of a hierarchy; pass WithLogger to observe declaration events.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Option configures a Hierarchy.
type Option func(*Hierarchy)

// WithLogger sets the logger used for declaration-time debug logging.
// Resolution never logs; the hot path stays allocation-only.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hierarchy) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithDiagnostics sets the handler receiving declaration diagnostics
// (mounted edges, sanctioned recursion, freeze). If not provided,
// diagnostics are silently dropped.
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(h *Hierarchy) {
		h.diagnostics = handler
	}
}

// WithRecorder sets the observability recorder notified of every resolution
// attempt. If not provided, resolution is unobserved.
func WithRecorder(recorder Recorder) Option {
	return func(h *Hierarchy) {
		h.recorder = recorder
	}
}

// Hierarchy is a frozen resource tree. It is built once from a declared root
// type and is immutable and safe for unsynchronized concurrent use
// afterwards: every resolution produces a fresh Instance and shares no
// mutable state.
type Hierarchy struct {
	root        *NodeType
	logger      *slog.Logger
	diagnostics DiagnosticHandler
	recorder    Recorder
}

// New validates the declared type graph reachable from root, freezes every
// type in it and returns the hierarchy. Mutating any frozen type afterwards
// fails with ErrFrozen.
//
// Invalid declarations (duplicate names, unsanctioned cycles) are rejected
// by Mount and MountSet as they happen; New marks the end of the declaration
// phase, emits one diagnostic per declared edge and freezes the graph.
func New(root *NodeType, opts ...Option) (*Hierarchy, error) {
	if root == nil {
		return nil, &ConfigError{Name: "", Type: "", Err: ErrNilRoot}
	}

	h := &Hierarchy{
		root:   root,
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}

	types := 0
	edges := 0
	seen := make(map[*NodeType]bool)
	queue := []*NodeType{root}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if seen[t] {
			continue
		}
		seen[t] = true
		types++

		for _, e := range t.staticOrder {
			edges++
			h.emit(DiagStaticMounted, "static edge", map[string]any{
				"parent": t.name, "name": e.name, "child": e.child.name,
			})
			if e.recursive {
				h.emit(DiagRecursionSanctioned, "recursive edge", map[string]any{
					"parent": t.name, "name": e.name,
				})
			}
			if !seen[e.child] {
				queue = append(queue, e.child)
			}
		}
		for _, e := range t.dynamic {
			edges++
			h.emit(DiagDynamicMounted, "dynamic edge", map[string]any{
				"parent": t.name, "condition": e.cond.String(), "metaname": e.metaname, "child": e.child.name,
			})
			if e.recursive {
				h.emit(DiagRecursionSanctioned, "recursive edge", map[string]any{
					"parent": t.name, "condition": e.cond.String(),
				})
			}
			if !seen[e.child] {
				queue = append(queue, e.child)
			}
		}
	}

	for t := range seen {
		t.frozen.Store(true)
	}

	h.emit(DiagHierarchyFrozen, "hierarchy frozen", map[string]any{
		"root": root.name, "types": types, "edges": edges,
	})
	h.logger.Debug("hierarchy frozen",
		"root", root.name,
		"types", types,
		"edges", edges,
	)
	return h, nil
}

// MustNew is like New but panics on error.
func MustNew(root *NodeType, opts ...Option) *Hierarchy {
	h, err := New(root, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// Root returns a fresh root instance. Each call produces an independent
// instance owned by the caller; instances are never cached.
func (h *Hierarchy) Root() *Instance {
	return &Instance{typ: h.root, hier: h}
}

// ResolvePath resolves the segments from a fresh root instance.
// See Instance.ResolvePath.
func (h *Hierarchy) ResolvePath(segments []string) (*Instance, error) {
	return h.Root().ResolvePath(segments)
}

// Routes enumerates the canonical path templates of the declared tree.
// See the package-level Routes.
func (h *Hierarchy) Routes() []*Route {
	return Routes(h.root)
}

func (h *Hierarchy) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if h.diagnostics != nil {
		h.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
	}
}
