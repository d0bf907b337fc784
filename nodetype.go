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
	"sync/atomic"

	"rivaas.dev/traversal/condition"
)

// InitFunc is the optional initialization hook of a node type. It runs once
// per resolved instance, after name, parent and metadata are wired, and may
// perform type-specific validation such as confirming that an id refers to
// an existing entity.
//
// Returning an error that matches ErrNotExist (via errors.Is) makes the
// resolver report the segment as not found. Any other error propagates to
// the caller unchanged.
//
// The payload is whatever the caller passed to GetWith, or nil.
//
// Thread safety: hooks may run concurrently from independent resolutions and
// must be safe for that; the core calls a hook exactly once per resolution
// attempt.
type InitFunc func(inst *Instance, payload any) error

// TypeOption configures a NodeType at construction.
type TypeOption func(*NodeType)

// WithInit sets the type's initialization hook.
func WithInit(fn InitFunc) TypeOption {
	return func(t *NodeType) {
		t.initFn = fn
	}
}

// NodeType is a declared resource kind: a name plus an ordered list of mount
// edges describing its children. Types are built once at startup with Mount
// and MountSet, then frozen by New; mounting afterwards returns ErrFrozen.
//
// A type may be mounted under several parents. Each mount is an independent
// edge; the type itself carries no parent pointer.
type NodeType struct {
	name        string
	static      map[string]*staticEdge
	staticOrder []*staticEdge
	dynamic     []*dynamicEdge
	initFn      InitFunc
	frozen      atomic.Bool
}

// staticEdge mounts a child under a literal segment name.
type staticEdge struct {
	name      string
	child     *NodeType
	guard     condition.Condition
	recursive bool
}

// dynamicEdge mounts a child under a condition. metaname names the primary
// extracted value; empty when the condition extracts nothing.
type dynamicEdge struct {
	cond      condition.Condition
	metaname  string
	child     *NodeType
	guard     condition.Condition
	recursive bool
}

// NewType declares a resource kind. The name identifies the type in paths,
// diagnostics and Under conditions; it should be unique within a hierarchy.
func NewType(name string, opts ...TypeOption) *NodeType {
	t := &NodeType{
		name:   name,
		static: make(map[string]*staticEdge),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the declared type name.
func (t *NodeType) Name() string {
	return t.name
}

// MountOption configures a single mount edge.
type MountOption func(*mountConfig)

type mountConfig struct {
	metaname string
	guard    condition.Condition
}

// WithMetaname overrides the key under which a dynamic edge's primary
// extracted value appears in instance metadata. The default is derived from
// the condition kind, for example "id" for DecimalID. Only valid on MountSet.
func WithMetaname(name string) MountOption {
	return func(cfg *mountConfig) {
		cfg.metaname = name
	}
}

// WithGuard attaches a contextual condition to the edge. The guard is
// evaluated against the ancestor chain with the candidate node appended, at
// resolution time and again during route enumeration, so depth bounds like
// condition.MaxDepth count the candidate itself. A failing guard makes the
// edge behave as if it were not mounted. Guards are typically built from
// Under:
//
//	posts.MustMount("comments", comments, traversal.WithGuard(condition.Not(condition.Under("drafts"))))
//
// A guard containing a Recursion matcher sanctions a declaration cycle, which
// allows a type to be mounted as its own descendant.
func WithGuard(guard condition.Condition) MountOption {
	return func(cfg *mountConfig) {
		cfg.guard = guard
	}
}

// Mount registers child under a literal segment name. Registration order is
// preserved and meaningful for route enumeration.
//
// Mount fails with a *ConfigError when the name is empty or already taken,
// when the edge would create an unsanctioned cycle, or when the type is
// already frozen.
func (t *NodeType) Mount(name string, child *NodeType, opts ...MountOption) error {
	cfg := buildMountConfig(opts)
	switch {
	case t.frozen.Load():
		return configErr(t, name, ErrFrozen)
	case name == "":
		return configErr(t, name, ErrEmptyName)
	case child == nil:
		return configErr(t, name, ErrNilChild)
	case cfg.metaname != "":
		return configErr(t, name, ErrMetanameOnStaticMount)
	}
	if _, dup := t.static[name]; dup {
		return configErr(t, name, ErrDuplicateMount)
	}
	if cfg.guard != nil {
		if err := condition.Validate(cfg.guard); err != nil {
			return configErr(t, name, err)
		}
	}

	recursive := cfg.guard != nil && condition.IsRecursive(cfg.guard)
	if !recursive && reaches(child, t) {
		return configErr(t, name, ErrCyclicMount)
	}

	e := &staticEdge{name: name, child: child, guard: cfg.guard, recursive: recursive}
	t.static[name] = e
	t.staticOrder = append(t.staticOrder, e)
	return nil
}

// MustMount is like Mount but panics on error. Declaration errors are
// programmer errors that should surface at startup.
func (t *NodeType) MustMount(name string, child *NodeType, opts ...MountOption) {
	if err := t.Mount(name, child, opts...); err != nil {
		panic(err)
	}
}

// MountSet registers child under a condition. Dynamic edges are tried in
// registration order, after static edges.
//
// The primary extracted value is exposed under the condition's default
// metaname unless WithMetaname overrides it.
func (t *NodeType) MountSet(cond condition.Condition, child *NodeType, opts ...MountOption) error {
	cfg := buildMountConfig(opts)
	desc := "<nil>"
	if cond != nil {
		desc = cond.String()
	}
	switch {
	case t.frozen.Load():
		return configErr(t, desc, ErrFrozen)
	case cond == nil:
		return configErr(t, desc, ErrNilCondition)
	case child == nil:
		return configErr(t, desc, ErrNilChild)
	}
	if err := condition.Validate(cond); err != nil {
		return configErr(t, desc, err)
	}
	if cfg.guard != nil {
		if err := condition.Validate(cfg.guard); err != nil {
			return configErr(t, desc, err)
		}
	}

	recursive := condition.IsRecursive(cond) ||
		(cfg.guard != nil && condition.IsRecursive(cfg.guard))
	if !recursive && reaches(child, t) {
		return configErr(t, desc, ErrCyclicMount)
	}

	metaname := cfg.metaname
	if metaname == "" {
		metaname = cond.Metaname()
	}
	t.dynamic = append(t.dynamic, &dynamicEdge{
		cond:      cond,
		metaname:  metaname,
		child:     child,
		guard:     cfg.guard,
		recursive: recursive,
	})
	return nil
}

// MustMountSet is like MountSet but panics on error.
func (t *NodeType) MustMountSet(cond condition.Condition, child *NodeType, opts ...MountOption) {
	if err := t.MountSet(cond, child, opts...); err != nil {
		panic(err)
	}
}

func buildMountConfig(opts []MountOption) *mountConfig {
	cfg := &mountConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// reaches reports whether target is reachable from start through ordinary
// (non-recursive) edges. Used to reject unsanctioned declaration cycles.
func reaches(start, target *NodeType) bool {
	seen := make(map[*NodeType]bool)
	var visit func(t *NodeType) bool
	visit = func(t *NodeType) bool {
		if t == target {
			return true
		}
		if seen[t] {
			return false
		}
		seen[t] = true
		for _, e := range t.staticOrder {
			if !e.recursive && visit(e.child) {
				return true
			}
		}
		for _, e := range t.dynamic {
			if !e.recursive && visit(e.child) {
				return true
			}
		}
		return false
	}
	return visit(start)
}
