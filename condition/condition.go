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

package condition

import "errors"

// ErrMetanameConflict indicates that an And combinator merges two
// sub-conditions extracting values under the same metaname.
var ErrMetanameConflict = errors.New("conflicting metanames in condition")

// Ancestor is one element of the ancestor chain a condition may consult.
// The chain is ordered root first, immediate parent last.
//
// TypeName is the declared node type name, Name the segment the ancestor was
// resolved from (empty for the root). Meta holds the values extracted when
// the ancestor itself was resolved; it may be nil when the chain is built
// from declared types rather than live instances (route enumeration).
type Ancestor struct {
	TypeName string
	Name     string
	Meta     map[string]any
}

// Result is the outcome of matching one segment against a condition.
// The zero value means "not matched".
type Result struct {
	Matched bool
	Meta    map[string]any
}

// Matched builds a positive Result carrying the given extracted values.
// A nil meta is valid and means the condition extracts nothing.
func Matched(meta map[string]any) Result {
	return Result{Matched: true, Meta: meta}
}

// Condition matches a single path segment, optionally consulting the
// ancestor chain, and extracts values from it.
//
// Implementations must be stateless: Match must be safe for concurrent use
// and two calls with equal inputs must produce equal results.
type Condition interface {
	// Match tests the segment against the condition. The ancestor chain is
	// ordered root first and never includes the candidate segment itself.
	Match(segment string, ancestors []Ancestor) Result

	// Metaname returns the default key for the condition's primary extracted
	// value, or "" when the condition extracts nothing.
	Metaname() string

	// String returns a human-readable form used in diagnostics.
	String() string
}

// composite is implemented by conditions wrapping other conditions.
// It is used to walk condition trees for validation.
type composite interface {
	subconditions() []Condition
}

// runMatcher is implemented by conditions that need the declared type of the
// candidate node, which only the mount edge knows. Recursion uses it to tell
// a self-mount run apart from a mount point whose name happens to satisfy
// its sub-condition; combinators forward it.
type runMatcher interface {
	matchRun(segment string, ancestors []Ancestor, candidateType string) Result
}

// MatchEdge matches a mount edge's condition against a segment. It behaves
// like c.Match but additionally hands self-mount aware matchers (Recursion)
// the declared type name of the candidate node. The resolver and the route
// enumerator use MatchEdge; plain Match remains correct for conditions that
// do not care about the candidate type.
func MatchEdge(c Condition, segment string, ancestors []Ancestor, candidateType string) Result {
	if rm, ok := c.(runMatcher); ok {
		return rm.matchRun(segment, ancestors, candidateType)
	}
	return c.Match(segment, ancestors)
}

// Metanames collects every default metaname a condition tree may extract,
// in declaration order, duplicates included.
func Metanames(c Condition) []string {
	var names []string
	walk(c, func(c Condition) {
		switch c.(type) {
		case *andCondition, *orCondition, *notCondition:
			// Combinators delegate extraction to their children.
		default:
			if n := c.Metaname(); n != "" {
				names = append(names, n)
			}
		}
	})
	return names
}

// Validate checks a condition tree for declaration errors. Currently the
// only detectable error is an And combinator whose sub-conditions extract
// overlapping metanames; such a merge would drop a value silently at match
// time.
//
// Only overlap across different sub-conditions counts. A name repeated
// inside a single sub comes from Or branches, of which at most one
// contributes meta; And combinators nested inside a sub are checked on
// their own when the walk reaches them.
func Validate(c Condition) error {
	var err error
	walk(c, func(c Condition) {
		and, ok := c.(*andCondition)
		if !ok || err != nil {
			return
		}
		seen := make(map[string]struct{})
		for _, sub := range and.subs {
			contributed := make(map[string]struct{})
			for _, name := range Metanames(sub) {
				contributed[name] = struct{}{}
			}
			for name := range contributed {
				if _, dup := seen[name]; dup {
					err = ErrMetanameConflict
					return
				}
				seen[name] = struct{}{}
			}
		}
	})
	return err
}

// IsRecursive reports whether the condition tree contains a Recursion or
// MaxDepth matcher. The mount table uses this to sanction declaration
// cycles.
func IsRecursive(c Condition) bool {
	recursive := false
	walk(c, func(c Condition) {
		switch c.(type) {
		case *recursionCondition, maxDepthCondition:
			recursive = true
		}
	})
	return recursive
}

// walk visits c and every nested sub-condition in depth-first order.
func walk(c Condition, fn func(Condition)) {
	if c == nil {
		return
	}
	fn(c)
	if comp, ok := c.(composite); ok {
		for _, sub := range comp.subconditions() {
			walk(sub, fn)
		}
	}
}
