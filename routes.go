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
	"sort"
	"strings"

	"rivaas.dev/traversal/condition"
)

// Segment is one element of a route template: a literal name for a static
// edge, or a metaname placeholder for a dynamic edge.
type Segment struct {
	Literal  string
	Metaname string
	Dynamic  bool
}

// String renders the segment as it appears in a route: the literal name, or
// "{metaname}" for dynamic segments ("*" when the edge extracts nothing).
func (s Segment) String() string {
	if !s.Dynamic {
		return s.Literal
	}
	if s.Metaname == "" {
		return "*"
	}
	return "{" + s.Metaname + "}"
}

// Route is a canonical path template derived from the declared tree,
// independent of any instance.
type Route struct {
	Segments []Segment
	Type     *NodeType
}

// String renders the template with leading and trailing slashes:
// "/users/{user_id}/posts/".
func (r *Route) String() string {
	if len(r.Segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range r.Segments {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	b.WriteByte('/')
	return b.String()
}

// Routes enumerates the canonical path templates reachable from the
// declared root type. It is a pure function of the type graph: no instances
// are involved, and repeated calls over the same declarations yield the same
// sequence.
//
// The walk is depth-first preorder. Within a type, static edges are expanded
// first in lexicographic name order, then dynamic edges in registration
// order. Edge guards are evaluated against the declared path (with dynamic
// segments represented by their placeholders), so contextual guards such as
// Under prune branches here exactly as they refuse them at resolution time.
//
// Declared cycles stay finite: the walk keeps a per-path set of visited
// types, and an edge leading back to a type already on the current path
// emits exactly one representative route for that branch and is not expanded
// further.
func Routes(root *NodeType) []*Route {
	if root == nil {
		return nil
	}
	w := &routeWalker{onPath: make(map[*NodeType]bool)}
	w.visit(root, nil, []condition.Ancestor{{TypeName: root.name}})
	return w.routes
}

type routeWalker struct {
	routes []*Route
	onPath map[*NodeType]bool
}

func (w *routeWalker) visit(t *NodeType, prefix []Segment, chain []condition.Ancestor) {
	w.emit(prefix, t)
	w.onPath[t] = true

	statics := make([]*staticEdge, len(t.staticOrder))
	copy(statics, t.staticOrder)
	sort.Slice(statics, func(i, j int) bool { return statics[i].name < statics[j].name })

	for _, e := range statics {
		seg := Segment{Literal: e.name}
		w.expand(e.child, e.guard, seg, prefix, chain)
	}
	for _, e := range t.dynamic {
		seg := Segment{Metaname: e.metaname, Dynamic: true}
		w.expand(e.child, e.guard, seg, prefix, chain)
	}

	delete(w.onPath, t)
}

func (w *routeWalker) expand(child *NodeType, guard condition.Condition, seg Segment, prefix []Segment, chain []condition.Ancestor) {
	name := seg.String()
	next := append(chain[:len(chain):len(chain)], condition.Ancestor{TypeName: child.name, Name: name})
	if guard != nil && !guard.Match(name, next).Matched {
		return
	}
	path := append(prefix[:len(prefix):len(prefix)], seg)
	if w.onPath[child] {
		// Declared cycle: one representative route, no further expansion.
		w.emit(path, child)
		return
	}
	w.visit(child, path, next)
}

func (w *routeWalker) emit(segments []Segment, t *NodeType) {
	w.routes = append(w.routes, &Route{Segments: segments, Type: t})
}
