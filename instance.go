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
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"rivaas.dev/traversal/condition"
)

// Instance is a runtime node produced by resolving one path segment. It is
// created fresh on every resolution, owned by the caller, and never cached;
// the parent reference is non-owning.
type Instance struct {
	name   string
	parent *Instance
	typ    *NodeType
	meta   map[string]any
	hier   *Hierarchy
}

// Name returns the segment the instance was resolved from. Empty for the root.
func (i *Instance) Name() string {
	return i.name
}

// Parent returns the owning instance, or nil for the root.
func (i *Instance) Parent() *Instance {
	return i.parent
}

// Type returns the instance's declared node type.
func (i *Instance) Type() *NodeType {
	return i.typ
}

// Meta returns the values extracted by the matching condition, keyed by
// metaname. The returned map is the instance's own; treat it as read-only.
// Nil when the instance was reached through a static edge.
func (i *Instance) Meta() map[string]any {
	return i.meta
}

// Value returns a single extracted value by metaname.
func (i *Instance) Value(metaname string) (any, bool) {
	v, ok := i.meta[metaname]
	return v, ok
}

// Path returns the resolved path of the instance, always with a trailing
// slash: "/" for the root, "/users/1/" two levels down.
func (i *Instance) Path() string {
	if i.parent == nil {
		return "/"
	}
	var names []string
	for cur := i; cur.parent != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	var b strings.Builder
	for j := len(names) - 1; j >= 0; j-- {
		b.WriteByte('/')
		b.WriteString(names[j])
	}
	b.WriteByte('/')
	return b.String()
}

// String returns "<TypeName: /resolved/path/>".
func (i *Instance) String() string {
	return fmt.Sprintf("<%s: %s>", i.typ.name, i.Path())
}

// Get resolves one segment into a child instance.
//
// Static edges win unconditionally: if the segment is mounted as a literal
// name it is used even when a dynamic condition would also match. Otherwise
// dynamic edges are tried in registration order and the first matching
// condition wins.
//
// Get fails with a *NotFoundError (errors.Is ErrNotFound) when no edge
// matches, when an edge guard rejects the ancestor chain, or when the child
// type's init hook reports the entity as absent via ErrNotExist. Any other
// init hook error propagates unchanged.
func (i *Instance) Get(segment string) (*Instance, error) {
	return i.GetWith(segment, nil)
}

// GetWith is Get with a payload handed to the child type's init hook.
func (i *Instance) GetWith(segment string, payload any) (*Instance, error) {
	chain := i.ancestorChain()

	if e, ok := i.typ.static[segment]; ok {
		if e.guard == nil || e.guard.Match(segment, guardChain(chain, e.child, segment)).Matched {
			return i.newChild(e.child, segment, nil, payload)
		}
		return nil, i.notFound(segment)
	}

	for _, e := range i.typ.dynamic {
		if e.guard != nil && !e.guard.Match(segment, guardChain(chain, e.child, segment)).Matched {
			continue
		}
		res := condition.MatchEdge(e.cond, segment, chain, e.child.name)
		if !res.Matched {
			continue
		}
		return i.newChild(e.child, segment, renameMeta(res.Meta, e.cond.Metaname(), e.metaname), payload)
	}
	return nil, i.notFound(segment)
}

// TryGet is the non-failing variant of Get: a not-found outcome yields def
// instead of an error. Init hook failures other than ErrNotExist still
// propagate.
func (i *Instance) TryGet(segment string, def *Instance) (*Instance, error) {
	child, err := i.Get(segment)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	return child, nil
}

// ResolvePath folds Get over the segments left to right. On the first miss
// it stops and returns a *NotFoundError whose Consumed field is the number
// of segments resolved before the failure.
func (i *Instance) ResolvePath(segments []string) (*Instance, error) {
	cur := i
	for n, segment := range segments {
		next, err := cur.Get(segment)
		if err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) {
				nf.Consumed = n
			}
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// newChild allocates the child, runs its init hook and classifies the
// outcome. Exactly one allocation per successful resolution.
func (i *Instance) newChild(t *NodeType, segment string, meta map[string]any, payload any) (*Instance, error) {
	child := &Instance{
		name:   segment,
		parent: i,
		typ:    t,
		meta:   meta,
		hier:   i.hier,
	}
	if t.initFn != nil {
		if err := t.initFn(child, payload); err != nil {
			if errors.Is(err, ErrNotExist) {
				return nil, i.notFound(segment)
			}
			i.record(segment, OutcomeError, t)
			return nil, err
		}
	}
	i.record(segment, OutcomeResolved, t)
	return child, nil
}

func (i *Instance) notFound(segment string) error {
	i.record(segment, OutcomeNotFound, nil)
	return &NotFoundError{Segment: segment, Path: i.Path()}
}

func (i *Instance) record(segment string, outcome ResolveOutcome, child *NodeType) {
	if i.hier == nil || i.hier.recorder == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("traversal.parent_type", i.typ.name),
	}
	if child != nil {
		attrs = append(attrs, attribute.String("traversal.child_type", child.name))
	}
	i.hier.recorder.OnResolve(i.Path(), segment, outcome, attrs...)
}

// ancestorChain builds the chain handed to conditions: root first, the
// instance itself last. The candidate segment is never part of the chain.
func (i *Instance) ancestorChain() []condition.Ancestor {
	depth := 0
	for cur := i; cur != nil; cur = cur.parent {
		depth++
	}
	chain := make([]condition.Ancestor, depth)
	for cur := i; cur != nil; cur = cur.parent {
		depth--
		chain[depth] = condition.Ancestor{
			TypeName: cur.typ.name,
			Name:     cur.name,
			Meta:     cur.meta,
		}
	}
	return chain
}

// guardChain appends the candidate node to the ancestor chain. Guards, unlike
// edge conditions, are evaluated with the candidate in view so that depth
// bounds like condition.MaxDepth can count it.
func guardChain(chain []condition.Ancestor, child *NodeType, segment string) []condition.Ancestor {
	full := make([]condition.Ancestor, len(chain)+1)
	copy(full, chain)
	full[len(chain)] = condition.Ancestor{TypeName: child.name, Name: segment}
	return full
}

// renameMeta moves the primary extracted value from the condition's default
// metaname to the edge's override. Other keys are left alone.
func renameMeta(meta map[string]any, from, to string) map[string]any {
	if from == "" || to == "" || from == to {
		return meta
	}
	v, ok := meta[from]
	if !ok {
		return meta
	}
	renamed := make(map[string]any, len(meta))
	for k, val := range meta {
		if k != from {
			renamed[k] = val
		}
	}
	renamed[to] = v
	return renamed
}
