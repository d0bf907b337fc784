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

import "fmt"

// Recursion matches one segment of a self-mounted run: the segment must
// satisfy sub, and the extracted value is appended to the values of the
// consecutive ancestor segments that also satisfy sub. The match result
// carries the whole run as a []any under the condition's metaname, so an
// instance resolved three levels deep sees all three captured values in
// order.
//
// A maxDepth greater than zero bounds the run: a segment that would extend
// it beyond maxDepth does not match. Zero means unbounded resolution depth;
// route enumeration stays finite either way because the enumerator collapses
// declared cycles to a single representative segment.
//
// Mounting a type as its own descendant is only accepted by the mount table
// when the edge condition contains a Recursion; see IsRecursive.
//
// The run is rebuilt per match from the contiguous tail of ancestors of the
// candidate's own type whose names satisfy sub; the sub-condition should
// therefore depend on the segment alone, not on ancestor context.
func Recursion(sub Condition, maxDepth int) Condition {
	return &recursionCondition{sub: sub, maxDepth: maxDepth}
}

type recursionCondition struct {
	sub      Condition
	maxDepth int
}

func (c *recursionCondition) Match(segment string, ancestors []Ancestor) Result {
	return c.matchRun(segment, ancestors, "")
}

// matchRun rebuilds the run from the contiguous tail of ancestors of the
// candidate's own type whose names satisfy sub. Without a candidate type
// (direct Match calls) the type check is skipped.
func (c *recursionCondition) matchRun(segment string, ancestors []Ancestor, candidateType string) Result {
	res := c.sub.Match(segment, ancestors)
	if !res.Matched {
		return Result{}
	}

	var run []any
	for i := len(ancestors) - 1; i >= 0; i-- {
		if candidateType != "" && ancestors[i].TypeName != candidateType {
			break
		}
		r := c.sub.Match(ancestors[i].Name, ancestors[:i])
		if !r.Matched {
			break
		}
		run = append(run, c.value(ancestors[i].Name, r))
	}
	// The walk above collects the run parent-first; restore root-first order.
	for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
		run[i], run[j] = run[j], run[i]
	}
	run = append(run, c.value(segment, res))

	if c.maxDepth > 0 && len(run) > c.maxDepth {
		return Result{}
	}

	meta := make(map[string]any, len(res.Meta))
	for k, v := range res.Meta {
		meta[k] = v
	}
	meta[c.Metaname()] = run
	return Matched(meta)
}

// value returns the sub-condition's primary extracted value for a segment,
// falling back to the raw segment when sub extracts nothing.
func (c *recursionCondition) value(segment string, res Result) any {
	if name := c.sub.Metaname(); name != "" {
		if v, ok := res.Meta[name]; ok {
			return v
		}
	}
	return segment
}

// Metaname returns the sub-condition's metaname, or "items" when the
// sub-condition extracts nothing. The run list is stored under this key.
func (c *recursionCondition) Metaname() string {
	if name := c.sub.Metaname(); name != "" {
		return name
	}
	return "items"
}

func (c *recursionCondition) String() string {
	return fmt.Sprintf("Recursion(%s, %d)", c.sub, c.maxDepth)
}

func (c *recursionCondition) subconditions() []Condition { return []Condition{c.sub} }

// MaxDepth bounds how often the candidate's type may occur on a path. It is
// meant as a mount guard: guards see the chain with the candidate appended,
// and MaxDepth matches while the last entry's type occurs at most n times in
// the whole chain.
//
// Like Recursion, MaxDepth sanctions declaration cycles, so it is the guard
// of choice for mutually recursive declarations:
//
//	categories.MustMountSet(condition.DecimalID(), category, traversal.WithMetaname("category_id"))
//	category.MustMount("categories", categories, traversal.WithGuard(condition.MaxDepth(2)))
//
// MaxDepth extracts nothing.
func MaxDepth(n int) Condition {
	return maxDepthCondition(n)
}

type maxDepthCondition int

func (c maxDepthCondition) Match(_ string, ancestors []Ancestor) Result {
	if len(ancestors) == 0 {
		return Matched(nil)
	}
	target := ancestors[len(ancestors)-1].TypeName
	depth := 0
	for _, a := range ancestors {
		if a.TypeName == target {
			depth++
		}
	}
	if depth > int(c) {
		return Result{}
	}
	return Matched(nil)
}

func (c maxDepthCondition) Metaname() string { return "" }

func (c maxDepthCondition) String() string { return fmt.Sprintf("MaxDepth(%d)", int(c)) }
