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

import (
	"fmt"
	"strings"
)

// And matches when every sub-condition matches. Extracted values are merged
// in declared order.
//
// Sub-conditions extracting overlapping metanames are a declaration error;
// the mount table rejects them via Validate. Should a collision still occur
// at match time (for example through an Or picking different branches), the
// last written value wins.
func And(subs ...Condition) Condition {
	return &andCondition{subs: subs}
}

type andCondition struct {
	subs []Condition
}

func (c *andCondition) Match(segment string, ancestors []Ancestor) Result {
	return c.matchRun(segment, ancestors, "")
}

func (c *andCondition) matchRun(segment string, ancestors []Ancestor, candidateType string) Result {
	var meta map[string]any
	for _, sub := range c.subs {
		res := MatchEdge(sub, segment, ancestors, candidateType)
		if !res.Matched {
			return Result{}
		}
		for k, v := range res.Meta {
			if meta == nil {
				meta = make(map[string]any)
			}
			meta[k] = v
		}
	}
	return Matched(meta)
}

// Metaname returns the first non-empty metaname among the sub-conditions,
// which names the primary extracted value.
func (c *andCondition) Metaname() string { return firstMetaname(c.subs) }

func (c *andCondition) String() string { return describe("And", c.subs) }

func (c *andCondition) subconditions() []Condition { return c.subs }

// Or tries its sub-conditions in declared order; the first match wins and
// only its extracted values are kept.
func Or(subs ...Condition) Condition {
	return &orCondition{subs: subs}
}

type orCondition struct {
	subs []Condition
}

func (c *orCondition) Match(segment string, ancestors []Ancestor) Result {
	return c.matchRun(segment, ancestors, "")
}

func (c *orCondition) matchRun(segment string, ancestors []Ancestor, candidateType string) Result {
	for _, sub := range c.subs {
		if res := MatchEdge(sub, segment, ancestors, candidateType); res.Matched {
			return res
		}
	}
	return Result{}
}

func (c *orCondition) Metaname() string { return firstMetaname(c.subs) }

func (c *orCondition) String() string { return describe("Or", c.subs) }

func (c *orCondition) subconditions() []Condition { return c.subs }

// Not matches when the wrapped condition does not. Extracted values are
// always discarded: inversion has no extraction semantics.
func Not(sub Condition) Condition {
	return &notCondition{sub: sub}
}

type notCondition struct {
	sub Condition
}

func (c *notCondition) Match(segment string, ancestors []Ancestor) Result {
	return c.matchRun(segment, ancestors, "")
}

func (c *notCondition) matchRun(segment string, ancestors []Ancestor, candidateType string) Result {
	if MatchEdge(c.sub, segment, ancestors, candidateType).Matched {
		return Result{}
	}
	return Matched(nil)
}

func (c *notCondition) Metaname() string { return "" }

func (c *notCondition) String() string { return fmt.Sprintf("Not(%s)", c.sub) }

func (c *notCondition) subconditions() []Condition { return []Condition{c.sub} }

func firstMetaname(subs []Condition) string {
	for _, sub := range subs {
		if n := sub.Metaname(); n != "" {
			return n
		}
	}
	return ""
}

func describe(kind string, subs []Condition) string {
	parts := make([]string, len(subs))
	for i, sub := range subs {
		parts[i] = sub.String()
	}
	return fmt.Sprintf("%s(%s)", kind, strings.Join(parts, ", "))
}
