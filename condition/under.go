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

import "strings"

// Under matches when the ancestor chain contains an entry whose type name or
// segment name equals any of the given references. The segment itself is
// ignored; combine with And to also constrain the segment:
//
//	And(DecimalID(), Not(Under("drafts")))
//
// Under extracts nothing.
func Under(refs ...string) Condition {
	return &underCondition{refs: refs}
}

type underCondition struct {
	refs []string
}

func (c *underCondition) Match(_ string, ancestors []Ancestor) Result {
	for _, a := range ancestors {
		for _, ref := range c.refs {
			if a.TypeName == ref || a.Name == ref {
				return Matched(nil)
			}
		}
	}
	return Result{}
}

func (c *underCondition) Metaname() string { return "" }

func (c *underCondition) String() string {
	return "Under(" + strings.Join(c.refs, ", ") + ")"
}
