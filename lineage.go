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

import "iter"

// Lineage returns the ancestor chain from the instance up to and including
// the root, instance first. The sequence is lazy and restartable: every
// range over it walks the chain independently.
//
//	for ancestor := range inst.Lineage() {
//	    fmt.Println(ancestor)
//	}
func (i *Instance) Lineage() iter.Seq[*Instance] {
	return func(yield func(*Instance) bool) {
		for cur := i; cur != nil; cur = cur.parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// AncestorByName returns the first instance in the lineage (the instance
// itself included) resolved from the given segment name, or nil. The root
// has the empty name.
func (i *Instance) AncestorByName(name string) *Instance {
	for cur := i; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur
		}
	}
	return nil
}

// AncestorByType returns the first instance in the lineage (the instance
// itself included) of the given node type, or nil.
func (i *Instance) AncestorByType(t *NodeType) *Instance {
	for cur := i; cur != nil; cur = cur.parent {
		if cur.typ == t {
			return cur
		}
	}
	return nil
}
