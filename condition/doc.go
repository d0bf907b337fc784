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

// Package condition implements the matchers used to resolve dynamic path
// segments in a traversal hierarchy.
//
// A Condition examines a single path segment together with the chain of
// ancestors already resolved, and reports whether the segment matches along
// with any values extracted from it. Conditions are pure values: they hold no
// mutable state and are safe for concurrent use.
//
// # Built-in Matchers
//
//   - DecimalID: decimal digits only, extracts an int64
//   - HexID: hexadecimal digits, extracts the raw segment
//   - TextID: a single word ([A-Za-z0-9_-]+), extracts the raw segment
//   - Any: matches every segment, extracts the raw segment
//   - Literal: exact string equality, extracts nothing
//
// # Combinators
//
// Conditions compose with And, Or and Not. Or tries its sub-conditions in
// declared order and short-circuits on the first match. Not always discards
// extracted values.
//
// # Contextual Matchers
//
// Under ignores the segment entirely and checks the ancestor chain for a
// named type or segment. Recursion matches a run of consecutive segments
// each satisfying a sub-condition, collecting the extracted values into an
// ordered list; it is the sanctioned way to mount a type as its own
// descendant.
//
// # Metanames
//
// Conditions that extract a value expose a default metaname, the key under
// which the value appears in the match result (for example "id" for
// DecimalID). The mount table may rename this key per edge.
package condition
