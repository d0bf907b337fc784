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
)

var (
	// ErrNotFound indicates that a segment matched no edge of the requesting
	// instance's type. Use errors.Is(err, ErrNotFound) to classify; the
	// concrete error is a *NotFoundError carrying the segment and path.
	ErrNotFound = errors.New("child not found")

	// ErrNotExist is the sentinel an init hook returns (or wraps) to signal
	// that the entity behind a resolved segment does not exist. The resolver
	// classifies it exactly like an unmatched segment.
	ErrNotExist = errors.New("entity does not exist")

	// ErrFrozen indicates a mount attempt on a type that already belongs to
	// a built hierarchy.
	ErrFrozen = errors.New("type is frozen")

	// ErrDuplicateMount indicates that a literal name is already mounted
	// under the same parent type.
	ErrDuplicateMount = errors.New("name already mounted")

	// ErrCyclicMount indicates a mount that would make the declaration graph
	// cyclic through ordinary edges. Cycles are only sanctioned for dynamic
	// edges whose condition contains a Recursion matcher.
	ErrCyclicMount = errors.New("mount would create a cycle")

	// ErrEmptyName indicates a static mount with an empty literal name.
	ErrEmptyName = errors.New("mount name is empty")

	// ErrNilChild indicates a mount with a nil child type.
	ErrNilChild = errors.New("child type is nil")

	// ErrNilCondition indicates a dynamic mount with a nil condition.
	ErrNilCondition = errors.New("condition is nil")

	// ErrNilRoot indicates that New was called with a nil root type.
	ErrNilRoot = errors.New("root type is nil")

	// ErrMetanameOnStaticMount indicates that WithMetaname was applied to a
	// static mount, which has no extracted value to name.
	ErrMetanameOnStaticMount = errors.New("metaname is only valid on dynamic mounts")
)

// NotFoundError reports a failed resolution: the segment matched no edge, or
// the matched type's init hook signalled ErrNotExist. Path is the requesting
// instance's resolved path; Consumed is the number of segments successfully
// resolved before the failure (multi-segment resolution only).
type NotFoundError struct {
	Segment  string
	Path     string
	Consumed int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("traversal: %q not found under %s", e.Segment, e.Path)
}

// Is reports true for ErrNotFound, so callers can classify without knowing
// the concrete type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConfigError reports an invalid declaration: a duplicate name, an
// unsanctioned cycle, or a malformed condition. It is returned only during
// tree declaration, never at resolution time.
type ConfigError struct {
	Type string // parent type name
	Name string // mounted literal name or condition description
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("traversal: mount %q under %s: %v", e.Name, e.Type, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(parent *NodeType, name string, err error) error {
	return &ConfigError{Type: parent.name, Name: name, Err: err}
}
