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

// Package traversal builds hierarchical resource trees that resolve path
// segments into typed, location-aware instances, and enumerates the tree's
// canonical route templates ahead of time.
//
// The package is meant to be embedded in a request-routing layer: the host
// splits an incoming path on "/" and hands the segments to ResolvePath; the
// returned instance knows its name, parent, extracted metadata and resolved
// path. There is no network, persistence or dispatch here.
//
// # Declaration and Resolution
//
// A tree is declared once at startup from NodeTypes connected by mount
// edges, then frozen into a Hierarchy:
//
//	root := traversal.NewType("Root")
//	users := traversal.NewType("Users")
//	user := traversal.NewType("User")
//
//	root.MustMount("users", users)
//	users.MustMountSet(condition.DecimalID(), user, traversal.WithMetaname("user_id"))
//
//	h := traversal.MustNew(root)
//
//	inst, err := h.ResolvePath([]string{"users", "42"})
//	// inst.Name() == "42", inst.Path() == "/users/42/"
//	// inst.Value("user_id") == int64(42)
//
// Static edges win unconditionally over dynamic ones; dynamic edges are
// tried in registration order. A failed resolution is a *NotFoundError,
// classified with errors.Is(err, ErrNotFound).
//
// # Route Templates
//
// Routes walks the declared types, never instances, and emits the canonical
// templates in a stable order:
//
//	for _, r := range h.Routes() {
//	    fmt.Println(r) // "/", "/users/", "/users/{user_id}/"
//	}
//
// # Concurrency
//
// Declaration is single-threaded: mount every edge, then call New. After
// that the hierarchy is immutable; Get, ResolvePath and Routes are safe
// for unsynchronized concurrent use because every resolution allocates a
// fresh instance and shares no mutable state. Init hooks are the only
// external code on that path and must be concurrency-safe themselves.
//
// # Init Hooks
//
// A type may carry an init hook validating resolved instances, typically
// checking that an id refers to an existing entity. A hook returning (or
// wrapping) ErrNotExist makes the segment resolve as not found; any other
// hook error reaches the caller unchanged. Hooks that perform long-running
// work should layer their own timeouts; traversal imposes no cancellation
// semantics.
package traversal
