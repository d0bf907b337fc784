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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/traversal/condition"
)

func routeStrings(routes []*Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.String()
	}
	return out
}

func TestRoutes_BlogFixture(t *testing.T) {
	t.Parallel()

	h := newBlogFixture(t)

	assert.Equal(t, []string{
		"/",
		"/posts/",
		"/posts/{post_id}/",
		"/users/",
		"/users/{user_id}/",
		"/users/{user_id}/posts/",
		"/users/{user_id}/posts/{post_id}/",
	}, routeStrings(h.Routes()))
}

func TestRoutes_Deterministic(t *testing.T) {
	t.Parallel()

	h := newBlogFixture(t)

	first := routeStrings(h.Routes())
	second := routeStrings(h.Routes())
	assert.Equal(t, first, second)
}

func TestRoutes_TerminalTypes(t *testing.T) {
	t.Parallel()

	h := newBlogFixture(t)
	routes := h.Routes()

	require.NotEmpty(t, routes)
	assert.Equal(t, "Root", routes[0].Type.Name())
	assert.Empty(t, routes[0].Segments)

	last := routes[len(routes)-1]
	assert.Equal(t, "Post", last.Type.Name())
	require.Len(t, last.Segments, 4)
	assert.False(t, last.Segments[0].Dynamic)
	assert.Equal(t, "users", last.Segments[0].Literal)
	assert.True(t, last.Segments[1].Dynamic)
	assert.Equal(t, "user_id", last.Segments[1].Metaname)
}

func TestRoutes_GuardPrunesBranch(t *testing.T) {
	t.Parallel()

	blog := NewType("Blog")
	posts := NewType("Posts")
	post := NewType("Post")
	comments := NewType("Comments")

	blog.MustMount("posts", posts)
	blog.MustMount("drafts", posts)
	posts.MustMountSet(condition.DecimalID(), post, WithMetaname("post_id"))
	post.MustMount("comments", comments,
		WithGuard(condition.Not(condition.Under("drafts"))))

	assert.Equal(t, []string{
		"/",
		"/drafts/",
		"/drafts/{post_id}/",
		"/posts/",
		"/posts/{post_id}/",
		"/posts/{post_id}/comments/",
	}, routeStrings(Routes(blog)))
}

func TestRoutes_CollapsesDeclaredCycle(t *testing.T) {
	t.Parallel()

	categories := NewType("Categories")
	category := NewType("Category")
	categories.MustMountSet(condition.DecimalID(), category, WithMetaname("category_id"))
	category.MustMount("categories", categories,
		WithGuard(condition.MaxDepth(2)))

	// The declared cycle is collapsed to a single representative segment.
	assert.Equal(t, []string{
		"/",
		"/{category_id}/",
		"/{category_id}/categories/",
	}, routeStrings(Routes(categories)))
}

func TestRoutes_SelfMount(t *testing.T) {
	t.Parallel()

	root := NewType("Root")
	dir := NewType("Dir")
	root.MustMount("files", dir)
	dir.MustMountSet(condition.Recursion(condition.TextID(), 0), dir,
		WithMetaname("segments"))

	assert.Equal(t, []string{
		"/",
		"/files/",
		"/files/{segments}/",
	}, routeStrings(Routes(root)))
}

func TestRoutes_AnonymousDynamicSegment(t *testing.T) {
	t.Parallel()

	root := NewType("Root")
	version := NewType("Version")
	root.MustMountSet(condition.Not(condition.Literal("latest")), version)

	assert.Equal(t, []string{"/", "/*/"}, routeStrings(Routes(root)))
}

func TestRoutes_NilRoot(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Routes(nil))
}

func TestRoutes_SharedTypeUnderMultipleParents(t *testing.T) {
	t.Parallel()

	root := NewType("Root")
	user := NewType("User")
	blog := NewType("Blog")
	postSet := NewType("Post")

	root.MustMount("blog", blog)
	root.MustMount("user", user)
	user.MustMount("blog", blog)
	blog.MustMountSet(condition.TextID(), postSet, WithMetaname("slug"))

	assert.Equal(t, []string{
		"/",
		"/blog/",
		"/blog/{slug}/",
		"/user/",
		"/user/blog/",
		"/user/blog/{slug}/",
	}, routeStrings(Routes(root)))
}
