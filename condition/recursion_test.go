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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecursion_FirstSegment(t *testing.T) {
	t.Parallel()

	c := Recursion(DecimalID(), 0)

	res := c.Match("7", []Ancestor{{TypeName: "Dirs", Name: ""}})
	require.True(t, res.Matched)
	assert.Equal(t, []any{int64(7)}, res.Meta["id"])

	assert.False(t, c.Match("abc", nil).Matched)
}

func TestRecursion_AccumulatesRun(t *testing.T) {
	t.Parallel()

	c := Recursion(DecimalID(), 0)

	// /1/2/ already resolved; "3" extends the run.
	chain := []Ancestor{
		{TypeName: "Dir", Name: ""},
		{TypeName: "Dir", Name: "1"},
		{TypeName: "Dir", Name: "2"},
	}
	res := c.Match("3", chain)
	require.True(t, res.Matched)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, res.Meta["id"])
}

func TestRecursion_RunBreaksAtNonMatchingAncestor(t *testing.T) {
	t.Parallel()

	c := Recursion(DecimalID(), 0)

	// "docs" does not satisfy DecimalID, so only the tail after it counts.
	chain := []Ancestor{
		{TypeName: "Root", Name: ""},
		{TypeName: "Docs", Name: "docs"},
		{TypeName: "Dir", Name: "5"},
	}
	res := c.Match("6", chain)
	require.True(t, res.Matched)
	assert.Equal(t, []any{int64(5), int64(6)}, res.Meta["id"])
}

func TestRecursion_MaxDepthBoundsRun(t *testing.T) {
	t.Parallel()

	c := Recursion(DecimalID(), 2)

	chain := []Ancestor{
		{TypeName: "Dir", Name: ""},
		{TypeName: "Dir", Name: "1"},
	}
	assert.True(t, c.Match("2", chain).Matched)

	deeper := append(chain, Ancestor{TypeName: "Dir", Name: "2"})
	assert.False(t, c.Match("3", deeper).Matched)
}

func TestRecursion_MetanameFallsBackToItems(t *testing.T) {
	t.Parallel()

	c := Recursion(Literal("x"), 0)

	assert.Equal(t, "items", c.Metaname())
	res := c.Match("x", nil)
	require.True(t, res.Matched)
	assert.Equal(t, []any{"x"}, res.Meta["items"])
}

func TestIsRecursive(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRecursive(Recursion(DecimalID(), 0)))
	assert.True(t, IsRecursive(And(TextID(), Recursion(DecimalID(), 3))))
	assert.True(t, IsRecursive(MaxDepth(2)))
	assert.True(t, IsRecursive(Not(MaxDepth(2))))
	assert.False(t, IsRecursive(DecimalID()))
	assert.False(t, IsRecursive(And(DecimalID(), Under("a"))))
}
