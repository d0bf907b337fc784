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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	t.Parallel()

	c := Literal("users")

	assert.True(t, c.Match("users", nil).Matched)
	assert.False(t, c.Match("user", nil).Matched)
	assert.False(t, c.Match("", nil).Matched)
	assert.Empty(t, c.Match("users", nil).Meta)
	assert.Empty(t, c.Metaname())
}

func TestDecimalID(t *testing.T) {
	t.Parallel()

	c := DecimalID()

	tests := []struct {
		segment string
		matched bool
		id      int64
	}{
		{"0", true, 0},
		{"1", true, 1},
		{"42", true, 42},
		{"007", true, 7},
		{"", false, 0},
		{"4a", false, 0},
		{"-1", false, 0},
		{"1.5", false, 0},
		{" 1", false, 0},
	}
	for _, tt := range tests {
		res := c.Match(tt.segment, nil)
		assert.Equal(t, tt.matched, res.Matched, "segment %q", tt.segment)
		if tt.matched {
			assert.Equal(t, tt.id, res.Meta["id"], "segment %q", tt.segment)
		}
	}
}

func TestDecimalID_Overflow(t *testing.T) {
	t.Parallel()

	// 20 digits overflow int64; the segment must not match.
	res := DecimalID().Match("99999999999999999999", nil)
	assert.False(t, res.Matched)
}

func TestHexID(t *testing.T) {
	t.Parallel()

	c := HexID()

	require.True(t, c.Match("deadBEEF42", nil).Matched)
	assert.Equal(t, "deadBEEF42", c.Match("deadBEEF42", nil).Meta["id"])
	assert.False(t, c.Match("xyz", nil).Matched)
	assert.False(t, c.Match("", nil).Matched)
}

func TestTextID(t *testing.T) {
	t.Parallel()

	c := TextID()

	require.True(t, c.Match("first-post_2", nil).Matched)
	assert.Equal(t, "first-post_2", c.Match("first-post_2", nil).Meta["slug"])
	assert.False(t, c.Match("two words", nil).Matched)
	assert.False(t, c.Match("", nil).Matched)
}

func TestAny(t *testing.T) {
	t.Parallel()

	c := Any()

	require.True(t, c.Match("Some File 123", nil).Matched)
	assert.Equal(t, "Some File 123", c.Match("Some File 123", nil).Meta["name"])
	assert.True(t, c.Match("", nil).Matched)
}

func TestPattern(t *testing.T) {
	t.Parallel()

	c := Pattern(regexp.MustCompile(`^[\d]+-[\w\-]+$`), "post_id")

	require.True(t, c.Match("1-first-post", nil).Matched)
	assert.Equal(t, "1-first-post", c.Match("1-first-post", nil).Meta["post_id"])
	assert.False(t, c.Match("first-post", nil).Matched)
	assert.Equal(t, "post_id", c.Metaname())
	assert.Equal(t, "{post_id}", c.String())
}

func TestPattern_Anonymous(t *testing.T) {
	t.Parallel()

	c := Pattern(regexp.MustCompile(`^v[\d]+$`), "")

	res := c.Match("v2", nil)
	require.True(t, res.Matched)
	assert.Empty(t, res.Meta)
	assert.Empty(t, c.Metaname())
}
