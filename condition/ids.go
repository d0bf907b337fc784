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
	"regexp"
	"strconv"
)

var (
	hexPattern  = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	textPattern = regexp.MustCompile(`^[\w\-]+$`)
)

// Literal matches a segment by exact string equality. It extracts nothing.
//
// Static mounts cover the common case; Literal exists for composition, for
// example Or(Literal("current"), DecimalID()).
func Literal(name string) Condition {
	return literalCondition(name)
}

type literalCondition string

func (c literalCondition) Match(segment string, _ []Ancestor) Result {
	if segment != string(c) {
		return Result{}
	}
	return Matched(nil)
}

func (c literalCondition) Metaname() string { return "" }

func (c literalCondition) String() string { return string(c) }

// DecimalID matches segments consisting only of decimal digits and extracts
// the parsed value as an int64 under the metaname "id". Segments that do not
// fit in an int64 do not match.
func DecimalID() Condition {
	return decimalCondition{}
}

type decimalCondition struct{}

func (decimalCondition) Match(segment string, _ []Ancestor) Result {
	if segment == "" {
		return Result{}
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return Result{}
		}
	}
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return Result{}
	}
	return Matched(map[string]any{"id": id})
}

func (decimalCondition) Metaname() string { return "id" }

func (decimalCondition) String() string { return "{id}" }

// HexID matches non-empty segments of hexadecimal digits, case-insensitive.
// The raw segment is extracted under the metaname "id".
func HexID() Condition {
	return hexCondition{}
}

type hexCondition struct{}

func (hexCondition) Match(segment string, _ []Ancestor) Result {
	if !hexPattern.MatchString(segment) {
		return Result{}
	}
	return Matched(map[string]any{"id": segment})
}

func (hexCondition) Metaname() string { return "id" }

func (hexCondition) String() string { return "{id}" }

// TextID matches a single word: letters, digits, underscores and hyphens.
// The raw segment is extracted under the metaname "slug".
func TextID() Condition {
	return textCondition{}
}

type textCondition struct{}

func (textCondition) Match(segment string, _ []Ancestor) Result {
	if !textPattern.MatchString(segment) {
		return Result{}
	}
	return Matched(map[string]any{"slug": segment})
}

func (textCondition) Metaname() string { return "slug" }

func (textCondition) String() string { return "{slug}" }

// Any matches every segment, including the empty one. The raw segment is
// extracted under the metaname "name".
func Any() Condition {
	return anyCondition{}
}

type anyCondition struct{}

func (anyCondition) Match(segment string, _ []Ancestor) Result {
	return Matched(map[string]any{"name": segment})
}

func (anyCondition) Metaname() string { return "name" }

func (anyCondition) String() string { return "{name}" }

// Pattern matches segments against a compiled regular expression. The raw
// segment is extracted under the given metaname; an empty metaname makes the
// condition extract nothing.
func Pattern(re *regexp.Regexp, metaname string) Condition {
	return &patternCondition{re: re, metaname: metaname}
}

type patternCondition struct {
	re       *regexp.Regexp
	metaname string
}

func (c *patternCondition) Match(segment string, _ []Ancestor) Result {
	if !c.re.MatchString(segment) {
		return Result{}
	}
	if c.metaname == "" {
		return Matched(nil)
	}
	return Matched(map[string]any{c.metaname: segment})
}

func (c *patternCondition) Metaname() string { return c.metaname }

func (c *patternCondition) String() string {
	if c.metaname != "" {
		return fmt.Sprintf("{%s}", c.metaname)
	}
	return fmt.Sprintf("{%s}", c.re.String())
}
