// Copyright 2024-2026 The Regexkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dump renders an [ast] tree as an indented listing, one element
// per line, for debugging and golden tests.
package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/regexkit/regexkit/ast"
)

// Option configures a dump.
type Option func(*config)

type config struct {
	maxWidth int
}

// MaxWidth truncates each content column to at most cols terminal
// columns, measured in display width, marking the cut with an ellipsis.
func MaxWidth(cols int) Option {
	return func(c *config) { c.maxWidth = cols }
}

// Dump writes the listing for e's subtree to w.
func Dump(w io.Writer, e ast.Element, opts ...Option) error {
	_, err := io.WriteString(w, String(e, opts...))
	return err
}

// String renders the listing for e's subtree. Each line is the element's
// kind path, indented two spaces per depth; token lines carry the quoted
// token content in a column aligned across the whole listing. Capture
// nodes show their number and name.
func String(e ast.Element, opts ...Option) string {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var lines []line
	collect(e, 0, cfg, &lines)

	// Content columns line up two spaces past the widest label. Width is
	// display width, not byte length.
	var widest int
	for _, l := range lines {
		if w := uniseg.StringWidth(l.label); w > widest {
			widest = w
		}
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.label)
		if l.content != "" {
			pad := widest + 2 - uniseg.StringWidth(l.label)
			sb.WriteString(strings.Repeat(" ", pad))
			sb.WriteString(l.content)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type line struct {
	label, content string
}

func collect(e ast.Element, depth int, cfg config, lines *[]line) {
	label := strings.Repeat("  ", depth) + e.Kind().Path()

	n, isNode := e.(*ast.Node)
	if isNode && n.Kind() == ast.KindCapture {
		if n.Number() > 0 {
			label += fmt.Sprintf("[%d]", n.Number())
		}
		if n.Name() != "" {
			label += "<" + n.Name() + ">"
		}
	}

	var content string
	if !isNode {
		text := e.Content()
		if cfg.maxWidth > 0 {
			text = truncate(text, cfg.maxWidth)
		}
		content = strconv.Quote(text)
	}
	*lines = append(*lines, line{label: label, content: content})

	for _, c := range e.Elements() {
		collect(c, depth+1, cfg, lines)
	}
}

// truncate cuts s to at most cols display columns, on a grapheme-cluster
// boundary, appending an ellipsis when anything was cut.
func truncate(s string, cols int) string {
	if uniseg.StringWidth(s) <= cols {
		return s
	}

	var sb strings.Builder
	var used int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > cols-1 {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	sb.WriteString("…")
	return sb.String()
}
