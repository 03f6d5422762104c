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

// Package parser turns a regular-expression pattern into an [ast] tree.
//
// Parsing is fault-tolerant: malformed input never fails the parse.
// Constructs the tokenizer cannot make sense of become
// [ast.KindUnknown] tokens, preserved in place so the tree's content
// still reproduces the input byte for byte, and surfaced through
// [Tree.Failures].
package parser

import (
	"github.com/regexkit/regexkit/ast"
)

// Option configures a parse.
type Option func(*config)

type config struct {
	extended bool
}

// Extended enables /x semantics: unescaped whitespace and # comments are
// tokenized as insignificant elements instead of literals.
func Extended() Option {
	return func(c *config) { c.extended = true }
}

// Tree is a parsed pattern.
type Tree struct {
	root       *ast.Node
	failures   int
	maxCapture int
}

// Parse parses pattern into a tree rooted at an [ast.KindPattern] Node.
// After assembly it runs the two lifecycle passes on the root: Finalize,
// then RecordCaptureNumber starting at 1.
//
// The returned error reports only internal construction failures;
// malformed patterns parse successfully and report through
// [Tree.Failures].
func Parse(pattern string, opts ...Option) (*Tree, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	toks := tokenize(pattern, cfg.extended)
	root, err := assemble(toks)
	if err != nil {
		return nil, err
	}

	failures := root.Finalize()
	next := root.RecordCaptureNumber(1)

	return &Tree{
		root:       root,
		failures:   failures,
		maxCapture: next - 1,
	}, nil
}

// Root returns the root of the tree.
func (t *Tree) Root() *ast.Node { return t.root }

// Failures returns the number of parse-failure markers in the tree. A
// clean parse reports zero.
func (t *Tree) Failures() int { return t.failures }

// MaxCaptureNumber returns the highest capture number assigned in the
// tree, or zero if the pattern has no capturing groups.
func (t *Tree) MaxCaptureNumber() int { return t.maxCapture }
