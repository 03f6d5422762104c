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

package parser

import (
	"strings"

	"github.com/regexkit/regexkit/ast"
)

// frame is a container under assembly: the run of elements between an
// opening delimiter and its (eventual) closing one.
type frame struct {
	kind  ast.Kind
	name  string
	elems []ast.Element
}

func (f *frame) build() (*ast.Node, error) {
	if f.kind == ast.KindCapture {
		return ast.NewCapture(f.name, f.elems...)
	}
	return ast.NewNode(f.kind, f.elems...)
}

// assemble pairs delimiter tokens into Group, Capture, and Class nodes,
// bottom-up, and wraps the result in the Pattern root. An unmatched
// closing delimiter becomes an Unknown token in place; an unterminated
// container has its opening delimiter demoted to Unknown and its
// contents spliced into the enclosing container, so the tree's content
// is always byte-identical to the input.
func assemble(toks []ast.Element) (*ast.Node, error) {
	stack := []*frame{{kind: ast.KindPattern}}
	top := func() *frame { return stack[len(stack)-1] }

	for _, e := range toks {
		tok, ok := e.(*ast.Token)
		if !ok {
			top().elems = append(top().elems, e)
			continue
		}

		switch {
		case tok.Kind() == ast.KindGroupType:
			// The introducer right after ( refines the frame pushed
			// for it; a plain ( stays a capture.
			f := top()
			if f.kind == ast.KindCapture && len(f.elems) == 1 {
				f.kind, f.name = groupKind(tok.Content())
			}
			f.elems = append(f.elems, tok)
		case tok.Kind() != ast.KindDelimiter:
			top().elems = append(top().elems, tok)
		case tok.Content() == "(":
			stack = append(stack, &frame{kind: ast.KindCapture, elems: []ast.Element{tok}})
		case tok.Content() == "[":
			stack = append(stack, &frame{kind: ast.KindClass, elems: []ast.Element{tok}})
		case tok.Content() == ")":
			if len(stack) == 1 || top().kind == ast.KindClass {
				top().elems = append(top().elems, ast.NewToken(ast.KindUnknown, ")"))
				continue
			}
			f := top()
			stack = stack[:len(stack)-1]
			f.elems = append(f.elems, tok)
			n, err := f.build()
			if err != nil {
				return nil, err
			}
			top().elems = append(top().elems, n)
		case tok.Content() == "]":
			if top().kind != ast.KindClass {
				top().elems = append(top().elems, ast.NewToken(ast.KindUnknown, "]"))
				continue
			}
			f := top()
			stack = stack[:len(stack)-1]
			f.elems = append(f.elems, tok)
			n, err := f.build()
			if err != nil {
				return nil, err
			}
			top().elems = append(top().elems, n)
		default:
			top().elems = append(top().elems, tok)
		}
	}

	for len(stack) > 1 {
		f := top()
		stack = stack[:len(stack)-1]
		f.elems[0] = ast.NewToken(ast.KindUnknown, f.elems[0].Content())
		top().elems = append(top().elems, f.elems...)
	}

	return ast.NewNode(ast.KindPattern, stack[0].elems...)
}

// groupKind maps a group-type introducer to the node kind it opens, plus
// the capture name for the named forms.
func groupKind(text string) (ast.Kind, string) {
	switch {
	case strings.HasPrefix(text, "?<=") || strings.HasPrefix(text, "?<!"):
		return ast.KindGroup, ""
	case strings.HasPrefix(text, "?P<"):
		return ast.KindCapture, strings.TrimSuffix(text[3:], ">")
	case strings.HasPrefix(text, "?<"):
		return ast.KindCapture, strings.TrimSuffix(text[2:], ">")
	case strings.HasPrefix(text, "?'"):
		return ast.KindCapture, strings.TrimSuffix(text[2:], "'")
	default:
		return ast.KindGroup, ""
	}
}
