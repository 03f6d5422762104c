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

package ast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regexkit/regexkit/ast"
)

// literalTree builds a(b)c|d with three top-level literals and a fourth
// inside a nested group.
func literalTree(t *testing.T) (root, group *ast.Node) {
	t.Helper()
	group = node(t, ast.KindGroup,
		ast.NewToken(ast.KindDelimiter, "("),
		lit("b"),
		ast.NewToken(ast.KindDelimiter, ")"),
	)
	root = node(t, ast.KindPattern,
		lit("a"),
		group,
		lit("c"),
		ast.NewToken(ast.KindOperator, "|"),
		lit("d"),
	)
	return root, group
}

func TestFindByKindPath(t *testing.T) {
	t.Parallel()

	root, _ := literalTree(t)

	found, err := root.Find("Token::Literal")
	require.NoError(t, err)
	require.Len(t, found, 4)
	// Document order: each node's own match precedes its descendants'.
	assert.Equal(t, "a", found[0].Content())
	assert.Equal(t, "b", found[1].Content())
	assert.Equal(t, "c", found[2].Content())
	assert.Equal(t, "d", found[3].Content())
}

func TestFindByFamily(t *testing.T) {
	t.Parallel()

	root, group := literalTree(t)

	toks, err := root.Find("Token")
	require.NoError(t, err)
	assert.Len(t, toks, 7)

	nodes, err := root.Find("Node")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Same(t, group, nodes[0])
}

func TestFindSelectorForms(t *testing.T) {
	t.Parallel()

	root, _ := literalTree(t)

	qualified, err := root.Find("Regexkit::Token::Literal")
	require.NoError(t, err)
	assert.Len(t, qualified, 4)

	byKind, err := root.Find(ast.KindLiteral)
	require.NoError(t, err)
	assert.Len(t, byKind, 4)

	byMatcher, err := root.Find(func(_ *ast.Node, e ast.Element) (ast.MatchResult, error) {
		if e.Kind() == ast.KindLiteral {
			return ast.Include, nil
		}
		return ast.Exclude, nil
	})
	require.NoError(t, err)
	assert.Len(t, byMatcher, 4)
}

func TestFindNothing(t *testing.T) {
	t.Parallel()

	root, _ := literalTree(t)

	// A path naming no variant is an empty result, not an error.
	found, err := root.Find("Token::Bogus")
	require.NoError(t, err)
	assert.Nil(t, found)

	first, err := root.FindFirst("Token::Bogus")
	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestFindInvalidSelector(t *testing.T) {
	t.Parallel()

	root, _ := literalTree(t)

	_, err := root.Find(42)
	assert.ErrorIs(t, err, ast.ErrInvalidSelector)

	_, err = root.FindFirst(42)
	assert.ErrorIs(t, err, ast.ErrInvalidSelector)

	_, err = root.Find(ast.Matcher(nil))
	assert.ErrorIs(t, err, ast.ErrInvalidSelector)
}

func TestFindPrune(t *testing.T) {
	t.Parallel()

	root, _ := literalTree(t)

	found, err := root.Find(func(_ *ast.Node, e ast.Element) (ast.MatchResult, error) {
		switch e.Kind() {
		case ast.KindLiteral:
			return ast.Include, nil
		case ast.KindGroup:
			return ast.ExcludeAndPrune, nil
		default:
			return ast.Exclude, nil
		}
	})
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "a", found[0].Content())
	assert.Equal(t, "c", found[1].Content())
	assert.Equal(t, "d", found[2].Content())
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	root, group := literalTree(t)

	first, err := root.FindFirst("Token::Literal")
	require.NoError(t, err)
	assert.Equal(t, "a", first.Content())

	// The nested literal is reached before later siblings.
	first, err = root.FindFirst(func(_ *ast.Node, e ast.Element) (ast.MatchResult, error) {
		if e.Kind() == ast.KindLiteral && e.Content() != "a" {
			return ast.Include, nil
		}
		return ast.Exclude, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "b", first.Content())
	assert.True(t, group.Contains(first))
}

func TestFindFaultAtTopLevel(t *testing.T) {
	t.Parallel()

	root, _ := literalTree(t)
	boom := errors.New("boom")

	var seen int
	found, err := root.Find(func(container *ast.Node, _ ast.Element) (ast.MatchResult, error) {
		if container == root {
			seen++
			if seen == 2 {
				return ast.Exclude, boom
			}
		}
		return ast.Include, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, found)
}

// faultInside returns a matcher that includes every literal but fails as
// soon as it is asked about the children of group.
func faultInside(group *ast.Node, fault error) ast.Matcher {
	return func(container *ast.Node, e ast.Element) (ast.MatchResult, error) {
		if container == group {
			return ast.Exclude, fault
		}
		if e.Kind() == ast.KindLiteral {
			return ast.Include, nil
		}
		return ast.Exclude, nil
	}
}

func TestFindNestedFaultIsDropped(t *testing.T) {
	t.Parallel()

	root, group := literalTree(t)
	boom := errors.New("boom")

	// The faulting subtree contributes nothing, and the scan of the
	// remaining siblings continues.
	found, err := root.Find(faultInside(group, boom))
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "a", found[0].Content())
	assert.Equal(t, "c", found[1].Content())
	assert.Equal(t, "d", found[2].Content())
}

func TestFindFirstNestedFaultPropagates(t *testing.T) {
	t.Parallel()

	root, group := literalTree(t)
	boom := errors.New("boom")

	// Unlike Find, FindFirst aborts on a fault inside a nested node. The
	// matcher excludes "a" so the search has to descend.
	m := faultInside(group, boom)
	first, err := root.FindFirst(func(container *ast.Node, e ast.Element) (ast.MatchResult, error) {
		if container == root && e.Content() == "a" {
			return ast.Exclude, nil
		}
		return m(container, e)
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, first)
}
