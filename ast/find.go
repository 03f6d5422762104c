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

package ast

import (
	"errors"
	"strings"
)

// ErrInvalidSelector is returned by [Node.Find] and [Node.FindFirst] when
// the selector is neither a kind path, a [Kind], nor a [Matcher].
var ErrInvalidSelector = errors.New("ast: invalid selector")

const (
	// Exclude leaves the candidate out of the result set. If the
	// candidate is a Node, the search still descends into it.
	Exclude MatchResult = iota

	// Include adds the candidate to the result set.
	Include

	// ExcludeAndPrune leaves the candidate out and additionally forbids
	// descending into it, cutting its whole subtree out of the search.
	ExcludeAndPrune
)

// MatchResult is a [Matcher]'s verdict on a single candidate.
type MatchResult int8

// Matcher is a selector callback for [Node.Find] and [Node.FindFirst].
// container is the Node whose child list is being scanned and candidate
// the element under consideration. A non-nil error aborts the search; see
// Find and FindFirst for how errors inside nested Nodes differ.
type Matcher func(container *Node, candidate Element) (MatchResult, error)

// resolveSelector turns a selector argument into a Matcher. Selectors are
// kind paths (optionally qualified with [Namespace]), Kind values, or
// Matcher callbacks; anything else is ErrInvalidSelector.
func resolveSelector(selector any) (Matcher, error) {
	switch s := selector.(type) {
	case string:
		return matchKindPath(s), nil
	case Kind:
		return matchKindPath(s.Path()), nil
	case Matcher:
		if s == nil {
			return nil, ErrInvalidSelector
		}
		return s, nil
	case func(*Node, Element) (MatchResult, error):
		if s == nil {
			return nil, ErrInvalidSelector
		}
		return s, nil
	default:
		return nil, ErrInvalidSelector
	}
}

// matchKindPath builds a Matcher for a kind path selector. A candidate
// matches if its kind path equals the selector or the selector names one
// of its ancestor families, so "Token" matches every leaf token and
// "Token::Literal" only literals. A path naming no variant matches
// nothing; that is a legitimately empty result, not an error.
func matchKindPath(path string) Matcher {
	path = strings.TrimPrefix(path, Namespace)
	return func(_ *Node, candidate Element) (MatchResult, error) {
		p := candidate.Kind().Path()
		if p == path || strings.HasPrefix(p, path+"::") {
			return Include, nil
		}
		return Exclude, nil
	}
}

// Find returns every element of n's subtree matched by selector, in
// document order (each Node before its descendants). An empty result is
// (nil, nil), distinct from an error.
//
// A Matcher error during the scan of n's own children aborts this call.
// An error inside a nested Node's scan does not: that subtree's partial
// results are dropped and the scan of n's remaining children continues.
// [Node.FindFirst] handles nested errors differently.
func (n *Node) Find(selector any) ([]Element, error) {
	m, err := resolveSelector(selector)
	if err != nil {
		return nil, err
	}
	return n.findAll(m)
}

func (n *Node) findAll(m Matcher) ([]Element, error) {
	var found []Element
	for _, c := range n.children {
		r, err := m(n, c)
		if err != nil {
			return nil, err
		}
		if r == Include {
			found = append(found, c)
		}

		child, ok := c.(*Node)
		if !ok || r == ExcludeAndPrune {
			continue
		}
		sub, err := child.findAll(m)
		if err != nil {
			continue
		}
		found = append(found, sub...)
	}
	return found, nil
}

// FindFirst returns the first element of n's subtree, in document order,
// matched by selector, or (nil, nil) if nothing matches. Unlike
// [Node.Find], a Matcher error anywhere in the subtree, including inside
// nested Nodes, aborts the whole search.
func (n *Node) FindFirst(selector any) (Element, error) {
	m, err := resolveSelector(selector)
	if err != nil {
		return nil, err
	}
	return n.findFirst(m)
}

func (n *Node) findFirst(m Matcher) (Element, error) {
	for _, c := range n.children {
		r, err := m(n, c)
		if err != nil {
			return nil, err
		}
		if r == Include {
			return c, nil
		}

		child, ok := c.(*Node)
		if !ok || r == ExcludeAndPrune {
			continue
		}
		hit, err := child.findFirst(m)
		if err != nil {
			return nil, err
		}
		if hit != nil {
			return hit, nil
		}
	}
	return nil, nil
}
