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
	"fmt"
	"strings"

	"github.com/regexkit/regexkit/internal/ext/slicesx"
)

// Node is a container [Element]: an ordered sequence of child Elements.
// Insertion order is document order. A Node exclusively owns its
// children; construction sets each child's parent back-reference to the
// new Node, and the tree's shape never changes afterwards.
type Node struct {
	kind     Kind
	parent   *Node
	children []Element

	// Capture bookkeeping, meaningful only for KindCapture.
	name   string
	number int
}

// NewNode constructs a Node of the given kind adopting children, which
// are never copied or reordered. Construction is refused if kind is not a
// node kind or any child is nil; no partial Node exists on failure.
func NewNode(kind Kind, children ...Element) (*Node, error) {
	if !kind.IsNode() {
		return nil, fmt.Errorf("ast: cannot construct node with kind %v", kind)
	}
	for i, c := range children {
		if isNilElement(c) {
			return nil, fmt.Errorf("ast: child %d of %v is nil", i, kind)
		}
	}

	n := &Node{kind: kind, children: children}
	for _, c := range children {
		c.setParent(n)
	}
	return n, nil
}

// NewCapture constructs a [KindCapture] Node. name is the capture's name,
// or "" for a plain numbered capture. The capture's number is assigned
// later, by [Node.RecordCaptureNumber].
func NewCapture(name string, children ...Element) (*Node, error) {
	n, err := NewNode(KindCapture, children...)
	if err != nil {
		return nil, err
	}
	n.name = name
	return n, nil
}

// Kind implements [Element].
func (n *Node) Kind() Kind { return n.kind }

// Content implements [Element]. It is recomputed on every call as the
// concatenation, in document order, of each child's content; a Node
// caches no text.
func (n *Node) Content() string {
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.Content())
	}
	return sb.String()
}

// Parent implements [Element].
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Significant implements [Element]. Nodes are always significant.
func (n *Node) Significant() bool { return true }

// Name returns the capture name, or "" for an unnamed capture or a
// non-capture Node.
func (n *Node) Name() string { return n.name }

// Number returns the capture number assigned by
// [Node.RecordCaptureNumber], or 0 if none has been assigned.
func (n *Node) Number() int { return n.number }

// Child returns the i-th child by raw position, with no significance
// filtering. Negative i counts back from the end, so Child(-1) is the
// last child. Returns nil if i is out of range in either direction.
func (n *Node) Child(i int) Element {
	if i < 0 {
		i += len(n.children)
	}
	c, ok := slicesx.Get(n.children, i)
	if !ok {
		return nil
	}
	return c
}

// Children returns all children in document order. The returned slice is
// the Node's own storage and must not be modified.
func (n *Node) Children() []Element { return n.children }

// Elements implements [Element] as an alias of [Node.Children].
func (n *Node) Elements() []Element { return n.children }

// FirstElement returns the first child, or nil if the Node is empty.
func (n *Node) FirstElement() Element { return n.Child(0) }

// LastElement returns the last child, or nil if the Node is empty.
func (n *Node) LastElement() Element { return n.Child(-1) }

// Contains reports whether e is a strict descendant of n, by walking e's
// parent chain looking for n itself. Identity is pointer identity, not
// structural equality; a Node never contains itself, and a nil e is
// contained by nothing.
func (n *Node) Contains(e Element) bool {
	if isNilElement(e) {
		return false
	}
	for p := e.Parent(); p != nil; p = p.Parent() {
		if p == n {
			return true
		}
	}
	return false
}

// SChildren returns the ordered subsequence of children whose
// Significant flag is set.
func (n *Node) SChildren() []Element {
	var sig []Element
	for _, c := range n.children {
		if c.Significant() {
			sig = append(sig, c)
		}
	}
	return sig
}

// SChild returns the i-th significant child: SChild(0) is the first
// significant child and SChild(-1) the last. The scan skips
// insignificant children in place rather than materializing a filtered
// sequence. Returns nil if i indexes past either end.
func (n *Node) SChild(i int) Element {
	if i >= 0 {
		for _, c := range n.children {
			if !c.Significant() {
				continue
			}
			if i == 0 {
				return c
			}
			i--
		}
		return nil
	}

	for j := len(n.children) - 1; j >= 0; j-- {
		c := n.children[j]
		if !c.Significant() {
			continue
		}
		if i == -1 {
			return c
		}
		i++
	}
	return nil
}

// Nav reports how a direct child of n can be retrieved again: the name of
// the accessor method and the index to pass it. It fails unless child's
// recorded parent is n itself. Used by sibling-navigation helpers built
// on top of this package.
func (n *Node) Nav(child Element) (method string, index int, ok bool) {
	if isNilElement(child) || child.Parent() != n {
		return "", 0, false
	}
	for i, c := range n.children {
		if c == child {
			return "Child", i, true
		}
	}
	return "", 0, false
}

// VersionIntroduced implements [Element]: the maximum of
// [MinimumVersion] and every child's introduced version. An empty Node
// reports exactly the floor.
func (n *Node) VersionIntroduced() Version {
	newest := MinimumVersion
	for _, c := range n.children {
		if v := c.VersionIntroduced(); newest.Less(v) {
			newest = v
		}
	}
	return newest
}

// VersionRemoved implements [Element]: the minimum defined removal
// version among the children, since the container becomes invalid as
// soon as any child does. Ties keep the first child encountered. Reports
// false if no child defines one.
func (n *Node) VersionRemoved() (Version, bool) {
	var earliest Version
	var ok bool
	for _, c := range n.children {
		v, defined := c.VersionRemoved()
		if !defined {
			continue
		}
		if !ok || v.Less(earliest) {
			earliest, ok = v, true
		}
	}
	return earliest, ok
}

// Finalize implements [Element], fanning out to every child and summing
// the parse-failure counts. The lexer calls this exactly once on the
// root, after the whole tree exists.
func (n *Node) Finalize() int {
	var failures int
	for _, c := range n.children {
		failures += c.Finalize()
	}
	return failures
}

// RecordCaptureNumber implements [Element]. A capture Node consumes the
// current number for itself, then the counter is threaded through the
// children left to right, each child's return value feeding the next
// sibling; no child is visited twice. Returns the first number still
// unused after the subtree.
func (n *Node) RecordCaptureNumber(next int) int {
	if n.kind == KindCapture {
		n.number = next
		next++
	}
	for _, c := range n.children {
		next = c.RecordCaptureNumber(next)
	}
	return next
}

func (n *Node) setParent(p *Node) { n.parent = p }
