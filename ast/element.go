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

// Element is the capability contract shared by everything placed in a
// tree: leaf [Token]s and container [Node]s alike.
//
// This is a closed interface. The only implementations are [Token] and
// [Node]; user code cannot add more, and consumers may type-switch over
// exactly those two.
type Element interface {
	// Kind returns the tag identifying this element's concrete variant.
	Kind() Kind

	// Content returns the element's source text. For a Node this is
	// recomputed on every call from the children, in order.
	Content() string

	// Parent returns the Node that owns this element, or nil for a root
	// or detached element. The link is navigational only; it confers no
	// ownership.
	Parent() *Node

	// Significant reports whether the element is semantically meaningful,
	// as opposed to incidental layout such as whitespace or comments.
	Significant() bool

	// Elements returns the element's direct children in document order.
	// Tokens have none.
	Elements() []Element

	// VersionIntroduced returns the minimum host-interpreter version
	// under which this element is valid syntax.
	VersionIntroduced() Version

	// VersionRemoved returns the version at which this element stops
	// being valid syntax, if one is known.
	VersionRemoved() (Version, bool)

	// Finalize is called by the lexer exactly once, after the whole tree
	// exists, and returns the number of parse-failure markers in this
	// element's subtree. Not for use by consumers.
	Finalize() int

	// RecordCaptureNumber is called by the lexer to number capturing
	// constructs. next is the first unused capture number; the element
	// consumes values for itself and its subtree, in document order, and
	// returns the new first-unused number. Not for use by consumers.
	RecordCaptureNumber(next int) int

	setParent(*Node)
}

// isNilElement reports whether e is nil, including a typed nil inside the
// interface. The closed variant set keeps this exhaustive.
func isNilElement(e Element) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Token:
		return v == nil
	case *Node:
		return v == nil
	}
	return false
}
