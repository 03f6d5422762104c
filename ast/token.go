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

import "fmt"

// Token is a leaf [Element]: a run of source text with a [Kind] tag and
// intrinsic version facts. Tokens are immutable once constructed, except
// for the parent link established when a [Node] adopts them.
type Token struct {
	kind       Kind
	text       string
	parent     *Node
	introduced Version
	removed    *Version
}

// TokenOption configures a [Token] at construction.
type TokenOption func(*Token)

// IntroducedIn records the minimum host-interpreter version under which
// the token is valid syntax. Tokens default to [MinimumVersion].
func IntroducedIn(v Version) TokenOption {
	return func(t *Token) { t.introduced = v }
}

// RemovedIn records the host-interpreter version at which the token stops
// being valid syntax.
func RemovedIn(v Version) TokenOption {
	return func(t *Token) { t.removed = &v }
}

// NewToken returns a new detached token. kind must be a token kind; a
// node kind is a programmer error and panics.
func NewToken(kind Kind, text string, opts ...TokenOption) *Token {
	if !kind.IsToken() {
		panic(fmt.Sprintf("ast: NewToken called with non-token kind %v", kind))
	}
	t := &Token{kind: kind, text: text, introduced: MinimumVersion}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Kind implements [Element].
func (t *Token) Kind() Kind { return t.kind }

// Content implements [Element].
func (t *Token) Content() string { return t.text }

// Parent implements [Element].
func (t *Token) Parent() *Node {
	if t == nil {
		return nil
	}
	return t.parent
}

// Significant implements [Element]. Whitespace and comments are the
// incidental kinds; everything else is significant.
func (t *Token) Significant() bool {
	return t.kind != KindWhitespace && t.kind != KindComment
}

// Elements implements [Element]. A token has no children.
func (t *Token) Elements() []Element { return nil }

// VersionIntroduced implements [Element].
func (t *Token) VersionIntroduced() Version { return t.introduced }

// VersionRemoved implements [Element].
func (t *Token) VersionRemoved() (Version, bool) {
	if t.removed == nil {
		return Version{}, false
	}
	return *t.removed, true
}

// Finalize implements [Element]. An Unknown token is a parse-failure
// marker and counts as one.
func (t *Token) Finalize() int {
	if t.kind == KindUnknown {
		return 1
	}
	return 0
}

// RecordCaptureNumber implements [Element]. Tokens never consume a
// capture number.
func (t *Token) RecordCaptureNumber(next int) int { return next }

func (t *Token) setParent(n *Node) { t.parent = n }
