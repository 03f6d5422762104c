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

// Package ast defines the parse tree for a Perl-flavored regular
// expression dialect.
//
// Every value placed in a tree satisfies the [Element] interface. Leaves
// are [Token] values and interior vertices are [Node] values; both carry a
// [Kind] tag identifying the concrete variant. Element is a closed
// interface: user code cannot implement it, and consumers may rely on
// every Element being exactly one of those two types.
//
// Trees are built bottom-up, by the lexer in package parser: children
// first, then their enclosing [Node], whose construction establishes the
// parent back-reference on each child. A Node owns its children; the
// parent link is purely navigational and never keeps a subtree alive.
// Once constructed, a tree's shape never changes. The only post-
// construction mutation is performed through two hooks the lexer calls
// after the whole tree exists: [Node.Finalize] and
// [Node.RecordCaptureNumber]. Everything else is a read, so any number of
// goroutines may traverse a finished tree concurrently.
//
// Subtree search goes through [Node.Find] and [Node.FindFirst], which
// accept either a kind path such as "Token::Literal" or a [Matcher]
// callback; a Matcher can prune whole subtrees by returning
// [ExcludeAndPrune].
//
// Elements also report the range of host-interpreter versions under which
// they are valid syntax, as [Version] values; a Node aggregates the
// reports of its children. See [Node.VersionIntroduced] and
// [Node.VersionRemoved].
package ast
