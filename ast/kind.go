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

const (
	// Token kinds.
	KindLiteral Kind = iota + 1
	KindWhitespace
	KindComment
	KindOperator
	KindQuantifier
	KindBackreference
	KindCharClass
	KindAssertion
	KindDelimiter
	KindGroupType
	KindUnknown

	// Node kinds.
	KindPattern
	KindGroup
	KindCapture
	KindClass
)

// Namespace is the conventional prefix for fully qualified kind paths.
// Selector strings passed to [Node.Find] may carry it or omit it.
const Namespace = "Regexkit::"

// Kind identifies the concrete variant of an [Element]. The set of kinds
// is closed; there is one value for each token and node variant this
// package defines.
type Kind int8

var kindPaths = [...]string{
	KindLiteral:       "Token::Literal",
	KindWhitespace:    "Token::Whitespace",
	KindComment:       "Token::Comment",
	KindOperator:      "Token::Operator",
	KindQuantifier:    "Token::Quantifier",
	KindBackreference: "Token::Backreference",
	KindCharClass:     "Token::CharClass",
	KindAssertion:     "Token::Assertion",
	KindDelimiter:     "Token::Delimiter",
	KindGroupType:     "Token::GroupType",
	KindUnknown:       "Token::Unknown",
	KindPattern:       "Node::Pattern",
	KindGroup:         "Node::Group",
	KindCapture:       "Node::Capture",
	KindClass:         "Node::Class",
}

// IsToken reports whether k tags a leaf token variant.
func (k Kind) IsToken() bool {
	return k >= KindLiteral && k <= KindUnknown
}

// IsNode reports whether k tags a container variant.
func (k Kind) IsNode() bool {
	return k >= KindPattern && k <= KindClass
}

// Path returns the kind's path within [Namespace], such as
// "Token::Literal" or "Node::Capture". The segment before the first "::"
// names the variant family.
func (k Kind) Path() string {
	if k <= 0 || int(k) >= len(kindPaths) {
		return "Unknown::Kind"
	}
	return kindPaths[k]
}

// String implements [fmt.Stringer] as an alias of [Kind.Path].
func (k Kind) String() string {
	return k.Path()
}
