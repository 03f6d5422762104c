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
	"unicode/utf8"

	"github.com/regexkit/regexkit/ast"
)

// Host versions at which individual constructs appeared or disappeared.
var (
	ver5_005 = ast.MustParseVersion("5.005")
	ver5_006 = ast.MustParseVersion("5.006")
	ver5_9_5 = ast.MustParseVersion("5.009005")
	ver5_011 = ast.MustParseVersion("5.011")
	ver5_023 = ast.MustParseVersion("5.023")
)

type tokenizer struct {
	src      string
	pos      int
	extended bool
	out      []ast.Element
}

// tokenize scans src into a flat token stream. Every byte of src lands in
// exactly one token, so concatenating the token contents reproduces the
// input.
func tokenize(src string, extended bool) []ast.Element {
	t := &tokenizer{src: src, extended: extended}
	t.run()
	return t.out
}

func (t *tokenizer) emit(kind ast.Kind, text string, opts ...ast.TokenOption) {
	t.out = append(t.out, ast.NewToken(kind, text, opts...))
}

func (t *tokenizer) rest() string {
	return t.src[t.pos:]
}

func (t *tokenizer) run() {
	for t.pos < len(t.src) {
		c := t.src[t.pos]
		switch {
		case t.extended && isSpace(c):
			t.whitespace()
		case t.extended && c == '#':
			t.comment()
		case c == '\\':
			t.escape(false)
		case c == '|':
			t.pos++
			t.emit(ast.KindOperator, "|")
		case c == '^' || c == '$':
			t.pos++
			t.emit(ast.KindAssertion, string(c))
		case c == '.':
			t.pos++
			t.emit(ast.KindCharClass, ".")
		case c == '*' || c == '+' || c == '?':
			t.quantifier(t.pos + 1)
		case c == '{':
			t.brace()
		case c == '(':
			t.open()
		case c == ')':
			t.pos++
			t.emit(ast.KindDelimiter, ")")
		case c == '[':
			t.class()
		default:
			t.literal()
		}
	}
}

func (t *tokenizer) whitespace() {
	start := t.pos
	for t.pos < len(t.src) && isSpace(t.src[t.pos]) {
		t.pos++
	}
	t.emit(ast.KindWhitespace, t.src[start:t.pos])
}

// comment consumes a # comment up to, but not including, the newline.
func (t *tokenizer) comment() {
	start := t.pos
	for t.pos < len(t.src) && t.src[t.pos] != '\n' {
		t.pos++
	}
	t.emit(ast.KindComment, t.src[start:t.pos])
}

// literal consumes a run of ordinary characters into a single token.
func (t *tokenizer) literal() {
	start := t.pos
	for t.pos < len(t.src) && !t.metachar(t.src[t.pos]) {
		t.pos++
	}
	t.emit(ast.KindLiteral, t.src[start:t.pos])
}

func (t *tokenizer) metachar(c byte) bool {
	switch c {
	case '\\', '|', '^', '$', '.', '*', '+', '?', '{', '(', ')', '[':
		return true
	}
	return t.extended && (isSpace(c) || c == '#')
}

// quantifier emits the quantifier whose base ends at end, folding in a
// trailing ? (lazy) or + (possessive) modifier.
func (t *tokenizer) quantifier(end int) {
	var opts []ast.TokenOption
	if end < len(t.src) {
		switch t.src[end] {
		case '?':
			end++
		case '+':
			end++
			opts = append(opts, ast.IntroducedIn(ver5_9_5))
		}
	}
	text := t.src[t.pos:end]
	t.pos = end
	t.emit(ast.KindQuantifier, text, opts...)
}

// brace recognizes {n}, {n,} and {n,m} quantifiers. Anything else keeps
// the brace as a literal.
func (t *tokenizer) brace() {
	i := t.pos + 1
	start := i
	for i < len(t.src) && isDigit(t.src[i]) {
		i++
	}
	if i > start && i < len(t.src) {
		switch t.src[i] {
		case '}':
			t.quantifier(i + 1)
			return
		case ',':
			i++
			for i < len(t.src) && isDigit(t.src[i]) {
				i++
			}
			if i < len(t.src) && t.src[i] == '}' {
				t.quantifier(i + 1)
				return
			}
		}
	}
	t.pos++
	t.emit(ast.KindLiteral, "{")
}

func (t *tokenizer) open() {
	rest := t.rest()
	if strings.HasPrefix(rest, "(?#") {
		// An embedded comment is one token, closed by the first ).
		if i := strings.IndexByte(rest, ')'); i >= 0 {
			t.emit(ast.KindComment, rest[:i+1])
			t.pos += i + 1
		} else {
			t.emit(ast.KindUnknown, rest)
			t.pos = len(t.src)
		}
		return
	}

	t.pos++
	t.emit(ast.KindDelimiter, "(")
	if t.pos < len(t.src) && t.src[t.pos] == '?' {
		t.groupType()
	}
}

// groupType scans the ?... introducer that distinguishes non-capturing
// and named groups, lookarounds, and inline modifiers.
func (t *tokenizer) groupType() {
	rest := t.rest() // Starts with '?'.
	emit := func(n int, opts ...ast.TokenOption) {
		t.emit(ast.KindGroupType, rest[:n], opts...)
		t.pos += n
	}

	switch {
	case strings.HasPrefix(rest, "?:"),
		strings.HasPrefix(rest, "?="),
		strings.HasPrefix(rest, "?!"):
		emit(2)
	case strings.HasPrefix(rest, "?<="), strings.HasPrefix(rest, "?<!"):
		emit(3, ast.IntroducedIn(ver5_005))
	case strings.HasPrefix(rest, "?>"):
		emit(2, ast.IntroducedIn(ver5_005))
	case strings.HasPrefix(rest, "?<"), strings.HasPrefix(rest, "?'"), strings.HasPrefix(rest, "?P<"):
		t.namedGroupType(rest)
	default:
		// Inline modifiers: ?i, ?^alupimsx, ?i-x, with or without a
		// trailing colon.
		n := 1
		for n < len(rest) && isFlag(rest[n]) {
			n++
		}
		if n == 1 {
			t.pos++
			t.emit(ast.KindUnknown, "?")
			return
		}
		if n < len(rest) && rest[n] == ':' {
			n++
		}
		emit(n)
	}
}

func (t *tokenizer) namedGroupType(rest string) {
	start := 2
	closer := byte('>')
	switch {
	case strings.HasPrefix(rest, "?P<"):
		start = 3
	case strings.HasPrefix(rest, "?'"):
		closer = '\''
	}

	j := strings.IndexByte(rest[start:], closer)
	if j < 0 {
		t.emit(ast.KindUnknown, rest[:start])
		t.pos += start
		return
	}
	n := start + j + 1
	t.emit(ast.KindGroupType, rest[:n], ast.IntroducedIn(ver5_9_5))
	t.pos += n
}

// class scans a bracketed character class. The closing bracket may be
// missing; the lexer deals with that.
func (t *tokenizer) class() {
	t.pos++
	t.emit(ast.KindDelimiter, "[")
	if t.pos < len(t.src) && t.src[t.pos] == '^' {
		t.pos++
		t.emit(ast.KindOperator, "^")
	}
	// A bracket right after the opening (or the negation) is a literal.
	if t.pos < len(t.src) && t.src[t.pos] == ']' {
		t.pos++
		t.emit(ast.KindLiteral, "]")
	}

	for t.pos < len(t.src) {
		switch c := t.src[t.pos]; {
		case c == ']':
			t.pos++
			t.emit(ast.KindDelimiter, "]")
			return
		case c == '\\':
			t.escape(true)
		case c == '-':
			t.pos++
			t.emit(ast.KindOperator, "-")
		case c == '[':
			rest := t.rest()
			if strings.HasPrefix(rest, "[:") {
				if i := strings.Index(rest, ":]"); i >= 0 {
					t.emit(ast.KindCharClass, rest[:i+2], ast.IntroducedIn(ver5_006))
					t.pos += i + 2
					continue
				}
			}
			t.pos++
			t.emit(ast.KindLiteral, "[")
		default:
			start := t.pos
			for t.pos < len(t.src) && !strings.ContainsRune(`]\-[`, rune(t.src[t.pos])) {
				t.pos++
			}
			t.emit(ast.KindLiteral, t.src[start:t.pos])
		}
	}
}

// escape scans a backslash escape. Some escapes mean different things
// inside a character class: \b is a backspace there, backreference
// digits are octal, and the \g and \k forms do not exist.
func (t *tokenizer) escape(inClass bool) {
	rest := t.rest()
	if len(rest) == 1 {
		t.pos++
		t.emit(ast.KindUnknown, `\`)
		return
	}

	emit := func(n int, kind ast.Kind, opts ...ast.TokenOption) {
		t.emit(kind, rest[:n], opts...)
		t.pos += n
	}

	c := rest[1]
	if !inClass {
		switch c {
		case 'b', 'B', 'A', 'z', 'Z', 'G':
			emit(2, ast.KindAssertion)
			return
		case 'K':
			emit(2, ast.KindAssertion, ast.IntroducedIn(ver5_9_5))
			return
		case 'R':
			emit(2, ast.KindCharClass, ast.IntroducedIn(ver5_9_5))
			return
		case 'g':
			t.backrefG(rest)
			return
		case 'k':
			t.backrefK(rest)
			return
		}
	}

	switch {
	case c >= '1' && c <= '9':
		n := 2
		for n < len(rest) && isDigit(rest[n]) {
			n++
		}
		if inClass {
			emit(n, ast.KindLiteral) // Octal, not a backreference.
		} else {
			emit(n, ast.KindBackreference)
		}
	case c == '0':
		n := 2
		for n < 4 && n < len(rest) && isOctal(rest[n]) {
			n++
		}
		emit(n, ast.KindLiteral)
	case c == 'x':
		if strings.HasPrefix(rest, `\x{`) {
			if i := strings.IndexByte(rest, '}'); i >= 0 {
				emit(i+1, ast.KindLiteral, ast.IntroducedIn(ver5_006))
				return
			}
			emit(3, ast.KindUnknown)
			return
		}
		n := 2
		for n < 4 && n < len(rest) && isHex(rest[n]) {
			n++
		}
		emit(n, ast.KindLiteral)
	case c == 'c' && len(rest) > 2:
		emit(3, ast.KindLiteral)
	case c == 'N' && !inClass:
		if strings.HasPrefix(rest, `\N{`) {
			if i := strings.IndexByte(rest, '}'); i >= 0 {
				emit(i+1, ast.KindLiteral, ast.IntroducedIn(ver5_006))
				return
			}
			emit(3, ast.KindUnknown)
			return
		}
		emit(2, ast.KindCharClass, ast.IntroducedIn(ver5_011))
	case c == 'd' || c == 'D' || c == 'w' || c == 'W' || c == 's' || c == 'S':
		emit(2, ast.KindCharClass)
	case c == 'h' || c == 'H' || c == 'v' || c == 'V':
		emit(2, ast.KindCharClass, ast.IntroducedIn(ver5_9_5))
	case c == 'C' && !inClass:
		emit(2, ast.KindCharClass, ast.IntroducedIn(ver5_006), ast.RemovedIn(ver5_023))
	default:
		n := 2
		if c >= utf8.RuneSelf {
			_, size := utf8.DecodeRuneInString(rest[1:])
			n = 1 + size
		}
		emit(n, ast.KindLiteral)
	}
}

// backrefG scans the \g forms: \g1, \g-1, \g{1}, \g{-1}, \g{name}.
func (t *tokenizer) backrefG(rest string) {
	if strings.HasPrefix(rest, `\g{`) {
		if i := strings.IndexByte(rest, '}'); i >= 0 {
			t.emit(ast.KindBackreference, rest[:i+1], ast.IntroducedIn(ver5_9_5))
			t.pos += i + 1
			return
		}
		t.emit(ast.KindUnknown, rest[:3])
		t.pos += 3
		return
	}

	n := 2
	if n < len(rest) && rest[n] == '-' {
		n++
	}
	digits := n
	for n < len(rest) && isDigit(rest[n]) {
		n++
	}
	if n == digits {
		t.emit(ast.KindUnknown, rest[:2])
		t.pos += 2
		return
	}
	t.emit(ast.KindBackreference, rest[:n], ast.IntroducedIn(ver5_9_5))
	t.pos += n
}

// backrefK scans the named forms: \k<name>, \k'name', \k{name}.
func (t *tokenizer) backrefK(rest string) {
	var closer byte
	switch {
	case strings.HasPrefix(rest, `\k<`):
		closer = '>'
	case strings.HasPrefix(rest, `\k'`):
		closer = '\''
	case strings.HasPrefix(rest, `\k{`):
		closer = '}'
	default:
		t.emit(ast.KindUnknown, rest[:2])
		t.pos += 2
		return
	}

	if j := strings.IndexByte(rest[3:], closer); j >= 0 {
		n := 3 + j + 1
		t.emit(ast.KindBackreference, rest[:n], ast.IntroducedIn(ver5_9_5))
		t.pos += n
		return
	}
	t.emit(ast.KindUnknown, rest[:3])
	t.pos += 3
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isOctal(c byte) bool { return c >= '0' && c <= '7' }

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isFlag(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || c == '^'
}
