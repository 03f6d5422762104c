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
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// MinimumVersion is the floor for all version aggregation: the oldest
// host-interpreter version this dialect is tracked against. An empty
// [Node] reports exactly this as its introduced version.
var MinimumVersion = Version{Major: 5}

// Version is a host-interpreter version under which a construct is valid
// syntax, such as 5.006 or 5.009005. Versions are totally ordered; the
// zero value sorts before every real version and is not itself valid.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses a version in either the packed decimal form
// ("5.006", "5.009005") or the dotted form ("5.9.5").
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("ast: malformed version %q", s)
	}

	var v Version
	var err error
	v.Major, err = strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("ast: malformed version %q", s)
	}

	if len(parts) == 3 {
		v.Minor, err = strconv.Atoi(parts[1])
		if err == nil {
			v.Patch, err = strconv.Atoi(parts[2])
		}
		if err != nil {
			return Version{}, fmt.Errorf("ast: malformed version %q", s)
		}
		return v, nil
	}

	// Packed form: three digits of minor, then optionally three of patch.
	frac := parts[1]
	if len(frac) != 3 && len(frac) != 6 {
		return Version{}, fmt.Errorf("ast: malformed version %q", s)
	}
	v.Minor, err = strconv.Atoi(frac[:3])
	if err != nil {
		return Version{}, fmt.Errorf("ast: malformed version %q", s)
	}
	if len(frac) == 6 {
		v.Patch, err = strconv.Atoi(frac[3:])
		if err != nil {
			return Version{}, fmt.Errorf("ast: malformed version %q", s)
		}
	}
	return v, nil
}

// MustParseVersion is like [ParseVersion] but panics on malformed input.
// Intended for package-level version tables.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0, or 1 depending on whether v sorts before, equal
// to, or after u.
func (v Version) Compare(u Version) int {
	if c := cmp.Compare(v.Major, u.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, u.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, u.Patch)
}

// Less reports whether v sorts strictly before u.
func (v Version) Less(u Version) bool {
	return v.Compare(u) < 0
}

// String renders v in the packed decimal form, e.g. "5.006" or
// "5.009005". The patch component is omitted when zero.
func (v Version) String() string {
	if v.Patch == 0 {
		return fmt.Sprintf("%d.%03d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%03d%03d", v.Major, v.Minor, v.Patch)
}
