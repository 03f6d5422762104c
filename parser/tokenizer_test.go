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
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/regexkit/regexkit/ast"
)

type tokenInfo struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

type tokenCase struct {
	Name     string      `yaml:"name"`
	Pattern  string      `yaml:"pattern"`
	Extended bool        `yaml:"extended"`
	Tokens   []tokenInfo `yaml:"tokens"`
}

func TestTokenizeCorpus(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/tokenizer.yaml")
	require.NoError(t, err)

	var cases []tokenCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			toks := tokenize(tc.Pattern, tc.Extended)
			got := make([]tokenInfo, len(toks))
			for i, e := range toks {
				got[i] = tokenInfo{Kind: e.Kind().Path(), Text: e.Content()}
			}

			if diff := cmp.Diff(tc.Tokens, got); diff != "" {
				t.Errorf("token stream mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Every byte of the input must land in exactly one token, whatever the
// input looks like.
func TestTokenizeLossless(t *testing.T) {
	t.Parallel()

	patterns := []string{
		``,
		`a(b(?:c[d-f]+)\1)*$`,
		`(?<y>\x{FF}|\N{SNOWMAN})??`,
		`)](`,
		`[abc`,
		`\`,
		`(?`,
		`{1,`,
		"x \t# trailing",
		`(?'old'a)\k'old'`,
	}
	for _, p := range patterns {
		for _, extended := range []bool{false, true} {
			var sb strings.Builder
			for _, e := range tokenize(p, extended) {
				sb.WriteString(e.Content())
			}
			assert.Equal(t, p, sb.String(), "pattern %q extended=%v", p, extended)
		}
	}
}

func TestTokenizeVersionFacts(t *testing.T) {
	t.Parallel()

	kFirst := tokenize(`\K`, false)
	require.Len(t, kFirst, 1)
	assert.Equal(t, ast.MustParseVersion("5.009005"), kFirst[0].VersionIntroduced())

	plain := tokenize(`ab`, false)
	require.Len(t, plain, 1)
	assert.Equal(t, ast.MinimumVersion, plain[0].VersionIntroduced())
	_, removed := plain[0].VersionRemoved()
	assert.False(t, removed)

	single := tokenize(`\C`, false)
	require.Len(t, single, 1)
	assert.Equal(t, ast.MustParseVersion("5.006"), single[0].VersionIntroduced())
	v, removed := single[0].VersionRemoved()
	assert.True(t, removed)
	assert.Equal(t, ast.MustParseVersion("5.023"), v)
}
