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

package slicesx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regexkit/regexkit/internal/ext/slicesx"
)

func TestGet(t *testing.T) {
	t.Parallel()

	s := []string{"a", "b", "c"}

	v, ok := slicesx.Get(s, 0)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = slicesx.Get(s, 2)
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = slicesx.Get(s, 3)
	assert.False(t, ok)
	_, ok = slicesx.Get(s, -1)
	assert.False(t, ok)

	_, ok = slicesx.Get([]string(nil), 0)
	assert.False(t, ok)
}

func TestFirstLast(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}

	v, ok := slicesx.First(s)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = slicesx.Last(s)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = slicesx.First([]int{})
	assert.False(t, ok)
	_, ok = slicesx.Last([]int{})
	assert.False(t, ok)
}
