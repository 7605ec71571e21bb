/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package base36

import (
	"math"
	"testing"
)

import (
	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n, err := New(2000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), n.Value())
	assert.Equal(t, "1JK", n.String())

	n, err = New(-1)
	assert.True(t, errors.Is(err, ErrDomain))
	assert.True(t, n.IsMinValue())

	assert.Panics(t, func() { MustNew(-5) })
	assert.True(t, Number{}.IsZero())
}

func TestMinValue(t *testing.T) {
	assert.Equal(t, int64(math.MinInt64), MinValue.Value())
	assert.True(t, MinValue.IsMinValue())
	assert.False(t, MustNew(0).IsMinValue())
	assert.Equal(t, "<invalid>", MinValue.String())
	assert.Equal(t, 0, MinValue.Len())
}

func TestParse(t *testing.T) {
	n, err := Parse("1Y2P0IJ32E8E7")
	require.NoError(t, err)
	assert.Equal(t, MustNew(math.MaxInt64), n)

	_, err = Parse("")
	assert.True(t, errors.Is(err, ErrFormat))

	assert.Panics(t, func() { MustParse("?") })
	assert.Equal(t, int64(99), MustParse("2r").Value())
}

func TestTryParse(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		want  Number
	}{
		{"0", true, MustNew(0)},
		{"1Y2P0IJ32E8E7", true, MustNew(math.MaxInt64)},
		{"001JK", true, MustNew(2000)},
		{"frhua!##", false, MinValue},
		{"609DOLZQ7PSG9W15", false, MinValue},
		{"", false, MinValue},
		{" ", false, MinValue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := TryParse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEqualAndHash(t *testing.T) {
	a := MustNew(12345)
	b := MustParse("9IX")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), MustNew(12346).Hash())

	set := map[Number]struct{}{a: {}}
	_, ok := set[b]
	assert.True(t, ok)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, MustNew(1).Compare(MustNew(2)))
	assert.Equal(t, 0, MustNew(2).Compare(MustNew(2)))
	assert.Equal(t, 1, MustNew(3).Compare(MustNew(2)))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 1, MustNew(35).Len())
	assert.Equal(t, 2, MustNew(36).Len())
	assert.Equal(t, 13, MustNew(math.MaxInt64).Len())
}

func TestAddValue(t *testing.T) {
	n := MustNew(10)

	ret, err := n.AddValue(5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), n.Value())
	assert.Same(t, &n, ret)

	_, err = n.AddValue(1)
	require.NoError(t, err)
	assert.Equal(t, int64(16), n.Value())

	_, err = n.AddValue(-17)
	assert.True(t, errors.Is(err, ErrDomain))
	assert.Equal(t, int64(16), n.Value(), "failed add must not mutate")

	_, err = n.AddValue(-16)
	require.NoError(t, err)
	assert.True(t, n.IsZero())
}
