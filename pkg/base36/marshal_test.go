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
	"encoding/json"
	"testing"
)

import (
	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"
)

type _envelope struct {
	ID   Number  `json:"id" yaml:"id"`
	Next *Number `json:"next,omitempty" yaml:"next,omitempty"`
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(_envelope{ID: MustNew(2000)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1JK"}`, string(b))

	var e _envelope
	require.NoError(t, json.Unmarshal([]byte(`{"id":"001jk","next":null}`), &e))
	assert.Equal(t, MustNew(2000), e.ID)
	assert.Nil(t, e.Next)

	err = json.Unmarshal([]byte(`{"id":2000}`), &e)
	assert.True(t, errors.Is(err, ErrFormat))

	err = json.Unmarshal([]byte(`{"id":"1!"}`), &e)
	assert.True(t, errors.Is(err, ErrFormat))

	_, err = json.Marshal(MinValue)
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	next := MustNew(123)
	b, err := yaml.Marshal(_envelope{ID: MustNew(99), Next: &next})
	require.NoError(t, err)

	var e _envelope
	require.NoError(t, yaml.Unmarshal(b, &e))
	assert.Equal(t, MustNew(99), e.ID)
	require.NotNil(t, e.Next)
	assert.Equal(t, next, *e.Next)

	require.NoError(t, yaml.Unmarshal([]byte("id: 2R\n"), &e))
	assert.Equal(t, int64(99), e.ID.Value())

	err = yaml.Unmarshal([]byte("id: [1, 2]\n"), &e)
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	var n Number
	require.NoError(t, n.UnmarshalText([]byte("zz")))
	assert.Equal(t, int64(1295), n.Value())

	text, err := n.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ZZ", string(text))

	var nilNumber *Number
	assert.Error(t, nilNumber.UnmarshalText([]byte("1")))
}
