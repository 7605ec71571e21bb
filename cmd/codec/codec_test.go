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

package codec

import (
	"bytes"
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

import (
	"github.com/arana-db/base36/cmd/cmds"
)

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []string{"0", "99", "2147483647", "9223372036854775807"}, 10))
	assert.Equal(t, "0\n2R\nZIK0ZJ\n1Y2P0IJ32E8E7\n", buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, []string{"7d0"}, 16))
	assert.Equal(t, "1JK\n", buf.String())

	buf.Reset()
	err := Encode(&buf, []string{"-1", "36"}, 10)
	assert.Error(t, err)
	assert.Equal(t, "10\n", buf.String())
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Decode(&buf, []string{"001JK", "lflr"}, 10))
	assert.Equal(t, "2000\n999999\n", buf.String())

	buf.Reset()
	assert.Error(t, Decode(&buf, []string{"frhua!##"}, 10))
	assert.Empty(t, buf.String())
}

func TestCommands(t *testing.T) {
	root := cmds.NewRootCommand("test")

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"decode", "1JK"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "2000\n", buf.String())

	buf.Reset()
	root.SetArgs([]string{"decode", "2R", "--radix", "2"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "1100011\n", buf.String())

	buf.Reset()
	root.SetArgs([]string{"encode", "999"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "RR\n", buf.String())
}
