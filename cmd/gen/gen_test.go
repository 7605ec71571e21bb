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

package gen

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

import (
	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

import (
	"github.com/arana-db/base36/cmd/cmds"
	"github.com/arana-db/base36/pkg/base36"
	"github.com/arana-db/base36/pkg/sequence"
	"github.com/arana-db/base36/pkg/sequence/snowflake"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	conf := sequence.Config{Type: snowflake.SequencePluginName, Node: 3}
	require.NoError(t, Run(context.Background(), &buf, conf, 5, 36))

	lines := strings.Fields(buf.String())
	require.Len(t, lines, 5)

	prev := base36.MinValue
	for _, line := range lines {
		n, ok := base36.TryParse(line)
		require.True(t, ok, line)
		assert.Equal(t, 1, n.Compare(prev))
		prev = n
	}
}

func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := Run(context.Background(), &buf, sequence.Config{Type: "uuid"}, 1, 36)
	assert.True(t, errors.Is(err, sequence.ErrorNotSequenceType))

	err = Run(context.Background(), &buf, sequence.Config{Type: snowflake.SequencePluginName, Node: 4096}, 1, 36)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Run(ctx, &buf, sequence.Config{Type: snowflake.SequencePluginName}, 1, 36)
	assert.True(t, errors.Is(err, context.Canceled))

	assert.Empty(t, buf.String())
}

func TestCommand(t *testing.T) {
	root := cmds.NewRootCommand("test")

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"gen", "-n", "3", "--node", "9", "--radix", "10"})
	require.NoError(t, root.Execute())

	lines := strings.Fields(buf.String())
	require.Len(t, lines, 3)
	for _, line := range lines {
		_, err := base36.ParseRadix(line, 10)
		assert.NoError(t, err)
	}
}
