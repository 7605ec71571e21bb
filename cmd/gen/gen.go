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
	"context"
	"io"
)

import (
	"github.com/spf13/cobra"
)

import (
	"github.com/arana-db/base36/cmd/cmds"
	"github.com/arana-db/base36/pkg/constants"
	"github.com/arana-db/base36/pkg/sequence"
	"github.com/arana-db/base36/pkg/sequence/snowflake"
)

const (
	_keyCount = "count"
	_keyNode  = "node"
	_keyEpoch = "epoch"
)

func init() {
	cmd := &cobra.Command{
		Use:     "gen",
		Short:   "generate snowflake ids as base-36 numbers",
		Example: "base36 gen -n 5\nbase36 gen --node 7 --radix 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := sequence.Config{
				Type:  snowflake.SequencePluginName,
				Node:  cmds.Options().Sequence.Node,
				Epoch: cmds.Options().Sequence.Epoch,
			}
			if cmd.Flags().Changed(_keyNode) {
				conf.Node, _ = cmd.Flags().GetInt64(_keyNode)
			}
			if cmd.Flags().Changed(_keyEpoch) {
				conf.Epoch, _ = cmd.Flags().GetInt64(_keyEpoch)
			}
			count, _ := cmd.Flags().GetInt(_keyCount)
			return Run(cmd.Context(), cmd.OutOrStdout(), conf, count, cmds.OutputRadix(cmd))
		},
	}
	cmd.Flags().IntP(_keyCount, "n", 1, "number of ids")
	cmd.Flags().Int64(_keyNode, 0, "snowflake worker id, overrides the configuration")
	cmd.Flags().Int64(_keyEpoch, 0, "snowflake epoch in milliseconds, overrides the configuration")
	cmd.Flags().Int(constants.RadixKey, 36, "output radix, one of 2, 8, 10, 16, 36")

	cmds.Handle(func(root *cobra.Command) {
		root.AddCommand(cmd)
	})
}

// Run issues count ids from the sequence described by conf and writes them in radix.
func Run(ctx context.Context, w io.Writer, conf sequence.Config, count int, radix int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := sequence.New(conf)
	if err != nil {
		return err
	}

	numbers, err := sequence.Take(ctx, g, count)
	if err != nil {
		return err
	}
	return cmds.PrintNumbers(w, numbers, radix)
}
