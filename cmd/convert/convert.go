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

package convert

import (
	"io"
)

import (
	"github.com/spf13/cobra"

	"go.uber.org/multierr"
)

import (
	"github.com/arana-db/base36/cmd/cmds"
	"github.com/arana-db/base36/pkg/util/tableprint"
)

const _keyFrom = "from"

func init() {
	cmd := &cobra.Command{
		Use:     "convert <number>...",
		Short:   "print every radix view of the numbers as a table",
		Example: "base36 convert 1JK ZIK0ZJ\nbase36 convert 2000 --from 10",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetInt(_keyFrom)
			return Run(cmd.OutOrStdout(), args, from, cmds.Options().Output.Color)
		},
	}
	cmd.Flags().Int(_keyFrom, 36, "radix of the input numbers, one of 2, 8, 10, 16, 36")

	cmds.Handle(func(root *cobra.Command) {
		root.AddCommand(cmd)
	})
}

// Run writes the radix table of every valid input.
func Run(w io.Writer, args []string, from int, color bool) error {
	numbers, errs := cmds.ParseNumbers(args, from)
	if len(numbers) > 0 {
		write := tableprint.WriteNumbers
		if color {
			write = tableprint.WriteNumbersColor
		}
		errs = multierr.Append(write(w, numbers), errs)
	}
	return errs
}
