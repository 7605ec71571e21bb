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
	"io"
)

import (
	"github.com/spf13/cobra"
)

import (
	"github.com/arana-db/base36/cmd/cmds"
	"github.com/arana-db/base36/pkg/constants"
)

func init() {
	encode := &cobra.Command{
		Use:     "encode <integer>...",
		Short:   "encode integers into base-36 strings",
		Example: "base36 encode 2000 --from 10",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetInt(_keyFrom)
			return Encode(cmd.OutOrStdout(), args, from)
		},
	}
	encode.Flags().Int(_keyFrom, 10, "radix of the input integers, one of 2, 8, 10, 16")

	decode := &cobra.Command{
		Use:     "decode <base36>...",
		Short:   "decode base-36 strings",
		Example: "base36 decode 1JK\nbase36 decode 1JK --radix 16",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// decoding targets its own flag, the configured output radix is base-36
			radix, _ := cmd.Flags().GetInt(constants.RadixKey)
			return Decode(cmd.OutOrStdout(), args, radix)
		},
	}
	decode.Flags().Int(constants.RadixKey, 10, "output radix, one of 2, 8, 10, 16, 36")

	cmds.Handle(func(root *cobra.Command) {
		root.AddCommand(encode, decode)
	})
}

const _keyFrom = "from"

// Encode writes the base-36 form of every integer written in radix from. Valid inputs
// are printed even when others fail.
func Encode(w io.Writer, args []string, from int) error {
	numbers, errs := cmds.ParseNumbers(args, from)
	if err := cmds.PrintNumbers(w, numbers, 36); err != nil {
		return err
	}
	return errs
}

// Decode writes every base-36 input in the output radix.
func Decode(w io.Writer, args []string, radix int) error {
	numbers, errs := cmds.ParseNumbers(args, 36)
	if err := cmds.PrintNumbers(w, numbers, radix); err != nil {
		return err
	}
	return errs
}
