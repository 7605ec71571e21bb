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

package calc

import (
	"fmt"
	"io"
)

import (
	"github.com/spf13/cobra"
)

import (
	"github.com/arana-db/base36/cmd/cmds"
	"github.com/arana-db/base36/pkg/base36"
	"github.com/arana-db/base36/pkg/constants"
	"github.com/arana-db/base36/pkg/util/log"
)

const _keyFrom = "from"

func init() {
	cmd := &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "apply + - * / % on two numbers",
		Long: "calc applies one arithmetic operator on two non-negative numbers. " +
			"A negative result or a division by zero is an error.",
		Example: "base36 calc 1JK + 2R\nbase36 calc 2000 '*' 36 --from 10 --radix 10",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetInt(_keyFrom)
			return Run(cmd.OutOrStdout(), args[0], args[1], args[2], from, cmds.OutputRadix(cmd))
		},
	}
	cmd.Flags().Int(_keyFrom, 36, "radix of the operands, one of 2, 8, 10, 16, 36")
	cmd.Flags().Int(constants.RadixKey, 36, "output radix, one of 2, 8, 10, 16, 36")

	cmds.Handle(func(root *cobra.Command) {
		root.AddCommand(cmd)
	})
}

// Run evaluates "a op b" and writes the result in radix.
func Run(w io.Writer, a, op, b string, from, radix int) error {
	operator, err := base36.ParseOperator(op)
	if err != nil {
		return err
	}

	numbers, err := cmds.ParseNumbers([]string{a, b}, from)
	if err != nil {
		return err
	}

	result, err := base36.Calculate(numbers[0], operator, numbers[1])
	if err != nil {
		return err
	}
	log.Debugf("calc %s %s %s = %s", numbers[0], operator, numbers[1], result)

	s, err := result.Format(radix)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
