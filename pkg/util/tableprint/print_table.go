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

package tableprint

import (
	"fmt"
	"io"
)

import (
	"github.com/olekukonko/tablewriter"

	"github.com/pkg/errors"
)

import (
	"github.com/arana-db/base36/pkg/base36"
)

var _header = []string{"BASE36", "DECIMAL", "BINARY", "OCTAL", "HEX"}

// WriteNumbers writes table into writer.
func WriteNumbers(w io.Writer, numbers []base36.Number) error {
	_, err := writeTable(w, numbers, false)
	return err
}

// WriteNumbersColor writes colorful table into writer.
func WriteNumbersColor(w io.Writer, numbers []base36.Number) error {
	_, err := writeTable(w, numbers, true)
	return err
}

func writeTable(w io.Writer, numbers []base36.Number, color bool) ([][]string, error) {
	header := make([]string, 0, len(_header))
	for _, h := range _header {
		if color {
			h = fmt.Sprintf("\033[32m%s\033[0m", h)
		}
		header = append(header, h)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	converts := make([][]string, 0, len(numbers))
	for _, n := range numbers {
		if n.IsMinValue() {
			return nil, errors.Wrapf(base36.ErrDomain, "cannot print %s", n)
		}
		row := []string{
			n.Base36String(),
			n.DecimalString(),
			n.BinaryString(),
			n.OctalString(),
			n.HexString(),
		}
		converts = append(converts, row)
		table.Append(row)
	}

	table.Render()

	return converts, nil
}
