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
	"strconv"
)

import (
	"github.com/pkg/errors"
)

// SupportedRadixes lists the radixes accepted by Format.
var SupportedRadixes = []int{2, 8, 10, 16, 36}

// The radix views render MinValue as "<invalid>", like String.

func (n Number) DecimalString() string {
	return n.formatInt(10)
}

func (n Number) BinaryString() string {
	return n.formatInt(2)
}

func (n Number) OctalString() string {
	return n.formatInt(8)
}

// HexString returns the lowercase hexadecimal form.
func (n Number) HexString() string {
	return n.formatInt(16)
}

func (n Number) formatInt(base int) string {
	if n.value < 0 {
		return _invalid
	}
	return strconv.FormatInt(n.value, base)
}

func (n Number) Base36String() string {
	return n.String()
}

// Format renders n in radix 2, 8, 10, 16 or 36, any other radix fails with ErrDomain.
func (n Number) Format(radix int) (string, error) {
	if n.value < 0 {
		return "", errors.Wrapf(ErrDomain, "cannot format invalid value in radix %d", radix)
	}
	switch radix {
	case 2:
		return n.BinaryString(), nil
	case 8:
		return n.OctalString(), nil
	case 10:
		return n.DecimalString(), nil
	case 16:
		return n.HexString(), nil
	case 36:
		return n.String(), nil
	default:
		return "", errors.Wrapf(ErrDomain, "unsupported radix %d", radix)
	}
}

// ParseRadix is the inverse of Format: it reads s written in one of the supported radixes.
func ParseRadix(s string, radix int) (Number, error) {
	switch radix {
	case 36:
		return Parse(s)
	case 2, 8, 10, 16:
		v, err := strconv.ParseInt(s, radix, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return MinValue, errors.Wrapf(ErrOverflow, "parse %q in radix %d", s, radix)
			}
			return MinValue, errors.Wrapf(ErrFormat, "parse %q in radix %d", s, radix)
		}
		return New(v)
	default:
		return MinValue, errors.Wrapf(ErrDomain, "unsupported radix %d", radix)
	}
}
