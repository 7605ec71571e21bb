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
	"regexp"
	"strings"
	"sync"
)

import (
	"github.com/pkg/errors"
)

// Alphabet lists the base-36 digits, index is the digit value.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Radix is the base of the encoding.
const Radix = int64(len(Alphabet))

// maxDigits is the length of the encoded math.MaxInt64.
const maxDigits = 13

var (
	_regexpDigits     *regexp.Regexp
	_regexpDigitsOnce sync.Once
)

func getDigitsRegexp() *regexp.Regexp {
	_regexpDigitsOnce.Do(func() {
		_regexpDigits = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	})
	return _regexpDigits
}

// Encode renders a non-negative integer as an uppercase base-36 string.
func Encode(v int64) (string, error) {
	if v < 0 {
		return "", errors.Wrapf(ErrDomain, "cannot encode negative value %d", v)
	}
	return encode(v), nil
}

func encode(v int64) string {
	if v < Radix {
		return Alphabet[v : v+1]
	}

	var (
		buf [maxDigits]byte
		i   = len(buf)
	)
	for v >= Radix {
		i--
		buf[i] = Alphabet[v%Radix]
		v /= Radix
	}
	i--
	buf[i] = Alphabet[v]

	return string(buf[i:])
}

// Decode parses a base-36 string into its integer value. Letters are case-insensitive
// and leading zeros are accepted.
func Decode(s string) (int64, error) {
	if len(strings.TrimSpace(s)) < 1 {
		return 0, errors.Wrap(ErrFormat, "empty base36 string")
	}
	if !IsBase36(s) {
		return 0, errors.Wrapf(ErrFormat, "not a base36 digit string: %q", s)
	}

	s = strings.ToUpper(s)

	var (
		sum        int64
		weight     int64 = 1
		weightOver bool
	)
	for i := len(s) - 1; i >= 0; i-- {
		digit := int64(strings.IndexByte(Alphabet, s[i]))
		if digit > 0 {
			// digit*weight must fit in what is left below MaxInt64
			if weightOver || digit > (math.MaxInt64-sum)/weight {
				return 0, errors.Wrapf(ErrOverflow, "decode %q", s)
			}
			sum += digit * weight
		}
		if i > 0 && !weightOver {
			if weight > math.MaxInt64/Radix {
				weightOver = true
			} else {
				weight *= Radix
			}
		}
	}

	return sum, nil
}

// IsBase36 reports whether s is a non-empty string made only of base-36 digits.
func IsBase36(s string) bool {
	return getDigitsRegexp().MatchString(s)
}
