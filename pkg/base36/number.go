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
	"encoding/binary"
	"math"
)

import (
	"github.com/cespare/xxhash/v2"

	"github.com/pkg/errors"
)

// MinValue marks an invalid or unset Number, e.g. the result of a failed TryParse.
// It holds math.MinInt64 and must not be used in arithmetic.
var MinValue = Number{value: math.MinInt64}

const _invalid = "<invalid>"

// Number is a non-negative integer whose canonical text form is base 36.
//
// A Number is immutable except through AddValue, which mutates the receiver in place;
// callers sharing a Number between goroutines must not call AddValue without their
// own synchronization.
type Number struct {
	value int64
}

// New creates a Number, negative values are rejected with ErrDomain.
func New(v int64) (Number, error) {
	if v < 0 {
		return MinValue, errors.Wrapf(ErrDomain, "negative value %d", v)
	}
	return Number{value: v}, nil
}

// MustNew is like New but panics on error.
func MustNew(v int64) Number {
	n, err := New(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Parse decodes a base-36 string into a Number.
func Parse(s string) (Number, error) {
	v, err := Decode(s)
	if err != nil {
		return MinValue, err
	}
	return New(v)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// TryParse decodes s, it never fails loudly: any error yields (MinValue, false).
func TryParse(s string) (Number, bool) {
	n, err := Parse(s)
	if err != nil {
		return MinValue, false
	}
	return n, true
}

// Value returns the magnitude.
func (n Number) Value() int64 {
	return n.value
}

func (n Number) IsMinValue() bool {
	return n.value == math.MinInt64
}

func (n Number) IsZero() bool {
	return n.value == 0
}

func (n Number) Equal(other Number) bool {
	return n.value == other.value
}

// Compare returns -1, 0 or +1.
func (n Number) Compare(other Number) int {
	switch {
	case n.value < other.value:
		return -1
	case n.value > other.value:
		return 1
	default:
		return 0
	}
}

// Hash returns a hash of the magnitude, equal Numbers hash equally.
func (n Number) Hash() uint64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(n.value))
	return xxhash.Sum64(b[:])
}

// Len returns the number of base-36 digits.
func (n Number) Len() int {
	if n.IsMinValue() {
		return 0
	}
	return len(encode(n.value))
}

// AddValue adds delta to n in place and returns n for chaining. When the result would
// be negative n is left unchanged and ErrDomain is returned.
func (n *Number) AddValue(delta int64) (*Number, error) {
	next, err := n.AddInt(delta)
	if err != nil {
		return n, err
	}
	n.value = next.value
	return n, nil
}

// String returns the canonical base-36 form, "<invalid>" for MinValue.
func (n Number) String() string {
	if n.value < 0 {
		return _invalid
	}
	return encode(n.value)
}
