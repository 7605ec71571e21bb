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
)

import (
	gxbig "github.com/dubbogo/gost/math/big"

	"github.com/pkg/errors"

	"github.com/shopspring/decimal"

	"github.com/spf13/cast"

	"golang.org/x/exp/constraints"
)

// Of converts any integer into a Number.
func Of[T constraints.Integer](v T) (Number, error) {
	if v < 0 {
		return MinValue, errors.Wrapf(ErrDomain, "negative value %d", v)
	}
	if uint64(v) > math.MaxInt64 {
		return MinValue, errors.Wrapf(ErrOverflow, "value %d", v)
	}
	return New(int64(v))
}

// FromDecimal converts an integral, non-negative decimal.
func FromDecimal(d decimal.Decimal) (Number, error) {
	if !d.IsInteger() {
		return MinValue, errors.Wrapf(ErrFormat, "decimal %s is not an integer", d)
	}
	if d.Sign() < 0 {
		return MinValue, errors.Wrapf(ErrDomain, "negative value %s", d)
	}
	bi := d.BigInt()
	if !bi.IsInt64() {
		return MinValue, errors.Wrapf(ErrOverflow, "value %s", d)
	}
	return New(bi.Int64())
}

// Decimal returns n as a decimal.Decimal.
func (n Number) Decimal() decimal.Decimal {
	return decimal.NewFromInt(n.value)
}

// ValueOf converts a loosely typed value into a Number. Strings are read as decimal
// integers, use Parse for base-36 text.
func ValueOf(value interface{}) (Number, error) {
	switch val := value.(type) {
	case nil:
		return MinValue, errors.Wrap(ErrFormat, "nil value")
	case string:
		return ParseRadix(val, 10)
	case bool:
		return MinValue, errors.Wrapf(ErrFormat, "bool %t is not a number", val)
	case Number:
		return val, checkOperands(val)
	case *Number:
		if val == nil {
			return MinValue, errors.Wrap(ErrFormat, "nil *Number")
		}
		return *val, checkOperands(*val)
	case decimal.Decimal:
		return FromDecimal(val)
	case *decimal.Decimal:
		if val == nil {
			return MinValue, errors.Wrap(ErrFormat, "nil *decimal.Decimal")
		}
		return FromDecimal(*val)
	case *gxbig.Decimal:
		if val == nil {
			return MinValue, errors.Wrap(ErrFormat, "nil *big.Decimal")
		}
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return MinValue, errors.Wrapf(ErrFormat, "%v", err)
		}
		return FromDecimal(d)
	case uint:
		return Of(val)
	case uint64:
		return Of(val)
	case float32:
		return fromFloat(float64(val))
	case float64:
		return fromFloat(val)
	}

	v, err := cast.ToInt64E(value)
	if err != nil {
		return MinValue, errors.Wrapf(ErrFormat, "%v", err)
	}
	return New(v)
}

func fromFloat(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return MinValue, errors.Wrapf(ErrFormat, "%v is not an integer", f)
	}
	if f < 0 {
		return MinValue, errors.Wrapf(ErrDomain, "negative value %v", f)
	}
	if f >= math.MaxInt64 {
		return MinValue, errors.Wrapf(ErrOverflow, "value %v", f)
	}
	return New(int64(f))
}
