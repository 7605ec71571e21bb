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
	"github.com/pkg/errors"
)

// Arithmetic is defined only over non-negative results: a negative result fails with
// ErrDomain. Overflow of Add and Mul is not detected, it wraps like int64 and the
// wrapped value then goes through New.

// Operator names one of the five arithmetic operations.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpMod Operator = '%'
)

// ParseOperator parses one of "+", "-", "*", "/", "%".
func ParseOperator(s string) (Operator, error) {
	if len(s) == 1 {
		switch op := Operator(s[0]); op {
		case OpAdd, OpSub, OpMul, OpDiv, OpMod:
			return op, nil
		}
	}
	return 0, errors.Errorf("unrecognized operator: %q", s)
}

func (op Operator) String() string {
	return string(op)
}

func (op Operator) apply(a, b int64) (Number, error) {
	switch op {
	case OpAdd:
		return New(a + b)
	case OpSub:
		return New(a - b)
	case OpMul:
		return New(a * b)
	case OpDiv:
		if b == 0 {
			return MinValue, errors.Wrapf(ErrDivideByZero, "%d / 0", a)
		}
		return New(a / b)
	case OpMod:
		if b == 0 {
			return MinValue, errors.Wrapf(ErrDivideByZero, "%d %% 0", a)
		}
		return New(a % b)
	default:
		return MinValue, errors.Errorf("unrecognized operator: %q", byte(op))
	}
}

// Calculate evaluates a op b.
func Calculate(a Number, op Operator, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return MinValue, err
	}
	return op.apply(a.value, b.value)
}

func checkOperands(operands ...Number) error {
	for _, it := range operands {
		if it.IsMinValue() {
			return errors.Wrap(ErrDomain, "MinValue used as an operand")
		}
	}
	return nil
}

func (n Number) calcInt(op Operator, v int64) (Number, error) {
	if err := checkOperands(n); err != nil {
		return MinValue, err
	}
	return op.apply(n.value, v)
}

func intCalc(v int64, op Operator, n Number) (Number, error) {
	if err := checkOperands(n); err != nil {
		return MinValue, err
	}
	return op.apply(v, n.value)
}

func (n Number) Add(other Number) (Number, error) { return Calculate(n, OpAdd, other) }

func (n Number) Sub(other Number) (Number, error) { return Calculate(n, OpSub, other) }

func (n Number) Mul(other Number) (Number, error) { return Calculate(n, OpMul, other) }

func (n Number) Div(other Number) (Number, error) { return Calculate(n, OpDiv, other) }

func (n Number) Mod(other Number) (Number, error) { return Calculate(n, OpMod, other) }

func (n Number) AddInt(v int64) (Number, error) { return n.calcInt(OpAdd, v) }

func (n Number) SubInt(v int64) (Number, error) { return n.calcInt(OpSub, v) }

func (n Number) MulInt(v int64) (Number, error) { return n.calcInt(OpMul, v) }

func (n Number) DivInt(v int64) (Number, error) { return n.calcInt(OpDiv, v) }

func (n Number) ModInt(v int64) (Number, error) { return n.calcInt(OpMod, v) }

// IntAdd computes v + n.
func IntAdd(v int64, n Number) (Number, error) { return intCalc(v, OpAdd, n) }

// IntSub computes v - n.
func IntSub(v int64, n Number) (Number, error) { return intCalc(v, OpSub, n) }

// IntMul computes v * n.
func IntMul(v int64, n Number) (Number, error) { return intCalc(v, OpMul, n) }

// IntDiv computes v / n.
func IntDiv(v int64, n Number) (Number, error) { return intCalc(v, OpDiv, n) }

// IntMod computes v % n.
func IntMod(v int64, n Number) (Number, error) { return intCalc(v, OpMod, n) }
