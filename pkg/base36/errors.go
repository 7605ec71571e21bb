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

var (
	// ErrDomain is returned when a value would leave the non-negative domain, or when
	// an unsupported radix is requested.
	ErrDomain = errors.New("base36: value out of domain")
	// ErrFormat is returned when a string is empty or contains characters outside [0-9A-Za-z].
	ErrFormat = errors.New("base36: invalid format")
	// ErrOverflow is returned when a decoded value exceeds the int64 range.
	ErrOverflow = errors.New("base36: value overflows int64")
	// ErrDivideByZero is returned by Div and Mod when the divisor is zero.
	ErrDivideByZero = errors.New("base36: division by zero")
)
