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
	"encoding/json"
)

import (
	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"
)

// The base-36 string is the only wire form of a Number: text, JSON and YAML all carry it.

func (n Number) MarshalText() ([]byte, error) {
	if n.IsMinValue() {
		return nil, errors.Wrap(ErrDomain, "cannot marshal MinValue")
	}
	return []byte(encode(n.value)), nil
}

func (n *Number) UnmarshalText(text []byte) error {
	if n == nil {
		return errors.New("can't unmarshal a nil *Number")
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	text, err := n.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts a quoted base-36 string, null leaves n untouched.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrapf(ErrFormat, "base36 json value must be a string: %s", data)
	}
	return n.UnmarshalText([]byte(s))
}

func (n Number) MarshalYAML() (interface{}, error) {
	text, err := n.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrFormat, "base36 yaml value must be a scalar, line %d", value.Line)
	}
	return n.UnmarshalText([]byte(value.Value))
}
