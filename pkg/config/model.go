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

package config

import (
	"io"
	"os"
)

import (
	"github.com/creasty/defaults"

	"github.com/go-playground/validator/v10"

	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"
)

import (
	"github.com/arana-db/base36/pkg/util/log"
)

type (
	// Options is the configuration of the base36 tool.
	Options struct {
		Logging  log.LoggingConfig `yaml:"logging" json:"logging"`
		Output   Output            `yaml:"output" json:"output"`
		Sequence Sequence          `yaml:"sequence" json:"sequence"`
	}

	// Output controls how numbers are printed.
	Output struct {
		Radix int  `yaml:"radix" json:"radix" default:"36" validate:"oneof=2 8 10 16 36"`
		Color bool `yaml:"color" json:"color"`
	}

	// Sequence configures the snowflake id generator.
	Sequence struct {
		// Node is the snowflake worker id.
		Node int64 `yaml:"node" json:"node" default:"1" validate:"gte=0,lte=1023"`
		// Epoch in milliseconds, zero keeps the snowflake default.
		Epoch int64 `yaml:"epoch" json:"epoch" validate:"gte=0"`
	}
)

// Decoder decodes configuration.
type Decoder struct {
	reader io.Reader
}

func (d *Decoder) Decode(v interface{}) error {
	if err := yaml.NewDecoder(d.reader).Decode(v); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// NewDecoder creates a Decoder from a reader.
func NewDecoder(reader io.Reader) *Decoder {
	return &Decoder{reader: reader}
}

// Default returns the options used when no configuration file is given.
func Default() *Options {
	var cfg Options
	_ = defaults.Set(&cfg)
	return &cfg
}

// Load loads the configuration from file path, fills defaults and validates it.
func Load(path string) (*Options, error) {
	var (
		f   *os.File
		err error
	)

	if f, err = os.Open(path); err != nil {
		return nil, errors.Wrap(err, "failed to load configuration file")
	}
	defer func() {
		_ = f.Close()
	}()

	return Read(f)
}

// Read decodes options from reader.
func Read(reader io.Reader) (*Options, error) {
	var cfg Options
	if err := NewDecoder(reader).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set config defaults")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate validates the input configuration.
func Validate(cfg *Options) error {
	v := validator.New()
	return v.Struct(cfg)
}
