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
	"os"
	"path/filepath"
)

import (
	"github.com/pkg/errors"
)

import (
	"github.com/arana-db/base36/pkg/constants"
	"github.com/arana-db/base36/pkg/util/env"
	"github.com/arana-db/base36/pkg/util/file"
	"github.com/arana-db/base36/pkg/util/log"
)

var _fileNames = []string{"base36.yaml", "base36.yml"}

// Locate resolves the configuration file: the given path first, then the env
// variable, then the search path list. Returns an empty string when none exists.
func Locate(path string) string {
	if len(path) > 0 {
		return path
	}
	if path = os.Getenv(constants.EnvConfigPath); len(path) > 0 {
		return path
	}
	for _, dir := range constants.GetConfigSearchPathList() {
		for _, name := range _fileNames {
			if p := filepath.Join(dir, name); file.IsExist(p) {
				return p
			}
		}
	}
	return ""
}

// LoadOptions locates and loads the options, then initializes the global logger.
// Without any configuration file the defaults are used.
func LoadOptions(path string) (*Options, error) {
	var (
		cfg *Options
		err error
	)

	if path = Locate(path); len(path) < 1 {
		cfg = Default()
	} else {
		if !file.IsYaml(path) {
			return nil, errors.Errorf("invalid config file format: %s", filepath.Ext(path))
		}
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	if env.IsDevelopEnvironment() {
		cfg.Logging.LogLevel = log.DebugLevel
	}

	log.Init(&cfg.Logging)
	return cfg, nil
}
