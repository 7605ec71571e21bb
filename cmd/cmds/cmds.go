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

package cmds

import (
	"fmt"
	"io"
	"os"
	"sync"
)

import (
	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"go.uber.org/multierr"
)

import (
	"github.com/arana-db/base36/pkg/base36"
	"github.com/arana-db/base36/pkg/config"
	"github.com/arana-db/base36/pkg/constants"
	"github.com/arana-db/base36/pkg/util/log"
)

var (
	_handlers     []func(root *cobra.Command)
	_handlersLock sync.Mutex

	_options = config.Default()
)

// Handle registers a hook which attaches sub commands to the root command.
func Handle(h func(root *cobra.Command)) {
	_handlersLock.Lock()
	defer _handlersLock.Unlock()
	_handlers = append(_handlers, h)
}

// NewRootCommand builds the root command with every registered sub command.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "base36",
		Short:         "base36 encodes, decodes and computes on base-36 numbers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString(constants.ConfigPathKey)
			opts, err := config.LoadOptions(path)
			if err != nil {
				return err
			}
			_options = opts
			log.Debugf("loaded options: output radix=%d, sequence node=%d", opts.Output.Radix, opts.Sequence.Node)
			return nil
		},
	}
	root.PersistentFlags().
		StringP(constants.ConfigPathKey, "c", os.Getenv(constants.EnvConfigPath), "configuration file path")

	_handlersLock.Lock()
	defer _handlersLock.Unlock()
	for _, h := range _handlers {
		h(root)
	}
	return root
}

// Options returns the options loaded by the root command.
func Options() *config.Options {
	return _options
}

// OutputRadix returns the radix flag of cmd when set, the configured one otherwise.
func OutputRadix(cmd *cobra.Command) int {
	if f := cmd.Flags().Lookup(constants.RadixKey); f != nil && f.Changed {
		radix, _ := cmd.Flags().GetInt(constants.RadixKey)
		return radix
	}
	return _options.Output.Radix
}

// ParseNumbers parses every argument written in radix. All failures are reported
// together, the successfully parsed numbers are returned alongside.
func ParseNumbers(args []string, radix int) ([]base36.Number, error) {
	var (
		ret  = make([]base36.Number, 0, len(args))
		errs error
	)
	for _, arg := range args {
		n, err := base36.ParseRadix(arg, radix)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%s", arg))
			continue
		}
		ret = append(ret, n)
	}
	return ret, errs
}

// PrintNumbers writes one number per line in radix.
func PrintNumbers(w io.Writer, numbers []base36.Number, radix int) error {
	for _, n := range numbers {
		s, err := n.Format(radix)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
