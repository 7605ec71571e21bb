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

package main

import (
	"os"
)

import (
	_ "github.com/arana-db/base36/cmd/calc"
	"github.com/arana-db/base36/cmd/cmds"
	_ "github.com/arana-db/base36/cmd/codec"
	_ "github.com/arana-db/base36/cmd/convert"
	_ "github.com/arana-db/base36/cmd/gen"
	"github.com/arana-db/base36/pkg/util/log"
)

// Version is overridden at build time.
var Version = "0.1.0"

func main() {
	root := cmds.NewRootCommand(Version)
	err := root.Execute()
	log.Sync()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
