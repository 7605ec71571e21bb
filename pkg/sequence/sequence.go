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

package sequence

import (
	"context"
	"sort"
	"sync"
)

import (
	"github.com/pkg/errors"
)

import (
	"github.com/arana-db/base36/pkg/base36"
)

var ErrorNotSequenceType = errors.New("sequence type not found")

// Config configures a sequence.
type Config struct {
	Type  string
	Node  int64
	Epoch int64
}

// Generator issues increasing ids as base-36 numbers.
type Generator interface {
	// Next issues the next id.
	Next(ctx context.Context) (base36.Number, error)
	// Current returns the last issued id, base36.MinValue before the first one.
	Current() base36.Number
}

// Supplier builds a Generator.
type Supplier func(conf Config) (Generator, error)

var (
	suppliersLock     sync.RWMutex
	suppliersRegistry = map[string]Supplier{}
)

// Register registers a sequence supplier under name.
func Register(name string, supplier Supplier) {
	suppliersLock.Lock()
	defer suppliersLock.Unlock()
	suppliersRegistry[name] = supplier
}

// Types returns the registered sequence types.
func Types() []string {
	suppliersLock.RLock()
	defer suppliersLock.RUnlock()

	types := make([]string, 0, len(suppliersRegistry))
	for k := range suppliersRegistry {
		types = append(types, k)
	}
	sort.Strings(types)
	return types
}

// New creates a Generator of conf.Type.
func New(conf Config) (Generator, error) {
	suppliersLock.RLock()
	supplier, ok := suppliersRegistry[conf.Type]
	suppliersLock.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrorNotSequenceType, "type=%s", conf.Type)
	}
	return supplier(conf)
}

// Take issues count ids from g.
func Take(ctx context.Context, g Generator, count int) ([]base36.Number, error) {
	if count < 0 {
		return nil, errors.Errorf("invalid count %d", count)
	}
	ret := make([]base36.Number, 0, count)
	for i := 0; i < count; i++ {
		n, err := g.Next(ctx)
		if err != nil {
			return ret, err
		}
		ret = append(ret, n)
	}
	return ret, nil
}
