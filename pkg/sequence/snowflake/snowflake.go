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

package snowflake

import (
	"context"
	"sync"
)

import (
	bsnowflake "github.com/bwmarrin/snowflake"

	"github.com/pkg/errors"

	"go.uber.org/atomic"
)

import (
	"github.com/arana-db/base36/pkg/base36"
	"github.com/arana-db/base36/pkg/sequence"
	"github.com/arana-db/base36/pkg/util/log"
)

const SequencePluginName = "snowflake"

func init() {
	sequence.Register(SequencePluginName, func(conf sequence.Config) (sequence.Generator, error) {
		seq, err := New(conf.Node, conf.Epoch)
		if err != nil {
			return nil, err
		}
		return seq, nil
	})
}

// workIdMax is the largest node id of the default 10 node bits.
const workIdMax int64 = 1023

// mu guards the package level epoch of bwmarrin/snowflake, it is read by NewNode.
var mu sync.Mutex

// Sequence issues snowflake ids as base-36 numbers.
type Sequence struct {
	idGenerate *bsnowflake.Node
	workId     int64
	currentVal *atomic.Int64
}

// New creates a snowflake generator for the node. A zero epoch keeps the library default,
// otherwise it is the custom epoch in milliseconds.
func New(node, epoch int64) (*Sequence, error) {
	if node < 0 || node > workIdMax {
		return nil, errors.Errorf("node worker-id must in [0, %d]", workIdMax)
	}

	mu.Lock()
	defer mu.Unlock()

	if epoch > 0 {
		prev := bsnowflake.Epoch
		bsnowflake.Epoch = epoch
		defer func() {
			bsnowflake.Epoch = prev
		}()
	}

	n, err := bsnowflake.NewNode(node)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	log.Debugf("[sequence] snowflake node=%d started", node)

	return &Sequence{
		idGenerate: n,
		workId:     node,
		currentVal: atomic.NewInt64(base36.MinValue.Value()),
	}, nil
}

// Next issues the next id.
func (seq *Sequence) Next(ctx context.Context) (base36.Number, error) {
	if err := ctx.Err(); err != nil {
		return base36.MinValue, err
	}

	id := seq.idGenerate.Generate().Int64()

	ret, err := base36.New(id)
	if err != nil {
		return base36.MinValue, errors.Wrapf(err, "snowflake: node=%d", seq.workId)
	}

	for {
		cur := seq.currentVal.Load()
		if id <= cur || seq.currentVal.CAS(cur, id) {
			break
		}
	}

	log.DebugfWithLogType(log.SequenceLog, "[sequence] snowflake node=%d issued %s", seq.workId, ret)
	return ret, nil
}

// Current returns the last issued id.
func (seq *Sequence) Current() base36.Number {
	cur := seq.currentVal.Load()
	if cur < 0 {
		return base36.MinValue
	}
	return base36.MustNew(cur)
}
