// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package kafkaio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elastic/go-eventio/wire"
)

func TestEventAccessorsReadThroughEntry(t *testing.T) {
	ev := Event{
		Entry: wire.Entry{Time: 42, Record: map[string][]byte{wire.MessageKey: []byte("payload")}},
		Loc:   EntryLocation{Remainder: 3, Partition: 1, Offset: 99},
	}

	assert.Equal(t, []byte("payload"), ev.Raw())
	assert.Equal(t, uint64(42), ev.Time())
	assert.Equal(t, EntryLocation{Remainder: 3, Partition: 1, Offset: 99}, ev.Ack())
}

func TestEventRawEmptyWithoutMessageKey(t *testing.T) {
	ev := Event{Entry: wire.Entry{Time: 1, Record: map[string][]byte{}}}
	assert.Empty(t, ev.Raw())
}
