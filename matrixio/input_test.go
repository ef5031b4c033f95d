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

package matrixio

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/go-eventio"
)

func TestMatrixThreeByThree(t *testing.T) {
	data := [][][]byte{
		{[]byte("this "), []byte("is "), []byte("an ")},
		{[]byte("event "), []byte("that "), []byte("is splited")},
		{[]byte("into multiple "), []byte("weird "), []byte("chunks")},
	}

	dataCh := make(chan eventio.BareEvent, 1)
	ackPort := eventio.NewAckPort[uint64](1)
	in := NewInput(dataCh, ackPort, data)

	done := make(chan error, 1)
	go func() { done <- in.Run() }()

	var events []eventio.BareEvent
	handles := eventio.Split[eventio.BareEvent, uint64, struct{}, struct{}](
		dataCh,
		ackPort,
		func() struct{} { return struct{}{} },
		func(s struct{}, ev eventio.BareEvent) struct{} {
			events = append(events, ev)
			return s
		},
		func(s struct{}) struct{} { return s },
		1,
	)
	handles[0].Join()
	require.NoError(t, <-done)

	require.Len(t, events, 3)
	sort.Slice(events, func(i, j int) bool { return events[i].SeqNo < events[j].SeqNo })

	assert.Equal(t, []uint64{0, 1, 2}, []uint64{events[0].SeqNo, events[1].SeqNo, events[2].SeqNo})
	assert.Equal(t, []byte("this is an "), events[0].Raw())
	assert.Equal(t, []byte("event that is splited"), events[1].Raw())
	assert.Equal(t, []byte("into multiple weird chunks"), events[2].Raw())
}
