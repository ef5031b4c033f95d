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

package fifo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFIFOAddAndConsumeIsOrdered(t *testing.T) {
	var f FIFO[int]
	assert.True(t, f.Empty())

	f.Add(1)
	f.Add(2)
	f.Add(3)

	assert.False(t, f.Empty())
	assert.Equal(t, 1, f.ConsumeFirst())
	assert.Equal(t, 2, f.ConsumeFirst())
	assert.Equal(t, 3, f.ConsumeFirst())
	assert.True(t, f.Empty())
}

func TestFIFOConcatAppendsInOrder(t *testing.T) {
	var a, b FIFO[string]
	a.Add("x")
	a.Add("y")
	b.Add("z")

	a.Concat(b)

	assert.Equal(t, []string{"x", "y", "z"}, a.Drain())
}

func TestFIFOConcatOntoEmpty(t *testing.T) {
	var a, b FIFO[string]
	b.Add("only")

	a.Concat(b)

	assert.Equal(t, []string{"only"}, a.Drain())
}

func TestFIFODrainEmptiesQueue(t *testing.T) {
	var f FIFO[int]
	f.Add(10)
	f.Add(20)

	assert.Equal(t, []int{10, 20}, f.Drain())
	assert.True(t, f.Empty())
	assert.Nil(t, f.Drain())
}
