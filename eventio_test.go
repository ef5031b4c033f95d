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

package eventio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBareEventIsAckedBySeqNo(t *testing.T) {
	e := BareEvent{RawData: []byte("payload"), SeqNo: 42}
	assert.Equal(t, []byte("payload"), e.Raw())
	assert.Equal(t, uint64(42), e.Time())
	assert.Equal(t, uint64(42), e.Ack())
}

func TestErrorUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewCannotFetch(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestErrorKindsWithoutCauseDoNotPanic(t *testing.T) {
	for _, err := range []*Error{
		NewChannelClosed(),
		NewTooManyEvents(123456),
		NewFatal("cross-topic ack"),
	} {
		assert.NotEmpty(t, err.Error())
		assert.Nil(t, errors.Unwrap(err))
	}
}
