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

// Package textio reads lines as events from a text stream.
package textio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/elastic/go-eventio"
)

// Input reads newline-delimited events from r. Each line's trailing
// "\r\n" or "\n" is stripped before it is emitted.
type Input struct {
	dataTx chan<- eventio.BareEvent
	ackRx  *eventio.AckPort[uint64]
	buf    *bufio.Reader
}

// NewInput builds a text Input reading from r. dataTx and ackRx are
// the two ends of the source's bounded channel pair; the caller owns
// their construction so it can size channel capacity and wire the
// matching worker pool.
func NewInput(dataTx chan<- eventio.BareEvent, ackRx *eventio.AckPort[uint64], r io.Reader) *Input {
	return &Input{dataTx: dataTx, ackRx: ackRx, buf: bufio.NewReader(r)}
}

// Run drives the source to completion. See eventio.RunBareSource for
// the shared two-channel select loop.
func (in *Input) Run() error {
	return eventio.RunBareSource(in.dataTx, in.ackRx, 1, in.nextLine)
}

func (in *Input) nextLine() ([]byte, error) {
	line, err := in.buf.ReadBytes('\n')
	if len(line) == 0 {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}
