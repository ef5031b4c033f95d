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

// Package mboxio reads whole mail messages out of an mbox file as
// events, one event per message.
package mboxio

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/elastic/go-eventio"
)

// magicPrefix marks the first line of every message in an mbox file.
var magicPrefix = []byte("From ")

// Input reads mbox-delimited events from r. The underlying reader must
// begin with a line carrying the mbox magic prefix; NewInput validates
// this up front so a malformed file is rejected before Run starts
// emitting events.
type Input struct {
	dataTx chan<- eventio.BareEvent
	ackRx  *eventio.AckPort[uint64]
	buf    *bufio.Reader
}

// NewInput builds an mbox Input reading from r. It returns
// eventio.InvalidMessage if the stream does not start with the mbox
// magic prefix.
func NewInput(dataTx chan<- eventio.BareEvent, ackRx *eventio.AckPort[uint64], r io.Reader) (*Input, error) {
	buf := bufio.NewReader(r)
	first, err := buf.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, eventio.NewCannotFetch(err)
	}
	if !bytes.HasPrefix(first, magicPrefix) {
		return nil, eventio.NewInvalidMessage(errors.New("wrong format"))
	}
	return &Input{dataTx: dataTx, ackRx: ackRx, buf: buf}, nil
}

// Run drives the source to completion. See eventio.RunBareSource for
// the shared two-channel select loop.
func (in *Input) Run() error {
	return eventio.RunBareSource(in.dataTx, in.ackRx, 1, in.nextEmail)
}

// nextEmail accumulates lines until it sees the next message's magic
// line, which marks the end of the current message. That boundary
// line itself is consumed and discarded: it carries no information the
// caller needs, only the split point.
func (in *Input) nextEmail() ([]byte, error) {
	var buf []byte
	cur := 0
	for {
		line, err := in.buf.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) == 0 {
			if len(buf) == 0 {
				return nil, io.EOF
			}
			return buf, nil
		}
		buf = append(buf, line...)
		if bytes.HasPrefix(buf[cur:], magicPrefix) {
			return buf[:cur], nil
		}
		cur = len(buf)
		if err == io.EOF {
			return buf, nil
		}
	}
}
