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

// Package matrixio turns a 2-D table of byte chunks into events, one
// per row, with the row's cells concatenated in column order.
package matrixio

import (
	"io"

	"github.com/elastic/go-eventio"
)

// Input emits one event per row of Data, a matrix of byte chunks.
// Unlike the other bare sources, row events are numbered from 0: the
// matrix source has no notion of a stream position, only a row index.
type Input struct {
	dataTx chan<- eventio.BareEvent
	ackRx  *eventio.AckPort[uint64]
	data   [][][]byte
	row    int
}

// NewInput builds a matrix Input over data, a slice of rows where each
// row is a slice of cells.
func NewInput(dataTx chan<- eventio.BareEvent, ackRx *eventio.AckPort[uint64], data [][][]byte) *Input {
	return &Input{dataTx: dataTx, ackRx: ackRx, data: data}
}

// Run drives the source to completion. See eventio.RunBareSource for
// the shared two-channel select loop.
func (in *Input) Run() error {
	return eventio.RunBareSource(in.dataTx, in.ackRx, 0, in.nextRow)
}

func (in *Input) nextRow() ([]byte, error) {
	if in.row >= len(in.data) {
		return nil, io.EOF
	}
	var line []byte
	for _, cell := range in.data[in.row] {
		line = append(line, cell...)
	}
	in.row++
	return line, nil
}
