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

// Package pcapio reads captured packets out of a classic pcap stream
// as events, one event per Ethernet L2 frame.
package pcapio

import (
	"io"

	"github.com/google/gopacket/pcapgo"

	"github.com/elastic/go-eventio"
)

// Input reads one event per packet record out of a pcap file read from
// r. The file header is parsed eagerly by NewInput so a malformed
// capture is rejected before Run starts emitting events.
type Input struct {
	dataTx chan<- eventio.BareEvent
	ackRx  *eventio.AckPort[uint64]
	reader *pcapgo.Reader
}

// NewInput builds a pcap Input reading from r.
func NewInput(dataTx chan<- eventio.BareEvent, ackRx *eventio.AckPort[uint64], r io.Reader) (*Input, error) {
	reader, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, eventio.NewCannotFetch(err)
	}
	return &Input{dataTx: dataTx, ackRx: ackRx, reader: reader}, nil
}

// Run drives the source to completion. See eventio.RunBareSource for
// the shared two-channel select loop.
func (in *Input) Run() error {
	return eventio.RunBareSource(in.dataTx, in.ackRx, 1, in.nextPacket)
}

func (in *Input) nextPacket() ([]byte, error) {
	data, _, err := in.reader.ReadPacketData()
	if err != nil {
		return nil, err
	}
	return data, nil
}
