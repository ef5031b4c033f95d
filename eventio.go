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

// Package eventio collects events from heterogeneous sources (Kafka
// topics, pcap captures, text streams, mbox archives, in-memory
// matrices), fans them out to a pool of worker goroutines over a
// bounded channel, and drives source-side commit/offset advancement
// from a return channel of acknowledgements.
package eventio

// Event is the contract every decoded unit of input satisfies,
// regardless of source. A is the source's ack token type: cheap to
// copy and safe to send across goroutines.
type Event[A any] interface {
	// Raw is the event's payload.
	Raw() []byte
	// Time is monotonic within a single source: a sequence number for
	// bare sources, an external timestamp for broker entries.
	Time() uint64
	// Ack is the token a worker must hand back on the ack channel to
	// acknowledge this event.
	Ack() A
}

// Input is a single-use source. Run takes ownership of the receiver
// (by value or by a freshly constructed pointer that is never reused)
// and drives the source to completion: fetching events, handing them
// to data_tx, and draining ack_rx until it closes.
//
// Run never blocks one of its two channel operations on the other; see
// the package-level select loop in bare.go and kafkaio.Input.Run for
// the two concrete shapes this takes.
type Input interface {
	Run() error
}

// BareEvent is the default carrier for stream sources: a byte buffer
// plus a sequence number. Its ack token is the sequence number itself,
// so acknowledging a BareEvent never requires looking anything up.
type BareEvent struct {
	RawData []byte
	SeqNo   uint64
}

var _ Event[uint64] = BareEvent{}

// Raw returns the event payload.
func (e BareEvent) Raw() []byte { return e.RawData }

// Time returns the sequence number, reused as a monotonic clock.
func (e BareEvent) Time() uint64 { return e.SeqNo }

// Ack returns the sequence number as the ack token.
func (e BareEvent) Ack() uint64 { return e.SeqNo }
