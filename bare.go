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

import "io"

// NextFrame decodes the next frame from a source. It returns io.EOF
// when the source is exhausted (after consuming any trailing bytes it
// needed to decide that). Any other error aborts the source.
type NextFrame func() ([]byte, error)

// RunBareSource is the two-channel select loop shared by every bare
// source (text, mbox, pcap, matrix). It is the one concrete
// implementation of the coordination primitive every source in this
// package needs: for each decoded frame, it simultaneously arms "send
// the frame" and "receive a pending ack", and acts on whichever is
// ready first, so a worker blocked trying to deliver an ack can never
// be starved by a source blocked trying to send the next event.
//
// dataTx is closed by this function before it returns, on every path —
// that is the source's half-close signal to the worker pool. seqStart
// is the first sequence number assigned: 1 for every bare source
// except matrixio, which numbers rows from 0.
func RunBareSource(dataTx chan<- BareEvent, ackPort *AckPort[uint64], seqStart uint64, next NextFrame) error {
	seqNo := seqStart

	for {
		raw, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			close(dataTx)
			ackPort.GiveUp()
			return NewCannotFetch(err)
		}

		event := BareEvent{RawData: raw, SeqNo: seqNo}
		seqNo++

		if !deliver(dataTx, ackPort, event) {
			// The worker pool has already finished (e.g. it was
			// spawned with zero workers); there is nothing left to
			// deliver to or drain from.
			close(dataTx)
			return nil
		}
	}

	close(dataTx)
	drainAcks(ackPort)
	return nil
}

// deliver attempts to hand event to dataTx, processing and discarding
// any acks that arrive in the meantime, until the send succeeds or
// ackPort reports the worker pool has already finished (only possible
// if it was spawned with zero workers). Returns false only in the
// latter case.
func deliver(dataTx chan<- BareEvent, ackPort *AckPort[uint64], event BareEvent) bool {
	for {
		select {
		case dataTx <- event:
			return true
		case _, ok := <-ackPort.Channel():
			if !ok {
				return false
			}
			// Bare sources have no external commit; the ack's value is
			// discarded, it only paced backpressure.
		}
	}
}

// drainAcks consumes the ack port to exhaustion after data_tx has been
// half-closed, so the source does not return while a worker is still
// delivering a trailing ack.
func drainAcks(ackPort *AckPort[uint64]) {
	for range ackPort.Channel() {
	}
}
