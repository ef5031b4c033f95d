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

import "sync"

// AckPort is the bounded ack channel a source hands to its worker
// pool. It replaces a bare Go channel for one reason: a disconnected
// crossbeam_channel receiver makes further sends fail gracefully,
// while a plain Go channel either blocks forever (open, unread) or
// panics (closed while someone still sends on it). AckPort gives
// workers a second, source-owned way out — GiveUp — so a source that
// aborts early can unstick any worker still trying to hand back an ack
// without risking a send-on-closed-channel panic.
type AckPort[A any] struct {
	ch       chan A
	giveUp   chan struct{}
	giveOnce sync.Once
}

// NewAckPort creates an ack port with the given channel capacity.
// Capacity must be at least 1; the package does not enforce this, a
// capacity of 0 simply removes the backpressure slack the select loop
// relies on to avoid lockstep source/worker scheduling.
func NewAckPort[A any](capacity int) *AckPort[A] {
	return &AckPort[A]{
		ch:     make(chan A, capacity),
		giveUp: make(chan struct{}),
	}
}

// Send is called by workers after folding an event. It returns false
// once the source has called GiveUp, standing in for the original's
// disconnected ack_tx.send() error — the worker should stop trying to
// send and finalize with what it has.
func (p *AckPort[A]) Send(ack A) bool {
	select {
	case <-p.giveUp:
		return false
	default:
	}
	select {
	case p.ch <- ack:
		return true
	case <-p.giveUp:
		return false
	}
}

// Channel exposes the receive side for the source's select loop and
// for draining. It reads as closed once every worker holding a
// reference to this port has returned (see Split), exactly as ranging
// over the original ack_channel does once all producer clones are
// dropped.
func (p *AckPort[A]) Channel() <-chan A { return p.ch }

// Empty reports whether no ack is immediately available. The broker
// source uses this to decide when to coalesce a commit: "whenever the
// ack channel drains to empty."
func (p *AckPort[A]) Empty() bool { return len(p.ch) == 0 }

// GiveUp unblocks any worker currently parked in Send. It is safe to
// call more than once, and safe to call even if no worker is blocked.
// A source must call this before returning early due to an error, so
// it never leaves a worker stuck delivering an ack nobody will read.
func (p *AckPort[A]) GiveUp() { p.giveOnce.Do(func() { close(p.giveUp) }) }

// close is called by Split once every spawned worker has returned. It
// makes Channel() observably closed, ending the source's normal
// drain-to-exhaustion loop. Unexported: only the pool that owns all of
// a port's senders may close it.
func (p *AckPort[A]) close() { close(p.ch) }

// WorkerHandle is a goroutine's join handle: Go has no native
// equivalent of a thread::JoinHandle<R>, so Split hands back one of
// these per worker.
type WorkerHandle[R any] struct {
	result chan R
}

// Join blocks until the worker has finalized its accumulator and
// returns it.
func (h *WorkerHandle[R]) Join() R { return <-h.result }

// Split spawns nthreads worker goroutines that fan out events from
// dataRx, fold them into each worker's own accumulator, and forward
// acks through ackPort. Workers are peers: an event goes to whichever
// worker recv's it first, with no ordering guarantee across workers.
// Every event a worker receives is folded exactly once and produces
// exactly one ack attempt; a worker whose ack attempt fails (ackPort
// gave up) stops folding and returns its accumulator as-is.
func Split[D Event[A], A any, S any, R any](
	dataRx <-chan D,
	ackPort *AckPort[A],
	initialize func() S,
	fold func(S, D) S,
	finalize func(S) R,
	nthreads int,
) []*WorkerHandle[R] {
	handles := make([]*WorkerHandle[R], nthreads)
	var wg sync.WaitGroup
	wg.Add(nthreads)

	for i := 0; i < nthreads; i++ {
		result := make(chan R, 1)
		handles[i] = &WorkerHandle[R]{result: result}

		go func() {
			defer wg.Done()
			s := initialize()
			for event := range dataRx {
				s = fold(s, event)
				if !ackPort.Send(event.Ack()) {
					// The source has already given up. Use what we
					// folded so far; no point folding further events
					// nobody will ever ack.
					break
				}
			}
			result <- finalize(s)
		}()
	}

	go func() {
		wg.Wait()
		ackPort.close()
	}()

	return handles
}
