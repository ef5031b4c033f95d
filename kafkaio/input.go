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

package kafkaio

import (
	"math"

	"github.com/Shopify/sarama"
	"github.com/bsm/sarama-cluster"
	"github.com/elastic/elastic-agent-libs/logp"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/elastic/go-eventio"
	"github.com/elastic/go-eventio/internal/fifo"
	"github.com/elastic/go-eventio/wire"
)

// consumerGroup is the subset of *cluster.Consumer that Input drives.
// Narrowing it to an interface lets tests exercise the poll/ack logic
// against a fake, without a broker.
type consumerGroup interface {
	Messages() <-chan *sarama.ConsumerMessage
	MarkPartitionOffset(topic string, partition int32, offset int64, metadata string)
	CommitOffsets() error
	Close() error
}

var _ consumerGroup = (*cluster.Consumer)(nil)

// Input fetches ForwardMode-encoded messages from a Kafka topic and
// fans their entries out one event at a time, preserving the broker's
// offset-commit contract: an offset is marked consumed once the ack for
// its last entry (Remainder == 0) arrives, and marked offsets are
// committed whenever no further ack is waiting in the ack port.
type Input struct {
	dataTx     chan<- Event
	ackRx      *eventio.AckPort[EntryLocation]
	consumer   consumerGroup
	topic      string
	fetchLimit uint64
	log        *logp.Logger

	// buffered holds messages the broker client already had ready when
	// the source last checked, so a burst of arrivals doesn't have to
	// be picked up one blocking receive at a time.
	buffered fifo.FIFO[*sarama.ConsumerMessage]
}

// NewInput connects to the given brokers as consumer group group,
// subscribes to topic, and builds an Input that will fetch at most
// fetchLimit entries before stopping as though the topic were
// exhausted.
func NewInput(dataTx chan<- Event, ackRx *eventio.AckPort[EntryLocation], brokers []string, group, topic string, fetchLimit uint64) (*Input, error) {
	config := cluster.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true
	config.Group.Return.Notifications = false
	config.Consumer.Offsets.AutoCommit.Enable = false

	consumer, err := cluster.NewConsumer(brokers, group, []string{topic}, config)
	if err != nil {
		return nil, err
	}
	return &Input{
		dataTx:     dataTx,
		ackRx:      ackRx,
		consumer:   consumer,
		topic:      topic,
		fetchLimit: fetchLimit,
		log:        logp.NewLogger("kafkaio"),
	}, nil
}

// Run drives the source to completion: poll Kafka, decode each
// message's entries, and deliver them one at a time through dataTx
// while handling acks as they arrive.
func (in *Input) Run() error {
	defer in.consumer.Close()

	runErr := in.poll()
	close(in.dataTx)
	if runErr != nil {
		in.ackRx.GiveUp()
		return runErr
	}
	return in.drainAcks()
}

func (in *Input) poll() error {
	for {
		msg, ok := in.nextMessage()
		if !ok {
			return nil
		}

		var fwd wire.ForwardMode
		if err := msgpack.Unmarshal(msg.Value, &fwd); err != nil {
			return eventio.NewInvalidMessage(err)
		}

		n := uint64(len(fwd.Entries))
		if n > math.MaxUint32 {
			return eventio.NewTooManyEvents(len(fwd.Entries))
		}
		if n > in.fetchLimit {
			in.log.Debugf("fetch limit exhausted: %d entries left, message carries %d", in.fetchLimit, n)
			return nil
		}
		in.fetchLimit -= n

		for i, entry := range fwd.Entries {
			event := Event{
				Entry: entry,
				Loc: EntryLocation{
					Remainder: uint32(len(fwd.Entries) - 1 - i),
					Partition: msg.Partition,
					Offset:    msg.Offset,
				},
			}
			ok, err := in.deliver(event)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
}

// nextMessage returns the next message to process, preferring anything
// already buffered over a fresh blocking receive. It returns ok=false
// once the underlying consumer's channel is closed and nothing remains
// buffered.
func (in *Input) nextMessage() (*sarama.ConsumerMessage, bool) {
	if !in.buffered.Empty() {
		return in.buffered.ConsumeFirst(), true
	}
	msg, ok := <-in.consumer.Messages()
	if !ok {
		return nil, false
	}
	in.fillBuffered()
	return msg, true
}

// fillBuffered drains every message the consumer already has ready
// without blocking, so a burst of arrivals is processed as a batch
// instead of one blocking receive at a time.
func (in *Input) fillBuffered() {
	for {
		select {
		case msg, ok := <-in.consumer.Messages():
			if !ok {
				return
			}
			in.buffered.Add(msg)
		default:
			return
		}
	}
}

// deliver sends event, handling any ack that arrives while it waits.
// It returns false if the ack port is already closed, mirroring the
// bare sources' shutdown behavior.
func (in *Input) deliver(event Event) (bool, error) {
	for {
		select {
		case in.dataTx <- event:
			return true, nil
		case ack, ok := <-in.ackRx.Channel():
			if !ok {
				return false, nil
			}
			if err := in.handleAck(ack); err != nil {
				return false, err
			}
		}
	}
}

func (in *Input) drainAcks() error {
	for ack := range in.ackRx.Channel() {
		if err := in.handleAck(ack); err != nil {
			return err
		}
	}
	return nil
}

// handleAck implements the commit policy: the offset is marked once its
// last entry (remainder == 0) is acked, and marked offsets are
// committed whenever no further ack is waiting in the ack port at that
// moment.
//
// Unlike the consumer this was modeled on, sarama-cluster's
// MarkPartitionOffset cannot fail on a cross-topic ack, so the Fatal case
// described for that failure mode is unreachable here and has no
// counterpart in this implementation.
func (in *Input) handleAck(ack EntryLocation) error {
	if ack.Remainder == 0 {
		in.consumer.MarkPartitionOffset(in.topic, ack.Partition, ack.Offset+1, "")
	}
	if in.ackRx.Empty() {
		if err := in.consumer.CommitOffsets(); err != nil {
			return eventio.NewCannotCommit(err)
		}
		in.log.Debugf("committed offsets for topic %s", in.topic)
	}
	return nil
}
