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
	"github.com/Shopify/sarama"
	"github.com/elastic/elastic-agent-libs/logp"

	"github.com/elastic/go-eventio/wire"
)

// Output serializes values read from dataRx into ForwardMode frames
// and writes them to a Kafka topic. T is left generic so any worker
// result type can be sent, as long as toForwardMode knows how to
// convert it.
type Output[T any] struct {
	dataRx        <-chan T
	producer      sarama.SyncProducer
	topic         string
	toForwardMode func(T) wire.ForwardMode
	log           *logp.Logger
}

// NewOutput connects to the given brokers as a synchronous producer
// that writes to topic, converting each value taken off dataRx to a
// ForwardMode frame with toForwardMode before sending it.
func NewOutput[T any](dataRx <-chan T, brokers []string, topic string, toForwardMode func(T) wire.ForwardMode) (*Output[T], error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &Output[T]{
		dataRx:        dataRx,
		producer:      producer,
		topic:         topic,
		toForwardMode: toForwardMode,
		log:           logp.NewLogger("kafkaio"),
	}, nil
}

// Run writes every value received on dataRx to the topic until dataRx
// is closed.
func (out *Output[T]) Run() error {
	defer out.producer.Close()

	sent := 0
	for msg := range out.dataRx {
		payload, err := wire.Encode(out.toForwardMode(msg))
		if err != nil {
			return err
		}
		_, _, err = out.producer.SendMessage(&sarama.ProducerMessage{
			Topic: out.topic,
			Value: sarama.ByteEncoder(payload),
		})
		if err != nil {
			return err
		}
		sent++
	}
	out.log.Debugf("sent %d messages to topic %s", sent, out.topic)
	return nil
}
