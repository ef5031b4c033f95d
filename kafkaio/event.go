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

// Package kafkaio reads and writes events carried as MessagePack
// ForwardMode frames inside Kafka messages.
package kafkaio

import "github.com/elastic/go-eventio/wire"

// EntryLocation identifies one entry inside a Kafka message: which
// partition and offset it came from, and how many sibling entries from
// the same message still follow it. Remainder == 0 marks the last
// entry at (Partition, Offset), the point at which that offset becomes
// eligible for commit.
type EntryLocation struct {
	Remainder uint32
	Partition int32
	Offset    int64
}

// Event is one Fluentd Forward Protocol entry decoded from a Kafka
// message, paired with the location needed to ack it.
type Event struct {
	Entry wire.Entry
	Loc   EntryLocation
}

// Raw returns the entry's payload (its "message" record key).
func (e Event) Raw() []byte { return e.Entry.Message() }

// Time returns the entry's declared timestamp.
func (e Event) Time() uint64 { return e.Entry.Time }

// Ack returns the location token needed to acknowledge this event.
func (e Event) Ack() EntryLocation { return e.Loc }
