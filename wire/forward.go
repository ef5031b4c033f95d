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

// Package wire implements a partial encoding of the Fluentd Forward
// Protocol's Forward Mode message, the wire format carried inside
// every Kafka message the broker source and sink exchange.
//
// See https://github.com/fluent/fluentd/wiki/Forward-Protocol-Specification-v1#forward-mode
package wire

import "github.com/vmihailenco/msgpack/v5"

// MessageKey is the record key whose value supplies an event's raw
// payload. A record without this key yields an empty payload.
const MessageKey = "message"

// Entry is one (time, record) pair inside a ForwardMode message. See
// https://github.com/fluent/fluentd/wiki/Forward-Protocol-Specification-v1#entry
type Entry struct {
	Time   uint64            `msgpack:"time"`
	Record map[string][]byte `msgpack:"record"`
}

// Message returns the entry's payload: the "message" key of Record, or
// an empty slice if that key is absent.
func (e Entry) Message() []byte {
	if b, ok := e.Record[MessageKey]; ok {
		return b
	}
	return nil
}

// ForwardMode is a series of events packed into a single broker
// message: a tag, the entries themselves, and an ignored options map.
type ForwardMode struct {
	Tag     string            `msgpack:"tag"`
	Entries []Entry           `msgpack:"entries"`
	Option  map[string]string `msgpack:"option,omitempty"`
}

// Encode serializes a ForwardMode message with MessagePack.
func Encode(msg ForwardMode) ([]byte, error) {
	return msgpack.Marshal(msg)
}

// Decode parses a MessagePack-encoded ForwardMode message.
func Decode(b []byte) (ForwardMode, error) {
	var msg ForwardMode
	err := msgpack.Unmarshal(b, &msg)
	return msg, err
}
