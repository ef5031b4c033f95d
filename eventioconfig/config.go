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

// Package eventioconfig decodes the user-facing configuration for the
// sources and sinks in this module, using go-ucfg the way the rest of
// the Beats ecosystem does.
package eventioconfig

import (
	"errors"

	"github.com/elastic/go-ucfg"
)

// KafkaInputConfig configures a kafkaio.Input.
type KafkaInputConfig struct {
	Brokers    []string `config:"brokers" validate:"required"`
	Group      string   `config:"group" validate:"required"`
	Topic      string   `config:"topic" validate:"required"`
	FetchLimit uint64   `config:"fetch_limit"`
}

// defaultKafkaInputConfig supplies FetchLimit when the user's config
// has no fetch_limit key. kafkaio.Input has no unbounded mode: it stops
// at the first message whose entries exceed the remaining limit, so a
// limit of 0 stops it before any non-empty message.
var defaultKafkaInputConfig = KafkaInputConfig{
	FetchLimit: 1_000_000,
}

// Validate implements go-ucfg's Validator, run after struct tag
// validation and defaulting.
func (c *KafkaInputConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("kafka input requires at least one broker")
	}
	return nil
}

// NewKafkaInputConfig decodes a KafkaInputConfig from cfg.
func NewKafkaInputConfig(cfg *ucfg.Config) (KafkaInputConfig, error) {
	c := defaultKafkaInputConfig
	if err := cfg.Unpack(&c); err != nil {
		return KafkaInputConfig{}, err
	}
	return c, nil
}

// KafkaOutputConfig configures a kafkaio.Output.
type KafkaOutputConfig struct {
	Brokers []string `config:"brokers" validate:"required"`
	Topic   string   `config:"topic" validate:"required"`
}

// Validate implements go-ucfg's Validator.
func (c *KafkaOutputConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("kafka output requires at least one broker")
	}
	return nil
}

// NewKafkaOutputConfig decodes a KafkaOutputConfig from cfg.
func NewKafkaOutputConfig(cfg *ucfg.Config) (KafkaOutputConfig, error) {
	var c KafkaOutputConfig
	if err := cfg.Unpack(&c); err != nil {
		return KafkaOutputConfig{}, err
	}
	return c, nil
}
