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

package eventioconfig

import (
	"testing"

	"github.com/elastic/go-ucfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaInputConfigDefaultsFetchLimit(t *testing.T) {
	cfg, err := ucfg.NewFrom(map[string]interface{}{
		"brokers": []string{"localhost:9092"},
		"group":   "g",
		"topic":   "t",
	})
	require.NoError(t, err)

	in, err := NewKafkaInputConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:9092"}, in.Brokers)
	assert.Equal(t, uint64(1_000_000), in.FetchLimit)
}

func TestKafkaInputConfigRequiresBrokers(t *testing.T) {
	cfg, err := ucfg.NewFrom(map[string]interface{}{
		"group": "g",
		"topic": "t",
	})
	require.NoError(t, err)

	_, err = NewKafkaInputConfig(cfg)
	assert.Error(t, err)
}

func TestKafkaOutputConfigRoundTrip(t *testing.T) {
	cfg, err := ucfg.NewFrom(map[string]interface{}{
		"brokers": []string{"a:9092", "b:9092"},
		"topic":   "out",
	})
	require.NoError(t, err)

	out, err := NewKafkaOutputConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a:9092", "b:9092"}, out.Brokers)
	assert.Equal(t, "out", out.Topic)
}
