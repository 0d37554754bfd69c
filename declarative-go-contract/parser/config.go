// Copyright (c) 2026 Palantir Technologies. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"sort"
	"strings"

	"github.com/palantir/declarative-go-client/declarative-go-contract/codecs"
	"github.com/palantir/pkg/metrics"
	werror "github.com/palantir/witchcraft-go-error"
)

// Config is the serializable configuration of a Parser.
// The fields of this struct should generally not be read directly by application code.
type Config struct {
	// Strategy forces an annotation vocabulary, "verb" or "request-line". If unset, the vocabulary
	// is selected per interface.
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	// URLTypes are the declared parameter types that denote a URL override. If unset, this
	// defaults to url.URL and *url.URL.
	URLTypes []string `json:"url-types,omitempty" yaml:"url-types,omitempty"`

	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

type MetricsConfig struct {
	// Enabled can be used to disable metrics with an explicit 'false'. Metrics are enabled if this is unset.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	// Tags allows setting arbitrary additional tags on the metrics emitted by the parser.
	Tags map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// LoadConfig decodes a YAML (or JSON) document into a Config. Unknown fields are rejected.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := codecs.YAML.Unmarshal(data, &cfg); err != nil {
		return Config{}, werror.Wrap(err, "failed to decode parser configuration")
	}
	return cfg, nil
}

// NewFromConfig returns a Parser configured by cfg. Params are applied after the configuration.
func NewFromConfig(cfg Config, params ...Param) (*Parser, error) {
	return New(append(configToParams(cfg), params...)...)
}

func configToParams(cfg Config) []Param {
	var params []Param
	if cfg.Strategy != "" {
		params = append(params, withStrategyName(cfg.Strategy))
	}
	if len(cfg.URLTypes) > 0 {
		params = append(params, WithURLTypes(cfg.URLTypes...))
	}
	if cfg.Metrics.Enabled != nil && !*cfg.Metrics.Enabled {
		params = append(params, WithMetricsDisabled())
	}
	if len(cfg.Metrics.Tags) > 0 {
		keys := make([]string, 0, len(cfg.Metrics.Tags))
		for k := range cfg.Metrics.Tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		params = append(params, paramFunc(func(p *Parser) error {
			for _, k := range keys {
				tag, err := metrics.NewTag(k, cfg.Metrics.Tags[k])
				if err != nil {
					return werror.Wrap(err, "invalid metric tag", werror.SafeParam("tagKey", k))
				}
				p.metricTags = append(p.metricTags, tag)
			}
			return nil
		}))
	}
	return params
}

func withStrategyName(name string) Param {
	return paramFunc(func(p *Parser) error {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case verbStrategyName:
			p.strategy = VerbStrategy{}
		case requestLineStrategyName:
			p.strategy = RequestLineStrategy{}
		default:
			return werror.Error("unknown annotation strategy",
				werror.SafeParam("strategy", name),
				werror.SafeParam("supported", []string{verbStrategyName, requestLineStrategyName}))
		}
		return nil
	})
}
