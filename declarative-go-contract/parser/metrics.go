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
	"context"
	"strings"

	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	"github.com/palantir/pkg/metrics"
)

const (
	MetricParseMethod  = "contract.parse.method"
	MetricParseFailure = "contract.parse.failure"
	MetricTagStrategy  = "strategy"
	MetricTagKind      = "kind"

	metricTagKindUnknown     = "unknown"
	metricTagStrategyUnknown = "unknown"
)

// markParsed increments the "contract.parse.method" counter once per parsed method.
func (p *Parser) markParsed(ctx context.Context, strategy Strategy, count int) {
	if !p.metricsEnabled || count == 0 {
		return
	}
	metrics.FromContext(ctx).Counter(MetricParseMethod, p.tags(strategy)...).Inc(int64(count))
}

// markFailure increments the "contract.parse.failure" counter tagged with the error's kind.
func (p *Parser) markFailure(ctx context.Context, strategy Strategy, err error) {
	if !p.metricsEnabled {
		return
	}
	kindValue := metricTagKindUnknown
	if kind, ok := errors.KindFromError(err); ok {
		kindValue = strings.ToLower(string(kind))
	}
	tags := append(p.tags(strategy), metrics.MustNewTag(MetricTagKind, kindValue))
	metrics.FromContext(ctx).Counter(MetricParseFailure, tags...).Inc(1)
}

func (p *Parser) tags(strategy Strategy) metrics.Tags {
	tags := make(metrics.Tags, 0, len(p.metricTags)+1)
	tags = append(tags, p.metricTags...)
	name := metricTagStrategyUnknown
	if strategy != nil {
		name = strategy.Name()
	}
	return append(tags, metrics.MustNewTag(MetricTagStrategy, name))
}
