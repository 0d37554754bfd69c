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

package parser_test

import (
	"context"
	"testing"

	"github.com/palantir/declarative-go-client/declarative-go-contract/annotation"
	"github.com/palantir/declarative-go-client/declarative-go-contract/parser"
	"github.com/palantir/witchcraft-go-tracing/wtracing"
	"github.com/palantir/witchcraft-go-tracing/wzipkin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Tracing(t *testing.T) {
	reporter := &testReporter{}
	tracer, err := wzipkin.NewTracer(reporter)
	require.NoError(t, err)
	ctx := wtracing.ContextWithTracer(context.Background(), tracer)
	ctx = wtracing.ContextWithSpan(ctx, tracer.StartSpan("operation"))

	p, err := parser.New()
	require.NoError(t, err)
	_, err = p.ParseInterface(ctx, domainsInterface())
	require.NoError(t, err)
	_, err = p.ParseMethod(ctx, annotation.Interface{Name: "example.Api"}, method("get", annotation.GET()))
	require.NoError(t, err)

	require.Len(t, reporter.spans, 2)
	for _, span := range reporter.spans {
		assert.Equal(t, parser.SpanParse, span.Name)
		assert.NotNil(t, span.ParentID)
	}
}

func TestParser_NoTracer(t *testing.T) {
	p, err := parser.New()
	require.NoError(t, err)
	_, err = p.ParseInterface(context.Background(), domainsInterface())
	require.NoError(t, err)
}

type testReporter struct {
	spans []wtracing.SpanModel
}

func (r *testReporter) Send(span wtracing.SpanModel) {
	r.spans = append(r.spans, span)
}

func (r *testReporter) Close() error {
	return nil
}
