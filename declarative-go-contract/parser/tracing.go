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

	"github.com/palantir/witchcraft-go-tracing/wtracing"
)

// SpanParse names the span recorded around each ParseInterface and ParseMethod call.
const SpanParse = "contract.parse"

// startSpan starts a child of the span in ctx when ctx carries a tracer.
func startSpan(ctx context.Context) (context.Context, func()) {
	tracer := wtracing.TracerFromContext(ctx)
	if tracer == nil {
		return ctx, func() {}
	}
	span, ctx := wtracing.StartSpanFromContext(ctx, tracer, SpanParse)
	return ctx, span.Finish
}
