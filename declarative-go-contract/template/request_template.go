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

// Package template holds the request template a method is parsed into, together with the
// small path and query-string language used by path annotations.
package template

import (
	"strconv"
)

const (
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
)

// Reader is the read-only view of a RequestTemplate. Map accessors return copies.
type Reader interface {
	Method() string
	URL() string
	Headers() *MultiMap
	Queries() *MultiMap
	Body() Body
}

// RequestTemplate is a request not yet bound to arguments: the URL, headers, queries and body
// may still contain {placeholder} tokens.
type RequestTemplate struct {
	method  string
	url     string
	headers MultiMap
	queries MultiMap
	body    Body
}

var _ Reader = (*RequestTemplate)(nil)

func (t *RequestTemplate) Method() string {
	return t.method
}

func (t *RequestTemplate) URL() string {
	return t.url
}

func (t *RequestTemplate) Headers() *MultiMap {
	return t.headers.Clone()
}

func (t *RequestTemplate) Queries() *MultiMap {
	return t.queries.Clone()
}

func (t *RequestTemplate) Body() Body {
	return Body{kind: t.body.kind, data: t.body.Bytes(), template: t.body.template}
}

// SetMethod sets the HTTP verb. Callers are responsible for rejecting a second verb.
func (t *RequestTemplate) SetMethod(method string) {
	t.method = method
}

// Append joins fragment onto the URL and moves any query string it carries into the queries,
// appending to names that already exist.
func (t *RequestTemplate) Append(fragment string) {
	path, query := SplitQuery(Append(t.url, fragment))
	t.url = path
	t.queries.Merge(query)
}

// AddHeader appends values to the header name.
func (t *RequestTemplate) AddHeader(name string, values ...string) {
	t.headers.Add(name, Literals(values...)...)
}

// SetHeader replaces the values of the header name.
func (t *RequestTemplate) SetHeader(name string, values ...string) {
	t.headers.Set(name, Literals(values...)...)
}

// AddQuery appends values to the query parameter name.
func (t *RequestTemplate) AddQuery(name string, values ...Value) {
	t.queries.Add(name, values...)
}

// SetBody replaces the body. A literal body also sets Content-Length to its size.
func (t *RequestTemplate) SetBody(body Body) {
	t.body = body
	if body.Kind() == LiteralBody {
		t.SetHeader(HeaderContentLength, strconv.Itoa(len(body.data)))
	}
}

// Clone returns a deep copy of t.
func (t *RequestTemplate) Clone() *RequestTemplate {
	return &RequestTemplate{
		method:  t.method,
		url:     t.url,
		headers: *t.headers.Clone(),
		queries: *t.queries.Clone(),
		body:    t.Body(),
	}
}
