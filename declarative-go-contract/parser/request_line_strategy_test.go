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
	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	"github.com/palantir/declarative-go-client/declarative-go-contract/parser"
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLineStrategy_HTTPMethods(t *testing.T) {
	iface := annotation.Interface{Name: "example.Methods"}
	for _, test := range []struct {
		Line     string
		Expected string
	}{
		{Line: "POST /", Expected: "POST"},
		{Line: "PUT /", Expected: "PUT"},
		{Line: "GET /", Expected: "GET"},
		{Line: "DELETE /", Expected: "DELETE"},
	} {
		t.Run(test.Line, func(t *testing.T) {
			md := mustParseMethod(t, iface, method("call", annotation.NewRequestLine(test.Line)))
			assert.Equal(t, test.Expected, md.Template().Method())
			assert.Equal(t, "/", md.Template().URL())
		})
	}
}

func TestRequestLineStrategy_Lines(t *testing.T) {
	for _, test := range []struct {
		Name   string
		Line   string
		Method string
		URL    string
		Kind   errors.Kind
		Error  string
	}{
		{Name: "verb only", Line: "PATCH", Method: "PATCH", URL: ""},
		{Name: "http version", Line: "GET /items HTTP/1.1", Method: "GET", URL: "/items"},
		{Name: "surrounding whitespace", Line: "  GET   /items  ", Method: "GET", URL: "/items"},
		{
			Name:  "empty",
			Line:  "",
			Kind:  errors.EmptyAnnotationValue,
			Error: "RequestLine annotation was empty on method call",
		},
		{
			Name:  "path without verb",
			Line:  "/items",
			Kind:  errors.InvalidRequestLine,
			Error: "RequestLine annotation didn't start with an HTTP verb on method call",
		},
		{
			Name:  "invalid version",
			Line:  "GET /items SPDY/3",
			Kind:  errors.InvalidRequestLine,
			Error: `RequestLine annotation on method call has an invalid HTTP version "SPDY/3"`,
		},
		{
			Name:  "trailing tokens",
			Line:  "GET /items HTTP/1.1 extra",
			Kind:  errors.InvalidRequestLine,
			Error: "RequestLine annotation didn't start with an HTTP verb on method call",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			md, err := parseMethod(t, annotation.Interface{Name: "example.Api"}, method("call", annotation.NewRequestLine(test.Line)))
			if test.Error != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, test.Kind))
				assert.Contains(t, err.Error(), test.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.Method, md.Template().Method())
			assert.Equal(t, test.URL, md.Template().URL())
		})
	}
}

func TestRequestLineStrategy_BodyParams(t *testing.T) {
	iface := annotation.Interface{Name: "example.BodyParams"}

	md := mustParseMethod(t, iface, withParams(method("post", annotation.NewRequestLine("POST")), param("[]string")))
	index, ok := md.BodyIndex()
	require.True(t, ok)
	assert.Equal(t, 0, index)
	bodyType, ok := md.BodyType()
	require.True(t, ok)
	assert.Equal(t, "[]string", bodyType)

	_, err := parseMethod(t, iface, withParams(method("tooMany", annotation.NewRequestLine("POST")), param("[]string"), param("[]string")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.TooManyBodyParameters))
	assert.Contains(t, err.Error(), "Method has too many Body")
}

func TestRequestLineStrategy_QueryParamsInPathExtract(t *testing.T) {
	md := mustParseMethod(t, annotation.Interface{Name: "example.WithQueryParamsInPath"},
		method("empty", annotation.NewRequestLine("GET /?flag&Action=GetUser&Version=2010-05-08")))
	assert.Equal(t, "/", md.Template().URL())
	assert.Equal(t, []template.Entry{
		{Name: "flag", Values: []template.Value{template.NoValue()}},
		{Name: "Action", Values: template.Literals("GetUser")},
		{Name: "Version", Values: template.Literals("2010-05-08")},
	}, md.Template().Queries().Entries())
}

func TestRequestLineStrategy_BodyWithoutParameters(t *testing.T) {
	m := method("post",
		annotation.NewRequestLine("POST /"),
		annotation.NewHeaders("Content-Type: application/xml"),
		annotation.NewBody("<v01:getAccountsListOfUser/>"),
	)
	md := mustParseMethod(t, annotation.Interface{Name: "example.BodyWithoutParameters"}, m)
	body := md.Template().Body()
	assert.Equal(t, template.LiteralBody, body.Kind())
	assert.Equal(t, []byte("<v01:getAccountsListOfUser/>"), body.Bytes())
	assert.Equal(t, []template.Entry{
		{Name: "Content-Type", Values: template.Literals("application/xml")},
		{Name: "Content-Length", Values: template.Literals("28")},
	}, md.Template().Headers().Entries())
}

func TestRequestLineStrategy_SecondBody(t *testing.T) {
	m := method("post", annotation.NewRequestLine("POST /"), annotation.NewBody("a"), annotation.NewBody("b"))
	_, err := parseMethod(t, annotation.Interface{Name: "example.Api"}, m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.TooManyBodyParameters))
}

func TestRequestLineStrategy_PathAndURIParam(t *testing.T) {
	m := withParams(method("uriParam", annotation.NewRequestLine("GET /{1}/{2}")),
		param("string", annotation.NewParam("1")),
		param("*url.URL"),
		param("string", annotation.NewParam("2")),
	)
	md := mustParseMethod(t, annotation.Interface{Name: "example.WithURIParam"}, m)
	assert.Equal(t, map[int][]string{0: {"1"}, 2: {"2"}}, md.IndexToName())
	urlIndex, ok := md.URLIndex()
	require.True(t, ok)
	assert.Equal(t, 1, urlIndex)
	assert.Empty(t, md.FormParams())
}

func TestRequestLineStrategy_PathAndQueryParams(t *testing.T) {
	m := withParams(method("recordsByNameAndType", annotation.NewRequestLine("GET /domains/{domainId}/records?name={name}&type={type}")),
		param("int", annotation.NewParam("domainId")),
		param("string", annotation.NewParam("name")),
		param("string", annotation.NewParam("type")),
	)
	md := mustParseMethod(t, annotation.Interface{Name: "example.WithPathAndQueryParams"}, m)
	assert.Equal(t, "/domains/{domainId}/records", md.Template().URL())
	assert.Equal(t, []template.Entry{
		{Name: "name", Values: template.Literals("{name}")},
		{Name: "type", Values: template.Literals("{type}")},
	}, md.Template().Queries().Entries())
	assert.Equal(t, map[int][]string{0: {"domainId"}, 1: {"name"}, 2: {"type"}}, md.IndexToName())
	assert.Empty(t, md.FormParams())
}

func TestRequestLineStrategy_BodyTemplateWithFormParams(t *testing.T) {
	const body = `%7B"customer_name": "{customer_name}", "user_name": "{user_name}", "password": "{password}"%7D`
	m := withParams(method("login", annotation.NewRequestLine("POST /"), annotation.NewBody(body)),
		param("string", annotation.NewParam("customer_name")),
		param("string", annotation.NewParam("user_name")),
		param("string", annotation.NewParam("password")),
	)
	md := mustParseMethod(t, annotation.Interface{Name: "example.FormParams"}, m)

	assert.Equal(t, template.TemplateBody, md.Template().Body().Kind())
	assert.Equal(t, body, md.Template().Body().Template())
	assert.False(t, md.Template().Headers().Has(template.HeaderContentLength))
	assert.Equal(t, []string{"customer_name", "user_name", "password"}, md.FormParams())
	assert.Equal(t, map[int][]string{0: {"customer_name"}, 1: {"user_name"}, 2: {"password"}}, md.IndexToName())
	_, ok := md.BodyType()
	assert.False(t, ok)
}

func TestRequestLineStrategy_HeaderParams(t *testing.T) {
	m := withParams(method("logout", annotation.NewRequestLine("POST /"), annotation.NewHeaders("Auth-Token: {authToken}", "Auth-Token: Foo")),
		param("string", annotation.NewParam("authToken")),
	)
	md := mustParseMethod(t, annotation.Interface{Name: "example.HeaderParams"}, m)
	assert.Equal(t, template.Literals("{authToken}", "Foo"), md.Template().Headers().Get("Auth-Token"))
	assert.Equal(t, map[int][]string{0: {"authToken"}}, md.IndexToName())
	assert.Empty(t, md.FormParams())
}

func TestRequestLineStrategy_CustomExpander(t *testing.T) {
	m := withParams(method("date", annotation.NewRequestLine("POST /?date={date}")),
		param("time.Time", annotation.NewParam("date"), annotation.NewExpander("example.DateToMillis")),
	)
	md := mustParseMethod(t, annotation.Interface{Name: "example.CustomExpander"}, m)
	assert.Equal(t, map[int]string{0: "example.DateToMillis"}, md.IndexToExpander())
	assert.Empty(t, md.FormParams())
}

func TestRequestLineStrategy_UnsupportedAnnotations(t *testing.T) {
	_, err := parseMethod(t, annotation.Interface{Name: "example.Api"},
		method("post", annotation.NewRequestLine("POST /"), annotation.NewConsumes("application/json")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.UnsupportedAnnotation))
	assert.Contains(t, err.Error(), "consumes annotation is not supported by the request-line strategy on method post")

	iface := annotation.Interface{
		Name:        "example.Api",
		Annotations: []annotation.Annotation{annotation.NewPath("/base")},
		Methods:     []annotation.Method{method("get", annotation.NewRequestLine("GET /"))},
	}
	p, err := parser.New()
	require.NoError(t, err)
	_, err = p.ParseInterface(context.Background(), iface)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.UnsupportedAnnotation))
	assert.Contains(t, err.Error(), "path annotation is not supported by the request-line strategy on type example.Api")
}

func TestRequestLineStrategy_InterfaceHeaders(t *testing.T) {
	iface := annotation.Interface{
		Name:        "example.Api",
		Annotations: []annotation.Annotation{annotation.NewHeaders("Accept: application/json")},
		Methods: []annotation.Method{
			method("list", annotation.NewRequestLine("GET /items")),
			method("create", annotation.NewRequestLine("POST /items"), annotation.NewHeaders("Accept: text/plain")),
		},
	}
	p, err := parser.New()
	require.NoError(t, err)
	mds, err := p.ParseInterface(context.Background(), iface)
	require.NoError(t, err)
	require.Len(t, mds, 2)
	assert.Equal(t, template.Literals("application/json"), mds[0].Template().Headers().Get("Accept"))
	assert.Equal(t, template.Literals("application/json", "text/plain"), mds[1].Template().Headers().Get("Accept"))
}
