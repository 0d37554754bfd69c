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
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/palantir/declarative-go-client/declarative-go-contract/annotation"
	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
	werror "github.com/palantir/witchcraft-go-error"
)

const requestLineStrategyName = "request-line"

// requestLine is the grammar of a request-line annotation: "VERB [target [HTTP-version]]".
type requestLine struct {
	Verb    string `parser:"@Token"`
	Target  string `parser:"@Token?"`
	Version string `parser:"@Token?"`
}

var requestLineParser = participle.MustBuild[requestLine](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Token", Pattern: `[^\s]+`},
		{Name: "Whitespace", Pattern: `\s+`},
	})),
	participle.Elide("Whitespace"),
)

// RequestLineStrategy declares the verb, path and query of a method in a single request line
// such as "GET /domains/{id}?type={type}", and binds parameters by name with the param kind.
type RequestLineStrategy struct{}

var _ Strategy = RequestLineStrategy{}

func (RequestLineStrategy) Name() string {
	return requestLineStrategyName
}

func (s RequestLineStrategy) OnInterfaceAnnotation(typeName string, a annotation.Annotation) (Delta, error) {
	if a.Kind != annotation.Headers {
		return Delta{}, unsupported(s, a.Kind, onType(typeName))
	}
	return headersDelta(a, onType(typeName))
}

func (s RequestLineStrategy) OnMethodAnnotation(methodName string, a annotation.Annotation) (Delta, error) {
	switch a.Kind {
	case annotation.RequestLine:
		return parseRequestLine(methodName, a.Value)
	case annotation.Headers:
		return headersDelta(a, onMethod(methodName))
	case annotation.Body:
		return bodyDelta(a, onMethod(methodName))
	default:
		return Delta{}, unsupported(s, a.Kind, onMethod(methodName))
	}
}

func (s RequestLineStrategy) OnParameterAnnotations(view template.Reader, index int, annotations []annotation.Annotation) (Binding, error) {
	return bindParameter(s, view, index, annotations, true)
}

func parseRequestLine(methodName, line string) (Delta, error) {
	if err := requireValue(line, fmt.Sprintf("RequestLine annotation was empty on method %s", methodName)); err != nil {
		return Delta{}, err
	}
	invalid := fmt.Sprintf("RequestLine annotation didn't start with an HTTP verb on method %s", methodName)
	parsed, err := requestLineParser.ParseString(methodName, line)
	if err != nil {
		return Delta{}, errors.Wrap(err, errors.InvalidRequestLine, invalid,
			werror.SafeParam("methodName", methodName))
	}
	if strings.Contains(parsed.Verb, "/") {
		return Delta{}, errors.New(errors.InvalidRequestLine, invalid,
			werror.SafeParam("methodName", methodName))
	}
	if parsed.Version != "" && !strings.HasPrefix(parsed.Version, "HTTP/") {
		return Delta{}, errors.New(errors.InvalidRequestLine,
			fmt.Sprintf("RequestLine annotation on method %s has an invalid HTTP version %q", methodName, parsed.Version),
			werror.SafeParam("methodName", methodName))
	}
	return Delta{Method: parsed.Verb, Path: parsed.Target}, nil
}
