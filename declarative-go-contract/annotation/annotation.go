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

// Package annotation describes the already-extracted annotations of an interface.
//
// Discovering annotations is the job of a Source; the parser only ever sees the ordered
// lists declared here and never inspects runtime type information itself.
package annotation

import (
	"net/http"
)

// Annotation is a single declaration attached to an interface, method or parameter.
// Kinds carrying one literal use Value; Produces, Consumes and Headers use Values.
type Annotation struct {
	Kind   Kind
	Value  string
	Values []string
}

func GET() Annotation    { return NewVerb(http.MethodGet) }
func POST() Annotation   { return NewVerb(http.MethodPost) }
func PUT() Annotation    { return NewVerb(http.MethodPut) }
func DELETE() Annotation { return NewVerb(http.MethodDelete) }
func HEAD() Annotation   { return NewVerb(http.MethodHead) }

// NewVerb returns a verb annotation for method, which may be any custom verb.
func NewVerb(method string) Annotation {
	return Annotation{Kind: Verb, Value: method}
}

func NewPath(path string) Annotation {
	return Annotation{Kind: Path, Value: path}
}

func NewProduces(mediaTypes ...string) Annotation {
	return Annotation{Kind: Produces, Values: mediaTypes}
}

func NewConsumes(mediaTypes ...string) Annotation {
	return Annotation{Kind: Consumes, Values: mediaTypes}
}

func NewRequestLine(line string) Annotation {
	return Annotation{Kind: RequestLine, Value: line}
}

// NewHeaders returns a headers annotation. Each line has the form "Name: value".
func NewHeaders(lines ...string) Annotation {
	return Annotation{Kind: Headers, Values: lines}
}

func NewBody(body string) Annotation {
	return Annotation{Kind: Body, Value: body}
}

func NewPathParam(name string) Annotation {
	return Annotation{Kind: PathParam, Value: name}
}

func NewQueryParam(name string) Annotation {
	return Annotation{Kind: QueryParam, Value: name}
}

func NewHeaderParam(name string) Annotation {
	return Annotation{Kind: HeaderParam, Value: name}
}

func NewFormParam(name string) Annotation {
	return Annotation{Kind: FormParam, Value: name}
}

func NewParam(name string) Annotation {
	return Annotation{Kind: Param, Value: name}
}

func NewExpander(id string) Annotation {
	return Annotation{Kind: Expander, Value: id}
}
