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

package annotation

import (
	"strings"

	werror "github.com/palantir/witchcraft-go-error"
)

// Kind tags an Annotation with one of the recognized annotation vocabularies.
// The set is closed: parsers dispatch on Kind and reject values outside it.
type Kind string

const (
	// Verb declares the HTTP method of a method. Value holds the verb, e.g. "GET" or a custom "PATCH".
	Verb Kind = "verb"
	// Path declares a path fragment on an interface (base path) or method. Value holds the fragment.
	Path Kind = "path"
	// Produces declares the media types the server produces. The first of Values becomes the Accept header.
	Produces Kind = "produces"
	// Consumes declares the media types the server consumes. The first of Values becomes the Content-Type header.
	Consumes Kind = "consumes"
	// RequestLine declares verb, path and query in one literal such as "GET /domains/{id}?full=true".
	RequestLine Kind = "request-line"
	// Headers declares static header lines of the form "Name: value" in Values.
	Headers Kind = "headers"
	// Body declares a literal or templated request body in Value.
	Body Kind = "body"

	PathParam   Kind = "path-param"
	QueryParam  Kind = "query-param"
	HeaderParam Kind = "header-param"
	FormParam   Kind = "form-param"
	// Param binds a parameter to a template placeholder whose role is inferred from where the
	// placeholder appears in the request template.
	Param Kind = "param"
	// Expander names the value-expansion strategy used for a parameter. Value holds an opaque identifier.
	Expander Kind = "expander"
)

var kinds = []Kind{
	Verb, Path, Produces, Consumes, RequestLine, Headers, Body,
	PathParam, QueryParam, HeaderParam, FormParam, Param, Expander,
}

// Kinds returns all recognized kinds.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind returns the Kind named by s. Matching ignores case and surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	normalized := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, kind := range kinds {
		if kind == normalized {
			return kind, nil
		}
	}
	return "", werror.Error("unrecognized annotation kind", werror.SafeParam("kind", s))
}

// IsParameterKind reports whether k may only appear on parameters.
func (k Kind) IsParameterKind() bool {
	switch k {
	case PathParam, QueryParam, HeaderParam, FormParam, Param, Expander:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
