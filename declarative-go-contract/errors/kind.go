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

package errors

// Kind groups contract errors by the invariant they violate.
// Every contract error is fatal: it describes a misdeclared interface, never a transient condition.
type Kind string

const (
	// EmptyAnnotationValue is returned when a Path, Produces, Consumes, Body, Headers or
	// parameter-binding annotation carries a blank value where one is required.
	EmptyAnnotationValue Kind = "EmptyAnnotationValue"

	// ConflictingHTTPMethod is returned when a second verb is declared on a method.
	ConflictingHTTPMethod Kind = "ConflictingHttpMethod"

	// MissingHTTPMethod is returned when no annotation of a method declares a verb.
	MissingHTTPMethod Kind = "MissingHttpMethod"

	// TooManyBodyParameters is returned when more than one parameter qualifies as the body source.
	TooManyBodyParameters Kind = "TooManyBodyParameters"

	// TooManyURLParameters is returned when more than one parameter is a URL override.
	TooManyURLParameters Kind = "TooManyURLParameters"

	// BodyWithFormParameters is returned when a method mixes a body parameter with form parameters.
	BodyWithFormParameters Kind = "BodyWithFormParameters"

	EmptyPathOnType   Kind = "EmptyPathOnType"
	EmptyPathOnMethod Kind = "EmptyPathOnMethod"

	InvalidHeaderLine  Kind = "InvalidHeaderLine"
	InvalidRequestLine Kind = "InvalidRequestLine"

	// UnsupportedAnnotation is returned when an annotation kind is outside the vocabulary of the
	// strategy parsing the interface.
	UnsupportedAnnotation Kind = "UnsupportedAnnotation"

	// DuplicateMethod is returned when two methods of one interface share a config key.
	DuplicateMethod Kind = "DuplicateMethod"

	UnknownInterface    Kind = "UnknownInterface"
	InvalidDeclarations Kind = "InvalidDeclarations"

	// KindParam is the safe werror parameter under which the Kind of a contract error is stored.
	KindParam = "contractErrorKind"
)
