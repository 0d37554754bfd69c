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

	"github.com/palantir/declarative-go-client/declarative-go-contract/annotation"
	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
)

const verbStrategyName = "verb"

// VerbStrategy declares the HTTP verb with its own annotation and the path, media types and
// headers with separate annotations.
type VerbStrategy struct{}

var _ Strategy = VerbStrategy{}

func (VerbStrategy) Name() string {
	return verbStrategyName
}

func (s VerbStrategy) OnInterfaceAnnotation(typeName string, a annotation.Annotation) (Delta, error) {
	switch a.Kind {
	case annotation.Path:
		if err := requirePath(a.Value, errors.EmptyPathOnType, typeName); err != nil {
			return Delta{}, err
		}
		return Delta{Path: a.Value}, nil
	case annotation.Produces:
		return mediaTypeDelta(a, template.HeaderAccept, "Produces", onType(typeName))
	case annotation.Consumes:
		return mediaTypeDelta(a, template.HeaderContentType, "Consumes", onType(typeName))
	case annotation.Headers:
		return headersDelta(a, onType(typeName))
	default:
		return Delta{}, unsupported(s, a.Kind, onType(typeName))
	}
}

func (s VerbStrategy) OnMethodAnnotation(methodName string, a annotation.Annotation) (Delta, error) {
	switch a.Kind {
	case annotation.Verb:
		if err := requireValue(a.Value, fmt.Sprintf("HttpMethod.value() was empty on method %s", methodName)); err != nil {
			return Delta{}, err
		}
		return Delta{Method: a.Value}, nil
	case annotation.Path:
		if err := requirePath(a.Value, errors.EmptyPathOnMethod, methodName); err != nil {
			return Delta{}, err
		}
		return Delta{Path: a.Value}, nil
	case annotation.Produces:
		return mediaTypeDelta(a, template.HeaderAccept, "Produces", onMethod(methodName))
	case annotation.Consumes:
		return mediaTypeDelta(a, template.HeaderContentType, "Consumes", onMethod(methodName))
	case annotation.Headers:
		return headersDelta(a, onMethod(methodName))
	case annotation.Body:
		return bodyDelta(a, onMethod(methodName))
	default:
		return Delta{}, unsupported(s, a.Kind, onMethod(methodName))
	}
}

func (s VerbStrategy) OnParameterAnnotations(view template.Reader, index int, annotations []annotation.Annotation) (Binding, error) {
	return bindParameter(s, view, index, annotations, false)
}
