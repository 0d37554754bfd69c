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

	"github.com/palantir/declarative-go-client/declarative-go-contract/annotation"
	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
	werror "github.com/palantir/witchcraft-go-error"
)

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// requireValue fails with EmptyAnnotationValue if value is blank.
func requireValue(value, message string) error {
	if isBlank(value) {
		return errors.New(errors.EmptyAnnotationValue, message)
	}
	return nil
}

// requirePath fails with kind if a path annotation value is blank.
func requirePath(value string, kind errors.Kind, annotatedName string) error {
	if isBlank(value) {
		return errors.New(kind, fmt.Sprintf("Path.value() was empty on %s", annotatedName),
			werror.SafeParam("annotatedName", annotatedName))
	}
	return nil
}

// requireParamName fails if a parameter-binding annotation carries a blank name.
func requireParamName(a annotation.Annotation, label string, index int) (string, error) {
	if isBlank(a.Value) {
		return "", errors.New(errors.EmptyAnnotationValue,
			fmt.Sprintf("%s.value() was empty on parameter %d", label, index),
			werror.SafeParam("parameterIndex", index))
	}
	return a.Value, nil
}

// mediaTypeDelta turns a Produces or Consumes annotation into a header replacement using its first value.
func mediaTypeDelta(a annotation.Annotation, header, label, site string) (Delta, error) {
	if len(a.Values) == 0 || isBlank(a.Values[0]) {
		return Delta{}, errors.New(errors.EmptyAnnotationValue, fmt.Sprintf("%s.value() was empty on %s", label, site))
	}
	return Delta{Headers: []HeaderEdit{{Name: header, Values: []string{a.Values[0]}, Replace: true}}}, nil
}

// headersDelta turns a headers annotation into one header addition per line, in order.
func headersDelta(a annotation.Annotation, site string) (Delta, error) {
	if len(a.Values) == 0 {
		return Delta{}, errors.New(errors.EmptyAnnotationValue, fmt.Sprintf("Headers annotation was empty on %s", site))
	}
	var delta Delta
	for _, line := range a.Values {
		name, value, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return Delta{}, errors.New(errors.InvalidHeaderLine,
				fmt.Sprintf("Headers annotation value %q on %s is not of the form \"Name: value\"", line, site))
		}
		delta.Headers = append(delta.Headers, HeaderEdit{Name: name, Values: []string{strings.TrimSpace(value)}})
	}
	return delta, nil
}

// bodyDelta keeps a body without placeholders as a literal payload and any other body as a template.
func bodyDelta(a annotation.Annotation, site string) (Delta, error) {
	if err := requireValue(a.Value, fmt.Sprintf("Body annotation was empty on %s", site)); err != nil {
		return Delta{}, err
	}
	var body template.Body
	if strings.Contains(a.Value, "{") {
		body = template.NewTemplateBody(a.Value)
	} else {
		body = template.NewLiteralBody([]byte(a.Value))
	}
	return Delta{Body: &body}, nil
}
