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
	werror "github.com/palantir/witchcraft-go-error"
)

// Strategy interprets one annotation vocabulary. Its functions are pure: they validate an
// annotation and describe its effect, and the Parser applies that effect to the method under
// construction, detecting conflicts across annotations.
type Strategy interface {
	// Name identifies the strategy in errors, logs and metric tags.
	Name() string
	// OnInterfaceAnnotation translates an annotation declared on the interface typeName.
	// The resulting delta is applied to every method of the interface before its own annotations.
	OnInterfaceAnnotation(typeName string, a annotation.Annotation) (Delta, error)
	// OnMethodAnnotation translates an annotation declared on the method methodName.
	OnMethodAnnotation(methodName string, a annotation.Annotation) (Delta, error)
	// OnParameterAnnotations binds the parameter at index. view is the template built from the
	// interface, the method and all preceding parameters.
	OnParameterAnnotations(view template.Reader, index int, annotations []annotation.Annotation) (Binding, error)
}

// Delta is the effect of a single interface or method annotation.
type Delta struct {
	// Method is the HTTP verb declared by the annotation, or "".
	Method string
	// Path is appended to the URL with template.Append; any query string it carries moves to the queries.
	Path    string
	Headers []HeaderEdit
	Body    *template.Body
}

// HeaderEdit adds values to a header, or replaces the existing values if Replace is set.
type HeaderEdit struct {
	Name    string
	Values  []string
	Replace bool
}

// Binding is the role a parameter position plays in the request.
type Binding struct {
	// Claimed is true when an HTTP-role annotation bound the parameter. Unclaimed parameters
	// become the URL override or the body.
	Claimed bool
	// Names are the placeholders the parameter is substituted into, in declaration order.
	Names []string
	// Queries and Headers name the entries that receive a {name} placeholder value.
	Queries []string
	Headers []string
	// FormParams are appended to the method's form fields.
	FormParams []string
	Expander   string
}

// selectStrategy picks the request-line vocabulary when any method of iface declares a
// request line, and the verb-per-annotation vocabulary otherwise.
func selectStrategy(iface annotation.Interface, extra ...annotation.Method) Strategy {
	methods := append(append([]annotation.Method(nil), iface.Methods...), extra...)
	for _, method := range methods {
		for _, a := range method.Annotations {
			if a.Kind == annotation.RequestLine {
				return RequestLineStrategy{}
			}
		}
	}
	return VerbStrategy{}
}

func unsupported(strategy Strategy, kind annotation.Kind, site string) error {
	return errors.New(errors.UnsupportedAnnotation,
		fmt.Sprintf("%s annotation is not supported by the %s strategy on %s", kind, strategy.Name(), site),
		werror.SafeParam("annotationKind", kind.String()),
		werror.SafeParam("strategy", strategy.Name()))
}

func onType(typeName string) string {
	return "type " + typeName
}

func onMethod(methodName string) string {
	return "method " + methodName
}

func onParameter(index int) string {
	return fmt.Sprintf("parameter %d", index)
}
