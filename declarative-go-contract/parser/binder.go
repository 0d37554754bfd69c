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
	"github.com/palantir/declarative-go-client/declarative-go-contract/metadata"
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
	werror "github.com/palantir/witchcraft-go-error"
)

// bindParameter inspects the annotations of one parameter in declaration order.
// The param kind is only understood when inferParams is set; its role is inferred from where
// its placeholder already appears in view.
func bindParameter(strategy Strategy, view template.Reader, index int, annotations []annotation.Annotation, inferParams bool) (Binding, error) {
	var binding Binding
	for _, a := range annotations {
		switch a.Kind {
		case annotation.PathParam:
			name, err := requireParamName(a, "PathParam", index)
			if err != nil {
				return Binding{}, err
			}
			binding.Names = append(binding.Names, name)
		case annotation.QueryParam:
			name, err := requireParamName(a, "QueryParam", index)
			if err != nil {
				return Binding{}, err
			}
			binding.Queries = append(binding.Queries, name)
			binding.Names = append(binding.Names, name)
		case annotation.HeaderParam:
			name, err := requireParamName(a, "HeaderParam", index)
			if err != nil {
				return Binding{}, err
			}
			binding.Headers = append(binding.Headers, name)
			binding.Names = append(binding.Names, name)
		case annotation.FormParam:
			name, err := requireParamName(a, "FormParam", index)
			if err != nil {
				return Binding{}, err
			}
			binding.FormParams = append(binding.FormParams, name)
			binding.Names = append(binding.Names, name)
		case annotation.Param:
			if !inferParams {
				return Binding{}, unsupported(strategy, a.Kind, onParameter(index))
			}
			name, err := requireParamName(a, "Param", index)
			if err != nil {
				return Binding{}, err
			}
			if !referenced(view, template.Placeholder(name)) {
				binding.FormParams = append(binding.FormParams, name)
			}
			binding.Names = append(binding.Names, name)
		case annotation.Expander:
			if err := requireValue(a.Value, fmt.Sprintf("Expander.value() was empty on parameter %d", index)); err != nil {
				return Binding{}, err
			}
			binding.Expander = a.Value
			continue
		default:
			return Binding{}, unsupported(strategy, a.Kind, onParameter(index))
		}
		binding.Claimed = true
	}
	return binding, nil
}

// referenced reports whether placeholder appears in the URL, as a whole query value, or inside a header value.
func referenced(view template.Reader, placeholder string) bool {
	if strings.Contains(view.URL(), placeholder) {
		return true
	}
	for _, entry := range view.Queries().Entries() {
		for _, v := range entry.Values {
			if v.Present() && v.String() == placeholder {
				return true
			}
		}
	}
	for _, entry := range view.Headers().Entries() {
		for _, v := range entry.Values {
			if strings.Contains(v.String(), placeholder) {
				return true
			}
		}
	}
	return false
}

// applyBinding records a parameter's binding on b. A parameter no annotation claimed becomes the
// URL override if its type denotes one, and the request body otherwise.
func (p *Parser) applyBinding(b *metadata.Builder, index int, param annotation.Parameter, binding Binding) error {
	if _, hasBody := b.BodyIndex(); hasBody && len(binding.FormParams) > 0 {
		return bodyWithFormParameters(b)
	}
	for _, name := range binding.Queries {
		b.Template().AddQuery(name, template.Literal(template.Placeholder(name)))
	}
	for _, name := range binding.Headers {
		b.Template().AddHeader(name, template.Placeholder(name))
	}
	for _, name := range binding.FormParams {
		b.AddFormParam(name)
	}
	for _, name := range binding.Names {
		b.NameParam(index, name)
	}
	if binding.Expander != "" {
		b.SetExpander(index, binding.Expander)
	}
	if binding.Claimed {
		return nil
	}

	if p.isURLOverride(param) {
		if _, ok := b.URLIndex(); ok {
			return errors.New(errors.TooManyURLParameters,
				fmt.Sprintf("Method has too many URL parameters: %s", b.ConfigKey()),
				werror.SafeParam("configKey", b.ConfigKey()),
				werror.SafeParam("parameterIndex", index))
		}
		b.SetURLIndex(index)
		return nil
	}
	if b.HasFormParams() {
		return bodyWithFormParameters(b)
	}
	if _, ok := b.BodyIndex(); ok {
		return errors.New(errors.TooManyBodyParameters,
			fmt.Sprintf("Method has too many Body parameters: %s", b.ConfigKey()),
			werror.SafeParam("configKey", b.ConfigKey()),
			werror.SafeParam("parameterIndex", index))
	}
	b.SetBody(index, param.Type)
	return nil
}

func (p *Parser) isURLOverride(param annotation.Parameter) bool {
	if param.URLOverride {
		return true
	}
	_, ok := p.urlTypes[param.Type]
	return ok
}

func bodyWithFormParameters(b *metadata.Builder) error {
	return errors.New(errors.BodyWithFormParameters, "Body parameters cannot be used with form parameters.",
		werror.SafeParam("configKey", b.ConfigKey()))
}
