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

// Package metadata holds the result of parsing one interface method.
package metadata

import (
	"sort"
	"strings"

	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
)

// MethodMetadata is the request template of one interface method together with the bindings
// from parameter positions to template placeholders. It is immutable: every accessor returns a copy.
type MethodMetadata struct {
	configKey       string
	template        *template.RequestTemplate
	bodyIndex       *int
	bodyType        string
	urlIndex        *int
	indexToName     map[int][]string
	formParams      []string
	indexToExpander map[int]string
}

// ConfigKey returns the stable identifier of a method, e.g. "example.Domains#records(int,string)".
func ConfigKey(interfaceName, methodName string, parameterTypes []string) string {
	return interfaceName + "#" + methodName + "(" + strings.Join(parameterTypes, ",") + ")"
}

func (m *MethodMetadata) ConfigKey() string {
	return m.configKey
}

// Template returns a copy of the request template.
func (m *MethodMetadata) Template() template.Reader {
	return m.template.Clone()
}

// BodyIndex returns the position of the parameter supplying the request body.
func (m *MethodMetadata) BodyIndex() (int, bool) {
	return optional(m.bodyIndex)
}

// BodyType returns the declared type of the body parameter. It is never set alongside form parameters.
func (m *MethodMetadata) BodyType() (string, bool) {
	return m.bodyType, m.bodyIndex != nil
}

// URLIndex returns the position of the parameter overriding the target URL.
func (m *MethodMetadata) URLIndex() (int, bool) {
	return optional(m.urlIndex)
}

// IndexToName returns the template names each parameter position is substituted into.
// The URL override position is never present.
func (m *MethodMetadata) IndexToName() map[int][]string {
	out := make(map[int][]string, len(m.indexToName))
	for index, names := range m.indexToName {
		out[index] = append([]string(nil), names...)
	}
	return out
}

// Indices returns the keys of IndexToName in ascending order.
func (m *MethodMetadata) Indices() []int {
	indices := make([]int, 0, len(m.indexToName))
	for index := range m.indexToName {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

// FormParams returns the form field names in parameter declaration order.
func (m *MethodMetadata) FormParams() []string {
	return append([]string(nil), m.formParams...)
}

// IndexToExpander returns the expander identifier declared for each parameter position that has one.
// Expanders are resolved and invoked by the request builder, never by the parser.
func (m *MethodMetadata) IndexToExpander() map[int]string {
	out := make(map[int]string, len(m.indexToExpander))
	for index, expander := range m.indexToExpander {
		out[index] = expander
	}
	return out
}

func optional(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
