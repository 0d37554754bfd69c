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

package metadata

import (
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
)

// Builder accumulates the metadata of one method during a single parsing pass.
// It performs no validation; the parser checks invariants before mutating.
type Builder struct {
	configKey       string
	template        template.RequestTemplate
	bodyIndex       *int
	bodyType        string
	urlIndex        *int
	indexToName     map[int][]string
	formParams      []string
	indexToExpander map[int]string
}

func NewBuilder(configKey string) *Builder {
	return &Builder{
		configKey:       configKey,
		indexToName:     make(map[int][]string),
		indexToExpander: make(map[int]string),
	}
}

func (b *Builder) ConfigKey() string {
	return b.configKey
}

// Template returns the template under construction for in-place mutation.
func (b *Builder) Template() *template.RequestTemplate {
	return &b.template
}

// NameParam records that the parameter at index is substituted into the placeholder name.
func (b *Builder) NameParam(index int, name string) {
	b.indexToName[index] = append(b.indexToName[index], name)
}

func (b *Builder) AddFormParam(name string) {
	b.formParams = append(b.formParams, name)
}

func (b *Builder) HasFormParams() bool {
	return len(b.formParams) > 0
}

func (b *Builder) SetBody(index int, bodyType string) {
	b.bodyIndex = &index
	b.bodyType = bodyType
}

func (b *Builder) BodyIndex() (int, bool) {
	return optional(b.bodyIndex)
}

func (b *Builder) SetURLIndex(index int) {
	b.urlIndex = &index
}

func (b *Builder) URLIndex() (int, bool) {
	return optional(b.urlIndex)
}

func (b *Builder) SetExpander(index int, expander string) {
	b.indexToExpander[index] = expander
}

// Build returns an immutable snapshot. Later changes to the builder do not affect it.
func (b *Builder) Build() *MethodMetadata {
	md := &MethodMetadata{
		configKey:       b.configKey,
		template:        b.template.Clone(),
		bodyType:        b.bodyType,
		indexToName:     make(map[int][]string, len(b.indexToName)),
		formParams:      append([]string(nil), b.formParams...),
		indexToExpander: make(map[int]string, len(b.indexToExpander)),
	}
	if index, ok := b.BodyIndex(); ok {
		md.bodyIndex = &index
	}
	if index, ok := b.URLIndex(); ok {
		md.urlIndex = &index
	}
	for index, names := range b.indexToName {
		md.indexToName[index] = append([]string(nil), names...)
	}
	for index, expander := range b.indexToExpander {
		md.indexToExpander[index] = expander
	}
	return md
}
