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
	"encoding/json"
	"io"
	"sort"

	"github.com/palantir/declarative-go-client/declarative-go-contract/codecs"
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
	werror "github.com/palantir/witchcraft-go-error"
)

// Description is the canonical, serializable form of a MethodMetadata.
// Headers, queries and parameter bindings are lists so that declaration order survives encoding.
type Description struct {
	ConfigKey       string              `json:"configKey" yaml:"configKey"`
	Method          string              `json:"method" yaml:"method"`
	URL             string              `json:"url" yaml:"url"`
	Headers         []EntryDescription  `json:"headers,omitempty" yaml:"headers,omitempty"`
	Queries         []EntryDescription  `json:"queries,omitempty" yaml:"queries,omitempty"`
	Body            *BodyDescription    `json:"body,omitempty" yaml:"body,omitempty"`
	BodyIndex       *int                `json:"bodyIndex,omitempty" yaml:"bodyIndex,omitempty"`
	BodyType        string              `json:"bodyType,omitempty" yaml:"bodyType,omitempty"`
	URLIndex        *int                `json:"urlIndex,omitempty" yaml:"urlIndex,omitempty"`
	IndexToName     []ParameterNames    `json:"indexToName,omitempty" yaml:"indexToName,omitempty"`
	FormParams      []string            `json:"formParams,omitempty" yaml:"formParams,omitempty"`
	IndexToExpander []ParameterExpander `json:"indexToExpander,omitempty" yaml:"indexToExpander,omitempty"`
}

// EntryDescription is one header or query name. A nil value is a bare query flag.
type EntryDescription struct {
	Name   string    `json:"name" yaml:"name"`
	Values []*string `json:"values" yaml:"values"`
}

type BodyDescription struct {
	Kind     template.BodyKind `json:"kind" yaml:"kind"`
	Literal  string            `json:"literal,omitempty" yaml:"literal,omitempty"`
	Template string            `json:"template,omitempty" yaml:"template,omitempty"`
}

type ParameterNames struct {
	Index int      `json:"index" yaml:"index"`
	Names []string `json:"names" yaml:"names"`
}

type ParameterExpander struct {
	Index    int    `json:"index" yaml:"index"`
	Expander string `json:"expander" yaml:"expander"`
}

var (
	_ json.Marshaler = (*MethodMetadata)(nil)
)

// Describe returns the canonical description of md.
func Describe(md *MethodMetadata) Description {
	tmpl := md.Template()
	desc := Description{
		ConfigKey:  md.configKey,
		Method:     tmpl.Method(),
		URL:        tmpl.URL(),
		Headers:    describeEntries(tmpl.Headers()),
		Queries:    describeEntries(tmpl.Queries()),
		FormParams: md.FormParams(),
	}
	switch body := tmpl.Body(); body.Kind() {
	case template.LiteralBody:
		desc.Body = &BodyDescription{Kind: body.Kind(), Literal: string(body.Bytes())}
	case template.TemplateBody:
		desc.Body = &BodyDescription{Kind: body.Kind(), Template: body.Template()}
	}
	if index, ok := md.BodyIndex(); ok {
		desc.BodyIndex = &index
		desc.BodyType = md.bodyType
	}
	if index, ok := md.URLIndex(); ok {
		desc.URLIndex = &index
	}
	for _, index := range md.Indices() {
		desc.IndexToName = append(desc.IndexToName, ParameterNames{
			Index: index,
			Names: append([]string(nil), md.indexToName[index]...),
		})
	}
	for _, index := range sortedKeys(md.indexToExpander) {
		desc.IndexToExpander = append(desc.IndexToExpander, ParameterExpander{
			Index:    index,
			Expander: md.indexToExpander[index],
		})
	}
	return desc
}

// DescribeAll describes mds in order.
func DescribeAll(mds []*MethodMetadata) []Description {
	out := make([]Description, len(mds))
	for i, md := range mds {
		out[i] = Describe(md)
	}
	return out
}

// Encode writes the descriptions of mds using encoder.
func Encode(w io.Writer, encoder codecs.Encoder, mds []*MethodMetadata) error {
	if err := encoder.Encode(w, DescribeAll(mds)); err != nil {
		return werror.Wrap(err, "failed to encode method metadata", werror.SafeParam("contentType", encoder.ContentType()))
	}
	return nil
}

func (m *MethodMetadata) MarshalJSON() ([]byte, error) {
	return codecs.JSON.Marshal(Describe(m))
}

// MarshalYAML implements yaml.Marshaler.
func (m *MethodMetadata) MarshalYAML() (interface{}, error) {
	return Describe(m), nil
}

func describeEntries(m *template.MultiMap) []EntryDescription {
	var out []EntryDescription
	for _, entry := range m.Entries() {
		values := make([]*string, len(entry.Values))
		for i, v := range entry.Values {
			values[i] = v.Ptr()
		}
		out = append(out, EntryDescription{Name: entry.Name, Values: values})
	}
	return out
}

func sortedKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
