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

package template

type BodyKind string

const (
	NoBody       BodyKind = "none"
	LiteralBody  BodyKind = "literal"
	TemplateBody BodyKind = "template"
)

// Body is the request payload declared on a method: absent, a literal byte payload sent
// verbatim, or a string template whose placeholders are expanded per request.
type Body struct {
	kind     BodyKind
	data     []byte
	template string
}

// NewLiteralBody returns a body sent byte-for-byte. data is copied.
func NewLiteralBody(data []byte) Body {
	return Body{kind: LiteralBody, data: append([]byte(nil), data...)}
}

func NewTemplateBody(template string) Body {
	return Body{kind: TemplateBody, template: template}
}

func (b Body) Kind() BodyKind {
	if b.kind == "" {
		return NoBody
	}
	return b.kind
}

// Bytes returns a copy of a literal payload, or nil for other kinds.
func (b Body) Bytes() []byte {
	if b.kind != LiteralBody {
		return nil
	}
	return append([]byte(nil), b.data...)
}

// Template returns the body template, or "" for other kinds.
func (b Body) Template() string {
	return b.template
}
