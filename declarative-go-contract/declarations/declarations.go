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

// Package declarations loads annotated interface declarations from YAML or JSON documents.
//
//	interfaces:
//	  - name: example.Domains
//	    annotations: [{kind: path, value: /domains}]
//	    methods:
//	      - name: get
//	        annotations: [{kind: verb, value: GET}, {kind: path, value: "/{id}"}]
//	        parameters:
//	          - type: string
//	            annotations: [{kind: path-param, value: id}]
package declarations

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/palantir/declarative-go-client/declarative-go-contract/annotation"
	"github.com/palantir/declarative-go-client/declarative-go-contract/codecs"
	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
)

// Document is the root of a declarations file.
type Document struct {
	Interfaces []InterfaceDecl `json:"interfaces" yaml:"interfaces"`
}

type InterfaceDecl struct {
	Name        string           `json:"name" yaml:"name"`
	Annotations []AnnotationDecl `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Methods     []MethodDecl     `json:"methods,omitempty" yaml:"methods,omitempty"`
}

type MethodDecl struct {
	Name        string           `json:"name" yaml:"name"`
	Annotations []AnnotationDecl `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Parameters  []ParameterDecl  `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

type ParameterDecl struct {
	Type string `json:"type" yaml:"type"`
	// URLOverride marks the parameter as carrying a full request URL.
	URLOverride bool             `json:"url-override,omitempty" yaml:"url-override,omitempty"`
	Annotations []AnnotationDecl `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// AnnotationDecl is one annotation. Single-valued kinds use Value and multi-valued kinds
// (produces, consumes, headers) use Values; a Value given for a multi-valued kind is treated
// as its only value.
type AnnotationDecl struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// FromYAML builds a source from a YAML document. Unknown fields are rejected.
func FromYAML(data []byte) (annotation.StaticSource, error) {
	return unmarshal(codecs.YAML, data)
}

// FromJSON builds a source from a JSON document.
func FromJSON(data []byte) (annotation.StaticSource, error) {
	return unmarshal(codecs.JSON, data)
}

// Load reads a document from r using decoder.
func Load(r io.Reader, decoder codecs.Decoder) (annotation.StaticSource, error) {
	var doc Document
	if err := decoder.Decode(r, &doc); err != nil {
		return nil, errors.Wrap(err, errors.InvalidDeclarations, "failed to decode declarations",
			werror.SafeParam("accept", decoder.Accept()))
	}
	return doc.Source()
}

// FromFile reads the declarations file at path, decoding ".json" files as JSON and anything else as YAML.
func FromFile(path string) (annotation.StaticSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, werror.Wrap(err, "failed to read declarations file", werror.SafeParam("path", path))
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FromJSON(data)
	}
	return FromYAML(data)
}

func unmarshal(decoder codecs.Decoder, data []byte) (annotation.StaticSource, error) {
	var doc Document
	if err := decoder.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.InvalidDeclarations, "failed to decode declarations",
			werror.SafeParam("accept", decoder.Accept()))
	}
	return doc.Source()
}

// Source validates the document and converts it into a source.
func (d Document) Source() (annotation.StaticSource, error) {
	interfaces := make([]annotation.Interface, 0, len(d.Interfaces))
	for i, decl := range d.Interfaces {
		iface, err := decl.toInterface()
		if err != nil {
			return nil, werror.Wrap(err, "invalid interface declaration", werror.SafeParam("interfaceIndex", i))
		}
		interfaces = append(interfaces, iface)
	}
	return annotation.NewStaticSource(interfaces...)
}

func (d InterfaceDecl) toInterface() (annotation.Interface, error) {
	if strings.TrimSpace(d.Name) == "" {
		return annotation.Interface{}, invalid("interface name is empty")
	}
	annotations, err := toAnnotations(d.Annotations, false, "interface "+d.Name)
	if err != nil {
		return annotation.Interface{}, err
	}
	iface := annotation.Interface{Name: d.Name, Annotations: annotations}
	for _, m := range d.Methods {
		method, err := m.toMethod(d.Name)
		if err != nil {
			return annotation.Interface{}, err
		}
		iface.Methods = append(iface.Methods, method)
	}
	return iface, nil
}

func (d MethodDecl) toMethod(interfaceName string) (annotation.Method, error) {
	if strings.TrimSpace(d.Name) == "" {
		return annotation.Method{}, invalid(fmt.Sprintf("method name is empty in interface %s", interfaceName))
	}
	site := fmt.Sprintf("method %s#%s", interfaceName, d.Name)
	annotations, err := toAnnotations(d.Annotations, false, site)
	if err != nil {
		return annotation.Method{}, err
	}
	method := annotation.Method{Name: d.Name, Annotations: annotations}
	for i, p := range d.Parameters {
		if strings.TrimSpace(p.Type) == "" {
			return annotation.Method{}, invalid(fmt.Sprintf("parameter %d of %s has no type", i, site))
		}
		paramAnnotations, err := toAnnotations(p.Annotations, true, fmt.Sprintf("parameter %d of %s", i, site))
		if err != nil {
			return annotation.Method{}, err
		}
		method.Parameters = append(method.Parameters, annotation.Parameter{
			Type:        p.Type,
			URLOverride: p.URLOverride,
			Annotations: paramAnnotations,
		})
	}
	return method, nil
}

func toAnnotations(decls []AnnotationDecl, onParameter bool, site string) ([]annotation.Annotation, error) {
	var out []annotation.Annotation
	for _, decl := range decls {
		kind, err := annotation.ParseKind(decl.Kind)
		if err != nil {
			return nil, errors.Wrap(err, errors.InvalidDeclarations,
				fmt.Sprintf("unrecognized annotation kind %q on %s", decl.Kind, site))
		}
		if kind.IsParameterKind() != onParameter {
			return nil, invalid(fmt.Sprintf("%s annotation cannot be declared on %s", kind, site))
		}
		a := annotation.Annotation{Kind: kind, Value: decl.Value, Values: decl.Values}
		if isMultiValued(kind) {
			if len(a.Values) == 0 && a.Value != "" {
				a.Values = []string{a.Value}
			}
			a.Value = ""
		}
		out = append(out, a)
	}
	return out, nil
}

func isMultiValued(kind annotation.Kind) bool {
	switch kind {
	case annotation.Produces, annotation.Consumes, annotation.Headers:
		return true
	}
	return false
}

func invalid(message string) error {
	return errors.New(errors.InvalidDeclarations, message)
}
