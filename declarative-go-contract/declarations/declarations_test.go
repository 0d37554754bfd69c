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

package declarations_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/palantir/declarative-go-client/declarative-go-contract/annotation"
	"github.com/palantir/declarative-go-client/declarative-go-contract/codecs"
	"github.com/palantir/declarative-go-client/declarative-go-contract/declarations"
	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	"github.com/palantir/declarative-go-client/declarative-go-contract/parser"
	"github.com/palantir/declarative-go-client/declarative-go-contract/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const domainsYAML = `
interfaces:
  - name: example.Domains
    annotations:
      - kind: path
        value: /domains
      - kind: produces
        value: application/json
    methods:
      - name: get
        annotations:
          - {kind: verb, value: GET}
          - {kind: path, value: "/{id}"}
          - {kind: headers, values: ["X-Client: sdk", "X-Client: v2"]}
        parameters:
          - type: string
            annotations: [{kind: path-param, value: id}]
      - name: redirect
        annotations: [{kind: verb, value: GET}]
        parameters:
          - type: example.Endpoint
            url-override: true
  - name: example.Legacy
    methods:
      - name: post
        annotations:
          - {kind: request-line, value: "POST /users?Action=Create"}
          - {kind: body, value: "{\"name\": \"{name}\"}"}
        parameters:
          - type: string
            annotations: [{kind: param, value: name}]
`

const domainsJSON = `{
  "interfaces": [
    {
      "name": "example.Domains",
      "annotations": [{"kind": "path", "value": "/domains"}],
      "methods": [
        {
          "name": "get",
          "annotations": [{"kind": "verb", "value": "GET"}, {"kind": "path", "value": "/{id}"}],
          "parameters": [{"type": "string", "annotations": [{"kind": "path-param", "value": "id"}]}]
        }
      ]
    }
  ]
}`

func TestFromYAML(t *testing.T) {
	source, err := declarations.FromYAML([]byte(domainsYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"example.Domains", "example.Legacy"}, source.Names())

	iface, err := source.Interface("example.Domains")
	require.NoError(t, err)
	assert.Equal(t, []annotation.Annotation{
		annotation.NewPath("/domains"),
		annotation.NewProduces("application/json"),
	}, iface.Annotations)
	require.Len(t, iface.Methods, 2)
	assert.Equal(t, annotation.Method{
		Name: "get",
		Annotations: []annotation.Annotation{
			annotation.GET(),
			annotation.NewPath("/{id}"),
			annotation.NewHeaders("X-Client: sdk", "X-Client: v2"),
		},
		Parameters: []annotation.Parameter{
			{Type: "string", Annotations: []annotation.Annotation{annotation.NewPathParam("id")}},
		},
	}, iface.Methods[0])
	assert.True(t, iface.Methods[1].Parameters[0].URLOverride)
}

func TestFromYAML_Parse(t *testing.T) {
	source, err := declarations.FromYAML([]byte(domainsYAML))
	require.NoError(t, err)
	p, err := parser.New()
	require.NoError(t, err)

	all, err := p.ParseSource(context.Background(), source)
	require.NoError(t, err)

	domains := all["example.Domains"]
	require.Len(t, domains, 2)
	assert.Equal(t, "/domains/{id}", domains[0].Template().URL())
	assert.Equal(t, template.Literals("application/json"), domains[0].Template().Headers().Get(template.HeaderAccept))
	assert.Equal(t, template.Literals("sdk", "v2"), domains[0].Template().Headers().Get("X-Client"))
	urlIndex, ok := domains[1].URLIndex()
	require.True(t, ok)
	assert.Equal(t, 0, urlIndex)

	legacy := all["example.Legacy"]
	require.Len(t, legacy, 1)
	assert.Equal(t, "POST", legacy[0].Template().Method())
	assert.Equal(t, "/users", legacy[0].Template().URL())
	assert.Equal(t, template.TemplateBody, legacy[0].Template().Body().Kind())
	assert.Equal(t, []string{"name"}, legacy[0].FormParams())
}

func TestFromJSON(t *testing.T) {
	source, err := declarations.FromJSON([]byte(domainsJSON))
	require.NoError(t, err)
	iface, err := source.Interface("example.Domains")
	require.NoError(t, err)
	require.Len(t, iface.Methods, 1)
	assert.Equal(t, "get", iface.Methods[0].Name)

	loaded, err := declarations.Load(strings.NewReader(domainsJSON), codecs.JSON)
	require.NoError(t, err)
	assert.Equal(t, source, loaded)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "contract.yml")
	jsonPath := filepath.Join(dir, "contract.JSON")
	require.NoError(t, os.WriteFile(yamlPath, []byte(domainsYAML), 0644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(domainsJSON), 0644))

	source, err := declarations.FromFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, source.Names(), 2)

	source, err = declarations.FromFile(jsonPath)
	require.NoError(t, err)
	assert.Len(t, source.Names(), 1)

	_, err = declarations.FromFile(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}

func TestInvalidDeclarations(t *testing.T) {
	for _, test := range []struct {
		Name    string
		YAML    string
		Message string
	}{
		{
			Name:    "unknown field",
			YAML:    "interfaces: [{name: a, verbs: [GET]}]",
			Message: "failed to decode declarations",
		},
		{
			Name:    "empty interface name",
			YAML:    "interfaces: [{name: ''}]",
			Message: "interface name is empty",
		},
		{
			Name:    "empty method name",
			YAML:    "interfaces: [{name: a, methods: [{name: ' '}]}]",
			Message: "method name is empty in interface a",
		},
		{
			Name:    "parameter without type",
			YAML:    "interfaces: [{name: a, methods: [{name: m, parameters: [{annotations: []}]}]}]",
			Message: "parameter 0 of method a#m has no type",
		},
		{
			Name:    "unknown kind",
			YAML:    "interfaces: [{name: a, annotations: [{kind: soap}]}]",
			Message: `unrecognized annotation kind "soap" on interface a`,
		},
		{
			Name:    "parameter kind on method",
			YAML:    "interfaces: [{name: a, methods: [{name: m, annotations: [{kind: path-param, value: id}]}]}]",
			Message: "path-param annotation cannot be declared on method a#m",
		},
		{
			Name:    "method kind on parameter",
			YAML:    "interfaces: [{name: a, methods: [{name: m, parameters: [{type: string, annotations: [{kind: body, value: x}]}]}]}]",
			Message: "body annotation cannot be declared on parameter 0 of method a#m",
		},
		{
			Name:    "duplicate interface",
			YAML:    "interfaces: [{name: a}, {name: a}]",
			Message: "interface a is declared more than once",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			_, err := declarations.FromYAML([]byte(test.YAML))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.InvalidDeclarations))
			assert.Contains(t, err.Error(), test.Message)
		})
	}
}
