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

package annotation

import (
	"fmt"
	"sort"

	"github.com/palantir/declarative-go-client/declarative-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
)

// Interface is a declared client interface: its own annotations followed by its methods in declaration order.
type Interface struct {
	Name        string
	Annotations []Annotation
	Methods     []Method
}

// Method is a declared interface method with its annotations and parameters in declaration order.
type Method struct {
	Name        string
	Annotations []Annotation
	Parameters  []Parameter
}

// Parameter is a declared method parameter.
type Parameter struct {
	// Type is the declared generic type of the parameter, e.g. "[]string".
	// It becomes the body type when the parameter supplies the request body.
	Type string
	// URLOverride marks a parameter that carries a full URL replacing the client's base URL.
	URLOverride bool
	Annotations []Annotation
}

// Source yields the ordered annotations of an interface.
type Source interface {
	// Interface returns the declaration of the named interface.
	Interface(name string) (Interface, error)
	// Names returns the names of all interfaces known to the source, sorted.
	Names() []string
}

// StaticSource is a Source backed by in-memory declarations keyed by interface name.
type StaticSource map[string]Interface

var _ Source = StaticSource(nil)

// NewStaticSource returns a source holding the provided interfaces.
// It returns an error if two interfaces share a name.
func NewStaticSource(interfaces ...Interface) (StaticSource, error) {
	src := make(StaticSource, len(interfaces))
	for _, iface := range interfaces {
		if _, exists := src[iface.Name]; exists {
			return nil, errors.New(errors.InvalidDeclarations,
				fmt.Sprintf("interface %s is declared more than once", iface.Name),
				werror.SafeParam("interface", iface.Name))
		}
		src[iface.Name] = iface
	}
	return src, nil
}

func (s StaticSource) Interface(name string) (Interface, error) {
	iface, ok := s[name]
	if !ok {
		return Interface{}, errors.New(errors.UnknownInterface,
			fmt.Sprintf("interface %s is not declared", name),
			werror.SafeParam("interface", name))
	}
	return iface, nil
}

func (s StaticSource) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
