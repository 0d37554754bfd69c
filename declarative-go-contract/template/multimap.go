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

// Value is a single header or query value. A query token without "=" produces a Value that is
// not Present: the parameter is sent as a bare flag.
type Value struct {
	literal string
	present bool
}

// Literal returns a present Value holding s, which may contain {placeholder} tokens.
func Literal(s string) Value {
	return Value{literal: s, present: true}
}

// NoValue returns the Value of a bare query flag such as "flag" in "?flag&a=b".
func NoValue() Value {
	return Value{}
}

// Literals converts each string to a present Value.
func Literals(values ...string) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Literal(v)
	}
	return out
}

func (v Value) Present() bool {
	return v.present
}

// String returns the literal, or "" if the value is not present.
func (v Value) String() string {
	return v.literal
}

// Ptr returns the literal as a pointer, or nil if the value is not present.
func (v Value) Ptr() *string {
	if !v.present {
		return nil
	}
	s := v.literal
	return &s
}

// Entry is one name of a MultiMap with its values.
type Entry struct {
	Name   string
	Values []Value
}

// MultiMap maps names to ordered values and remembers the order in which names were first added.
// The zero value is an empty map ready to use.
type MultiMap struct {
	names  []string
	values map[string][]Value
}

// Add appends values to name, adding name after all existing names if it is new.
func (m *MultiMap) Add(name string, values ...Value) {
	if m.values == nil {
		m.values = make(map[string][]Value)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = append(m.values[name], values...)
}

// Set replaces the values of name. A name that already exists keeps its position.
func (m *MultiMap) Set(name string, values ...Value) {
	if m.values == nil {
		m.values = make(map[string][]Value)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = append([]Value(nil), values...)
}

// Merge adds every entry of other in other's order.
func (m *MultiMap) Merge(other *MultiMap) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		m.Add(name, other.values[name]...)
	}
}

// Get returns a copy of the values of name, or nil if name is absent.
func (m *MultiMap) Get(name string) []Value {
	if m == nil {
		return nil
	}
	values, ok := m.values[name]
	if !ok {
		return nil
	}
	return append([]Value(nil), values...)
}

func (m *MultiMap) Has(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[name]
	return ok
}

// Names returns the names in the order they were first added.
func (m *MultiMap) Names() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.names...)
}

func (m *MultiMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Entries returns a copy of all entries in order, or nil if m is empty.
func (m *MultiMap) Entries() []Entry {
	if m.Len() == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(m.names))
	for _, name := range m.names {
		entries = append(entries, Entry{Name: name, Values: m.Get(name)})
	}
	return entries
}

// Clone returns a deep copy of m.
func (m *MultiMap) Clone() *MultiMap {
	out := &MultiMap{}
	out.Merge(m)
	return out
}
