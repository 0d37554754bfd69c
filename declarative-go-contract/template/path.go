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

import (
	"strings"
)

// Append joins a path fragment onto an existing URL. A single "/" is inserted when neither the
// URL ends with one nor the fragment starts with one; slashes already present are kept as-is.
//
//	Append("", "base")              // "/base"
//	Append("/base", "specific")     // "/base/specific"
//	Append("/base", "/specific")    // "/base/specific"
//	Append("/base/", "/specific")   // "/base//specific"
func Append(url, fragment string) string {
	if !strings.HasPrefix(fragment, "/") && !strings.HasSuffix(url, "/") {
		return url + "/" + fragment
	}
	return url + fragment
}

// SplitQuery separates a path literal at its first "?". The returned query is nil if the
// literal has no query string.
//
// Tokens are split on "&" and kept in declaration order: "k=v" adds v to k, a bare "k" adds
// NoValue to k, and a repeated key accumulates values. Values are kept verbatim so that
// {placeholder} tokens survive; empty tokens and tokens without a name are skipped.
func SplitQuery(literal string) (path string, query *MultiMap) {
	path, rawQuery, found := strings.Cut(literal, "?")
	if !found {
		return literal, nil
	}
	query = &MultiMap{}
	for _, token := range strings.Split(rawQuery, "&") {
		if token == "" {
			continue
		}
		name, value, hasValue := strings.Cut(token, "=")
		if name == "" {
			continue
		}
		if hasValue {
			query.Add(name, Literal(value))
		} else {
			query.Add(name, NoValue())
		}
	}
	return path, query
}

// Placeholder returns the template token substituted by the value bound to name.
func Placeholder(name string) string {
	return "{" + name + "}"
}
