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

// Package contract and its subpackages turn declaratively annotated client interfaces into
// per-method request metadata.
//
// An interface is declared once, either in code through annotation.StaticSource or in a
// declarations file, and parser.Parser resolves every method into a metadata.MethodMetadata:
// the HTTP verb, a URL with {placeholders}, ordered headers and queries, an optional body, and
// the role each parameter position plays in the request.
//
// The metadata is a contract only. Expanding placeholders, encoding bodies and executing
// requests belong to the client that consumes it.
package contract
