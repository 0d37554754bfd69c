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

// Package errors defines the taxonomy of contract parsing failures.
//
// Contract errors are werror errors. The message names the offending element (type name,
// method name or parameter index) exactly as encountered, and the Kind is attached as the
// safe parameter KindParam so callers can branch on it without matching message text.
package errors

import (
	werror "github.com/palantir/witchcraft-go-error"
)

// New returns a contract error of the provided kind.
func New(kind Kind, message string, params ...werror.Param) error {
	return werror.Error(message, append(params, werror.SafeParam(KindParam, string(kind)))...)
}

// Wrap returns a contract error of the provided kind wrapping cause.
func Wrap(cause error, kind Kind, message string, params ...werror.Param) error {
	if cause == nil {
		return New(kind, message, params...)
	}
	return werror.Wrap(cause, message, append(params, werror.SafeParam(KindParam, string(kind)))...)
}

// KindFromError retrieves the Kind of a (potentially wrapped) contract error.
// If err was not created by this package, ok is false.
func KindFromError(err error) (kind Kind, ok bool) {
	kindI, ok := werror.ParamFromError(err, KindParam)
	if !ok {
		return "", false
	}
	kindStr, ok := kindI.(string)
	if !ok {
		return "", false
	}
	return Kind(kindStr), true
}

// Is reports whether err is a contract error of the provided kind.
func Is(err error, kind Kind) bool {
	actual, ok := KindFromError(err)
	return ok && actual == kind
}
