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

package codecs

import (
	"io"

	werror "github.com/palantir/witchcraft-go-error"
	"gopkg.in/yaml.v2"
)

const (
	contentTypeYAML = "application/x-yaml"
)

// YAML decodes declaration documents and parser configuration. Decoding is strict:
// unknown fields are rejected so that a misspelled annotation key does not silently vanish.
var YAML Codec = codecYAML{}

type codecYAML struct{}

func (codecYAML) Accept() string {
	return contentTypeYAML
}

func (codecYAML) Decode(r io.Reader, v interface{}) error {
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(v); err != nil {
		return werror.Wrap(err, "failed to decode YAML-encoded value")
	}
	return nil
}

func (codecYAML) Unmarshal(data []byte, v interface{}) error {
	if err := yaml.UnmarshalStrict(data, v); err != nil {
		return werror.Wrap(err, "failed to unmarshal YAML-encoded value")
	}
	return nil
}

func (codecYAML) ContentType() string {
	return contentTypeYAML
}

func (codecYAML) Encode(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	if err := encoder.Encode(v); err != nil {
		return werror.Wrap(err, "failed to YAML-encode value")
	}
	return werror.Wrap(encoder.Close(), "failed to flush YAML encoder")
}

func (codecYAML) Marshal(v interface{}) ([]byte, error) {
	out, err := yaml.Marshal(v)
	return out, werror.Wrap(err, "failed to marshal YAML-encoded value")
}
