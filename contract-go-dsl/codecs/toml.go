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
	"bytes"
	"io"

	"github.com/BurntSushi/toml"
	werror "github.com/palantir/witchcraft-go-error"
)

const (
	contentTypeTOML = "application/toml"
)

// TOML codec encodes and decodes TOML using github.com/BurntSushi/toml.
// Only tables (structs and maps) may be encoded at the top level.
var TOML Codec = codecTOML{}

type codecTOML struct{}

func (codecTOML) Accept() string {
	return contentTypeTOML
}

func (codecTOML) Decode(r io.Reader, v interface{}) error {
	if _, err := toml.NewDecoder(r).Decode(v); err != nil {
		return werror.Wrap(err, "failed to decode TOML-encoded value")
	}
	return nil
}

func (c codecTOML) Unmarshal(data []byte, v interface{}) error {
	return c.Decode(bytes.NewReader(data), v)
}

func (codecTOML) ContentType() string {
	return contentTypeTOML
}

func (codecTOML) Encode(w io.Writer, v interface{}) error {
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return werror.Wrap(err, "failed to TOML-encode value", werror.SafeParam("type", typeName(v)))
	}
	return nil
}

func (c codecTOML) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
