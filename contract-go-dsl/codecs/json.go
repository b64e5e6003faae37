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

	"github.com/palantir/pkg/safejson"
	werror "github.com/palantir/witchcraft-go-error"
)

const (
	contentTypeJSON = "application/json"
)

// JSON codec encodes and decodes JSON using github.com/palantir/pkg/safejson.
// Decoding uses json.Number for numbers so large integers survive a round trip,
// and encoding leaves HTML characters unescaped.
var JSON Codec = codecJSON{}

type codecJSON struct{}

func (codecJSON) Accept() string {
	return contentTypeJSON
}

func (codecJSON) Decode(r io.Reader, v interface{}) error {
	if err := safejson.Decoder(r).Decode(v); err != nil {
		return werror.Wrap(err, "json.Decode")
	}
	return nil
}

func (codecJSON) Unmarshal(data []byte, v interface{}) error {
	if err := safejson.Unmarshal(data, v); err != nil {
		return werror.Wrap(err, "json.Unmarshal")
	}
	return nil
}

func (codecJSON) ContentType() string {
	return contentTypeJSON
}

func (codecJSON) Encode(w io.Writer, v interface{}) error {
	err := safejson.Encoder(w).Encode(v)
	return werror.Wrap(err, "json.Encode")
}

func (codecJSON) Marshal(v interface{}) ([]byte, error) {
	out, err := safejson.Marshal(v)
	return out, werror.Wrap(err, "json.Marshal")
}
