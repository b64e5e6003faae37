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

	werror "github.com/palantir/witchcraft-go-error"
)

const (
	contentTypeBinary = "application/octet-stream"
)

// Binary encoder copies raw bytes. Encode and Marshal accept an io.Reader, a
// []byte or a string.
var Binary Encoder = codecBinary{}

type codecBinary struct{}

func (codecBinary) ContentType() string {
	return contentTypeBinary
}

func (codecBinary) Encode(w io.Writer, v interface{}) error {
	var r io.Reader
	switch in := v.(type) {
	case []byte:
		r = bytes.NewReader(in)
	case string:
		r = bytes.NewReader([]byte(in))
	case io.Reader:
		if closer, ok := in.(io.ReadCloser); ok {
			defer func() { _ = closer.Close() }()
		}
		r = in
	default:
		return werror.Error("failed to encode binary data from type which does not implement io.Reader",
			werror.SafeParam("type", typeName(v)))
	}
	if _, err := io.Copy(w, r); err != nil {
		return werror.Convert(err)
	}
	return nil
}

func (c codecBinary) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
