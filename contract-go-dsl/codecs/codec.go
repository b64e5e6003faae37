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
)

// Decoder is a content-type specific decoder.
type Decoder interface {
	// Accept returns the media type this decoder reads, suitable for an Accept header.
	Accept() string
	// Decode reads the content of r into v.
	Decode(r io.Reader, v interface{}) error
	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v interface{}) error
}

// Encoder is a content-type specific encoder.
type Encoder interface {
	// ContentType returns the media type this encoder writes.
	ContentType() string
	// Encode writes v to w.
	Encode(w io.Writer, v interface{}) error
	// Marshal returns the encoded form of v.
	Marshal(v interface{}) ([]byte, error)
}

// Codec is a Decoder and an Encoder for the same content type.
type Codec interface {
	Decoder
	Encoder
}
