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

	"github.com/golang/snappy"
	werror "github.com/palantir/witchcraft-go-error"
)

const (
	contentTypeSnappyFramed = "application/x-snappy-framed"
)

var _ Encoder = codecSnappyFramed{}

// SnappyFramed wraps an existing Encoder and compresses its output using the
// snappy framing format from github.com/golang/snappy.
//
// Ref: https://github.com/google/snappy/blob/main/framing_format.txt
func SnappyFramed(encoder Encoder) Encoder {
	return codecSnappyFramed{contentEncoder: encoder}
}

type codecSnappyFramed struct {
	contentEncoder Encoder
}

func (codecSnappyFramed) ContentType() string {
	return contentTypeSnappyFramed
}

func (c codecSnappyFramed) Encode(w io.Writer, v interface{}) (err error) {
	snappyWriter := snappy.NewBufferedWriter(w)
	defer func() {
		if closeErr := snappyWriter.Close(); err == nil && closeErr != nil {
			err = werror.Convert(closeErr)
		}
	}()
	return c.contentEncoder.Encode(snappyWriter, v)
}

func (c codecSnappyFramed) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
