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
	"encoding"
	"fmt"
	"io"

	werror "github.com/palantir/witchcraft-go-error"
)

const (
	contentTypePlain = "text/plain"
)

// Plain encoder writes text. It accepts strings, []byte,
// encoding.TextMarshaler and fmt.Stringer values.
var Plain Encoder = codecPlain{}

type codecPlain struct{}

func (codecPlain) ContentType() string {
	return contentTypePlain
}

func (c codecPlain) Encode(w io.Writer, v interface{}) error {
	out, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return werror.Wrap(err, "write failed")
}

func (codecPlain) Marshal(v interface{}) ([]byte, error) {
	switch in := v.(type) {
	case string:
		return []byte(in), nil
	case *string:
		return []byte(*in), nil
	case []byte:
		return bytes.Clone(in), nil
	case *[]byte:
		return bytes.Clone(*in), nil
	case encoding.TextMarshaler:
		out, err := in.MarshalText()
		return out, werror.Wrap(err, "MarshalText")
	case fmt.Stringer:
		return []byte(in.String()), nil
	default:
		return nil, werror.Error("failed to encode text from unsupported type", werror.SafeParam("type", typeName(v)))
	}
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
