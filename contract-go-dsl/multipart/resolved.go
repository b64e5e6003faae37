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

package multipart

import (
	"bytes"
	"fmt"
	"io"

	werror "github.com/palantir/witchcraft-go-error"

	"github.com/palantir/contract-go-dsl/contract-go-dsl/codecs"
	"github.com/palantir/contract-go-dsl/contract-go-dsl/property"
)

// Resolved holds the values of a Part as seen from one perspective.
// A nil field is absent for that perspective.
type Resolved struct {
	Perspective             property.Perspective
	Filename                interface{}
	Body                    interface{}
	ContentType             interface{}
	ContentTransferEncoding interface{}
}

// Resolve returns the values of every field for the given perspective.
func (p Part) Resolve(perspective property.Perspective) Resolved {
	return Resolved{
		Perspective:             perspective,
		Filename:                p.filename.Resolve(perspective),
		Body:                    p.body.Resolve(perspective),
		ContentType:             p.contentType.Resolve(perspective),
		ContentTransferEncoding: p.contentTransferEncoding.Resolve(perspective),
	}
}

// EncodeBody renders the resolved body as bytes.
//
// Text, byte slices and patterns are returned as-is. Readers are rejected
// because a Part resolves the same body for both perspectives. Other values are encoded with the codec registered for the resolved content
// type; when the content type is absent or is itself a pattern, JSON is used.
// An absent body encodes to nil.
func (r Resolved) EncodeBody() ([]byte, error) {
	switch body := r.Body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(body), nil
	case property.Regex:
		return []byte(body), nil
	case []byte:
		return bytes.Clone(body), nil
	case io.Reader:
		return nil, werror.Error("reader bodies cannot be encoded; supply []byte or string",
			werror.SafeParam("bodyType", fmt.Sprintf("%T", body)),
			werror.SafeParam("perspective", r.Perspective.String()))
	}
	codec, err := r.bodyCodec()
	if err != nil {
		return nil, err
	}
	out, err := codec.Marshal(r.Body)
	if err != nil {
		return nil, werror.Wrap(err, "failed to encode multipart body",
			werror.SafeParam("contentType", codec.ContentType()),
			werror.SafeParam("perspective", r.Perspective.String()))
	}
	return out, nil
}

func (r Resolved) bodyCodec() (codecs.Encoder, error) {
	contentType, ok := r.ContentType.(string)
	if !ok || contentType == "" {
		return codecs.JSON, nil
	}
	codec, ok := codecs.ForContentType(contentType)
	if !ok {
		return nil, werror.Error("no codec registered for content type",
			werror.SafeParam("contentType", contentType),
			werror.SafeParam("perspective", r.Perspective.String()))
	}
	return codec, nil
}
