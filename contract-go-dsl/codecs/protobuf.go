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

	protoio "github.com/gogo/protobuf/io"
	"github.com/gogo/protobuf/proto"
	werror "github.com/palantir/witchcraft-go-error"
)

const (
	contentTypeProtobuf = "application/x-protobuf"
)

// Protobuf encoder writes protobuf messages using github.com/gogo/protobuf/proto.
// Values must implement proto.Message.
var Protobuf Encoder = codecProtobuf{}

type codecProtobuf struct{}

func (codecProtobuf) ContentType() string {
	return contentTypeProtobuf
}

func (codecProtobuf) Encode(w io.Writer, v interface{}) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return werror.Error("failed to encode protobuf data from type which does not implement proto.Message",
			werror.SafeParam("type", typeName(v)))
	}
	return werror.Convert(protoio.NewFullWriter(w).WriteMsg(msg))
}

func (codecProtobuf) Marshal(v interface{}) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, werror.Error("failed to encode protobuf data from type which does not implement proto.Message",
			werror.SafeParam("type", typeName(v)))
	}
	var buf proto.Buffer
	if err := buf.Marshal(msg); err != nil {
		return nil, werror.Convert(err)
	}
	return buf.Bytes(), nil
}
