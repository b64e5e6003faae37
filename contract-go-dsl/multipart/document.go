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
	"context"
	"io"
	"sort"

	"github.com/invopop/jsonschema"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"

	"github.com/palantir/contract-go-dsl/contract-go-dsl/codecs"
	"github.com/palantir/contract-go-dsl/contract-go-dsl/property"
)

// Document is the serialized map form of a part definition. It documents the
// shape read by Decode and is the source of Schema.
//
// A field value may be written as {"$client": a, "$server": b} to give each side
// its own value, or as {"$matches": pattern, "$sample": value} for a Matching.
// Markers are read by property.FromDocument and are recognized at any depth.
type Document struct {
	Filename                interface{} `json:"filename,omitempty" yaml:"filename,omitempty" jsonschema_description:"Name of the file sent in the part."`
	Body                    interface{} `json:"body,omitempty" yaml:"body,omitempty" jsonschema_description:"Content of the part."`
	ContentType             interface{} `json:"contentType,omitempty" yaml:"contentType,omitempty" jsonschema_description:"Media type of the part content."`
	ContentTransferEncoding interface{} `json:"contentTransferEncoding,omitempty" yaml:"contentTransferEncoding,omitempty" jsonschema_description:"Content-Transfer-Encoding of the part."`
}

// Schema returns the JSON schema of Document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	return r.Reflect(&Document{})
}

// Decode reads a part definition from r using decoder and builds it with b.
// Unrecognized top-level keys are ignored and reported at debug level.
func Decode(ctx context.Context, decoder codecs.Decoder, r io.Reader, b Builder) (Part, error) {
	var raw map[string]interface{}
	if err := decoder.Decode(r, &raw); err != nil {
		return Part{}, werror.WrapWithContextParams(ctx, err, "failed to decode multipart part definition",
			werror.SafeParam("accept", decoder.Accept()))
	}
	values := make(map[string]interface{}, len(raw))
	var ignored []string
	for key, value := range raw {
		switch key {
		case FilenameKey, BodyKey, ContentTypeKey, ContentTransferEncodingKey:
			v := property.FromDocument(value)
			if m, ok := v.(property.Matching); ok {
				if err := m.Validate(); err != nil {
					svc1log.FromContext(ctx).Debug("Invalid matching value in multipart part definition.",
						svc1log.SafeParam("key", key),
						svc1log.Stacktrace(err))
				}
			}
			values[key] = v
		default:
			ignored = append(ignored, key)
		}
	}
	if len(ignored) > 0 {
		sort.Strings(ignored)
		svc1log.FromContext(ctx).Debug("Ignoring unrecognized keys in multipart part definition.",
			svc1log.UnsafeParam("keys", ignored))
	}
	part := b.FromMap(values)
	svc1log.FromContext(ctx).Debug("Decoded multipart part definition.",
		svc1log.SafeParams(part.SafeParams()),
		svc1log.UnsafeParams(part.UnsafeParams()))
	return part, nil
}
