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
	"mime"
	"strings"
)

// contentTypes maps a bare media type to the encoder that renders it.
var contentTypes = map[string]Encoder{
	contentTypeJSON:         JSON,
	contentTypeYAML:         YAML,
	"application/yaml":      YAML,
	"text/yaml":             YAML,
	contentTypeTOML:         TOML,
	contentTypePlain:        Plain,
	contentTypeBinary:       Binary,
	contentTypeProtobuf:     Protobuf,
	contentTypeSnappyFramed: SnappyFramed(Binary),
}

// ForContentType returns the Encoder registered for the media type of contentType.
// Parameters such as charset are ignored and the comparison is case-insensitive.
// Structured suffixes are honored, so "application/problem+json" selects JSON.
// The second return value is false when no encoder matches.
func ForContentType(contentType string) (Encoder, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	if encoder, ok := contentTypes[mediaType]; ok {
		return encoder, true
	}
	if strings.HasPrefix(mediaType, "text/") {
		return Plain, true
	}
	switch {
	case strings.HasSuffix(mediaType, "+json"):
		return JSON, true
	case strings.HasSuffix(mediaType, "+yaml"):
		return YAML, true
	}
	return nil, false
}
