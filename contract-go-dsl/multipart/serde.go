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
	"encoding/json"

	"gopkg.in/yaml.v2"

	"github.com/palantir/contract-go-dsl/contract-go-dsl/codecs"
	"github.com/palantir/contract-go-dsl/contract-go-dsl/property"
)

var (
	_ json.Marshaler   = Part{}
	_ json.Unmarshaler = &Part{}
	_ yaml.Marshaler   = Part{}
	_ yaml.Unmarshaler = &Part{}
)

// serializedPart always carries all four fields; an absent field serializes as
// an empty Property.
type serializedPart struct {
	Filename                property.Property `json:"filename" yaml:"filename"`
	Body                    property.Property `json:"body" yaml:"body"`
	ContentType             property.Property `json:"contentType" yaml:"contentType"`
	ContentTransferEncoding property.Property `json:"contentTransferEncoding" yaml:"contentTransferEncoding"`
}

func (p Part) serialized() serializedPart {
	return serializedPart{
		Filename:                p.filename,
		Body:                    p.body,
		ContentType:             p.contentType,
		ContentTransferEncoding: p.contentTransferEncoding,
	}
}

func (sp serializedPart) part() Part {
	return Part{
		filename:                sp.Filename,
		body:                    sp.Body,
		contentType:             sp.ContentType,
		contentTransferEncoding: sp.ContentTransferEncoding,
	}
}

func (p Part) MarshalJSON() ([]byte, error) {
	return codecs.JSON.Marshal(p.serialized())
}

func (p *Part) UnmarshalJSON(data []byte) error {
	var sp serializedPart
	if err := codecs.JSON.Unmarshal(data, &sp); err != nil {
		return err
	}
	*p = sp.part()
	return nil
}

func (p Part) MarshalYAML() (interface{}, error) {
	return p.serialized(), nil
}

func (p *Part) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var sp serializedPart
	if err := unmarshal(&sp); err != nil {
		return err
	}
	*p = sp.part()
	return nil
}
