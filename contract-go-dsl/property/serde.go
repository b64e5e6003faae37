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

package property

import (
	"encoding/json"

	"gopkg.in/yaml.v2"

	"github.com/palantir/contract-go-dsl/contract-go-dsl/codecs"
)

var (
	_ json.Marshaler   = Property{}
	_ json.Unmarshaler = &Property{}
	_ yaml.Marshaler   = Property{}
	_ yaml.Unmarshaler = &Property{}
)

// serializedProperty is the wire form of a Property. Absent sides are omitted
// and each side is written in document form.
type serializedProperty struct {
	ClientValue interface{} `json:"clientValue,omitempty" yaml:"clientValue,omitempty"`
	ServerValue interface{} `json:"serverValue,omitempty" yaml:"serverValue,omitempty"`
}

func (p Property) serialized() serializedProperty {
	return serializedProperty{ClientValue: ToDocument(p.clientValue), ServerValue: ToDocument(p.serverValue)}
}

func (sp serializedProperty) property() Property {
	return Of(FromDocument(sp.ClientValue), FromDocument(sp.ServerValue))
}

func (p Property) MarshalJSON() ([]byte, error) {
	return codecs.JSON.Marshal(p.serialized())
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var sp serializedProperty
	if err := codecs.JSON.Unmarshal(data, &sp); err != nil {
		return err
	}
	*p = sp.property()
	return nil
}

func (p Property) MarshalYAML() (interface{}, error) {
	return p.serialized(), nil
}

func (p *Property) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var sp serializedProperty
	if err := unmarshal(&sp); err != nil {
		return err
	}
	*p = sp.property()
	return nil
}
