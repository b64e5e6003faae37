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

// Extractor derives the value one perspective sees from a raw authored value.
// Extractors must be pure: the result depends on raw alone.
type Extractor func(raw interface{}) interface{}

// Policy pairs the client and server extractors applied to every raw value.
// A nil Extractor returns raw unchanged.
type Policy struct {
	Client Extractor
	Server Extractor
}

// DefaultPolicy unwraps values built with Of and passes everything else through.
var DefaultPolicy = Policy{
	Client: ClientValue,
	Server: ServerValue,
}

// Apply runs both extractors on raw and returns the resulting Property.
func (p Policy) Apply(raw interface{}) Property {
	return Property{
		clientValue: apply(p.Client, raw),
		serverValue: apply(p.Server, raw),
	}
}

func apply(extractor Extractor, raw interface{}) interface{} {
	if extractor == nil {
		return raw
	}
	return extractor(raw)
}

// ClientValue returns the client side of a Property and any other raw value unchanged.
func ClientValue(raw interface{}) interface{} {
	switch v := raw.(type) {
	case Property:
		return v.clientValue
	case *Property:
		if v == nil {
			return nil
		}
		return v.clientValue
	default:
		return raw
	}
}

// ServerValue returns the server side of a Property and any other raw value unchanged.
func ServerValue(raw interface{}) interface{} {
	switch v := raw.(type) {
	case Property:
		return v.serverValue
	case *Property:
		if v == nil {
			return nil
		}
		return v.serverValue
	default:
		return raw
	}
}
