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
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
)

// Markers used by ToDocument and FromDocument for values that plain JSON or
// YAML cannot carry.
const (
	ClientMarker  = "$client"
	ServerMarker  = "$server"
	MatchesMarker = "$matches"
	SampleMarker  = "$sample"
	RegexMarker   = "$regex"
	BytesMarker   = "$bytes"
)

// ToDocument converts a raw value into a form that the JSON and YAML codecs
// can write and FromDocument can read back:
//
//	Property -> {"$client": c, "$server": s}
//	Matching -> {"$matches": pattern, "$sample": sample}
//	Regex    -> {"$regex": pattern}
//	[]byte   -> {"$bytes": base64}
//
// Maps and slices are converted element-wise. Strings, bools, ints, float64
// and nil are returned as is. A float64 with no fractional part reads back as
// an int, and other numeric types read back as int or float64.
func ToDocument(v interface{}) interface{} {
	switch t := v.(type) {
	case Property:
		return map[string]interface{}{
			ClientMarker: ToDocument(t.clientValue),
			ServerMarker: ToDocument(t.serverValue),
		}
	case *Property:
		if t == nil {
			return nil
		}
		return ToDocument(*t)
	case Matching:
		m := map[string]interface{}{MatchesMarker: t.Pattern}
		if t.Sample != nil {
			m[SampleMarker] = ToDocument(t.Sample)
		}
		return m
	case Regex:
		return map[string]interface{}{RegexMarker: string(t)}
	case []byte:
		if t == nil {
			return nil
		}
		return map[string]interface{}{BytesMarker: base64.StdEncoding.EncodeToString(t)}
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = ToDocument(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = ToDocument(val)
		}
		return out
	default:
		return v
	}
}

// FromDocument reverses ToDocument on a value produced by any of the document
// codecs. Markers are recognized at any depth, YAML maps are converted to
// map[string]interface{} and numbers are converted to int where they fit and
// to float64 otherwise.
func FromDocument(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return FromDocument(out)
	case map[string]interface{}:
		if marked, ok := fromMarkers(t); ok {
			return marked
		}
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = FromDocument(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = FromDocument(val)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t
	case int64:
		if t >= math.MinInt && t <= math.MaxInt {
			return int(t)
		}
		return t
	default:
		return v
	}
}

func fromMarkers(m map[string]interface{}) (interface{}, bool) {
	switch {
	case len(m) == 2 && hasKeys(m, ClientMarker, ServerMarker):
		return Of(FromDocument(m[ClientMarker]), FromDocument(m[ServerMarker])), true
	case len(m) == 1 && hasKeys(m, MatchesMarker), len(m) == 2 && hasKeys(m, MatchesMarker, SampleMarker):
		pattern, ok := m[MatchesMarker].(string)
		if !ok {
			return nil, false
		}
		return Matches(pattern, FromDocument(m[SampleMarker])), true
	case len(m) == 1 && hasKeys(m, RegexMarker):
		pattern, ok := m[RegexMarker].(string)
		if !ok {
			return nil, false
		}
		return Regex(pattern), true
	case len(m) == 1 && hasKeys(m, BytesMarker):
		encoded, ok := m[BytesMarker].(string)
		if !ok {
			return nil, false
		}
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, false
		}
		return decoded, true
	default:
		return nil, false
	}
}

func hasKeys(m map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
