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
	wparams "github.com/palantir/witchcraft-go-params"
)

var _ wparams.ParamStorer = Part{}

// SafeParams lists which fields of the part carry a value on at least one side.
func (p Part) SafeParams() map[string]interface{} {
	var present []string
	for _, f := range p.fields() {
		if !f.property.Absent() {
			present = append(present, f.name)
		}
	}
	return map[string]interface{}{
		"partFields": present,
	}
}

// UnsafeParams holds the diagnostic form of every field. Contract values are
// authored content and are never considered safe to log.
func (p Part) UnsafeParams() map[string]interface{} {
	params := make(map[string]interface{}, 4)
	for _, f := range p.fields() {
		params[f.name] = f.property.String()
	}
	return params
}
