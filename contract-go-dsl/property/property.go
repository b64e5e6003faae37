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
	"fmt"

	"github.com/palantir/contract-go-dsl/internal/canonical"
)

// Property is a single contract value as seen from the client and the server.
// A nil side means the value is absent for that perspective.
//
// Property is immutable. The zero value is absent on both sides.
type Property struct {
	clientValue interface{}
	serverValue interface{}
}

// New resolves raw through DefaultPolicy.
func New(raw interface{}) Property {
	return DefaultPolicy.Apply(raw)
}

// Of returns a Property holding explicit values for each side. Used as the raw
// value of another Property, it is unwrapped by the default extractors.
func Of(client, server interface{}) Property {
	return Property{clientValue: client, serverValue: server}
}

func (p Property) ClientValue() interface{} {
	return p.clientValue
}

func (p Property) ServerValue() interface{} {
	return p.serverValue
}

// Resolve returns the value for the given perspective, or nil for an unknown perspective.
func (p Property) Resolve(perspective Perspective) interface{} {
	switch perspective {
	case Client:
		return p.clientValue
	case Server:
		return p.serverValue
	default:
		return nil
	}
}

// IsAbsent reports whether the property has no value for the given perspective.
func (p Property) IsAbsent(perspective Perspective) bool {
	return p.Resolve(perspective) == nil
}

// Absent reports whether the property has no value on either side.
func (p Property) Absent() bool {
	return p.clientValue == nil && p.serverValue == nil
}

// Equal reports whether both sides of p and other hold deeply equal values.
func (p Property) Equal(other Property) bool {
	return canonical.Equal(p.clientValue, other.clientValue) && canonical.Equal(p.serverValue, other.serverValue)
}

// Hash returns a hash consistent with Equal.
func (p Property) Hash() uint64 {
	return canonical.Combine(canonical.Hash(p.clientValue), canonical.Hash(p.serverValue))
}

func (p Property) String() string {
	return fmt.Sprintf("Property{clientValue=%v, serverValue=%v}", p.clientValue, p.serverValue)
}
