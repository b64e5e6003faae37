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
	"regexp"

	"github.com/palantir/pkg/uuid"
	werror "github.com/palantir/witchcraft-go-error"
)

// UUIDPattern matches the canonical textual form of a UUID.
const UUIDPattern = `[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}`

// Regex is the resolved form of a Matching value on the side that matches
// rather than sends: a regular expression the actual value must satisfy.
type Regex string

func (r Regex) String() string {
	return string(r)
}

// Matching is a raw value that one side matches against Pattern while the
// other side uses the concrete Sample. DefaultPolicy leaves it untouched; use
// MatchingPolicy to split it.
type Matching struct {
	Pattern string      `json:"pattern" yaml:"pattern"`
	Sample  interface{} `json:"sample,omitempty" yaml:"sample,omitempty"`
}

// Matches returns a Matching for pattern with the given sample value.
func Matches(pattern string, sample interface{}) Matching {
	return Matching{Pattern: pattern, Sample: sample}
}

// AnyUUID matches any UUID and pins a freshly generated one as its sample.
func AnyUUID() Matching {
	return AnyUUIDOf(uuid.NewUUID())
}

// AnyUUIDOf matches any UUID and uses id as its sample.
func AnyUUIDOf(id uuid.UUID) Matching {
	return Matches(UUIDPattern, id.String())
}

// Validate checks that Pattern compiles and, for string samples, that the
// sample matches the whole pattern.
func (m Matching) Validate() error {
	re, err := regexp.Compile(`^(?:` + m.Pattern + `)$`)
	if err != nil {
		return werror.Wrap(err, "invalid pattern", werror.UnsafeParam("pattern", m.Pattern))
	}
	if sample, ok := m.Sample.(string); ok && !re.MatchString(sample) {
		return werror.Error("sample does not match pattern",
			werror.UnsafeParam("pattern", m.Pattern),
			werror.UnsafeParam("sample", sample))
	}
	return nil
}

func (m Matching) String() string {
	return fmt.Sprintf("Matching{pattern=%s, sample=%v}", m.Pattern, m.Sample)
}

// MatchingPolicy resolves Matching values to their Regex on the matcher side
// and to their Sample on the opposite side. All other values follow DefaultPolicy.
func MatchingPolicy(matcher Perspective) Policy {
	return Policy{
		Client: matchingExtractor(matcher == Client, ClientValue),
		Server: matchingExtractor(matcher == Server, ServerValue),
	}
}

func matchingExtractor(matches bool, fallback Extractor) Extractor {
	return func(raw interface{}) interface{} {
		m, ok := raw.(Matching)
		if !ok {
			return fallback(raw)
		}
		if matches {
			return Regex(m.Pattern)
		}
		return m.Sample
	}
}
