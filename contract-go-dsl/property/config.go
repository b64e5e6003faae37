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
	werror "github.com/palantir/witchcraft-go-error"
)

// PolicyConfig selects the extraction policy used when building contract values.
type PolicyConfig struct {
	// Matcher is the perspective on which Matching values resolve to their pattern
	// (client, consumer, server or producer). If unset, DefaultPolicy is used and
	// Matching values are passed through to both sides.
	Matcher string `json:"matcher,omitempty" yaml:"matcher,omitempty"`
}

// Policy returns the Policy described by the configuration.
func (c PolicyConfig) Policy() (Policy, error) {
	if c.Matcher == "" {
		return DefaultPolicy, nil
	}
	matcher, err := ParsePerspective(c.Matcher)
	if err != nil {
		return Policy{}, werror.Wrap(err, "invalid policy configuration", werror.SafeParam("matcher", c.Matcher))
	}
	return MatchingPolicy(matcher), nil
}
