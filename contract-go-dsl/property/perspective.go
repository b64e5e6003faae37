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
	"strings"

	werror "github.com/palantir/witchcraft-go-error"
)

// Perspective names the side a contract is read from.
type Perspective string

const (
	// Client is the consumer side: stubs and mock servers generated for API callers.
	Client Perspective = "client"
	// Server is the producer side: tests generated against the API implementation.
	Server Perspective = "server"

	Consumer = Client
	Producer = Server
)

// ParsePerspective parses the names client, consumer, server and producer, ignoring case.
func ParsePerspective(s string) (Perspective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client", "consumer":
		return Client, nil
	case "server", "producer":
		return Server, nil
	default:
		return "", werror.Error("unknown perspective", werror.SafeParam("perspective", s))
	}
}

func (p Perspective) String() string {
	return string(p)
}

func (p Perspective) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p *Perspective) UnmarshalText(data []byte) error {
	parsed, err := ParsePerspective(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
