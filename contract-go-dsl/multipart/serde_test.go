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

package multipart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palantir/contract-go-dsl/contract-go-dsl/codecs"
	"github.com/palantir/contract-go-dsl/contract-go-dsl/multipart"
	"github.com/palantir/contract-go-dsl/contract-go-dsl/property"
)

func TestPart_JSON(t *testing.T) {
	part := multipart.NewTyped(property.Of("stub", "test"), "text/plain")
	out, err := codecs.JSON.Marshal(part)
	require.NoError(t, err)
	assert.JSONEq(t, `{
  "filename": {},
  "body": {"clientValue": "stub", "serverValue": "test"},
  "contentType": {"clientValue": "text/plain", "serverValue": "text/plain"},
  "contentTransferEncoding": {}
}`, string(out))

	var actual multipart.Part
	require.NoError(t, codecs.JSON.Unmarshal(out, &actual))
	assert.True(t, part.Equal(actual), "expected %v, got %v", part, actual)
}

func TestPart_YAML(t *testing.T) {
	part := multipart.NewFile("a.txt", "data", "text/plain")
	out, err := codecs.YAML.Marshal(part)
	require.NoError(t, err)

	var actual multipart.Part
	require.NoError(t, codecs.YAML.Unmarshal(out, &actual))
	assert.True(t, part.Equal(actual), "expected %v, got %v", part, actual)
}

func TestPart_RoundTrip(t *testing.T) {
	for _, test := range []struct {
		Name string
		Part multipart.Part
	}{
		{Name: "int body", Part: multipart.NewTyped(42, "application/json")},
		{Name: "float body", Part: multipart.NewBody(2.5)},
		{Name: "bytes body", Part: multipart.NewTyped([]byte{0xff, 0x00}, "application/octet-stream")},
		{Name: "matching filename", Part: multipart.NewFile(property.Matches(`.+\.txt`, "a.txt"), "data", "text/plain")},
		{
			Name: "matching policy",
			Part: multipart.NewBuilder(property.MatchingPolicy(property.Client)).NewFile(property.AnyUUID(), "data", "text/plain"),
		},
		{
			Name: "nested body",
			Part: multipart.NewBody(map[string]interface{}{
				"name":  "value",
				"count": 1,
				"inner": map[string]interface{}{"list": []interface{}{true, 0.25}},
			}),
		},
		{Name: "empty", Part: multipart.Part{}},
	} {
		for _, codec := range []codecs.Codec{codecs.JSON, codecs.YAML} {
			t.Run(test.Name+"/"+codec.ContentType(), func(t *testing.T) {
				out, err := codec.Marshal(test.Part)
				require.NoError(t, err)

				var actual multipart.Part
				require.NoError(t, codec.Unmarshal(out, &actual))
				assert.True(t, test.Part.Equal(actual), "expected %v, got %v from %s", test.Part, actual, out)
				assert.Equal(t, test.Part.Hash(), actual.Hash())
			})
		}
	}
}
