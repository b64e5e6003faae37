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

	"github.com/palantir/contract-go-dsl/contract-go-dsl/multipart"
	"github.com/palantir/contract-go-dsl/contract-go-dsl/property"
)

func assertAbsent(t *testing.T, p property.Property, field string) {
	t.Helper()
	assert.True(t, p.IsAbsent(property.Client), "%s should be absent for the client", field)
	assert.True(t, p.IsAbsent(property.Server), "%s should be absent for the server", field)
}

func assertResolvesTo(t *testing.T, p property.Property, expected interface{}, field string) {
	t.Helper()
	assert.Equal(t, expected, p.Resolve(property.Client), "%s client value", field)
	assert.Equal(t, expected, p.Resolve(property.Server), "%s server value", field)
}

func TestFromMap_BodyOnly(t *testing.T) {
	part := multipart.FromMap(map[string]interface{}{"body": "hello"})

	assertAbsent(t, part.Filename(), "filename")
	assertResolvesTo(t, part.Body(), "hello", "body")
	assertAbsent(t, part.ContentType(), "contentType")
	assertAbsent(t, part.ContentTransferEncoding(), "contentTransferEncoding")
}

func TestNewFile(t *testing.T) {
	part := multipart.NewFile("a.txt", "data", "text/plain")

	assertResolvesTo(t, part.Filename(), "a.txt", "filename")
	assertResolvesTo(t, part.Body(), "data", "body")
	assertResolvesTo(t, part.ContentType(), "text/plain", "contentType")
	assertAbsent(t, part.ContentTransferEncoding(), "contentTransferEncoding")
}

func TestFromMap_EqualsPositional(t *testing.T) {
	fromMap := multipart.FromMap(map[string]interface{}{
		"filename":                "a.txt",
		"body":                    "data",
		"contentType":             "text/plain",
		"contentTransferEncoding": "binary",
	})
	positional := multipart.New("a.txt", "data", "text/plain", "binary")

	assert.True(t, fromMap.Equal(positional))
	assert.True(t, positional.Equal(fromMap))
	assert.Equal(t, fromMap.Hash(), positional.Hash())
}

func TestNoInput(t *testing.T) {
	for _, test := range []struct {
		Name string
		Part multipart.Part
	}{
		{Name: "nil map", Part: multipart.FromMap(nil)},
		{Name: "empty map", Part: multipart.FromMap(map[string]interface{}{})},
		{Name: "nil body", Part: multipart.NewBody(nil)},
		{Name: "all nil", Part: multipart.New(nil, nil, nil, nil)},
		{Name: "zero value", Part: multipart.Part{}},
	} {
		t.Run(test.Name, func(t *testing.T) {
			assertAbsent(t, test.Part.Filename(), "filename")
			assertAbsent(t, test.Part.Body(), "body")
			assertAbsent(t, test.Part.ContentType(), "contentType")
			assertAbsent(t, test.Part.ContentTransferEncoding(), "contentTransferEncoding")
			assert.True(t, test.Part.Equal(multipart.Part{}))
			assert.Equal(t, multipart.Part{}.Hash(), test.Part.Hash())
		})
	}
}

func TestConstructionShapes_OmittedFieldsAreAbsent(t *testing.T) {
	for _, test := range []struct {
		Name                  string
		Part                  multipart.Part
		Filename, ContentType interface{}
		Encoding              interface{}
	}{
		{Name: "map", Part: multipart.FromMap(map[string]interface{}{"body": "b", "unknown": "ignored"})},
		{Name: "body", Part: multipart.NewBody("b")},
		{Name: "body and content type", Part: multipart.NewTyped("b", "text/plain"), ContentType: "text/plain"},
		{Name: "file", Part: multipart.NewFile("f", "b", "text/plain"), Filename: "f", ContentType: "text/plain"},
		{Name: "all", Part: multipart.New("f", "b", "text/plain", "8bit"), Filename: "f", ContentType: "text/plain", Encoding: "8bit"},
	} {
		t.Run(test.Name, func(t *testing.T) {
			assertResolvesTo(t, test.Part.Filename(), test.Filename, "filename")
			assertResolvesTo(t, test.Part.Body(), "b", "body")
			assertResolvesTo(t, test.Part.ContentType(), test.ContentType, "contentType")
			assertResolvesTo(t, test.Part.ContentTransferEncoding(), test.Encoding, "contentTransferEncoding")
		})
	}
}

func TestShapesNormalizeToSameValue(t *testing.T) {
	for _, test := range []struct {
		Name string
		A, B multipart.Part
	}{
		{Name: "body", A: multipart.NewBody("b"), B: multipart.New(nil, "b", nil, nil)},
		{Name: "typed", A: multipart.NewTyped("b", "t"), B: multipart.FromMap(map[string]interface{}{"body": "b", "contentType": "t"})},
		{Name: "file", A: multipart.NewFile("f", "b", "t"), B: multipart.New("f", "b", "t", nil)},
	} {
		t.Run(test.Name, func(t *testing.T) {
			assert.True(t, test.A.Equal(test.B))
			assert.Equal(t, test.A.Hash(), test.B.Hash())
		})
	}
}

func TestEqual_Properties(t *testing.T) {
	a := multipart.NewFile("a.txt", map[string]interface{}{"k": []interface{}{1, 2}}, "application/json")
	b := multipart.NewFile("a.txt", map[string]interface{}{"k": []interface{}{1, 2}}, "application/json")
	c := multipart.FromMap(map[string]interface{}{
		"filename":    "a.txt",
		"body":        map[string]interface{}{"k": []interface{}{1, 2}},
		"contentType": "application/json",
	})
	different := multipart.NewFile("b.txt", map[string]interface{}{"k": []interface{}{1, 2}}, "application/json")

	assert.True(t, a.Equal(a), "reflexive")
	assert.True(t, a.Equal(b) && b.Equal(a), "symmetric")
	assert.True(t, a.Equal(b) && b.Equal(c) && a.Equal(c), "transitive")
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, b.Hash(), c.Hash())
	assert.False(t, a.Equal(different))
	assert.False(t, multipart.NewBody("x").Equal(multipart.NewTyped("x", "text/plain")))
}

func TestTwoSidedValues(t *testing.T) {
	part := multipart.NewTyped(property.Of("stub body", "test body"), "text/plain")
	assert.Equal(t, "stub body", part.Body().Resolve(property.Client))
	assert.Equal(t, "test body", part.Body().Resolve(property.Server))
	assert.False(t, part.Equal(multipart.NewTyped("stub body", "text/plain")))
}

func TestBuilder_UsesPolicy(t *testing.T) {
	b := multipart.NewBuilder(property.MatchingPolicy(property.Client))
	part := b.NewFile(property.Matches(`.+\.txt`, "a.txt"), "data", "text/plain")

	assert.Equal(t, property.Regex(`.+\.txt`), part.Filename().Resolve(property.Client))
	assert.Equal(t, "a.txt", part.Filename().Resolve(property.Server))
	assertResolvesTo(t, part.Body(), "data", "body")

	fromMap := b.FromMap(map[string]interface{}{
		"filename":    property.Matches(`.+\.txt`, "a.txt"),
		"body":        "data",
		"contentType": "text/plain",
	})
	assert.True(t, part.Equal(fromMap))
}

func TestString(t *testing.T) {
	part := multipart.NewFile("a.txt", "data", "text/plain")
	assert.Equal(t,
		"Part{filename=Property{clientValue=a.txt, serverValue=a.txt}, "+
			"body=Property{clientValue=data, serverValue=data}, "+
			"contentType=Property{clientValue=text/plain, serverValue=text/plain}, "+
			"contentTransferEncoding=Property{clientValue=<nil>, serverValue=<nil>}}",
		part.String())
	require.Equal(t, part.String(), multipart.NewFile("a.txt", "data", "text/plain").String())
}

func TestParams(t *testing.T) {
	part := multipart.NewTyped("data", "text/plain")
	assert.Equal(t, map[string]interface{}{"partFields": []string{"body", "contentType"}}, part.SafeParams())
	assert.Equal(t, map[string]interface{}{
		"filename":                "Property{clientValue=<nil>, serverValue=<nil>}",
		"body":                    "Property{clientValue=data, serverValue=data}",
		"contentType":             "Property{clientValue=text/plain, serverValue=text/plain}",
		"contentTransferEncoding": "Property{clientValue=<nil>, serverValue=<nil>}",
	}, part.UnsafeParams())
}
