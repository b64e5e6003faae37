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
	"fmt"

	"github.com/palantir/contract-go-dsl/contract-go-dsl/property"
	"github.com/palantir/contract-go-dsl/internal/canonical"
)

// Keys recognized by FromMap.
const (
	FilenameKey                = "filename"
	BodyKey                    = "body"
	ContentTypeKey             = "contentType"
	ContentTransferEncodingKey = "contentTransferEncoding"
)

// Part is one part of a multipart request. It is immutable; the zero value has
// every field absent.
type Part struct {
	filename                property.Property
	body                    property.Property
	contentType             property.Property
	contentTransferEncoding property.Property
}

// Builder creates Parts, resolving every raw value through its policy.
type Builder struct {
	policy property.Policy
}

// NewBuilder returns a Builder that applies policy to every raw value.
func NewBuilder(policy property.Policy) Builder {
	return Builder{policy: policy}
}

var defaultBuilder = NewBuilder(property.DefaultPolicy)

// FromMap builds a Part from the values stored under FilenameKey, BodyKey,
// ContentTypeKey and ContentTransferEncodingKey. Other keys are ignored and
// a nil map yields a Part with every field absent.
func (b Builder) FromMap(properties map[string]interface{}) Part {
	return b.New(
		properties[FilenameKey],
		properties[BodyKey],
		properties[ContentTypeKey],
		properties[ContentTransferEncodingKey],
	)
}

// NewBody builds a Part with only a body.
func (b Builder) NewBody(body interface{}) Part {
	return b.NewTyped(body, nil)
}

// NewTyped builds a Part with a body and a content type.
func (b Builder) NewTyped(body, contentType interface{}) Part {
	return b.NewFile(nil, body, contentType)
}

// NewFile builds a Part with a filename, a body and a content type.
func (b Builder) NewFile(filename, body, contentType interface{}) Part {
	return b.New(filename, body, contentType, nil)
}

// New builds a Part from all four raw values. Every other constructor ends here.
func (b Builder) New(filename, body, contentType, contentTransferEncoding interface{}) Part {
	return Part{
		filename:                b.policy.Apply(filename),
		body:                    b.policy.Apply(body),
		contentType:             b.policy.Apply(contentType),
		contentTransferEncoding: b.policy.Apply(contentTransferEncoding),
	}
}

// FromMap builds a Part from a map using property.DefaultPolicy. See Builder.FromMap.
func FromMap(properties map[string]interface{}) Part {
	return defaultBuilder.FromMap(properties)
}

// NewBody builds a body-only Part using property.DefaultPolicy.
func NewBody(body interface{}) Part {
	return defaultBuilder.NewBody(body)
}

// NewTyped builds a Part with a body and content type using property.DefaultPolicy.
func NewTyped(body, contentType interface{}) Part {
	return defaultBuilder.NewTyped(body, contentType)
}

// NewFile builds a Part with a filename, body and content type using property.DefaultPolicy.
func NewFile(filename, body, contentType interface{}) Part {
	return defaultBuilder.NewFile(filename, body, contentType)
}

// New builds a Part from all four raw values using property.DefaultPolicy.
func New(filename, body, contentType, contentTransferEncoding interface{}) Part {
	return defaultBuilder.New(filename, body, contentType, contentTransferEncoding)
}

func (p Part) Filename() property.Property {
	return p.filename
}

func (p Part) Body() property.Property {
	return p.body
}

func (p Part) ContentType() property.Property {
	return p.contentType
}

func (p Part) ContentTransferEncoding() property.Property {
	return p.contentTransferEncoding
}

// Equal reports whether all four fields of p and other are equal.
func (p Part) Equal(other Part) bool {
	return p.filename.Equal(other.filename) &&
		p.body.Equal(other.body) &&
		p.contentType.Equal(other.contentType) &&
		p.contentTransferEncoding.Equal(other.contentTransferEncoding)
}

// Hash returns a hash consistent with Equal.
func (p Part) Hash() uint64 {
	return canonical.Combine(
		p.filename.Hash(),
		p.body.Hash(),
		p.contentType.Hash(),
		p.contentTransferEncoding.Hash(),
	)
}

func (p Part) String() string {
	return fmt.Sprintf("Part{filename=%v, body=%v, contentType=%v, contentTransferEncoding=%v}",
		p.filename, p.body, p.contentType, p.contentTransferEncoding)
}

// fields returns the fields of p keyed by their map key, in declaration order.
func (p Part) fields() []namedProperty {
	return []namedProperty{
		{name: FilenameKey, property: p.filename},
		{name: BodyKey, property: p.body},
		{name: ContentTypeKey, property: p.contentType},
		{name: ContentTransferEncodingKey, property: p.contentTransferEncoding},
	}
}

type namedProperty struct {
	name     string
	property property.Property
}
