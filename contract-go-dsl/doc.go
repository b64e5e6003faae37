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

// Package dsl and its subpackages implement the value model of a contract
// definition DSL.
//
// A contract describes an HTTP interaction once and is consumed twice: by the
// client side, which generates stubs for API callers, and by the server side,
// which generates tests for the API implementation. Package property holds the
// dual-view value type shared by every contract field, and package multipart
// describes the parts of a multipart request body in terms of it.
//
// The contract file format, stub rendering and loading of contract definitions
// are left to the consumers of these types.
package dsl
