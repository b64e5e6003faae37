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

// Package multipart describes one part of a multipart request body in a contract.
//
// Every field of a Part is a property.Property, so each can read differently
// for the client and the server. Parts are built from a map of named values or
// from positional values; every shape funnels into the same four-value
// constructor and any omitted field is absent on both sides.
package multipart
