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

// Package property implements dual-view contract values.
//
// A contract is consumed from two perspectives: the client (consumer) side,
// which generates stubs for callers of an API, and the server (producer) side,
// which generates tests against its implementation. A single authored value may
// need to read differently on each side, for example a pattern that stubs match
// against while tests send a concrete sample. A Property holds the value each
// side sees; a Policy derives both from one raw authored value.
package property
