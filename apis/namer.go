/*
   Copyright 2026 The MOPA Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Namer lets a concrete type choose its own diagnostic name.
//
// # Overview
//
// Namer is a zero-reflection fast path for rendering type names in logs and
// error messages. When a value implements Namer, naming logic MUST prefer
// this interface over any reflect-derived name for that value.
//
// Namer affects presentation only. It has no influence whatsoever on
// identity tokens or downcast matching: two distinct types reporting the
// same TypeName still have distinct tokens, and a type reporting a fancy
// name still downcasts only to itself.
//
// # Contract
//
//   - TypeName MUST return a non-empty, deterministic string.
//   - TypeName MUST NOT depend on mutable instance state.
//   - TypeName MUST be safe for concurrent calls from multiple goroutines.
//   - TypeName SHOULD be constant-time and allocation-free; returning a
//     string literal is RECOMMENDED.
//   - TypeName MUST NOT perform blocking operations or I/O.
type Namer interface {
	// TypeName returns the canonical diagnostic name for this type.
	TypeName() string
}
