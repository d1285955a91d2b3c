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

// Package mopa attaches runtime type identity to values held behind
// user-declared polymorphic interfaces, and recovers the original concrete
// type from such a handle safely.
//
// Go's built-in type assertion already downcasts interface values, but it
// copies value payloads, has no unchecked form, and says nothing about
// owned or shared handle disciplines. mopa layers an opt-in mechanism on
// top of user interfaces: a minimal identity capability every Go type
// automatically satisfies, plus a generated family of downcast operations
// per interface and per ownership discipline.
//
// # Mopafying an interface
//
// Three steps:
//
//  1. Embed the capability marker in your interface:
//
//     type Person interface {
//         mopa.Any
//         Weight() int16
//     }
//
//  2. Generate the downcast surface:
//
//     //go:generate mopagen -iface Person -families ref,box,arc
//
//  3. Use the generated operations:
//
//     var p Person = &Benny{KilogramsOfFood: 13}
//     if b, ok := PersonRef[Benny](p); ok {
//         // *b is the very storage behind p; no copy was made.
//     }
//
// # Components
//
// The mechanism decomposes into small packages:
//
//   - ident: identity tokens. A token uniquely identifies one concrete
//     type within the running process; equal tokens mean identical types.
//
//   - cast: the reference family. Is, Ref, Mut, As and their unchecked
//     variants over a bare interface value. Allocation-free.
//
//   - handle: the owned family (Box, a uniquely-owned heap handle) and the
//     shared family (Arc, a reference-counted handle whose downcast
//     preserves the cell and the count). BoxAs and ArcAs return the
//     original handle unchanged on mismatch, so a failed attempt never
//     loses the value.
//
//   - gen and cmd/mopagen: the surface generator. It inspects the target
//     package, verifies the interface embeds mopa.Any, and emits the
//     selected families as generic wrappers constrained to the interface.
//
//   - registry: introspection over the surfaces generated into the binary.
//     Generated files self-register in init.
//
// # Checked vs unchecked
//
// Checked operations report a mismatch as an absent result (reference
// family) or by handing the original handle back (owned/shared families);
// they never panic. Unchecked operations skip the identity comparison and
// reinterpret the handle's storage; calling one when the concrete type is
// not exactly T is undefined behavior. The VerifyUnchecked configuration
// knob makes unchecked operations re-check and panic during debugging, but
// the contract remains the caller's.
//
// # Global state
//
// The package holds one immutable snapshot (configuration plus the surface
// registry) behind an atomic pointer. Readers (Config, Surfaces, Name,
// every cast operation) load the snapshot or its mirrored knobs without
// locks; writers (SetConfig, SetRegistry, SetAll) serialize on a build
// mutex, assemble a brand-new snapshot, and publish it with an atomic swap.
// Concurrent callers always observe a consistent snapshot.
//
// # Scope
//
// mopa resolves exact nominal type identity and nothing else: no field
// introspection, no serialization, no supertype or multi-type matching,
// and no identity across separately loaded code images. Matching is
// process-local and exact.
package mopa
