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

// Package cast implements the reference operation family: type-checked and
// type-unchecked downcasts over a polymorphic handle held as a plain
// interface value.
//
// Matching is exact nominal type identity, decided by token comparison
// (see ident). There is no structural or supertype matching: a handle whose
// payload is U never downcasts to T for T != U, even if the two types are
// convertible or identical in layout.
//
// The checked operations (Is, Ref, Mut, As) never panic, for any input
// including nil handles; a mismatch is reported as an absent result.
//
// # Unchecked operations
//
// RefUnchecked, MutUnchecked and AsUnchecked reinterpret the handle with no
// identity check. The caller MUST guarantee that the handle's dynamic type
// is exactly T. Violating that precondition is undefined behavior: the
// returned pointer reinterprets the payload storage as the wrong type, and
// reads or writes through it corrupt memory. This is the deliberate escape
// hatch for callers that established the type by other means (typically a
// retained Is result); it is never a recoverable error path.
//
// The reference family performs no allocation and no locking. Exclusive use
// of a handle passed to Mut/MutUnchecked is the caller's obligation; the
// operations themselves are safe to call concurrently on independent
// handles.
//
// Mutating through a downcast pointer requires that the payload's boxed
// storage be writable. The runtime interns small boxes — every one-byte
// payload, larger integer-shaped payloads with values under 256, and
// zero-length strings and slices — even when the conversion argument is a
// runtime variable, and part of that shared storage is read-only. Mut
// detects interned payloads and reports them as absent instead of handing
// out a pointer whose first write faults; Rebox produces a handle with
// private writable storage, and the constructors in package handle do so
// themselves. The unchecked operations perform no such detection.
// Conversions of compile-time-constant composite values may additionally
// be placed in read-only static data; those are not detectable from the
// handle alone, and mutation through them remains a caller hazard.
package cast

import (
	"reflect"
	"unsafe"

	"github.com/davll/mopa-revised/apis"
	"github.com/davll/mopa-revised/ident"
	"github.com/davll/mopa-revised/internal/rtcfg"
	uref "github.com/davll/mopa-revised/utils/reflect"
)

// eface mirrors the runtime layout of an empty interface value:
// one word of type descriptor, one word of payload.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// Is reports whether the handle's payload has concrete type exactly T.
// A nil handle reports false for every T.
func Is[T any](v any) bool {
	return ident.Of(v) == ident.For[T]()
}

// Ref returns a pointer reinterpreting the handle's payload as T, without
// copying or moving the payload, iff Is[T](v). Otherwise (nil, false).
//
// For boxed (indirect) payloads the pointer aliases the storage referenced
// by the original handle: mutations through it are visible through every
// copy of the handle. For pointer-shaped payloads the returned word is
// itself a handle to the same underlying object; prefer As for those types.
func Ref[T any](v any) (*T, bool) {
	if !Is[T](v) {
		return nil, false
	}
	return reinterpret[T](v), true
}

// Mut is Ref for callers intending to mutate the payload.
//
// Precondition: the caller holds the handle exclusively for the duration of
// the mutation. Go cannot enforce an exclusive-reference discipline, so the
// precondition is contractual; concurrent access through other copies of
// the handle during the mutation is a data race.
//
// Mut refuses handles whose payload sits in a runtime-interned box (see
// the package documentation): it returns (nil, false) even though Is[T]
// holds, because the first write through the pointer would fault or
// corrupt a process-wide shared box. Rebox, or constructing the handle
// through package handle, provides writable storage.
func Mut[T any](v any) (*T, bool) {
	p, ok := Ref[T](v)
	if !ok {
		return nil, false
	}
	if !uref.DirectIface(reflect.TypeOf((*T)(nil)).Elem()) && internedBox((*eface)(unsafe.Pointer(&v)).data) {
		return nil, false
	}
	return p, true
}

// Rebox returns a handle carrying the same payload in a fresh, privately
// owned heap allocation. Direct (pointer-shaped) payloads have no separate
// box and come back unchanged, as does a nil handle. Rebox is the remedy
// when Mut refuses an interned payload; the handle constructors use it to
// guarantee writable storage.
func Rebox(v any) any {
	t := reflect.TypeOf(v)
	if t == nil || uref.DirectIface(t) {
		return v
	}
	p := reflect.New(t)
	p.Elem().Set(reflect.ValueOf(v))
	out := v
	(*eface)(unsafe.Pointer(&out)).data = p.UnsafePointer()
	return out
}

// The runtime keeps shared boxes for small payloads: a 256-entry table of
// word-sized slots backing every one-byte payload and scalar-shaped values
// under 256, and one zero box backing empty strings and slices. Both are
// located once at init by converting runtime variables whose boxes are
// guaranteed to be the shared ones.
var (
	zeroByte uint8
	zeroStr  string

	internBase = boxOf(zeroByte)
	zeroBox    = boxOf(zeroStr)
)

// internSpan is the byte size of the runtime's small-value table.
const internSpan = 256 * 8

// boxOf returns the payload box address behind an interface conversion.
func boxOf(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}

// internedBox reports whether data points into shared runtime storage.
// Private heap boxes never alias the table or the zero box, so a range
// check suffices. The base is aligned down one word because entry
// addresses carry a sub-word offset on big-endian targets.
func internedBox(data unsafe.Pointer) bool {
	base := uintptr(internBase) &^ 7
	return uintptr(data)-base < internSpan || data == zeroBox
}

// As returns the payload as a T value iff Is[T](v). For pointer-shaped
// concrete types (the common Go idiom of storing *X behind an interface)
// the returned value is the shared handle itself, so no payload is copied;
// for boxed payloads As copies and Ref should be preferred.
func As[T any](v any) (T, bool) {
	if !Is[T](v) {
		var zero T
		return zero, false
	}
	return *reinterpret[T](v), true
}

// RefUnchecked reinterprets the handle's payload as T with no identity
// check. See the package documentation for the undefined-behavior contract.
func RefUnchecked[T any](v any) *T {
	verify[T](v)
	return reinterpret[T](v)
}

// MutUnchecked is RefUnchecked with Mut's exclusivity precondition.
func MutUnchecked[T any](v any) *T {
	verify[T](v)
	return reinterpret[T](v)
}

// AsUnchecked is the unchecked form of As, with the same undefined-behavior
// contract as RefUnchecked.
func AsUnchecked[T any](v any) T {
	verify[T](v)
	return *reinterpret[T](v)
}

// reinterpret extracts the payload pointer, accounting for direct vs boxed
// interface layout of T. The &v below escapes through the return value, so
// for direct payloads the pointed-to word outlives the call.
func reinterpret[T any](v any) *T {
	e := (*eface)(unsafe.Pointer(&v))
	if uref.DirectIface(reflect.TypeOf((*T)(nil)).Elem()) {
		return (*T)(unsafe.Pointer(&e.data))
	}
	return (*T)(e.data)
}

// verify implements the VerifyUnchecked debugging knob: when enabled,
// unchecked operations re-check and panic on mismatch instead of handing
// out a corrupting pointer. Off by default; the unchecked contract is UB.
func verify[T any](v any) {
	if !rtcfg.VerifyUnchecked() {
		return
	}
	if !Is[T](v) {
		panic("mopa(cast): unchecked downcast to " +
			ident.Name(ident.For[T](), apis.Config{}) +
			", but payload is " +
			ident.Name(ident.Of(v), apis.Config{}))
	}
}
