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

// Package handle implements the owned and shared downcast families over two
// handle types: Box (uniquely-owned heap allocation) and Arc (reference-
// counted shared allocation).
//
// Both handles are parameterized by the polymorphic interface type I they
// are statically typed as. The type parameter must be an interface type;
// the downcast operations retype an existing handle without changing its
// ownership discipline, copying its payload, or touching its allocation.
//
// Consuming operations (BoxAs, ArcAs and their unchecked variants) follow
// an affine discipline: on success the input handle is spent and the zero
// handle is what remains; on failure the original handle is returned to the
// caller completely unchanged, so nothing is ever lost to a failed attempt.
// Go cannot forbid reuse of a spent copy statically; Arc turns detectable
// misuse (over-release, clone of the zero handle) into panics.
//
// NewBox and NewArc copy an indirect payload into a fresh, privately owned
// heap allocation, so the storage behind a handle is always writable:
// pointers obtained through BoxAs, ArcAs or ArcDeref may be mutated
// freely. The runtime-interned boxes that make bare interface values
// hazardous to mutate (see package cast) never back a handle.
package handle

import (
	"github.com/davll/mopa-revised/cast"
)

// Box is a uniquely-owned heap handle statically typed as the interface I.
// The zero Box is the moved-from marker; it owns nothing.
type Box[I any] struct {
	v I
}

// NewBox creates an owned handle around v, copying an indirect payload
// into a fresh writable allocation the box uniquely owns. A nil v yields
// the zero Box.
func NewBox[I any](v I) Box[I] {
	if any(v) == nil {
		return Box[I]{}
	}
	return Box[I]{v: cast.Rebox(v).(I)}
}

// Ref borrows the payload behind its interface type without consuming b.
func (b Box[I]) Ref() I { return b.v }

// Moved reports whether b is the spent (zero) handle.
func (b Box[I]) Moved() bool { return any(b.v) == nil }

// BoxAs consumes b and retypes its ownership as *T iff the payload's
// concrete type is exactly T. On success the returned pointer owns the very
// same allocation and the leftover Box is the spent zero value. On mismatch
// BoxAs returns (nil, b, false): the original handle comes back with value
// and allocation untouched, and the caller may retry a different type or
// keep using the polymorphic handle.
func BoxAs[T any, I any](b Box[I]) (*T, Box[I], bool) {
	if !cast.Is[T](any(b.v)) {
		return nil, b, false
	}
	return cast.RefUnchecked[T](any(b.v)), Box[I]{}, true
}

// BoxAsUnchecked consumes b and unconditionally retypes its ownership
// as *T. The caller MUST guarantee the payload's concrete type is exactly
// T; otherwise behavior is undefined (see package cast).
func BoxAsUnchecked[T any, I any](b Box[I]) *T {
	return cast.RefUnchecked[T](any(b.v))
}
