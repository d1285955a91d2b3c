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

package handle

import (
	"sync/atomic"

	"github.com/davll/mopa-revised/apis"
	"github.com/davll/mopa-revised/cast"
	"github.com/davll/mopa-revised/ident"
	"github.com/davll/mopa-revised/internal/rtcfg"
)

// cell is the shared allocation behind every clone and every retyped view
// of one Arc. The payload is boxed exactly once, at construction; it is
// immutable as an allocation (its content's type never changes), so reads
// need no locking. Count bookkeeping is atomic.
type cell struct {
	refs atomic.Int64
	val  any
}

// Arc is a reference-counted shared handle statically typed as the
// interface I. Copies made through Clone share the same cell and count.
// The zero Arc is the spent marker; it owns nothing.
//
// Go's garbage collector reclaims the allocation regardless of the count;
// the count exists so that ownership bookkeeping stays observable and so
// that misuse of the affine operations is detectable.
type Arc[I any] struct {
	c *cell
}

// NewArc boxes v once — copying an indirect payload into a private
// writable allocation — and returns the first handle, with a count of one.
func NewArc[I any](v I) Arc[I] {
	c := &cell{val: cast.Rebox(v)}
	c.refs.Store(1)
	return Arc[I]{c: c}
}

// Clone returns a new handle sharing a's cell, incrementing the count.
// Clone panics on the zero Arc.
func (a Arc[I]) Clone() Arc[I] {
	if a.c == nil {
		panic("mopa(handle): Clone of spent Arc")
	}
	a.c.refs.Add(1)
	return a
}

// Release gives up one handle, decrementing the count.
// Releasing more handles than were created panics.
func (a Arc[I]) Release() {
	if a.c == nil {
		panic("mopa(handle): Release of spent Arc")
	}
	if a.c.refs.Add(-1) < 0 {
		panic("mopa(handle): Arc released more times than cloned")
	}
}

// Strong returns the current outstanding-handle count.
// The zero Arc reports zero.
func (a Arc[I]) Strong() int64 {
	if a.c == nil {
		return 0
	}
	return a.c.refs.Load()
}

// Value returns the payload behind a's static type. For an interface I this
// is a cheap view; for a retyped Arc with a concrete type parameter it
// copies, and ArcDeref should be preferred. The zero Arc yields the zero I.
func (a Arc[I]) Value() I {
	if a.c == nil {
		var zero I
		return zero
	}
	return a.c.val.(I)
}

// ArcAs consumes one handle and retypes it as Arc[T] iff the payload's
// concrete type is exactly T. The retyped handle shares the original cell
// and count: no allocation is made, no payload is copied, and the total
// outstanding-handle count is unchanged (one handle in, one handle out).
// On mismatch ArcAs returns (zero, a, false): the original handle comes
// back with its count unaffected by the failed attempt.
//
// ArcAs is safe to call concurrently with operations on other clones of the
// same cell; it inspects only the payload's type identity, which is
// immutable for the cell's lifetime.
func ArcAs[T any, I any](a Arc[I]) (Arc[T], Arc[I], bool) {
	if a.c == nil || !cast.Is[T](a.c.val) {
		return Arc[T]{}, a, false
	}
	return Arc[T]{c: a.c}, Arc[I]{}, true
}

// ArcAsUnchecked consumes one handle and unconditionally retypes it as
// Arc[T], preserving cell and count. The caller MUST guarantee the
// payload's concrete type is exactly T; otherwise every subsequent ArcDeref
// exhibits the undefined behavior described in package cast.
func ArcAsUnchecked[T any, I any](a Arc[I]) Arc[T] {
	if a.c == nil {
		panic("mopa(handle): unchecked downcast of spent Arc")
	}
	if rtcfg.VerifyUnchecked() && !cast.Is[T](a.c.val) {
		panic("mopa(handle): unchecked downcast to " +
			ident.Name(ident.For[T](), apis.Config{}) +
			", but payload is " +
			ident.Name(ident.Of(a.c.val), apis.Config{}))
	}
	return Arc[T]{c: a.c}
}

// ArcDeref returns a pointer to the shared payload of a retyped handle,
// without copying. T must be the payload's concrete type (the type the
// handle was downcast to); ArcDeref panics otherwise, and on the zero Arc.
func ArcDeref[T any](a Arc[T]) *T {
	if a.c == nil {
		panic("mopa(handle): ArcDeref of spent Arc")
	}
	p, ok := cast.Ref[T](a.c.val)
	if !ok {
		panic("mopa(handle): ArcDeref type " +
			ident.Name(ident.For[T](), apis.Config{}) +
			" does not match payload " +
			ident.Name(ident.Of(a.c.val), apis.Config{}))
	}
	return p
}
