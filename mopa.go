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

package mopa

import (
	"sync"
	"sync/atomic"

	"github.com/davll/mopa-revised/apis"
	"github.com/davll/mopa-revised/cast"
	"github.com/davll/mopa-revised/config"
	"github.com/davll/mopa-revised/ident"
	"github.com/davll/mopa-revised/internal/rtcfg"
	"github.com/davll/mopa-revised/registry"
)

// Any is the identity capability marker. Every Go type satisfies it
// automatically; that structural blanket rule is precisely the capability's
// contract, since Go values carry no non-static lifetime dependencies.
//
// A polymorphic interface opts into the downcast mechanism by embedding
// Any; the generator refuses interfaces that do not. Embedding adds no
// method set and no runtime cost. The identity token itself is obtained
// through TokenOf or ident.Of, never through a method, so a concrete type
// cannot forge or override its identity.
type Any interface{}

// init initializes the global mopa state.
func init() {
	s := &state{cfg: config.DefaultConfig(), reg: registry.New()}
	st.Store(s)
	rtcfg.SetVerifyUnchecked(s.cfg.VerifyUnchecked)
}

// TokenOf returns the identity token for v's concrete type.
// This is a convenience wrapper around ident.Of.
func TokenOf(v Any) ident.Token {
	return ident.Of(v)
}

// TokenFor returns the identity token for the type parameter T.
// This is a convenience wrapper around ident.For.
func TokenFor[T any]() ident.Token {
	return ident.For[T]()
}

// Name renders the diagnostic name of v's concrete type using the global
// mopa configuration. This is a convenience wrapper around ident.NameOf.
func Name(v Any) string {
	return ident.NameOf(v, st.Load().cfg)
}

// Is reports whether the handle's payload has concrete type exactly T.
// This is a convenience wrapper around cast.Is.
func Is[T any](v Any) bool {
	return cast.Is[T](v)
}

// Ref downcasts the handle to a payload pointer without copying.
// This is a convenience wrapper around cast.Ref.
func Ref[T any](v Any) (*T, bool) {
	return cast.Ref[T](v)
}

// Mut is Ref under the caller's exclusive-access precondition.
// This is a convenience wrapper around cast.Mut.
func Mut[T any](v Any) (*T, bool) {
	return cast.Mut[T](v)
}

// As downcasts the handle to a payload value.
// This is a convenience wrapper around cast.As.
func As[T any](v Any) (T, bool) {
	return cast.As[T](v)
}

// RefUnchecked is the unchecked form of Ref; see package cast for the
// undefined-behavior contract.
func RefUnchecked[T any](v Any) *T {
	return cast.RefUnchecked[T](v)
}

// MutUnchecked is the unchecked form of Mut; see package cast for the
// undefined-behavior contract.
func MutUnchecked[T any](v Any) *T {
	return cast.MutUnchecked[T](v)
}

// Config returns the global mopa configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global mopa configuration to cfg and publishes a new
// snapshot. The surface registry carries over unchanged.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, reg: old.reg})
	rtcfg.SetVerifyUnchecked(cfg.VerifyUnchecked)
}

// Surfaces returns the global surface registry.
func Surfaces() apis.Registry {
	return st.Load().reg
}

// RegisterSurface records a generated downcast surface in the global
// registry. Generated files call this from init; manual callers may too.
func RegisterSurface(s apis.Surface) error {
	return st.Load().reg.Register(s)
}

// SetRegistry replaces the global surface registry.
// A nil registry is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: reg})
}

// SetAll explicitly sets all global mopa state components.
//
// A nil cfg keeps the current configuration; a nil reg installs a fresh
// empty registry. This is mainly used by tests to get a clean deterministic
// state between test cases.
func SetAll(cfg *apis.Config, reg apis.Registry) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nreg := reg
	if nreg == nil {
		nreg = registry.New()
	}

	st.Store(&state{cfg: ncfg, reg: nreg})
	rtcfg.SetVerifyUnchecked(ncfg.VerifyUnchecked)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global mopa state.
var st atomic.Pointer[state]

// state is the global mopa state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global mopa configuration.
	cfg apis.Config
	// reg is the global surface registry.
	reg apis.Registry
}
