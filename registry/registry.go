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

// Package registry implements the process-wide surface registry: the set of
// interfaces a downcast surface has been generated for, keyed by the
// interface's reflect.Type. Generated files self-register in their init
// functions; the registry serves introspection only and is never on the
// cast hot path.
package registry

import (
	"errors"
	"reflect"
	"sync"

	"github.com/davll/mopa-revised/apis"
)

var (
	// ErrNilType is returned when a surface carries a nil reflect.Type.
	ErrNilType = errors.New("mopa(registry): nil reflect.Type provided")
	// ErrNotInterface is returned when a surface's type is not an interface.
	ErrNotInterface = errors.New("mopa(registry): surface type is not an interface")
	// ErrEmptyName is returned when a surface carries an empty name.
	ErrEmptyName = errors.New("mopa(registry): empty surface name provided")
	// ErrConflictingSurface indicates an attempt to re-register an interface
	// with a different name or family set.
	ErrConflictingSurface = errors.New("mopa(registry): conflicting surface registration")
)

// New constructs an empty surface registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to apis.Surface.
	m sync.Map
	// count tracks the number of registered surfaces.
	count int
}

// Register records the surface descriptor s.
// It is idempotent for an identical descriptor.
func (r *registry) Register(s apis.Surface) error {
	// Validate inputs early.
	if s.Type == nil {
		return ErrNilType
	}
	if s.Type.Kind() != reflect.Interface {
		return ErrNotInterface
	}
	if s.Name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(s.Type); ok {
		if old.(apis.Surface) == s {
			return nil // idempotent re-registration
		}
		return ErrConflictingSurface
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(s.Type); ok {
		if old.(apis.Surface) == s {
			return nil
		}
		return ErrConflictingSurface
	}

	r.m.Store(s.Type, s)
	r.count++
	return nil
}

// Lookup returns the surface for an interface type if present.
func (r *registry) Lookup(t reflect.Type) (apis.Surface, bool) {
	if t == nil {
		return apis.Surface{}, false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(apis.Surface), true
	}
	return apis.Surface{}, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Surface {
	entries := make([]apis.Surface, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Surface))
		return true
	})
	return entries
}

// Count returns the number of registered surfaces.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered surfaces.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}
