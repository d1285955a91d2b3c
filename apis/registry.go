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

import "reflect"

// Family is a bitmask of generated downcast operation families.
type Family uint8

const (
	// FamilyRef covers the reference operations (Is/Ref/Mut and the
	// unchecked variants) over a bare interface value.
	FamilyRef Family = 1 << iota
	// FamilyBox covers the uniquely-owned handle operations (Box).
	FamilyBox
	// FamilyArc covers the reference-counted handle operations (Arc).
	FamilyArc
)

// FamilyAll is the historical "all" selector: reference plus owned.
// The shared family stays opt-in.
const FamilyAll = FamilyRef | FamilyBox

// Has reports whether f includes every family in sub.
func (f Family) Has(sub Family) bool { return f&sub == sub }

// String renders the selector in manifest form ("ref,box,arc").
func (f Family) String() string {
	s := ""
	sep := func() {
		if s != "" {
			s += ","
		}
	}
	if f.Has(FamilyRef) {
		s = "ref"
	}
	if f.Has(FamilyBox) {
		sep()
		s += "box"
	}
	if f.Has(FamilyArc) {
		sep()
		s += "arc"
	}
	return s
}

// Surface describes a generated downcast surface for one interface.
type Surface struct {
	// Type is the interface's reflect.Type (as obtained from a nil pointer
	// element, e.g. reflect.TypeOf((*Person)(nil)).Elem()).
	Type reflect.Type
	// Name is the interface's diagnostic name.
	Name string
	// Families are the operation families generated for the interface.
	Families Family
}

// Registry tracks the downcast surfaces present in the binary.
// Generated code self-registers; the registry exists for introspection
// (diagnostics, docs) and never participates in the cast hot path.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register records a surface descriptor.
	// Implementations should be idempotent for identical descriptors;
	// re-registering the same interface with a different descriptor fails.
	Register(s Surface) error
	// Lookup returns the surface for an interface type if present.
	Lookup(t reflect.Type) (s Surface, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Surface
	// Count returns the number of registered surfaces.
	Count() int
	// Reset clears all registered surfaces.
	Reset()
}
