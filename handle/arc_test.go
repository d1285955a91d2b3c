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

package handle_test

import (
	"testing"

	"github.com/davll/mopa-revised/handle"
)

func TestArcCloneAndCount(t *testing.T) {
	a := handle.NewArc[person](benny{kilogramsOfFood: kg})
	if got := a.Strong(); got != 1 {
		t.Fatalf("fresh Arc count = %d, want 1", got)
	}

	a1 := a.Clone()
	a2 := a.Clone()
	if got := a.Strong(); got != 3 {
		t.Fatalf("count after two clones = %d, want 3", got)
	}

	a1.Release()
	if got := a2.Strong(); got != 2 {
		t.Fatalf("count after release = %d, want 2", got)
	}
	a2.Release()
	a.Release()
	if got := a.Strong(); got != 0 {
		t.Fatalf("final count = %d, want 0", got)
	}
}

// TestArcDowncastPreservesCount pins the shared count invariant: a downcast
// transmutes one handle, it never duplicates ownership.
func TestArcDowncastPreservesCount(t *testing.T) {
	a := handle.NewArc[person](benny{kilogramsOfFood: kg})
	a1 := a.Clone()
	a2 := a.Clone()
	if got := a.Strong(); got != 3 {
		t.Fatalf("count before downcast = %d, want 3", got)
	}

	rb, rest, ok := handle.ArcAs[benny](a)
	if !ok {
		t.Fatal("ArcAs[benny] failed for a benny payload")
	}
	if rest.Strong() != 0 {
		t.Fatal("successful ArcAs left a live leftover handle")
	}
	if got := rb.Strong(); got != 3 {
		t.Fatalf("count after downcast = %d, want 3 (transmuted, not duplicated)", got)
	}

	// The retyped handle shares the original storage.
	if got := handle.ArcDeref(rb); got.kilogramsOfFood != 13 {
		t.Fatalf("payload via retyped handle = %d, want 13", got.kilogramsOfFood)
	}

	// Remaining views still work and share the count.
	if w := a1.Value().Weight(); w != 73 {
		t.Fatalf("Weight via surviving clone = %d, want 73", w)
	}
	rb.Release()
	if got := a2.Strong(); got != 2 {
		t.Fatalf("count after retyped release = %d, want 2", got)
	}
}

func TestArcDowncastMismatchKeepsHandle(t *testing.T) {
	a := handle.NewArc[person](benny{kilogramsOfFood: kg})

	_, back, ok := handle.ArcAs[chris](a)
	if ok {
		t.Fatal("ArcAs[chris] matched a benny payload")
	}
	if got := back.Strong(); got != 1 {
		t.Fatalf("count after failed downcast = %d, want 1", got)
	}
	if w := back.Value().Weight(); w != 73 {
		t.Fatalf("payload after failed downcast: Weight = %d, want 73", w)
	}
}

func TestArcUnchecked(t *testing.T) {
	a := handle.NewArc[person](benny{kilogramsOfFood: kg})
	rb := handle.ArcAsUnchecked[benny](a)
	if got := rb.Strong(); got != 1 {
		t.Fatalf("count after unchecked downcast = %d, want 1", got)
	}
	if got := handle.ArcDeref(rb); got.kilogramsOfFood != 13 {
		t.Fatalf("payload = %d, want 13", got.kilogramsOfFood)
	}
}

func TestArcMutationSharedAcrossViews(t *testing.T) {
	a := handle.NewArc[person](benny{kilogramsOfFood: kg})
	view := a.Clone()

	rb, _, ok := handle.ArcAs[benny](a)
	if !ok {
		t.Fatal("ArcAs[benny] failed")
	}
	handle.ArcDeref(rb).kilogramsOfFood = 99

	if w := view.Value().Weight(); w != 99+60 {
		t.Fatalf("mutation not visible through surviving clone: Weight = %d", w)
	}
}

func TestArcMisusePanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"clone of spent", func() { var z handle.Arc[person]; z.Clone() }},
		{"release of spent", func() { var z handle.Arc[person]; z.Release() }},
		{"deref of spent", func() { var z handle.Arc[benny]; handle.ArcDeref(z) }},
		{"over-release", func() {
			a := handle.NewArc[person](benny{kilogramsOfFood: kg})
			a.Release()
			a.Release()
		}},
		{"deref wrong type", func() {
			a := handle.NewArc[person](benny{kilogramsOfFood: kg})
			rc := handle.ArcAsUnchecked[chris](a)
			handle.ArcDeref(rc)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s did not panic", tc.name)
				}
			}()
			tc.f()
		})
	}
}
