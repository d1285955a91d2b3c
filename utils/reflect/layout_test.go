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

package reflect_test

import (
	"reflect"
	"testing"
	"unsafe"

	uref "github.com/davll/mopa-revised/utils/reflect"
)

type plain struct{ a, b int }
type onePtr struct{ p *int }
type oneMap struct{ m map[string]int }
type twoPtr struct{ p, q *int }

func TestDirectIface(t *testing.T) {
	tests := []struct {
		name string
		t    reflect.Type
		want bool
	}{
		{"nil", nil, false},
		{"pointer", reflect.TypeOf((*int)(nil)), true},
		{"map", reflect.TypeOf(map[string]int(nil)), true},
		{"chan", reflect.TypeOf(make(chan int)), true},
		{"func", reflect.TypeOf(func() {}), true},
		{"unsafe pointer", reflect.TypeOf(unsafe.Pointer(nil)), true},
		{"int", reflect.TypeOf(0), false},
		{"string", reflect.TypeOf(""), false},
		{"slice", reflect.TypeOf([]int(nil)), false},
		{"plain struct", reflect.TypeOf(plain{}), false},
		{"single-pointer struct", reflect.TypeOf(onePtr{}), true},
		{"single-map struct", reflect.TypeOf(oneMap{}), true},
		{"two-pointer struct", reflect.TypeOf(twoPtr{}), false},
		{"array[1] of pointer", reflect.TypeOf([1]*int{}), true},
		{"array[2] of pointer", reflect.TypeOf([2]*int{}), false},
		{"array[1] of int", reflect.TypeOf([1]int{}), false},
		{"nested single wrap", reflect.TypeOf(struct{ w onePtr }{}), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.DirectIface(tc.t); got != tc.want {
				t.Fatalf("DirectIface(%v) = %v, want %v", tc.t, got, tc.want)
			}
			// Memoized second call must agree.
			if got := uref.DirectIface(tc.t); got != tc.want {
				t.Fatalf("memoized DirectIface(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}
