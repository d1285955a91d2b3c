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

// Package reflect holds small reflect.Type helpers shared across the module.
package reflect

import (
	"reflect"
	"sync"
)

// directCache memoizes DirectIface per type. Downcasts consult the layout on
// every call, so the walk is paid once per concrete type.
var directCache sync.Map // key: reflect.Type, val: bool

// DirectIface reports whether values of type t are stored directly in an
// interface's data word rather than behind a pointer to separate storage.
//
// This mirrors the gc toolchain's layout rule: pointer-shaped kinds
// (pointer, channel, map, func, unsafe.Pointer) are direct, and so are
// single-field structs and length-1 arrays wrapping a direct type. Every
// other type is boxed, and the interface's data word points at the box.
//
// A nil t reports false.
func DirectIface(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if v, ok := directCache.Load(t); ok {
		return v.(bool)
	}
	d := walkDirect(t)
	directCache.Store(t, d)
	return d
}

// walkDirect applies the layout rule recursively.
func walkDirect(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return true
	case reflect.Struct:
		return t.NumField() == 1 && walkDirect(t.Field(0).Type)
	case reflect.Array:
		return t.Len() == 1 && walkDirect(t.Elem())
	default:
		return false
	}
}
