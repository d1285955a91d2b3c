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

// Package ident produces type identity tokens.
//
// A Token uniquely identifies one concrete Go type for the lifetime of the
// process. Tokens are the basis of every checked downcast in this module:
// two tokens are equal if and only if they were obtained from the identical
// concrete type. The Go runtime interns one type descriptor per type per
// binary image, so reflect.Type equality delivers exactly that guarantee.
//
// Tokens are comparable values. Obtaining one is deterministic, injective
// across types, and free of side effects.
package ident

import (
	"reflect"

	"github.com/davll/mopa-revised/apis"
)

// Token is an opaque identity token for one concrete type.
// The zero Token is valid-as-a-value but identifies no type; it compares
// unequal to every token obtained from a real type.
type Token struct {
	t reflect.Type
}

// Of returns the identity token for v's dynamic type.
// A nil v yields the zero Token.
func Of(v any) Token {
	return Token{t: reflect.TypeOf(v)}
}

// For returns the identity token for the type parameter T.
func For[T any]() Token {
	return Token{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// FromType wraps an existing reflect.Type as a Token.
func FromType(t reflect.Type) Token {
	return Token{t: t}
}

// Valid reports whether tok identifies a type.
func (tok Token) Valid() bool { return tok.t != nil }

// Type returns the underlying reflect.Type, or nil for the zero Token.
func (tok Token) Type() reflect.Type { return tok.t }

// String renders tok with default (unqualified) naming.
func (tok Token) String() string {
	return Name(tok, apis.Config{})
}
