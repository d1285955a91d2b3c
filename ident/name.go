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

package ident

import (
	"path"
	"strings"
	"sync"

	"github.com/davll/mopa-revised/apis"
)

// cacheKey ensures memoization respects the config knobs that affect naming.
type cacheKey struct {
	tok       Token
	qualified bool
}

// nameCache caches rendered type names by (token, config knobs).
var nameCache sync.Map // key: cacheKey, val: string

// NameOf renders the diagnostic name for v's type.
// A value implementing apis.Namer short-circuits reflection entirely;
// the reported name affects presentation only, never token equality.
func NameOf(v any, cfg apis.Config) string {
	if v == nil {
		return "<nil>"
	}
	if n, ok := v.(apis.Namer); ok {
		return n.TypeName()
	}
	return Name(Of(v), cfg)
}

// Name renders the diagnostic name for the type identified by tok,
// with memoization. The zero Token renders as "<nil>".
func Name(tok Token, cfg apis.Config) string {
	if !tok.Valid() {
		return "<nil>"
	}
	key := cacheKey{tok: tok, qualified: cfg.QualifiedNames}
	if v, ok := nameCache.Load(key); ok {
		return v.(string)
	}

	t := tok.t
	name := stripTypeParams(t.Name())
	switch p := t.PkgPath(); {
	case p == "" && name == "":
		// Unnamed composite (pointer, slice, map, ...): reflect's own
		// rendering is already stable and unambiguous.
		name = t.String()
	case p == "":
		// Builtin named type ("int", "string").
	case cfg.QualifiedNames:
		name = p + "." + name
	default:
		name = path.Base(p) + "." + name
	}

	nameCache.Store(key, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
