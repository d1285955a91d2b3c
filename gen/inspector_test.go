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

package gen

import (
	"go/token"
	"go/types"
	"testing"
)

// namedIface builds a named interface type in pkg embedding the given types.
func namedIface(pkg *types.Package, name string, embeds ...types.Type) *types.Named {
	it := types.NewInterfaceType(nil, embeds)
	it.Complete()
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	return types.NewNamed(obj, it, nil)
}

func TestEmbedsAny(t *testing.T) {
	mopaPkg := types.NewPackage(modulePath, "mopa")
	otherPkg := types.NewPackage("example.com/other", "other")

	anyMarker := namedIface(mopaPkg, "Any")
	impostor := namedIface(otherPkg, "Any")
	person := namedIface(otherPkg, "Person", anyMarker)

	cases := []struct {
		name   string
		embeds []types.Type
		want   bool
	}{
		{"direct embed", []types.Type{anyMarker}, true},
		{"no embeds", nil, false},
		{"same-name foreign package", []types.Type{impostor}, false},
		{"indirect through another interface", []types.Type{person}, true},
		{"unrelated embed only", []types.Type{namedIface(otherPkg, "Animal")}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it := types.NewInterfaceType(nil, c.embeds)
			it.Complete()
			if got := embedsAny(it); got != c.want {
				t.Fatalf("embedsAny = %v, want %v", got, c.want)
			}
		})
	}
}
