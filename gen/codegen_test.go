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

package gen_test

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/davll/mopa-revised/apis"
	"github.com/davll/mopa-revised/gen"
)

// render generates a surface and checks it parses as valid Go.
func render(t *testing.T, o gen.Options) string {
	t.Helper()
	src, err := gen.Generate(o)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, o.Iface+"_mopa.go", src, parser.AllErrors); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	return string(src)
}

func TestGenerateAllFamilies(t *testing.T) {
	out := render(t, gen.Options{
		PkgName:  "zoo",
		Iface:    "Person",
		Families: apis.FamilyRef | apis.FamilyBox | apis.FamilyArc,
	})

	for _, want := range []string{
		"// Code generated by mopagen. DO NOT EDIT.",
		"package zoo",
		"func init() {",
		"reflect.TypeOf((*Person)(nil)).Elem()",
		"Families: apis.FamilyRef | apis.FamilyBox | apis.FamilyArc",
		"func PersonIs[T Person](v Person) bool",
		"func PersonRef[T Person](v Person) (*T, bool)",
		"func PersonMut[T Person](v Person) (*T, bool)",
		"func PersonAs[T Person](v Person) (T, bool)",
		"func PersonRefUnchecked[T Person](v Person) *T",
		"func PersonMutUnchecked[T Person](v Person) *T",
		"func NewPersonBox[T Person](v T) handle.Box[Person]",
		"func PersonBoxAs[T Person](b handle.Box[Person]) (*T, handle.Box[Person], bool)",
		"func PersonBoxAsUnchecked[T Person](b handle.Box[Person]) *T",
		"func NewPersonArc[T Person](v T) handle.Arc[Person]",
		"func PersonArcAs[T Person](a handle.Arc[Person]) (handle.Arc[T], handle.Arc[Person], bool)",
		"func PersonArcAsUnchecked[T Person](a handle.Arc[Person]) handle.Arc[T]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateRefOnly(t *testing.T) {
	out := render(t, gen.Options{
		PkgName:  "zoo",
		Iface:    "Person",
		Families: apis.FamilyRef,
	})

	if !strings.Contains(out, "func PersonRef[T Person]") {
		t.Error("ref family missing")
	}
	for _, absent := range []string{"BoxAs", "ArcAs", "/handle"} {
		if strings.Contains(out, absent) {
			t.Errorf("ref-only surface contains %q", absent)
		}
	}
}

func TestGenerateArcOnly(t *testing.T) {
	out := render(t, gen.Options{
		PkgName:  "zoo",
		Iface:    "Person",
		Families: apis.FamilyArc,
	})

	if !strings.Contains(out, "func PersonArcAs[T Person]") {
		t.Error("arc family missing")
	}
	if strings.Contains(out, "func PersonRef[") || strings.Contains(out, "BoxAs") {
		t.Error("arc-only surface carries other families")
	}
	if !strings.Contains(out, "/handle") {
		t.Error("arc-only surface does not import the handle package")
	}
	if strings.Contains(out, "/cast") {
		t.Error("arc-only surface imports the unused cast package")
	}
}

func TestGeneratePrefix(t *testing.T) {
	out := render(t, gen.Options{
		PkgName:  "zoo",
		Iface:    "Person",
		Prefix:   "Human",
		Families: apis.FamilyRef,
	})

	if !strings.Contains(out, "func HumanRef[T Person](v Person)") {
		t.Error("prefix not applied to function names")
	}
	if strings.Contains(out, "func PersonRef[") {
		t.Error("default prefix leaked alongside the override")
	}
}

func TestGenerateErrors(t *testing.T) {
	cases := []struct {
		name string
		o    gen.Options
	}{
		{"no package", gen.Options{Iface: "Person", Families: apis.FamilyRef}},
		{"no interface", gen.Options{PkgName: "zoo", Families: apis.FamilyRef}},
		{"no families", gen.Options{PkgName: "zoo", Iface: "Person"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := gen.Generate(c.o); err == nil {
				t.Fatal("no error")
			}
		})
	}
}
