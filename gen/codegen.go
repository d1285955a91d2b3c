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
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/davll/mopa-revised/apis"
)

// Options parameterizes one generated surface file.
type Options struct {
	// PkgName is the package clause of the generated file.
	PkgName string
	// Iface is the interface the surface is generated for. The file is
	// emitted into the interface's own package, so the name is unqualified.
	Iface string
	// Prefix is the name prefix of the generated functions.
	// Empty defaults to Iface.
	Prefix string
	// Families selects which operation families to emit.
	Families apis.Family
}

// Generate renders the downcast surface for o and returns gofmt'd source.
func Generate(o Options) ([]byte, error) {
	if o.PkgName == "" || o.Iface == "" {
		return nil, fmt.Errorf("generate: package name and interface name are required")
	}
	if o.Families == 0 {
		return nil, fmt.Errorf("generate: no families selected for %s", o.Iface)
	}
	if o.Prefix == "" {
		o.Prefix = o.Iface
	}

	ctx := surfaceContext{
		PkgName:    o.PkgName,
		Iface:      o.Iface,
		Prefix:     o.Prefix,
		ModulePath: modulePath,
		FamilyExpr: familyExpr(o.Families),
		HasRef:     o.Families.Has(apis.FamilyRef),
		HasBox:     o.Families.Has(apis.FamilyBox),
		HasArc:     o.Families.Has(apis.FamilyArc),
	}
	ctx.NeedHandle = ctx.HasBox || ctx.HasArc

	var buf bytes.Buffer
	if err := surfaceTmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("rendering surface for %s: %w", o.Iface, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// A formatting failure means the template produced bad syntax;
		// surface the raw output to make that debuggable.
		return nil, fmt.Errorf("formatting surface for %s: %w\n%s", o.Iface, err, buf.String())
	}
	return src, nil
}

// familyExpr renders the Families bitmask as a Go expression.
func familyExpr(f apis.Family) string {
	var parts []string
	if f.Has(apis.FamilyRef) {
		parts = append(parts, "apis.FamilyRef")
	}
	if f.Has(apis.FamilyBox) {
		parts = append(parts, "apis.FamilyBox")
	}
	if f.Has(apis.FamilyArc) {
		parts = append(parts, "apis.FamilyArc")
	}
	return strings.Join(parts, " | ")
}

// surfaceContext is the template's dot.
type surfaceContext struct {
	PkgName    string
	Iface      string
	Prefix     string
	ModulePath string
	FamilyExpr string
	HasRef     bool
	HasBox     bool
	HasArc     bool
	NeedHandle bool
}

var surfaceTmpl = template.Must(template.New("surface").Parse(`// Code generated by mopagen. DO NOT EDIT.

package {{.PkgName}}

import (
	"reflect"

	mopa "{{.ModulePath}}"
	"{{.ModulePath}}/apis"
{{- if .HasRef}}
	"{{.ModulePath}}/cast"
{{- end}}
{{- if .NeedHandle}}
	"{{.ModulePath}}/handle"
{{- end}}
)

// init records the {{.Iface}} downcast surface for introspection.
func init() {
	_ = mopa.RegisterSurface(apis.Surface{
		Type:     reflect.TypeOf((*{{.Iface}})(nil)).Elem(),
		Name:     "{{.Iface}}",
		Families: {{.FamilyExpr}},
	})
}
{{- if .HasRef}}

// {{.Prefix}}Is reports whether v's payload has concrete type exactly T.
func {{.Prefix}}Is[T {{.Iface}}](v {{.Iface}}) bool {
	return cast.Is[T](v)
}

// {{.Prefix}}Ref returns a pointer reinterpreting v's payload as T iff the
// payload is exactly a T. The pointer aliases the handle's storage; no copy
// is made. Otherwise (nil, false).
func {{.Prefix}}Ref[T {{.Iface}}](v {{.Iface}}) (*T, bool) {
	return cast.Ref[T](v)
}

// {{.Prefix}}Mut is {{.Prefix}}Ref for mutation; the caller must hold the
// handle exclusively for the duration of the mutation.
func {{.Prefix}}Mut[T {{.Iface}}](v {{.Iface}}) (*T, bool) {
	return cast.Mut[T](v)
}

// {{.Prefix}}As returns v's payload as a T value iff it is exactly a T.
func {{.Prefix}}As[T {{.Iface}}](v {{.Iface}}) (T, bool) {
	return cast.As[T](v)
}

// {{.Prefix}}RefUnchecked reinterprets v's payload as T with no identity
// check. If the payload is not exactly a T, behavior is undefined; callers
// must have established the type by other means.
func {{.Prefix}}RefUnchecked[T {{.Iface}}](v {{.Iface}}) *T {
	return cast.RefUnchecked[T](v)
}

// {{.Prefix}}MutUnchecked is {{.Prefix}}RefUnchecked with
// {{.Prefix}}Mut's exclusivity precondition.
func {{.Prefix}}MutUnchecked[T {{.Iface}}](v {{.Iface}}) *T {
	return cast.MutUnchecked[T](v)
}
{{- end}}
{{- if .HasBox}}

// New{{.Prefix}}Box creates a uniquely-owned heap handle around v.
func New{{.Prefix}}Box[T {{.Iface}}](v T) handle.Box[{{.Iface}}] {
	return handle.NewBox[{{.Iface}}](v)
}

// {{.Prefix}}BoxAs consumes b and retypes its ownership as *T iff the
// payload is exactly a T. On mismatch the original handle is returned
// unchanged; the value is never lost to a failed attempt.
func {{.Prefix}}BoxAs[T {{.Iface}}](b handle.Box[{{.Iface}}]) (*T, handle.Box[{{.Iface}}], bool) {
	return handle.BoxAs[T](b)
}

// {{.Prefix}}BoxAsUnchecked consumes b and unconditionally retypes its
// ownership as *T. If the payload is not exactly a T, behavior is undefined.
func {{.Prefix}}BoxAsUnchecked[T {{.Iface}}](b handle.Box[{{.Iface}}]) *T {
	return handle.BoxAsUnchecked[T](b)
}
{{- end}}
{{- if .HasArc}}

// New{{.Prefix}}Arc creates a reference-counted shared handle around v.
func New{{.Prefix}}Arc[T {{.Iface}}](v T) handle.Arc[{{.Iface}}] {
	return handle.NewArc[{{.Iface}}](v)
}

// {{.Prefix}}ArcAs consumes one shared handle and retypes it as
// handle.Arc[T] iff the payload is exactly a T, preserving the shared cell
// and the outstanding-handle count. On mismatch the original handle is
// returned with its count unaffected.
func {{.Prefix}}ArcAs[T {{.Iface}}](a handle.Arc[{{.Iface}}]) (handle.Arc[T], handle.Arc[{{.Iface}}], bool) {
	return handle.ArcAs[T](a)
}

// {{.Prefix}}ArcAsUnchecked consumes one shared handle and unconditionally
// retypes it as handle.Arc[T]. If the payload is not exactly a T, behavior
// of every subsequent dereference is undefined.
func {{.Prefix}}ArcAsUnchecked[T {{.Iface}}](a handle.Arc[{{.Iface}}]) handle.Arc[T] {
	return handle.ArcAsUnchecked[T](a)
}
{{- end}}
`))
