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
	"fmt"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// modulePath is the import path of this module; the capability marker the
// generator must find embedded is modulePath's Any interface.
const modulePath = "github.com/davll/mopa-revised"

// Target holds the interface facts the code generator needs.
type Target struct {
	// PkgName is the declaring package's name (the generated file's package).
	PkgName string
	// PkgPath is the declaring package's import path.
	PkgPath string
	// Dir is the declaring package's directory on disk, where the
	// generated file belongs.
	Dir string
	// Iface is the interface type name.
	Iface string
}

// Inspect loads the package matching pattern (relative to dir) and locates
// the named interface. It verifies the type is an interface and that it
// embeds mopa.Any — the capability requirement every downcastable interface
// must satisfy.
func Inspect(dir, pattern, iface string) (*Target, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading package %s: %w", pattern, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %s has errors", pattern)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want exactly 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]

	obj := pkg.Types.Scope().Lookup(iface)
	if obj == nil {
		return nil, fmt.Errorf("type %s not found in package %s", iface, pkg.PkgPath)
	}
	it, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("type %s.%s is not an interface", pkg.PkgPath, iface)
	}
	if !embedsAny(it) {
		return nil, fmt.Errorf("interface %s.%s does not embed %s.Any; add the embed to opt into downcasting",
			pkg.PkgPath, iface, modulePath)
	}

	pkgDir := dir
	if len(pkg.GoFiles) > 0 {
		pkgDir = filepath.Dir(pkg.GoFiles[0])
	}

	return &Target{
		PkgName: pkg.Name,
		PkgPath: pkg.PkgPath,
		Dir:     pkgDir,
		Iface:   iface,
	}, nil
}

// embedsAny reports whether it embeds the mopa.Any capability marker,
// directly or through another embedded interface.
func embedsAny(it *types.Interface) bool {
	for i := 0; i < it.NumEmbeddeds(); i++ {
		et := it.EmbeddedType(i)
		if named, ok := et.(*types.Named); ok {
			o := named.Obj()
			if o.Name() == "Any" && o.Pkg() != nil && o.Pkg().Path() == modulePath {
				return true
			}
			if sub, ok := named.Underlying().(*types.Interface); ok && embedsAny(sub) {
				return true
			}
		}
	}
	return false
}
