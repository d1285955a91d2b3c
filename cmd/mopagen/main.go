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

// Mopagen generates the downcast surface for interfaces that embed
// mopa.Any.
//
// Single-interface mode, suitable for go:generate:
//
//	mopagen -iface Person -families ref,box,arc
//
// Manifest mode, generating every surface declared in a mopa.yaml:
//
//	mopagen -manifest mopa.yaml
//
// Either way, the generated file lands next to the interface's package
// sources, named <interface>_mopa.go unless overridden.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davll/mopa-revised/gen"
)

var (
	manifestFlag = flag.String("manifest", "", "generate every surface declared in this mopa.yaml")
	ifaceFlag    = flag.String("iface", "", "interface type name to generate a surface for")
	familiesFlag = flag.String("families", "all", "comma-separated families: ref, box, arc or all (= ref+box)")
	dirFlag      = flag.String("dir", ".", "directory to resolve package patterns from")
	pkgFlag      = flag.String("pkg", ".", "go/packages pattern for the package declaring the interface")
	outputFlag   = flag.String("output", "", "output file name; default <interface>_mopa.go in the package directory")
	prefixFlag   = flag.String("prefix", "", "name prefix for generated functions; default interface name")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mopagen -iface I [-families ref,box,arc] [-pkg pattern] [-output file]")
	fmt.Fprintln(os.Stderr, "       mopagen -manifest mopa.yaml")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mopagen: ")
	flag.Usage = usage
	flag.Parse()

	switch {
	case *manifestFlag != "":
		if *ifaceFlag != "" {
			log.Fatal("-manifest and -iface are mutually exclusive")
		}
		m, err := gen.LoadManifest(*manifestFlag)
		if err != nil {
			log.Fatal(err)
		}
		dir := filepath.Dir(*manifestFlag)
		for _, spec := range m.Surfaces {
			if err := generate(dir, spec); err != nil {
				log.Fatal(err)
			}
		}

	case *ifaceFlag != "":
		spec := gen.SurfaceSpec{
			Interface: *ifaceFlag,
			Package:   *pkgFlag,
			Output:    *outputFlag,
			Prefix:    *prefixFlag,
		}
		if f := strings.TrimSpace(*familiesFlag); f != "" {
			spec.Families = strings.Split(f, ",")
		}
		if err := generate(*dirFlag, spec); err != nil {
			log.Fatal(err)
		}

	default:
		usage()
		os.Exit(2)
	}
}

// generate runs the full pipeline for one surface: inspect, render, write.
func generate(dir string, spec gen.SurfaceSpec) error {
	spec = spec.Defaulted()

	families, err := gen.ParseFamilies(spec.Families)
	if err != nil {
		return fmt.Errorf("%s: %w", spec.Interface, err)
	}

	target, err := gen.Inspect(dir, spec.Package, spec.Interface)
	if err != nil {
		return err
	}

	src, err := gen.Generate(gen.Options{
		PkgName:  target.PkgName,
		Iface:    target.Iface,
		Prefix:   spec.Prefix,
		Families: families,
	})
	if err != nil {
		return err
	}

	out := filepath.Join(target.Dir, spec.Output)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Printf("wrote %s (%s)", out, families)
	return nil
}
