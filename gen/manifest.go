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

// Package gen implements the downcast surface generator.
//
// Given a user interface that embeds mopa.Any and a selector naming the
// ownership families to target, gen emits a Go source file with the
// matching operation family: checked and unchecked reference downcasts,
// owned-handle (Box) downcasts, and shared-handle (Arc) downcasts, all as
// generic functions constrained to the interface.
//
// The generator runs in three steps:
//
//   - manifest: what to generate, from flags or a mopa.yaml file
//   - inspect: locate the interface via go/packages and verify the
//     mopa.Any embed (the capability requirement)
//   - generate: render the selected families and gofmt the result
package gen

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/davll/mopa-revised/apis"
)

// Manifest is the top-level mopa.yaml configuration.
type Manifest struct {
	// Surfaces lists the interfaces to generate downcast surfaces for.
	Surfaces []SurfaceSpec `yaml:"surfaces"`
}

// SurfaceSpec describes one downcast surface to generate.
type SurfaceSpec struct {
	// Interface is the interface type name (e.g. "Person"). Required.
	Interface string `yaml:"interface"`

	// Package is the go/packages load pattern for the package declaring
	// the interface. Defaults to "." (the manifest's directory).
	Package string `yaml:"package,omitempty"`

	// Families selects the operation families: "ref", "box", "arc", or
	// "all" (historically ref+box; arc stays opt-in). Defaults to "all".
	Families []string `yaml:"families,omitempty"`

	// Output is the generated file name, relative to the target package
	// directory. Defaults to "<interface>_mopa.go", lowercased.
	Output string `yaml:"output,omitempty"`

	// Prefix is the name prefix for the generated functions.
	// Defaults to the interface name.
	Prefix string `yaml:"prefix,omitempty"`
}

// Defaulted returns a copy of s with the package, output and prefix
// defaults applied. Both generation modes (manifest and single-interface
// flags) resolve defaults through this one place.
func (s SurfaceSpec) Defaulted() SurfaceSpec {
	if s.Package == "" {
		s.Package = "."
	}
	if s.Output == "" {
		s.Output = strings.ToLower(s.Interface) + "_mopa.go"
	}
	if s.Prefix == "" {
		s.Prefix = s.Interface
	}
	return s
}

// LoadManifest reads and parses a mopa.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseManifest(data, path)
}

// ParseManifest parses mopa.yaml content from bytes.
// The path argument is used only for error messages.
func ParseManifest(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Surfaces) == 0 {
		return nil, fmt.Errorf("manifest %s: no surfaces declared", path)
	}
	for i := range m.Surfaces {
		s := m.Surfaces[i]
		if s.Interface == "" {
			return nil, fmt.Errorf("manifest %s: surfaces[%d]: missing interface name", path, i)
		}
		if _, err := ParseFamilies(s.Families); err != nil {
			return nil, fmt.Errorf("manifest %s: surfaces[%d] (%s): %w", path, i, s.Interface, err)
		}
		m.Surfaces[i] = s.Defaulted()
	}
	return &m, nil
}

// ParseFamilies resolves a family selector list to its bitmask.
// An empty list means "all": reference plus owned, with arc opt-in.
func ParseFamilies(names []string) (apis.Family, error) {
	if len(names) == 0 {
		return apis.FamilyAll, nil
	}
	var f apis.Family
	for _, n := range names {
		switch strings.TrimSpace(n) {
		case "ref":
			f |= apis.FamilyRef
		case "box":
			f |= apis.FamilyBox
		case "arc":
			f |= apis.FamilyArc
		case "all":
			f |= apis.FamilyAll
		case "":
		default:
			return 0, fmt.Errorf("unknown family %q (want ref, box, arc or all)", n)
		}
	}
	if f == 0 {
		return 0, fmt.Errorf("empty family selector")
	}
	return f, nil
}

// ParseFamilySelector resolves a comma-separated selector ("ref,box").
func ParseFamilySelector(s string) (apis.Family, error) {
	if strings.TrimSpace(s) == "" {
		return ParseFamilies(nil)
	}
	return ParseFamilies(strings.Split(s, ","))
}
