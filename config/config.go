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

package config

import (
	"github.com/davll/mopa-revised/apis"
)

const (
	// DefaultVerifyUnchecked represents the default for VerifyUnchecked.
	// Off by default: the unchecked operations keep their documented
	// undefined-behavior contract unless a debugging session opts in.
	DefaultVerifyUnchecked = false
	// DefaultQualifiedNames represents the default for QualifiedNames.
	// When false, diagnostic names use the short "pkg.Type" form.
	DefaultQualifiedNames = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		VerifyUnchecked: DefaultVerifyUnchecked,
		QualifiedNames:  DefaultQualifiedNames,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithVerifyUnchecked sets the VerifyUnchecked option.
func WithVerifyUnchecked(verify bool) Option {
	return func(c *apis.Config) {
		c.VerifyUnchecked = verify
	}
}

// WithQualifiedNames sets the QualifiedNames option.
func WithQualifiedNames(qualified bool) Option {
	return func(c *apis.Config) {
		c.QualifiedNames = qualified
	}
}
