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

package apis

// Config carries read-only downcast-surface knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// VerifyUnchecked makes the unchecked cast/handle operations re-run the
	// identity check and panic on mismatch. This is a debugging aid: the
	// documented contract of the unchecked operations remains "undefined
	// behavior on mismatch", and production code must not rely on the panic.
	VerifyUnchecked bool

	// QualifiedNames controls diagnostic type names. If true, names use the
	// full import path ("example.com/pkg/sub.T"); otherwise the last path
	// segment ("sub.T"). Token equality is unaffected either way.
	QualifiedNames bool
}
