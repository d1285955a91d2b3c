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

// Package rtcfg mirrors the runtime-relevant configuration knobs as atomics.
//
// The root package owns the published Config snapshot, but the cast and
// handle packages sit below it in the import graph. Whatever knob those
// packages must read on the hot path is mirrored here; the root package
// writes the mirror whenever it publishes a new snapshot.
package rtcfg

import "sync/atomic"

// verifyUnchecked mirrors apis.Config.VerifyUnchecked.
var verifyUnchecked atomic.Bool

// SetVerifyUnchecked updates the mirrored VerifyUnchecked knob.
func SetVerifyUnchecked(on bool) { verifyUnchecked.Store(on) }

// VerifyUnchecked reports whether unchecked operations should re-check.
func VerifyUnchecked() bool { return verifyUnchecked.Load() }
