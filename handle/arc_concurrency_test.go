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

package handle_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/davll/mopa-revised/handle"
)

// TestConcurrentArcDowncast verifies that independent holders of clones of
// the same cell may clone, downcast, read, and release concurrently, and
// that the count balances out exactly.
func TestConcurrentArcDowncast(t *testing.T) {
	root := handle.NewArc[person](benny{kilogramsOfFood: kg})

	workers := runtime.GOMAXPROCS(0) * 4
	const iters = 2000

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				h := root.Clone()

				// Failed attempt must not disturb the count or the handle.
				_, h, ok := handle.ArcAs[chris](h)
				if ok {
					t.Error("ArcAs[chris] matched a benny payload")
					return
				}

				rb, _, ok := handle.ArcAs[benny](h)
				if !ok {
					t.Error("ArcAs[benny] failed")
					return
				}
				if got := handle.ArcDeref(rb).kilogramsOfFood; got != 13 {
					t.Errorf("payload = %d, want 13", got)
					return
				}
				rb.Release()
			}
		}()
	}
	wg.Wait()

	// Every per-iteration clone was downcast and released: only the root
	// handle remains.
	if got := root.Strong(); got != 1 {
		t.Fatalf("final count = %d, want 1", got)
	}
}
