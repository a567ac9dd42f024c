// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

import "testing"

// White-box tests for the Backoff delay progression. The delay field is
// internal state, so these live inside the package.

// TestBackoffDoubling verifies the delay doubles per Spin from the
// initial unit up to the cap.
func TestBackoffDoubling(t *testing.T) {
	b := Backoff{}

	want := uint32(backoffMinDelay)
	for i := range 15 {
		b.Spin()
		want *= 2
		if want > backoffMaxDelay {
			want = backoffMaxDelay
		}
		if b.delay != want {
			t.Fatalf("delay after %d spins: got %d, want %d", i+1, b.delay, want)
		}
	}

	// Further spins stay at the cap
	b.Spin()
	if b.delay != backoffMaxDelay {
		t.Fatalf("delay at cap: got %d, want %d", b.delay, backoffMaxDelay)
	}
}

// TestBackoffReset verifies Reset restores the initial unit.
func TestBackoffReset(t *testing.T) {
	b := Backoff{}

	for range 5 {
		b.Spin()
	}
	b.Reset()
	if b.delay != backoffMinDelay {
		t.Fatalf("delay after Reset: got %d, want %d", b.delay, backoffMinDelay)
	}

	// Progression restarts from the initial unit
	b.Spin()
	if b.delay != 2*backoffMinDelay {
		t.Fatalf("delay after Reset+Spin: got %d, want %d", b.delay, 2*backoffMinDelay)
	}
}

// TestBackoffZeroValue verifies the zero value is ready to use.
func TestBackoffZeroValue(t *testing.T) {
	var b Backoff
	b.Spin() // must not panic, must seed the initial delay
	if b.delay != 2*backoffMinDelay {
		t.Fatalf("delay after first Spin: got %d, want %d", b.delay, 2*backoffMinDelay)
	}
}
