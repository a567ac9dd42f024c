// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package msq

import "code.hybscloud.com/spin"

const (
	// backoffMinDelay is the number of pause units for the first Spin.
	backoffMinDelay = 1
	// backoffMaxDelay caps the per-Spin pause units.
	backoffMaxDelay = 1024
)

// Backoff is an exponential spin strategy for CAS retry loops.
//
// Each Spin busy-waits for the current delay in CPU pause units, then
// doubles the delay up to a fixed cap. Under contention many goroutines
// racing the same CAS degrade throughput; exponential backoff spreads
// the retries in time without introducing blocking or wake-up latency.
//
// The zero value is ready to use. A Backoff must not be shared between
// goroutines: create one per operation call and Reset it at the start
// of every fresh retry loop.
//
//	backoff := msq.Backoff{}
//	for {
//	    if tryCAS() {
//	        return
//	    }
//	    backoff.Spin()
//	}
//
// For waiting on external conditions (an empty queue, a slow peer)
// rather than pacing a retry loop, use the Backoff type from
// [code.hybscloud.com/iox] instead: it is allowed to yield to the
// scheduler, which Spin never does.
type Backoff struct {
	delay uint32
	sw    spin.Wait
}

// Spin busy-waits for the current delay, then doubles it up to the cap.
func (b *Backoff) Spin() {
	if b.delay == 0 {
		b.delay = backoffMinDelay
	}
	for i := uint32(0); i < b.delay; i++ {
		b.sw.Once()
	}
	if b.delay < backoffMaxDelay {
		b.delay <<= 1
	}
}

// Reset restores the delay to its initial unit.
func (b *Backoff) Reset() {
	b.delay = backoffMinDelay
	b.sw.Reset()
}
