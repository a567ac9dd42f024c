// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package msq

// RaceEnabled is true when the race detector is active.
// Used by stress tests to scale down iteration counts: the detector
// slows atomic-heavy loops by an order of magnitude.
const RaceEnabled = true
