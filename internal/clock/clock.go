// Package clock decouples run timestamps from the wall clock so that tests
// can pin time.
package clock

import "time"

// NowFunc returns the current time; tests override it for determinism.
var NowFunc = time.Now

// Now reports the current time via NowFunc.
func Now() time.Time { return NowFunc() }
