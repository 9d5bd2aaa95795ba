// SPDX-License-Identifier: MIT

package numerr

import "sync/atomic"

// process-wide bridge used by package-level entry points of lvnum.
var defaultBridge atomic.Pointer[Bridge]

func init() { defaultBridge.Store(NewBridge()) }

// Default returns the process-wide bridge.
func Default() *Bridge { return defaultBridge.Load() }

// SetDefault replaces the process-wide bridge and returns the previous one.
// A nil b is ignored.
func SetDefault(b *Bridge) *Bridge {
	if b == nil {
		return Default()
	}

	return defaultBridge.Swap(b)
}

// Init switches the process-wide bridge ON (true) or OFF (false).
func Init(on bool) {
	if on {
		Default().On()
		return
	}
	Default().Off()
}

// Call runs fn under the process-wide bridge.
func Call(op string, fn func(f *Frame) error) error { return Default().Call(op, fn) }
