// SPDX-License-Identifier: MIT

//go:build unix

package term

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// watchResize calls fn on every SIGWINCH until the returned stop is called.
func watchResize(fn func()) (stop func()) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, unix.SIGWINCH)

	go func() {
		for {
			select {
			case <-sig:
				fn()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}
