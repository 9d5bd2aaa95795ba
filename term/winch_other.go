// SPDX-License-Identifier: MIT

//go:build !unix

package term

// watchResize is a no-op where SIGWINCH does not exist.
func watchResize(func()) (stop func()) { return func() {} }
