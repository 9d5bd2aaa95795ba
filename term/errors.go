// SPDX-License-Identifier: MIT

package term

import "errors"

var (
	// ErrNotTerminal is returned by operations that need a real terminal.
	ErrNotTerminal = errors.New("term: not a terminal")

	// ErrOutOfBounds reports a position or rectangle outside its window.
	ErrOutOfBounds = errors.New("term: out of bounds")

	// ErrClosed is returned by every operation on a closed Screen.
	ErrClosed = errors.New("term: screen closed")

	// ErrDeleted is returned by every operation on a deleted Window.
	ErrDeleted = errors.New("term: window deleted")

	// ErrHasSubwindows is returned when deleting a window with live subwindows.
	ErrHasSubwindows = errors.New("term: window has subwindows")
)
