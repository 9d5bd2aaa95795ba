// SPDX-License-Identifier: MIT

package term

import (
	"errors"
	"fmt"
	"strings"
)

// Box drawing defaults used when a zero rune is passed.
const (
	defaultHLine = '─'
	defaultVLine = '│'
	cornerUL     = '┌'
	cornerUR     = '┐'
	cornerLL     = '└'
	cornerLR     = '┘'
)

var errDeleteStdscr = errors.New("term: Delete: standard screen")

// Window is a rectangle of a Screen with its own cursor and attributes.
// Windows draw straight into the screen's back buffer, so overlapping
// windows share cells.
type Window struct {
	scr        *Screen
	parent     *Window
	y0, x0     int // absolute origin
	rows, cols int
	cy, cx     int // cursor, window-relative
	attr       Attr
	subs       int // live subwindows
	deleted    bool
}

// NewWindow creates a window of rows×cols at absolute position (y, x).
// A zero rows or cols extends the window to the screen edge.
func (s *Screen) NewWindow(rows, cols, y, x int) (*Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	return s.std.carve(nil, rows, cols, y, x)
}

// SubWindow creates a window of rows×cols at (y, x) relative to w.
// It must fit inside w; w cannot be deleted while it lives.
func (w *Window) SubWindow(rows, cols, y, x int) (*Window, error) {
	unlock, err := w.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	sub, err := w.carve(w, rows, cols, y, x)
	if err != nil {
		return nil, err
	}
	w.subs++

	return sub, nil
}

func (w *Window) carve(parent *Window, rows, cols, y, x int) (*Window, error) {
	if rows == 0 {
		rows = w.rows - y
	}
	if cols == 0 {
		cols = w.cols - x
	}
	if y < 0 || x < 0 || rows < 1 || cols < 1 || y+rows > w.rows || x+cols > w.cols {
		return nil, fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d", ErrOutOfBounds, rows, cols, y, x, w.rows, w.cols)
	}

	return &Window{scr: w.scr, parent: parent, y0: w.y0 + y, x0: w.x0 + x, rows: rows, cols: cols}, nil
}

// Delete releases w. Its cells keep their contents.
func (w *Window) Delete() error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()
	if w == w.scr.std {
		return errDeleteStdscr
	}
	if w.subs > 0 {
		return ErrHasSubwindows
	}
	w.deleted = true
	if w.parent != nil {
		w.parent.subs--
	}
	if w.scr.focus == w {
		w.scr.focus = w.scr.std
	}

	return nil
}

// lock takes the screen lock and validates w.
func (w *Window) lock() (func(), error) {
	w.scr.mu.Lock()
	switch {
	case w.scr.closed:
		w.scr.mu.Unlock()
		return nil, ErrClosed
	case w.deleted:
		w.scr.mu.Unlock()
		return nil, ErrDeleted
	}

	return w.scr.mu.Unlock, nil
}

func (w *Window) abs(y, x int) (int, int) { return w.y0 + y, w.x0 + x }

func (w *Window) put(y, x int, ch rune) {
	ay, ax := w.abs(y, x)
	w.scr.back.set(ay, ax, cell{ch: ch, attr: w.attr})
}

// Size returns the window dimensions.
func (w *Window) Size() (rows, cols int) {
	w.scr.mu.Lock()
	defer w.scr.mu.Unlock()

	return w.rows, w.cols
}

// Cursor returns the window cursor.
func (w *Window) Cursor() (y, x int) {
	w.scr.mu.Lock()
	defer w.scr.mu.Unlock()

	return w.cy, w.cx
}

// Move places the cursor at (y, x).
func (w *Window) Move(y, x int) error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()
	if y < 0 || x < 0 || y >= w.rows || x >= w.cols {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, y, x, w.rows, w.cols)
	}
	w.cy, w.cx = y, x
	w.scr.focus = w

	return nil
}

// AddCh writes ch at the cursor and advances it, wrapping at the right
// edge. '\n' clears the rest of the line and moves to the next one.
// Writing past the bottom-right cell stores the character, leaves the
// cursor there and returns ErrOutOfBounds.
func (w *Window) AddCh(ch rune) error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()

	return w.addch(ch)
}

func (w *Window) addch(ch rune) error {
	w.scr.focus = w
	if ch == '\n' {
		w.clrtoeol()
		if w.cy+1 >= w.rows {
			return ErrOutOfBounds
		}
		w.cy, w.cx = w.cy+1, 0
		return nil
	}

	w.put(w.cy, w.cx, ch)
	w.cx++
	if w.cx < w.cols {
		return nil
	}
	if w.cy+1 < w.rows {
		w.cy, w.cx = w.cy+1, 0
		return nil
	}
	w.cx = w.cols - 1

	return ErrOutOfBounds
}

// AddStr writes s from the cursor.
func (w *Window) AddStr(s string) error { return w.AddNStr(s, -1) }

// AddNStr writes at most n characters of s; a negative n writes all of s.
// It stops at the first character that does not fit.
func (w *Window) AddNStr(s string, n int) error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()

	for _, ch := range s {
		if n == 0 {
			break
		}
		if err = w.addch(ch); err != nil {
			return err
		}
		n--
	}

	return nil
}

// Clear blanks the window, homes the cursor and makes the next Refresh
// repaint the whole screen.
func (w *Window) Clear() error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()

	for y := 0; y < w.rows; y++ {
		for x := 0; x < w.cols; x++ {
			ay, ax := w.abs(y, x)
			w.scr.back.set(ay, ax, blank)
		}
	}
	w.cy, w.cx = 0, 0
	w.scr.full = true

	return nil
}

// ClrToEol blanks from the cursor to the end of its line.
func (w *Window) ClrToEol() error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()
	w.clrtoeol()

	return nil
}

func (w *Window) clrtoeol() {
	for x := w.cx; x < w.cols; x++ {
		ay, ax := w.abs(w.cy, x)
		w.scr.back.set(ay, ax, blank)
	}
}

// Box draws a border along the window edges; zero runes select the
// line-drawing defaults. The cursor does not move.
func (w *Window) Box(vert, horz rune) error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if vert == 0 {
		vert = defaultVLine
	}
	if horz == 0 {
		horz = defaultHLine
	}
	last, right := w.rows-1, w.cols-1
	for x := 1; x < right; x++ {
		w.put(0, x, horz)
		w.put(last, x, horz)
	}
	for y := 1; y < last; y++ {
		w.put(y, 0, vert)
		w.put(y, right, vert)
	}
	w.put(0, 0, cornerUL)
	w.put(0, right, cornerUR)
	w.put(last, 0, cornerLL)
	w.put(last, right, cornerLR)

	return nil
}

// HLine draws up to n copies of ch rightwards from the cursor, stopping at
// the window edge. The cursor does not move.
func (w *Window) HLine(ch rune, n int) error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if ch == 0 {
		ch = defaultHLine
	}
	for x := w.cx; x < w.cols && x-w.cx < n; x++ {
		w.put(w.cy, x, ch)
	}

	return nil
}

// VLine draws up to n copies of ch downwards from the cursor.
func (w *Window) VLine(ch rune, n int) error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if ch == 0 {
		ch = defaultVLine
	}
	for y := w.cy; y < w.rows && y-w.cy < n; y++ {
		w.put(y, w.cx, ch)
	}

	return nil
}

// AttrOn adds a to the attributes of later writes.
func (w *Window) AttrOn(a Attr) error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()
	w.attr |= a

	return nil
}

// AttrOff removes a from the attributes of later writes.
func (w *Window) AttrOff(a Attr) error {
	unlock, err := w.lock()
	if err != nil {
		return err
	}
	defer unlock()
	w.attr &^= a

	return nil
}

// InCh returns the character and attributes stored at (y, x).
func (w *Window) InCh(y, x int) (rune, Attr, error) {
	unlock, err := w.lock()
	if err != nil {
		return 0, 0, err
	}
	defer unlock()

	ay, ax := w.abs(y, x)
	if y < 0 || x < 0 || y >= w.rows || x >= w.cols || ay >= w.scr.back.rows || ax >= w.scr.back.cols {
		return 0, 0, ErrOutOfBounds
	}
	c := w.scr.back.at(ay, ax)

	return c.ch, c.attr, nil
}

// InStr returns line y of the window as stored, trailing blanks removed.
func (w *Window) InStr(y int) (string, error) {
	unlock, err := w.lock()
	if err != nil {
		return "", err
	}
	defer unlock()
	if y < 0 || y >= w.rows {
		return "", ErrOutOfBounds
	}

	var b strings.Builder
	for x := 0; x < w.cols; x++ {
		ay, ax := w.abs(y, x)
		if ay >= w.scr.back.rows || ax >= w.scr.back.cols {
			break
		}
		b.WriteRune(w.scr.back.at(ay, ax).ch)
	}

	return strings.TrimRight(b.String(), " "), nil
}
