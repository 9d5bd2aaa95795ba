// SPDX-License-Identifier: MIT

package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	xterm "golang.org/x/term"
)

var errNilStream = errors.New("term: Open: nil stream")

// fder is implemented by *os.File.
type fder interface{ Fd() uintptr }

// terminalFd returns the descriptor behind v if it is a terminal, else -1.
func terminalFd(v any) int {
	f, ok := v.(fder)
	if !ok {
		return -1
	}
	fd := int(f.Fd())
	if !xterm.IsTerminal(fd) {
		return -1
	}

	return fd
}

// Screen is the whole terminal: streams, back buffer and windows.
type Screen struct {
	mu sync.Mutex

	in   *bufio.Reader
	out  io.Writer
	inFd int // -1 unless the input is a terminal
	fd   int // -1 unless the output is a terminal

	saved *xterm.State // cooked state while raw

	front, back grid
	full        bool    // next Refresh repaints everything
	focus       *Window // window whose cursor Refresh shows
	cy, cx      int     // terminal cursor after the last Refresh
	std         *Window

	resized  chan struct{}
	stopWinc func()
	logger   *log.Logger
	closed   bool
}

// Open builds a Screen over in and out. If out is a terminal its size is
// used unless WithSize is given, and size changes are tracked on Unix.
// The screen starts cleared; nothing is written until Refresh.
func Open(in io.Reader, out io.Writer, opts ...Option) (*Screen, error) {
	if in == nil || out == nil {
		return nil, errNilStream
	}
	o := gatherOptions(opts...)

	s := &Screen{
		in:      bufio.NewReader(in),
		out:     out,
		inFd:    terminalFd(in),
		fd:      terminalFd(out),
		full:    true,
		resized: make(chan struct{}, 1),
		logger:  o.logger,
	}
	rows, cols := o.rows, o.cols
	if s.fd >= 0 && !o.fixed {
		c, r, err := xterm.GetSize(s.fd)
		if err != nil {
			return nil, fmt.Errorf("term: Open: %w", err)
		}
		rows, cols = r, c
	}
	s.front, s.back = newGrid(rows, cols), newGrid(rows, cols)
	s.std = &Window{scr: s, rows: rows, cols: cols}
	s.focus = s.std
	if s.fd >= 0 && !o.fixed {
		s.stopWinc = watchResize(s.onResize)
	}

	return s, nil
}

// Stdscr returns the window covering the whole screen.
func (s *Screen) Stdscr() *Window { return s.std }

// Size returns the current screen size.
func (s *Screen) Size() (rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.back.rows, s.back.cols
}

// Resized delivers a value after each terminal size change.
// Pending notifications coalesce.
func (s *Screen) Resized() <-chan struct{} { return s.resized }

// Raw puts the input terminal in raw mode. Calling it twice is harmless.
func (s *Screen) Raw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.inFd < 0 {
		return ErrNotTerminal
	}
	if s.saved != nil {
		return nil
	}
	st, err := xterm.MakeRaw(s.inFd)
	if err != nil {
		return fmt.Errorf("term: Raw: %w", err)
	}
	s.saved = st

	return nil
}

// Cooked restores the input mode saved by Raw.
func (s *Screen) Cooked() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.inFd < 0 {
		return ErrNotTerminal
	}

	return s.restore()
}

func (s *Screen) restore() error {
	if s.saved == nil {
		return nil
	}
	if err := xterm.Restore(s.inFd, s.saved); err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	s.saved = nil

	return nil
}

// Refresh writes every cell changed since the last Refresh and leaves the
// terminal cursor at the cursor of the window drawn to last.
func (s *Screen) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	var b strings.Builder
	if s.full {
		b.WriteString("\x1b[H\x1b[2J")
	}
	diff(&b, s.front, s.back, s.full)
	s.full = false

	y, x := s.focus.abs(s.focus.cy, s.focus.cx)
	if b.Len() > 0 || y != s.cy || x != s.cx {
		fmt.Fprintf(&b, "\x1b[%d;%dH", y+1, x+1)
		s.cy, s.cx = y, x
	}
	if b.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(s.out, b.String())

	return err
}

// Beep rings the terminal bell.
func (s *Screen) Beep() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	_, err := io.WriteString(s.out, "\a")

	return err
}

// Close stops resize tracking, resets attributes and restores the input
// mode. Windows are unusable afterwards. Closing twice is a no-op.
func (s *Screen) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.stopWinc != nil {
		s.stopWinc()
	}

	_, werr := io.WriteString(s.out, AttrNormal.sequence())
	rerr := s.restore()
	if rerr != nil && s.logger != nil {
		s.logger.Printf("term: Close: %v", rerr)
	}
	if rerr != nil {
		return rerr
	}

	return werr
}

// onResize re-reads the terminal size and resizes the buffers.
func (s *Screen) onResize() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	cols, rows, err := xterm.GetSize(s.fd)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("term: resize: %v", err)
		}
		s.mu.Unlock()
		return
	}
	if rows != s.back.rows || cols != s.back.cols {
		if s.logger != nil {
			s.logger.Printf("term: resize %dx%d -> %dx%d", s.back.rows, s.back.cols, rows, cols)
		}
		s.resize(rows, cols)
	}
	s.mu.Unlock()

	select {
	case s.resized <- struct{}{}:
	default:
	}
}

// resize must be called with s.mu held.
func (s *Screen) resize(rows, cols int) {
	s.back = s.back.resized(rows, cols)
	s.front = newGrid(rows, cols)
	s.full = true
	s.std.rows, s.std.cols = rows, cols
	s.std.cy, s.std.cx = min(s.std.cy, rows-1), min(s.std.cx, cols-1)
}
