// SPDX-License-Identifier: MIT

package term

import (
	"unicode/utf8"
)

const (
	keyBackspace = 0x08
	keyDelete    = 0x7f
)

// GetCh reads one character from the input. It blocks until one arrives
// and returns io.EOF when the input is exhausted. Input is not echoed.
func (s *Screen) GetCh() (rune, error) {
	if err := s.readable(); err != nil {
		return 0, err
	}
	ch, _, err := s.in.ReadRune()

	return ch, err
}

// GetNStr reads a line terminated by '\n' or '\r' and returns at most n
// bytes of it, cut at a character boundary; the rest of the line is
// consumed and dropped. Backspace and DEL erase the last kept character.
// A line ended by the end of input is returned together with io.EOF.
func (s *Screen) GetNStr(n int) (string, error) {
	if err := s.readable(); err != nil {
		return "", err
	}

	buf := make([]byte, 0, max(n, 0))
	for {
		ch, _, err := s.in.ReadRune()
		if err != nil {
			return string(buf), err
		}
		switch {
		case ch == '\n' || ch == '\r':
			return string(buf), nil
		case ch == keyBackspace || ch == keyDelete:
			if len(buf) > 0 {
				_, last := utf8.DecodeLastRune(buf)
				buf = buf[:len(buf)-last]
			}
		case len(buf)+utf8.RuneLen(ch) <= n: // invalid input reads as a 3-byte U+FFFD
			buf = utf8.AppendRune(buf, ch)
		}
	}
}

func (s *Screen) readable() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	return nil
}
