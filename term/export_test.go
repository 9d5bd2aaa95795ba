package term

// ResizeTo applies a size change the way a SIGWINCH would.
func (s *Screen) ResizeTo(rows, cols int) {
	s.mu.Lock()
	s.resize(rows, cols)
	s.mu.Unlock()
}
