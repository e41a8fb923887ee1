package tokenizer

// recognizeNewline implements §4.4: \r\n, \r, \n or \f, each emitted
// as a single Newline token whose Value is the exact sequence consumed.
func recognizeNewline(s *scannerState) bool {
	start := s.pos
	c := s.peek()
	switch c {
	case '\r':
		s.next()
		s.consumeRune('\n')
	case '\n', '\f':
		s.next()
	default:
		return false
	}
	s.push(Token{Kind: KindNewline, Value: s.input[start:s.pos], Format: s.currentFormat()})
	return true
}
