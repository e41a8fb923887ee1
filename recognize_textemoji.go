package tokenizer

// recognizeTextEmoji implements §4.6: trie lookup of text-emoji alias
// keys (e.g. ":)") at a word boundary, accepted only when the match is
// itself followed by a delimiter.
func recognizeTextEmoji(s *scannerState) bool {
	if !s.opts.TextEmoji || s.aliasTrie == nil {
		return false
	}
	if !s.atWordBound() {
		return false
	}
	start := s.pos
	if !s.aliasTrie.consume(s) {
		return false
	}
	if !isDelimiter(s.peek()) {
		s.pos = start
		return false
	}
	key := s.input[start:s.pos]
	s.pushEmoji(start, s.pos, s.opts.Aliases[key])
	return true
}
