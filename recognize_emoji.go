package tokenizer

// recognizeEmoji implements §4.5: the four Unicode-emoji
// sub-recognizers, tried in order. On success the matched range is
// attached to the pending Text span as an inline Emoji (there is no
// standalone-token mode in this build). Disabled entirely by
// Options.SkipEmoji.
func recognizeEmoji(s *scannerState) bool {
	if s.opts.SkipEmoji {
		return false
	}
	if emojiKeycap(s) {
		return true
	}
	if emojiFlag(s) {
		return true
	}
	if emojiSequence(s) {
		return true
	}
	if emojiForced(s) {
		return true
	}
	return false
}

// emojiKeycap matches [# * 0-9] (VS-16)? U+20E3.
func emojiKeycap(s *scannerState) bool {
	start := s.pos
	c := s.peek()
	if c != '#' && c != '*' && !isNumber(c) {
		return false
	}
	s.next()
	s.consumeRune(variationFE0F)
	if !s.consumeRune(keycapCombiner) {
		s.pos = start
		return false
	}
	s.pushEmoji(start, s.pos, "")
	return true
}

// isKeycapStart is the only sub-recognizer exported to the link
// recognizer (§4.5, §4.9): it non-destructively reports whether the
// scanner is positioned at the start of a keycap sequence, so
// fragment/segment walks can terminate before a keycap glyph.
func isKeycapStart(s *scannerState) bool {
	save := s.pos
	ok := emojiKeycap(s)
	s.pos = save
	return ok
}

// emojiFlag matches a regional-indicator pair, or a tag-sequence flag
// (U+1F3F4 followed by one or more tag chars and a terminator).
func emojiFlag(s *scannerState) bool {
	start := s.pos
	if isRegionalIndicator(s.peek()) && isRegionalIndicator(s.peekAt(1)) {
		s.next()
		s.next()
		s.pushEmoji(start, s.pos, "")
		return true
	}
	if s.peek() == flagBase {
		s.next()
		if !s.consumeWhile(isTagSequenceChar) {
			s.pos = start
			return false
		}
		if !s.consumeRune(tagTerminator) {
			s.pos = start
			return false
		}
		s.pushEmoji(start, s.pos, "")
		return true
	}
	return false
}

// emojiItem matches one base+skin+gender+presentation item of an
// emoji sequence; it requires at least the base code point to match.
func emojiItem(s *scannerState) bool {
	if !isEmojiBase(s.peek()) {
		return false
	}
	s.next()
	if isSkinModifier(s.peek()) {
		s.next()
	}
	if isGenderSign(s.peek()) {
		s.next()
	}
	s.consumeRune(variationFE0F)
	return true
}

// emojiSequence matches one or more emojiItems joined by ZWJ.
func emojiSequence(s *scannerState) bool {
	start := s.pos
	if !emojiItem(s) {
		return false
	}
	for {
		save := s.pos
		if !s.consumeRune(zwj) {
			break
		}
		if !emojiItem(s) {
			s.pos = save
			break
		}
	}
	s.pushEmoji(start, s.pos, "")
	return true
}

// emojiForced matches any code point followed immediately by VS-16,
// forcing emoji presentation on an otherwise-text glyph.
func emojiForced(s *scannerState) bool {
	start := s.pos
	if s.peek() == eof {
		return false
	}
	s.next()
	if !s.consumeRune(variationFE0F) {
		s.pos = start
		return false
	}
	s.pushEmoji(start, s.pos, "")
	return true
}
