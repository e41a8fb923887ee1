package tokenizer

// recognizeMention, recognizeCommand, recognizeHashTag and
// recognizeUserSticker implement the four prefix-token recognizers of
// §4.7. Mention, Command and HashTag share a shape: word-bound (or, for
// HashTag, chained), a one-rune prefix, an identifier body, and an
// acceptance rule that lets a bare prefix through when it is
// immediately followed by a delimiter (so an empty "@" can drive
// mention autocomplete). UserSticker differs; see its own comment.

func recognizeMention(s *scannerState) bool {
	if s.opts.Mention == MentionDisabled {
		return false
	}
	if !s.atWordBound() {
		return false
	}
	start := s.pos
	if !s.consumeRune('@') {
		return false
	}
	bodyStart := s.pos
	bodyPred := isIdentifierUnicode
	if s.opts.Mention == MentionStrict {
		bodyPred = isIdentifier
	}
	s.consumeWhile(bodyPred)
	if s.pos == bodyStart && !isDelimiter(s.peek()) {
		s.pos = start
		return false
	}
	s.push(Token{
		Kind:    KindMention,
		Value:   s.input[start:s.pos],
		Format:  s.currentFormat(),
		Mention: s.input[bodyStart:s.pos],
	})
	return true
}

func recognizeCommand(s *scannerState) bool {
	if !s.opts.Command {
		return false
	}
	if !s.atWordBound() {
		return false
	}
	start := s.pos
	if !s.consumeRune('/') {
		return false
	}
	bodyStart := s.pos
	s.consumeWhile(isIdentifier)
	if s.pos == bodyStart && !isDelimiter(s.peek()) {
		s.pos = start
		return false
	}
	s.push(Token{
		Kind:    KindCommand,
		Value:   s.input[start:s.pos],
		Format:  s.currentFormat(),
		Command: s.input[bodyStart:s.pos],
	})
	return true
}

func recognizeHashTag(s *scannerState) bool {
	if !s.opts.HashTag {
		return false
	}
	chained := len(s.tokens) > 0 && s.tokens[len(s.tokens)-1].Kind == KindHashTag
	if !chained && !s.atWordBound() {
		return false
	}
	start := s.pos
	if !s.consumeRune('#') {
		return false
	}
	bodyStart := s.pos
	s.consumeWhile(isIdentifier)
	if s.pos == bodyStart && !isDelimiter(s.peek()) {
		s.pos = start
		return false
	}
	s.push(Token{
		Kind:    KindHashTag,
		Value:   s.input[start:s.pos],
		Format:  s.currentFormat(),
		HashTag: s.input[bodyStart:s.pos],
	})
	return true
}

// recognizeUserSticker matches #u<id>s#; it has no word-boundary
// requirement, but must find a closing "s#" or it rewinds entirely.
func recognizeUserSticker(s *scannerState) bool {
	if !s.opts.UserSticker {
		return false
	}
	start := s.pos
	if s.peek() != '#' || s.peekAt(1) != 'u' {
		return false
	}
	s.next()
	s.next()
	idStart := s.pos
	s.consumeWhile(isNumber) // sticker ids are numeric; alnum would swallow a closer's leading "s"
	idEnd := s.pos
	if s.peek() != 's' || s.peekAt(1) != '#' {
		s.pos = start
		return false
	}
	s.next()
	s.next()
	s.push(Token{
		Kind:      KindUserSticker,
		Value:     s.input[start:s.pos],
		Format:    s.currentFormat(),
		StickerID: s.input[idStart:idEnd],
	})
	return true
}
