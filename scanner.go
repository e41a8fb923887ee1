package tokenizer

import "unicode/utf8"

// scannerState is the single mutable cursor a parse owns from
// construction to return (§4.3, §5). It is never reentrant: one
// scannerState belongs to exactly one Parse call.
type scannerState struct {
	input string
	pos   int // byte offset into input; Go's UTF-8 decoding already
	// advances by the right number of bytes (1-4) per code point, which
	// is this implementation's equivalent of the spec's "1 or 2 units".

	opts Options

	format      Format
	tokens      []Token
	formatStack []int // indices into tokens, one per still-open Markdown opener

	// pending text span [textStart, textEnd), byte offsets; (-1, -1)
	// when nothing is pending.
	textStart, textEnd int
	emoji              []Emoji // collected for the current pending span

	brackets struct {
		paren, bracket, brace int
	}
	quoteSingle, quoteDouble bool

	aliasTrie    *trie
	protocolTrie *trie
}

func newScannerState(input string, opts Options) *scannerState {
	s := &scannerState{
		input:     input,
		opts:      opts,
		textStart: -1,
		textEnd:   -1,
	}
	if opts.TextEmoji && len(opts.Aliases) > 0 {
		keys := make([]string, 0, len(opts.Aliases))
		for k := range opts.Aliases {
			keys = append(keys, k)
		}
		s.aliasTrie = newTrie(keys, false)
	}
	if opts.Link {
		s.protocolTrie = newTrie(protocolSchemes, true)
	}
	return s
}

func (s *scannerState) hasNext() bool {
	return s.pos < len(s.input)
}

// peek returns the code point at the current position without
// consuming it, or eof past the end of input.
func (s *scannerState) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	c, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return c
}

// peekAt returns the code point n code points ahead of pos (n==0 is
// the same as peek), without consuming anything.
func (s *scannerState) peekAt(n int) rune {
	p := s.pos
	var c rune
	for i := 0; i <= n; i++ {
		if p >= len(s.input) {
			return eof
		}
		var size int
		c, size = utf8.DecodeRuneInString(s.input[p:])
		p += size
	}
	return c
}

// peekPrev returns the code point immediately before pos, or eof at
// the start of input.
func (s *scannerState) peekPrev() rune {
	if s.pos == 0 {
		return eof
	}
	c, _ := utf8.DecodeLastRuneInString(s.input[:s.pos])
	return c
}

// next consumes and returns the code point at pos, advancing past it.
func (s *scannerState) next() rune {
	c, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	return c
}

// consumeRune advances past c if it is next, returning whether it matched.
func (s *scannerState) consumeRune(c rune) bool {
	if s.peek() != c {
		return false
	}
	s.next()
	return true
}

// consumePred advances past one code point matching pred.
func (s *scannerState) consumePred(pred func(rune) bool) bool {
	if c := s.peek(); c != eof && pred(c) {
		s.next()
		return true
	}
	return false
}

// consumeWhile repeats consumePred, reporting whether at least one
// code point was consumed.
func (s *scannerState) consumeWhile(pred func(rune) bool) bool {
	any := false
	for s.consumePred(pred) {
		any = true
	}
	return any
}

// consumeText appends the current code point to the pending-text
// span, toggling the scanner's quote bits on ' and ".
func (s *scannerState) consumeText() {
	if s.textStart == -1 {
		s.textStart = s.pos
	}
	c := s.next()
	s.textEnd = s.pos
	switch c {
	case '\'':
		s.quoteSingle = !s.quoteSingle
	case '"':
		s.quoteDouble = !s.quoteDouble
	}
}

// markPending claims [start, pos) as pending text without re-scanning
// it: used when a recognizer consumed characters but decided, after
// the fact, not to emit a token for them (the Skip outcome, §4.9).
func (s *scannerState) markPending(start int) {
	if s.textStart == -1 || start < s.textStart {
		s.textStart = start
	}
	if s.pos > s.textEnd {
		s.textEnd = s.pos
	}
}

// flushText pushes the pending span as a Text token, if non-empty.
func (s *scannerState) flushText() {
	if s.textStart == -1 || s.textStart == s.textEnd {
		s.textStart, s.textEnd = -1, -1
		s.emoji = nil
		return
	}
	format := FormatNone
	if s.opts.UseFormat {
		format = s.format
	}
	s.tokens = append(s.tokens, Token{
		Kind:   KindText,
		Value:  s.input[s.textStart:s.textEnd],
		Format: format,
		Emoji:  s.emoji,
	})
	s.textStart, s.textEnd = -1, -1
	s.emoji = nil
}

// push flushes any pending text, then appends tok.
func (s *scannerState) push(tok Token) {
	s.flushText()
	s.tokens = append(s.tokens, tok)
}

// pushEmoji extends the pending-text span to cover [from, to) and
// records an inline emoji attachment with indices relative to the
// span's start, per §4.3/§4.5/§4.6.
func (s *scannerState) pushEmoji(from, to int, alias string) {
	if s.textStart == -1 {
		s.textStart = from
	} else if from < s.textStart {
		s.textStart = from
	}
	if to > s.textEnd {
		s.textEnd = to
	}
	s.emoji = append(s.emoji, Emoji{From: from - s.textStart, To: to - s.textStart, Emoji: alias})
}

// currentFormat returns the bitset to stamp on a freshly pushed token:
// the live formatting state when Options.UseFormat is set, else None.
func (s *scannerState) currentFormat() Format {
	if !s.opts.UseFormat {
		return FormatNone
	}
	return s.format
}

// resetBrackets zeroes the bracket counters; called whenever a new
// URL path/query/hash segment starts (invariant 5).
func (s *scannerState) resetBrackets() {
	s.brackets.paren, s.brackets.bracket, s.brackets.brace = 0, 0, 0
}

// lastPendingRune returns the last code point appended to the pending
// span, or eof if nothing is pending.
func (s *scannerState) lastPendingRune() rune {
	if s.textStart == -1 || s.textStart == s.textEnd {
		return eof
	}
	c, _ := utf8.DecodeLastRuneInString(s.input[s.textStart:s.textEnd])
	return c
}

// pendingEndsOnEmoji reports whether the pending span's tail is
// covered by a collected emoji attachment.
func (s *scannerState) pendingEndsOnEmoji() bool {
	if len(s.emoji) == 0 || s.textStart == -1 {
		return false
	}
	last := s.emoji[len(s.emoji)-1]
	return last.To == s.textEnd-s.textStart
}

// atWordBound reports whether the scanner is at a lexical word
// boundary: start of input, the pending text (if any) ends on a
// delimiter or an emoji, or the last emitted token is Markdown or
// Newline (§4.3 glossary "word bound").
func (s *scannerState) atWordBound() bool {
	if s.pos == 0 {
		return true
	}
	if s.textStart != -1 && s.textStart != s.textEnd {
		if s.pendingEndsOnEmoji() {
			return true
		}
		return isDelimiter(s.lastPendingRune())
	}
	if len(s.tokens) == 0 {
		return true
	}
	last := s.tokens[len(s.tokens)-1]
	switch last.Kind {
	case KindMarkdown, KindNewline:
		return true
	case KindText:
		if len(last.Emoji) > 0 && last.Emoji[len(last.Emoji)-1].To == len(last.Value) {
			return true
		}
		if last.Value == "" {
			return true
		}
		c, _ := utf8.DecodeLastRuneInString(last.Value)
		return isDelimiter(c)
	default:
		return false
	}
}
