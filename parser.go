package tokenizer

// recognizers is the fixed dispatch order of §4.10: the first one that
// consumes input wins for the current position. Markdown is tried
// first since an open/close marker can appear anywhere, including
// immediately before a prefix token; Link is tried last since its
// sub-recognizers are the most willing to consume plain-looking text.
var recognizers = []func(*scannerState) bool{
	recognizeMarkdown,
	recognizeNewline,
	recognizeEmoji,
	recognizeTextEmoji,
	recognizeUserSticker,
	recognizeMention,
	recognizeCommand,
	recognizeHashTag,
	recognizeLink,
}

// Parse tokenizes text into an ordered stream of Tokens. Concatenating
// every returned Token.Value reproduces text exactly (§8 invariant 1).
func Parse(text string, opts Options) []Token {
	s := newScannerState(text, opts)
	for s.hasNext() {
		before := s.pos
		matched := false
		for _, r := range recognizers {
			if r(s) {
				matched = true
				break
			}
		}
		if !matched {
			s.consumeText()
		} else if s.pos == before {
			// A recognizer reported success without advancing; avoid an
			// infinite loop by treating the current code point as text.
			s.consumeText()
		}
	}
	finalizeUnclosedMarkdown(s)
	s.flushText()
	return normalize(s.tokens)
}

// normalize merges adjacent Text tokens carrying identical Format (the
// only thing a Markdown finalize-at-end-of-parse or a sequence of
// emoji/text-emoji pushes can produce), rebasing Emoji indices onto the
// merged Value and dropping any empty result.
func normalize(tokens []Token) []Token {
	if len(tokens) == 0 {
		return tokens
	}
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == KindText && tok.Value == "" && len(tok.Emoji) == 0 {
			continue
		}
		if n := len(out); n > 0 {
			prev := &out[n-1]
			if prev.Kind == KindText && tok.Kind == KindText && prev.Format == tok.Format {
				offset := len(prev.Value)
				prev.Value += tok.Value
				for _, e := range tok.Emoji {
					prev.Emoji = append(prev.Emoji, Emoji{
						From:  e.From + offset,
						To:    e.To + offset,
						Emoji: e.Emoji,
					})
				}
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
