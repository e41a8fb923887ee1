package tokenizer

import "strings"

// fragMask selects which character classes fragment is willing to
// consume, and whether it should validate a trailing TLD.
type fragMask uint8

const (
	fmDot fragMask = 1 << iota
	fmASCII
	fmUnicode
	fmPrintable
	fmTLD
)

// fragResult records what fragment actually observed while walking.
type fragResult uint8

const (
	frDot fragResult = 1 << iota
	frASCII
	frUnicode
	frPrintable
	frOctetOverflow
	frMiddlePrintable
	frTrailingPrintable
	frValidTLD
)

func isEmailLocalPart(r fragResult) bool {
	return r&(frASCII|frPrintable) != 0 && r&frUnicode == 0 && r&frOctetOverflow == 0
}

func isDomain(r fragResult) bool {
	return r&frDot != 0 && r&frValidTLD != 0 &&
		r&(frASCII|frUnicode) != 0 && r&frPrintable == 0 && r&frOctetOverflow == 0
}

func isPrintableSpecial(c rune) bool {
	switch c {
	case '!', '$', '%', '&', '*', '+', '=', '^', '`', '{', '|', '}', '~':
		return true
	}
	return false
}

func isHexDigit(c rune) bool {
	if isNumber(c) {
		return true
	}
	u := asciiUpper(c)
	return u >= 'A' && u <= 'F'
}

func isClosingMarkdownPeek(s *scannerState) bool {
	c := s.peek()
	return isSimpleFormatMarker(c) && s.format&markdownFormat[c] != 0
}

// fragment is the shared label-walk primitive of §4.9: it consumes a
// run of dot-separated labels built from the character classes mask
// allows, and reports what it saw as a fragResult bitset.
func fragment(s *scannerState, mask fragMask) fragResult {
	var result fragResult
	labelLen := 0
	labelStart := s.pos
	everPrintable := false
	lastWasPrintable := false
	middlePrintable := false

	for {
		if isKeycapStart(s) || isClosingMarkdownPeek(s) {
			break
		}
		c := s.peek()
		if c == eof {
			break
		}
		if c == '.' {
			if mask&fmDot == 0 {
				break
			}
			if labelLen == 0 {
				break // a dot cannot begin a label
			}
			if isDelimiter(s.peekAt(1)) {
				break // end-of-sentence dot: leave it unconsumed
			}
			if labelLen > 63 {
				result |= frOctetOverflow
			}
			s.next()
			result |= frDot
			labelLen = 0
			labelStart = s.pos
			lastWasPrintable = false
			continue
		}
		switch {
		case mask&fmASCII != 0 && isIdentifier(c):
			if everPrintable {
				middlePrintable = true
			}
			lastWasPrintable = false
			s.next()
			labelLen++
			result |= frASCII
		case mask&fmUnicode != 0 && isUnicodeAlpha(c):
			if everPrintable {
				middlePrintable = true
			}
			lastWasPrintable = false
			s.next()
			labelLen++
			result |= frUnicode
		case mask&fmPrintable != 0 && isPrintableSpecial(c):
			everPrintable = true
			lastWasPrintable = true
			s.next()
			labelLen++
			result |= frPrintable
		default:
			goto done
		}
	}
done:
	if labelLen > 63 {
		result |= frOctetOverflow
	}
	if middlePrintable {
		result |= frMiddlePrintable
	}
	if lastWasPrintable {
		result |= frTrailingPrintable
	}
	if mask&fmTLD != 0 && s.pos > labelStart {
		tld := strings.ToLower(s.input[labelStart:s.pos])
		if s.opts.TLDs[tld] {
			result |= frValidTLD
		}
	}
	return result
}

// stripTrailingPrintable backs pos up over a trailing run of printable
// special characters (all single-byte ASCII), used by the email-or-
// address ambiguity fixup (§4.9, §7 "ok.ru?" scenario).
func stripTrailingPrintable(input string, start, end int) int {
	p := end
	for p > start {
		c := rune(input[p-1])
		if !isPrintableSpecial(c) {
			break
		}
		p--
	}
	return p
}

func consumeLiteralCI(s *scannerState, lit string) bool {
	start := s.pos
	for _, want := range lit {
		c := s.peek()
		if c == eof || asciiUpper(c) != asciiUpper(want) {
			s.pos = start
			return false
		}
		s.next()
	}
	return true
}

// consumePort matches :digits, requiring at least one digit.
func consumePort(s *scannerState) bool {
	start := s.pos
	if !s.consumeRune(':') {
		return false
	}
	digitsStart := s.pos
	for !isKeycapStart(s) && s.consumePred(isNumber) {
	}
	if s.pos == digitsStart {
		s.pos = start
		return false
	}
	return true
}

// consumePath matches /segment, resetting bracket counters first.
func consumePath(s *scannerState) bool {
	if s.peek() != '/' {
		return false
	}
	s.resetBrackets()
	s.next()
	consumeSegment(s)
	return true
}

// consumeQueryString matches ?segment, unless the ? sits at a word
// edge (EOF or whitespace right after it).
func consumeQueryString(s *scannerState) bool {
	if s.peek() != '?' {
		return false
	}
	n := s.peekAt(1)
	if n == eof || isWhitespace(n) {
		return false
	}
	s.resetBrackets()
	s.next()
	consumeSegment(s)
	return true
}

// consumeHash matches #segment.
func consumeHash(s *scannerState) bool {
	if s.peek() != '#' {
		return false
	}
	s.resetBrackets()
	s.next()
	consumeSegment(s)
	return true
}

func wordEdgeAfterCurrent(s *scannerState) bool {
	return isDelimiter(s.peekAt(1))
}

// consumeSegment walks a path/query/hash body: percent-escapes,
// unreserved characters, the ;:@&= search characters, '/', and
// balanced brackets. Trailing sentence punctuation and unbalanced
// closing brackets are excluded when they sit at a word edge.
func consumeSegment(s *scannerState) {
	for {
		if isKeycapStart(s) || isClosingMarkdownPeek(s) {
			return
		}
		c := s.peek()
		switch c {
		case eof:
			return
		case '!', ',', '.', ';', '?':
			if wordEdgeAfterCurrent(s) {
				return
			}
			s.next()
		case '(', '[', '{':
			s.bracketInc(c)
			s.next()
		case ')', ']', '}':
			if s.bracketOpen(c) {
				s.bracketDec(c)
				s.next()
			} else if !wordEdgeAfterCurrent(s) {
				s.next() // unbalanced mid-word: still consume
			} else {
				return // trailing unbalanced close: exclude
			}
		case '%':
			if isHexDigit(s.peekAt(1)) && isHexDigit(s.peekAt(2)) {
				s.next()
				s.next()
				s.next()
			} else {
				s.next()
			}
		case ':', '@', '&', '=', '/':
			s.next()
		default:
			if isUnicodeAlpha(c) || isNumber(c) || strings.ContainsRune("$-_+*'", c) {
				s.next()
			} else {
				return
			}
		}
	}
}

func (s *scannerState) bracketInc(c rune) {
	switch c {
	case '(':
		s.brackets.paren++
	case '[':
		s.brackets.bracket++
	case '{':
		s.brackets.brace++
	}
}

func (s *scannerState) bracketOpen(c rune) bool {
	switch c {
	case ')':
		return s.brackets.paren > 0
	case ']':
		return s.brackets.bracket > 0
	case '}':
		return s.brackets.brace > 0
	}
	return false
}

func (s *scannerState) bracketDec(c rune) {
	switch c {
	case ')':
		s.brackets.paren--
	case ']':
		s.brackets.bracket--
	case '}':
		s.brackets.brace--
	}
}

// consumeLogin matches an optional "user:pass@"-shaped login section
// ahead of a domain, terminated by @; rewinds entirely if no @ is found.
func consumeLogin(s *scannerState) bool {
	start := s.pos
	for {
		c := s.peek()
		if c == '@' {
			s.next()
			return true
		}
		if c == eof {
			break
		}
		if strings.ContainsRune(";?&=:", c) || isUnicodeAlpha(c) || isNumber(c) ||
			strings.ContainsRune("$-_.+!*'()[],", c) {
			s.next()
			continue
		}
		break
	}
	s.pos = start
	return false
}

const domainMask = fmDot | fmASCII | fmUnicode | fmTLD

// emailFromLocalPart consumes "@domain" after an already-scanned local
// part, emitting a mailto: Link on success. On failure it rewinds to
// just before the '@' it tried (or leaves pos untouched if there was
// no '@' to begin with).
func emailFromLocalPart(s *scannerState, valueStart int, localResult fragResult, auto bool) bool {
	if !isEmailLocalPart(localResult) {
		return false
	}
	if s.peek() != '@' {
		return false
	}
	atPos := s.pos
	s.next()
	domainResult := fragment(s, domainMask)
	if !isDomain(domainResult) {
		s.pos = atPos
		return false
	}
	consumeQueryString(s)
	value := s.input[valueStart:s.pos]
	linkURL := value
	if !strings.HasPrefix(strings.ToLower(value), "mailto:") {
		linkURL = "mailto:" + value
	}
	s.push(Token{
		Kind:    KindLink,
		Value:   value,
		Format:  s.currentFormat(),
		LinkURL: linkURL,
		Auto:    auto,
		Sticky:  s.opts.StickyLink,
	})
	return true
}

func hasScheme(value string) bool {
	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "mailto:") {
		return true
	}
	if len(value) == 0 || !isAlpha(rune(value[0])) {
		return false
	}
	for i := 1; i < len(value); i++ {
		c := rune(value[i])
		if c == ':' {
			return true
		}
		if !isAlphanumeric(c) && c != '+' && c != '.' && c != '-' {
			return false
		}
	}
	return false
}

type linkOutcome int

const (
	outcomeNo linkOutcome = iota
	outcomeSkip
	outcomeYes
)

// recognizeLink implements §4.9's top-level dispatch: magnet,
// strict-email, strict-address, email-or-address, in that order.
func recognizeLink(s *scannerState) bool {
	if !s.opts.Link || !s.atWordBound() {
		return false
	}
	if o := recognizeMagnet(s); o != outcomeNo {
		return true
	}
	if o := recognizeStrictEmail(s); o != outcomeNo {
		return true
	}
	if o := recognizeStrictAddress(s); o != outcomeNo {
		return true
	}
	if o := recognizeEmailOrAddress(s); o != outcomeNo {
		return true
	}
	return false
}

func recognizeMagnet(s *scannerState) linkOutcome {
	start := s.pos
	if !consumeLiteralCI(s, "magnet:") {
		return outcomeNo
	}
	consumeQueryString(s)
	value := s.input[start:s.pos]
	s.push(Token{
		Kind:    KindLink,
		Value:   value,
		Format:  s.currentFormat(),
		LinkURL: value,
		Sticky:  s.opts.StickyLink,
	})
	return outcomeYes
}

func recognizeStrictEmail(s *scannerState) linkOutcome {
	start := s.pos
	if !consumeLiteralCI(s, "mailto:") {
		return outcomeNo
	}
	localResult := fragment(s, fmDot|fmASCII|fmUnicode|fmPrintable|fmTLD)
	if emailFromLocalPart(s, start, localResult, false) {
		return outcomeYes
	}
	s.markPending(start)
	return outcomeSkip
}

func recognizeStrictAddress(s *scannerState) linkOutcome {
	start := s.pos
	if s.protocolTrie == nil || !s.protocolTrie.consume(s) {
		return outcomeNo
	}
	loginConsumed := consumeLogin(s)
	domainStart := s.pos
	domainResult := fragment(s, domainMask)
	if s.pos == domainStart && !loginConsumed {
		s.markPending(start)
		return outcomeSkip
	}
	_ = domainResult
	consumePort(s)
	consumePath(s)
	consumeQueryString(s)
	consumeHash(s)
	value := s.input[start:s.pos]
	linkURL := value
	if strings.HasPrefix(value, "//") {
		linkURL = "http:" + value
	}
	s.push(Token{
		Kind:    KindLink,
		Value:   value,
		Format:  s.currentFormat(),
		LinkURL: linkURL,
		Sticky:  s.opts.StickyLink,
	})
	return outcomeYes
}

func recognizeEmailOrAddress(s *scannerState) linkOutcome {
	start := s.pos
	prefixResult := fragment(s, fmDot|fmASCII|fmUnicode|fmPrintable|fmTLD)
	prefixEnd := s.pos

	if emailFromLocalPart(s, start, prefixResult, true) {
		return outcomeYes
	}
	s.pos = prefixEnd

	result := prefixResult
	if result&frTrailingPrintable != 0 && result&frMiddlePrintable == 0 {
		newEnd := stripTrailingPrintable(s.input, start, prefixEnd)
		s.pos = newEnd
		// the TLD validity prefixResult carries was checked against the
		// label as it stood before this strip (e.g. "ru!" for "ok.ru!"),
		// so it must be rechecked against the now-shorter label.
		result &^= frPrintable | frTrailingPrintable | frValidTLD
		if label := s.input[start:newEnd]; len(label) > 0 {
			tail := label
			if i := strings.LastIndexByte(label, '.'); i >= 0 {
				tail = label[i+1:]
			}
			if s.opts.TLDs[strings.ToLower(tail)] {
				result |= frValidTLD
			}
		}
	}

	if isDomain(result) {
		consumePort(s)
		consumePath(s)
		consumeQueryString(s)
		consumeHash(s)
		value := s.input[start:s.pos]
		linkURL := value
		if !hasScheme(value) {
			linkURL = "http://" + value
		}
		s.push(Token{
			Kind:    KindLink,
			Value:   value,
			Format:  s.currentFormat(),
			LinkURL: linkURL,
			Auto:    true,
			Sticky:  s.opts.StickyLink,
		})
		return outcomeYes
	}

	if s.pos > start {
		s.markPending(start)
		return outcomeSkip
	}
	s.pos = start
	return outcomeNo
}
