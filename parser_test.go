package tokenizer

import (
	"fmt"
	"strings"
	"testing"
)

// dump renders a token stream as a compact, order-preserving string for
// table assertions, in the spirit of the teacher's Debug output: enough
// structure to catch a wrong Kind or field, not so much that every test
// drowns in boilerplate.
func dump(toks []Token) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(dumpOne(t))
	}
	sb.WriteByte(']')
	return sb.String()
}

func dumpOne(t Token) string {
	var s string
	switch t.Kind {
	case KindText:
		s = fmt.Sprintf("text %q", t.Value)
		for _, e := range t.Emoji {
			s += fmt.Sprintf(" +emoji(%d,%d,%q)", e.From, e.To, e.Emoji)
		}
	case KindNewline:
		s = fmt.Sprintf("newline %q", t.Value)
	case KindMention:
		s = fmt.Sprintf("mention %q", t.Mention)
	case KindCommand:
		s = fmt.Sprintf("command %q", t.Command)
	case KindHashTag:
		s = fmt.Sprintf("hashtag %q", t.HashTag)
	case KindUserSticker:
		s = fmt.Sprintf("sticker %q", t.StickerID)
	case KindMarkdown:
		s = fmt.Sprintf("markdown %q", string(t.Marker))
	case KindLink:
		s = fmt.Sprintf("link %q -> %q auto=%v", t.Value, t.LinkURL, t.Auto)
	default:
		s = "emoji"
	}
	if t.Format != 0 {
		s += fmt.Sprintf(" f%d", t.Format)
	}
	return "[" + s + "]"
}

func test(t *testing.T, input string, want string) {
	t.Helper()
	got := dump(Parse(input, DefaultOptions()))
	if got != want {
		t.Errorf("parsing %q:\n got  %s\n want %s", input, got, want)
	}
}

func TestText(t *testing.T) {
	test(t, "hi", `[[text "hi"]]`)
	test(t, "", `[]`)
}

func TestNewline(t *testing.T) {
	test(t, "a\r\nb", `[[text "a"] [newline "\r\n"] [text "b"]]`)
	test(t, "a\nb", `[[text "a"] [newline "\n"] [text "b"]]`)
}

func TestMarkdownBalanced(t *testing.T) {
	test(t, "*bold*", `[[markdown "*"] [text "bold" f1] [markdown "*" f1]]`)
	test(t, "_it_", `[[markdown "_"] [text "it" f2] [markdown "_" f2]]`)
}

func TestMarkdownUnclosedDowngradesToText(t *testing.T) {
	test(t, "*oops", `[[text "*oops"]]`)
}

func TestMarkdownRejectedCloseBecomesPendingText(t *testing.T) {
	// the closing "*" is not followed by a delimiter, so it is not
	// accepted as a close and the whole run merges back into plain text
	test(t, "*a*b", `[[text "*a*b"]]`)
}

func TestMention(t *testing.T) {
	test(t, "@alice hello", `[[mention "alice"] [text " hello"]]`)
	test(t, "hi @bob", `[[text "hi "] [mention "bob"]]`)
}

func TestCommand(t *testing.T) {
	test(t, "/start now", `[[command "start"] [text " now"]]`)
}

func TestHashTagChaining(t *testing.T) {
	test(t, "#a#b", `[[hashtag "a"] [hashtag "b"]]`)
	test(t, "x#a y", `[[text "x#a y"]]`)
}

func TestUserSticker(t *testing.T) {
	test(t, "#u123s#", `[[sticker "123"]]`)
	test(t, "hi #u7s# bye", `[[text "hi "] [sticker "7"] [text " bye"]]`)
}

func TestTextEmojiAlias(t *testing.T) {
	test(t, "hi :) bye", `[[text "hi :) bye" +emoji(3,5,"🙂")]]`)
}

func TestLinkBareDomain(t *testing.T) {
	test(t, "visit ok.ru now", `[[text "visit "] [link "ok.ru" -> "http://ok.ru" auto=true] [text " now"]]`)
}

func TestLinkMailto(t *testing.T) {
	test(t, "mailto:test@mail.ru", `[[link "mailto:test@mail.ru" -> "mailto:test@mail.ru" auto=false]]`)
}

func TestLinkMailtoDottedLocalPart(t *testing.T) {
	// a dot inside the local part must not truncate the scan before '@'
	test(t, "mailto:john.doe@example.com", `[[link "mailto:john.doe@example.com" -> "mailto:john.doe@example.com" auto=false]]`)
}

func TestLinkBareEmail(t *testing.T) {
	test(t, "ping test@mail.ru please", `[[text "ping "] [link "test@mail.ru" -> "mailto:test@mail.ru" auto=true] [text " please"]]`)
}

func TestLinkMagnet(t *testing.T) {
	test(t, "magnet:?xt=urn:btih:abc123", `[[link "magnet:?xt=urn:btih:abc123" -> "magnet:?xt=urn:btih:abc123" auto=false]]`)
}

func TestLinkProtocol(t *testing.T) {
	test(t, "see https://example.com/a?b=1 now", `[[text "see "] [link "https://example.com/a?b=1" -> "https://example.com/a?b=1" auto=false] [text " now"]]`)
}

func TestLinkTrailingPrintableStripRecoversDomain(t *testing.T) {
	// the trailing "!" is stripped as a printable-special tail, and the
	// TLD check must be rerun against the shorter "ok.ru" label, not
	// the original "ru!" label it was first computed against
	test(t, "check ok.ru! now", `[[text "check "] [link "ok.ru" -> "http://ok.ru" auto=true] [text "! now"]]`)
}

func TestLinkSentenceDotNotConsumed(t *testing.T) {
	// a trailing sentence period must not be folded into the domain
	test(t, "go to ok.ru. thanks", `[[text "go to "] [link "ok.ru" -> "http://ok.ru" auto=true] [text ". thanks"]]`)
}

// TestRoundTrip checks invariant 1: concatenating every Token.Value
// reproduces the input exactly, across a mix of every recognizer.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text, nothing special.",
		"*bold* and _italic_ and ~strike~ and `code`",
		"*oops unclosed",
		"@alice /start #tag #u42s# :) ok.ru mailto:a@b.ru magnet:?xt=x",
		"line one\r\nline two\nline three\f",
		"#a#b#c chained hashtags",
		"nested (parens) and [brackets] in http://example.com/(a)/[b]",
	}
	for _, in := range inputs {
		toks := Parse(in, DefaultOptions())
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.Value)
		}
		if got := sb.String(); got != in {
			t.Errorf("round-trip mismatch for %q: got %q", in, got)
		}
	}
}

// TestMarkdownStaysBalanced checks that Markdown markers pair up: an
// opener snapshots its Format before its own bit is set and a closer
// while that bit is still set, so for every marker the openers (bit
// clear) and closers (bit set) must cancel out.
func TestMarkdownStaysBalanced(t *testing.T) {
	toks := Parse("a *b* c _d_ e", DefaultOptions())
	openCount := map[rune]int{}
	for _, tok := range toks {
		if tok.Kind != KindMarkdown {
			continue
		}
		bit := markdownFormat[tok.Marker]
		if tok.Format&bit != 0 {
			openCount[tok.Marker]++
		} else {
			openCount[tok.Marker]--
		}
	}
	for m, n := range openCount {
		if n != 0 {
			t.Errorf("marker %q unbalanced: net %d", m, n)
		}
	}
}

// TestNoInfiniteLoopOnExoticInput exercises the early-return path of
// every recognizer with inputs that look like a prefix but never
// complete; Parse must still make monotonic progress and return.
func TestNoInfiniteLoopOnExoticInput(t *testing.T) {
	inputs := []string{
		"*", "_", "~", "`", "@", "/", "#", "#u", "#us#", "mailto:", "magnet:",
		"http://", "ok.", ".", "...", "@@@", "####", strings.Repeat("*", 50),
	}
	for _, in := range inputs {
		toks := Parse(in, DefaultOptions())
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.Value)
		}
		if got := sb.String(); got != in {
			t.Errorf("round-trip mismatch for exotic input %q: got %q", in, got)
		}
	}
}
