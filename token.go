/*
Package tokenizer is a small Go library for tokenizing short user-authored
chat/feed messages into a flat, typed, formatted-token stream that a
renderer or editor can consume.

Usage

The main entrypoint to the library is the Parse function, along with
its Options configuration. Parse turns a message string into an
ordered slice of Token values; concatenating every Token.Value
reproduces the input exactly.

There is no AST here: unlike a Markdown parser, Markdown open/close
markers appear as their own Token in the stream and apply a Format
bitmask to the Text tokens between them, so a consumer can render the
stream in one left-to-right pass without building or walking a tree.

The library currently does not come with official renderers for the
token stream; see the HTML-to-token converter and the editor for that,
which are out of scope for this package.
*/
package tokenizer

// Kind is the tag of a Token's variant.
type Kind int

const (
	// KindText is plain, unclassified text.
	KindText Kind = iota
	// KindNewline is one consumed newline sequence (\r\n, \r, \n or \f).
	KindNewline
	// KindEmoji is a standalone Unicode emoji sequence. Parse never
	// emits it: emoji are attached to the enclosing Text token instead
	// (see Token.Emoji).
	KindEmoji
	// KindUserSticker is a #u<id>s# user sticker reference.
	KindUserSticker
	// KindMention is an @name mention.
	KindMention
	// KindCommand is a /cmd bot command.
	KindCommand
	// KindHashTag is a #tag hashtag.
	KindHashTag
	// KindLink is an auto-detected or explicit URL/email/magnet link.
	KindLink
	// KindMarkdown is a single formatting marker (*, _, ~ or `).
	KindMarkdown
)

// Format is a bitset of combinable text styles. Markdown tokens each
// toggle exactly one bit; Text tokens carry the bits open at the time
// they were pushed.
type Format uint32

const (
	FormatNone      Format = 0
	FormatBold      Format = 1 << 0
	FormatItalic    Format = 1 << 1
	FormatUnderline Format = 1 << 2
	FormatStrike    Format = 1 << 3
	FormatMonospace Format = 1 << 4
	FormatHeading   Format = 1 << 5
	FormatMarked    Format = 1 << 6
	FormatHighlight Format = 1 << 7
	FormatLinkLabel Format = 1 << 8
	FormatLink      Format = 1 << 9
)

// markdownFormat maps each Markdown marker code point to the Format
// bit it toggles. Order matches §4.8: * Bold, _ Italic, ~ Strike, ` Monospace.
var markdownFormat = map[rune]Format{
	'*': FormatBold,
	'_': FormatItalic,
	'~': FormatStrike,
	'`': FormatMonospace,
}

// Emoji is an inline emoji attachment on a Text token: the half-open
// range [From,To) of indices into that Token's Value that the emoji
// sequence occupies, plus an optional resolved alias target (set only
// for text-emoji aliases like ":)", empty for literal Unicode glyphs).
type Emoji struct {
	From, To int
	Emoji    string
}

// Token is one element of the flat stream returned by Parse. Fields
// not relevant to Kind are left at their zero value.
type Token struct {
	Kind   Kind
	Value  string // verbatim input substring covered by this token
	Format Format

	// Sticky only matters on KindText/KindLink; it affects how
	// downstream editor operations (setLink, insertText, trim) behave
	// across the token boundary. Always false unless StickyLink is set
	// and this is a Link.
	Sticky bool

	// Emoji is only populated on KindText tokens; it records inline
	// emoji sequences (Unicode or resolved text-emoji aliases) found
	// within Value, with indices relative to the start of Value.
	Emoji []Emoji

	// Link fields (KindLink only).
	LinkURL string // normalized absolute URL, see §4.9
	Auto    bool   // true when auto-detected from plain text, not explicit markup

	// UserSticker fields.
	StickerID string

	// Mention fields.
	Mention string

	// Command fields.
	Command string

	// HashTag fields.
	HashTag string

	// Markdown fields: the single marker code point and the bit it toggles.
	Marker rune
}
