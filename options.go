package tokenizer

// MentionMode controls how strict the Mention recognizer's body is.
type MentionMode int

const (
	// MentionDisabled disables @mention recognition entirely.
	MentionDisabled MentionMode = iota
	// MentionLoose accepts a Unicode identifier body ([a-z0-9_-]+ plus
	// letters outside ASCII).
	MentionLoose
	// MentionStrict accepts only an ASCII identifier body.
	MentionStrict
)

// Options configures a single Parse call. The zero Options disables
// every optional recognizer; Text, Newline and Markdown (formatting
// stack bookkeeping aside) always run, and Unicode emoji run unless
// SkipEmoji is set.
type Options struct {
	// TextEmoji enables ":)"-style alias resolution via Aliases.
	TextEmoji bool
	// Mention controls @mention recognition (see MentionMode).
	Mention MentionMode
	// HashTag enables #tag recognition.
	HashTag bool
	// Command enables /cmd recognition.
	Command bool
	// UserSticker enables #u<id>s# recognition.
	UserSticker bool
	// Link enables URL/email/magnet auto-detection.
	Link bool
	// SkipEmoji suppresses Unicode-emoji scanning (keycap, flag,
	// sequence and forced-emoji sub-recognizers).
	SkipEmoji bool
	// UseFormat stamps the currently-open Format bitset onto emitted
	// Text tokens; when false, Text.Format is always FormatNone.
	UseFormat bool
	// StickyLink marks every emitted Link token's Sticky field true.
	StickyLink bool

	// TLDs is the lowercase top-level-domain set consulted by
	// the link recognizer's fragment scanner. Callers normally pass
	// DefaultTLDs. A nil map disables TLD validation (fragment() never
	// sets ValidTLD), which in turn means no bare domain is ever
	// auto-detected, since is_domain requires ValidTLD.
	TLDs map[string]bool

	// Aliases is the text-emoji alias table (ASCII key, e.g. ":)",
	// mapped to a Unicode emoji value). Consulted only when TextEmoji
	// is set. Callers normally pass DefaultAliases.
	Aliases map[string]string
}

// DefaultOptions returns the options a typical chat client uses: every
// optional recognizer on, formatting stamped onto Text, default data
// tables.
func DefaultOptions() Options {
	return Options{
		TextEmoji:   true,
		Mention:     MentionLoose,
		HashTag:     true,
		Command:     true,
		UserSticker: true,
		Link:        true,
		UseFormat:   true,
		TLDs:        DefaultTLDs,
		Aliases:     DefaultAliases,
	}
}
