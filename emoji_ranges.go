package tokenizer

// runeRange is an inclusive [Lo, Hi] code point range.
type runeRange struct{ lo, hi rune }

func inRanges(c rune, ranges []runeRange) bool {
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		r := ranges[mid]
		switch {
		case c < r.lo:
			hi = mid
		case c > r.hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// emojiBaseRanges is the enumerated (not the broad U+2000..U+3300)
// table of low-plane emoji base code points, per the Open Question in
// §9: the source keeps two tables in different files and this
// implementation follows the newer, enumerated one. Entries must stay
// sorted, with both lo and hi ascending, for inRanges's binary search;
// the overlapping high bands below meet that.
var emojiBaseRanges = []runeRange{
	{0x00A9, 0x00A9}, // ©
	{0x00AE, 0x00AE}, // ®
	{0x203C, 0x203C},
	{0x2049, 0x2049},
	{0x2122, 0x2122},
	{0x2139, 0x2139},
	{0x2194, 0x2199},
	{0x21A9, 0x21AA},
	{0x231A, 0x231B},
	{0x2328, 0x2328},
	{0x23CF, 0x23CF},
	{0x23E9, 0x23FA},
	{0x24C2, 0x24C2},
	{0x25AA, 0x25AB},
	{0x25B6, 0x25B6},
	{0x25C0, 0x25C0},
	{0x25FB, 0x25FE},
	{0x2600, 0x27BF},
	{0x2934, 0x2935},
	{0x2B05, 0x2B07},
	{0x2B1B, 0x2B1C},
	{0x2B50, 0x2B50},
	{0x2B55, 0x2B55},
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	// canonical high ranges, per §4.5; these are given as three
	// overlapping bands in the spec and kept as-is rather than
	// collapsed, so a change to any one band stays easy to trace back.
	{0x1E400, 0x1F3FF},
	{0x1E800, 0x1F7FF},
	{0x1EC00, 0x1FBFF},
}

func isEmojiBase(c rune) bool {
	return inRanges(c, emojiBaseRanges)
}

func isSkinModifier(c rune) bool {
	return c >= 0x1F3FB && c <= 0x1F3FF
}

func isGenderSign(c rune) bool {
	return c == 0x2640 || c == 0x2642
}

func isRegionalIndicator(c rune) bool {
	return c >= 0x1F1E6 && c <= 0x1F1FF
}

func isTagSequenceChar(c rune) bool {
	return c >= 0xE0020 && c <= 0xE007E
}

const (
	zwj           rune = 0x200D
	variationFE0F rune = 0xFE0F
	keycapCombiner rune = 0x20E3
	flagBase      rune = 0x1F3F4
	tagTerminator rune = 0xE007F
)
