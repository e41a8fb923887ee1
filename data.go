package tokenizer

// protocolSchemes are the literal protocol prefixes the link
// recognizer's protocol trie matches case-insensitively (§4.9).
var protocolSchemes = []string{
	"http://",
	"https://",
	"ftp://",
	"tg://",
	"tt://",
	"tamtam://",
	"skype://",
	"//",
}

// DefaultTLDs is a practical, non-exhaustive top-level-domain table
// used by the link recognizer's fragment validation. It favors the
// gTLDs and ccTLDs a chat client is likely to see pasted in links over
// RFC-complete IANA coverage (the spec explicitly scopes out a live
// IANA list, §6 Non-goals).
var DefaultTLDs = buildTLDSet(
	"com", "net", "org", "info", "biz", "name", "pro", "mobi", "asia",
	"cat", "coop", "jobs", "travel", "xxx", "edu", "gov", "mil", "int",
	"io", "co", "me", "tv", "cc", "gg", "ai", "app", "dev", "xyz",
	"club", "online", "site", "store", "shop", "tech", "design", "chat",
	"live", "link", "blog", "news", "wiki", "cloud", "email", "media",
	"ru", "su", "рф", "uk", "de", "fr", "es", "it", "nl", "be", "ch",
	"at", "se", "no", "dk", "fi", "pl", "cz", "sk", "hu", "ro", "bg",
	"gr", "pt", "ie", "is", "ua", "by", "kz", "am", "ge", "az",
	"us", "ca", "mx", "br", "ar", "cl", "pe", "co.uk", "com.br",
	"cn", "jp", "kr", "in", "id", "th", "vn", "sg", "my", "ph",
	"au", "nz", "za", "eg", "il", "tr", "sa", "ae",
)

func buildTLDSet(tlds ...string) map[string]bool {
	m := make(map[string]bool, len(tlds))
	for _, t := range tlds {
		m[t] = true
	}
	return m
}

// DefaultAliases is a small, representative text-emoji alias table
// (§4.6); real deployments are expected to supply their own via
// Options.Aliases, sourced from the client's sticker/emoji catalog.
var DefaultAliases = map[string]string{
	":)":  "🙂",
	":-)": "🙂",
	":(":  "🙁",
	":-(": "🙁",
	":D":  "😀",
	":-D": "😀",
	";)":  "😉",
	";-)": "😉",
	":P":  "😛",
	":p":  "😛",
	":O":  "😮",
	":o":  "😮",
	":|":  "😐",
	":'(": "😢",
	"<3":  "❤️",
	"</3": "💔",
	"8)":  "😎",
	"xD":  "😆",
	"XD":  "😆",
	":*":  "😘",
}
