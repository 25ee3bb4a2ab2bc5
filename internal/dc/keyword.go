package dc

import "strings"

// Keyword is one of the field access keywords governing routing and
// persistence policy in the service layer. The schema core records them and
// folds them into the fingerprint; interpretation happens elsewhere.
type Keyword uint16

const (
	KeywordRAM Keyword = 1 << iota
	KeywordRequired
	KeywordDB
	KeywordBroadcast
	KeywordAIRecv
	KeywordOwnRecv
	KeywordClRecv
	KeywordOwnSend
	KeywordClSend
	KeywordBypass
)

var keywordNames = []struct {
	kw   Keyword
	name string
}{
	{KeywordRAM, "ram"},
	{KeywordRequired, "required"},
	{KeywordDB, "db"},
	{KeywordBroadcast, "broadcast"},
	{KeywordAIRecv, "airecv"},
	{KeywordOwnRecv, "ownrecv"},
	{KeywordClRecv, "clrecv"},
	{KeywordOwnSend, "ownsend"},
	{KeywordClSend, "clsend"},
	{KeywordBypass, "bypass"},
}

// ParseKeyword maps a keyword name to its bit, reporting whether it is known.
func ParseKeyword(name string) (Keyword, bool) {
	for _, entry := range keywordNames {
		if entry.name == name {
			return entry.kw, true
		}
	}
	return 0, false
}

// KeywordSet is a bitmask of access keywords declared on a field.
type KeywordSet uint16

// Add returns the set with kw included.
func (s KeywordSet) Add(kw Keyword) KeywordSet {
	return s | KeywordSet(kw)
}

// Has reports whether kw is in the set.
func (s KeywordSet) Has(kw Keyword) bool {
	return s&KeywordSet(kw) != 0
}

func (s KeywordSet) String() string {
	var names []string
	for _, entry := range keywordNames {
		if s.Has(entry.kw) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, " ")
}
