package dc

import "testing"

func TestParseKeywordCoversAccessSet(t *testing.T) {
	names := []string{
		"ram", "required", "db", "broadcast", "airecv",
		"ownrecv", "clrecv", "ownsend", "clsend", "bypass",
	}
	seen := KeywordSet(0)
	for _, name := range names {
		kw, ok := ParseKeyword(name)
		if !ok {
			t.Fatalf("keyword %q not recognized", name)
		}
		if seen.Has(kw) {
			t.Fatalf("keyword %q shares a bit with an earlier keyword", name)
		}
		seen = seen.Add(kw)
	}
	if _, ok := ParseKeyword("quantized"); ok {
		t.Fatalf("unknown keyword accepted")
	}
}

func TestKeywordSetString(t *testing.T) {
	s := KeywordSet(0).Add(KeywordRequired).Add(KeywordBroadcast)
	if got := s.String(); got != "required broadcast" {
		t.Fatalf("keyword set string: got=%q", got)
	}
}
