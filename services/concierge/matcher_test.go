package concierge

import (
	"strings"
	"testing"

	"miohost/catalog"
	"miohost/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New() failed: %v", err)
	}
	return c
}

func TestMatchWifiExample(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	got := m.Match("What's the wifi password?")
	if got.Intent == nil || got.Intent.ID != "wifi" {
		t.Fatalf("Match() intent = %+v, want wifi", got.Intent)
	}
	if got.Confidence != ConfidenceMedium && got.Confidence != ConfidenceHigh {
		t.Errorf("Match() confidence = %q, want medium or high", got.Confidence)
	}
	// wifi (+2) and password (+2) alone sit below the medium threshold;
	// the "wifi password" phrase keyword (+3) lifts the canonical
	// phrasing to 7.
	if got.Score != 7 {
		t.Errorf("Match() score = %d, want 7", got.Score)
	}
	if got.Intent.Reply.Get(models.LocaleEN) == "" || got.Intent.Reply.Get(models.LocaleDE) == "" {
		t.Error("wifi reply must be localized for both EN and DE")
	}
}

func TestMatchWifiExampleGerman(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	got := m.Match("Wie lautet das WLAN Passwort?")
	if got.Intent == nil || got.Intent.ID != "wifi" {
		t.Fatalf("Match() intent = %+v, want wifi", got.Intent)
	}
	if got.Confidence != ConfidenceMedium && got.Confidence != ConfidenceHigh {
		t.Errorf("Match() confidence = %q, want medium or high", got.Confidence)
	}
}

func TestMatchEmptyInput(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	for _, in := range []string{"", "   ", "\t\n"} {
		got := m.Match(in)
		if got.Intent != nil || got.Confidence != ConfidenceNone || got.Score != 0 {
			t.Errorf("Match(%q) = %+v, want empty none result", in, got)
		}
	}
}

func TestMatchIsPure(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	const text = "where can I do laundry and get tokens"
	first := m.Match(text)
	for i := 0; i < 5; i++ {
		again := m.Match(text)
		if again.Intent != first.Intent || again.Score != first.Score || again.Confidence != first.Confidence {
			t.Fatalf("Match is not stable: run %d got %+v, want %+v", i, again, first)
		}
	}
}

func TestMatchMonotonic(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	base := "laundry"
	prev := 0
	for i := 0; i < 5; i++ {
		score := 0
		if got := m.Match(base); got.Intent != nil && got.Intent.ID == "laundry" {
			score = got.Score
		}
		if score < prev {
			t.Fatalf("score decreased after repeating keyword: %d -> %d (%q)", prev, score, base)
		}
		prev = score
		base += " laundry"
	}
}

func TestConfidenceTiersPartition(t *testing.T) {
	cases := []struct {
		score int
		want  Confidence
	}{
		{0, ConfidenceNone},
		{1, ConfidenceNone},
		{2, ConfidenceLow},
		{4, ConfidenceLow},
		{5, ConfidenceMedium},
		{7, ConfidenceMedium},
		{8, ConfidenceHigh},
		{20, ConfidenceHigh},
	}
	for _, tc := range cases {
		if got := confidenceFor(tc.score); got != tc.want {
			t.Errorf("confidenceFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestMatchTieBreaksByCatalogOrder(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	// "wifi" and "laundry" are single-token keywords worth 2 each; on an
	// equal total the earlier catalog entry must win.
	got := m.Match("wifi laundry")
	if got.Intent == nil || got.Intent.ID != "wifi" {
		t.Fatalf("Match(wifi laundry) = %+v, want wifi by catalog order", got.Intent)
	}
}

func TestKeywordWeights(t *testing.T) {
	m := NewMatcher(testCatalog(t))

	// Phrase keyword "check out" scores 3 by substring containment.
	got := m.Match("I want to check out")
	if got.Intent == nil || got.Intent.ID != "checkout" {
		t.Fatalf("Match(check out) intent = %+v, want checkout", got.Intent)
	}
	if got.Score != 3 {
		t.Errorf("phrase keyword score = %d, want 3", got.Score)
	}

	// Word-boundary keywords must not match inside unrelated words.
	if got := m.Match("my passwords are safe"); got.Intent != nil && got.Intent.ID == "wifi" {
		for _, h := range got.Hits {
			if h == "password" {
				t.Errorf("keyword %q matched inside %q", h, "passwords")
			}
		}
	}
}

func TestRankProperties(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	cases := []string{
		"wifi laundry checkout parking supermarket",
		"where can I order food and buy groceries",
		"wifi",
		"nothing relevant here",
	}
	for _, text := range cases {
		ranked := m.Rank(text)
		if len(ranked) > 3 {
			t.Errorf("Rank(%q) returned %d entries, want <= 3", text, len(ranked))
		}
		for i, r := range ranked {
			if r.Score <= 0 {
				t.Errorf("Rank(%q)[%d] score = %d, want > 0", text, i, r.Score)
			}
			if i > 0 && ranked[i-1].Score < r.Score {
				t.Errorf("Rank(%q) not descending at %d: %d < %d", text, i, ranked[i-1].Score, r.Score)
			}
			if want := string(confidenceFor(r.Score)); r.Confidence != want {
				t.Errorf("Rank(%q)[%d] confidence = %q, want %q", text, i, r.Confidence, want)
			}
		}
	}
}

func TestRankTiesKeepCatalogOrder(t *testing.T) {
	c := testCatalog(t)
	m := NewMatcher(c)
	ranked := m.Rank("wifi laundry")
	if len(ranked) < 2 {
		t.Fatalf("Rank(wifi laundry) = %d entries, want >= 2", len(ranked))
	}
	if ranked[0].IntentID != "wifi" || ranked[1].IntentID != "laundry" {
		t.Errorf("tied entries out of catalog order: %s, %s", ranked[0].IntentID, ranked[1].IntentID)
	}
}

func TestLengthBonus(t *testing.T) {
	cases := []struct {
		length int
		want   int
	}{
		{0, 0},
		{39, 0},
		{40, 1},
		{79, 1},
		{80, 2},
		{400, 2},
	}
	for _, tc := range cases {
		text := strings.Repeat("x", tc.length)
		if got := lengthBonus(text); got != tc.want {
			t.Errorf("lengthBonus(len %d) = %d, want %d", tc.length, got, tc.want)
		}
	}
}
