package concierge

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"miohost/catalog"
	"miohost/models"
)

// Confidence is the discrete trust tier assigned to a classification.
type Confidence string

const (
	ConfidenceNone   Confidence = "none"
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Score thresholds for the confidence tiers. The ranges partition
// exactly: [8,inf) high, [5,8) medium, [2,5) low, [0,2) none.
const (
	scoreHigh   = 8
	scoreMedium = 5
	scoreLow    = 2

	weightPhrase = 3
	weightWord   = 2

	lengthBonusCap  = 2
	lengthBonusStep = 40
)

func confidenceFor(score int) Confidence {
	switch {
	case score >= scoreHigh:
		return ConfidenceHigh
	case score >= scoreMedium:
		return ConfidenceMedium
	case score >= scoreLow:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Match is one classification result.
type Match struct {
	Intent     *models.Intent
	Score      int
	Confidence Confidence
	Hits       []string
}

// simpleKeyword reports whether a keyword is a single ASCII
// alphanumeric token. Anything else (spaces, hyphens, umlauts) is a
// phrase keyword and matched by substring containment.
var simpleKeyword = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

type keywordMatcher struct {
	keyword string
	phrase  string
	weight  int
	// word is nil for phrase keywords.
	word *regexp.Regexp
}

type intentMatchers struct {
	intent   *models.Intent
	keywords []keywordMatcher
}

// Matcher scores free guest text against the intent catalog. It is
// stateless after construction and safe for concurrent use; keyword
// regexps are compiled once.
type Matcher struct {
	intents []intentMatchers
}

func NewMatcher(c *catalog.Catalog) *Matcher {
	m := &Matcher{intents: make([]intentMatchers, 0, len(c.Intents))}
	for i := range c.Intents {
		in := &c.Intents[i]
		im := intentMatchers{intent: in, keywords: make([]keywordMatcher, 0, len(in.Keywords))}
		for _, kw := range in.Keywords {
			k := strings.ToLower(kw)
			km := keywordMatcher{keyword: kw, phrase: k, weight: weightPhrase}
			if simpleKeyword.MatchString(k) {
				km.weight = weightWord
				km.word = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`)
			}
			im.keywords = append(im.keywords, km)
		}
		m.intents = append(m.intents, im)
	}
	return m
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func lengthBonus(normalized string) int {
	b := utf8.RuneCountInString(normalized) / lengthBonusStep
	if b > lengthBonusCap {
		return lengthBonusCap
	}
	return b
}

func (im intentMatchers) score(normalized string) (int, []string) {
	score := 0
	var hits []string
	for _, km := range im.keywords {
		if km.word != nil {
			if km.word.MatchString(normalized) {
				score += km.weight
				hits = append(hits, km.keyword)
			}
		} else if strings.Contains(normalized, km.phrase) {
			score += km.weight
			hits = append(hits, km.keyword)
		}
	}
	return score, hits
}

// Match classifies the text and returns the best intent with its
// confidence tier. Ties resolve to the intent appearing earliest in
// catalog order; this is a deliberate, deterministic policy. Empty or
// whitespace input yields no intent.
func (m *Matcher) Match(text string) Match {
	t := normalize(text)
	if t == "" {
		return Match{Confidence: ConfidenceNone}
	}
	bonus := lengthBonus(t)

	best := Match{}
	for _, im := range m.intents {
		score, hits := im.score(t)
		score += bonus
		if score > best.Score {
			best = Match{Intent: im.intent, Score: score, Hits: hits}
		}
	}
	best.Confidence = confidenceFor(best.Score)
	if best.Confidence == ConfidenceNone {
		best.Intent = nil
		best.Hits = nil
	}
	return best
}

// Rank returns up to three positively scored intents, sorted by score
// descending with ties kept in catalog order.
func (m *Matcher) Rank(text string) []models.Suggestion {
	t := normalize(text)
	if t == "" {
		return nil
	}
	bonus := lengthBonus(t)

	var ranked []models.Suggestion
	for _, im := range m.intents {
		score, _ := im.score(t)
		score += bonus
		if score <= 0 {
			continue
		}
		ranked = append(ranked, models.Suggestion{
			IntentID:   im.intent.ID,
			Label:      im.intent.Label,
			Score:      score,
			Confidence: string(confidenceFor(score)),
		})
	}
	// Insertion sort keeps equal scores in catalog order.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Score > ranked[j-1].Score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked
}
