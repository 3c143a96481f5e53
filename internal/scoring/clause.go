// Package scoring turns item text into the three voice scores and folds
// scored items into bounded bucket aggregates. It is a bag-of-phrases then
// bag-of-words design: phrase tables first, then token lookups with local
// negation/booster modifiers. No parse tree, no part-of-speech awareness.
package scoring

import (
	"regexp"
	"strings"

	"alphaspread/internal/lexicon"
)

// ClauseScores are the unnormalized per-clause voice scores, roughly in the
// -20..+20 range.
type ClauseScores struct {
	Exec     float64
	Market   float64
	Consumer float64
}

// Scorer scores clauses against the loaded lexicon tables.
type Scorer struct {
	tables *lexicon.Tables
}

// NewScorer wraps a loaded table set.
func NewScorer(tables *lexicon.Tables) *Scorer {
	return &Scorer{tables: tables}
}

var (
	tokenRe = regexp.MustCompile(`[a-z0-9][a-z0-9'\-]*`)
	// Contrastive conjunctions and sentence punctuation delimit clauses.
	clauseSplitRe = regexp.MustCompile(`(?i)(?:\sbut\s|\showever\s|\salthough\s|\swhile\s|\sdespite\s|\sversus\s|[.;:!?])`)
)

// Tokenize lowercases and splits text into word tokens.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// SplitClauses cuts text on contrastive conjunctions and punctuation,
// dropping fragments too short to score.
func SplitClauses(text string) []string {
	parts := clauseSplitRe.Split(text, -1)
	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(strings.TrimSpace(p)) > 3 {
			clauses = append(clauses, p)
		}
	}
	return clauses
}

// ScoreClause scores one clause. Phrase tables are checked by substring
// containment first; remaining single tokens get a local modifier from up to
// three preceding tokens (boosters add, negations flip and dampen). Hedging
// words discount the whole exec score, guidance language amplifies it.
func (s *Scorer) ScoreClause(text string) ClauseScores {
	tokens := Tokenize(text)
	phraseText := strings.ToLower(text)

	var out ClauseScores

	confidenceMult := 1.0
	futureTense := false
	for _, t := range tokens {
		if s.tables.Hedging[t] {
			confidenceMult *= 0.7
		}
		if s.tables.FutureTense[t] {
			futureTense = true
		}
	}
	if futureTense {
		confidenceMult *= 1.2
	}

	for phrase, w := range s.tables.InsiderPhrases {
		if strings.Contains(phraseText, phrase) {
			out.Exec += w * lexicon.InsiderPhraseMult
		}
	}
	for phrase, w := range s.tables.ExecPhrases {
		if strings.Contains(phraseText, phrase) {
			out.Exec += w * lexicon.ExecPhraseMult
		}
	}
	for phrase, w := range s.tables.MarketPhrases {
		if strings.Contains(phraseText, phrase) {
			out.Market += w
		}
	}
	for phrase, w := range s.tables.ConsumerPhrases {
		if strings.Contains(phraseText, phrase) {
			out.Consumer += w
		}
	}

	for i, word := range tokens {
		eVal := s.tables.ExecTone[word]
		mVal := s.tables.WallSt[word]
		cVal := s.tables.Consumer[word]
		if eVal == 0 && mVal == 0 && cVal == 0 {
			continue
		}

		modifier := 1.0
		for j := 1; j <= 3 && i-j >= 0; j++ {
			prev := tokens[i-j]
			if b, ok := s.tables.Boosters[prev]; ok {
				modifier += b
			}
			if s.tables.Negations[prev] {
				modifier *= -0.8
			}
		}

		out.Exec += eVal * modifier
		out.Market += mVal * modifier
		out.Consumer += cVal * modifier
	}

	out.Exec *= confidenceMult
	return out
}

// ScoreText splits text into clauses and sums their scores. Clauses in the
// second half carry extra weight: after a contrastive split, the back half
// is usually "the turn".
func (s *Scorer) ScoreText(text string) ClauseScores {
	clauses := SplitClauses(text)
	var total ClauseScores
	for i, clause := range clauses {
		cs := s.ScoreClause(clause)
		weight := 1.0
		if len(clauses) > 1 && i >= len(clauses)/2 {
			weight = 1.3
		}
		total.Exec += cs.Exec * weight
		total.Market += cs.Market * weight
		total.Consumer += cs.Consumer * weight
	}
	return total
}

// CrudeSentiment is the last-resort fallback for items no lexicon touches
// in a meaningful way: the signed fraction of polar consumer words.
func (s *Scorer) CrudeSentiment(text string) float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}
	var pos, neg int
	for _, t := range tokens {
		switch w := s.tables.Consumer[t]; {
		case w > 0:
			pos++
		case w < 0:
			neg++
		}
	}
	score := float64(pos-neg) / float64(len(tokens)) * 10
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

// JaccardIndex measures headline similarity for deduplication: token sets
// (words longer than two characters) intersected over their union.
func JaccardIndex(a, b string) float64 {
	setA := dedupTokens(a)
	setB := dedupTokens(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	union := len(setB)
	for t := range setA {
		if setB[t] {
			inter++
		} else {
			union++
		}
	}
	return float64(inter) / float64(union)
}

func dedupTokens(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range Tokenize(s) {
		if len(t) > 2 {
			set[t] = true
		}
	}
	return set
}
