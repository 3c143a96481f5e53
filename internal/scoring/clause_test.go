package scoring

import (
	"math"
	"testing"

	"alphaspread/internal/lexicon"
)

func newTestScorer() *Scorer {
	return NewScorer(lexicon.Load())
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Stock SOARS, record-high! Q3")
	want := []string{"stock", "soars", "record-high", "q3"}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("Token %d: expected %q, got %q", i, want[i], tokens[i])
		}
	}
}

func TestSplitClausesOnContrast(t *testing.T) {
	clauses := SplitClauses("revenue grew strongly but guidance disappointed investors")
	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d: %v", len(clauses), clauses)
	}
}

func TestSplitClausesDropsFragments(t *testing.T) {
	clauses := SplitClauses("ok. the company reported solid results")
	if len(clauses) != 1 {
		t.Fatalf("Expected short fragment to be dropped, got %d clauses: %v", len(clauses), clauses)
	}
}

func TestBoosterIncreasesMagnitude(t *testing.T) {
	s := newTestScorer()

	base := s.ScoreClause("users love it")
	boosted := s.ScoreClause("users really love it")

	if base.Consumer <= 0 {
		t.Fatalf("Expected positive consumer score, got %f", base.Consumer)
	}
	if boosted.Consumer <= base.Consumer {
		t.Errorf("Expected booster to raise score: base %f, boosted %f", base.Consumer, boosted.Consumer)
	}
}

func TestNegationFlipsPolarity(t *testing.T) {
	s := newTestScorer()

	plain := s.ScoreClause("the device is broken")
	negated := s.ScoreClause("the device is not broken")

	if plain.Consumer >= 0 {
		t.Fatalf("Expected negative consumer score, got %f", plain.Consumer)
	}
	if negated.Consumer <= 0 {
		t.Errorf("Expected negation to flip polarity, got %f", negated.Consumer)
	}
	if math.Abs(negated.Consumer) >= math.Abs(plain.Consumer) {
		t.Errorf("Expected negation to dampen magnitude: plain %f, negated %f", plain.Consumer, negated.Consumer)
	}
}

func TestInsiderPhraseOutweighsAdjectivePile(t *testing.T) {
	s := newTestScorer()

	insider := s.ScoreText("Director bought shares worth $2 million")
	adjectives := s.ScoreText("great helpful clean fast friendly")

	if insider.Exec <= 0 {
		t.Fatalf("Expected positive exec score for insider buy, got %f", insider.Exec)
	}
	if insider.Exec <= adjectives.Consumer {
		t.Errorf("Expected insider phrase %f to outweigh adjective pile %f", insider.Exec, adjectives.Consumer)
	}
}

func TestHedgingDiscountsExecScore(t *testing.T) {
	s := newTestScorer()

	firm := s.ScoreClause("we are confident in our momentum")
	hedged := s.ScoreClause("we are possibly confident in our momentum")

	if hedged.Exec >= firm.Exec {
		t.Errorf("Expected hedging to discount exec score: firm %f, hedged %f", firm.Exec, hedged.Exec)
	}
}

func TestContrastWeightsBackHalf(t *testing.T) {
	s := newTestScorer()

	weighted := s.ScoreText("rally but crash")
	unweighted := s.ScoreClause("rally").Market + s.ScoreClause("crash").Market

	// The negative back half carries 1.3x, so the weighted total sits below
	// the plain clause sum.
	if weighted.Market >= unweighted {
		t.Errorf("Expected amplified back half: weighted %f, unweighted %f", weighted.Market, unweighted)
	}
}

func TestCrudeSentiment(t *testing.T) {
	s := newTestScorer()

	if got := s.CrudeSentiment(""); got != 0 {
		t.Errorf("Expected 0 for empty text, got %f", got)
	}
	if got := s.CrudeSentiment("love love love"); got <= 0 {
		t.Errorf("Expected positive crude score, got %f", got)
	}
	if got := s.CrudeSentiment("terrible awful worst"); got >= 0 {
		t.Errorf("Expected negative crude score, got %f", got)
	}
	if got := s.CrudeSentiment("love love love"); got > 1 {
		t.Errorf("Expected crude score clamped to 1, got %f", got)
	}
}

func TestJaccardIndex(t *testing.T) {
	if got := JaccardIndex("apple earnings beat", "apple earnings beat"); got != 1.0 {
		t.Errorf("Expected 1.0 for identical headlines, got %f", got)
	}
	if got := JaccardIndex("apple earnings beat", "tesla deliveries slump"); got != 0 {
		t.Errorf("Expected 0 for disjoint headlines, got %f", got)
	}
	got := JaccardIndex("apple earnings beat estimates", "apple earnings miss estimates")
	if got <= 0.4 || got >= 0.8 {
		t.Errorf("Expected partial overlap near 0.6, got %f", got)
	}
}
