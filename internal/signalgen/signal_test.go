package signalgen

import (
	"testing"

	"alphaspread/internal/scoring"
	"alphaspread/internal/types"
)

func weights(exec, market, consumer float64) scoring.BucketTotals {
	return scoring.BucketTotals{ExecWeight: exec, MarketWeight: market, ConsumerWeight: consumer}
}

func TestBullishDivergence(t *testing.T) {
	final := scoring.FinalScores{Exec: 0.8, Market: 0.1, Consumer: 0.7}
	sig := Synthesize(final, weights(5, 5, 5))

	if sig.Type != types.SignalBullishDivergence {
		t.Fatalf("Expected BULLISH_DIVERGENCE, got %s", sig.Type)
	}
	if sig.Gap <= divergenceGap {
		t.Errorf("Expected gap above threshold, got %f", sig.Gap)
	}
	if sig.Strength != 85 {
		t.Errorf("Expected strength 85, got %d", sig.Strength)
	}
}

func TestBearishDivergence(t *testing.T) {
	final := scoring.FinalScores{Exec: -0.6, Market: 0.3, Consumer: -0.5}
	sig := Synthesize(final, weights(5, 5, 5))

	if sig.Type != types.SignalBearishDivergence {
		t.Fatalf("Expected BEARISH_DIVERGENCE, got %s", sig.Type)
	}
	if sig.Gap >= 0 {
		t.Errorf("Expected negative gap, got %f", sig.Gap)
	}
}

func TestBullishConsensus(t *testing.T) {
	final := scoring.FinalScores{Exec: 0.4, Market: 0.4, Consumer: 0.0}
	sig := Synthesize(final, weights(5, 5, 0))

	if sig.Type != types.SignalBullishConsensus {
		t.Fatalf("Expected BULLISH_CONSENSUS, got %s", sig.Type)
	}
	if sig.Strength != 95 {
		t.Errorf("Expected strength 95, got %d", sig.Strength)
	}
}

func TestBearishConsensus(t *testing.T) {
	final := scoring.FinalScores{Exec: -0.4, Market: -0.4, Consumer: 0.0}
	sig := Synthesize(final, weights(5, 5, 0))

	if sig.Type != types.SignalBearishConsensus {
		t.Fatalf("Expected BEARISH_CONSENSUS, got %s", sig.Type)
	}
}

func TestVolatilityWarningOnConsumerSplit(t *testing.T) {
	// Market evidence below the gap gate, consumer loud and opposed.
	final := scoring.FinalScores{Exec: 0.0, Market: -0.1, Consumer: 0.6}
	sig := Synthesize(final, weights(2, 2, 5))

	if sig.Type != types.SignalVolatilityWarning {
		t.Fatalf("Expected VOLATILITY_WARNING, got %s", sig.Type)
	}
	if sig.Strength != 75 {
		t.Errorf("Expected strength 75 for positive consumer split, got %d", sig.Strength)
	}
}

func TestBrandErosionWarning(t *testing.T) {
	final := scoring.FinalScores{Exec: 0.0, Market: 0.2, Consumer: -0.6}
	sig := Synthesize(final, weights(2, 2, 5))

	if sig.Type != types.SignalVolatilityWarning {
		t.Fatalf("Expected VOLATILITY_WARNING, got %s", sig.Type)
	}
	if sig.Strength != 80 {
		t.Errorf("Expected strength 80 for collapsing consumer, got %d", sig.Strength)
	}
}

func TestNeutralOnQuietScores(t *testing.T) {
	sig := Synthesize(scoring.FinalScores{}, weights(5, 5, 5))
	if sig.Type != types.SignalNeutral {
		t.Fatalf("Expected NEUTRAL, got %s", sig.Type)
	}
	if sig.Strength != 50 {
		t.Errorf("Expected strength 50, got %d", sig.Strength)
	}
}

func TestGapGatedOnThinEvidence(t *testing.T) {
	final := scoring.FinalScores{Exec: 0.9, Market: -0.9, Consumer: 0.9}

	if gap := Gap(final, weights(5, 1, 5)); gap != 0 {
		t.Errorf("Expected zero gap with thin market evidence, got %f", gap)
	}
	if gap := Gap(final, weights(1, 5, 1)); gap != 0 {
		t.Errorf("Expected zero gap with thin reality evidence, got %f", gap)
	}
	if gap := Gap(final, weights(5, 5, 5)); gap <= 0 {
		t.Errorf("Expected positive gap with full evidence, got %f", gap)
	}
}

func TestRealityScoreFallsBackToExec(t *testing.T) {
	final := scoring.FinalScores{Exec: 0.5, Consumer: 0.9}
	if got := RealityScore(final, weights(0, 5, 0)); got != 0.5 {
		t.Errorf("Expected exec fallback with no reality weight, got %f", got)
	}
	// Weighted blend leans toward the heavier side.
	got := RealityScore(final, weights(1, 0, 3))
	want := (0.5*1 + 0.9*3) / 4
	if got != want {
		t.Errorf("Expected weighted blend %f, got %f", want, got)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	final := scoring.FinalScores{Exec: 0.8, Market: 0.1, Consumer: 0.7}
	a := Synthesize(final, weights(5, 5, 5))
	b := Synthesize(final, weights(5, 5, 5))
	if a != b {
		t.Errorf("Expected identical signals for identical inputs: %+v vs %+v", a, b)
	}
}
