// Package signalgen turns the three aggregate voice scores into a named
// trading signal. It is a pure decision table: no state, no hysteresis
// across runs.
package signalgen

import (
	"math"

	"alphaspread/internal/scoring"
	"alphaspread/internal/types"
)

// Thresholds for the decision table.
const (
	// MinSideWeight gates the gap: both the market side and the reality
	// side need roughly 2-3 reliable articles of accumulated weight before
	// the gap is anything but noise.
	MinSideWeight = 3.0

	divergenceGap      = 0.4
	consensusScore     = 0.3
	volatilityConsumer = 0.5
)

// RealityScore blends executive tone and consumer sentiment by their
// accumulated evidence weights. With no consumer evidence it falls back to
// the exec score alone.
func RealityScore(final scoring.FinalScores, totals scoring.BucketTotals) float64 {
	totalWeight := totals.ExecWeight + totals.ConsumerWeight
	if totalWeight <= 0 {
		return final.Exec
	}
	return (final.Exec*totals.ExecWeight + final.Consumer*totals.ConsumerWeight) / totalWeight
}

// Gap returns reality minus market, or zero when either side lacks enough
// evidence to trust.
func Gap(final scoring.FinalScores, totals scoring.BucketTotals) float64 {
	if totals.MarketWeight <= MinSideWeight {
		return 0
	}
	if totals.ExecWeight+totals.ConsumerWeight <= MinSideWeight {
		return 0
	}
	return RealityScore(final, totals) - final.Market
}

// Synthesize classifies the run. Deterministic: the same scores and weights
// always produce the same signal.
func Synthesize(final scoring.FinalScores, totals scoring.BucketTotals) types.TradingSignal {
	gap := Gap(final, totals)

	switch {
	case math.Abs(gap) > divergenceGap:
		if gap > 0 {
			return types.TradingSignal{
				Type:        types.SignalBullishDivergence,
				Headline:    "Reality Exceeds Pricing",
				Description: "Alpha Spread detected: management confidence and product sentiment significantly outperform Wall Street's outlook.",
				Strength:    85,
				Gap:         gap,
			}
		}
		return types.TradingSignal{
			Type:        types.SignalBearishDivergence,
			Headline:    "Reality Lags Pricing",
			Description: "Alpha Spread detected: Wall Street is overly optimistic compared to executive tone and customer feedback.",
			Strength:    85,
			Gap:         gap,
		}

	case math.Abs(final.Exec) > consensusScore && math.Abs(final.Market) > consensusScore &&
		sameSign(final.Exec, final.Market):
		if final.Exec > 0 {
			return types.TradingSignal{
				Type:        types.SignalBullishConsensus,
				Headline:    "Full Bullish Alignment",
				Description: "Wall Street and the C-suite strongly agree on a positive trajectory.",
				Strength:    95,
				Gap:         gap,
			}
		}
		return types.TradingSignal{
			Type:        types.SignalBearishConsensus,
			Headline:    "Full Bearish Alignment",
			Description: "Universal negative outlook from both analysts and management.",
			Strength:    95,
			Gap:         gap,
		}

	case math.Abs(final.Consumer) > volatilityConsumer && !sameSign(final.Consumer, final.Market):
		if final.Consumer > 0 {
			return types.TradingSignal{
				Type:        types.SignalVolatilityWarning,
				Headline:    "Consumer/Market Split",
				Description: "Customers love the product but Wall Street hates the stock (value trap potential).",
				Strength:    75,
				Gap:         gap,
			}
		}
		return types.TradingSignal{
			Type:        types.SignalVolatilityWarning,
			Headline:    "Brand Erosion Warning",
			Description: "Wall Street is bullish but consumer sentiment is collapsing.",
			Strength:    80,
			Gap:         gap,
		}
	}

	return types.TradingSignal{
		Type:        types.SignalNeutral,
		Headline:    "Mixed Signals",
		Description: "No clear consensus found across the three voices.",
		Strength:    50,
		Gap:         gap,
	}
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}
