package scoring

import (
	"math"
	"strings"
	"time"

	"alphaspread/internal/lexicon"
	"alphaspread/internal/types"
)

// Normalization constants. Alpha flattens raw clause magnitudes into a
// bounded curve; the confidence divisor shrinks scores backed by little
// evidence toward zero.
const (
	normAlpha          = 8.0
	confidenceDivisor  = 5.0
	itemEvidenceWeight = 10.0
	trivialScore       = 0.05
)

// Normalize maps an unbounded raw score into [-1, 1] with confidence
// smoothing: score/sqrt(score²+alpha) scaled by weight/(weight+5). Low total
// weight degrades the result gracefully toward zero.
func Normalize(score, totalWeight float64) float64 {
	rawNorm := score / math.Sqrt(score*score+normAlpha)
	confidence := totalWeight / (totalWeight + confidenceDivisor)
	smoothed := rawNorm * confidence
	return math.Max(-1.0, math.Min(1.0, smoothed))
}

// TimeWeight favors fresh coverage: last 24h 1.4x, last week 1.15x, then a
// linear decay with a 0.5 floor reached around day 40.
func TimeWeight(pubDate, now time.Time) float64 {
	diffHours := now.Sub(pubDate).Hours()
	switch {
	case diffHours <= 24:
		return 1.4
	case diffHours <= 24*7:
		return 1.15
	default:
		return math.Max(0.5, 1.0-diffHours/(24*40))
	}
}

// ImpactMultiplier amplifies items mentioning high-impact events, taking the
// strongest matching keyword.
func ImpactMultiplier(text string, tables *lexicon.Tables) float64 {
	lower := strings.ToLower(text)
	maxMult := 1.0
	for word, mult := range tables.ImpactWeights {
		if mult > maxMult && strings.Contains(lower, word) {
			maxMult = mult
		}
	}
	return maxMult
}

// ReliabilityWeight derives the aggregation weight from the source trust
// score. Grassroots (social/review) sources get a flat boost since they feed
// the consumer bucket directly.
func ReliabilityWeight(trustScore int, grassroots bool) float64 {
	if grassroots {
		return 1.3
	}
	switch {
	case trustScore >= 9:
		return 1.6
	case trustScore >= 8:
		return 1.4
	case trustScore >= 7:
		return 1.2
	default:
		return 1.0
	}
}

// BucketTotals is the immutable fold state of the aggregation: weighted sums
// and weight totals per voice. Partial totals from independent branches merge
// by plain addition; no locking is ever needed.
type BucketTotals struct {
	ExecSum, ExecWeight         float64
	MarketSum, MarketWeight     float64
	ConsumerSum, ConsumerWeight float64
}

// Merge adds another partial result.
func (b BucketTotals) Merge(o BucketTotals) BucketTotals {
	return BucketTotals{
		ExecSum: b.ExecSum + o.ExecSum, ExecWeight: b.ExecWeight + o.ExecWeight,
		MarketSum: b.MarketSum + o.MarketSum, MarketWeight: b.MarketWeight + o.MarketWeight,
		ConsumerSum: b.ConsumerSum + o.ConsumerSum, ConsumerWeight: b.ConsumerWeight + o.ConsumerWeight,
	}
}

// ItemContribution converts one item's raw clause scores into a bucket delta
// plus the score shown on the item itself. Each raw score is normalized
// individually so a single insider-phrase hit and ten weak adjective hits
// land on a comparable scale.
//
// Unclassified items contribute every non-trivial sub-score to its own
// bucket at half weight; if all three are trivial, a crude word-count
// fallback feeds the consumer bucket at quarter weight.
func (s *Scorer) ItemContribution(cat types.Category, raw ClauseScores, weight float64, fallbackText string) (BucketTotals, float64) {
	exec := Normalize(raw.Exec, itemEvidenceWeight)
	market := Normalize(raw.Market, itemEvidenceWeight)
	consumer := Normalize(raw.Consumer, itemEvidenceWeight)

	var d BucketTotals
	switch cat {
	case types.Leadership:
		d.ExecSum = exec * weight
		d.ExecWeight = weight
		return d, exec
	case types.Market:
		d.MarketSum = market * weight
		d.MarketWeight = weight
		return d, market
	case types.Consumer:
		d.ConsumerSum = consumer * weight
		d.ConsumerWeight = weight
		return d, consumer
	}

	half := weight * 0.5
	contributed := false
	if math.Abs(exec) > trivialScore {
		d.ExecSum, d.ExecWeight = exec*half, half
		contributed = true
	}
	if math.Abs(market) > trivialScore {
		d.MarketSum, d.MarketWeight = market*half, half
		contributed = true
	}
	if math.Abs(consumer) > trivialScore {
		d.ConsumerSum, d.ConsumerWeight = consumer*half, half
		contributed = true
	}

	if !contributed {
		crude := s.CrudeSentiment(fallbackText)
		quarter := weight * 0.25
		d.ConsumerSum, d.ConsumerWeight = crude*quarter, quarter
		return d, crude
	}

	return d, maxAbs(exec, market, consumer)
}

// FinalScores are the three bounded aggregate scalars.
type FinalScores struct {
	Exec     float64
	Market   float64
	Consumer float64
}

// Finalize normalizes bucket totals into the final scalars, applying the
// same confidence-aware transform used per item so sparse evidence decays
// toward zero instead of producing a loud score from one article.
func Finalize(t BucketTotals) FinalScores {
	return FinalScores{
		Exec:     finalizeBucket(t.ExecSum, t.ExecWeight),
		Market:   finalizeBucket(t.MarketSum, t.MarketWeight),
		Consumer: finalizeBucket(t.ConsumerSum, t.ConsumerWeight),
	}
}

func finalizeBucket(sum, weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	return Normalize((sum/weight)*5, weight)
}

// DampenOutliers multiplies by 0.7 the display score of any item deviating
// more than 1.5 standard deviations from its bucket mean. Buckets with fewer
// than five items are left alone: the deviation estimate is meaningless.
func DampenOutliers(items []types.NewsItem) {
	byCategory := make(map[string][]int)
	for i, it := range items {
		byCategory[it.Category] = append(byCategory[it.Category], i)
	}

	for _, idxs := range byCategory {
		if len(idxs) < 5 {
			continue
		}
		var sum float64
		for _, i := range idxs {
			sum += items[i].SentimentScore
		}
		mean := sum / float64(len(idxs))

		var variance float64
		for _, i := range idxs {
			d := items[i].SentimentScore - mean
			variance += d * d
		}
		stdDev := math.Sqrt(variance / float64(len(idxs)))

		for _, i := range idxs {
			if math.Abs(items[i].SentimentScore-mean) > stdDev*1.5 {
				items[i].SentimentScore *= 0.7
				items[i].SentimentLabel = types.SentimentLabel(items[i].SentimentScore)
			}
		}
	}
}

func maxAbs(vals ...float64) float64 {
	best := 0.0
	for _, v := range vals {
		if math.Abs(v) > math.Abs(best) {
			best = v
		}
	}
	return best
}
