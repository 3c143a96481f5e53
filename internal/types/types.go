package types

import "time"

// Category assigns a news item to an aggregation bucket.
type Category int

const (
	Unclassified Category = iota
	Leadership
	Market
	Consumer
)

func (c Category) String() string {
	switch c {
	case Leadership:
		return "Leadership"
	case Market:
		return "Market"
	case Consumer:
		return "Consumer"
	default:
		return "Unclassified"
	}
}

// Executive identifies a named officer of the analyzed company.
type Executive struct {
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	SentimentScore float64 `json:"sentiment_score"`
	Summary        string  `json:"summary,omitempty"`
}

// CompanyIdentity is the resolved company behind a ticker. Read-only after
// resolution.
type CompanyIdentity struct {
	Name       string      `json:"name"`
	ShortName  string      `json:"short_name"`
	Brands     []string    `json:"brands,omitempty"`
	Executives []Executive `json:"executives"`
}

// RawFeedItem is one feed entry as extracted from RSS/Atom XML, before
// filtering and scoring.
type RawFeedItem struct {
	Title       string
	Description string
	PubDateStr  string
	Link        string
	SourceName  string
	SourceLabel string
}

// NewsItem is an accepted, scored feed item carried on the result.
type NewsItem struct {
	Headline         string  `json:"headline"`
	Date             string  `json:"date"`
	Timestamp        int64   `json:"timestamp"`
	Summary          string  `json:"summary"`
	Source           string  `json:"source"`
	RelatedExecutive string  `json:"related_executive"`
	SentimentScore   float64 `json:"sentiment_score"`
	SentimentLabel   string  `json:"sentiment_label"`
	Link             string  `json:"link,omitempty"`
	RelevanceWeight  float64 `json:"relevance_weight,omitempty"`
	SourceScore      int     `json:"source_score,omitempty"`
	SourceCategory   string  `json:"source_category,omitempty"`
	IsVerifiedSource bool    `json:"is_verified_source,omitempty"`
	Category         string  `json:"category,omitempty"`
}

// SentimentLabel buckets a score into the display label used on NewsItem.
func SentimentLabel(score float64) string {
	switch {
	case score > 0.05:
		return "Positive"
	case score < -0.05:
		return "Negative"
	default:
		return "Neutral"
	}
}

// TradingSignal classifies the relationship between the three voices.
type TradingSignal struct {
	Type        string  `json:"type"`
	Headline    string  `json:"headline"`
	Description string  `json:"description"`
	Strength    int     `json:"strength"`
	Gap         float64 `json:"gap"`
}

// Signal types.
const (
	SignalBullishDivergence = "BULLISH_DIVERGENCE"
	SignalBearishDivergence = "BEARISH_DIVERGENCE"
	SignalBullishConsensus  = "BULLISH_CONSENSUS"
	SignalBearishConsensus  = "BEARISH_CONSENSUS"
	SignalVolatilityWarning = "VOLATILITY_WARNING"
	SignalNeutral           = "NEUTRAL"
)

// GroundingLink points back at a source article used in the analysis.
type GroundingLink struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// SocialMention is one scored social/review search hit.
type SocialMention struct {
	Title     string `json:"title"`
	Sentiment string `json:"sentiment"`
	Platform  string `json:"platform,omitempty"`
}

// SocialChannel summarizes one class of social evidence.
type SocialChannel struct {
	Score    float64         `json:"score"`
	Count    int             `json:"count"`
	Mentions []SocialMention `json:"mentions,omitempty"`
}

// SocialSentiment is the supplemental grassroots signal blended into the
// consumer score.
type SocialSentiment struct {
	Reddit   SocialChannel `json:"reddit"`
	Reviews  SocialChannel `json:"reviews"`
	Employer SocialChannel `json:"employer"`
	Overall  float64       `json:"overall"`
}

// SourceStats counts what happened to candidate items during filtering.
type SourceStats struct {
	TotalProcessed  int `json:"total_processed"`
	Passed          int `json:"passed"`
	Filtered        int `json:"filtered"`
	VerifiedSources int `json:"verified_sources"`
}

// CompanyAnalysisResult is the aggregate root returned to the caller. It is
// constructed once per run and never mutated afterwards.
type CompanyAnalysisResult struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`

	ExecSentiment     float64 `json:"exec_sentiment"`
	ExecSummary       string  `json:"exec_summary"`
	WallStSentiment   float64 `json:"wall_st_sentiment"`
	WallStSummary     string  `json:"wall_st_summary"`
	ConsumerSentiment float64 `json:"consumer_sentiment"`
	ConsumerSummary   string  `json:"consumer_summary"`

	SentimentGap float64 `json:"sentiment_gap"`

	Executives     []Executive     `json:"executives"`
	Items          []NewsItem      `json:"items"`
	GroundingLinks []GroundingLink `json:"grounding_links,omitempty"`
	Signal         TradingSignal   `json:"signal"`

	Social      *SocialSentiment `json:"social_sentiment,omitempty"`
	SourceStats *SourceStats     `json:"source_stats,omitempty"`

	// LimitedData marks a run that completed with too little evidence to
	// trust any of the scalars. Scores are zero and the signal is NEUTRAL.
	LimitedData bool      `json:"limited_data,omitempty"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
}
