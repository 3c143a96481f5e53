// Package analysis orchestrates one full run: resolve the company behind a
// ticker, pull every feed, filter and score what survives, and fold the
// result into the three voice scores and the gap signal.
package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"alphaspread/internal/feed"
	"alphaspread/internal/httpx"
	"alphaspread/internal/lexicon"
	"alphaspread/internal/logger"
	"alphaspread/internal/relevance"
	"alphaspread/internal/runlog"
	"alphaspread/internal/scoring"
	"alphaspread/internal/signalgen"
	"alphaspread/internal/social"
	"alphaspread/internal/sources"
	"alphaspread/internal/store"
	"alphaspread/internal/types"
)

const summaryMaxChars = 160

// ProgressFunc receives human-readable progress updates during a run.
type ProgressFunc func(msg string)

// Service wires the pipeline together. Safe for sequential reuse across
// tickers; one run at a time.
type Service struct {
	cfg        *store.Config
	tables     *lexicon.Tables
	fetcher    *feed.Fetcher
	enricher   *feed.Enricher
	scorer     *scoring.Scorer
	classifier *sources.Classifier
	social     *social.Analyzer
}

// NewService builds a service from config.
func NewService(cfg *store.Config) *Service {
	if cfg == nil {
		cfg = store.DefaultConfig()
	}
	if cfg.RunLogEnabled() {
		runlog.SetDir(cfg.RunLog.Dir)
	}
	tables := lexicon.Load()
	client := httpx.NewClient(httpx.WithTimeout(cfg.FetchTimeout()))
	fetcher := feed.NewFetcher(client, cfg.ProxyAttemptTimeout(), cfg.Fetch.MaxItemsPerFeed)
	scorer := scoring.NewScorer(tables)

	return &Service{
		cfg:        cfg,
		tables:     tables,
		fetcher:    fetcher,
		enricher:   feed.NewEnricher(cfg.ProxyAttemptTimeout(), cfg.Analysis.MaxEnrichedItems),
		scorer:     scorer,
		classifier: sources.NewClassifier(),
		social:     social.NewAnalyzer(fetcher, scorer, cfg.InterQueryDelay()),
	}
}

// Analyze runs the full pipeline for one ticker. Fetch failures degrade the
// result instead of failing it: a run with zero usable items returns a
// LimitedData result with neutral scores. Only an invalid ticker or a dead
// context is an error.
func (s *Service) Analyze(ctx context.Context, ticker string, onProgress ProgressFunc) (*types.CompanyAnalysisResult, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return nil, fmt.Errorf("empty ticker")
	}
	if onProgress == nil {
		onProgress = func(string) {}
	}

	timer := logger.StartOperation(ctx, "analyze_ticker", "ticker", t)
	ctx = timer.GetContext()

	onProgress(fmt.Sprintf("Resolving identity: %s...", t))
	identity := s.fetcher.ResolveIdentity(ctx, t)

	filter := relevance.NewFilter(t, identity)
	if filter.IsGeneric() {
		onProgress(fmt.Sprintf("Strict mode active: filtering generic noise for %q...", identity.Name))
	} else {
		onProgress(fmt.Sprintf("Broad search active for %q...", identity.Name))
	}
	logger.Progress(ctx, t, "Identity resolved",
		"company", identity.Name, "strict_mode", filter.IsGeneric())

	rawItems := s.fetchAll(ctx, t, identity, filter.IsGeneric())
	onProgress(fmt.Sprintf("Analyzing %d sources...", len(rawItems)))

	s.enricher.Enrich(ctx, rawItems)

	now := time.Now()
	items, totals, stats := s.processItems(ctx, rawItems, filter, identity, now)

	if len(items) == 0 {
		result := s.limitedResult(t, identity, stats, now)
		logger.Warn(ctx, "Run completed with no usable items", "ticker", t,
			"candidates", stats.TotalProcessed)
		s.journal(ctx, result)
		timer.End("items", 0, "limited_data", true)
		return result, nil
	}

	final := scoring.Finalize(totals)

	var socialResult *types.SocialSentiment
	if s.cfg.SocialEnabled() {
		onProgress("Gathering grassroots sentiment...")
		socialResult = s.social.Gather(ctx, t, identity)
		final.Consumer = social.BlendConsumer(final.Consumer, socialResult, s.cfg.Social.BlendWeight)
	}

	scoring.DampenOutliers(items)
	sortItems(items)

	signal := signalgen.Synthesize(final, totals)

	result := &types.CompanyAnalysisResult{
		Ticker:            t,
		CompanyName:       identity.Name,
		ExecSentiment:     final.Exec,
		ExecSummary:       "C-Suite Confidence Index",
		WallStSentiment:   final.Market,
		WallStSummary:     "External Market Sentiment",
		ConsumerSentiment: final.Consumer,
		ConsumerSummary:   "Broad Industry Context",
		SentimentGap:      signal.Gap,
		Executives:        executivesOf(identity, final.Exec),
		Items:             items,
		GroundingLinks:    groundingLinksOf(items),
		Signal:            signal,
		Social:            socialResult,
		SourceStats:       &stats,
		AnalyzedAt:        now,
	}

	logger.Signal(ctx, t, signal.Type, signal.Gap, signal.Headline,
		"exec", final.Exec, "market", final.Market, "consumer", final.Consumer,
		"items", len(items))
	s.journal(ctx, result)
	timer.End("items", len(items), "signal", signal.Type)

	return result, nil
}

// fetchAll pulls every query feed sequentially with a delay between queries.
// Individual feed failures just lose that feed's coverage.
func (s *Service) fetchAll(ctx context.Context, ticker string, identity types.CompanyIdentity, isGeneric bool) []types.RawFeedItem {
	queries := feed.BuildQueries(ticker, identity, isGeneric, s.cfg.Analysis.WindowDays)

	var all []types.RawFeedItem
	for i, q := range queries {
		if i > 0 {
			select {
			case <-ctx.Done():
				return all
			case <-time.After(s.cfg.InterQueryDelay()):
			}
		}
		items, err := s.fetcher.FetchFeed(ctx, q.URL, q.Label)
		if err != nil {
			logger.Debug(ctx, "Query feed unavailable", "label", q.Label, "error", err)
			continue
		}
		all = append(all, items...)
	}
	return all
}

// processItems runs the filtering and scoring cascade over the raw pool.
func (s *Service) processItems(ctx context.Context, rawItems []types.RawFeedItem, filter *relevance.Filter, identity types.CompanyIdentity, now time.Time) ([]types.NewsItem, scoring.BucketTotals, types.SourceStats) {
	cutoff := now.AddDate(0, 0, -s.cfg.Analysis.WindowDays)

	var items []types.NewsItem
	var totals scoring.BucketTotals
	stats := types.SourceStats{}

	for _, raw := range rawItems {
		stats.TotalProcessed++

		pubDate := feed.ParseDate(raw.PubDateStr, now)
		if pubDate.Before(cutoff) {
			stats.Filtered++
			continue
		}

		if s.isDuplicate(raw.Title, items) {
			stats.Filtered++
			continue
		}

		classification := s.classifier.Classify(raw.Link)
		if classification.Category == sources.CategoryBlacklist {
			stats.Filtered++
			continue
		}

		if !filter.IsRelevant(raw) {
			stats.Filtered++
			continue
		}

		item, delta := s.scoreItem(raw, classification, identity, pubDate, now)
		totals = totals.Merge(delta)
		items = append(items, item)
		stats.Passed++
		if classification.Whitelisted {
			stats.VerifiedSources++
		}

		if s.cfg.Analysis.MaxItems > 0 && len(items) >= s.cfg.Analysis.MaxItems {
			break
		}
	}

	logger.Debug(ctx, "Filtering complete",
		"candidates", stats.TotalProcessed, "passed", stats.Passed,
		"filtered", stats.Filtered, "verified", stats.VerifiedSources)
	return items, totals, stats
}

// scoreItem converts one accepted item into its news entry and bucket delta.
func (s *Service) scoreItem(raw types.RawFeedItem, classification sources.Classification, identity types.CompanyIdentity, pubDate, now time.Time) (types.NewsItem, scoring.BucketTotals) {
	fullText := raw.Title + ". " + raw.Description

	category := DetectCategory(raw.Title, raw.Description, raw.SourceLabel, identity)
	grassroots := sources.IsSocialOrConsumer(classification.Category)
	if grassroots {
		category = types.Consumer
	}

	timeWeight := scoring.TimeWeight(pubDate, now)
	if category == types.Leadership {
		// One executive transcript outweighs a week of wire rehashes.
		timeWeight *= 2.0
	}
	impact := scoring.ImpactMultiplier(fullText, s.tables)
	reliability := scoring.ReliabilityWeight(classification.Score, grassroots)
	finalWeight := timeWeight * impact * reliability

	rawScores := s.scorer.ScoreText(fullText)
	delta, displayScore := s.scorer.ItemContribution(category, rawScores, finalWeight, fullText)

	relatedExec := "General"
	if category == types.Leadership {
		relatedExec = "C-Suite"
	}

	item := types.NewsItem{
		Headline:         raw.Title,
		Date:             pubDate.Format("Jan 2"),
		Timestamp:        pubDate.UnixMilli(),
		Summary:          truncate(raw.Description, summaryMaxChars),
		Source:           raw.SourceName,
		RelatedExecutive: relatedExec,
		SentimentScore:   displayScore,
		SentimentLabel:   types.SentimentLabel(displayScore),
		Link:             raw.Link,
		RelevanceWeight:  finalWeight,
		SourceScore:      classification.Score,
		SourceCategory:   classification.Category,
		IsVerifiedSource: classification.Whitelisted,
		Category:         category.String(),
	}
	return item, delta
}

func (s *Service) isDuplicate(title string, accepted []types.NewsItem) bool {
	normTitle := strings.ToLower(strings.TrimSpace(title))
	for _, existing := range accepted {
		if scoring.JaccardIndex(normTitle, existing.Headline) > s.cfg.Analysis.DedupThreshold {
			return true
		}
	}
	return false
}

// limitedResult is the graceful-degradation path: every scalar neutral, the
// flag set, whatever stats were gathered preserved.
func (s *Service) limitedResult(ticker string, identity types.CompanyIdentity, stats types.SourceStats, now time.Time) *types.CompanyAnalysisResult {
	return &types.CompanyAnalysisResult{
		Ticker:          ticker,
		CompanyName:     identity.Name,
		ExecSummary:     "C-Suite Confidence Index",
		WallStSummary:   "External Market Sentiment",
		ConsumerSummary: "Broad Industry Context",
		Executives:      executivesOf(identity, 0),
		Items:           []types.NewsItem{},
		Signal:          signalgen.Synthesize(scoring.FinalScores{}, scoring.BucketTotals{}),
		SourceStats:     &stats,
		LimitedData:     true,
		AnalyzedAt:      now,
	}
}

func (s *Service) journal(ctx context.Context, result *types.CompanyAnalysisResult) {
	if !s.cfg.RunLogEnabled() {
		return
	}
	err := runlog.Append(runlog.Entry{
		Ticker:        result.Ticker,
		CompanyName:   result.CompanyName,
		ExecScore:     result.ExecSentiment,
		MarketScore:   result.WallStSentiment,
		ConsumerScore: result.ConsumerSentiment,
		Gap:           result.SentimentGap,
		SignalType:    result.Signal.Type,
		ItemCount:     len(result.Items),
		LimitedData:   result.LimitedData,
	})
	if err != nil {
		logger.Warn(ctx, "Run journal append failed", "error", err)
	}
	if err := runlog.CompressOlder(s.cfg.RunLog.RetentionDays); err != nil {
		logger.Warn(ctx, "Run journal compaction failed", "error", err)
	}
}

// sortItems orders newest day first, then most trusted source within a day.
func sortItems(items []types.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		dayI := items[i].Timestamp / int64(24*time.Hour/time.Millisecond)
		dayJ := items[j].Timestamp / int64(24*time.Hour/time.Millisecond)
		if dayI != dayJ {
			return dayI > dayJ
		}
		return items[i].SourceScore > items[j].SourceScore
	})
}

// executivesOf copies the roster onto the result, stamping each officer with
// the aggregate executive-voice score. Per-person attribution would need
// quote-level parsing the clause scorer does not attempt.
func executivesOf(identity types.CompanyIdentity, execScore float64) []types.Executive {
	execs := make([]types.Executive, len(identity.Executives))
	copy(execs, identity.Executives)
	for i := range execs {
		execs[i].SentimentScore = execScore
	}
	return execs
}

func groundingLinksOf(items []types.NewsItem) []types.GroundingLink {
	links := make([]types.GroundingLink, 0, len(items))
	for _, it := range items {
		if it.Link == "" {
			continue
		}
		links = append(links, types.GroundingLink{URI: it.Link, Title: it.Headline})
	}
	return links
}

// truncate caps a summary at max characters, never splitting a rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
