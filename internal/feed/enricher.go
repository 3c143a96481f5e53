package feed

import (
	"context"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"alphaspread/internal/logger"
	"alphaspread/internal/types"
)

// Summaries shorter than this carry too little text for clause scoring; the
// enricher goes after the full article body.
const thinSummaryBytes = 80

// Enricher fetches article bodies for items whose feed description is too
// thin to score meaningfully. Strictly best effort and capped per run: a
// slow or hostile article page must not stall the analysis.
type Enricher struct {
	timeout    time.Duration
	maxPerRun  int
	fetchDelay time.Duration
}

// NewEnricher builds an enricher. maxPerRun caps article fetches per
// analysis run.
func NewEnricher(timeout time.Duration, maxPerRun int) *Enricher {
	return &Enricher{
		timeout:    timeout,
		maxPerRun:  maxPerRun,
		fetchDelay: 500 * time.Millisecond,
	}
}

// Enrich replaces thin descriptions with scraped article text, in place.
// Items without a link, or past the per-run cap, keep their feed summary.
func (e *Enricher) Enrich(ctx context.Context, items []types.RawFeedItem) {
	fetched := 0
	for i := range items {
		if fetched >= e.maxPerRun {
			return
		}
		if ctx.Err() != nil {
			return
		}
		if len(items[i].Description) >= thinSummaryBytes || items[i].Link == "" {
			continue
		}

		body := e.fetchArticleBody(ctx, items[i].Link)
		if body != "" {
			items[i].Description = body
		}
		fetched++

		select {
		case <-ctx.Done():
			return
		case <-time.After(e.fetchDelay):
		}
	}
}

// fetchArticleBody pulls paragraph text out of common article containers.
func (e *Enricher) fetchArticleBody(ctx context.Context, articleURL string) string {
	c := colly.NewCollector()
	c.SetRequestTimeout(e.timeout)

	var content string

	c.OnHTML("article, div.article-body, div.content-body, div.story-content", func(el *colly.HTMLElement) {
		paragraphs := []string{}
		el.ForEach("p", func(_ int, p *colly.HTMLElement) {
			text := strings.TrimSpace(p.Text)
			if text != "" && len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		content = strings.Join(paragraphs, " ")
	})

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	if err := c.Visit(articleURL); err != nil {
		logger.Debug(ctx, "Article enrichment failed", "url", articleURL, "error", err)
		return ""
	}

	return content
}
