// Package feed retrieves and decodes the RSS/Atom streams the analysis runs
// on. Feed endpoints throttle or block direct datacenter traffic, so every
// fetch goes through a chain of public relay proxies, tried in order until
// one returns a plausible body.
package feed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"alphaspread/internal/httpx"
	"alphaspread/internal/logger"
	"alphaspread/internal/types"
)

// minBodyBytes rejects relay responses that are technically 200 but carry an
// error page or nothing.
const minBodyBytes = 50

// Fetcher retrieves feeds through the relay chain.
type Fetcher struct {
	client         *httpx.Client
	attemptTimeout time.Duration
	maxItems       int
}

// NewFetcher builds a fetcher. attemptTimeout bounds each relay attempt;
// maxItems caps how many items one feed may contribute.
func NewFetcher(client *httpx.Client, attemptTimeout time.Duration, maxItems int) *Fetcher {
	if client == nil {
		client = httpx.NewClient(httpx.WithTimeout(30 * time.Second))
	}
	return &Fetcher{
		client:         client,
		attemptTimeout: attemptTimeout,
		maxItems:       maxItems,
	}
}

// proxyURLs returns the relay chain for a target URL, most reliable first.
// The allorigins relay wraps the payload in JSON; the others pass it through.
func proxyURLs(target string) []string {
	escaped := url.QueryEscape(target)
	return []string{
		"https://api.allorigins.win/get?url=" + escaped,
		"https://corsproxy.io/?" + escaped,
		"https://api.codetabs.com/v1/proxy?quest=" + escaped,
	}
}

type allOriginsEnvelope struct {
	Contents string `json:"contents"`
}

// fetchViaProxies tries each relay in order and returns the first plausible
// body. All relays failing is an error; the caller decides whether that is
// fatal.
func (f *Fetcher) fetchViaProxies(ctx context.Context, target string) ([]byte, error) {
	var lastErr error
	for _, proxyURL := range proxyURLs(target) {
		attemptCtx, cancel := context.WithTimeout(ctx, f.attemptTimeout)
		resp, err := f.client.GET(attemptCtx, proxyURL, httpx.BrowserHeaders())
		cancel()
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		body := resp.Body
		if strings.Contains(proxyURL, "allorigins") {
			var envelope allOriginsEnvelope
			if err := json.Unmarshal(body, &envelope); err != nil {
				lastErr = err
				continue
			}
			body = []byte(envelope.Contents)
		}

		if len(body) < minBodyBytes {
			lastErr = fmt.Errorf("relay returned %d bytes for %s", len(body), target)
			continue
		}

		return body, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no relay configured")
	}
	return nil, fmt.Errorf("all relays failed for %s: %w", target, lastErr)
}

// cacheBust appends a timestamp parameter so relays cannot serve a stale
// cached copy of the feed.
func cacheBust(feedURL string) string {
	sep := "?"
	if strings.Contains(feedURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%st=%d", feedURL, sep, time.Now().UnixMilli())
}

// rssDocument decodes both RSS (channel/item) and Atom (entry) feeds.
// encoding/xml matches on local names, so content:encoded lands in Encoded.
type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
	Entries []rssItem `xml:"entry"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Description string  `xml:"description"`
	Encoded     string  `xml:"encoded"`
	Summary     string  `xml:"summary"`
	Content     string  `xml:"content"`
	PubDate     string  `xml:"pubDate"`
	Updated     string  `xml:"updated"`
	Date        string  `xml:"date"`
	Source      string  `xml:"source"`
	Link        rssLink `xml:"link"`
}

type rssLink struct {
	Href string `xml:"href,attr"`
	Text string `xml:",chardata"`
}

// FetchFeed retrieves one feed and returns its raw items tagged with the
// query label. Failures return an empty slice and the error; the pipeline
// treats a dead feed as missing coverage, not a hard stop.
func (f *Fetcher) FetchFeed(ctx context.Context, feedURL, sourceLabel string) ([]types.RawFeedItem, error) {
	body, err := f.fetchViaProxies(ctx, cacheBust(feedURL))
	if err != nil {
		logger.Debug(ctx, "Feed fetch failed", "label", sourceLabel, "error", err)
		return nil, err
	}

	items, err := decodeFeed(body, sourceLabel)
	if err != nil {
		logger.Debug(ctx, "Feed decode failed", "label", sourceLabel, "error", err)
		return nil, err
	}

	if f.maxItems > 0 && len(items) > f.maxItems {
		items = items[:f.maxItems]
	}
	return items, nil
}

// decodeFeed parses an RSS or Atom payload into raw items.
func decodeFeed(body []byte, sourceLabel string) ([]types.RawFeedItem, error) {
	var doc rssDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("feed decode: %w", err)
	}

	raw := doc.Channel.Items
	if len(raw) == 0 {
		raw = doc.Entries
	}

	items := make([]types.RawFeedItem, 0, len(raw))
	for _, it := range raw {
		items = append(items, extractItem(it, sourceLabel))
	}
	return items, nil
}
