package feed

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"alphaspread/internal/types"
)

// extractItem maps one decoded XML item to a raw feed item. Field precedence
// mirrors what the feeds actually serve: content:encoded carries the richest
// body when present, Atom entries use summary/content, and link is either
// element text (RSS) or an href attribute (Atom).
func extractItem(it rssItem, sourceLabel string) types.RawFeedItem {
	description := it.Encoded
	if description == "" {
		description = it.Description
	}
	if description == "" {
		description = it.Summary
	}
	if description == "" {
		description = it.Content
	}

	pubDateStr := it.PubDate
	if pubDateStr == "" {
		pubDateStr = it.Updated
	}
	if pubDateStr == "" {
		pubDateStr = it.Date
	}

	link := strings.TrimSpace(it.Link.Text)
	if link == "" {
		link = it.Link.Href
	}

	sourceName := strings.TrimSpace(it.Source)
	if sourceName == "" {
		sourceName = sourceLabel
	}

	return types.RawFeedItem{
		Title:       StripHTML(it.Title),
		Description: StripHTML(description),
		PubDateStr:  strings.TrimSpace(pubDateStr),
		Link:        link,
		SourceName:  sourceName,
		SourceLabel: sourceLabel,
	}
}

var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a feed timestamp, trying the formats feeds actually emit.
// Unparseable dates fall back to now so the item still scores (at maximum
// freshness weight, which is the safer error).
func ParseDate(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return now
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}

// StripHTML flattens markup to plain text. Feed descriptions routinely embed
// anchor soup and tracking pixels; sentiment scoring wants words only.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	text := doc.Text()
	return strings.Join(strings.Fields(text), " ")
}
