package feed

import (
	"fmt"
	"net/url"
	"strings"

	"alphaspread/internal/types"
)

// Query is one labeled feed to fetch. The label doubles as the default
// source tag and drives category detection downstream.
type Query struct {
	Label string
	URL   string
}

var financialMajors = []string{
	"site:reuters.com", "site:bloomberg.com", "site:cnbc.com", "site:wsj.com",
	"site:ft.com", "site:marketwatch.com", "site:barrons.com", "site:forbes.com",
	"site:investors.com", "site:thestreet.com", "site:benzinga.com", "site:fool.com",
	"site:seekingalpha.com", "site:tipranks.com", "site:finance.yahoo.com",
}

var globalMajors = []string{
	"site:bbc.com", "site:nytimes.com", "site:washingtonpost.com",
	"site:theguardian.com", "site:economist.com", "site:usatoday.com",
	"site:apnews.com", "site:npr.org", "site:politico.com",
}

var regionalSources = []string{
	"site:nikkei.com", "site:scmp.com", "site:straitstimes.com",
	"site:afr.com", "site:smh.com.au",
	"site:dw.com", "site:france24.com", "site:euronews.com",
	"site:timesofindia.indiatimes.com", "site:hindustantimes.com",
	"site:aljazeera.com", "site:jpost.com",
	"site:torontosun.com", "site:financialpost.com",
}

var grassrootsSources = []string{
	"site:reddit.com", "site:trustpilot.com", "site:glassdoor.com",
}

// EntityQuery builds the company term shared by all news searches. Generic
// tickers get an AND-ed financial qualifier so the search itself filters out
// most common-word noise before the relevance cascade runs.
func EntityQuery(ticker string, identity types.CompanyIdentity, isGeneric bool) string {
	if isGeneric {
		return fmt.Sprintf(`("%s" OR (%s AND (stock OR earnings OR dividend OR revenue)))`, identity.Name, ticker)
	}
	return fmt.Sprintf(`("%s" OR %s OR "%s")`, identity.Name, ticker, identity.ShortName)
}

// execQuery injects the named executives into the entity term so personality
// driven coverage is caught even when the headline omits the company.
func execQuery(entityQuery string, identity types.CompanyIdentity) string {
	var names []string
	for _, e := range identity.Executives {
		if e.Name != "CEO" && e.Name != "CFO" {
			names = append(names, `"`+e.Name+`"`)
		}
	}
	if len(names) == 0 {
		return entityQuery + ` AND (CEO OR CFO OR "Chief Executive")`
	}
	return fmt.Sprintf(`%s AND (%s OR CEO OR CFO OR "Chief Executive")`, entityQuery, strings.Join(names, " OR "))
}

// brandQuery targets subsidiary and product brands, which consumer coverage
// routinely names without ever mentioning the parent company.
func brandQuery(identity types.CompanyIdentity) string {
	quoted := make([]string, 0, len(identity.Brands))
	for _, b := range identity.Brands {
		quoted = append(quoted, `"`+b+`"`)
	}
	return fmt.Sprintf(`(%s) AND (customer OR review OR users OR product OR service OR app)`, strings.Join(quoted, " OR "))
}

// SearchURL builds a news search feed URL for an arbitrary query.
func SearchURL(q string) string {
	return "https://news.google.com/rss/search?q=" + url.QueryEscape(q) + "&hl=en-US&gl=US&ceid=US:en"
}

// BuildQueries assembles the labeled feed list for one run: the ticker's own
// finance headline feed plus news searches targeting each voice. windowDays
// bounds the search recency.
func BuildQueries(ticker string, identity types.CompanyIdentity, isGeneric bool, windowDays int) []Query {
	entity := EntityQuery(ticker, identity, isGeneric)
	exec := execQuery(entity, identity)
	window := fmt.Sprintf(" when:%dd", windowDays)

	queries := []Query{
		{Label: "Yahoo Finance", URL: "https://finance.yahoo.com/rss/headline?s=" + url.QueryEscape(ticker)},
		{Label: "Financial Majors", URL: SearchURL(entity + " AND (" + strings.Join(financialMajors, " OR ") + ")" + window)},
		{Label: "Global News", URL: SearchURL(entity + " AND (" + strings.Join(globalMajors, " OR ") + " OR " + strings.Join(regionalSources, " OR ") + ")" + window)},
		{Label: "Executive Voice", URL: SearchURL(exec + ` AND ("press release" OR "earnings call" OR transcript OR "shareholder letter")` + window)},
		{Label: "Executive Media", URL: SearchURL(exec + ` AND (interview OR speaks OR discusses OR "fireside chat" OR "Q&A" OR quotes OR said OR announced OR comments)` + window)},
		{Label: "Wall Street", URL: SearchURL(entity + ` AND (analyst OR upgrade OR downgrade OR "price target" OR rating OR buy OR sell)` + window)},
		{Label: "Consumer", URL: SearchURL(entity + ` AND (customer OR review OR product OR service OR complaint OR "social media" OR sentiment OR demand OR sales OR store OR brand OR app OR users OR traffic OR survey OR ` + strings.Join(grassrootsSources, " OR ") + ")" + window)},
		{Label: "Industry", URL: SearchURL(entity + " AND (business OR sector OR industry OR growth OR strategy)" + window)},
	}

	if len(identity.Brands) > 0 {
		queries = append(queries, Query{
			Label: "Consumer Brands",
			URL:   SearchURL(brandQuery(identity) + window),
		})
	}
	return queries
}
