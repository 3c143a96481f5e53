// Package sources classifies news source domains into trust tiers. Content
// farms, press-release mills and tabloids are a major cause of false-positive
// sentiment, so the classifier rejects them outright and tiers everything
// else so the aggregator can weight trustworthy outlets more heavily.
package sources

import (
	"net/url"
	"strings"
)

// Categories returned by Classify.
const (
	CategoryNews      = "News"
	CategoryGov       = "Government"
	CategoryEdu       = "Educational"
	CategorySocial    = "Social Discussion"
	CategoryReviews   = "Consumer Reviews"
	CategoryEmployer  = "Employer Reviews"
	CategoryApps      = "App Reviews"
	CategoryBlacklist = "Blacklisted"
	CategoryUnknown   = "Unknown"
)

// Classification is the verdict for one URL.
type Classification struct {
	Whitelisted bool
	Score       int // 0-10 trust score
	Category    string
}

// Classifier holds the domain tables. Construct once via NewClassifier; the
// tables are never mutated afterwards, so Classify is a pure function of the
// URL and safe for concurrent use.
type Classifier struct {
	blacklist []string
	social    map[string]int
	reviews   map[string]int
	employer  map[string]int
	apps      map[string]int
	whitelist map[string]int
}

// NewClassifier builds the default domain registry.
func NewClassifier() *Classifier {
	return &Classifier{
		blacklist: []string{
			// Press-release mills
			"openpr.com", "prweb.com", "einpresswire.com", "issuewire.com",
			"accesswire.com", "prunderground.com", "prlog.org", "newswire.com",
			// Tabloids
			"dailymail.co.uk", "thesun.co.uk", "mirror.co.uk", "nypost.com",
			"dailystar.co.uk",
			// Content-farm patterns
			".blogspot.", "marketbeat.com", "stocktitan.net", "newsfilter.io",
		},
		social: map[string]int{
			"reddit.com":     6,
			"stocktwits.com": 6,
		},
		reviews: map[string]int{
			"trustpilot.com":      6,
			"consumeraffairs.com": 6,
			"sitejabber.com":      6,
		},
		employer: map[string]int{
			"glassdoor.com": 5,
			"indeed.com":    5,
		},
		apps: map[string]int{
			"apps.apple.com":  5,
			"play.google.com": 5,
		},
		whitelist: map[string]int{
			// Wire services and premium financial press
			"reuters.com": 10, "apnews.com": 10, "bloomberg.com": 10,
			"wsj.com": 10, "ft.com": 10, "afp.com": 10, "upi.com": 10,
			// Major newspapers
			"nytimes.com": 9, "washingtonpost.com": 9, "theguardian.com": 9,
			"economist.com": 9, "barrons.com": 9, "nikkei.com": 9,
			"asia.nikkei.com": 9, "thetimes.co.uk": 9, "lemonde.fr": 9,
			"theglobeandmail.com": 9,
			// Regional majors and quality tech press
			"cnbc.com": 8, "fortune.com": 8, "businessinsider.com": 8,
			"techcrunch.com": 8, "theverge.com": 8, "wired.com": 8,
			"arstechnica.com": 8, "scmp.com": 8, "straitstimes.com": 8,
			"financialpost.com": 8, "afr.com": 8, "japantimes.co.jp": 8,
			"theatlantic.com": 8, "forbes.com": 8,
			// Broadcast and trade
			"bbc.com": 7, "bbc.co.uk": 7, "npr.org": 7, "cbsnews.com": 7,
			"abcnews.go.com": 7, "foxbusiness.com": 7, "marketwatch.com": 7,
			"benzinga.com": 7, "thestreet.com": 7, "investors.com": 7,
			"fool.com": 7, "seekingalpha.com": 7, "tipranks.com": 7,
			"finance.yahoo.com": 7, "usatoday.com": 7, "politico.com": 7,
			"aljazeera.com": 7, "dw.com": 7, "france24.com": 7, "euronews.com": 7,
		},
	}
}

// Classify maps a URL to a trust verdict. Order matters: blacklist first,
// then the social/review tables, then the tiered whitelist, then TLD
// heuristics. Unknown domains are kept (not whitelisted) with a floor score
// so coverage survives at reduced weight.
func (c *Classifier) Classify(rawURL string) Classification {
	host := hostnameOf(rawURL)
	if host == "" {
		return Classification{Whitelisted: false, Score: 1, Category: CategoryUnknown}
	}

	for _, b := range c.blacklist {
		if strings.Contains(host, b) {
			return Classification{Whitelisted: false, Score: 0, Category: CategoryBlacklist}
		}
	}

	if s, ok := matchDomain(host, c.social); ok {
		return Classification{Whitelisted: true, Score: s, Category: CategorySocial}
	}
	if s, ok := matchDomain(host, c.reviews); ok {
		return Classification{Whitelisted: true, Score: s, Category: CategoryReviews}
	}
	if s, ok := matchDomain(host, c.employer); ok {
		return Classification{Whitelisted: true, Score: s, Category: CategoryEmployer}
	}
	if s, ok := matchDomain(host, c.apps); ok {
		return Classification{Whitelisted: true, Score: s, Category: CategoryApps}
	}

	if s, ok := matchDomain(host, c.whitelist); ok {
		return Classification{Whitelisted: true, Score: s, Category: CategoryNews}
	}

	if strings.HasSuffix(host, ".gov") {
		return Classification{Whitelisted: true, Score: 9, Category: CategoryGov}
	}
	if strings.HasSuffix(host, ".edu") {
		return Classification{Whitelisted: true, Score: 8, Category: CategoryEdu}
	}

	return Classification{Whitelisted: false, Score: 1, Category: CategoryUnknown}
}

// IsSocialOrConsumer reports whether the category should force an item into
// the consumer bucket with the flat grassroots reliability weight.
func IsSocialOrConsumer(category string) bool {
	switch category {
	case CategorySocial, CategoryReviews, CategoryEmployer, CategoryApps:
		return true
	}
	return false
}

func hostnameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// matchDomain matches when the hostname equals or is a subdomain of a
// registered domain, or (for entries that carry their own subdomain, like
// finance.yahoo.com) when it contains the entry.
func matchDomain(host string, table map[string]int) (int, bool) {
	for domain, score := range table {
		if host == domain || strings.HasSuffix(host, "."+domain) || strings.Contains(host, domain) {
			return score, true
		}
	}
	return 0, false
}
