package sources

import "testing"

func TestBlacklistShortCircuits(t *testing.T) {
	c := NewClassifier()

	for _, u := range []string{
		"https://www.openpr.com/news/12345",
		"https://marketbeat.com/stocks/NASDAQ/AAPL",
		"https://myblog.blogspot.com/2024/post",
		"https://nypost.com/business/story",
	} {
		got := c.Classify(u)
		if got.Category != CategoryBlacklist {
			t.Errorf("Classify(%s) category = %s, want Blacklisted", u, got.Category)
		}
		if got.Whitelisted || got.Score != 0 {
			t.Errorf("Classify(%s) = %+v, want unwhitelisted score 0", u, got)
		}
	}
}

func TestWhitelistTiers(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		url   string
		score int
	}{
		{"https://www.reuters.com/markets/us/story", 10},
		{"https://nytimes.com/2024/business/article", 9},
		{"https://www.cnbc.com/quotes/AAPL", 8},
		{"https://finance.yahoo.com/news/story", 7},
		{"https://bbc.co.uk/news/business", 7},
	}
	for _, tc := range cases {
		got := c.Classify(tc.url)
		if got.Score != tc.score {
			t.Errorf("Classify(%s) score = %d, want %d", tc.url, got.Score, tc.score)
		}
		if !got.Whitelisted || got.Category != CategoryNews {
			t.Errorf("Classify(%s) = %+v, want whitelisted News", tc.url, got)
		}
	}
}

func TestSubdomainMatches(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("https://economy.nytimes.com/section/business")
	if got.Score != 9 || !got.Whitelisted {
		t.Errorf("Expected subdomain to inherit tier, got %+v", got)
	}
}

func TestSocialAndReviewCategories(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		url      string
		category string
	}{
		{"https://www.reddit.com/r/stocks/comments/abc", CategorySocial},
		{"https://stocktwits.com/symbol/TSLA", CategorySocial},
		{"https://www.trustpilot.com/review/example.com", CategoryReviews},
		{"https://www.glassdoor.com/Reviews/Example", CategoryEmployer},
		{"https://apps.apple.com/us/app/example", CategoryApps},
	}
	for _, tc := range cases {
		got := c.Classify(tc.url)
		if got.Category != tc.category {
			t.Errorf("Classify(%s) category = %s, want %s", tc.url, got.Category, tc.category)
		}
		if !IsSocialOrConsumer(got.Category) {
			t.Errorf("Expected IsSocialOrConsumer true for %s", tc.category)
		}
	}

	if IsSocialOrConsumer(CategoryNews) {
		t.Error("Expected IsSocialOrConsumer false for News")
	}
}

func TestTLDHeuristics(t *testing.T) {
	c := NewClassifier()

	gov := c.Classify("https://www.sec.gov/litigation/case")
	if gov.Category != CategoryGov || gov.Score != 9 {
		t.Errorf("Expected Government tier 9, got %+v", gov)
	}

	edu := c.Classify("https://news.stanford.edu/report")
	if edu.Category != CategoryEdu || edu.Score != 8 {
		t.Errorf("Expected Educational tier 8, got %+v", edu)
	}
}

func TestUnknownDomainKeptAtFloor(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("https://small-town-gazette.example.net/story")
	if got.Whitelisted {
		t.Error("Expected unknown domain to stay unwhitelisted")
	}
	if got.Score != 1 {
		t.Errorf("Expected floor score 1, got %d", got.Score)
	}
	if got.Category != CategoryUnknown {
		t.Errorf("Expected Unknown category, got %s", got.Category)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	c := NewClassifier()

	u := "https://www.reuters.com/markets/story"
	first := c.Classify(u)
	for i := 0; i < 3; i++ {
		if got := c.Classify(u); got != first {
			t.Fatalf("Classify changed across calls: %+v vs %+v", first, got)
		}
	}
}

func TestMalformedURL(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("not a url")
	if got.Whitelisted || got.Category != CategoryUnknown {
		t.Errorf("Expected Unknown for malformed URL, got %+v", got)
	}
}
