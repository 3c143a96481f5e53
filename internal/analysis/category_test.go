package analysis

import (
	"testing"

	"alphaspread/internal/feed"
	"alphaspread/internal/types"
)

func testIdentity() types.CompanyIdentity {
	return types.CompanyIdentity{
		Name:      "Tesla Inc.",
		ShortName: "Tesla",
		Executives: []types.Executive{
			{Name: "Elon Musk", Role: "CEO"},
			{Name: "Vaibhav Taneja", Role: "CFO"},
		},
	}
}

func TestDetectCategoryLeadership(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		description string
		label       string
	}{
		{"transcript", "Q2 Earnings Call Transcript", "", "Industry"},
		{"filing", "Tesla files 10-K annual report", "", "Industry"},
		{"exec label", "Quarterly update", "", "Executive Voice"},
		{"title speech act", "CEO says demand remains strong", "", "Industry"},
		{"quote attribution", "Production update", `"We are very confident" said the CEO on Tuesday`, "Industry"},
		{"named exec", "Weekend profile", "A long read about Elon Musk and the factory floor", "Industry"},
	}
	for _, tc := range cases {
		got := DetectCategory(tc.title, tc.description, tc.label, testIdentity())
		if got != types.Leadership {
			t.Errorf("%s: DetectCategory = %s, want Leadership", tc.name, got)
		}
	}
}

func TestDetectCategoryMarketLabels(t *testing.T) {
	for _, label := range []string{"Wall Street", "Financial Majors", "Yahoo Finance"} {
		got := DetectCategory("Shares rise on analyst note", "", label, testIdentity())
		if got != types.Market {
			t.Errorf("label %s: DetectCategory = %s, want Market", label, got)
		}
	}
}

func TestDetectCategoryConsumer(t *testing.T) {
	got := DetectCategory("Owners report charging problems", "Many a customer complaint about the app experience", "Industry", testIdentity())
	if got != types.Consumer {
		t.Errorf("DetectCategory = %s, want Consumer", got)
	}

	got = DetectCategory("Sector roundup", "", "Consumer", testIdentity())
	if got != types.Consumer {
		t.Errorf("Consumer label: DetectCategory = %s, want Consumer", got)
	}
}

func TestDetectCategoryUnclassified(t *testing.T) {
	got := DetectCategory("Industry outlook remains mixed", "Broad sector commentary with no company specifics", "Industry", testIdentity())
	if got != types.Unclassified {
		t.Errorf("DetectCategory = %s, want Unclassified", got)
	}
}

func TestMarketLabelsMatchEmittedQueryLabels(t *testing.T) {
	emitted := map[string]bool{}
	for _, q := range feed.BuildQueries("TSLA", testIdentity(), false, 28) {
		emitted[q.Label] = true
	}
	for label := range marketLabels {
		if !emitted[label] {
			t.Errorf("Market label %q is never emitted by the query builder", label)
		}
	}
}

func TestLeadershipBeatsMarketLabel(t *testing.T) {
	// A transcript syndicated through a market feed is still the executives
	// speaking.
	got := DetectCategory("Earnings call transcript", "", "Wall Street", testIdentity())
	if got != types.Leadership {
		t.Errorf("DetectCategory = %s, want Leadership", got)
	}
}
