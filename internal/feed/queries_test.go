package feed

import (
	"strings"
	"testing"

	"alphaspread/internal/types"
)

func nvidiaIdentity() types.CompanyIdentity {
	return types.CompanyIdentity{
		Name:      "NVIDIA Corporation",
		ShortName: "NVIDIA",
		Executives: []types.Executive{
			{Name: "Jensen Huang", Role: "CEO"},
			{Name: "Colette Kress", Role: "CFO"},
		},
	}
}

func TestEntityQueryBroad(t *testing.T) {
	q := EntityQuery("NVDA", nvidiaIdentity(), false)
	for _, want := range []string{`"NVIDIA Corporation"`, "NVDA", `"NVIDIA"`} {
		if !strings.Contains(q, want) {
			t.Errorf("Expected %s in broad query %q", want, q)
		}
	}
	if strings.Contains(q, "stock OR earnings") {
		t.Errorf("Broad query should not carry the generic qualifier: %q", q)
	}
}

func TestEntityQueryGeneric(t *testing.T) {
	id := types.CompanyIdentity{Name: "GAS", ShortName: "GAS"}
	q := EntityQuery("GAS", id, true)
	if !strings.Contains(q, "stock OR earnings OR dividend OR revenue") {
		t.Errorf("Expected financial qualifier in generic query: %q", q)
	}
}

func TestExecQueryInjectsNames(t *testing.T) {
	q := execQuery("(base)", nvidiaIdentity())
	if !strings.Contains(q, `"Jensen Huang"`) {
		t.Errorf("Expected executive name injected: %q", q)
	}
	if !strings.Contains(q, `"Chief Executive"`) {
		t.Errorf("Expected generic officer terms retained: %q", q)
	}
}

func TestExecQueryPlaceholderRoster(t *testing.T) {
	id := types.CompanyIdentity{
		Name:       "Acme Corp",
		ShortName:  "Acme",
		Executives: []types.Executive{{Name: "CEO", Role: "Chief Executive"}, {Name: "CFO", Role: "Chief Financial"}},
	}
	q := execQuery("(base)", id)
	if strings.Contains(q, `"CEO"`) {
		t.Errorf("Placeholder names must not be quoted as people: %q", q)
	}
	if !strings.Contains(q, "CEO OR CFO") {
		t.Errorf("Expected keyword fallback: %q", q)
	}
}

func TestBuildQueries(t *testing.T) {
	queries := BuildQueries("NVDA", nvidiaIdentity(), false, 28)
	if len(queries) != 8 {
		t.Fatalf("Expected 8 queries, got %d", len(queries))
	}

	if queries[0].Label != "Yahoo Finance" {
		t.Errorf("Expected ticker headline feed first, got %s", queries[0].Label)
	}
	if !strings.Contains(queries[0].URL, "finance.yahoo.com/rss/headline?s=NVDA") {
		t.Errorf("Unexpected headline URL: %s", queries[0].URL)
	}

	labels := map[string]bool{}
	for _, q := range queries {
		labels[q.Label] = true
		if q.Label == "Yahoo Finance" {
			continue
		}
		if !strings.Contains(q.URL, "news.google.com/rss/search") {
			t.Errorf("Query %s should use the news search feed: %s", q.Label, q.URL)
		}
		if !strings.Contains(q.URL, "when%3A28d") {
			t.Errorf("Query %s missing recency window: %s", q.Label, q.URL)
		}
	}

	for _, want := range []string{"Financial Majors", "Global News", "Executive Voice", "Executive Media", "Wall Street", "Consumer", "Industry"} {
		if !labels[want] {
			t.Errorf("Missing query label %s", want)
		}
	}
}

func TestBuildQueriesAddsBrandFeed(t *testing.T) {
	id := types.CompanyIdentity{
		Name:       "Meta Platforms Inc.",
		ShortName:  "Meta Platforms",
		Brands:     []string{"Facebook", "Instagram"},
		Executives: []types.Executive{{Name: "Mark Zuckerberg", Role: "CEO"}},
	}
	queries := BuildQueries("META", id, false, 28)
	if len(queries) != 9 {
		t.Fatalf("Expected brand feed appended, got %d queries", len(queries))
	}

	last := queries[len(queries)-1]
	if last.Label != "Consumer Brands" {
		t.Errorf("Expected Consumer Brands label, got %s", last.Label)
	}
	if !strings.Contains(last.URL, "%22Instagram%22") {
		t.Errorf("Expected quoted brand in URL: %s", last.URL)
	}
}
