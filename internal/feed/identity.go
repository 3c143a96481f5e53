package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"alphaspread/internal/logger"
	"alphaspread/internal/types"
)

// Well-known mega-cap tickers resolved without a network round trip. Having
// the real executive names lets the query builder chase personality-driven
// coverage (Musk, Huang) instead of the generic "CEO" keyword.
var topTickers = map[string]types.CompanyIdentity{
	"AAPL":  {Name: "Apple Inc.", Executives: []types.Executive{{Name: "Tim Cook", Role: "CEO"}, {Name: "Luca Maestri", Role: "CFO"}}},
	"MSFT":  {Name: "Microsoft Corporation", Executives: []types.Executive{{Name: "Satya Nadella", Role: "CEO"}, {Name: "Amy Hood", Role: "CFO"}}},
	"GOOG":  {Name: "Alphabet Inc.", Brands: []string{"Google", "YouTube"}, Executives: []types.Executive{{Name: "Sundar Pichai", Role: "CEO"}, {Name: "Ruth Porat", Role: "CFO"}}},
	"GOOGL": {Name: "Alphabet Inc.", Brands: []string{"Google", "YouTube"}, Executives: []types.Executive{{Name: "Sundar Pichai", Role: "CEO"}, {Name: "Ruth Porat", Role: "CFO"}}},
	"AMZN":  {Name: "Amazon.com Inc.", Brands: []string{"AWS", "Prime Video", "Whole Foods"}, Executives: []types.Executive{{Name: "Andy Jassy", Role: "CEO"}, {Name: "Brian Olsavsky", Role: "CFO"}}},
	"NVDA":  {Name: "NVIDIA Corporation", Executives: []types.Executive{{Name: "Jensen Huang", Role: "CEO"}, {Name: "Colette Kress", Role: "CFO"}}},
	"TSLA":  {Name: "Tesla Inc.", Executives: []types.Executive{{Name: "Elon Musk", Role: "CEO"}, {Name: "Vaibhav Taneja", Role: "CFO"}}},
	"META":  {Name: "Meta Platforms Inc.", Brands: []string{"Facebook", "Instagram", "WhatsApp"}, Executives: []types.Executive{{Name: "Mark Zuckerberg", Role: "CEO"}, {Name: "Susan Li", Role: "CFO"}}},
	"AMD":   {Name: "Advanced Micro Devices", Executives: []types.Executive{{Name: "Lisa Su", Role: "CEO"}, {Name: "Jean Hu", Role: "CFO"}}},
	"NFLX":  {Name: "Netflix Inc.", Executives: []types.Executive{{Name: "Ted Sarandos", Role: "Co-CEO"}, {Name: "Greg Peters", Role: "Co-CEO"}}},
}

var defaultExecutives = []types.Executive{
	{Name: "CEO", Role: "Chief Executive"},
	{Name: "CFO", Role: "Chief Financial"},
}

var corpSuffixRe = regexp.MustCompile(`(?i),?\s*(Inc\.?|Corp\.?|Corporation|Ltd\.?|Limited|LLC|Plc|Co\.?|Company|Holdings)\b\.?`)

// ShortName strips corporate suffixes from a full company name.
func ShortName(name string) string {
	return strings.TrimSpace(corpSuffixRe.ReplaceAllString(name, ""))
}

type yahooSearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
	} `json:"quotes"`
}

type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol    string `json:"symbol"`
			ShortName string `json:"shortName"`
			LongName  string `json:"longName"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// ResolveIdentity maps a ticker to a company name and executive roster.
// Hardcoded mega caps first, then a Yahoo symbol search through the proxy
// chain, then the quote lookup, then the ticker itself. Resolution failure is
// never fatal: a ticker-as-name identity just means the relevance filter runs
// stricter.
func (f *Fetcher) ResolveIdentity(ctx context.Context, ticker string) types.CompanyIdentity {
	if id, ok := topTickers[ticker]; ok {
		id.ShortName = ShortName(id.Name)
		return id
	}

	if name := f.resolveViaSearch(ctx, ticker); name != "" {
		return identityFromName(name)
	}
	if name := f.resolveViaQuote(ctx, ticker); name != "" {
		return identityFromName(name)
	}

	logger.Warn(ctx, "Company resolution failed, using ticker as name", "ticker", ticker)
	return types.CompanyIdentity{
		Name:       ticker,
		ShortName:  ticker,
		Executives: defaultExecutives,
	}
}

func identityFromName(name string) types.CompanyIdentity {
	return types.CompanyIdentity{
		Name:       name,
		ShortName:  ShortName(name),
		Executives: defaultExecutives,
	}
}

func (f *Fetcher) resolveViaSearch(ctx context.Context, ticker string) string {
	searchURL := "https://query1.finance.yahoo.com/v1/finance/search?q=" + url.QueryEscape(ticker)
	body, err := f.fetchViaProxies(ctx, searchURL)
	if err != nil {
		logger.Debug(ctx, "Symbol search unavailable", "ticker", ticker, "error", fmt.Sprint(err))
		return ""
	}
	var parsed yahooSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Quotes) == 0 {
		return ""
	}
	match := parsed.Quotes[0]
	for _, q := range parsed.Quotes {
		if q.Symbol == ticker {
			match = q
			break
		}
	}
	if match.ShortName != "" {
		return match.ShortName
	}
	return match.LongName
}

func (f *Fetcher) resolveViaQuote(ctx context.Context, ticker string) string {
	quoteURL := "https://query1.finance.yahoo.com/v7/finance/quote?symbols=" + url.QueryEscape(ticker)
	body, err := f.fetchViaProxies(ctx, quoteURL)
	if err != nil {
		logger.Debug(ctx, "Quote lookup unavailable", "ticker", ticker, "error", fmt.Sprint(err))
		return ""
	}
	var parsed yahooQuoteResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.QuoteResponse.Result) == 0 {
		return ""
	}
	r := parsed.QuoteResponse.Result[0]
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.LongName
}
