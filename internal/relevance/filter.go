// Package relevance decides whether a candidate feed item is actually about
// the target company. Ticker symbols collide heavily with common English
// words and unrelated entities, so the filter is an ordered cascade of
// hand-tuned rules that trades recall for precision.
package relevance

import (
	"regexp"
	"strings"

	"alphaspread/internal/types"
)

// AlwaysTrustLabel marks the ticker-specific finance headline feed whose
// items are accepted without entity matching.
const AlwaysTrustLabel = "Yahoo Finance"

// Tickers that collide with common English words or well-known unrelated
// entities. Items for these run in strict mode.
var genericCommonWords = map[string]bool{
	"POOL": true, "CASH": true, "LOVE": true, "FAST": true, "BEST": true,
	"BIG": true, "SAFE": true, "TRUE": true, "ALL": true, "NEXT": true,
	"GAP": true, "NOW": true, "OUT": true, "GPS": true, "KEY": true,
	"SPOT": true, "RUN": true, "EAT": true, "PLAY": true, "CORN": true,
	"CAR": true, "CARE": true, "GOOD": true, "OPEN": true, "LIFE": true,
	"GOLD": true, "SAVE": true, "TARGET": true, "MACY": true, "DELL": true,
	"HP": true, "VISA": true, "BLOCK": true, "SQUARE": true, "MATCH": true,
	"UBER": true, "LYFT": true, "ZOOM": true, "SNAP": true, "BOX": true,
	"FIVE": true, "EBS": true, "RH": true, "ON": true, "NET": true,
	"BILL": true, "LULU": true, "CROX": true, "BOOT": true, "DECK": true,
	"OSTK": true, "GAS": true,
}

// Phrases where the ticker word is a common-English false positive.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpooling\b`),
	regexp.MustCompile(`(?i)\btalent pool\b`),
	regexp.MustCompile(`(?i)\bgene pool\b`),
	regexp.MustCompile(`(?i)\bdead pool\b`),
	regexp.MustCompile(`(?i)\bcar pool\b`),
	regexp.MustCompile(`(?i)\bprize pool\b`),
	regexp.MustCompile(`(?i)\bmining pool\b`),
	regexp.MustCompile(`(?i)\bdark pool\b`),
	regexp.MustCompile(`(?i)\bswimming pool\b`),
	regexp.MustCompile(`(?i)\bcash flow\b`),
	regexp.MustCompile(`(?i)\bcash back\b`),
	regexp.MustCompile(`(?i)\bgap in\b`),
	regexp.MustCompile(`(?i)\bgap between\b`),
}

// Roundup boilerplate that mentions the ticker without being about the
// company. Rejected in strict mode.
var peripheralPhrases = []string{
	"related stocks to watch",
	"other stocks to watch",
	"stocks to buy now",
	"see also:",
	"also trending:",
	"compare with:",
	"movers and shakers",
	"in the same sector",
}

// Known ambiguous abbreviations: if one of these phrases appears and the
// full company name does not, the item is about something else entirely.
var ambiguityTable = map[string][]string{
	"EBS":  {"emergency broadcast", "highway", "expressway"},
	"GPS":  {"navigation", "satellite", "coordinates", "tracking device"},
	"GOLD": {"gold price", "gold futures", "bullion", "ounce of gold"},
	"GAS":  {"gas prices", "gas station", "natural gas prices", "price at the pump"},
	"CORN": {"corn futures", "corn crop", "harvest", "bushel"},
}

var financialContextRe = regexp.MustCompile(`(?i)\b(stock|shares|market|nasdaq|nyse|dividend|earnings|revenue|profit|quarter|fiscal|guidance|investor|capital|equity|debt|valuation|rating|analyst|target|buy|sell|hold|underweight|overweight|eps|ebitda|margin|securities|ticker)\b`)

// Filter holds the per-run compiled matchers for one ticker.
type Filter struct {
	ticker    string
	isGeneric bool

	tickerRe    *regexp.Regexp
	fullNameRe  *regexp.Regexp
	shortNameRe *regexp.Regexp
	brandRes    []*regexp.Regexp
	ambiguous   []string
	fullName    string
}

// NewFilter compiles the matchers for a ticker and its resolved identity.
func NewFilter(ticker string, identity types.CompanyIdentity) *Filter {
	shortName := identity.ShortName
	if shortName == "" {
		shortName = identity.Name
	}

	isGeneric := genericCommonWords[ticker] ||
		genericCommonWords[strings.ToUpper(shortName)] ||
		(len(strings.Fields(shortName)) == 1 && len(shortName) <= 3)

	brandRes := make([]*regexp.Regexp, 0, len(identity.Brands))
	for _, b := range identity.Brands {
		brandRes = append(brandRes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(b)+`\b`))
	}

	return &Filter{
		ticker:      ticker,
		isGeneric:   isGeneric,
		tickerRe:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(ticker) + `\b`),
		fullNameRe:  regexp.MustCompile(`(?i)` + regexp.QuoteMeta(identity.Name)),
		shortNameRe: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(shortName) + `\b`),
		brandRes:    brandRes,
		ambiguous:   ambiguityTable[ticker],
		fullName:    identity.Name,
	}
}

// IsGeneric reports whether the ticker runs in strict mode.
func (f *Filter) IsGeneric() bool { return f.isGeneric }

// IsRelevant applies the cascade to one extracted item.
func (f *Filter) IsRelevant(item types.RawFeedItem) bool {
	if item.SourceLabel == AlwaysTrustLabel {
		return true
	}

	fullText := item.Title + " . " + item.Description

	for _, p := range noisePatterns {
		if p.MatchString(fullText) {
			return false
		}
	}

	lowerText := strings.ToLower(fullText)
	if len(f.ambiguous) > 0 && !f.fullNameRe.MatchString(fullText) {
		for _, phrase := range f.ambiguous {
			if strings.Contains(lowerText, phrase) {
				return false
			}
		}
	}

	hasTicker := f.tickerRe.MatchString(fullText)
	hasFullName := f.fullNameRe.MatchString(fullText)
	hasShortName := f.shortNameRe.MatchString(fullText)
	hasBrand := f.matchesBrand(fullText)

	if !f.isGeneric {
		return hasTicker || hasFullName || hasShortName || hasBrand
	}

	// Strict mode: the ticker is a common word, so demand stronger evidence.
	for _, phrase := range peripheralPhrases {
		if strings.Contains(lowerText, phrase) {
			return false
		}
	}

	hasContext := financialContextRe.MatchString(fullText)

	// A bare ticker word proves nothing for a generic symbol; the resolved
	// company name only counts when it is distinct from the ticker.
	if !strings.EqualFold(f.fullName, f.ticker) {
		if f.fullNameRe.MatchString(item.Title) {
			return true
		}
		if hasFullName && hasContext {
			return true
		}
	}
	if hasTicker && hasContext && f.isProminent(fullText) && f.mentionCount(fullText) >= 2 {
		return true
	}
	// A subsidiary or product brand is as distinctive as the company name, but
	// still demands financial context in strict mode.
	if hasBrand && hasContext {
		return true
	}

	return false
}

func (f *Filter) matchesBrand(fullText string) bool {
	for _, re := range f.brandRes {
		if re.MatchString(fullText) {
			return true
		}
	}
	return false
}

// isProminent requires the first match inside the leading 250 characters.
func (f *Filter) isProminent(fullText string) bool {
	head := fullText
	if len(head) > 250 {
		head = head[:250]
	}
	return f.tickerRe.MatchString(head) || f.fullNameRe.MatchString(head)
}

func (f *Filter) mentionCount(fullText string) int {
	n := len(f.tickerRe.FindAllStringIndex(fullText, -1))
	if !strings.EqualFold(f.fullName, f.ticker) {
		n += len(f.fullNameRe.FindAllStringIndex(fullText, -1))
	}
	return n
}
