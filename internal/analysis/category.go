package analysis

import (
	"regexp"
	"strings"

	"alphaspread/internal/types"
)

var (
	filingRe    = regexp.MustCompile(`(?i)\b(transcript|earnings call|conference call|8-k|10-k|shareholder letter)\b`)
	execTitleRe = regexp.MustCompile(`(?i)\b(ceo|cfo|cto|chief executive|chief financial|chairman|president)\b`)
	speechActRe = regexp.MustCompile(`(?i)\b(said|says|announced|commented|stated|noted|remarked|discussed|explained|warned|highlighted)\b`)
	// A quoted passage attributed to an officer in the body text.
	quoteAttributionRe = regexp.MustCompile(`"([^"]+)"\s*(?:,|said|says|according to)\s*(?:the\s*)?(?:CEO|CFO|chief executive|president|[A-Z][a-z]+)`)

	consumerContextRe = regexp.MustCompile(`(?i)\b(customer|client|user|subscriber|player|gamer|fan|community|review|complaint|feedback|support|service|product|app|platform|device|experience|ui|ux|crash|bug|glitch|quality|refund|price|cost|value|subscription)\b`)
)

// Query labels whose coverage is market commentary by construction. Must
// stay in step with the labels feed.BuildQueries emits.
var marketLabels = map[string]bool{
	"Wall Street":      true,
	"Yahoo Finance":    true,
	"Financial Majors": true,
}

// DetectCategory assigns an item to a voice bucket. Leadership markers are
// checked first and win: an earnings-call transcript syndicated by a market
// outlet is still the executives speaking.
func DetectCategory(title, description, sourceLabel string, identity types.CompanyIdentity) types.Category {
	t := strings.ToLower(title)
	s := strings.ToLower(sourceLabel)
	fullText := t + " . " + strings.ToLower(description)

	if filingRe.MatchString(t) {
		return types.Leadership
	}
	if strings.Contains(s, "executive") || strings.Contains(s, "sec filing") {
		return types.Leadership
	}
	if execTitleRe.MatchString(t) && speechActRe.MatchString(t) {
		return types.Leadership
	}
	if quoteAttributionRe.MatchString(description) {
		return types.Leadership
	}
	for _, exec := range identity.Executives {
		if exec.Name == "CEO" || exec.Name == "CFO" {
			continue
		}
		if strings.Contains(fullText, strings.ToLower(exec.Name)) {
			return types.Leadership
		}
	}

	if marketLabels[sourceLabel] {
		return types.Market
	}
	if strings.HasPrefix(sourceLabel, "Consumer") || consumerContextRe.MatchString(fullText) {
		return types.Consumer
	}

	return types.Unclassified
}
