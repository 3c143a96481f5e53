package relevance

import (
	"testing"

	"alphaspread/internal/types"
)

func item(title, description string) types.RawFeedItem {
	return types.RawFeedItem{Title: title, Description: description, SourceLabel: "Industry"}
}

func TestGenericTickerRejectsCommodityNews(t *testing.T) {
	// Unresolved identity: the ticker doubles as the company name.
	f := NewFilter("GAS", types.CompanyIdentity{Name: "GAS", ShortName: "GAS"})
	if !f.IsGeneric() {
		t.Fatal("Expected GAS to run in strict mode")
	}

	it := item("Gas prices fall as summer ends", "National average price at the pump declines for a third week")
	if f.IsRelevant(it) {
		t.Error("Expected commodity story to be rejected for generic ticker")
	}
}

func TestGenericTickerAcceptsCompanyCoverage(t *testing.T) {
	f := NewFilter("GAS", types.CompanyIdentity{Name: "Gaslog Partners", ShortName: "Gaslog Partners"})

	it := item("Gaslog Partners posts stronger earnings", "The shipping company reported quarterly revenue growth")
	if !f.IsRelevant(it) {
		t.Error("Expected company coverage with the resolved name to pass")
	}
}

func TestAmbiguousAbbreviationRejected(t *testing.T) {
	f := NewFilter("GPS", types.CompanyIdentity{Name: "Gap Inc.", ShortName: "Gap"})

	it := item("New satellite navigation rollout", "The tracking device uses GPS coordinates for fleet management")
	if f.IsRelevant(it) {
		t.Error("Expected navigation story to be rejected via ambiguity table")
	}
}

func TestNoisePatternRejectedForAnyTicker(t *testing.T) {
	f := NewFilter("NVDA", types.CompanyIdentity{Name: "NVIDIA Corporation", ShortName: "NVIDIA"})

	it := item("Hotel opens new swimming pool for NVDA conference guests", "")
	if f.IsRelevant(it) {
		t.Error("Expected noise pattern to reject regardless of ticker match")
	}
}

func TestBroadModeAcceptsAnyEntityMatch(t *testing.T) {
	f := NewFilter("NVDA", types.CompanyIdentity{Name: "NVIDIA Corporation", ShortName: "NVIDIA"})
	if f.IsGeneric() {
		t.Fatal("Expected NVDA to run in broad mode")
	}

	if !f.IsRelevant(item("NVDA climbs ahead of results", "")) {
		t.Error("Expected bare ticker mention to pass in broad mode")
	}
	if !f.IsRelevant(item("NVIDIA unveils new chips", "")) {
		t.Error("Expected short name mention to pass in broad mode")
	}
	if f.IsRelevant(item("Semiconductor sector update", "Chipmakers rally across the board")) {
		t.Error("Expected item with no entity mention to be rejected")
	}
}

func TestPeripheralMentionRejectedInStrictMode(t *testing.T) {
	f := NewFilter("CASH", types.CompanyIdentity{Name: "CASH", ShortName: "CASH"})

	it := item("Related stocks to watch: CASH leads movers", "Other stocks to watch in the market today")
	if f.IsRelevant(it) {
		t.Error("Expected roundup boilerplate to be rejected")
	}
}

func TestStrictModeRequiresProminenceAndRepetition(t *testing.T) {
	f := NewFilter("CASH", types.CompanyIdentity{Name: "CASH", ShortName: "CASH"})

	accepted := item("CASH stock jumps on earnings", "CASH reported record quarterly revenue and raised guidance")
	if !f.IsRelevant(accepted) {
		t.Error("Expected prominent repeated ticker with financial context to pass")
	}

	single := item("Market wrap", "Late in the session CASH edged higher along with other stocks")
	if f.IsRelevant(single) {
		t.Error("Expected single buried mention to be rejected")
	}
}

func TestAlwaysTrustedFeedBypassesMatching(t *testing.T) {
	f := NewFilter("GAS", types.CompanyIdentity{Name: "GAS", ShortName: "GAS"})

	it := types.RawFeedItem{
		Title:       "Quarterly results announced",
		Description: "No entity mention at all",
		SourceLabel: AlwaysTrustLabel,
	}
	if !f.IsRelevant(it) {
		t.Error("Expected ticker-specific feed item to bypass entity matching")
	}
}

func TestGenericDetectionFromShortName(t *testing.T) {
	// Single short word after suffix stripping forces strict mode even when
	// the ticker itself is not on the generic list.
	f := NewFilter("XYZ", types.CompanyIdentity{Name: "Ora Inc.", ShortName: "Ora"})
	if !f.IsGeneric() {
		t.Error("Expected three-letter single-word short name to trigger strict mode")
	}
}

func TestBrandMatchAcceptsSubsidiaryCoverage(t *testing.T) {
	identity := types.CompanyIdentity{
		Name:      "Meta Platforms Inc.",
		ShortName: "Meta Platforms",
		Brands:    []string{"Instagram", "WhatsApp"},
	}
	f := NewFilter("META", identity)

	it := item("Instagram rolls out new creator tools", "Users report the update improves engagement")
	if !f.IsRelevant(it) {
		t.Error("Expected brand mention to pass in broad mode")
	}
}

func TestBrandMatchRequiresContextInStrictMode(t *testing.T) {
	identity := types.CompanyIdentity{
		Name:      "BOX",
		ShortName: "BOX",
		Brands:    []string{"Box Drive"},
	}
	f := NewFilter("BOX", identity)
	if !f.IsGeneric() {
		t.Fatal("Expected BOX to run in strict mode")
	}

	noContext := item("Box Drive tips and tricks", "A walkthrough of the desktop sync features")
	if f.IsRelevant(noContext) {
		t.Error("Expected brand mention without financial context to be rejected in strict mode")
	}

	withContext := item("Box Drive adoption lifts revenue", "The company credited subscriber growth for the stronger quarter")
	if !f.IsRelevant(withContext) {
		t.Error("Expected brand mention with financial context to pass in strict mode")
	}
}
