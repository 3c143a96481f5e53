// Package lexicon holds the static word and phrase weight tables behind the
// three sentiment voices. Tables are built once at process start and never
// mutated. Weight sign is polarity, magnitude is strength.
package lexicon

// Tables bundles every dictionary the clause scorer needs.
type Tables struct {
	Consumer map[string]float64
	ExecTone map[string]float64
	WallSt   map[string]float64

	ConsumerPhrases map[string]float64
	InsiderPhrases  map[string]float64
	ExecPhrases     map[string]float64
	MarketPhrases   map[string]float64

	ImpactWeights map[string]float64

	Hedging     map[string]bool
	FutureTense map[string]bool
	Boosters    map[string]float64
	Negations   map[string]bool
}

// Phrase multipliers. Insider activity is the highest-conviction signal the
// pipeline knows about.
const (
	InsiderPhraseMult = 3.0
	ExecPhraseMult    = 1.5
)

// Load builds the full table set.
func Load() *Tables {
	return &Tables{
		Consumer:        loadConsumerLexicon(),
		ExecTone:        loadExecToneLexicon(),
		WallSt:          loadWallStLexicon(),
		ConsumerPhrases: loadConsumerPhrases(),
		InsiderPhrases:  loadInsiderPhrases(),
		ExecPhrases:     loadExecPhrases(),
		MarketPhrases:   loadMarketPhrases(),
		ImpactWeights:   loadImpactWeights(),
		Hedging:         toSet(hedgingWords),
		FutureTense:     toSet(futureTenseWords),
		Boosters:        loadBoosters(),
		Negations:       toSet(negationWords),
	}
}

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// The "user" voice: product quality, experience, hype and crisis language.
func loadConsumerLexicon() map[string]float64 {
	return map[string]float64{
		// Positive - product quality and experience
		"amazing": 3.0, "love": 3.5, "excellent": 3.0, "best": 2.5, "great": 2.0,
		"helpful": 2.0, "clean": 1.5, "fast": 2.0, "friendly": 2.0, "easy": 2.5,
		"worth": 2.0, "recommend": 3.0, "happy": 2.0, "awesome": 2.5, "seamless": 3.0,
		"addicted": 2.0, "obsessed": 2.5, "premium": 2.0, "luxury": 1.5, "must-have": 3.5,
		"bargain": 2.0, "value": 2.0, "reliable": 3.0, "trust": 3.0, "favorite": 2.5,
		"ecosystem": 2.0, "community": 1.5, "fan": 1.5, "loyal": 2.5, "intuitive": 2.5,
		"responsive": 2.0, "durable": 2.5, "robust": 2.0, "innovative": 3.0, "sleek": 1.5,
		"flagship": 2.5, "solid": 2.0, "secure": 2.0, "original": 2.0, "affordable": 2.0,
		"fun": 2.0, "engaging": 2.0, "smooth": 2.0, "stable": 2.0, "fresh": 1.5,

		// Positive - hype and demand
		"viral": 2.5, "buzz": 2.0, "craze": 2.0, "trending": 1.5, "waitlist": 2.0,
		"backorder": 1.5, "queue": 1.5, "hyped": 1.5, "anticipation": 1.5, "sold-out": 2.5,

		// Negative - product quality and experience
		"terrible": -3.5, "hate": -3.5, "worst": -4.0, "horrible": -3.5, "awful": -3.5,
		"rude": -3.0, "slow": -2.5, "dirty": -2.5, "expensive": -2.0, "overpriced": -3.0,
		"bad": -2.5, "poor": -2.5, "useless": -3.5, "broken": -3.5, "avoid": -4.0,
		"scam": -4.5, "waiting": -2.0, "issue": -1.5, "problem": -1.5, "buggy": -3.0,
		"glitch": -2.5, "crash": -3.0, "frustrated": -3.0, "annoying": -2.5, "refund": -3.0,
		"cancel": -3.0, "unsubscribe": -3.0, "churn": -3.5, "rip-off": -4.0, "laggy": -2.5,
		"clunky": -2.5, "outdated": -2.5, "obsolete": -3.0, "flimsy": -3.0, "bloatware": -2.5,
		"ads": -1.5, "spam": -2.5, "intrusive": -2.5, "unstable": -3.0, "hack": -4.0,
		"breach": -5.0, "leak": -4.0, "toxic": -3.5, "dead": -3.0, "copy": -1.5,
		"clone": -1.5, "damaged": -3.0, "defective": -3.5, "recall": -4.0, "fail": -3.0,
		"failure": -3.0, "disappointing": -2.5, "underwhelming": -2.0, "boring": -1.5,

		// Negative - support and service
		"ignored": -3.0, "ghosted": -3.0, "unhelpful": -2.5, "incompetent": -3.0,
		"robot": -1.5, "bot": -1.5, "automated": -0.5, "delays": -2.0, "charged": -1.5,
	}
}

// The "internal" voice: C-suite confidence versus evasive non-answers.
func loadExecToneLexicon() map[string]float64 {
	return map[string]float64{
		// Vision and confidence
		"confident": 3.0, "thrilled": 3.0, "excited": 3.0, "optimistic": 2.5, "committed": 3.0,
		"vision": 2.5, "roadmap": 2.0, "transformational": 3.5, "foundational": 2.0,
		"belief": 2.0, "conviction": 2.5, "dedicated": 2.0, "mission": 2.0,
		"robust": 2.5, "resilient": 2.5, "strong": 2.0, "momentum": 2.5, "accelerate": 2.5,
		"executing": 2.5, "record": 3.0, "milestone": 2.5, "innovation": 2.5, "leadership": 2.5,
		"strategic": 1.5, "opportunity": 2.5, "discipline": 2.0, "efficiency": 2.0,
		"profitability": 2.5, "synergy": 2.5, "pleased": 2.0, "solid": 1.5, "constructive": 1.5,
		"accretive": 2.5, "outperform": 2.5, "tailwinds": 2.5, "growth": 2.0, "expansion": 2.0,
		"breakthrough": 3.5, "pioneering": 3.0, "leading": 2.5, "premier": 2.5,
		"unlocked": 2.5, "positioned": 2.0, "trajectory": 1.5, "evolution": 2.0,
		"visibility": 2.0, "clarity": 2.0, "bullish": 2.5,

		// Action verbs common in growth-company releases
		"announce": 1.5, "announces": 1.5, "announced": 1.5,
		"unveil": 2.0, "unveils": 2.0, "unveiled": 2.0,
		"launch": 2.0, "launches": 2.0, "launched": 2.0,
		"release": 1.5, "releases": 1.5, "released": 1.5,
		"deploy": 1.5, "deploys": 1.5, "deployed": 1.5,
		"partner": 1.5, "partners": 1.5, "partnered": 1.5, "partnership": 2.0,
		"award": 2.0, "awarded": 2.0, "contract": 1.5,
		"expand": 2.0, "expands": 2.0, "expanded": 2.0,
		"scale": 1.5, "scaling": 1.5, "scaled": 1.5,
		"production": 1.0, "deliveries": 1.5, "delivered": 1.5,
		"approve": 2.0, "approved": 2.0, "approval": 2.0,
		"secured": 2.0,

		// Evasive and cautionary
		"headwind": -2.5, "challenge": -2.0, "uncertain": -2.5, "uncertainty": -2.5,
		"volatile": -2.0, "volatility": -2.0, "pressure": -2.0, "soft": -2.0, "softness": -2.0,
		"weak": -2.5, "weakness": -2.5, "cautious": -2.0, "prudent": -0.5, "conservative": -1.0,
		"difficult": -2.0, "tough": -2.0, "impact": -1.5, "constraint": -2.0, "shortage": -2.0,
		"disappointed": -3.0, "lower": -1.5, "decline": -2.0, "slow": -1.5, "flat": -1.0,
		"recalibrate": -2.0, "restructure": -1.5, "reduction": -2.0, "risk": -1.5,
		"transitory": -1.0, "offset": -0.5, "monitor": -1.0, "temporary": -0.5,
		"navigate": -0.5, "mitigate": -0.5, "complex": -1.0, "fluid": -1.5, "dynamic": -0.5,
		"delayed": -2.0, "delay": -2.0, "pause": -1.5, "halted": -2.5,
	}
}

// The "external" voice: analyst rating and price-action jargon.
func loadWallStLexicon() map[string]float64 {
	return map[string]float64{
		// Bullish
		"buy": 2.5, "overweight": 2.5, "outperform": 3.0, "accumulate": 2.5, "add": 2.0,
		"upgrade": 3.5, "boost": 2.5, "hike": 2.5, "raise": 2.5,
		"upside": 2.5, "catalyst": 2.0, "breakout": 3.0, "rally": 2.5, "soar": 3.0,
		"surge": 3.0, "jump": 2.5, "climb": 2.0, "bull": 2.5, "bullish": 3.0,
		"beat": 3.0, "smash": 3.5, "exceed": 2.5, "recovery": 2.0, "rebound": 2.0,
		"undervalued": 3.0, "cheap": 2.0, "attractive": 2.5, "premium": 1.0,

		// Bearish
		"sell": -3.0, "underweight": -2.5, "underperform": -3.0,
		"reduce": -2.0, "avoid": -3.0, "downgrade": -3.5, "cut": -3.0, "slash": -3.5,
		"trim": -1.5, "downside": -2.5, "risk": -1.5, "breakdown": -3.0, "crash": -4.0,
		"plunge": -3.5, "dive": -3.0, "drop": -2.0, "fall": -1.5, "slide": -1.5,
		"slump": -2.5, "bear": -2.5, "bearish": -3.0, "miss": -3.0, "lag": -2.0,
		"overvalued": -3.0, "expensive": -2.0, "rich": -1.5, "bubble": -3.5,
		"correction": -2.0, "retreat": -1.5, "sell-off": -2.5, "liquidation": -3.0,

		// Neutral / soft
		"hold": 0.0, "neutral": -0.5, "equal-weight": 0.0, "in-line": 0.0,
	}
}

// Multi-word consumer identifiers checked by substring before token scoring.
func loadConsumerPhrases() map[string]float64 {
	return map[string]float64{
		// High praise
		"game changer": 4.0, "highly recommend": 3.5, "must buy": 3.5, "value for money": 3.0,
		"best in class": 3.5, "top tier": 3.0, "user friendly": 2.5, "seamless experience": 3.0,
		"great support": 3.0, "excellent service": 3.0, "works perfectly": 3.0, "exceeded expectations": 3.5,
		"fan favorite": 2.5, "cult following": 2.5, "sold out": 3.0, "bang for buck": 3.0,
		"easy to use": 3.0, "lasts all day": 3.0, "worth every penny": 4.0, "build quality": 2.0,

		// Severe criticism and crisis
		"waste of money": -4.0, "do not buy": -4.0, "rip off": -4.0, "stay away": -4.0,
		"worst experience": -4.0, "terrible service": -3.5, "hidden fees": -3.5, "predatory pricing": -4.0,
		"data breach": -5.0, "security flaw": -4.0, "privacy concerns": -3.0, "class action": -4.0,
		"product recall": -5.0, "safety hazard": -5.0, "fire hazard": -5.0, "not working": -3.0,
		"difficult to use": -2.5, "learning curve": -1.5, "login issues": -2.0, "server down": -3.5,
		"outage": -4.0, "service down": -3.5, "glitchy": -2.5, "unresponsive": -2.5,
		"steep learning curve": -1.5, "bad update": -2.5, "broken feature": -2.5,
		"dies fast": -3.0, "short battery": -2.5, "qc issues": -3.5, "quality control": -1.0,
		"hard to use": -3.0, "would not recommend": -4.0,
	}
}

// Insider trading actions.
func loadInsiderPhrases() map[string]float64 {
	return map[string]float64{
		"insider buying": 4.5, "bought shares": 4.0, "purchased shares": 4.0,
		"insider purchase": 4.0, "cluster buy": 4.5, "increased stake": 3.5,
		"insider selling": -3.5, "sold shares": -3.0, "dumped shares": -4.0,
		"offloaded stock": -3.5, "filed to sell": -3.5, "option exercise": -2.0,
		"form 4 sell": -3.5, "form 4 buy": 4.0,
	}
}

// The corporate decoder ring: what executives say versus what they mean.
func loadExecPhrases() map[string]float64 {
	return map[string]float64{
		"guidance raised": 4.5, "raised outlook": 4.5, "raised guidance": 4.5,
		"strong demand": 4.0, "record revenue": 4.5, "record earnings": 4.5,
		"margin expansion": 4.0, "operating leverage": 4.0, "margin improvement": 3.5,
		"cash flow positive": 3.5, "strong balance sheet": 3.0, "dividend increase": 3.5,
		"share repurchase": 3.5, "market share gains": 4.0, "competitive advantage": 3.5,
		"structural growth": 3.5, "secular tailwinds": 3.5, "firing on all cylinders": 4.0,
		"exceeding expectations": 4.0, "ahead of schedule": 3.5, "acceleration in": 3.5,
		"cost discipline": 2.5, "efficiency gains": 2.5, "optimizing footprint": 2.0,
		"streamlining operations": 2.0, "right-sizing": 1.5, "resource allocation": 1.5,
		"guidance cut": -5.0, "lowered outlook": -5.0, "guidance lowered": -5.0,
		"weak demand": -4.0, "softness in": -3.5, "macro headwinds": -3.0,
		"transitional year": -4.0, "resetting expectations": -4.5, "strategic review": -4.0,
		"exploring alternatives": -5.0, "going concern": -6.0, "liquidity preservation": -4.5,
		"covenant waiver": -5.0, "inventory correction": -3.5, "destocking": -3.0,
		"margin contraction": -4.0, "cost inflation": -3.0, "cash burn": -4.0,
		"elongated sales cycles": -3.5, "customer hesitation": -3.5, "execution challenges": -3.5,
		"supply chain constraints": -2.5, "currency headwinds": -2.0, "geopolitical uncertainty": -2.0,
	}
}

func loadMarketPhrases() map[string]float64 {
	return map[string]float64{
		"beat estimates": 4.0, "missed estimates": -4.0,
		"better than expected": 3.0, "worse than expected": -3.0,
		"buy rating": 3.5, "sell rating": -3.5,
		"price target raised": 3.5, "price target cut": -3.5,
		"raised price target": 3.5, "cut price target": -3.5,
		"record high": 3.5, "record low": -3.5,
		"all time high": 4.0, "all time low": -4.0,
		"strong buy": 4.0, "strong sell": -4.0,
		"conviction buy": 4.0, "top pick": 3.5,
		"short interest": -2.0, "insider selling": -2.5, "insider buying": 3.0,
	}
}

// Event keywords that amplify a whole item's weight.
func loadImpactWeights() map[string]float64 {
	return map[string]float64{
		"earnings": 2.5, "revenue": 1.5, "guidance": 2.5, "acquisition": 2.0, "merger": 2.0,
		"fda": 2.5, "approval": 1.5, "lawsuit": 2.0, "investigation": 2.0, "bankruptcy": 3.0,
		"ceo": 1.5, "cfo": 1.5, "resigns": 2.5, "appoints": 1.5, "interview": 2.0,
		"form 4": 3.0, "sec filing": 2.0,
	}
}

var hedgingWords = []string{
	"possibly", "might", "could", "hoping", "trying", "attempting", "somewhat",
	"partially", "relative", "basically", "essentially", "appears", "seems",
}

var futureTenseWords = []string{
	"will", "expect", "target", "aim", "project", "forecast", "anticipate", "outlook", "guidance",
}

func loadBoosters() map[string]float64 {
	return map[string]float64{
		"absolutely": 0.3, "amazingly": 0.3, "completely": 0.3, "extremely": 0.4,
		"deeply": 0.3, "enormously": 0.3, "especially": 0.3, "exceptionally": 0.4,
		"hugely": 0.4, "incredibly": 0.4, "intensely": 0.3, "majorly": 0.3,
		"really": 0.3, "remarkably": 0.3, "significantly": 0.3, "totally": 0.3,
		"tremendously": 0.4, "very": 0.3, "substantially": 0.3, "unexpectedly": 0.4,
	}
}

var negationWords = []string{
	"not", "isn't", "doesn't", "wasn't", "shouldn't", "won't", "cannot", "can't",
	"nor", "neither", "without", "lack", "missing", "fail", "failed", "unlikely",
}
