// Package social gathers the grassroots supplement: what actual customers
// and employees say, as opposed to what journalists write. Three channels
// are searched (forum chatter, product reviews, employer reviews), each is
// scored with the consumer voice only, and the blended result nudges the
// consumer aggregate.
package social

import (
	"context"
	"fmt"
	"time"

	"alphaspread/internal/feed"
	"alphaspread/internal/logger"
	"alphaspread/internal/scoring"
	"alphaspread/internal/types"
)

const maxMentionsPerChannel = 3

// Analyzer runs the grassroots channels through the shared fetcher.
type Analyzer struct {
	fetcher *feed.Fetcher
	scorer  *scoring.Scorer
	delay   time.Duration
}

// NewAnalyzer builds a grassroots analyzer sharing the run's fetcher and
// scorer.
func NewAnalyzer(fetcher *feed.Fetcher, scorer *scoring.Scorer, delay time.Duration) *Analyzer {
	return &Analyzer{fetcher: fetcher, scorer: scorer, delay: delay}
}

type channelQuery struct {
	name  string
	sites string
}

// Gather fetches and scores the three grassroots channels sequentially.
// Always returns a result; channels that fail to fetch report zero count.
func (a *Analyzer) Gather(ctx context.Context, ticker string, identity types.CompanyIdentity) *types.SocialSentiment {
	channels := []channelQuery{
		{name: "reddit", sites: "site:reddit.com"},
		{name: "reviews", sites: "site:trustpilot.com OR site:consumeraffairs.com"},
		{name: "employer", sites: "site:glassdoor.com OR site:indeed.com"},
	}

	out := &types.SocialSentiment{}
	var weightedSum, totalCount float64

	for i, ch := range channels {
		if i > 0 {
			select {
			case <-ctx.Done():
				return out
			case <-time.After(a.delay):
			}
		}

		result := a.gatherChannel(ctx, ticker, identity, ch)
		switch ch.name {
		case "reddit":
			out.Reddit = result
		case "reviews":
			out.Reviews = result
		case "employer":
			out.Employer = result
		}
		weightedSum += result.Score * float64(result.Count)
		totalCount += float64(result.Count)
	}

	if totalCount > 0 {
		out.Overall = weightedSum / totalCount
	}
	return out
}

func (a *Analyzer) gatherChannel(ctx context.Context, ticker string, identity types.CompanyIdentity, ch channelQuery) types.SocialChannel {
	q := fmt.Sprintf(`"%s" AND (%s) when:28d`, identity.Name, ch.sites)
	items, err := a.fetcher.FetchFeed(ctx, feed.SearchURL(q), "Social: "+ch.name)
	if err != nil {
		logger.Debug(ctx, "Grassroots channel unavailable", "channel", ch.name, "ticker", ticker, "error", err)
		return types.SocialChannel{}
	}

	var sum float64
	channel := types.SocialChannel{}
	for _, it := range items {
		raw := a.scorer.ScoreText(it.Title + " . " + it.Description)
		score := scoring.Normalize(raw.Consumer, 10)
		sum += score
		channel.Count++
		if len(channel.Mentions) < maxMentionsPerChannel {
			channel.Mentions = append(channel.Mentions, types.SocialMention{
				Title:     it.Title,
				Sentiment: types.SentimentLabel(score),
				Platform:  ch.name,
			})
		}
	}
	if channel.Count > 0 {
		channel.Score = sum / float64(channel.Count)
	}
	return channel
}

// BlendConsumer folds the grassroots overall score into the news-derived
// consumer score. No mentions means no adjustment.
func BlendConsumer(newsConsumer float64, social *types.SocialSentiment, blendWeight float64) float64 {
	if social == nil {
		return newsConsumer
	}
	count := social.Reddit.Count + social.Reviews.Count + social.Employer.Count
	if count == 0 {
		return newsConsumer
	}
	return newsConsumer*(1-blendWeight) + social.Overall*blendWeight
}
