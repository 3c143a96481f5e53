package social

import (
	"math"
	"testing"

	"alphaspread/internal/types"
)

func TestBlendConsumerNoSocial(t *testing.T) {
	if got := BlendConsumer(0.4, nil, 0.3); got != 0.4 {
		t.Errorf("Expected news score unchanged without social data, got %f", got)
	}
}

func TestBlendConsumerZeroMentions(t *testing.T) {
	social := &types.SocialSentiment{Overall: -0.9}
	if got := BlendConsumer(0.4, social, 0.3); got != 0.4 {
		t.Errorf("Expected news score unchanged with zero mentions, got %f", got)
	}
}

func TestBlendConsumerMixes(t *testing.T) {
	social := &types.SocialSentiment{
		Reddit:  types.SocialChannel{Score: -0.5, Count: 4},
		Overall: -0.5,
	}
	got := BlendConsumer(0.5, social, 0.3)
	want := 0.5*0.7 + -0.5*0.3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BlendConsumer = %f, want %f", got, want)
	}
}

func TestBlendConsumerFullWeight(t *testing.T) {
	social := &types.SocialSentiment{
		Reviews: types.SocialChannel{Score: 0.8, Count: 2},
		Overall: 0.8,
	}
	if got := BlendConsumer(-0.2, social, 1.0); got != 0.8 {
		t.Errorf("Expected grassroots to dominate at full weight, got %f", got)
	}
}
