package feed

import (
	"context"
	"testing"
	"time"

	"alphaspread/internal/types"
)

func TestEnrichStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewEnricher(time.Second, 5)
	items := []types.RawFeedItem{
		{Title: "thin item", Description: "short", Link: "https://www.example.com/article"},
	}

	done := make(chan struct{})
	go func() {
		e.Enrich(ctx, items)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enrich did not return promptly after cancellation")
	}

	if items[0].Description != "short" {
		t.Errorf("Expected canceled run to leave items untouched, got %q", items[0].Description)
	}
}

func TestEnrichSkipsRichSummaries(t *testing.T) {
	e := NewEnricher(time.Second, 5)
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	items := []types.RawFeedItem{
		{Title: "rich item", Description: string(long), Link: "https://www.example.com/article"},
		{Title: "no link", Description: "short"},
	}

	e.Enrich(context.Background(), items)

	if items[0].Description != string(long) {
		t.Error("Expected rich summary left alone")
	}
	if items[1].Description != "short" {
		t.Error("Expected linkless item left alone")
	}
}
