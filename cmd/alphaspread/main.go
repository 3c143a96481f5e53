package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"alphaspread/internal/analysis"
	"alphaspread/internal/logger"
	"alphaspread/internal/runlog"
	"alphaspread/internal/store"

	"github.com/joho/godotenv"
)

// retentionDays parses the journal retention override. Zero and negative
// values are rejected rather than silently disabling compaction windows.
func retentionDays(v string) (int, bool) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func main() {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg := store.DefaultConfig()
	if path := os.Getenv("ALPHASPREAD_CONFIG"); path != "" {
		loaded, err := store.LoadConfig(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: alphaspread TICKER [TICKER...]")
		os.Exit(2)
	}
	tickers := os.Args[1:]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		cancel()
	}()

	if v := os.Getenv("ALPHASPREAD_RUN_RETENTION_DAYS"); v != "" {
		if n, ok := retentionDays(v); ok {
			_ = runlog.CompressOlder(n)
		} else {
			fmt.Fprintf(os.Stderr, "Ignoring invalid ALPHASPREAD_RUN_RETENTION_DAYS: %q\n", v)
		}
	}

	svc := analysis.NewService(cfg)

	exitCode := 0
	for i, ticker := range tickers {
		if i > 0 {
			select {
			case <-ctx.Done():
				exitCode = 1
			case <-time.After(cfg.InterQueryDelay()):
			}
		}
		if ctx.Err() != nil {
			break
		}

		result, err := svc.Analyze(ctx, ticker, func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] analysis error: %v\n", ticker, err)
			exitCode = 1
			continue
		}

		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "[%s] encode error: %v\n", ticker, err)
			exitCode = 1
			continue
		}
		fmt.Println(string(b))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = logger.Shutdown(shutdownCtx)

	os.Exit(exitCode)
}
