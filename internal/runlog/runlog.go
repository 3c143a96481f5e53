// Package runlog journals completed analysis runs as JSONL, one daily file,
// with gzip compaction of files past the retention window.
package runlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu          sync.Mutex
	dirOverride string
)

// SetDir points the journal at a directory. The ALPHASPREAD_RUN_DIR
// environment variable still wins when set.
func SetDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	dirOverride = dir
}

// Entry is one journaled analysis run.
type Entry struct {
	Time          string  `json:"time"`
	Ticker        string  `json:"ticker"`
	CompanyName   string  `json:"company_name"`
	ExecScore     float64 `json:"exec_score"`
	MarketScore   float64 `json:"market_score"`
	ConsumerScore float64 `json:"consumer_score"`
	Gap           float64 `json:"gap"`
	SignalType    string  `json:"signal_type"`
	ItemCount     int     `json:"item_count"`
	LimitedData   bool    `json:"limited_data,omitempty"`

	Extra map[string]any `json:"extra,omitempty"`
}

func logDir() string {
	if v := os.Getenv("ALPHASPREAD_RUN_DIR"); v != "" {
		return v
	}
	if dirOverride != "" {
		return dirOverride
	}
	return "runs"
}

func dailyFilepath(t time.Time) string {
	d := t.UTC().Format("2006-01-02")
	return filepath.Join(logDir(), d+".txt")
}

// Append journals one run entry to today's file.
func Append(e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().UTC()
	e.Time = now.Format("2006-01-02 15:04:05")
	p := dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips journal files older than the retention window and
// removes the originals.
func CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := logDir()
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".txt" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil {
			return nil
		}
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		if info.ModTime().Before(cutoff) {
			gz := p + ".gz"
			// if already gz exists, remove original .txt
			if _, e2 := os.Stat(gz); e2 == nil {
				_ = os.Remove(p)
				return nil
			}

			in, e3 := os.Open(p)
			if e3 != nil {
				return nil
			}
			defer in.Close()

			out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if e4 != nil {
				return nil
			}
			gw := gzip.NewWriter(out)
			if _, e5 := io.Copy(gw, in); e5 == nil {
				_ = gw.Close()
				_ = out.Close()
				_ = os.Remove(p)
			} else {
				_ = gw.Close()
				_ = out.Close()
			}
		}
		return nil
	})
}
