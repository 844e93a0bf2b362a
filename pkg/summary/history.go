package summary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const maxHistoryEntries = 200

// IndexEntry is one recorded summary run.
type IndexEntry struct {
	TimestampUTC string  `json:"timestampUtc"`
	Total        int     `json:"total"`
	Score        int     `json:"score"`
	Posture      Posture `json:"posture"`
}

// Index is the on-disk history of summary runs.
type Index struct {
	Entries []IndexEntry `json:"entries"`
}

// Trend compares the current run against the previous recorded one.
type Trend struct {
	Previous int
	Current  int
	Delta    int
	Label    string // IMPROVING / DECLINING / SAME / FIRST_RUN
}

// Record appends the summary to the history index under dir and returns the
// trend against the previous run. The index is capped at maxHistoryEntries.
func Record(dir string, s Summary) (Trend, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return Trend{}, err
	}

	indexPath := filepath.Join(dir, "index.json")
	var idx Index
	if raw, err := os.ReadFile(indexPath); err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &idx)
	}

	prev := -1
	if len(idx.Entries) > 0 {
		prev = idx.Entries[len(idx.Entries)-1].Score
	}

	idx.Entries = append(idx.Entries, IndexEntry{
		TimestampUTC: time.Now().UTC().Format(time.RFC3339),
		Total:        s.Total,
		Score:        s.Score,
		Posture:      s.Posture,
	})
	if len(idx.Entries) > maxHistoryEntries {
		idx.Entries = idx.Entries[len(idx.Entries)-maxHistoryEntries:]
	}

	raw, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return Trend{}, err
	}
	if err := os.WriteFile(indexPath, raw, 0600); err != nil {
		return Trend{}, err
	}

	tr := Trend{Previous: prev, Current: s.Score, Label: "FIRST_RUN"}
	if prev >= 0 {
		tr.Delta = tr.Current - tr.Previous
		switch {
		case tr.Delta > 0:
			tr.Label = "IMPROVING"
		case tr.Delta < 0:
			tr.Label = "DECLINING"
		default:
			tr.Label = "SAME"
		}
	}
	return tr, nil
}
