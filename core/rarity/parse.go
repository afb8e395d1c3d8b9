package rarity

import (
	"strings"
	"sync"
	"time"

	"github.com/oddhash/oddhash/schema"
)

// ParseLine parses a single log line of the form
// "<hash> <rfc3339-timestamp> <author display name>" into a commit record.
// The second return value is false when the line is malformed: a missing
// hash or timestamp token, or a timestamp that does not parse as RFC 3339.
// Malformed lines are filtered by contract, never reported as errors.
func ParseLine(line string) (schema.CommitRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return schema.CommitRecord{}, false
	}

	timestamp, err := time.Parse(time.RFC3339, fields[1])
	if err != nil {
		return schema.CommitRecord{}, false
	}

	hash := fields[0]
	return schema.CommitRecord{
		Hash:      hash,
		Author:    strings.Join(fields[2:], " "),
		Timestamp: timestamp,
		Rarity:    Classify(hash),
	}, true
}

// lineResult holds the outcome of parsing one line at its original index.
type lineResult struct {
	record schema.CommitRecord
	ok     bool
}

// ParseLog splits a raw log blob into lines and maps each through
// ParseLine, dropping malformed lines and preserving input order.
// When workers is greater than one the per-line work fans out over a
// worker pool; parsing one line never depends on another, so the result
// is identical to a sequential pass.
func ParseLog(out []byte, workers int) []schema.CommitRecord {
	lines := strings.Split(string(out), "\n")
	results := make([]lineResult, len(lines))

	if workers <= 1 {
		for i, line := range lines {
			results[i].record, results[i].ok = ParseLine(line)
		}
	} else {
		lineCh := make(chan int, len(lines))
		var wg sync.WaitGroup
		for range workers {
			wg.Go(func() {
				for i := range lineCh {
					// Each goroutine writes to a unique index, which is safe.
					results[i].record, results[i].ok = ParseLine(lines[i])
				}
			})
		}
		for i := range lines {
			lineCh <- i
		}
		close(lineCh)
		wg.Wait()
	}

	records := make([]schema.CommitRecord, 0, len(lines))
	for _, r := range results {
		if r.ok {
			records = append(records, r.record)
		}
	}
	return records
}
