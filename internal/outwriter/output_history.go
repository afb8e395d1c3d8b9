package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteHistoryRuns outputs the recorded scan runs, dispatching based on the
// output format configured.
func WriteHistoryRuns(runs []schema.ScanRunRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, enrichRunsForJSON(runs))
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"run_id", "start_time", "end_time", "duration_ms", "repo", "head", "total", "common", "uncommon", "rare"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return writeCSVRowsForRuns(csvWriter, runs)
			})
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsTable(runs, w)
		}, "Wrote table")
	}
}

// runTimes formats the start/end pair of a run for human output.
func runTimes(r schema.ScanRunRecord) (string, string) {
	start := r.StartTime.Format(contract.DateTimeFormat)
	end := "running"
	if r.EndTime != nil {
		end = r.EndTime.Format(contract.DateTimeFormat)
	}
	return start, end
}

// writeRunsTable generates and writes the human-readable run table.
func writeRunsTable(runs []schema.ScanRunRecord, writer io.Writer) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(writer, "No scan runs recorded.")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Run", "Start", "End", "Repo", "Head", "Total", "Common", "Uncommon", "Rare"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range runs {
		start, end := runTimes(r)
		data = append(data, []string{
			strconv.FormatInt(r.RunID, 10),
			start,
			end,
			r.RepoPath,
			contract.TruncateHash(r.HeadHash, 12),
			strconv.Itoa(int(r.TotalCommits)),
			strconv.Itoa(int(r.CommonCount)),
			strconv.Itoa(int(r.UncommonCount)),
			strconv.Itoa(int(r.RareCount)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d scan runs\n", len(runs))
	return err
}

// writeCSVRowsForRuns writes one CSV row per recorded run.
func writeCSVRowsForRuns(w *csv.Writer, runs []schema.ScanRunRecord) error {
	for _, r := range runs {
		start, end := runTimes(r)
		durationMs := ""
		if r.RunDurationMs != nil {
			durationMs = strconv.Itoa(int(*r.RunDurationMs))
		}
		rec := []string{
			strconv.FormatInt(r.RunID, 10),
			start,
			end,
			durationMs,
			r.RepoPath,
			r.HeadHash,
			strconv.Itoa(int(r.TotalCommits)),
			strconv.Itoa(int(r.CommonCount)),
			strconv.Itoa(int(r.UncommonCount)),
			strconv.Itoa(int(r.RareCount)),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// enrichRunsForJSON flattens runs for JSON output with stable field names.
func enrichRunsForJSON(runs []schema.ScanRunRecord) []map[string]any {
	output := make([]map[string]any, len(runs))
	for i, r := range runs {
		start, end := runTimes(r)
		entry := map[string]any{
			"run_id":     r.RunID,
			"start_time": start,
			"end_time":   end,
			"repo_path":  r.RepoPath,
			"head_hash":  r.HeadHash,
			"total":      r.TotalCommits,
			"common":     r.CommonCount,
			"uncommon":   r.UncommonCount,
			"rare":       r.RareCount,
		}
		if r.RunDurationMs != nil {
			entry["duration_ms"] = *r.RunDurationMs
		}
		output[i] = entry
	}
	return output
}
