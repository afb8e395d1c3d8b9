package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/internal/parquet"
	"github.com/oddhash/oddhash/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCommitResults outputs the classified commits, dispatching based on the
// output format configured.
func WriteCommitResults(commits []schema.CommitRecord, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeCommitJSONResults(commits, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCommitCSVResults(commits, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeCommitParquetResults(commits, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCommitTable(commits, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// emptyCommitsMessage describes an empty result for the active view.
func emptyCommitsMessage(cfg *contract.Config) string {
	switch {
	case cfg.All:
		return "No commits found."
	case cfg.Tier != "":
		return fmt.Sprintf("No %s commits found.", cfg.Tier)
	default:
		return "No uncommon or rare commits found."
	}
}

// writeCommitJSONResults handles opening the file and calling the JSON writer.
func writeCommitJSONResults(commits []schema.CommitRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForCommits(w, commits)
	}, "Wrote JSON")
}

// writeCommitCSVResults handles opening the file and calling the CSV writer.
func writeCommitCSVResults(commits []schema.CommitRecord, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForCommits(csvWriter, commits, fmtFloat)
	}, "Wrote CSV")
}

// writeCommitParquetResults writes commits to a Parquet file. Parquet is a
// binary format, so an output file is required.
func writeCommitParquetResults(commits []schema.CommitRecord, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}
	rows := parquet.ConvertCommitRecords(commits)
	if err := parquet.WriteCommitsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Exported %d commits to: %s\n", len(rows), cfg.OutputFile)
	return nil
}

// writeCommitTable generates and writes the human-readable table.
func writeCommitTable(commits []schema.CommitRecord, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if len(commits) == 0 {
		_, err := fmt.Fprintln(writer, emptyCommitsMessage(cfg))
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Hash", "Author", "Date", "Tier", "Explanation", "Frequency"}
	table.Header(headers)

	// 2. Configure alignment to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	// 3. Populate Rows
	maxHashWidth := GetMaxTableHashWidth(cfg)
	tierLabel := contract.GetPlainTierLabel
	if cfg.UseColors {
		tierLabel = contract.GetColorTierLabel
	}
	var data [][]string
	for i, c := range commits {
		row := []string{
			strconv.Itoa(i + 1),                          // Rank
			contract.TruncateHash(c.Hash, maxHashWidth),  // Hash
			c.Author,                                     // Author
			c.Timestamp.Format(contract.DateTimeFormat),  // Date
			tierLabel(c.Rarity.Tier),                     // Tier
			c.Rarity.Explanation,                         // Explanation
			fmtFloat(c.Rarity.Frequency),                 // Frequency
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d commits\n", len(commits)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scan completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForCommits writes the classified commits in CSV format.
func writeCSVResultsForCommits(w *csv.Writer, commits []schema.CommitRecord, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"hash",
		"author",
		"timestamp",
		"tier",
		"explanation",
		"frequency",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, c := range commits {
		rec := []string{
			strconv.Itoa(i + 1),                         // Rank
			c.Hash,                                      // Hash
			c.Author,                                    // Author
			c.Timestamp.Format(contract.DateTimeFormat), // Timestamp
			contract.GetPlainTierLabel(c.Rarity.Tier),   // Tier
			c.Rarity.Explanation,                        // Explanation
			fmtFloat(c.Rarity.Frequency),                // Frequency
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForCommits writes the classified commits in JSON format.
func writeJSONResultsForCommits(w io.Writer, commits []schema.CommitRecord) error {
	return writeJSON(w, schema.EnrichCommits(commits))
}
