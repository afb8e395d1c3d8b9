package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oddhash/oddhash/internal/contract"
	"github.com/oddhash/oddhash/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSummaryResults outputs the tier counts, dispatching based on the
// output format configured.
func WriteSummaryResults(summary schema.CountSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"tier", "count", "frequency"}, func(csvWriter *csv.Writer) error {
				return writeCSVRowsForSummary(csvWriter, summary, fmtFloat)
			})
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(summary, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// tierCount extracts the count for one tier from the summary.
func tierCount(summary schema.CountSummary, tier schema.RarityTier) int {
	switch tier {
	case schema.UncommonTier:
		return summary.Uncommon
	case schema.RareTier:
		return summary.Rare
	default:
		return summary.Common
	}
}

// writeSummaryTable generates and writes the human-readable summary table.
func writeSummaryTable(summary schema.CountSummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if summary.Total == 0 {
		_, err := fmt.Fprintln(writer, "No commits found.")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Tier", "Count", "Frequency"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	tierLabel := contract.GetPlainTierLabel
	if cfg.UseColors {
		tierLabel = contract.GetColorTierLabel
	}
	var data [][]string
	for _, tier := range schema.AllRarityTiers {
		data = append(data, []string{
			tierLabel(tier),
			strconv.Itoa(tierCount(summary, tier)),
			fmtFloat(tier.Frequency()),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Total commits: %d\n", summary.Total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scan completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVRowsForSummary writes one row per tier in rarity order.
func writeCSVRowsForSummary(w *csv.Writer, summary schema.CountSummary, fmtFloat func(float64) string) error {
	for _, tier := range schema.AllRarityTiers {
		rec := []string{
			contract.GetPlainTierLabel(tier),
			strconv.Itoa(tierCount(summary, tier)),
			fmtFloat(tier.Frequency()),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
