package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/hampath/cli"
)

// counterColumns fixes the counter column order in both CSV files.
var counterColumns = []string{cli.KeyCalls, cli.KeyStates, cli.KeyTransitions}

// WriteResults stores one CSV row per solver invocation.
func WriteResults(path string, results []RunResult) error {
	header := []string{
		"solver", "n", "density", "instance", "seed",
		"status", "verdict", "seconds",
	}
	header = append(header, counterColumns...)
	header = append(header, "instance_file", "note")

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		row := []string{
			r.Solver,
			strconv.Itoa(r.N),
			r.Density.String(),
			strconv.Itoa(r.Instance),
			strconv.FormatInt(r.Seed, 10),
			string(r.Status),
			r.Verdict,
			strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 6, 64),
		}
		for _, key := range counterColumns {
			if v, ok := r.Counters[key]; ok {
				row = append(row, strconv.FormatUint(v, 10))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, r.InstanceFile, r.Note)
		rows = append(rows, row)
	}

	return writeCSV(path, header, rows)
}

// WriteSummary stores one CSV row per (solver, size, density) group.
func WriteSummary(path string, rows []SummaryRow) error {
	header := []string{
		"solver", "n", "density", "runs", "ok", "timeouts", "errors",
		"mean_s", "median_s", "stddev_s", "max_s",
	}
	for _, key := range counterColumns {
		header = append(header, "mean_"+key)
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := []string{
			r.Solver,
			strconv.Itoa(r.N),
			r.Density.String(),
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.OK),
			strconv.Itoa(r.Timeouts),
			strconv.Itoa(r.Errors),
			strconv.FormatFloat(r.MeanSec, 'f', 6, 64),
			strconv.FormatFloat(r.MedianSec, 'f', 6, 64),
			strconv.FormatFloat(r.StdDevSec, 'f', 6, 64),
			strconv.FormatFloat(r.MaxSec, 'f', 6, 64),
		}
		for _, key := range counterColumns {
			if v, ok := r.MeanCounters[key]; ok {
				row = append(row, strconv.FormatFloat(v, 'f', 1, 64))
			} else {
				row = append(row, "")
			}
		}
		out = append(out, row)
	}

	return writeCSV(path, header, out)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	w := csv.NewWriter(f)
	if err = w.Write(header); err == nil {
		err = w.WriteAll(rows)
	}
	if err != nil {
		f.Close()

		return fmt.Errorf("bench: write %s: %w", path, err)
	}

	return f.Close()
}
