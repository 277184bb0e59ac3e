// Package main provides a local reconciliation CLI: it runs one pass over a
// directory of resume files and a directory of spreadsheet files and prints
// the JSON report, without needing the queue, database or object store.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hireloop/reconcileworker/internal/filestore"
	"github.com/hireloop/reconcileworker/internal/reconcile"
)

var (
	resumeDir  string
	sheetDir   string
	outputPath string
	pretty     bool
	search     string
	status     string
	sortKey    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reconcile-local",
		Short: "Reconcile resume files against candidate spreadsheets on disk",
		Long: `reconcile-local matches resume documents (by filename) against rows of
candidate-detail spreadsheets (.csv, .xlsx, .xls) and prints the merged
candidate records with match statistics as JSON.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&resumeDir, "resumes", "", "Directory of resume files (required)")
	rootCmd.Flags().StringVar(&sheetDir, "sheets", "", "Directory of spreadsheet files (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&search, "search", "", "Filter records by a case-insensitive search term")
	rootCmd.Flags().StringVar(&status, "status", "all", "Status filter: all, matched, unmatched")
	rootCmd.Flags().StringVar(&sortKey, "sort", "name", "Sort key: name, uploadDate, matchedFirst")
	_ = rootCmd.MarkFlagRequired("resumes")
	_ = rootCmd.MarkFlagRequired("sheets")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	for _, dir := range []string{resumeDir, sheetDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dir)
		}
	}

	var statusFilter reconcile.StatusFilter
	switch status {
	case "all":
		statusFilter = reconcile.StatusAll
	case "matched":
		statusFilter = reconcile.StatusMatched
	case "unmatched":
		statusFilter = reconcile.StatusUnmatched
	default:
		return fmt.Errorf("invalid status: %s (must be all, matched, or unmatched)", status)
	}

	var key reconcile.SortKey
	switch sortKey {
	case "name":
		key = reconcile.SortByName
	case "uploadDate":
		key = reconcile.SortByUploadDate
	case "matchedFirst":
		key = reconcile.SortByMatchedFirst
	default:
		return fmt.Errorf("invalid sort key: %s (must be name, uploadDate, or matchedFirst)", sortKey)
	}

	store := filestore.NewLocal(resumeDir, sheetDir)
	engine := reconcile.NewEngine(store)

	result, err := engine.Reconcile(context.Background())
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	view := reconcile.Result{
		Records: reconcile.Query(result.Records, search, statusFilter, key),
		Stats:   result.Stats,
	}

	var payload []byte
	if pretty {
		payload, err = json.MarshalIndent(view, "", "  ")
	} else {
		payload, err = json.Marshal(view)
	}
	if err != nil {
		return fmt.Errorf("json encode error: %w", err)
	}

	if outputPath != "" {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return fmt.Errorf("mkdir error: %w", err)
		}
		if err := os.WriteFile(outputPath, append(payload, '\n'), 0o644); err != nil {
			return fmt.Errorf("write report error: %w", err)
		}
		fmt.Printf("Wrote JSON report: %s\n", outputPath)
		fmt.Printf("Matched %d of %d resumes (%d%%)\n", view.Stats.Matched, view.Stats.Total, view.Stats.MatchRatePercent)
		return nil
	}
	fmt.Println(string(payload))
	return nil
}
