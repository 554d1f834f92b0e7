package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mediasort/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent organize batches",
	Long: `Show recent organize batches from the history database.

Examples:
  mediasort history
  mediasort history --limit 5
  mediasort history --batch 12`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Number of batches to show")
	historyCmd.Flags().Int64("batch", 0, "Show the moves of one batch")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	batchID, _ := cmd.Flags().GetInt64("batch")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	if batchID > 0 {
		moves, err := store.BatchMoves(batchID)
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(moves)
		}
		rows := make([][]string, 0, len(moves))
		for _, m := range moves {
			rows = append(rows, []string{m.From, m.To})
		}
		fmt.Println(renderTable([]string{"From", "To"}, rows, nil))
		return nil
	}

	batches, err := store.RecentBatches(limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(batches)
	}
	if len(batches) == 0 {
		fmt.Println("no history yet")
		return nil
	}

	rows := make([][]string, 0, len(batches))
	for _, b := range batches {
		mode := ""
		if b.DryRun {
			mode = "dry-run"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", b.ID),
			b.CreatedAt.Format("2006-01-02 15:04"),
			b.MediaType,
			b.DestRoot,
			fmt.Sprintf("%d/%d", b.TotalMoved, b.TotalFiles),
			fmt.Sprintf("%d", b.Skipped),
			fmt.Sprintf("%d", b.Errors),
			mode,
		})
	}
	fmt.Println(renderTable(
		[]string{"ID", "When", "Type", "Destination", "Moved", "Skipped", "Errors", "Mode"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
	))
	return nil
}
