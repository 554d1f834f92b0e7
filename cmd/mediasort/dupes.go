package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mediasort/internal/dupes"
)

var dupesCmd = &cobra.Command{
	Use:   "dupes <directory>",
	Short: "Find duplicate media files",
	Long: `Find duplicate files in a directory.

Examples:
  mediasort dupes ~/downloads
  mediasort dupes /media/movies --by size --recursive
  mediasort dupes ~/music --type music --by name --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDupes,
}

func init() {
	rootCmd.AddCommand(dupesCmd)
	dupesCmd.Flags().String("by", "hash", "Duplicate detection strategy: hash, size, name")
	dupesCmd.Flags().StringP("type", "t", "movie", "Media type for extension filtering: movie, series, music, book, game")
	dupesCmd.Flags().BoolP("recursive", "r", true, "Scan recursively")
}

func runDupes(cmd *cobra.Command, args []string) error {
	by, _ := cmd.Flags().GetString("by")
	mediaType, _ := cmd.Flags().GetString("type")
	recursive, _ := cmd.Flags().GetBool("recursive")

	var strategy dupes.Strategy
	switch by {
	case "hash":
		strategy = dupes.ByHash
	case "size":
		strategy = dupes.BySize
	case "name":
		strategy = dupes.ByName
	default:
		return fmt.Errorf("unknown strategy %q (want hash, size or name)", by)
	}

	extensions, err := extensionsFor(mediaType)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	groups, err := dupes.Find(args[0], extensions, recursive, strategy, newLogger(cfg))
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	}

	if len(groups) == 0 {
		fmt.Println("no duplicates found")
		return nil
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows [][]string
	for i, key := range keys {
		for _, path := range groups[key] {
			size := ""
			if info, err := os.Stat(path); err == nil {
				size = humanize.IBytes(uint64(info.Size()))
			}
			rows = append(rows, []string{fmt.Sprintf("%d", i+1), path, size})
		}
	}

	fmt.Println(renderTable([]string{"Group", "File", "Size"}, rows, []columnAlignment{alignRight, alignLeft, alignRight}))
	fmt.Printf("%d duplicate groups\n", len(groups))
	return nil
}
