package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mediasort/internal/history"
	"mediasort/internal/media"
	"mediasort/internal/organize"
	"mediasort/internal/scan"
)

var organizeCmd = &cobra.Command{
	Use:   "organize <type> <source>... --dest <root>",
	Short: "Organize media files into the library layout",
	Long: `Organize files into the destination library.

<type> is one of: movie, series, music, book, game.
Sources may be files or directories; directories are scanned for the
type's known extensions.

Examples:
  mediasort organize movie ~/downloads/the.matrix.1999.mkv --dest /media/movies --title "The Matrix" --year 1999
  mediasort organize series ~/downloads/bb/ --dest /media/series --title "Breaking Bad" --recursive
  mediasort organize music ~/rips --dest /media/music --artist "Pink Floyd" --album "The Wall" --year 1979
  mediasort organize book ~/books --dest /media/library --dry-run
  mediasort organize game ~/roms --dest /media/games`,
	Args: cobra.MinimumNArgs(2),
	RunE: runOrganize,
}

func init() {
	rootCmd.AddCommand(organizeCmd)
	organizeCmd.Flags().String("dest", "", "Destination library root (required)")
	organizeCmd.Flags().String("title", "", "Media title (movie, series) or album title")
	organizeCmd.Flags().Int("year", 0, "Release year")
	organizeCmd.Flags().String("artist", "", "Album artist (music)")
	organizeCmd.Flags().String("album", "", "Album title (music)")
	organizeCmd.Flags().String("author", "", "Author (book); files are grouped per parsed author when omitted")
	organizeCmd.Flags().String("platform", "", "Platform (game); detected per file when omitted")
	organizeCmd.Flags().BoolP("recursive", "r", false, "Scan source directories recursively")
	organizeCmd.Flags().Bool("dry-run", false, "Resolve moves without touching any file")
	_ = organizeCmd.MarkFlagRequired("dest")
}

func runOrganize(cmd *cobra.Command, args []string) error {
	mediaType := args[0]
	sources := args[1:]

	dest, _ := cmd.Flags().GetString("dest")
	title, _ := cmd.Flags().GetString("title")
	year, _ := cmd.Flags().GetInt("year")
	artist, _ := cmd.Flags().GetString("artist")
	albumName, _ := cmd.Flags().GetString("album")
	author, _ := cmd.Flags().GetString("author")
	platform, _ := cmd.Flags().GetString("platform")
	recursive, _ := cmd.Flags().GetBool("recursive")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	extensions, err := extensionsFor(mediaType)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	files, err := collectFiles(sources, extensions, recursive, log)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("no matching files found")
		return nil
	}

	var sink organize.HistorySink
	if cfg.History.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0o755); err == nil {
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				log.Warn("history store unavailable", "path", cfg.History.Path, "error", err)
			} else {
				defer func() { _ = store.Close() }()
				sink = store
			}
		}
	}

	org := organize.New(cfg.OrganizeOptions(), log, sink)

	var progress organize.ProgressFunc
	if !jsonOutput && isTerminal(os.Stderr) {
		progress = func(current, total int, filename string) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", current, total, filename)
		}
	}

	var report *organize.Report
	switch mediaType {
	case "movie":
		if title == "" {
			return fmt.Errorf("--title is required for movies")
		}
		report = org.OrganizeVideo(files, dest, media.Movie{Name: title, Year: year}, dryRun, progress)
	case "series":
		if title == "" {
			return fmt.Errorf("--title is required for series")
		}
		item := media.Series{Name: title, Year: year}
		report = org.OrganizeVideo(files, dest, item, dryRun, progress)
	case "music":
		if albumName == "" {
			albumName = title
		}
		if albumName == "" {
			return fmt.Errorf("--album (or --title) is required for music")
		}
		album := media.Album{Artist: artist, Name: albumName, Year: year}
		report = org.OrganizeMusic(files, dest, album, dryRun, progress)
	case "book":
		report = org.OrganizeBooks(files, dest, media.Book{Author: author, Name: title}, dryRun, progress)
	case "game":
		report = org.OrganizeGames(files, dest, media.Game{Name: title, Platform: platform}, dryRun, progress)
	default:
		return fmt.Errorf("unknown media type %q (want movie, series, music, book or game)", mediaType)
	}

	return renderReport(report, dryRun)
}

func extensionsFor(mediaType string) ([]string, error) {
	switch mediaType {
	case "movie", "series":
		return scan.VideoExtensions, nil
	case "music":
		return scan.AudioExtensions, nil
	case "book":
		return scan.BookExtensions, nil
	case "game":
		return scan.GameExtensions, nil
	default:
		return nil, fmt.Errorf("unknown media type %q (want movie, series, music, book or game)", mediaType)
	}
}

// collectFiles expands the source arguments: files are taken as-is when
// their extension matches, directories are scanned.
func collectFiles(sources, extensions []string, recursive bool, log *slog.Logger) ([]string, error) {
	var files []string
	for _, src := range sources {
		info, err := os.Stat(src)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src, err)
		}
		if info.IsDir() {
			found, err := scan.FilesByExtension(src, extensions, recursive, log)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		if scan.ValidExtension(src, extensions) {
			files = append(files, src)
		}
	}
	return files, nil
}

func renderReport(report *organize.Report, dryRun bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if len(report.Moved) > 0 {
		header := "Moved"
		if dryRun {
			header = "Would move"
		}
		rows := make([][]string, 0, len(report.Moved))
		for _, m := range report.Moved {
			rows = append(rows, []string{m.From, m.To})
		}
		fmt.Println(renderTable([]string{header, "To"}, rows, nil))
	}

	for _, s := range report.Skipped {
		fmt.Printf("skipped: %s (%s)\n", s.File, s.Reason)
	}
	for _, e := range report.Errors {
		fmt.Printf("error: %s: %s\n", e.File, e.Err)
	}

	fmt.Printf("%d/%d files organized, %d skipped, %d errors\n",
		report.TotalMoved, report.TotalFiles, len(report.Skipped), len(report.Errors))
	return nil
}
