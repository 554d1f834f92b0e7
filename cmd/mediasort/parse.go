package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mediasort/pkg/medianame"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <filename>...",
	Short: "Parse media file names (local, no files needed)",
	Long: `Parse file names to extract media metadata.

Examples:
  mediasort parse "Breaking.Bad.S01E01.720p.BluRay.x264-DEMAND.mkv"
  mediasort parse --type music "05 - Another Brick in the Wall.mp3"
  mediasort parse --type game "[SNES] Super Metroid (Japan).sfc" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("type", "t", "video", "Media type: video, music, book, game")
	// Note: --json is inherited from root as persistent flag
}

func runParse(cmd *cobra.Command, args []string) error {
	mediaType, _ := cmd.Flags().GetString("type")

	for _, name := range args {
		var info any
		switch mediaType {
		case "video":
			info = medianame.ParseVideo(name)
		case "music":
			info = medianame.ParseMusic(name)
		case "book":
			info = medianame.ParseBook(name)
		case "game":
			info = medianame.ParseGame(name)
		default:
			return fmt.Errorf("unknown media type %q (want video, music, book or game)", mediaType)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				return err
			}
			continue
		}

		fmt.Printf("%s\n", name)
		printInfo(info)
		fmt.Println()
	}
	return nil
}

func printInfo(info any) {
	switch v := info.(type) {
	case medianame.VideoInfo:
		printField("kind", v.Kind.String())
		printField("title", v.Title)
		if v.Kind == medianame.KindSeries {
			printField("season", fmt.Sprintf("%d", v.Season))
			printField("episode", fmt.Sprintf("%d", v.Episode))
		} else if v.Year > 0 {
			printField("year", fmt.Sprintf("%d", v.Year))
		}
		printField("quality", v.Quality)
		printField("codec", v.Codec)
		printField("audio", v.AudioCodec)
		printField("source", v.Source)
		printField("language", v.Language)
		printField("group", v.ReleaseGroup)
	case medianame.MusicInfo:
		printField("artist", v.Artist)
		printField("album", v.Album)
		if v.DiscNumber > 0 {
			printField("disc", fmt.Sprintf("%d", v.DiscNumber))
		}
		if v.TrackNumber > 0 {
			printField("track", fmt.Sprintf("%d", v.TrackNumber))
		}
		printField("title", v.Title)
	case medianame.BookInfo:
		printField("author", v.Author)
		printField("title", v.Title)
		printField("series", v.Series)
		if v.SeriesNumber > 0 {
			printField("number", fmt.Sprintf("%d", v.SeriesNumber))
		}
		if v.Year > 0 {
			printField("year", fmt.Sprintf("%d", v.Year))
		}
	case medianame.GameInfo:
		printField("title", v.Title)
		printField("platform", v.Platform)
		printField("region", v.Region)
		if len(v.Languages) > 0 {
			printField("languages", strings.Join(v.Languages, ", "))
		}
		if v.Revision > 0 {
			printField("revision", fmt.Sprintf("%d", v.Revision))
		}
		printField("version", v.Version)
		if len(v.Tags) > 0 {
			printField("tags", strings.Join(v.Tags, ", "))
		}
		printField("code", v.ReleaseCode)
	}
}

func printField(name, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %-10s %s\n", name, value)
}
