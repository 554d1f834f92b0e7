package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// seasonKeywords are the folder-name markers recognized as season folders,
// across the languages the library supports.
var seasonKeywords = []string{"season", "saison", "staffel", "temporada", "s"}

var seasonNumberPattern = map[string]*regexp.Regexp{}

func init() {
	for _, kw := range seasonKeywords {
		seasonNumberPattern[kw] = regexp.MustCompile(kw + `\s*(\d+)`)
	}
}

// FindSeasonFolder scans the immediate subdirectories of seriesRoot for one
// holding the given season. Both padded ("Season 01") and unpadded
// ("Season 1") forms match, as do suffixed names ("Season 1 - Pilots").
// Returns the folder path, or "" when none exists.
func FindSeasonFolder(seriesRoot string, season int) string {
	entries, err := os.ReadDir(seriesRoot)
	if err != nil {
		return ""
	}

	unpadded := strconv.Itoa(season)
	padded := fmt.Sprintf("%02d", season)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())

		for _, kw := range seasonKeywords {
			candidates := []string{
				kw + " " + unpadded,
				kw + " " + padded,
				kw + padded,
				kw + unpadded,
			}
			for _, c := range candidates {
				if name == c || strings.HasPrefix(name, c+" ") || strings.HasPrefix(name, c+"-") {
					return filepath.Join(seriesRoot, entry.Name())
				}
			}
			if strings.Contains(name, kw) {
				if m := seasonNumberPattern[kw].FindStringSubmatch(name); m != nil {
					if n, _ := strconv.Atoi(m[1]); n == season {
						return filepath.Join(seriesRoot, entry.Name())
					}
				}
			}
		}
	}
	return ""
}

// seasonFolderName picks the season folder label from the item's known
// folders, falling back to "Season N".
func seasonFolderName(folders []string, season int) string {
	if len(folders) > 1 {
		for _, folder := range folders[1:] {
			lower := strings.ToLower(folder)
			for _, kw := range []string{"season", "saison", "staffel", "temporada"} {
				m := seasonNumberPattern[kw].FindStringSubmatch(lower)
				if m != nil && strings.HasPrefix(lower, kw) {
					if n, _ := strconv.Atoi(m[1]); n == season {
						return folder
					}
				}
			}
		}
	}
	return fmt.Sprintf("Season %d", season)
}
