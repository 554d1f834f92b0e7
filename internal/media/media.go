// Package media defines the organized representation of library items and
// the folder layout each kind of item expects.
package media

import (
	"fmt"
	"sort"

	"mediasort/internal/namegen"
)

// Item is an organizable library entry. FolderStructure returns the folder
// chain to create under the destination root, outermost first.
type Item interface {
	Title() string
	FolderStructure() []string
}

// Movie is a single film, stored in its own "Title (Year)" folder.
type Movie struct {
	Name string
	Year int
}

func (m Movie) Title() string { return m.Name }

// FormattedName returns the display name, with the year when known.
func (m Movie) FormattedName() string {
	if m.Year > 0 {
		return namegen.Sanitize(fmt.Sprintf("%s (%d)", m.Name, m.Year))
	}
	return namegen.Sanitize(m.Name)
}

func (m Movie) FolderStructure() []string {
	return []string{m.FormattedName()}
}

// Series is a TV show with its known seasons. Seasons maps a display label
// ("Season 01") to its number, Episodes maps "S01E01" codes to episode titles.
type Series struct {
	Name     string
	Year     int
	Seasons  map[string]int
	Episodes map[string]string
}

func (s Series) Title() string { return s.Name }

// FolderStructure returns the series folder followed by one folder per
// known season, ordered by season number.
func (s Series) FolderStructure() []string {
	folders := []string{namegen.Sanitize(s.Name)}

	labels := make([]string, 0, len(s.Seasons))
	for label := range s.Seasons {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if s.Seasons[labels[i]] != s.Seasons[labels[j]] {
			return s.Seasons[labels[i]] < s.Seasons[labels[j]]
		}
		return labels[i] < labels[j]
	})
	for _, label := range labels {
		folders = append(folders, namegen.Sanitize(label))
	}
	return folders
}

// EpisodeTitle returns the title for an episode code like "S01E01", or ""
// when unknown.
func (s Series) EpisodeTitle(season, episode int) string {
	return s.Episodes[fmt.Sprintf("S%02dE%02d", season, episode)]
}

// Album is a music release, stored under artist/album folders.
type Album struct {
	Artist string
	Name   string
	Year   int
}

func (a Album) Title() string { return a.Name }

// FormattedName returns "Artist - Album (Year)", dropping absent parts.
func (a Album) FormattedName() string {
	name := a.Name
	if a.Artist != "" {
		name = a.Artist + " - " + name
	}
	if a.Year > 0 {
		name = fmt.Sprintf("%s (%d)", name, a.Year)
	}
	return namegen.Sanitize(name)
}

func (a Album) FolderStructure() []string {
	var folders []string
	if a.Artist != "" {
		folders = append(folders, namegen.Sanitize(a.Artist))
	}
	return append(folders, a.FormattedName())
}

// Book is an ebook, stored under an author folder when the author is known.
type Book struct {
	Author string
	Name   string
	Year   int
}

func (b Book) Title() string { return b.Name }

// FormattedName returns "Author - Title (Year)", dropping absent parts.
func (b Book) FormattedName() string {
	name := b.Name
	if b.Author != "" {
		name = b.Author + " - " + name
	}
	if b.Year > 0 {
		name = fmt.Sprintf("%s (%d)", name, b.Year)
	}
	return namegen.Sanitize(name)
}

func (b Book) FolderStructure() []string {
	var folders []string
	if b.Author != "" {
		folders = append(folders, namegen.Sanitize(b.Author))
	}
	return append(folders, b.FormattedName())
}

// Game is a video game, stored in a single folder carrying its platform.
type Game struct {
	Name     string
	Platform string
	Year     int
}

func (g Game) Title() string { return g.Name }

// FormattedName returns the game folder name, with year and platform
// markers when known.
func (g Game) FormattedName() string {
	name := g.Name
	if g.Year > 0 {
		name = fmt.Sprintf("%s (%d)", name, g.Year)
	}
	if g.Platform != "" {
		name += " [" + g.Platform + "]"
	}
	return namegen.Sanitize(name)
}

func (g Game) FolderStructure() []string {
	return []string{g.FormattedName()}
}
