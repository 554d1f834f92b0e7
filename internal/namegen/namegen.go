// Package namegen renders filename templates for organized media.
package namegen

import (
	"fmt"
	"regexp"
	"strings"

	"mediasort/pkg/medianame"
)

// Default naming templates.
const (
	DefaultSeriesTemplate = "{title} S{season}E{episode} {episode_title}"
	DefaultMovieTemplate  = "{title} ({year})"
	DefaultMusicTemplate  = "{track} - {title}"
	DefaultBookTemplate   = "{author} - {title}"
	DefaultGameTemplate   = "{title} ({region})"
)

// Templates holds the per-media naming templates. Empty fields fall back
// to the defaults.
type Templates struct {
	Series string
	Movie  string
	Music  string
	Book   string
	Game   string
}

// Engine builds organized filenames from parsed media information.
type Engine struct {
	t Templates
}

// New creates an Engine, filling empty template fields with defaults.
func New(t Templates) *Engine {
	if t.Series == "" {
		t.Series = DefaultSeriesTemplate
	}
	if t.Movie == "" {
		t.Movie = DefaultMovieTemplate
	}
	if t.Music == "" {
		t.Music = DefaultMusicTemplate
	}
	if t.Book == "" {
		t.Book = DefaultBookTemplate
	}
	if t.Game == "" {
		t.Game = DefaultGameTemplate
	}
	return &Engine{t: t}
}

var (
	placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)
	emptyParens        = regexp.MustCompile(`\s*\(\s*\)`)
	multiSpace         = regexp.MustCompile(`\s+`)
	illegalChars       = regexp.MustCompile(`[<>:"/\\|?*\x00]`)
)

// Render substitutes {placeholder} occurrences from vars. Keys present with
// an empty value vanish, placeholders absent from vars stay literal.
// Degenerate " ()" groups left by empty values are removed and the result
// is sanitized for use as a filename. Render never fails.
func Render(template string, vars map[string]string) string {
	s := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		val, ok := vars[name]
		if !ok {
			return match
		}
		return val
	})

	s = emptyParens.ReplaceAllString(s, "")
	s = strings.TrimPrefix(strings.TrimSpace(s), "- ")
	s = strings.TrimSuffix(s, " -")
	return Sanitize(s)
}

// Sanitize strips characters unsafe for filenames, collapses whitespace and
// trims trailing dots.
func Sanitize(name string) string {
	name = illegalChars.ReplaceAllString(name, " ")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(strings.TrimSpace(name), ".")
}

// EpisodeName builds the organized name for a series episode. The title is
// the show's, not the parsed one; the episode title comes from the caller.
func (e *Engine) EpisodeName(title string, season, episode int, episodeTitle, ext string) string {
	vars := map[string]string{
		"title":         title,
		"season":        fmt.Sprintf("%02d", season),
		"episode":       fmt.Sprintf("%02d", episode),
		"episode_title": episodeTitle,
	}
	return Render(e.t.Series, vars) + ext
}

// MovieName builds the organized name for a movie file.
func (e *Engine) MovieName(title string, year int, quality, ext string) string {
	vars := map[string]string{
		"title":   title,
		"year":    "",
		"quality": quality,
	}
	if year > 0 {
		vars["year"] = fmt.Sprintf("%d", year)
	}
	return Render(e.t.Movie, vars) + ext
}

// TrackName builds the organized name for a parsed music track.
func (e *Engine) TrackName(info medianame.MusicInfo, ext string) string {
	vars := map[string]string{
		"artist": info.Artist,
		"album":  info.Album,
		"track":  "",
		"title":  info.Title,
	}
	if info.TrackNumber > 0 {
		vars["track"] = fmt.Sprintf("%02d", info.TrackNumber)
	}
	return Render(e.t.Music, vars) + ext
}

// BookName builds the organized name for a parsed book. Books in a series
// carry the series marker, otherwise the year when known. Without an author
// the title alone is used.
func (e *Engine) BookName(info medianame.BookInfo, ext string) string {
	if info.Author == "" {
		return Sanitize(info.Title) + ext
	}
	if info.Series != "" && info.SeriesNumber > 0 {
		return Sanitize(fmt.Sprintf("%s - [%s %02d] - %s", info.Author, info.Series, info.SeriesNumber, info.Title)) + ext
	}
	if info.Year > 0 {
		return Sanitize(fmt.Sprintf("%s - %s (%d)", info.Author, info.Title, info.Year)) + ext
	}
	return Render(e.t.Book, map[string]string{"author": info.Author, "title": info.Title}) + ext
}

// GameName builds the organized name for a parsed game, following ROM
// conventions: Title (Region) (Rev N) (vX) (Tags) [CODE].
func (e *Engine) GameName(info medianame.GameInfo, ext string) string {
	region := info.Region
	if region == "" && len(info.Regions) > 0 {
		region = strings.Join(info.Regions, ", ")
	}
	name := Render(e.t.Game, map[string]string{
		"title":    info.Title,
		"region":   region,
		"platform": info.Platform,
	})
	if info.Revision > 0 {
		name += fmt.Sprintf(" (Rev %d)", info.Revision)
	}
	if info.Version != "" {
		name += " (v" + info.Version + ")"
	}
	if len(info.Tags) > 0 {
		name += " (" + strings.Join(info.Tags, ", ") + ")"
	}
	if info.ReleaseCode != "" {
		name += " [" + info.ReleaseCode + "]"
	}
	return name + ext
}
