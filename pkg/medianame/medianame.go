// Package medianame parses media file names to extract structured metadata.
//
// Each media kind has its own parser (ParseVideo, ParseMusic, ParseBook,
// ParseGame) working over an ordered list of patterns, first match wins.
// The ordering is a designed tie-break: reordering patterns changes
// observable behavior. Parsing never fails; fields that do not match stay
// at their zero value and the title falls back to the whole stem.
package medianame

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Kind classifies a parsed video file name.
type Kind int

const (
	KindMovie Kind = iota
	KindSeries
)

func (k Kind) String() string {
	if k == KindSeries {
		return "series"
	}
	return "movie"
}

// VideoInfo is the parse result for a movie or episode file name.
type VideoInfo struct {
	Kind         Kind
	Title        string
	Year         int
	Season       int
	Episode      int
	Quality      string // 4K, 1080p, 720p, 480p, HD
	Codec        string // x264, x265, H264, H265, HEVC, XviD, DivX, VP9, AV1
	AudioCodec   string // AAC, AC3, DTS, TrueHD, Atmos, DD5.1, DD+, EAC3, FLAC, MP3
	Language     string // fr, fr-sub, multi, fr-qc, en, de, es
	Source       string // BluRay, BRRip, WEB-DL, WEBRip, HDTV, DVDRip, DVD, REMUX
	ReleaseGroup string
}

// MusicInfo is the parse result for an audio track file name.
type MusicInfo struct {
	Artist      string
	Album       string
	TrackNumber int
	DiscNumber  int
	Title       string
	Year        int
}

// BookInfo is the parse result for an ebook file name.
type BookInfo struct {
	Author       string
	Title        string
	Series       string
	SeriesNumber int
	Year         int
}

// GameInfo is the parse result for a game ROM/image file name.
type GameInfo struct {
	Title       string
	Platform    string
	Region      string
	Regions     []string
	Revision    int
	Version     string
	ReleaseCode string
	Languages   []string
	Tags        []string // Beta, Demo, Prototype, Hack, Sample, Promo
}

// stem strips a trailing file extension, if any.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// parseTrackNumber parses a track or disc value that may carry a total,
// e.g. "5/12" yields 5.
func parseTrackNumber(value string) int {
	value, _, _ = strings.Cut(value, "/")
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
