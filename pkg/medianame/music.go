package medianame

import (
	"regexp"
	"strconv"
	"strings"
)

// Track name patterns, tried in order.
var (
	musicFullPattern  = regexp.MustCompile(`^([^-]+?)\s*-\s*([^-]+?)\s*-\s*(\d+)\s*-\s*(.+)$`)
	musicDiscPattern  = regexp.MustCompile(`(?i)^(?:CD|Disc|Disk)?\s*(\d+)[-\s]+(\d+)[.\s-]+(.+)$`)
	musicTrackPattern = regexp.MustCompile(`^(\d+)[.\s-]+(.+)$`)
	musicWordPattern  = regexp.MustCompile(`(?i)^Track\s+(\d+)\s+(.+)$`)
)

// ParseMusic extracts information from an audio track file name.
//
// Recognized shapes, in order:
//
//	Artist - Album - 01 - Title.mp3
//	CD1 03 - Title.flac / 1-03 - Title.flac
//	01 - Title.mp3 / 01. Title.mp3
//	Track 01 Title.mp3
//
// Anything else keeps the whole stem as the title.
func ParseMusic(name string) MusicInfo {
	info := MusicInfo{}
	base := strings.TrimSpace(stem(name))

	if m := musicFullPattern.FindStringSubmatch(base); m != nil {
		info.Artist = strings.TrimSpace(m[1])
		info.Album = strings.TrimSpace(m[2])
		info.TrackNumber = parseTrackNumber(m[3])
		info.Title = strings.TrimSpace(m[4])
		return info
	}

	if m := musicDiscPattern.FindStringSubmatch(base); m != nil {
		info.DiscNumber, _ = strconv.Atoi(m[1])
		info.TrackNumber = parseTrackNumber(m[2])
		info.Title = strings.TrimSpace(m[3])
		return info
	}

	if m := musicTrackPattern.FindStringSubmatch(base); m != nil {
		info.TrackNumber = parseTrackNumber(m[1])
		info.Title = strings.TrimSpace(m[2])
		return info
	}

	if m := musicWordPattern.FindStringSubmatch(base); m != nil {
		info.TrackNumber = parseTrackNumber(m[1])
		info.Title = strings.TrimSpace(m[2])
		return info
	}

	info.Title = base
	return info
}
