package medianame

import (
	"regexp"
	"strconv"
	"strings"
)

// Series notations, tried in order. S##E## wins over the #x## alternate.
var (
	seriesPattern    = regexp.MustCompile(`(?i)^(.*?)[.\s-]+S(\d{1,2})E(\d{1,2})(.*)$`)
	altSeriesPattern = regexp.MustCompile(`(?i)^(.*?)[.\s-]+(\d{1,2})x(\d{1,2})(.*)$`)

	parenYearPattern = regexp.MustCompile(`\((\d{4})\)`)
	bareYearPattern  = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	releaseGroupPattern = regexp.MustCompile(`[-\[]([A-Za-z0-9]+)\]?$`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// qualityTable maps release tokens to a canonical quality label. Order
// matters: resolution tokens are checked before the generic HD tag.
var qualityTable = []struct{ token, quality string }{
	{"2160p", "4K"},
	{"1080p", "1080p"},
	{"720p", "720p"},
	{"480p", "480p"},
	{"4K", "4K"},
	{"UHD", "4K"},
	{"HD", "HD"},
}

var videoCodecs = []string{"x264", "x265", "H264", "H265", "HEVC", "XviD", "DivX", "VP9", "AV1"}

var audioCodecs = []string{"AAC", "AC3", "DTS", "TrueHD", "Atmos", "DD5.1", "DD+", "EAC3", "FLAC", "MP3"}

var contentSources = []string{"BluRay", "BRRip", "WEB-DL", "WEBRip", "HDTV", "DVDRip", "DVD", "REMUX"}

var languageTable = []struct{ token, lang string }{
	{"FRENCH", "fr"},
	{"VOSTFR", "fr-sub"},
	{"MULTI", "multi"},
	{"TRUEFRENCH", "fr"},
	{"VFF", "fr"},
	{"VFQ", "fr-qc"},
	{"ENGLISH", "en"},
	{"GERMAN", "de"},
	{"SPANISH", "es"},
}

// ParseVideo extracts information from a movie or episode file name.
//
// Recognized shapes, in order:
//
//	Name S01E01 rest.mkv
//	Name 1x01 rest.mkv
//	Title (2020) 1080p.mkv
//
// Anything that is not a series becomes a movie; without a year the whole
// stem is the title.
func ParseVideo(name string) VideoInfo {
	info := VideoInfo{}

	var rest string
	if m := seriesPattern.FindStringSubmatch(name); m != nil {
		info.Kind = KindSeries
		info.Title = cleanTitle(m[1])
		info.Season, _ = strconv.Atoi(m[2])
		info.Episode, _ = strconv.Atoi(m[3])
		rest = m[4]
	} else if m := altSeriesPattern.FindStringSubmatch(name); m != nil {
		info.Kind = KindSeries
		info.Title = cleanTitle(m[1])
		info.Season, _ = strconv.Atoi(m[2])
		info.Episode, _ = strconv.Atoi(m[3])
		rest = m[4]
	} else {
		info.Kind = KindMovie
		info.Year = extractYear(name)
		if info.Year > 0 {
			before, _, _ := strings.Cut(name, strconv.Itoa(info.Year))
			info.Title = strings.TrimRight(cleanTitle(before), " ([-")
		} else {
			info.Title = cleanTitle(stem(name))
		}
		rest = name
	}

	if info.Title == "" {
		info.Title = cleanTitle(stem(name))
	}
	if info.Title == "" {
		info.Title = stem(name)
	}
	if info.Title == "" {
		info.Title = name
	}
	if rest != "" {
		scanReleaseTokens(rest, &info)
	}
	return info
}

// extractYear finds a plausible release year between 1900 and 2100.
// A parenthesized year wins over a bare one.
func extractYear(text string) int {
	if m := parenYearPattern.FindStringSubmatch(text); m != nil {
		if y, _ := strconv.Atoi(m[1]); y >= 1900 && y <= 2100 {
			return y
		}
	}
	if m := bareYearPattern.FindStringSubmatch(text); m != nil {
		if y, _ := strconv.Atoi(m[1]); y >= 1900 && y <= 2100 {
			return y
		}
	}
	return 0
}

// scanReleaseTokens fills quality, codec, audio, source, language and
// release group from the release-tag portion of a file name. Every table
// is first match wins.
func scanReleaseTokens(text string, info *VideoInfo) {
	lower := strings.ToLower(text)

	for _, q := range qualityTable {
		if strings.Contains(lower, strings.ToLower(q.token)) {
			info.Quality = q.quality
			break
		}
	}
	for _, c := range videoCodecs {
		if strings.Contains(lower, strings.ToLower(c)) {
			info.Codec = c
			break
		}
	}
	for _, a := range audioCodecs {
		if strings.Contains(lower, strings.ToLower(a)) {
			info.AudioCodec = a
			break
		}
	}
	for _, s := range contentSources {
		if strings.Contains(lower, strings.ToLower(s)) {
			info.Source = s
			break
		}
	}
	for _, l := range languageTable {
		if strings.Contains(lower, strings.ToLower(l.token)) {
			info.Language = l.lang
			break
		}
	}
	if m := releaseGroupPattern.FindStringSubmatch(stem(text)); m != nil {
		info.ReleaseGroup = m[1]
	}
}

// cleanTitle normalizes dot/underscore separated titles to spaces and
// collapses runs of whitespace.
func cleanTitle(title string) string {
	title = strings.ReplaceAll(title, ".", " ")
	title = strings.ReplaceAll(title, "_", " ")
	title = whitespacePattern.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}
