package medianame

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	gamePlatformPrefix = regexp.MustCompile(`^\[([^\]]+)\]\s*(.+)$`)
	parenGroupPattern  = regexp.MustCompile(`\(([^)]+)\)`)
	bracketPattern     = regexp.MustCompile(`\[([^\]]+)\]`)
	revisionPattern    = regexp.MustCompile(`rev(?:ision)?\s*(\d+)`)
	versionPattern     = regexp.MustCompile(`\bv(?:er(?:sion)?)?\s*([\d.]+)`)
	releaseCodePattern = regexp.MustCompile(`^[A-Z]{4}[_-]?\d{5}`)

	stripParens   = regexp.MustCompile(`\([^)]*\)`)
	stripBrackets = regexp.MustCompile(`\[[^\]]*\]`)
)

// platformTable maps short platform codes to full console names.
var platformTable = map[string]string{
	"nes":       "Nintendo Entertainment System",
	"snes":      "Super Nintendo",
	"n64":       "Nintendo 64",
	"gc":        "GameCube",
	"wii":       "Wii",
	"wiiu":      "Wii U",
	"switch":    "Nintendo Switch",
	"gb":        "Game Boy",
	"gbc":       "Game Boy Color",
	"gba":       "Game Boy Advance",
	"nds":       "Nintendo DS",
	"3ds":       "Nintendo 3DS",
	"genesis":   "Sega Genesis",
	"megadrive": "Sega Mega Drive",
	"scd":       "Sega CD",
	"32x":       "Sega 32X",
	"saturn":    "Sega Saturn",
	"dreamcast": "Sega Dreamcast",
	"ps1":       "PlayStation",
	"psx":       "PlayStation",
	"ps2":       "PlayStation 2",
	"ps3":       "PlayStation 3",
	"ps4":       "PlayStation 4",
	"ps5":       "PlayStation 5",
	"psp":       "PlayStation Portable",
	"vita":      "PlayStation Vita",
	"xbox":      "Xbox",
	"xbox360":   "Xbox 360",
	"xboxone":   "Xbox One",
	"xboxsx":    "Xbox Series X/S",
	"arcade":    "Arcade",
	"mame":      "MAME",
	"pc":        "PC",
	"dos":       "DOS",
}

// regionTable maps ROM region codes to canonical names. Matching is a
// substring test in this order, so longer codes come before their
// two-letter variants.
var regionTable = []struct{ code, region string }{
	{"usa", "USA"},
	{"us", "USA"},
	{"europe", "Europe"},
	{"eu", "Europe"},
	{"japan", "Japan"},
	{"jp", "Japan"},
	{"jap", "Japan"},
	{"world", "World"},
	{"france", "France"},
	{"fr", "France"},
	{"germany", "Germany"},
	{"de", "Germany"},
	{"spain", "Spain"},
	{"es", "Spain"},
	{"italy", "Italy"},
	{"it", "Italy"},
	{"uk", "United Kingdom"},
	{"korea", "Korea"},
	{"kr", "Korea"},
	{"china", "China"},
	{"cn", "China"},
	{"brazil", "Brazil"},
	{"br", "Brazil"},
}

var languageCodes = []string{"en", "fr", "de", "es", "it", "pt", "ja", "zh", "ko"}

var gameTagTable = []struct {
	tokens []string
	tag    string
}{
	{[]string{"beta"}, "Beta"},
	{[]string{"demo"}, "Demo"},
	{[]string{"proto", "prototype"}, "Prototype"},
	{[]string{"hack"}, "Hack"},
	{[]string{"sample"}, "Sample"},
	{[]string{"promo", "promotional"}, "Promo"},
}

// ParseGame extracts information from a game file name.
//
// Recognized shapes follow common ROM dump conventions:
//
//	Game Title (USA).iso
//	Game Title (Europe) (Rev 1).bin
//	Game Title [SLUS-12345].iso
//	[snes] Game Title (Region).sfc
func ParseGame(name string) GameInfo {
	info := GameInfo{}
	base := strings.TrimSpace(stem(name))

	if m := gamePlatformPrefix.FindStringSubmatch(base); m != nil {
		if platform, ok := platformTable[strings.ToLower(strings.TrimSpace(m[1]))]; ok {
			info.Platform = platform
		}
		base = m[2]
	}

	for _, m := range parenGroupPattern.FindAllStringSubmatch(base, -1) {
		scanParenGroup(m[1], &info)
	}
	for _, m := range bracketPattern.FindAllStringSubmatch(base, -1) {
		if releaseCodePattern.MatchString(m[1]) || strings.HasPrefix(m[1], "!") {
			info.ReleaseCode = m[1]
		}
	}

	title := stripParens.ReplaceAllString(base, "")
	title = stripBrackets.ReplaceAllString(title, "")
	info.Title = strings.TrimSpace(whitespacePattern.ReplaceAllString(title, " "))

	return info
}

// scanParenGroup inspects one (...) group for region, revision, version,
// language codes and boolean dump tags.
func scanParenGroup(part string, info *GameInfo) {
	lower := strings.ToLower(part)

	for _, r := range regionTable {
		if strings.Contains(lower, r.code) {
			info.Regions = append(info.Regions, r.region)
			if info.Region == "" {
				info.Region = r.region
			}
			break
		}
	}

	if strings.Contains(lower, "rev") {
		if m := revisionPattern.FindStringSubmatch(lower); m != nil {
			info.Revision, _ = strconv.Atoi(m[1])
		}
	}
	if m := versionPattern.FindStringSubmatch(lower); m != nil {
		info.Version = m[1]
	}

	// Language lists like (En,Fr,De). Exact tokens only: substring checks
	// would turn (Europe) into an English-language tag.
	for _, token := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ',' || r == '+' || r == ' '
	}) {
		for _, lang := range languageCodes {
			if token == lang {
				info.Languages = append(info.Languages, strings.ToUpper(lang))
				break
			}
		}
	}

	for _, t := range gameTagTable {
		for _, token := range t.tokens {
			if strings.Contains(lower, token) {
				info.Tags = append(info.Tags, t.tag)
				break
			}
		}
	}
}

// PlatformForExtension guesses a platform from a ROM file extension when
// the name carries no platform hint.
func PlatformForExtension(ext string) string {
	extToPlatform := map[string]string{
		".nes": "Nintendo Entertainment System",
		".sfc": "Super Nintendo",
		".smc": "Super Nintendo",
		".n64": "Nintendo 64",
		".z64": "Nintendo 64",
		".v64": "Nintendo 64",
		".nds": "Nintendo DS",
		".3ds": "Nintendo 3DS",
		".gba": "Game Boy Advance",
		".gbc": "Game Boy Color",
		".gb":  "Game Boy",
		".gen": "Sega Genesis",
		".smd": "Sega Genesis",
		".32x": "Sega 32X",
		".gg":  "Game Gear",
		".psp": "PlayStation Portable",
	}
	return extToPlatform[strings.ToLower(ext)]
}
