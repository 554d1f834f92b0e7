package scan

// Extension sets for each media category, lowercase with leading dot.
var (
	VideoExtensions = []string{
		".mkv", ".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm",
		".m4v", ".mpg", ".mpeg", ".3gp", ".ogv", ".ts", ".m2ts",
	}

	AudioExtensions = []string{
		".mp3", ".flac", ".wav", ".m4a", ".aac", ".ogg", ".opus",
		".wma", ".ape", ".alac", ".aiff", ".dsd", ".dsf",
	}

	BookExtensions = []string{
		".epub", ".mobi", ".azw", ".azw3", ".pdf", ".djvu",
		".fb2", ".cbz", ".cbr", ".lit", ".pdb", ".txt",
	}

	GameExtensions = []string{
		".iso", ".bin", ".cue", ".img", ".mds", ".mdf", ".nrg",
		".nes", ".sfc", ".smc", ".n64", ".z64", ".v64",
		".nds", ".3ds", ".cia", ".gba", ".gbc", ".gb",
		".wbfs", ".wad", ".rvz", ".gcm", ".gcz", ".chd",
		".gen", ".smd", ".32x", ".gg", ".sms", ".cdi",
		".ps1", ".ps2", ".psp", ".rom", ".zip", ".7z",
	}
)
