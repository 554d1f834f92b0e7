package medianame

import "testing"

func TestParseVideo_Series(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want VideoInfo
	}{
		{
			name: "standard release",
			in:   "Breaking.Bad.S01E01.1080p.BluRay.x264-GROUP.mkv",
			want: VideoInfo{
				Kind: KindSeries, Title: "Breaking Bad", Season: 1, Episode: 1,
				Quality: "1080p", Source: "BluRay", Codec: "x264", ReleaseGroup: "GROUP",
			},
		},
		{
			name: "lowercase marker",
			in:   "the.office.s02e05.720p.hdtv.x264.mkv",
			want: VideoInfo{
				Kind: KindSeries, Title: "the office", Season: 2, Episode: 5,
				Quality: "720p", Source: "HDTV", Codec: "x264",
			},
		},
		{
			name: "alternate NxNN notation",
			in:   "Lost 1x04 Walkabout.mkv",
			want: VideoInfo{Kind: KindSeries, Title: "Lost", Season: 1, Episode: 4},
		},
		{
			name: "space separated",
			in:   "Dark S03E08 GERMAN 1080p WEB-DL-TEPES.mkv",
			want: VideoInfo{
				Kind: KindSeries, Title: "Dark", Season: 3, Episode: 8,
				Quality: "1080p", Source: "WEB-DL", Language: "de", ReleaseGroup: "TEPES",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVideo(tt.in)
			if got != tt.want {
				t.Errorf("ParseVideo(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVideo_Movie(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want VideoInfo
	}{
		{
			name: "parenthesized year",
			in:   "The Matrix (1999) 1080p.mkv",
			want: VideoInfo{Kind: KindMovie, Title: "The Matrix", Year: 1999, Quality: "1080p"},
		},
		{
			name: "dotted name with bare year",
			in:   "Inception.2010.720p.BluRay.x264-SPARKS.mkv",
			want: VideoInfo{
				Kind: KindMovie, Title: "Inception", Year: 2010,
				Quality: "720p", Source: "BluRay", Codec: "x264", ReleaseGroup: "SPARKS",
			},
		},
		{
			name: "no year falls back to stem",
			in:   "Home_Movie_Clip.mp4",
			want: VideoInfo{Kind: KindMovie, Title: "Home Movie Clip"},
		},
		{
			name: "french multi release",
			in:   "Amelie.2001.MULTI.1080p.BluRay.DTS.x265-GRP.mkv",
			want: VideoInfo{
				Kind: KindMovie, Title: "Amelie", Year: 2001, Quality: "1080p",
				Source: "BluRay", Codec: "x265", AudioCodec: "DTS",
				Language: "multi", ReleaseGroup: "GRP",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVideo(tt.in)
			if got != tt.want {
				t.Errorf("ParseVideo(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVideo_YearRange(t *testing.T) {
	// 4-digit numbers outside 1900-2100 are not years
	got := ParseVideo("Movie 1234.mkv")
	if got.Year != 0 {
		t.Errorf("Year = %d, want 0", got.Year)
	}
	if got.Title != "Movie 1234" {
		t.Errorf("Title = %q, want %q", got.Title, "Movie 1234")
	}
}

func TestParseVideo_ParenYearWinsOverBare(t *testing.T) {
	got := ParseVideo("2012 (2009) 1080p.mkv")
	if got.Year != 2009 {
		t.Errorf("Year = %d, want 2009", got.Year)
	}
}

func TestParseVideo_QualityMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Movie.2020.2160p.mkv", "4K"},
		{"Movie.2020.UHD.BluRay.mkv", "4K"},
		{"Movie.2020.1080p.mkv", "1080p"},
		{"Movie.2020.480p.mkv", "480p"},
		{"Movie.2020.HDTV.mkv", "HD"},
	}
	for _, tt := range tests {
		if got := ParseVideo(tt.in).Quality; got != tt.want {
			t.Errorf("ParseVideo(%q).Quality = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseVideo_ReleaseGroupBrackets(t *testing.T) {
	got := ParseVideo("Show.S01E02.720p.WEBRip.[YIFY].mkv")
	if got.ReleaseGroup != "YIFY" {
		t.Errorf("ReleaseGroup = %q, want %q", got.ReleaseGroup, "YIFY")
	}
}

func TestParseVideo_NeverEmptyTitle(t *testing.T) {
	for _, in := range []string{"x.mkv", "-.mkv", "S01E01.mkv", "video"} {
		got := ParseVideo(in)
		if got.Title == "" {
			t.Errorf("ParseVideo(%q) returned empty title", in)
		}
	}
}
