package medianame

import "testing"

func TestParseBook(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want BookInfo
	}{
		{
			name: "series with number",
			in:   "Brandon Sanderson - [Mistborn 01] - The Final Empire.epub",
			want: BookInfo{
				Author: "Brandon Sanderson", Series: "Mistborn",
				SeriesNumber: 1, Title: "The Final Empire",
			},
		},
		{
			name: "author title year",
			in:   "Andy Weir - Project Hail Mary (2021).epub",
			want: BookInfo{Author: "Andy Weir", Title: "Project Hail Mary", Year: 2021},
		},
		{
			name: "author left when it looks like a name",
			in:   "Ursula K. Le Guin - The Dispossessed.epub",
			want: BookInfo{Author: "Ursula K. Le Guin", Title: "The Dispossessed"},
		},
		{
			name: "left side kept as title otherwise",
			in:   "the hitchhikers guide - Douglas Adams.epub",
			want: BookInfo{Title: "the hitchhikers guide", Author: "Douglas Adams"},
		},
		{
			name: "fallback whole stem",
			in:   "Dune.mobi",
			want: BookInfo{Title: "Dune"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBook(tt.in)
			if got != tt.want {
				t.Errorf("ParseBook(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLooksLikeAuthor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Andy Weir", true},
		{"Ursula K. Le Guin", true},
		{"weir", false},
		{"a very long rambling book title", false},
		{"lowercase name", false},
	}
	for _, tt := range tests {
		if got := looksLikeAuthor(tt.in); got != tt.want {
			t.Errorf("looksLikeAuthor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
