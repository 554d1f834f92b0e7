package medianame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A grab bag of real-world filenames. Parsing must be total: every input
// yields a non-empty title, whatever else it fails to recognize.
var videoCorpus = []string{
	"Breaking.Bad.S01E01.Pilot.720p.BluRay.x264-DEMAND.mkv",
	"The.Office.US.S05E13.HDTV.XviD-LOL.avi",
	"Game.of.Thrones.S08E03.1080p.WEB-DL.DD5.1.H264-GoT.mkv",
	"the.matrix.1999.1080p.bluray.x264-yify.mp4",
	"Inception (2010) [1080p] [YTS].mkv",
	"Le.Fabuleux.Destin.d.Amelie.Poulain.2001.FRENCH.DVDRip.avi",
	"Dark.S03E08.GERMAN.1080p.WEB.x264-TEPES.mkv",
	"lost.1x04.hdtv.avi",
	"Parasite.2019.MULTI.2160p.UHD.BluRay.REMUX.HEVC.Atmos-WAF.mkv",
	"home_video_2020.mp4",
	"movie.mkv",
	"S01E01.mkv",
	"1917.mkv",
	"...",
	"???.avi",
}

var musicCorpus = []string{
	"Pink Floyd - The Wall - 05 - Another Brick in the Wall.mp3",
	"01 - Speak to Me.flac",
	"CD2 03 - Us and Them.flac",
	"1-03 - Time.mp3",
	"Track 09 Brain Damage.mp3",
	"07. Money.ogg",
	"random recording.wav",
}

var bookCorpus = []string{
	"Brandon Sanderson - [Mistborn 1] - The Final Empire.epub",
	"Andy Weir - The Martian (2011).mobi",
	"Ursula K. Le Guin - The Dispossessed.epub",
	"Dune.pdf",
	"some_scanned_notes.pdf",
}

var gameCorpus = []string{
	"[SNES] Super Metroid (Japan, USA) (En,Ja).sfc",
	"Chrono Trigger (USA).smc",
	"Gran Turismo (Europe) [SCES-00984].bin",
	"Sonic The Hedgehog (World) (Rev 1) [!].gen",
	"Tetris (World) (Beta).gb",
	"homebrew_demo.gba",
}

func TestParseVideo_Corpus(t *testing.T) {
	for _, name := range videoCorpus {
		info := ParseVideo(name)
		assert.NotEmpty(t, info.Title, "input %q", name)
	}
}

func TestParseMusic_Corpus(t *testing.T) {
	for _, name := range musicCorpus {
		info := ParseMusic(name)
		assert.NotEmpty(t, info.Title, "input %q", name)
	}
}

func TestParseBook_Corpus(t *testing.T) {
	for _, name := range bookCorpus {
		info := ParseBook(name)
		assert.NotEmpty(t, info.Title, "input %q", name)
	}
}

func TestParseGame_Corpus(t *testing.T) {
	for _, name := range gameCorpus {
		info := ParseGame(name)
		assert.NotEmpty(t, info.Title, "input %q", name)
	}
}
