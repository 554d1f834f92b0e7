// Package organize moves parsed media files into their library layout.
//
// Each Organize method processes a batch of files against one media item:
// parse the name, resolve the destination folder, render the organized
// name, then move. A single file's failure is recorded in the report and
// never aborts the batch. With dryRun set the same resolution runs without
// touching the filesystem, so the reported (from, to) pairs are identical
// to a real run.
package organize

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mediasort/internal/fileops"
	"mediasort/internal/media"
	"mediasort/internal/namegen"
	"mediasort/internal/scan"
	"mediasort/pkg/medianame"
)

// HistorySink records completed batches. Failures to record are logged,
// never fatal.
type HistorySink interface {
	RecordBatch(mediaType, destRoot string, dryRun bool, report *Report) error
}

// Options controls organizing behavior.
type Options struct {
	Templates          namegen.Templates
	CreateFolders      bool
	SkipDuplicates     bool
	BackupBeforeRename bool
	StrictTitleMatch   bool
	LogOperations      bool
}

// DefaultOptions returns the stock behavior: folders are created, existing
// files are overwritten without backup.
func DefaultOptions() Options {
	return Options{CreateFolders: true, LogOperations: true}
}

// Organizer runs organize batches.
type Organizer struct {
	opts    Options
	names   *namegen.Engine
	log     *slog.Logger
	history HistorySink
}

// New creates an Organizer. history may be nil.
func New(opts Options, log *slog.Logger, history HistorySink) *Organizer {
	return &Organizer{
		opts:    opts,
		names:   namegen.New(opts.Templates),
		log:     log,
		history: history,
	}
}

// destination is the resolved target for one file.
type destination struct {
	folder string // absolute folder the file moves into
	name   string // organized file name
	title  string // parsed title, for the strict match gate
}

type resolveFunc func(base, filename string) destination

// OrganizeVideo organizes video files for item, a media.Movie or
// media.Series. Episodes land in their season folder, preferring one
// already on disk over creating a new one.
func (o *Organizer) OrganizeVideo(files []string, destRoot string, item media.Item, dryRun bool, progress ProgressFunc) *Report {
	series, isSeries := item.(media.Series)
	folders := item.FolderStructure()

	resolve := func(base, filename string) destination {
		info := medianame.ParseVideo(filename)
		ext := strings.ToLower(filepath.Ext(filename))

		d := destination{folder: base, name: filename, title: info.Title}
		if isSeries {
			if info.Kind == medianame.KindSeries {
				d.name = o.names.EpisodeName(series.Name, info.Season, info.Episode,
					series.EpisodeTitle(info.Season, info.Episode), ext)
				if found := FindSeasonFolder(base, info.Season); found != "" {
					d.folder = found
				} else {
					d.folder = filepath.Join(base, seasonFolderName(folders, info.Season))
				}
			}
			return d
		}

		movie, _ := item.(media.Movie)
		d.name = o.names.MovieName(movie.Name, movie.Year, info.Quality, ext)
		return d
	}

	return o.run("video", files, destRoot, folders[:1], item.Title(), dryRun, progress, resolve)
}

// OrganizeMusic organizes audio files into the album's artist/album folders.
func (o *Organizer) OrganizeMusic(files []string, destRoot string, album media.Album, dryRun bool, progress ProgressFunc) *Report {
	resolve := func(base, filename string) destination {
		info := medianame.ParseMusic(filename)
		return destination{
			folder: base,
			name:   o.names.TrackName(info, strings.ToLower(filepath.Ext(filename))),
			title:  info.Album,
		}
	}
	return o.run("music", files, destRoot, album.FolderStructure(), album.Name, dryRun, progress, resolve)
}

// OrganizeBooks organizes ebooks. With an author on the item all files go
// into that author's folder, otherwise each file is filed under its parsed
// author, falling back to "Unknown Author".
func (o *Organizer) OrganizeBooks(files []string, destRoot string, book media.Book, dryRun bool, progress ProgressFunc) *Report {
	var base []string
	if book.Author != "" {
		base = []string{namegen.Sanitize(book.Author)}
	}

	resolve := func(root, filename string) destination {
		info := medianame.ParseBook(filename)
		d := destination{
			folder: root,
			name:   o.names.BookName(info, strings.ToLower(filepath.Ext(filename))),
			title:  info.Title,
		}
		if book.Author == "" {
			author := info.Author
			if author == "" {
				author = "Unknown Author"
			}
			d.folder = filepath.Join(root, namegen.Sanitize(author))
			if info.Series != "" {
				d.folder = filepath.Join(d.folder, namegen.Sanitize(info.Series))
			}
		}
		return d
	}
	return o.run("book", files, destRoot, base, book.Name, dryRun, progress, resolve)
}

// OrganizeGames organizes game files under platform folders. The platform
// comes from the item, the parsed name, or the file extension, in that
// order; unrecognized files land in "Unknown Platform".
func (o *Organizer) OrganizeGames(files []string, destRoot string, game media.Game, dryRun bool, progress ProgressFunc) *Report {
	resolve := func(root, filename string) destination {
		info := medianame.ParseGame(filename)
		ext := strings.ToLower(filepath.Ext(filename))

		platform := game.Platform
		if platform == "" {
			platform = info.Platform
		}
		if platform == "" {
			platform = medianame.PlatformForExtension(ext)
		}
		if platform == "" {
			platform = "Unknown Platform"
		}

		return destination{
			folder: filepath.Join(root, namegen.Sanitize(platform)),
			name:   o.names.GameName(info, ext),
			title:  info.Title,
		}
	}
	return o.run("game", files, destRoot, nil, game.Name, dryRun, progress, resolve)
}

// run is the shared batch loop. baseFolders is the folder chain under
// destRoot shared by the whole batch; it is prechecked once, per-file
// folders are handled inside the loop.
func (o *Organizer) run(mediaType string, files []string, destRoot string, baseFolders []string, itemTitle string, dryRun bool, progress ProgressFunc, resolve resolveFunc) *Report {
	report := &Report{TotalFiles: len(files)}
	defer o.record(mediaType, destRoot, dryRun, report)

	base := destRoot
	for _, folder := range baseFolders {
		if folder != "" {
			base = filepath.Join(base, folder)
		}
	}

	if !dryRun && !scan.PathExists(base, false, true) {
		if !o.opts.CreateFolders {
			report.Errors = append(report.Errors, ErrorRecord{
				File: base, Err: "missing folder and creation disabled",
			})
			return report
		}
		if err := os.MkdirAll(base, 0o755); err != nil {
			report.Errors = append(report.Errors, ErrorRecord{File: base, Err: err.Error()})
			return report
		}
	}

	for i, src := range files {
		filename := filepath.Base(src)
		if progress != nil {
			progress(i+1, len(files), filename)
		}

		d := resolve(base, filename)
		dst := filepath.Join(d.folder, d.name)

		if o.opts.StrictTitleMatch && itemTitle != "" && d.title != "" {
			if m := medianame.MatchTitle(d.title, []string{itemTitle}); m.Confidence == medianame.ConfidenceNone {
				report.Skipped = append(report.Skipped, SkipRecord{File: src, Reason: "title mismatch"})
				if o.opts.LogOperations {
					o.log.Info("skipped on title mismatch", "file", src, "wanted", itemTitle, "parsed", d.title)
				}
				continue
			}
		}

		if o.opts.SkipDuplicates && scan.PathExists(dst, false, false) {
			report.Skipped = append(report.Skipped, SkipRecord{File: src, Reason: "File already exists"})
			if o.opts.LogOperations {
				o.log.Info("skipped duplicate", "file", src)
			}
			continue
		}

		if dryRun {
			report.Moved = append(report.Moved, MoveRecord{From: src, To: dst})
			report.TotalMoved++
			continue
		}

		if !scan.PathExists(d.folder, false, true) {
			if !o.opts.CreateFolders {
				report.Errors = append(report.Errors, ErrorRecord{
					File: src, Err: fmt.Sprintf("folder %s missing and creation disabled", d.folder),
				})
				continue
			}
			if err := os.MkdirAll(d.folder, 0o755); err != nil {
				report.Errors = append(report.Errors, ErrorRecord{File: src, Err: err.Error()})
				continue
			}
		}

		if o.opts.BackupBeforeRename && scan.PathExists(dst, false, false) {
			backup := dst + ".backup"
			_ = os.Remove(backup)
			if err := fileops.CopyFile(dst, backup); err != nil {
				o.log.Error("backup before rename failed", "file", dst, "error", err)
			} else if o.opts.LogOperations {
				o.log.Info("backup created", "backup", backup)
			}
		}

		if err := moveFile(src, dst); err != nil {
			report.Errors = append(report.Errors, ErrorRecord{File: src, Err: err.Error()})
			o.log.Error("move failed", "src", src, "dst", dst, "error", err)
			continue
		}

		report.Moved = append(report.Moved, MoveRecord{From: src, To: dst})
		report.TotalMoved++
		if o.opts.LogOperations {
			o.log.Info("moved", "src", src, "dst", dst)
		}
	}

	return report
}

func (o *Organizer) record(mediaType, destRoot string, dryRun bool, report *Report) {
	if o.history == nil {
		return
	}
	if err := o.history.RecordBatch(mediaType, destRoot, dryRun, report); err != nil {
		o.log.Warn("recording history failed", "error", err)
	}
}

// moveFile renames src to dst, falling back to copy+remove across
// filesystems. An existing dst is replaced.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := fileops.CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}
