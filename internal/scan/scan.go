// Package scan discovers media files by extension.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ValidExtension reports whether path has one of the given extensions.
// Extensions match case-insensitively, with or without a leading dot.
func ValidExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == e {
			return true
		}
	}
	return false
}

// FilesByExtension returns all files under dir matching one of the given
// extensions. With recursive set it descends into subdirectories, otherwise
// only the top level is listed. Unreadable entries below dir are logged and
// skipped; only a failure on dir itself is an error.
func FilesByExtension(dir string, extensions []string, recursive bool, log *slog.Logger) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory: %w", err)
		}
		var files []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if ValidExtension(path, extensions) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.Warn("skipping unreadable entry", "path", path, "error", err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if ValidExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	return files, nil
}

// PathExists reports whether path exists, optionally requiring it to be a
// regular file or a directory. Probe failures count as absent.
func PathExists(path string, mustBeFile, mustBeDir bool) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if mustBeFile && !info.Mode().IsRegular() {
		return false
	}
	if mustBeDir && !info.IsDir() {
		return false
	}
	return true
}
