// Package dupes finds duplicate files by content hash, size or name.
package dupes

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mediasort/internal/scan"
)

// Strategy selects how two files are considered duplicates.
type Strategy string

const (
	// ByHash groups files with identical content (md5).
	ByHash Strategy = "hash"
	// BySize groups files with identical byte size.
	BySize Strategy = "size"
	// ByName groups files with identical base name, case-insensitive.
	ByName Strategy = "name"
)

const hashChunkSize = 32 * 1024

// Find scans dir for duplicate files among those matching extensions and
// returns groups of two or more paths keyed by the grouping value. Files
// that cannot be read are logged and skipped.
func Find(dir string, extensions []string, recursive bool, strategy Strategy, log *slog.Logger) (map[string][]string, error) {
	files, err := scan.FilesByExtension(dir, extensions, recursive, log)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	groups := make(map[string][]string)
	for _, path := range files {
		key, err := groupKey(path, strategy)
		if err != nil {
			log.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		groups[key] = append(groups[key], path)
	}

	for key, paths := range groups {
		if len(paths) < 2 {
			delete(groups, key)
		}
	}
	return groups, nil
}

func groupKey(path string, strategy Strategy) (string, error) {
	switch strategy {
	case BySize:
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(info.Size(), 10), nil
	case ByName:
		return strings.ToLower(filepath.Base(path)), nil
	default:
		return hashFile(path)
	}
}

// hashFile returns the md5 of the file's content, read in fixed-size chunks.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	buf := make([]byte, hashChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
