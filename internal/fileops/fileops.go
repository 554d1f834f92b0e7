// Package fileops provides safe file move, copy and backup primitives.
//
// Every operation is non-destructive by default: an existing destination is
// never replaced unless overwrite is requested, and a move with overwrite
// preserves the previous destination under a ".backup" name. OS failures are
// logged and reported as a boolean, they never propagate or panic.
package fileops

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Mover performs safe file operations.
type Mover struct {
	log *slog.Logger
}

// New creates a Mover logging through log.
func New(log *slog.Logger) *Mover {
	return &Mover{log: log}
}

// SafeMove moves src to dst. Returns false when src is missing, when dst
// exists and overwrite is unset, or when the underlying rename fails.
// With overwrite set, an existing dst is first renamed to dst+".backup".
// With createDirs set, the destination directory is created as needed.
func (m *Mover) SafeMove(src, dst string, overwrite, createDirs bool) bool {
	if _, err := os.Stat(src); err != nil {
		m.log.Warn("move: source missing", "src", src)
		return false
	}

	if _, err := os.Stat(dst); err == nil {
		if !overwrite {
			m.log.Warn("move: destination exists", "dst", dst)
			return false
		}
		backup := dst + ".backup"
		_ = os.Remove(backup)
		if err := os.Rename(dst, backup); err != nil {
			m.log.Error("move: backup of destination failed", "dst", dst, "error", err)
			return false
		}
	}

	if createDirs {
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			m.log.Error("move: create directory failed", "dir", filepath.Dir(dst), "error", err)
			return false
		}
	}

	if err := os.Rename(src, dst); err != nil {
		// Rename fails across filesystems, fall back to copy+remove.
		if err := CopyFile(src, dst); err != nil {
			m.log.Error("move failed", "src", src, "dst", dst, "error", err)
			return false
		}
		if err := os.Remove(src); err != nil {
			m.log.Error("move: remove source failed", "src", src, "error", err)
			return false
		}
	}

	m.log.Info("moved", "src", src, "dst", dst)
	return true
}

// SafeCopy copies src to dst. Same contract as SafeMove, except an existing
// dst is replaced in place when overwrite is set.
func (m *Mover) SafeCopy(src, dst string, overwrite, createDirs bool) bool {
	if _, err := os.Stat(src); err != nil {
		m.log.Warn("copy: source missing", "src", src)
		return false
	}

	if _, err := os.Stat(dst); err == nil && !overwrite {
		m.log.Warn("copy: destination exists", "dst", dst)
		return false
	}

	if createDirs {
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			m.log.Error("copy: create directory failed", "dir", filepath.Dir(dst), "error", err)
			return false
		}
	}

	if err := CopyFile(src, dst); err != nil {
		m.log.Error("copy failed", "src", src, "dst", dst, "error", err)
		return false
	}

	m.log.Info("copied", "src", src, "dst", dst)
	return true
}

// CreateBackup copies path into backupDir (the file's own directory when
// empty) under a ".backup" name. Existing backups are kept: the new one gets
// a ".backup.1", ".backup.2", ... suffix. Returns the backup path and whether
// it succeeded.
func (m *Mover) CreateBackup(path, backupDir string) (string, bool) {
	if _, err := os.Stat(path); err != nil {
		m.log.Warn("backup: source missing", "path", path)
		return "", false
	}

	if backupDir == "" {
		backupDir = filepath.Dir(path)
	} else if err := os.MkdirAll(backupDir, 0o755); err != nil {
		m.log.Error("backup: create directory failed", "dir", backupDir, "error", err)
		return "", false
	}

	base := filepath.Join(backupDir, filepath.Base(path)+".backup")
	backup := base
	for n := 1; ; n++ {
		if _, err := os.Stat(backup); err != nil {
			break
		}
		backup = fmt.Sprintf("%s.%d", base, n)
	}

	if err := CopyFile(path, backup); err != nil {
		m.log.Error("backup failed", "path", path, "error", err)
		return "", false
	}

	m.log.Info("backup created", "path", path, "backup", backup)
	return backup, true
}

// CopyFile copies src to dst, syncing the result. A partial destination is
// removed on failure.
func CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("copy content: %w", err)
	}
	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}
