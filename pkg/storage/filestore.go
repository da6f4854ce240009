// Package storage persists uploaded resume files on local disk and hands
// back the relative URL the static file server exposes them under.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type FileStore struct {
	root string // e.g. "uploads"
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Root returns the directory served statically under /uploads.
func (s *FileStore) Root() string {
	return s.root
}

// SaveResume copies the (possibly converted) temp file into permanent
// storage under a millisecond-timestamp prefix plus the sanitized original
// filename, and returns the relative reference URL.
func (s *FileStore) SaveResume(srcPath, originalName string) (string, error) {
	dir := filepath.Join(s.root, "resumes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create resume dir: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFilename(originalName))
	dst := filepath.Join(dir, name)

	if err := copyFile(srcPath, dst); err != nil {
		return "", fmt.Errorf("store resume: %w", err)
	}

	return "/uploads/resumes/" + name, nil
}

// SanitizeFilename replaces everything outside [a-zA-Z0-9._-] so the stored
// name is safe for the filesystem and for URLs.
func SanitizeFilename(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
