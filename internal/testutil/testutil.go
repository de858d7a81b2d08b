package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFileWithMtime creates a file (and its parent directories) with
// the given content and modification time.
func WriteFileWithMtime(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

// MakeBackupTree fills root with a small folder tree whose newest file
// is Documents/newest_file.txt at 2020-01-15.
func MakeBackupTree(t *testing.T, root string) (newestPath string, newestDate time.Time) {
	t.Helper()

	newestDate = time.Date(2020, time.January, 15, 0, 0, 0, 0, time.Local)
	newestPath = filepath.Join(root, "Documents", "newest_file.txt")

	WriteFileWithMtime(t, filepath.Join(root, "Documents", "old_file_1.txt"), "f1",
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.Local))
	WriteFileWithMtime(t, filepath.Join(root, "Desktop", "old_file_2.txt"), "f2",
		time.Date(2020, time.January, 8, 0, 0, 0, 0, time.Local))
	WriteFileWithMtime(t, newestPath, "f3", newestDate)

	return newestPath, newestDate
}

// MakeHiddenBackupTree fills root with a tree whose newest file sits
// inside a hidden directory, at 2023-01-03.
func MakeHiddenBackupTree(t *testing.T, root string) (newestPath string, newestDate time.Time) {
	t.Helper()

	newestDate = time.Date(2023, time.January, 3, 0, 0, 0, 0, time.Local)
	newestPath = filepath.Join(root, ".hidden", "newest_file.txt")

	WriteFileWithMtime(t, filepath.Join(root, "Downloads", "old_file_1.txt"), "f1",
		time.Date(2020, time.August, 1, 0, 0, 0, 0, time.Local))
	WriteFileWithMtime(t, filepath.Join(root, ".hidden", "test", "old_file_2.txt"), "f2",
		time.Date(2020, time.January, 15, 0, 0, 0, 0, time.Local))
	WriteFileWithMtime(t, newestPath, "f3", newestDate)

	return newestPath, newestDate
}

// MakeLocalUserHome creates homes/<name>/<subdir> and returns the
// backup directory path.
func MakeLocalUserHome(t *testing.T, homesDir, name, subdir string) string {
	t.Helper()

	backupDir := filepath.Join(homesDir, name, subdir)
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", backupDir, err)
	}
	return backupDir
}
