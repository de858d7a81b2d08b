package collector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sylvanite/backup-checker/internal/domain"
)

// Rule describes one way of discovering user homes: a glob over home
// directories plus the backup subdirectory inside each home. The
// username is the base name of the matched home directory.
type Rule struct {
	Name         string
	HomeDirsGlob string
	BackupSubdir string
}

// Collector discovers users on the file server and determines each
// user's most recently modified backup file. Users whose backup root is
// missing or empty are excluded and surfaced as warnings; they are not
// fatal to the run. Two homes resolving to the same username are.
type Collector struct {
	rules        []Rule
	excludeUsers map[string]struct{}

	// now is swappable so tests can pin the vanished-file fallback.
	now func() time.Time
}

func New(rules []Rule, excludeUsers []string) *Collector {
	excluded := make(map[string]struct{}, len(excludeUsers))
	for _, name := range excludeUsers {
		excluded[name] = struct{}{}
	}
	return &Collector{
		rules:        rules,
		excludeUsers: excluded,
		now:          time.Now,
	}
}

// Collect scans all detection rules and returns the discovered users
// sorted by username, together with per-user warnings.
func (c *Collector) Collect(ctx context.Context) ([]domain.User, []string, error) {
	seen := make(map[string]struct{})
	var users []domain.User
	var warnings []string

	for _, rule := range c.rules {
		homes, err := filepath.Glob(rule.HomeDirsGlob)
		if err != nil {
			return nil, nil, fmt.Errorf("bad home dirs glob %q: %w", rule.HomeDirsGlob, err)
		}

		for _, home := range homes {
			info, err := os.Stat(home)
			if err != nil || !info.IsDir() {
				continue
			}

			username := filepath.Base(filepath.Clean(home))
			if _, skip := c.excludeUsers[username]; skip {
				slog.DebugContext(ctx, "user excluded by configuration",
					slog.String("username", username),
				)
				continue
			}
			if _, dup := seen[username]; dup {
				return nil, nil, fmt.Errorf("%w: %q resolved by more than one home directory", domain.ErrDuplicateUsername, username)
			}
			seen[username] = struct{}{}

			backupDir := filepath.Join(home, rule.BackupSubdir)
			if info, err := os.Stat(backupDir); err != nil || !info.IsDir() {
				warnings = append(warnings, fmt.Sprintf("Backup dir not found (user '%s'): '%s'", username, backupDir))
				continue
			}

			newestPath, newestDate := c.newestFile(backupDir)
			if newestDate.IsZero() {
				warnings = append(warnings, fmt.Sprintf("Backup dir is empty (user '%s'): '%s'", username, backupDir))
				continue
			}

			users = append(users, domain.User{
				Username:   username,
				NewestPath: newestPath,
				NewestDate: newestDate,
			})
		}
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
	return users, warnings, nil
}

// newestFile walks the whole tree under root, hidden directories
// included, and returns the path and lstat mtime of the most recently
// modified entry. Symlinks count with their own timestamp and are not
// followed. A file that vanishes mid-walk was by definition just
// modified, so it wins with the current time.
func (c *Collector) newestFile(root string) (string, time.Time) {
	var newestPath string
	var newestDate time.Time

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				newestPath = path
				newestDate = c.now()
				return fs.SkipAll
			}
			return nil
		}
		if mtime := info.ModTime(); newestDate.IsZero() || mtime.After(newestDate) {
			newestPath = path
			newestDate = mtime
		}
		return nil
	})

	return newestPath, newestDate
}
