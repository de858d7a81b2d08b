package status

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sylvanite/backup-checker/internal/domain"
)

// Placeholders the aggregate report template must contain.
const (
	PlaceholderOutdatedUsers = "{outdated_users}"
	PlaceholderFutureUsers   = "{future_users}"
	PlaceholderOkUsers       = "{ok_users}"
)

// emptyGroupLine is rendered in place of an empty user group.
const emptyGroupLine = "[None]"

// Reporter partitions a fixed user set into the three status groups.
// Classification is frozen at construction against a single reference
// date; it never re-evaluates against a later "now".
type Reporter struct {
	classifier *Classifier
	outdated   []domain.User
	future     []domain.User
	ok         []domain.User
	userCount  int
}

func NewReporter(users []domain.User, referenceDate time.Time, toleranceOutdated, toleranceFuture time.Duration, excludeWeekends bool) *Reporter {
	r := &Reporter{
		classifier: NewClassifier(referenceDate, toleranceOutdated, toleranceFuture, excludeWeekends),
		userCount:  len(users),
	}
	for _, u := range users {
		switch r.classifier.Classify(u) {
		case domain.StatusFuture:
			r.future = append(r.future, u)
		case domain.StatusOutdated:
			r.outdated = append(r.outdated, u)
		default:
			r.ok = append(r.ok, u)
		}
	}
	sortByUsername(r.outdated)
	sortByUsername(r.future)
	sortByUsername(r.ok)
	return r
}

func (r *Reporter) Classifier() *Classifier {
	return r.classifier
}

func (r *Reporter) UserCount() int {
	return r.userCount
}

// OutdatedUsers returns the outdated group sorted ascending by
// username. The slice is a copy; callers may mutate it freely.
func (r *Reporter) OutdatedUsers() []domain.User {
	return copyUsers(r.outdated)
}

func (r *Reporter) FutureUsers() []domain.User {
	return copyUsers(r.future)
}

func (r *Reporter) OkUsers() []domain.User {
	return copyUsers(r.ok)
}

// Render fills the three group placeholders of the aggregate report
// template. Usernames are padded to the longest username across all
// groups so the date column lines up; an empty group renders as
// "[None]". A template missing any placeholder is a configuration
// error.
func (r *Reporter) Render(template string) (string, error) {
	for _, placeholder := range []string{PlaceholderOutdatedUsers, PlaceholderFutureUsers, PlaceholderOkUsers} {
		if !strings.Contains(template, placeholder) {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingPlaceholder, placeholder)
		}
	}

	width := 0
	for _, group := range [][]domain.User{r.outdated, r.future, r.ok} {
		for _, u := range group {
			if len(u.Username) > width {
				width = len(u.Username)
			}
		}
	}

	report := template
	report = strings.ReplaceAll(report, PlaceholderOutdatedUsers, formatGroup(r.outdated, width))
	report = strings.ReplaceAll(report, PlaceholderFutureUsers, formatGroup(r.future, width))
	report = strings.ReplaceAll(report, PlaceholderOkUsers, formatGroup(r.ok, width))
	return report, nil
}

func formatGroup(users []domain.User, width int) string {
	if len(users) == 0 {
		return emptyGroupLine
	}
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("- %-*s  (%s)", width, u.Username, u.NewestDate.Format("2006-01-02")))
	}
	return strings.Join(lines, "\n")
}

func sortByUsername(users []domain.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
}

func copyUsers(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)
	return out
}
