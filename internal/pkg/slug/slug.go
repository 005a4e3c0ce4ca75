// Package slug derives URL-safe identifiers from titles and resolves
// collisions with numeric suffixes.
package slug

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Slugify lowercases the title and collapses every run of non-alphanumeric
// characters into a single hyphen.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

// Generate returns a slug for title that is unique within table. An exact
// match of the base slug counts as suffix 0; the result appends the lowest
// unused positive suffix as "base-N". When no row matches the base prefix the
// bare base slug is returned.
func Generate(db *gorm.DB, table, title string) (string, error) {
	base := Slugify(title)

	var existing []string
	if err := db.Table(table).
		Where("slug LIKE ?", base+"%").
		Pluck("slug", &existing).Error; err != nil {
		return "", fmt.Errorf("slug lookup on %s: %w", table, err)
	}

	return next(base, existing), nil
}

func next(base string, existing []string) string {
	if len(existing) == 0 {
		return base
	}

	suffixed := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-(\d+)$`)
	used := map[int]bool{}
	for _, s := range existing {
		if s == base {
			used[0] = true
			continue
		}
		if m := suffixed.FindStringSubmatch(s); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				used[n] = true
			}
		}
	}

	count := 1
	for used[count] {
		count++
	}
	return fmt.Sprintf("%s-%d", base, count)
}
