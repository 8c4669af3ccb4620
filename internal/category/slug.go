package category

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	slugDropped  = "*+~.()?'\"!:@"
	fallbackSlug = "category"
)

// letters NFD cannot decompose into a base letter plus marks
var slugFold = strings.NewReplacer(
	"ø", "o", "Ø", "o",
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
	"ß", "ss",
	"đ", "d", "Đ", "d",
	"ł", "l", "Ł", "l",
)

// Slugify lowercases name, strips diacritics and slugDropped, and joins the
// remaining words with single dashes.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, slugFold.Replace(name))
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case strings.ContainsRune(slugDropped, r):
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}

// SlugChecker reports whether a row other than excludeID holds slug.
type SlugChecker interface {
	SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error)
}

// UniqueSlug returns the slug of name, suffixed with -1, -2, ... until
// taken reports it free. An empty slug becomes fallback.
func UniqueSlug(ctx context.Context, taken SlugChecker, name, fallback string, excludeID uint64) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = fallback
	}
	candidate := base
	for i := 1; ; i++ {
		used, err := taken.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !used {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// uniqueSlug checks categories, trashed ones included.
func uniqueSlug(ctx context.Context, repo CategoryRepository, name string, excludeID uint64) (string, error) {
	return UniqueSlug(ctx, repo, name, fallbackSlug, excludeID)
}
