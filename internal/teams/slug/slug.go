// Package slug turns team names into unique URL-safe identifiers.
package slug

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used when a name has no slug-able characters.
const Fallback = "team"

// MaxLength bounds the base part of a slug. Numeric suffixes may exceed it.
const MaxLength = 48

// Slugify folds diacritics, lowercases and kebab-cases s. The result may be
// empty.
func Slugify(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		s,
	)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}

	out := strings.TrimSuffix(b.String(), "-")
	if len(out) > MaxLength {
		out = strings.TrimSuffix(out[:MaxLength], "-")
	}
	return out
}

// Checker reports whether a slug is already taken.
type Checker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context, slug string) (bool, error)

func (f CheckerFunc) SlugExists(ctx context.Context, slug string) (bool, error) {
	return f(ctx, slug)
}

// Allocator hands out slugs that were unused at the time of the check.
// Callers still have to handle a unique violation on insert.
type Allocator struct {
	Checker Checker
}

// Allocate tries base, then base-1, base-2, ... and returns the first
// candidate the checker reports free. Every candidate is re-checked.
func (a *Allocator) Allocate(ctx context.Context, base string) (string, error) {
	base = Slugify(base)
	if base == "" {
		base = Fallback
	}

	candidate := base
	for n := 1; ; n++ {
		taken, err := a.Checker.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
}
