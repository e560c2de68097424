package slug

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Acme":                 "acme",
		"  Acme   Corp  ":      "acme-corp",
		"Crème Brûlée Ltd.":    "creme-brulee-ltd",
		"Zoë & Ångström":       "zoe-angstrom",
		"--Already--Kebab--":   "already-kebab",
		"R2-D2's Team":         "r2-d2-s-team",
		"日本":                   "",
		"":                     "",
		strings.Repeat("a", 60): strings.Repeat("a", MaxLength),
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), in)
	}
}

type memChecker map[string]bool

func (m memChecker) SlugExists(_ context.Context, s string) (bool, error) { return m[s], nil }

func TestAllocateSequential(t *testing.T) {
	t.Parallel()

	taken := memChecker{}
	a := &Allocator{Checker: taken}
	ctx := context.Background()

	first, err := a.Allocate(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "acme", first)
	taken[first] = true

	second, err := a.Allocate(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, "acme-1", second)
	taken[second] = true

	third, err := a.Allocate(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "acme-2", third)
}

func TestAllocateFallback(t *testing.T) {
	t.Parallel()

	a := &Allocator{Checker: memChecker{"team": true}}
	s, err := a.Allocate(context.Background(), "!!!")
	require.NoError(t, err)
	require.Equal(t, "team-1", s)
}

func TestAllocateRechecksEveryCandidate(t *testing.T) {
	t.Parallel()

	var seen []string
	a := &Allocator{Checker: CheckerFunc(func(_ context.Context, s string) (bool, error) {
		seen = append(seen, s)
		return len(seen) < 3, nil
	})}

	s, err := a.Allocate(context.Background(), "core")
	require.NoError(t, err)
	require.Equal(t, "core-2", s)
	require.Equal(t, []string{"core", "core-1", "core-2"}, seen)
}

func TestAllocatePropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	a := &Allocator{Checker: CheckerFunc(func(context.Context, string) (bool, error) {
		return false, boom
	})}

	_, err := a.Allocate(context.Background(), "core")
	require.ErrorIs(t, err, boom)
}
