// Package service implements team membership, ownership succession and
// invite redemption on top of store.Store. Every multi-step mutation runs in
// one store transaction; nothing is cached between calls.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/bartab-teams/internal/teams/domain"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/metrics"
	"github.com/aussiebroadwan/bartab-teams/internal/teams/store"
	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
)

// maxUniqueAttempts bounds regeneration after a slug or token unique
// violation at insert time.
const maxUniqueAttempts = 5

// deny logs and counts a business-rule refusal and returns it.
func deny(ctx context.Context, m *metrics.Metrics, err *domain.Error, msg string, attrs ...any) error {
	slogx.FromContext(ctx).Warn(msg, append(attrs, slog.String("kind", string(err.Kind)))...)
	m.Denied(string(err.Kind))
	return err
}

// orNotFound maps store.ErrNotFound to notFound and wraps anything else.
func orNotFound(err error, notFound *domain.Error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
