package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

// Every verdict counts as a validated board; invalid ones are
// counted as rejected on top of that.
func (a *AnalyticsManager) RecordVerdict(ctx context.Context, serverIpNet pqtype.Inet, valid bool) error {
	if err := a.queries.IncrementBoardsValidatedCount(ctx, serverIpNet); err != nil {
		return err
	}
	if valid {
		return nil
	}
	return a.queries.IncrementBoardsRejectedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetBoardsValidatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetBoardsValidatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetBoardsRejectedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetBoardsRejectedCount(ctx, serverIpNet)
}
