package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// NoopQuerier is used when the server runs without a database.
// Increments are dropped and counts are always zero.
type NoopQuerier struct{}

var _ Querier = NoopQuerier{}

func (NoopQuerier) GetBoardsRejectedCount(context.Context, pqtype.Inet) (int64, error) {
	return 0, nil
}

func (NoopQuerier) GetBoardsValidatedCount(context.Context, pqtype.Inet) (int64, error) {
	return 0, nil
}

func (NoopQuerier) IncrementBoardsRejectedCount(context.Context, pqtype.Inet) error {
	return nil
}

func (NoopQuerier) IncrementBoardsValidatedCount(context.Context, pqtype.Inet) error {
	return nil
}
