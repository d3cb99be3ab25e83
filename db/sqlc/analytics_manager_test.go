package sqlc

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerInet() pqtype.Inet {
	return pqtype.Inet{
		IPNet: net.IPNet{IP: net.ParseIP("10.0.0.7").To4(), Mask: net.CIDRMask(32, 32)},
		Valid: true,
	}
}

func newTestDbManager(t *testing.T) (DbManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDbManager(New(db)), mock
}

func TestRecordVerdict(t *testing.T) {
	tests := []struct {
		name          string
		valid         bool
		expectReject  bool
		validatedErr  error
		expectedError bool
	}{
		{name: "valid board", valid: true},
		{name: "invalid board", valid: false, expectReject: true},
		{name: "db failure", valid: false, validatedErr: errors.New("connection refused"), expectedError: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dm, mock := newTestDbManager(t)
			inet := testServerInet()

			validated := mock.ExpectExec(regexp.QuoteMeta(incrementBoardsValidatedCount)).WithArgs(inet)
			if test.validatedErr != nil {
				validated.WillReturnError(test.validatedErr)
			} else {
				validated.WillReturnResult(sqlmock.NewResult(0, 1))
			}
			if test.expectReject {
				mock.ExpectExec(regexp.QuoteMeta(incrementBoardsRejectedCount)).
					WithArgs(inet).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()

			err := dm.Analytics.RecordVerdict(ctx, inet, test.valid)
			if test.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetCounts(t *testing.T) {
	dm, mock := newTestDbManager(t)
	inet := testServerInet()

	mock.ExpectQuery(`SELECT boards_validated FROM validation_analytics WHERE server_ip = \$1`).
		WithArgs(inet).
		WillReturnRows(sqlmock.NewRows([]string{"boards_validated"}).AddRow(7))
	mock.ExpectQuery(`SELECT boards_rejected FROM validation_analytics WHERE server_ip = \$1`).
		WithArgs(inet).
		WillReturnRows(sqlmock.NewRows([]string{"boards_rejected"}).AddRow(3))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	validated, err := dm.Analytics.GetBoardsValidatedCount(ctx, inet)
	require.NoError(t, err)
	assert.Equal(t, int64(7), validated)

	rejected, err := dm.Analytics.GetBoardsRejectedCount(ctx, inet)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rejected)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoopQuerier(t *testing.T) {
	am := NewAnalyticsManager(NoopQuerier{})
	ctx := context.Background()

	require.NoError(t, am.RecordVerdict(ctx, testServerInet(), false))
	count, err := am.GetBoardsRejectedCount(ctx, testServerInet())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDbManagerWithoutQuerier(t *testing.T) {
	dm := NewDbManager(nil)
	ctx := context.Background()

	require.NoError(t, dm.Analytics.RecordVerdict(ctx, testServerInet(), true))
	count, err := dm.Analytics.GetBoardsValidatedCount(ctx, testServerInet())
	require.NoError(t, err)
	assert.Zero(t, count)
}
