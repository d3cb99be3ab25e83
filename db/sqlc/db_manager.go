package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

// DbManager groups the managers built on one Querier. A nil Querier
// runs them against NoopQuerier so the server works without a database.
type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	if queries == nil {
		queries = NoopQuerier{}
	}

	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}
