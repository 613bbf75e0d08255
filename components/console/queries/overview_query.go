package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	console "github.com/goliatone/go-marketplace-admin/components/console"
)

// OverviewInput selects the reporting window and locale for a snapshot.
type OverviewInput struct {
	Period console.Period
	Locale string
}

type snapshotService interface {
	Load(ctx context.Context, period console.Period, locale string) (console.Snapshot, error)
}

// OverviewQuery executes the read-only dashboard fan-out.
type OverviewQuery struct {
	service snapshotService
}

// NewOverviewQuery builds the query.
func NewOverviewQuery(service snapshotService) *OverviewQuery {
	return &OverviewQuery{service: service}
}

var _ gocommand.Querier[OverviewInput, console.Snapshot] = (*OverviewQuery)(nil)

// Query loads the snapshot for the requested period.
func (q *OverviewQuery) Query(ctx context.Context, input OverviewInput) (console.Snapshot, error) {
	return q.service.Load(ctx, input.Period, input.Locale)
}
