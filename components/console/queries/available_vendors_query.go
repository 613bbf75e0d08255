package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	console "github.com/goliatone/go-marketplace-admin/components/console"
)

// AvailableVendorsInput scopes the vendor picker for order assignment.
type AvailableVendorsInput struct {
	SubcategoryID string
	SlotID        string
}

type availabilityDesk interface {
	AvailableVendors(ctx context.Context, subcategoryID, slotID string) ([]console.Vendor, error)
}

// AvailableVendorsQuery lists vendors able to serve a booking's subcategory
// within its scheduled slot.
type AvailableVendorsQuery struct {
	desk availabilityDesk
}

// NewAvailableVendorsQuery builds the query.
func NewAvailableVendorsQuery(desk availabilityDesk) *AvailableVendorsQuery {
	return &AvailableVendorsQuery{desk: desk}
}

var _ gocommand.Querier[AvailableVendorsInput, []console.Vendor] = (*AvailableVendorsQuery)(nil)

// Query delegates to the order desk.
func (q *AvailableVendorsQuery) Query(ctx context.Context, input AvailableVendorsInput) ([]console.Vendor, error) {
	return q.desk.AvailableVendors(ctx, input.SubcategoryID, input.SlotID)
}
