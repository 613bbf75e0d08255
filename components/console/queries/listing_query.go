package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	console "github.com/goliatone/go-marketplace-admin/components/console"
)

// CustomerPageQuery fetches one page of customers.
type CustomerPageQuery struct {
	dir console.CustomerDirectory
}

// NewCustomerPageQuery builds the query.
func NewCustomerPageQuery(dir console.CustomerDirectory) *CustomerPageQuery {
	return &CustomerPageQuery{dir: dir}
}

var _ gocommand.Querier[console.ListQuery, console.Page[console.Customer]] = (*CustomerPageQuery)(nil)

// Query delegates to the customer directory.
func (q *CustomerPageQuery) Query(ctx context.Context, input console.ListQuery) (console.Page[console.Customer], error) {
	return q.dir.ListCustomers(ctx, input)
}

// VendorPageQuery fetches one page of vendors.
type VendorPageQuery struct {
	dir console.VendorDirectory
}

// NewVendorPageQuery builds the query.
func NewVendorPageQuery(dir console.VendorDirectory) *VendorPageQuery {
	return &VendorPageQuery{dir: dir}
}

var _ gocommand.Querier[console.ListQuery, console.Page[console.Vendor]] = (*VendorPageQuery)(nil)

// Query delegates to the vendor directory.
func (q *VendorPageQuery) Query(ctx context.Context, input console.ListQuery) (console.Page[console.Vendor], error) {
	return q.dir.ListVendors(ctx, input)
}

// OrderPageQuery fetches one page of bookings.
type OrderPageQuery struct {
	desk console.OrderDesk
}

// NewOrderPageQuery builds the query.
func NewOrderPageQuery(desk console.OrderDesk) *OrderPageQuery {
	return &OrderPageQuery{desk: desk}
}

var _ gocommand.Querier[console.ListQuery, console.Page[console.Order]] = (*OrderPageQuery)(nil)

// Query delegates to the order desk.
func (q *OrderPageQuery) Query(ctx context.Context, input console.ListQuery) (console.Page[console.Order], error) {
	return q.desk.ListOrders(ctx, input)
}
