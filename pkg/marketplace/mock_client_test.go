package marketplace

import (
	"context"
	"testing"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

func TestMockCustomerDefaultsOnCreate(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()

	created, err := mock.CreateCustomer(ctx, console.CustomerInput{Name: "Asha", Mobile: "9876543210"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	page, err := mock.ListCustomers(ctx, console.ListQuery{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(page.Records) != 1 || page.Records[0].ID != created.ID {
		t.Fatalf("expected the created row, got %#v", page.Records)
	}
	row := page.Records[0]
	if got := console.Initials(row.Name); got != "AS" {
		t.Fatalf("expected initials badge AS, got %q", got)
	}
	if !row.Active {
		t.Fatalf("expected new customers to default to active")
	}
	if got := console.FormatINR(row.WalletBalance); got != "₹0" {
		t.Fatalf("expected empty wallet, got %q", got)
	}
}

func TestMockAssignOrderDenormalizesVendor(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()

	vendor, err := mock.CreateVendor(ctx, console.VendorInput{
		Name:            "Ravi Kumar",
		ServicesOffered: []console.OfferedService{{SubcategoryID: "sc1", Price: 499}},
	})
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	order := mock.AddOrder(console.Order{
		CustomerName:  "Asha",
		SubcategoryID: "sc1",
		Status:        console.OrderPending,
	})

	available, err := mock.AvailableVendors(ctx, "sc1", "slot1")
	if err != nil || len(available) != 1 || available[0].ID != vendor.ID {
		t.Fatalf("expected the vendor to be available, got %#v, %v", available, err)
	}

	if err := mock.AssignOrder(ctx, order.ID, vendor.ID); err != nil {
		t.Fatalf("assign order: %v", err)
	}
	page, err := mock.ListOrders(ctx, console.ListQuery{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	got := page.Records[0]
	if got.Status != console.OrderAssigned {
		t.Fatalf("expected assigned status, got %s", got.Status)
	}
	if got.VendorName != "Ravi Kumar" {
		t.Fatalf("expected denormalized vendor name, got %q", got.VendorName)
	}

	// Re-assigning a non-pending order fails.
	if err := mock.AssignOrder(ctx, order.ID, vendor.ID); err == nil {
		t.Fatalf("expected error assigning a non-pending order")
	}
}

func TestMockPagination(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		if _, err := mock.CreateAdmin(ctx, console.AdminInput{Name: "Admin", Active: true}); err != nil {
			t.Fatalf("seed admin: %v", err)
		}
	}

	page, err := mock.ListAdmins(ctx, console.ListQuery{Page: 3, PerPage: 10})
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if page.CurrentPage != 3 || page.TotalPages != 3 || page.TotalRecords != 25 {
		t.Fatalf("unexpected pagination %#v", page)
	}
	if len(page.Records) != 5 {
		t.Fatalf("expected a short last page, got %d", len(page.Records))
	}

	// Requests past the end clamp to the last page.
	page, err = mock.ListAdmins(ctx, console.ListQuery{Page: 9, PerPage: 10})
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if page.CurrentPage != 3 {
		t.Fatalf("expected clamped page, got %d", page.CurrentPage)
	}
}

func TestMockDisputeStats(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()
	customer, _ := mock.CreateCustomer(ctx, console.CustomerInput{Name: "Asha", Mobile: "9876543210"})
	vendor, _ := mock.CreateVendor(ctx, console.VendorInput{Name: "Ravi Kumar"})

	dispute, err := mock.CreateDispute(ctx, console.DisputeInput{
		CustomerID:  customer.ID,
		VendorID:    vendor.ID,
		Description: "work incomplete",
	})
	if err != nil {
		t.Fatalf("create dispute: %v", err)
	}
	if dispute.CustomerName != "Asha" || dispute.VendorName != "Ravi Kumar" {
		t.Fatalf("expected denormalized names, got %#v", dispute)
	}
	if dispute.Status != console.DisputeOpen {
		t.Fatalf("expected open status, got %s", dispute.Status)
	}

	refund := 250.0
	if err := mock.UpdateDisputeStatus(ctx, dispute.ID, console.DisputeClosed, "refund issued", &refund); err != nil {
		t.Fatalf("update status: %v", err)
	}
	stats, err := mock.DisputeStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 1 || stats.Closed != 1 || stats.Open != 0 {
		t.Fatalf("unexpected stats %#v", stats)
	}
}

func TestMockBroadcastValidation(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()

	if err := mock.SendBroadcast(ctx, console.Broadcast{Title: "Hello"}); err == nil {
		t.Fatalf("expected error without recipients or audience")
	}
	if err := mock.SendBroadcast(ctx, console.Broadcast{Title: "Hello", Audience: console.AudienceAllCustomers}); err != nil {
		t.Fatalf("send broadcast: %v", err)
	}
	if got := mock.Broadcasts(); len(got) != 1 || got[0].Title != "Hello" {
		t.Fatalf("unexpected broadcasts %#v", got)
	}
}

func TestMockSlots(t *testing.T) {
	mock := NewMock()
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	slot := mock.AddSlot(console.Slot{
		Start:     day.Add(10 * time.Hour),
		End:       day.Add(12 * time.Hour),
		Available: true,
	})
	mock.AddSlot(console.Slot{Start: day.AddDate(0, 0, 1), Available: true})

	slots, err := mock.ListSlots(ctx, day)
	if err != nil {
		t.Fatalf("list slots: %v", err)
	}
	if len(slots) != 1 || slots[0].ID != slot.ID {
		t.Fatalf("expected the same-day slot only, got %#v", slots)
	}

	if err := mock.SetSlotAvailability(ctx, slot.ID, false); err != nil {
		t.Fatalf("set availability: %v", err)
	}
	slots, _ = mock.ListSlots(ctx, day)
	if slots[0].Available {
		t.Fatalf("expected slot closed")
	}
}
