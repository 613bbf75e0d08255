package console

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingHook struct {
	events []EntityEvent
}

func (h *recordingHook) EntityChanged(_ context.Context, event EntityEvent) error {
	h.events = append(h.events, event)
	return nil
}

type fakeOrderDesk struct {
	orders   map[string]Order
	assigned map[string]string
	slots    map[string]bool
}

func newFakeOrderDesk() *fakeOrderDesk {
	return &fakeOrderDesk{
		orders:   map[string]Order{},
		assigned: map[string]string{},
		slots:    map[string]bool{},
	}
}

func (d *fakeOrderDesk) ListOrders(_ context.Context, _ ListQuery) (Page[Order], error) {
	return Page[Order]{}, nil
}

func (d *fakeOrderDesk) GetOrder(_ context.Context, id string) (Order, error) {
	order, ok := d.orders[id]
	if !ok {
		return Order{}, errors.New("order not found")
	}
	return order, nil
}

func (d *fakeOrderDesk) AvailableVendors(context.Context, string, string) ([]Vendor, error) {
	return nil, nil
}

func (d *fakeOrderDesk) AssignOrder(_ context.Context, orderID, vendorID string) error {
	d.assigned[orderID] = vendorID
	return nil
}

func (d *fakeOrderDesk) ListSlots(context.Context, time.Time) ([]Slot, error) { return nil, nil }

func (d *fakeOrderDesk) SetSlotAvailability(_ context.Context, slotID string, available bool) error {
	d.slots[slotID] = available
	return nil
}

type fakeNotificationGateway struct {
	sent []Broadcast
}

func (g *fakeNotificationGateway) ListRecipients(_ context.Context, _ ListQuery) (Page[Recipient], error) {
	return Page[Recipient]{}, nil
}

func (g *fakeNotificationGateway) SendBroadcast(_ context.Context, b Broadcast) error {
	g.sent = append(g.sent, b)
	return nil
}

func TestAssignOrderRequiresPendingUnassigned(t *testing.T) {
	desk := newFakeOrderDesk()
	desk.orders["o1"] = Order{ID: "o1", Status: OrderPending}
	desk.orders["o2"] = Order{ID: "o2", Status: OrderCompleted}
	desk.orders["o3"] = Order{ID: "o3", Status: OrderPending, VendorID: "v9"}
	hook := &recordingHook{}
	svc := NewService(Options{Orders: desk, RefreshHook: hook})

	if err := svc.AssignOrder(context.Background(), "o1", "v1"); err != nil {
		t.Fatalf("assignable order rejected: %v", err)
	}
	if desk.assigned["o1"] != "v1" {
		t.Fatalf("expected assignment recorded, got %v", desk.assigned)
	}

	if err := svc.AssignOrder(context.Background(), "o2", "v1"); err == nil {
		t.Fatal("completed order must not be assignable")
	}
	if err := svc.AssignOrder(context.Background(), "o3", "v1"); err == nil {
		t.Fatal("already-assigned order must not be assignable")
	}
	if len(desk.assigned) != 1 {
		t.Fatalf("rejected orders must never reach the desk: %v", desk.assigned)
	}

	if len(hook.events) != 1 || hook.events[0].Reason != "assign" || hook.events[0].Entity != "order" {
		t.Fatalf("expected one assign event, got %#v", hook.events)
	}
}

func TestSendBroadcastTargeting(t *testing.T) {
	gateway := &fakeNotificationGateway{}
	svc := NewService(Options{Notifications: gateway})
	ctx := context.Background()

	if err := svc.SendBroadcast(ctx, Broadcast{Title: "Sale", Recipients: []string{"c1"}}); err != nil {
		t.Fatalf("recipient broadcast rejected: %v", err)
	}
	if err := svc.SendBroadcast(ctx, Broadcast{Title: "Sale", Audience: AudienceAllCustomers}); err != nil {
		t.Fatalf("audience broadcast rejected: %v", err)
	}

	if err := svc.SendBroadcast(ctx, Broadcast{Title: "Sale"}); err == nil {
		t.Fatal("broadcast without a target must fail")
	}
	if err := svc.SendBroadcast(ctx, Broadcast{Title: "Sale", Recipients: []string{"c1"}, Audience: AudienceAllVendors}); err == nil {
		t.Fatal("broadcast with both targeting modes must fail")
	}
	if err := svc.SendBroadcast(ctx, Broadcast{Audience: AudienceAllVendors}); err == nil {
		t.Fatal("broadcast without a title must fail")
	}
	if len(gateway.sent) != 2 {
		t.Fatalf("expected exactly the valid sends, got %d", len(gateway.sent))
	}
}

func TestServiceEmitsEntityEvents(t *testing.T) {
	hook := &recordingHook{}
	dir := newFakeVendorDirectory()
	dir.vendors["v1"] = Vendor{ID: "v1", Name: "Ravi Kumar"}
	svc := NewService(Options{Vendors: dir, RefreshHook: hook})
	ctx := context.Background()

	if err := svc.ToggleVendor(ctx, "v1", false); err != nil {
		t.Fatalf("ToggleVendor returned error: %v", err)
	}
	if err := svc.ApproveVendor(ctx, "v1", true); err != nil {
		t.Fatalf("ApproveVendor returned error: %v", err)
	}
	if err := svc.DeleteVendor(ctx, "v1"); err != nil {
		t.Fatalf("DeleteVendor returned error: %v", err)
	}

	if len(hook.events) != 3 {
		t.Fatalf("expected 3 events, got %#v", hook.events)
	}
	if hook.events[0].Reason != "toggle" || hook.events[1].Reason != "approve" || hook.events[2].Reason != "delete" {
		t.Fatalf("unexpected reasons: %#v", hook.events)
	}
}

func TestServiceRejectsEmptyIDs(t *testing.T) {
	svc := NewService(Options{
		Vendors: newFakeVendorDirectory(),
		Orders:  newFakeOrderDesk(),
	})
	ctx := context.Background()

	if err := svc.DeleteVendor(ctx, ""); !errors.Is(err, errMissingID) {
		t.Fatalf("expected missing id error, got %v", err)
	}
	if err := svc.AssignOrder(ctx, "o1", ""); !errors.Is(err, errMissingID) {
		t.Fatalf("expected missing id error, got %v", err)
	}
}

func TestServiceRejectsUnconfiguredDirectory(t *testing.T) {
	svc := NewService(Options{})
	if _, err := svc.CreateAdmin(context.Background(), AdminInput{Name: "Priya"}); !errors.Is(err, errMissingDirectory) {
		t.Fatalf("expected missing directory error, got %v", err)
	}
}

func TestVendorEditFormLoadsVendor(t *testing.T) {
	dir := newFakeVendorDirectory()
	dir.vendors["v1"] = Vendor{ID: "v1", Name: "Ravi Kumar", Phone: "9876543210"}
	svc := NewService(Options{Vendors: dir})

	form, err := svc.VendorEditForm(context.Background(), "v1")
	if err != nil {
		t.Fatalf("VendorEditForm returned error: %v", err)
	}
	if form.Draft.Name != "Ravi Kumar" {
		t.Fatalf("expected prefilled wizard, got %#v", form.Draft)
	}
}

func TestSubcategoryRequiresParentService(t *testing.T) {
	svc := NewService(Options{Catalog: &fakeCatalog{}})
	_, err := svc.CreateSubcategory(context.Background(), SubcategoryInput{Name: "Deep Cleaning"})
	if err == nil {
		t.Fatal("subcategory without a parent service must fail")
	}
}

type fakeCatalog struct{}

func (fakeCatalog) ListServices(context.Context, ListQuery) (Page[ServiceCategory], error) {
	return Page[ServiceCategory]{}, nil
}
func (fakeCatalog) GetService(context.Context, string) (ServiceCategory, error) {
	return ServiceCategory{}, nil
}
func (fakeCatalog) CreateService(context.Context, ServiceInput) (ServiceCategory, error) {
	return ServiceCategory{ID: "s1"}, nil
}
func (fakeCatalog) UpdateService(context.Context, string, ServiceInput) (ServiceCategory, error) {
	return ServiceCategory{}, nil
}
func (fakeCatalog) DeleteService(context.Context, string) error          { return nil }
func (fakeCatalog) SetServiceStatus(context.Context, string, bool) error { return nil }
func (fakeCatalog) CreateSubcategory(context.Context, SubcategoryInput) (Subcategory, error) {
	return Subcategory{ID: "sub1"}, nil
}
func (fakeCatalog) UpdateSubcategory(context.Context, string, SubcategoryInput) (Subcategory, error) {
	return Subcategory{}, nil
}
func (fakeCatalog) DeleteSubcategory(context.Context, string) error          { return nil }
func (fakeCatalog) SetSubcategoryStatus(context.Context, string, bool) error { return nil }
