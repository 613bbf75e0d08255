package console

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"
)

type stubRenderer struct {
	lastTemplate string
	lastPayload  map[string]any
	err          error
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.lastTemplate = name
	if payload, ok := data.(map[string]any); ok {
		r.lastPayload = payload
	}
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte("<html></html>"))
	}
	return "<html></html>", r.err
}

func TestControllerRenderDashboard(t *testing.T) {
	source := &fakeReportSource{overview: sampleOverview()}
	renderer := &stubRenderer{}
	controller := NewController(ControllerOptions{
		Aggregator: NewAggregator(source),
		Renderer:   renderer,
	})

	var buf bytes.Buffer
	err := controller.RenderDashboard(context.Background(), OperatorContext{OperatorID: "op-1"}, PeriodLastMonth, &buf)
	if err != nil {
		t.Fatalf("RenderDashboard returned error: %v", err)
	}
	if renderer.lastTemplate != "dashboard" {
		t.Fatalf("expected dashboard template, got %s", renderer.lastTemplate)
	}
	if buf.Len() == 0 {
		t.Fatal("expected rendered output")
	}
	if _, ok := renderer.lastPayload["Snapshot"]; !ok {
		t.Fatalf("expected snapshot in payload, got %v", renderer.lastPayload)
	}
	if _, ok := renderer.lastPayload["TrendChart"]; ok {
		t.Fatal("trend chart must be absent without a performance sub-report")
	}
}

func TestControllerRenderDashboardWithTrendChart(t *testing.T) {
	overview := sampleOverview()
	overview.Performance = &PerformanceReport{
		Trends: []TrendPoint{{Label: "W1", Bookings: 10, Completed: 8}},
	}
	renderer := &stubRenderer{}
	controller := NewController(ControllerOptions{
		Aggregator: NewAggregator(&fakeReportSource{overview: overview}),
		Renderer:   renderer,
	})

	var buf bytes.Buffer
	err := controller.RenderDashboard(context.Background(), OperatorContext{}, PeriodOneYear, &buf)
	if err != nil {
		t.Fatalf("RenderDashboard returned error: %v", err)
	}
	if _, ok := renderer.lastPayload["TrendChart"]; !ok {
		t.Fatal("expected trend chart with a performance sub-report")
	}
}

func TestControllerRejectsInvalidPeriod(t *testing.T) {
	controller := NewController(ControllerOptions{
		Aggregator: NewAggregator(&fakeReportSource{overview: sampleOverview()}),
		Renderer:   &stubRenderer{},
	})
	var buf bytes.Buffer
	if err := controller.RenderDashboard(context.Background(), OperatorContext{}, Period("2w"), &buf); err == nil {
		t.Fatal("expected invalid period to fail")
	}
}

func TestVendorDetailPayloadFormats(t *testing.T) {
	dir := newFakeVendorDirectory()
	dir.vendors["v1"] = Vendor{
		ID:   "v1",
		Name: "Ravi Kumar",
		ServicesOffered: []OfferedService{
			{ServiceID: "s1", SubcategoryID: "sub1", Price: 1500, DurationMinutes: 150},
		},
		Performance: PerformanceMetrics{Rating: 4.5},
		CreatedAt:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	svc := NewService(Options{Vendors: dir})
	controller := NewController(ControllerOptions{Service: svc, Renderer: &stubRenderer{}})

	detail, err := controller.VendorDetailPayload(context.Background(), "v1")
	if err != nil {
		t.Fatalf("VendorDetailPayload returned error: %v", err)
	}
	if detail.Initials != "RK" {
		t.Fatalf("expected initials RK, got %q", detail.Initials)
	}
	if detail.Rating != "★ 4.5" {
		t.Fatalf("unexpected rating %q", detail.Rating)
	}
	if len(detail.Services) != 1 || detail.Services[0].Price != "₹1,500" || detail.Services[0].Duration != "2h 30m" {
		t.Fatalf("unexpected service rows %#v", detail.Services)
	}
}

func TestOrderDetailPayloadFormats(t *testing.T) {
	desk := newFakeOrderDesk()
	desk.orders["o1"] = Order{
		ID:           "o1",
		CustomerName: "Asha",
		Price:        499,
		TotalPrice:   499,
		Status:       OrderPending,
		Slot: ScheduledSlot{
			Start: time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC),
		},
	}
	svc := NewService(Options{Orders: desk})
	controller := NewController(ControllerOptions{Service: svc, Renderer: &stubRenderer{}})

	detail, err := controller.OrderDetailPayload(context.Background(), "o1")
	if err != nil {
		t.Fatalf("OrderDetailPayload returned error: %v", err)
	}
	if detail.Vendor != "Unassigned" {
		t.Fatalf("unassigned order should read Unassigned, got %q", detail.Vendor)
	}
	if detail.Total != "₹499" {
		t.Fatalf("unexpected total %q", detail.Total)
	}
	if detail.Status != "Pending" {
		t.Fatalf("unexpected status %q", detail.Status)
	}
}
