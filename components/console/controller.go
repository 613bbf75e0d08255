package console

import (
	"context"
	"fmt"
	htmltemplate "html/template"
	"io"
)

// OperatorContext identifies the signed-in operator for rendering and
// preference lookups.
type OperatorContext struct {
	OperatorID string
	Roles      []string
	Locale     string
}

// ControllerOptions wires the collaborators the HTML controller needs.
type ControllerOptions struct {
	Service    *Service
	Aggregator *Aggregator
	Renderer   Renderer
	Screens    *ScreenRegistry
	Charts     *ChartRenderer
}

// Controller renders the admin screens server-side. JSON payloads for the
// same data go through SnapshotPayload so SPA-style frontends can reuse it.
type Controller struct {
	service    *Service
	aggregator *Aggregator
	renderer   Renderer
	screens    *ScreenRegistry
	charts     *ChartRenderer
}

// NewController builds a controller with safe defaults.
func NewController(opts ControllerOptions) *Controller {
	c := &Controller{
		service:    opts.Service,
		aggregator: opts.Aggregator,
		renderer:   opts.Renderer,
		screens:    opts.Screens,
		charts:     opts.Charts,
	}
	if c.aggregator == nil && c.service != nil {
		c.aggregator = c.service.Aggregator()
	}
	if c.screens == nil {
		c.screens = NewScreenRegistry()
	}
	if c.charts == nil {
		c.charts = NewChartRenderer()
	}
	return c
}

// Screens exposes the navigation registry.
func (c *Controller) Screens() *ScreenRegistry { return c.screens }

// SnapshotPayload loads the dashboard snapshot for JSON consumers.
func (c *Controller) SnapshotPayload(ctx context.Context, op OperatorContext, period Period) (Snapshot, error) {
	if c.aggregator == nil {
		return Snapshot{}, fmt.Errorf("console: controller has no aggregator")
	}
	return c.aggregator.Load(ctx, period, op.Locale)
}

// RenderDashboard writes the dashboard page for the operator and period.
// Charts render only when their sub-report arrived in the payload.
func (c *Controller) RenderDashboard(ctx context.Context, op OperatorContext, period Period, out io.Writer) error {
	if c.renderer == nil {
		return fmt.Errorf("console: controller has no renderer")
	}
	snap, err := c.SnapshotPayload(ctx, op, period)
	if err != nil {
		return err
	}

	data := map[string]any{
		"Operator": op,
		"Period":   period,
		"Periods":  Periods(),
		"Screens":  c.screens.Screens(),
		"Snapshot": snap,
	}
	if perf := snap.Overview.Performance; perf != nil && len(perf.Trends) > 0 {
		html, err := c.charts.PerformanceTrend(period, *perf)
		if err != nil {
			return fmt.Errorf("console: render trend chart: %w", err)
		}
		data["TrendChart"] = htmltemplate.HTML(html)
	}
	if len(snap.Overview.TopServices) > 0 {
		html, err := c.charts.TopServicesChart(period, snap.Overview.TopServices)
		if err != nil {
			return fmt.Errorf("console: render services chart: %w", err)
		}
		data["ServicesChart"] = htmltemplate.HTML(html)
	}

	_, err = c.renderer.Render("dashboard", data, out)
	return err
}

// VendorDetail is the formatted vendor profile view model.
type VendorDetail struct {
	Vendor   Vendor
	Initials string
	Rating   string
	Revenue  string
	Joined   string
	Services []VendorServiceRow
}

// VendorServiceRow is one offered service with display-ready pricing.
type VendorServiceRow struct {
	ServiceID     string
	SubcategoryID string
	Price         string
	Duration      string
}

// RenderVendorDetail writes the vendor profile page.
func (c *Controller) RenderVendorDetail(ctx context.Context, id string, out io.Writer) error {
	detail, err := c.VendorDetailPayload(ctx, id)
	if err != nil {
		return err
	}
	if c.renderer == nil {
		return fmt.Errorf("console: controller has no renderer")
	}
	_, err = c.renderer.Render("vendor_detail", detail, out)
	return err
}

// VendorDetailPayload fetches and formats one vendor profile.
func (c *Controller) VendorDetailPayload(ctx context.Context, id string) (VendorDetail, error) {
	if c.service == nil || c.service.opts.Vendors == nil {
		return VendorDetail{}, errMissingDirectory
	}
	vendor, err := c.service.opts.Vendors.GetVendor(ctx, id)
	if err != nil {
		return VendorDetail{}, fmt.Errorf("console: load vendor %s: %w", id, err)
	}
	detail := VendorDetail{
		Vendor:   vendor,
		Initials: Initials(vendor.Name),
		Rating:   FormatRating(vendor.Performance.Rating),
		Joined:   FormatDate(vendor.CreatedAt),
	}
	for _, offered := range vendor.ServicesOffered {
		detail.Services = append(detail.Services, VendorServiceRow{
			ServiceID:     offered.ServiceID,
			SubcategoryID: offered.SubcategoryID,
			Price:         FormatINR(offered.Price),
			Duration:      FormatDuration(offered.DurationMinutes),
		})
	}
	return detail, nil
}

// OrderDetail is the formatted booking view model.
type OrderDetail struct {
	Order    Order
	Customer string
	Vendor   string
	Price    string
	Total    string
	Slot     string
	Status   string
	Placed   string
}

// RenderOrderDetail writes the booking detail page.
func (c *Controller) RenderOrderDetail(ctx context.Context, id string, out io.Writer) error {
	detail, err := c.OrderDetailPayload(ctx, id)
	if err != nil {
		return err
	}
	if c.renderer == nil {
		return fmt.Errorf("console: controller has no renderer")
	}
	_, err = c.renderer.Render("order_detail", detail, out)
	return err
}

// OrderDetailPayload fetches and formats one booking.
func (c *Controller) OrderDetailPayload(ctx context.Context, id string) (OrderDetail, error) {
	if c.service == nil || c.service.opts.Orders == nil {
		return OrderDetail{}, errMissingDirectory
	}
	order, err := c.service.opts.Orders.GetOrder(ctx, id)
	if err != nil {
		return OrderDetail{}, fmt.Errorf("console: load order %s: %w", id, err)
	}
	detail := OrderDetail{
		Order:    order,
		Customer: order.CustomerName,
		Vendor:   order.VendorName,
		Price:    FormatINR(order.Price),
		Total:    FormatINR(order.TotalPrice),
		Slot:     FormatSlot(order.Slot),
		Status:   TitleCase(string(order.Status)),
		Placed:   FormatDateTime(order.CreatedAt),
	}
	if detail.Vendor == "" {
		detail.Vendor = "Unassigned"
	}
	return detail, nil
}
