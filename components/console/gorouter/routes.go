package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	gocommand "github.com/goliatone/go-command"
	router "github.com/goliatone/go-router"

	console "github.com/goliatone/go-marketplace-admin/components/console"
	"github.com/goliatone/go-marketplace-admin/components/console/commands"
	"github.com/goliatone/go-marketplace-admin/components/console/httpapi"
	"github.com/goliatone/go-marketplace-admin/components/console/queries"
)

// OperatorResolver converts a router.Context into a console.OperatorContext.
type OperatorResolver func(router.Context) console.OperatorContext

// Queries bundles the read-side queriers mounted as GET endpoints.
type Queries struct {
	Customers gocommand.Querier[console.ListQuery, console.Page[console.Customer]]
	Vendors   gocommand.Querier[console.ListQuery, console.Page[console.Vendor]]
	Orders    gocommand.Querier[console.ListQuery, console.Page[console.Order]]
	Available gocommand.Querier[queries.AvailableVendorsInput, []console.Vendor]
}

// Config wires go-router with console controllers, commands, and hooks.
type Config[T any] struct {
	Router           router.Router[T]
	Controller       *console.Controller
	API              httpapi.Executor
	Queries          Queries
	Broadcast        *console.BroadcastHook
	OperatorResolver OperatorResolver
	BasePath         string
	Routes           RouteConfig
}

// RouteConfig customizes the relative paths used for console endpoints.
type RouteConfig struct {
	Dashboard     string
	Snapshot      string
	Customers     string
	Vendors       string
	VendorDetail  string
	VendorApprove string
	Orders        string
	OrderDetail   string
	OrderVendors  string
	OrderAssign   string
	DisputeStatus string
	Toggle        string
	Broadcasts    string
	WebSocket     string
}

// Register mounts console routes (HTML, JSON reads, mutations, WebSocket) on
// a go-router router. Reads are GET; mutations stay POST.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	resolver := cfg.OperatorResolver
	if resolver == nil {
		resolver = defaultOperatorResolver
	}

	group := cfg.Router.Group(base)

	group.Get(routes.Dashboard, router.WrapHandler(func(ctx router.Context) error {
		op := resolver(ctx)
		period := parsePeriod(ctx)
		var buf bytes.Buffer
		if err := cfg.Controller.RenderDashboard(ctx.Context(), op, period, &buf); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group.Get(routes.Snapshot, router.WrapHandler(func(ctx router.Context) error {
		op := resolver(ctx)
		snap, err := cfg.Controller.SnapshotPayload(ctx.Context(), op, parsePeriod(ctx))
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, snap)
	}))

	group.Get(routes.VendorDetail, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("vendor id is required"))
		}
		detail, err := cfg.Controller.VendorDetailPayload(ctx.Context(), id)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, detail)
	}))

	group.Get(routes.OrderDetail, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("order id is required"))
		}
		detail, err := cfg.Controller.OrderDetailPayload(ctx.Context(), id)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, detail)
	}))

	registerListQueries(group, cfg.Queries, routes)

	if cfg.API != nil {
		registerAPI(group, cfg.API, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

func registerListQueries[T any](r router.Router[T], q Queries, routes RouteConfig) {
	if q.Customers != nil {
		r.Get(routes.Customers, router.WrapHandler(func(ctx router.Context) error {
			page, err := q.Customers.Query(ctx.Context(), parseListQuery(ctx))
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, page)
		}))
	}
	if q.Vendors != nil {
		r.Get(routes.Vendors, router.WrapHandler(func(ctx router.Context) error {
			page, err := q.Vendors.Query(ctx.Context(), parseListQuery(ctx))
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, page)
		}))
	}
	if q.Orders != nil {
		r.Get(routes.Orders, router.WrapHandler(func(ctx router.Context) error {
			page, err := q.Orders.Query(ctx.Context(), parseListQuery(ctx))
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, page)
		}))
	}
	if q.Available != nil {
		r.Get(routes.OrderVendors, router.WrapHandler(func(ctx router.Context) error {
			input := queries.AvailableVendorsInput{
				SubcategoryID: ctx.Query("subcategory"),
				SlotID:        ctx.Query("slot"),
			}
			vendors, err := q.Available.Query(ctx.Context(), input)
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, vendors)
		}))
	}
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, routes RouteConfig) {
	r.Post(routes.OrderAssign, router.WrapHandler(func(ctx router.Context) error {
		orderID := ctx.Param("id")
		if orderID == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("order id is required"))
		}
		var payload struct {
			VendorID string `json:"vendorId"`
		}
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		input := commands.AssignOrderInput{OrderID: orderID, VendorID: payload.VendorID}
		if err := api.Assign(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusConflict, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "assigned"})
	}))

	r.Post(routes.Toggle, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.ToggleStatusInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Toggle(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "toggled"})
	}))

	r.Post(routes.VendorApprove, router.WrapHandler(func(ctx router.Context) error {
		vendorID := ctx.Param("id")
		if vendorID == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("vendor id is required"))
		}
		var payload struct {
			Approved bool `json:"approved"`
		}
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		input := commands.ApproveVendorInput{VendorID: vendorID, Approved: payload.Approved}
		if err := api.Approve(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Post(routes.DisputeStatus, router.WrapHandler(func(ctx router.Context) error {
		disputeID := ctx.Param("id")
		if disputeID == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("dispute id is required"))
		}
		var payload struct {
			Status     string   `json:"status"`
			Resolution string   `json:"resolution"`
			Refund     *float64 `json:"refund,omitempty"`
		}
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		input := commands.ResolveDisputeInput{
			DisputeID:  disputeID,
			Status:     console.DisputeStatus(payload.Status),
			Resolution: payload.Resolution,
			Refund:     payload.Refund,
		}
		if err := api.ResolveDispute(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Post(routes.Broadcasts, router.WrapHandler(func(ctx router.Context) error {
		var payload console.Broadcast
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Broadcast(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		return ctx.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *console.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func parsePeriod(ctx router.Context) console.Period {
	period := console.Period(strings.TrimSpace(ctx.Query("period")))
	if period == "" {
		return console.PeriodLastMonth
	}
	return period
}

func parseListQuery(ctx router.Context) console.ListQuery {
	q := console.ListQuery{Page: 1, PerPage: 10}
	if page, err := strconv.Atoi(ctx.Query("page")); err == nil && page > 0 {
		q.Page = page
	}
	if perPage, err := strconv.Atoi(ctx.Query("per_page")); err == nil && perPage > 0 {
		q.PerPage = perPage
	}
	q.Search = ctx.Query("search")
	if status := ctx.Query("status"); status != "" {
		q.Filters = map[string]string{"status": status}
	}
	return q
}

func defaultOperatorResolver(ctx router.Context) console.OperatorContext {
	var op console.OperatorContext
	if v, ok := ctx.Locals("operator_id").(string); ok {
		op.OperatorID = v
	}
	if roles, ok := ctx.Locals("roles").([]string); ok {
		op.Roles = roles
	}
	op.Locale = inferLocale(ctx)
	return op
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	if header := ctx.Header("Accept-Language"); header != "" {
		if lang := parseAcceptLanguage(header); lang != "" {
			return lang
		}
	}
	return ""
}

func parseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Dashboard == "" {
		routes.Dashboard = "/dashboard"
	}
	if routes.Snapshot == "" {
		routes.Snapshot = "/dashboard/_snapshot"
	}
	if routes.Customers == "" {
		routes.Customers = "/customers"
	}
	if routes.Vendors == "" {
		routes.Vendors = "/vendors"
	}
	if routes.VendorDetail == "" {
		routes.VendorDetail = "/vendors/:id"
	}
	if routes.VendorApprove == "" {
		routes.VendorApprove = "/vendors/:id/approve"
	}
	if routes.Orders == "" {
		routes.Orders = "/orders"
	}
	if routes.OrderDetail == "" {
		routes.OrderDetail = "/orders/:id"
	}
	if routes.OrderVendors == "" {
		routes.OrderVendors = "/orders/available-vendors"
	}
	if routes.OrderAssign == "" {
		routes.OrderAssign = "/orders/:id/assign"
	}
	if routes.DisputeStatus == "" {
		routes.DisputeStatus = "/disputes/:id/status"
	}
	if routes.Toggle == "" {
		routes.Toggle = "/toggle"
	}
	if routes.Broadcasts == "" {
		routes.Broadcasts = "/broadcasts"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	return routes
}
