package gorouter

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	router "github.com/goliatone/go-router"

	console "github.com/goliatone/go-marketplace-admin/components/console"
	"github.com/goliatone/go-marketplace-admin/components/console/commands"
	"github.com/goliatone/go-marketplace-admin/components/console/queries"
)

func TestRegisterValidatesConfig(t *testing.T) {
	if err := Register(Config[struct{}]{}); err == nil {
		t.Fatalf("expected error when router/controller missing")
	}
}

func TestRegisterDashboardRoute(t *testing.T) {
	mock := newMockRouter()
	controller := newTestController()

	cfg := Config[struct{}]{
		Router:     mock,
		Controller: controller,
	}
	if err := Register(cfg); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	h, ok := mock.routes["GET:/admin/dashboard"]
	if !ok {
		t.Fatalf("expected dashboard route to be registered")
	}

	ctx := newMockContext()
	if err := h(ctx); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(ctx.body) == 0 {
		t.Fatalf("expected response body")
	}
	if ctx.headers["Content-Type"] != "text/html; charset=utf-8" {
		t.Fatalf("expected html content type, got %q", ctx.headers["Content-Type"])
	}
}

func TestRegisterSnapshotRouteIsGet(t *testing.T) {
	mock := newMockRouter()
	if err := Register(Config[struct{}]{Router: mock, Controller: newTestController()}); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	h, ok := mock.routes["GET:/admin/dashboard/_snapshot"]
	if !ok {
		t.Fatalf("expected snapshot route on GET")
	}
	ctx := newMockContext()
	ctx.query["period"] = "3m"
	if err := h(ctx); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	var snap console.Snapshot
	if err := json.Unmarshal(ctx.body, &snap); err != nil {
		t.Fatalf("snapshot payload not JSON: %v", err)
	}
	if snap.Period != console.PeriodThreeMonths {
		t.Fatalf("expected requested period, got %s", snap.Period)
	}
}

func TestRegisterListRoutesAreGet(t *testing.T) {
	mock := newMockRouter()
	desk := &stubDesk{}
	cfg := Config[struct{}]{
		Router:     mock,
		Controller: newTestController(),
		Queries: Queries{
			Orders:    queries.NewOrderPageQuery(desk),
			Available: queries.NewAvailableVendorsQuery(desk),
		},
	}
	if err := Register(cfg); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	h, ok := mock.routes["GET:/admin/orders"]
	if !ok {
		t.Fatalf("expected orders listing on GET")
	}
	ctx := newMockContext()
	ctx.query["page"] = "2"
	ctx.query["search"] = "asha"
	if err := h(ctx); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if desk.lastQuery.Page != 2 || desk.lastQuery.Search != "asha" {
		t.Fatalf("expected query parsing, got %#v", desk.lastQuery)
	}

	if _, ok := mock.routes["GET:/admin/orders/available-vendors"]; !ok {
		t.Fatalf("expected available-vendors route on GET")
	}
}

func TestRegisterAssignRoute(t *testing.T) {
	mock := newMockRouter()
	exec := &stubExecutor{}
	cfg := Config[struct{}]{
		Router:     mock,
		Controller: newTestController(),
		API:        exec,
	}
	if err := Register(cfg); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	h, ok := mock.routes["POST:/admin/orders/:id/assign"]
	if !ok {
		t.Fatalf("expected assign route to be registered")
	}
	ctx := newMockContext()
	ctx.params["id"] = "o1"
	ctx.body = []byte(`{"vendorId":"v1"}`)
	if err := h(ctx); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if exec.assign.OrderID != "o1" || exec.assign.VendorID != "v1" {
		t.Fatalf("expected assign propagation, got %#v", exec.assign)
	}
}

func TestRegisterWebSocketRoute(t *testing.T) {
	mock := newMockRouter()
	cfg := Config[struct{}]{
		Router:     mock,
		Controller: newTestController(),
		Broadcast:  console.NewBroadcastHook(),
	}
	if err := Register(cfg); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, ok := mock.ws["/admin/ws"]; !ok {
		t.Fatalf("expected websocket route to be registered")
	}
}

// --- Test helpers ---

func newTestController() *console.Controller {
	source := reportSourceFunc(func(_ context.Context, period console.Period) (console.Overview, error) {
		return console.Overview{Period: period}, nil
	})
	return console.NewController(console.ControllerOptions{
		Aggregator: console.NewAggregator(source),
		Renderer:   stubRenderer{},
	})
}

type reportSourceFunc func(ctx context.Context, period console.Period) (console.Overview, error)

func (f reportSourceFunc) FetchOverview(ctx context.Context, period console.Period) (console.Overview, error) {
	return f(ctx, period)
}

type stubRenderer struct{}

func (stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte("<html></html>"))
	}
	return "<html></html>", nil
}

type stubDesk struct {
	lastQuery console.ListQuery
}

func (s *stubDesk) ListOrders(_ context.Context, q console.ListQuery) (console.Page[console.Order], error) {
	s.lastQuery = q
	return console.Page[console.Order]{CurrentPage: q.Page}, nil
}

func (s *stubDesk) GetOrder(context.Context, string) (console.Order, error) {
	return console.Order{}, nil
}

func (s *stubDesk) AvailableVendors(context.Context, string, string) ([]console.Vendor, error) {
	return nil, nil
}

func (s *stubDesk) AssignOrder(context.Context, string, string) error { return nil }

func (s *stubDesk) ListSlots(context.Context, time.Time) ([]console.Slot, error) { return nil, nil }

func (s *stubDesk) SetSlotAvailability(context.Context, string, bool) error { return nil }

type stubExecutor struct {
	assign commands.AssignOrderInput
}

func (s *stubExecutor) Assign(_ context.Context, input commands.AssignOrderInput) error {
	s.assign = input
	return nil
}

func (s *stubExecutor) Toggle(context.Context, commands.ToggleStatusInput) error { return nil }

func (s *stubExecutor) Approve(context.Context, commands.ApproveVendorInput) error { return nil }

func (s *stubExecutor) ResolveDispute(context.Context, commands.ResolveDisputeInput) error {
	return nil
}

func (s *stubExecutor) Broadcast(context.Context, console.Broadcast) error { return nil }

type mockRouter struct {
	router.Router[struct{}]
	prefix string
	routes map[string]router.HandlerFunc
	ws     map[string]func(router.WebSocketContext) error
}

func newMockRouter() *mockRouter {
	return &mockRouter{
		routes: map[string]router.HandlerFunc{},
		ws:     map[string]func(router.WebSocketContext) error{},
	}
}

func (m *mockRouter) Group(prefix string) router.Router[struct{}] {
	return &mockRouter{
		prefix: m.prefix + prefix,
		routes: m.routes,
		ws:     m.ws,
	}
}

func (m *mockRouter) record(method, path string, handler router.HandlerFunc) {
	full := m.prefix + path
	m.routes[method+":"+full] = handler
}

func (m *mockRouter) Get(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo {
	m.record(string(router.GET), path, handler)
	return mockRouteInfo{}
}

func (m *mockRouter) Post(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo {
	m.record(string(router.POST), path, handler)
	return mockRouteInfo{}
}

func (m *mockRouter) Delete(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo {
	m.record(string(router.DELETE), path, handler)
	return mockRouteInfo{}
}

func (m *mockRouter) WebSocket(path string, cfg router.WebSocketConfig, handler func(router.WebSocketContext) error) router.RouteInfo {
	full := m.prefix + path
	m.ws[full] = handler
	return mockRouteInfo{}
}

type routeInfo = router.RouteInfo

type mockRouteInfo struct {
	routeInfo
}

func (mockRouteInfo) SetName(string) router.RouteInfo { return mockRouteInfo{} }

type routerContext = router.Context

type mockContext struct {
	routerContext
	ctx     context.Context
	headers map[string]string
	body    []byte
	locals  map[any]any
	params  map[string]string
	query   map[string]string
	status  int
}

func newMockContext() *mockContext {
	return &mockContext{
		ctx:     context.Background(),
		headers: map[string]string{},
		locals:  map[any]any{},
		params:  map[string]string{},
		query:   map[string]string{},
	}
}

func (m *mockContext) Context() context.Context {
	return m.ctx
}

func (m *mockContext) SetHeader(k, v string) router.Context {
	m.headers[k] = v
	return m
}

func (m *mockContext) Send(b []byte) error {
	m.body = append([]byte{}, b...)
	return nil
}

func (m *mockContext) JSON(code int, v any) error {
	m.status = code
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.body = data
	return nil
}

func (m *mockContext) Body() []byte { return m.body }

func (m *mockContext) Param(name string, defaultValue ...string) string {
	if v, ok := m.params[name]; ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func (m *mockContext) Query(name string, defaultValue ...string) string {
	if v, ok := m.query[name]; ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func (m *mockContext) Header(name string) string {
	return m.headers[name]
}

func (m *mockContext) Locals(key any, value ...any) any {
	if len(value) == 0 {
		return m.locals[key]
	}
	m.locals[key] = value[0]
	return value[0]
}
