package marketplace

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

// Mock is an in-memory backend for tests and local demos. It implements every
// directory interface the console consumes, with the same observable
// behavior the remote backend is expected to have: creates default to active,
// assignment denormalizes the vendor name, and lists are re-fetched rather
// than patched.
type Mock struct {
	mu         sync.RWMutex
	admins     []console.Admin
	customers  []console.Customer
	vendors    []console.Vendor
	services   []console.ServiceCategory
	orders     []console.Order
	disputes   []console.Dispute
	banners    []console.Banner
	slots      []console.Slot
	broadcasts []console.Broadcast
	overview   console.Overview
}

var (
	_ console.AdminDirectory      = (*Mock)(nil)
	_ console.CustomerDirectory   = (*Mock)(nil)
	_ console.VendorDirectory     = (*Mock)(nil)
	_ console.CatalogDirectory    = (*Mock)(nil)
	_ console.OrderDesk           = (*Mock)(nil)
	_ console.DisputeDesk         = (*Mock)(nil)
	_ console.BannerShelf         = (*Mock)(nil)
	_ console.NotificationGateway = (*Mock)(nil)
	_ console.ReportSource        = (*Mock)(nil)
)

// NewMock builds an empty in-memory backend.
func NewMock() *Mock {
	return &Mock{}
}

// SetOverview seeds the dashboard payload returned by FetchOverview.
func (m *Mock) SetOverview(overview console.Overview) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overview = overview
}

// Broadcasts returns every broadcast sent so far, oldest first.
func (m *Mock) Broadcasts() []console.Broadcast {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]console.Broadcast(nil), m.broadcasts...)
}

func newID() string {
	return uuid.NewString()
}

// page slices records according to the query after optional name filtering.
func page[T any](records []T, q console.ListQuery, matches func(T, string) bool) console.Page[T] {
	filtered := records
	if q.Search != "" && matches != nil {
		term := strings.ToLower(q.Search)
		filtered = nil
		for _, record := range records {
			if matches(record, term) {
				filtered = append(filtered, record)
			}
		}
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = 10
	}
	current := q.Page
	if current < 1 {
		current = 1
	}
	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if current > totalPages {
		current = totalPages
	}
	start := (current - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return console.Page[T]{
		Records:      append([]T(nil), filtered[start:end]...),
		CurrentPage:  current,
		TotalPages:   totalPages,
		TotalRecords: total,
	}
}

func (m *Mock) ListAdmins(_ context.Context, q console.ListQuery) (console.Page[console.Admin], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(m.admins, q, func(a console.Admin, term string) bool {
		return strings.Contains(strings.ToLower(a.Name), term)
	}), nil
}

func (m *Mock) CreateAdmin(_ context.Context, input console.AdminInput) (console.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	admin := console.Admin{
		ID:        newID(),
		Name:      input.Name,
		Email:     input.Email,
		Active:    input.Active,
		CreatedAt: time.Now(),
	}
	m.admins = append(m.admins, admin)
	return admin, nil
}

func (m *Mock) UpdateAdmin(_ context.Context, id string, input console.AdminInput) (console.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.admins {
		if m.admins[i].ID == id {
			m.admins[i].Name = input.Name
			m.admins[i].Email = input.Email
			m.admins[i].Active = input.Active
			return m.admins[i], nil
		}
	}
	return console.Admin{}, notFound("admin", id)
}

func (m *Mock) DeleteAdmin(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.admins {
		if m.admins[i].ID == id {
			m.admins = append(m.admins[:i], m.admins[i+1:]...)
			return nil
		}
	}
	return notFound("admin", id)
}

func (m *Mock) ToggleAdmin(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.admins {
		if m.admins[i].ID == id {
			m.admins[i].Active = active
			return nil
		}
	}
	return notFound("admin", id)
}

func (m *Mock) ListCustomers(_ context.Context, q console.ListQuery) (console.Page[console.Customer], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(m.customers, q, func(c console.Customer, term string) bool {
		return strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(c.Mobile, term)
	}), nil
}

func (m *Mock) GetCustomer(_ context.Context, id string) (console.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, customer := range m.customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return console.Customer{}, notFound("customer", id)
}

func (m *Mock) CreateCustomer(_ context.Context, input console.CustomerInput) (console.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// New accounts default to active with an empty wallet, like the backend.
	customer := console.Customer{
		ID:        newID(),
		Name:      input.Name,
		Mobile:    input.Mobile,
		Email:     input.Email,
		Active:    true,
		Gender:    input.Gender,
		CreatedAt: time.Now(),
	}
	if input.Active != nil {
		customer.Active = *input.Active
	}
	if input.Verified != nil {
		customer.Verified = *input.Verified
	}
	if input.WalletBalance != nil {
		customer.WalletBalance = *input.WalletBalance
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	m.customers = append(m.customers, customer)
	return customer, nil
}

func (m *Mock) UpdateCustomer(_ context.Context, id string, input console.CustomerInput) (console.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].ID != id {
			continue
		}
		customer := &m.customers[i]
		if input.Name != "" {
			customer.Name = input.Name
		}
		if input.Mobile != "" {
			customer.Mobile = input.Mobile
		}
		if input.Email != "" {
			customer.Email = input.Email
		}
		if input.Active != nil {
			customer.Active = *input.Active
		}
		if input.Verified != nil {
			customer.Verified = *input.Verified
		}
		if input.WalletBalance != nil {
			customer.WalletBalance = *input.WalletBalance
		}
		if input.Address != nil {
			customer.Address = *input.Address
		}
		if input.Gender != console.GenderUnset {
			customer.Gender = input.Gender
		}
		return *customer, nil
	}
	return console.Customer{}, notFound("customer", id)
}

func (m *Mock) DeleteCustomer(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.customers {
		if m.customers[i].ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return notFound("customer", id)
}

func (m *Mock) ListVendors(_ context.Context, q console.ListQuery) (console.Page[console.Vendor], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(m.vendors, q, func(v console.Vendor, term string) bool {
		return strings.Contains(strings.ToLower(v.Name), term) ||
			strings.Contains(strings.ToLower(v.BusinessName), term)
	}), nil
}

func (m *Mock) GetVendor(_ context.Context, id string) (console.Vendor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, vendor := range m.vendors {
		if vendor.ID == id {
			return vendor, nil
		}
	}
	return console.Vendor{}, notFound("vendor", id)
}

func (m *Mock) CreateVendor(_ context.Context, input console.VendorInput) (console.Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	vendor := console.Vendor{
		ID:              newID(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		BusinessName:    input.BusinessName,
		BusinessDesc:    input.BusinessDesc,
		Professional:    input.Professional,
		ServicesOffered: input.ServicesOffered,
		BusinessAddress: input.BusinessAddress,
		Verification: console.Verification{
			AadhaarNumber: input.Verification.AadhaarNumber,
			PANNumber:     input.Verification.PANNumber,
		},
		BankDetails:  input.BankDetails,
		Availability: input.Availability,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	m.vendors = append(m.vendors, vendor)
	return vendor, nil
}

func (m *Mock) UpdateVendor(_ context.Context, id string, input console.VendorInput) (console.Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.vendors {
		if m.vendors[i].ID != id {
			continue
		}
		vendor := &m.vendors[i]
		vendor.Name = input.Name
		vendor.Email = input.Email
		vendor.Phone = input.Phone
		vendor.BusinessName = input.BusinessName
		vendor.BusinessDesc = input.BusinessDesc
		vendor.Professional = input.Professional
		vendor.ServicesOffered = input.ServicesOffered
		vendor.BusinessAddress = input.BusinessAddress
		vendor.BankDetails = input.BankDetails
		vendor.Availability = input.Availability
		vendor.Verification.AadhaarNumber = input.Verification.AadhaarNumber
		vendor.Verification.PANNumber = input.Verification.PANNumber
		return *vendor, nil
	}
	return console.Vendor{}, notFound("vendor", id)
}

func (m *Mock) DeleteVendor(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.vendors {
		if m.vendors[i].ID == id {
			m.vendors = append(m.vendors[:i], m.vendors[i+1:]...)
			return nil
		}
	}
	return notFound("vendor", id)
}

func (m *Mock) ToggleVendor(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.vendors {
		if m.vendors[i].ID == id {
			m.vendors[i].Active = active
			return nil
		}
	}
	return notFound("vendor", id)
}

func (m *Mock) ApproveVendor(_ context.Context, id string, approved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.vendors {
		if m.vendors[i].ID == id {
			m.vendors[i].Approved = approved
			return nil
		}
	}
	return notFound("vendor", id)
}

func (m *Mock) ListServices(_ context.Context, q console.ListQuery) (console.Page[console.ServiceCategory], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sorted := append([]console.ServiceCategory(nil), m.services...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})
	return page(sorted, q, func(s console.ServiceCategory, term string) bool {
		return strings.Contains(strings.ToLower(s.Name), term)
	}), nil
}

func (m *Mock) GetService(_ context.Context, id string) (console.ServiceCategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, service := range m.services {
		if service.ID == id {
			return service, nil
		}
	}
	return console.ServiceCategory{}, notFound("service", id)
}

func (m *Mock) CreateService(_ context.Context, input console.ServiceInput) (console.ServiceCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	service := console.ServiceCategory{
		ID:           newID(),
		Name:         input.Name,
		Description:  input.Description,
		Active:       input.Active,
		DisplayOrder: input.DisplayOrder,
	}
	m.services = append(m.services, service)
	return service, nil
}

func (m *Mock) UpdateService(_ context.Context, id string, input console.ServiceInput) (console.ServiceCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == id {
			m.services[i].Name = input.Name
			m.services[i].Description = input.Description
			m.services[i].Active = input.Active
			m.services[i].DisplayOrder = input.DisplayOrder
			return m.services[i], nil
		}
	}
	return console.ServiceCategory{}, notFound("service", id)
}

func (m *Mock) DeleteService(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return notFound("service", id)
}

func (m *Mock) SetServiceStatus(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == id {
			m.services[i].Active = active
			return nil
		}
	}
	return notFound("service", id)
}

func (m *Mock) CreateSubcategory(_ context.Context, input console.SubcategoryInput) (console.Subcategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID != input.ServiceID {
			continue
		}
		sub := console.Subcategory{
			ID:              newID(),
			ServiceID:       input.ServiceID,
			Name:            input.Name,
			Description:     input.Description,
			BasePrice:       input.BasePrice,
			PriceType:       input.PriceType,
			DurationMinutes: input.DurationMinutes,
			Active:          input.Active,
		}
		m.services[i].Subcategories = append(m.services[i].Subcategories, sub)
		return sub, nil
	}
	return console.Subcategory{}, notFound("service", input.ServiceID)
}

func (m *Mock) UpdateSubcategory(_ context.Context, id string, input console.SubcategoryInput) (console.Subcategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		for j := range m.services[i].Subcategories {
			if m.services[i].Subcategories[j].ID != id {
				continue
			}
			sub := &m.services[i].Subcategories[j]
			sub.Name = input.Name
			sub.Description = input.Description
			sub.BasePrice = input.BasePrice
			sub.PriceType = input.PriceType
			sub.DurationMinutes = input.DurationMinutes
			sub.Active = input.Active
			return *sub, nil
		}
	}
	return console.Subcategory{}, notFound("subcategory", id)
}

func (m *Mock) DeleteSubcategory(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		subs := m.services[i].Subcategories
		for j := range subs {
			if subs[j].ID == id {
				m.services[i].Subcategories = append(subs[:j], subs[j+1:]...)
				return nil
			}
		}
	}
	return notFound("subcategory", id)
}

func (m *Mock) SetSubcategoryStatus(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		for j := range m.services[i].Subcategories {
			if m.services[i].Subcategories[j].ID == id {
				m.services[i].Subcategories[j].Active = active
				return nil
			}
		}
	}
	return notFound("subcategory", id)
}

// AddOrder seeds a booking directly, for demos and tests.
func (m *Mock) AddOrder(order console.Order) console.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == "" {
		order.ID = newID()
	}
	m.orders = append(m.orders, order)
	return order
}

// AddSlot seeds a bookable window.
func (m *Mock) AddSlot(slot console.Slot) console.Slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slot.ID == "" {
		slot.ID = newID()
	}
	m.slots = append(m.slots, slot)
	return slot
}

func (m *Mock) ListOrders(_ context.Context, q console.ListQuery) (console.Page[console.Order], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	filtered := m.orders
	if status, ok := q.Filters["status"]; ok && status != "" {
		filtered = nil
		for _, order := range m.orders {
			if string(order.Status) == status {
				filtered = append(filtered, order)
			}
		}
	}
	return page(filtered, q, func(o console.Order, term string) bool {
		return strings.Contains(strings.ToLower(o.CustomerName), term) ||
			strings.Contains(strings.ToLower(o.SubcategoryName), term)
	}), nil
}

func (m *Mock) GetOrder(_ context.Context, id string) (console.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, order := range m.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return console.Order{}, notFound("order", id)
}

func (m *Mock) AvailableVendors(_ context.Context, subcategoryID, slotID string) ([]console.Vendor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var available []console.Vendor
	for _, vendor := range m.vendors {
		if !vendor.Active {
			continue
		}
		for _, offered := range vendor.ServicesOffered {
			if offered.SubcategoryID == subcategoryID {
				available = append(available, vendor)
				break
			}
		}
	}
	return available, nil
}

func (m *Mock) AssignOrder(_ context.Context, orderID, vendorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var vendorName string
	for _, vendor := range m.vendors {
		if vendor.ID == vendorID {
			vendorName = vendor.Name
			break
		}
	}
	if vendorName == "" {
		return notFound("vendor", vendorID)
	}
	for i := range m.orders {
		if m.orders[i].ID != orderID {
			continue
		}
		if m.orders[i].Status != console.OrderPending {
			return fmt.Errorf("marketplace: order %s is not pending", orderID)
		}
		m.orders[i].VendorID = vendorID
		m.orders[i].VendorName = vendorName
		m.orders[i].Status = console.OrderAssigned
		return nil
	}
	return notFound("order", orderID)
}

func (m *Mock) ListSlots(_ context.Context, day time.Time) ([]console.Slot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var slots []console.Slot
	for _, slot := range m.slots {
		if slot.Start.Year() == day.Year() && slot.Start.YearDay() == day.YearDay() {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func (m *Mock) SetSlotAvailability(_ context.Context, slotID string, available bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.slots {
		if m.slots[i].ID == slotID {
			m.slots[i].Available = available
			return nil
		}
	}
	return notFound("slot", slotID)
}

func (m *Mock) ListDisputes(_ context.Context, q console.ListQuery) (console.Page[console.Dispute], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(m.disputes, q, func(d console.Dispute, term string) bool {
		return strings.Contains(strings.ToLower(d.CustomerName), term) ||
			strings.Contains(strings.ToLower(d.VendorName), term)
	}), nil
}

func (m *Mock) GetDispute(_ context.Context, id string) (console.Dispute, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, dispute := range m.disputes {
		if dispute.ID == id {
			return dispute, nil
		}
	}
	return console.Dispute{}, notFound("dispute", id)
}

func (m *Mock) CreateDispute(_ context.Context, input console.DisputeInput) (console.Dispute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	dispute := console.Dispute{
		ID:          newID(),
		CustomerID:  input.CustomerID,
		VendorID:    input.VendorID,
		ServiceID:   input.ServiceID,
		Description: input.Description,
		Status:      console.DisputeOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, customer := range m.customers {
		if customer.ID == input.CustomerID {
			dispute.CustomerName = customer.Name
			break
		}
	}
	for _, vendor := range m.vendors {
		if vendor.ID == input.VendorID {
			dispute.VendorName = vendor.Name
			break
		}
	}
	m.disputes = append(m.disputes, dispute)
	return dispute, nil
}

func (m *Mock) UpdateDisputeStatus(_ context.Context, id string, status console.DisputeStatus, resolution string, refund *float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.disputes {
		if m.disputes[i].ID == id {
			m.disputes[i].Status = status
			m.disputes[i].Resolution = resolution
			m.disputes[i].RefundAmount = refund
			m.disputes[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return notFound("dispute", id)
}

func (m *Mock) DeleteDispute(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.disputes {
		if m.disputes[i].ID == id {
			m.disputes = append(m.disputes[:i], m.disputes[i+1:]...)
			return nil
		}
	}
	return notFound("dispute", id)
}

func (m *Mock) DisputeStats(context.Context) (console.DisputeStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := console.DisputeStats{Total: len(m.disputes)}
	for _, dispute := range m.disputes {
		switch dispute.Status {
		case console.DisputeOpen:
			stats.Open++
		case console.DisputeInProgress:
			stats.InProgress++
		case console.DisputeClosed:
			stats.Closed++
		case console.DisputeReopen:
			stats.Reopened++
		}
	}
	return stats, nil
}

func (m *Mock) ListBanners(_ context.Context, q console.ListQuery) (console.Page[console.Banner], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return page(m.banners, q, nil), nil
}

func (m *Mock) CreateBanner(_ context.Context, input console.BannerInput) (console.Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	banner := console.Banner{
		ID:        newID(),
		TargetURL: input.TargetURL,
		Active:    input.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Image != nil {
		banner.Image = "/uploads/banners/" + input.Image.Name
	}
	m.banners = append(m.banners, banner)
	return banner, nil
}

func (m *Mock) UpdateBanner(_ context.Context, id string, input console.BannerInput) (console.Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.banners {
		if m.banners[i].ID == id {
			m.banners[i].TargetURL = input.TargetURL
			m.banners[i].Active = input.Active
			if input.Image != nil {
				m.banners[i].Image = "/uploads/banners/" + input.Image.Name
			}
			m.banners[i].UpdatedAt = time.Now()
			return m.banners[i], nil
		}
	}
	return console.Banner{}, notFound("banner", id)
}

func (m *Mock) DeleteBanner(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.banners {
		if m.banners[i].ID == id {
			m.banners = append(m.banners[:i], m.banners[i+1:]...)
			return nil
		}
	}
	return notFound("banner", id)
}

func (m *Mock) ToggleBanner(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.banners {
		if m.banners[i].ID == id {
			m.banners[i].Active = active
			return nil
		}
	}
	return notFound("banner", id)
}

func (m *Mock) ListRecipients(_ context.Context, q console.ListQuery) (console.Page[console.Recipient], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	recipients := make([]console.Recipient, 0, len(m.customers)+len(m.vendors))
	for _, customer := range m.customers {
		recipients = append(recipients, console.Recipient{
			ID:     customer.ID,
			Name:   customer.Name,
			Kind:   "customer",
			Active: customer.Active,
		})
	}
	for _, vendor := range m.vendors {
		recipients = append(recipients, console.Recipient{
			ID:     vendor.ID,
			Name:   vendor.Name,
			Kind:   "vendor",
			Active: vendor.Active,
		})
	}
	return page(recipients, q, func(r console.Recipient, term string) bool {
		return strings.Contains(strings.ToLower(r.Name), term)
	}), nil
}

func (m *Mock) SendBroadcast(_ context.Context, b console.Broadcast) error {
	if b.Title == "" {
		return fmt.Errorf("marketplace: broadcast title is required")
	}
	if len(b.Recipients) == 0 && b.Audience == "" {
		return fmt.Errorf("marketplace: broadcast needs recipients or an audience")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.broadcasts = append(m.broadcasts, b)
	return nil
}

func (m *Mock) FetchOverview(_ context.Context, period console.Period) (console.Overview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	overview := m.overview
	overview.Period = period
	if overview.GeneratedAt.IsZero() {
		overview.GeneratedAt = time.Now()
	}
	return overview, nil
}

func notFound(kind, id string) error {
	return &APIError{HTTPStatus: 404, Message: fmt.Sprintf("%s %s not found", kind, id)}
}
