package console

import (
	"context"
	"errors"
	"fmt"
)

var (
	errMissingDirectory = errors.New("console: directory not configured")
	errMissingID        = errors.New("console: entity id is required")
)

// Options configures the console Service. Every collaborator is provided via
// interface so applications and tests can substitute implementations.
type Options struct {
	Admins        AdminDirectory
	Customers     CustomerDirectory
	Vendors       VendorDirectory
	Catalog       CatalogDirectory
	Orders        OrderDesk
	Disputes      DisputeDesk
	Banners       BannerShelf
	Notifications NotificationGateway
	Reports       ReportSource

	RefreshHook RefreshHook
	Telemetry   Telemetry
	Preferences PreferenceStore
	Validator   *FormValidator
}

// Service orchestrates console mutations over the remote directories. Every
// successful mutation emits an entity event so list screens re-fetch; nothing
// is applied optimistically.
type Service struct {
	opts Options
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	if opts.Preferences == nil {
		opts.Preferences = NewInMemoryPreferenceStore()
	}
	if opts.Validator == nil {
		opts.Validator = NewFormValidator()
	}
	return &Service{opts: opts}
}

// Validator exposes the shared form validator.
func (s *Service) Validator() *FormValidator { return s.opts.Validator }

// Preferences exposes the view preference store.
func (s *Service) Preferences() PreferenceStore { return s.opts.Preferences }

// Aggregator builds a dashboard aggregator over the configured report source.
func (s *Service) Aggregator(opts ...AggregatorOption) *Aggregator {
	return NewAggregator(s.opts.Reports, opts...)
}

func (s *Service) changed(ctx context.Context, entity, id, reason string) error {
	if err := s.opts.RefreshHook.EntityChanged(ctx, EntityEvent{Entity: entity, ID: id, Reason: reason}); err != nil {
		return err
	}
	s.opts.Telemetry.Record(ctx, "console."+entity+"."+reason, map[string]any{"id": id})
	return nil
}

// CreateAdmin adds an operator account.
func (s *Service) CreateAdmin(ctx context.Context, input AdminInput) (Admin, error) {
	if s.opts.Admins == nil {
		return Admin{}, errMissingDirectory
	}
	admin, err := s.opts.Admins.CreateAdmin(ctx, input)
	if err != nil {
		return Admin{}, err
	}
	return admin, s.changed(ctx, "admin", admin.ID, "create")
}

// UpdateAdmin updates an operator's basic info.
func (s *Service) UpdateAdmin(ctx context.Context, id string, input AdminInput) (Admin, error) {
	if s.opts.Admins == nil {
		return Admin{}, errMissingDirectory
	}
	if id == "" {
		return Admin{}, errMissingID
	}
	admin, err := s.opts.Admins.UpdateAdmin(ctx, id, input)
	if err != nil {
		return Admin{}, err
	}
	return admin, s.changed(ctx, "admin", id, "update")
}

// DeleteAdmin removes an operator account.
func (s *Service) DeleteAdmin(ctx context.Context, id string) error {
	if s.opts.Admins == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Admins.DeleteAdmin(ctx, id); err != nil {
		return err
	}
	return s.changed(ctx, "admin", id, "delete")
}

// ToggleAdmin flips an operator's active flag.
func (s *Service) ToggleAdmin(ctx context.Context, id string, active bool) error {
	if s.opts.Admins == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Admins.ToggleAdmin(ctx, id, active); err != nil {
		return err
	}
	return s.changed(ctx, "admin", id, "toggle")
}

// CreateCustomer registers a customer with the minimal field set.
func (s *Service) CreateCustomer(ctx context.Context, input CustomerInput) (Customer, error) {
	if s.opts.Customers == nil {
		return Customer{}, errMissingDirectory
	}
	customer, err := s.opts.Customers.CreateCustomer(ctx, input)
	if err != nil {
		return Customer{}, err
	}
	return customer, s.changed(ctx, "customer", customer.ID, "create")
}

// UpdateCustomer applies any subset of customer fields, wallet and flags
// included.
func (s *Service) UpdateCustomer(ctx context.Context, id string, input CustomerInput) (Customer, error) {
	if s.opts.Customers == nil {
		return Customer{}, errMissingDirectory
	}
	if id == "" {
		return Customer{}, errMissingID
	}
	customer, err := s.opts.Customers.UpdateCustomer(ctx, id, input)
	if err != nil {
		return Customer{}, err
	}
	return customer, s.changed(ctx, "customer", id, "update")
}

// DeleteCustomer removes a customer from the remote store.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	if s.opts.Customers == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Customers.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	return s.changed(ctx, "customer", id, "delete")
}

// DeleteVendor removes a service partner.
func (s *Service) DeleteVendor(ctx context.Context, id string) error {
	if s.opts.Vendors == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Vendors.DeleteVendor(ctx, id); err != nil {
		return err
	}
	return s.changed(ctx, "vendor", id, "delete")
}

// ToggleVendor flips a partner's active flag.
func (s *Service) ToggleVendor(ctx context.Context, id string, active bool) error {
	if s.opts.Vendors == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Vendors.ToggleVendor(ctx, id, active); err != nil {
		return err
	}
	return s.changed(ctx, "vendor", id, "toggle")
}

// ApproveVendor flips a partner's approved flag.
func (s *Service) ApproveVendor(ctx context.Context, id string, approved bool) error {
	if s.opts.Vendors == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Vendors.ApproveVendor(ctx, id, approved); err != nil {
		return err
	}
	return s.changed(ctx, "vendor", id, "approve")
}

// VendorForm starts the onboarding wizard bound to the vendor directory.
func (s *Service) VendorForm() *VendorForm {
	return NewVendorForm(s.opts.Vendors)
}

// VendorEditForm fetches the vendor and starts a prefilled edit wizard.
func (s *Service) VendorEditForm(ctx context.Context, id string) (*VendorForm, error) {
	if s.opts.Vendors == nil {
		return nil, errMissingDirectory
	}
	vendor, err := s.opts.Vendors.GetVendor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("console: load vendor %s: %w", id, err)
	}
	return NewVendorEditForm(s.opts.Vendors, vendor), nil
}

// CreateService adds a catalog category.
func (s *Service) CreateService(ctx context.Context, input ServiceInput) (ServiceCategory, error) {
	if s.opts.Catalog == nil {
		return ServiceCategory{}, errMissingDirectory
	}
	svc, err := s.opts.Catalog.CreateService(ctx, input)
	if err != nil {
		return ServiceCategory{}, err
	}
	return svc, s.changed(ctx, "service", svc.ID, "create")
}

// UpdateService updates a catalog category.
func (s *Service) UpdateService(ctx context.Context, id string, input ServiceInput) (ServiceCategory, error) {
	if s.opts.Catalog == nil {
		return ServiceCategory{}, errMissingDirectory
	}
	if id == "" {
		return ServiceCategory{}, errMissingID
	}
	svc, err := s.opts.Catalog.UpdateService(ctx, id, input)
	if err != nil {
		return ServiceCategory{}, err
	}
	return svc, s.changed(ctx, "service", id, "update")
}

// DeleteService removes a catalog category.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	if s.opts.Catalog == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Catalog.DeleteService(ctx, id); err != nil {
		return err
	}
	return s.changed(ctx, "service", id, "delete")
}

// SetServiceStatus flips a category's active flag.
func (s *Service) SetServiceStatus(ctx context.Context, id string, active bool) error {
	if s.opts.Catalog == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Catalog.SetServiceStatus(ctx, id, active); err != nil {
		return err
	}
	return s.changed(ctx, "service", id, "status")
}

// CreateSubcategory adds a bookable unit under a category.
func (s *Service) CreateSubcategory(ctx context.Context, input SubcategoryInput) (Subcategory, error) {
	if s.opts.Catalog == nil {
		return Subcategory{}, errMissingDirectory
	}
	if input.ServiceID == "" {
		return Subcategory{}, fmt.Errorf("console: subcategory requires a parent service")
	}
	sub, err := s.opts.Catalog.CreateSubcategory(ctx, input)
	if err != nil {
		return Subcategory{}, err
	}
	return sub, s.changed(ctx, "subcategory", sub.ID, "create")
}

// UpdateSubcategory updates a bookable unit.
func (s *Service) UpdateSubcategory(ctx context.Context, id string, input SubcategoryInput) (Subcategory, error) {
	if s.opts.Catalog == nil {
		return Subcategory{}, errMissingDirectory
	}
	if id == "" {
		return Subcategory{}, errMissingID
	}
	sub, err := s.opts.Catalog.UpdateSubcategory(ctx, id, input)
	if err != nil {
		return Subcategory{}, err
	}
	return sub, s.changed(ctx, "subcategory", id, "update")
}

// DeleteSubcategory removes a bookable unit.
func (s *Service) DeleteSubcategory(ctx context.Context, id string) error {
	if s.opts.Catalog == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Catalog.DeleteSubcategory(ctx, id); err != nil {
		return err
	}
	return s.changed(ctx, "subcategory", id, "delete")
}

// SetSubcategoryStatus flips a bookable unit's active flag.
func (s *Service) SetSubcategoryStatus(ctx context.Context, id string, active bool) error {
	if s.opts.Catalog == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Catalog.SetSubcategoryStatus(ctx, id, active); err != nil {
		return err
	}
	return s.changed(ctx, "subcategory", id, "status")
}

// AssignOrder hands a pending, unassigned order to a vendor chosen from the
// availability list. Orders in any other state are rejected before the
// network is touched.
func (s *Service) AssignOrder(ctx context.Context, orderID, vendorID string) error {
	if s.opts.Orders == nil {
		return errMissingDirectory
	}
	if orderID == "" || vendorID == "" {
		return errMissingID
	}
	order, err := s.opts.Orders.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("console: load order %s: %w", orderID, err)
	}
	if order.Status != OrderPending || order.VendorID != "" {
		return fmt.Errorf("console: order %s is not assignable (status %s)", orderID, order.Status)
	}
	if err := s.opts.Orders.AssignOrder(ctx, orderID, vendorID); err != nil {
		return err
	}
	return s.changed(ctx, "order", orderID, "assign")
}

// SetSlotAvailability opens or closes a booking slot.
func (s *Service) SetSlotAvailability(ctx context.Context, slotID string, available bool) error {
	if s.opts.Orders == nil {
		return errMissingDirectory
	}
	if slotID == "" {
		return errMissingID
	}
	if err := s.opts.Orders.SetSlotAvailability(ctx, slotID, available); err != nil {
		return err
	}
	return s.changed(ctx, "slot", slotID, "status")
}

// CreateDispute opens a dispute.
func (s *Service) CreateDispute(ctx context.Context, input DisputeInput) (Dispute, error) {
	if s.opts.Disputes == nil {
		return Dispute{}, errMissingDirectory
	}
	dispute, err := s.opts.Disputes.CreateDispute(ctx, input)
	if err != nil {
		return Dispute{}, err
	}
	return dispute, s.changed(ctx, "dispute", dispute.ID, "create")
}

// UpdateDisputeStatus moves a dispute to any status; the backend owns the
// real workflow constraints.
func (s *Service) UpdateDisputeStatus(ctx context.Context, id string, status DisputeStatus, resolution string, refund *float64) error {
	if s.opts.Disputes == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Disputes.UpdateDisputeStatus(ctx, id, status, resolution, refund); err != nil {
		return err
	}
	return s.changed(ctx, "dispute", id, "status")
}

// DeleteDispute removes a dispute.
func (s *Service) DeleteDispute(ctx context.Context, id string) error {
	if s.opts.Disputes == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Disputes.DeleteDispute(ctx, id); err != nil {
		return err
	}
	return s.changed(ctx, "dispute", id, "delete")
}

// CreateBanner uploads a promotional banner.
func (s *Service) CreateBanner(ctx context.Context, input BannerInput) (Banner, error) {
	if s.opts.Banners == nil {
		return Banner{}, errMissingDirectory
	}
	banner, err := s.opts.Banners.CreateBanner(ctx, input)
	if err != nil {
		return Banner{}, err
	}
	return banner, s.changed(ctx, "banner", banner.ID, "create")
}

// UpdateBanner updates a banner.
func (s *Service) UpdateBanner(ctx context.Context, id string, input BannerInput) (Banner, error) {
	if s.opts.Banners == nil {
		return Banner{}, errMissingDirectory
	}
	if id == "" {
		return Banner{}, errMissingID
	}
	banner, err := s.opts.Banners.UpdateBanner(ctx, id, input)
	if err != nil {
		return Banner{}, err
	}
	return banner, s.changed(ctx, "banner", id, "update")
}

// DeleteBanner removes a banner.
func (s *Service) DeleteBanner(ctx context.Context, id string) error {
	if s.opts.Banners == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Banners.DeleteBanner(ctx, id); err != nil {
		return err
	}
	return s.changed(ctx, "banner", id, "delete")
}

// ToggleBanner flips a banner's active flag.
func (s *Service) ToggleBanner(ctx context.Context, id string, active bool) error {
	if s.opts.Banners == nil {
		return errMissingDirectory
	}
	if id == "" {
		return errMissingID
	}
	if err := s.opts.Banners.ToggleBanner(ctx, id, active); err != nil {
		return err
	}
	return s.changed(ctx, "banner", id, "toggle")
}

// SendBroadcast delivers a notification to explicit recipients or a whole
// audience. Exactly one targeting mode must be set.
func (s *Service) SendBroadcast(ctx context.Context, b Broadcast) error {
	if s.opts.Notifications == nil {
		return errMissingDirectory
	}
	if b.Title == "" {
		return fmt.Errorf("console: broadcast requires a title")
	}
	hasRecipients := len(b.Recipients) > 0
	hasAudience := b.Audience != ""
	if hasRecipients == hasAudience {
		return fmt.Errorf("console: broadcast requires recipients or an audience, not both")
	}
	if err := s.opts.Notifications.SendBroadcast(ctx, b); err != nil {
		return err
	}
	return s.changed(ctx, "notification", "", "broadcast")
}
