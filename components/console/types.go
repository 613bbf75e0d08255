package console

import (
	"context"
	"io"
	"time"
)

// Page carries one server page of records plus the pagination facts the
// backend reported for the full result set.
type Page[T any] struct {
	Records      []T
	CurrentPage  int
	TotalPages   int
	TotalRecords int
}

// ListQuery is the common shape sent with every listing request.
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	Filters map[string]string
}

// Gender enumerates the customer gender field.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
	GenderUnset  Gender = ""
)

// Admin is a console operator account.
type Admin struct {
	ID        string
	Name      string
	Email     string
	Active    bool
	CreatedAt time.Time
}

// Address is the customer postal address sub-record.
type Address struct {
	Pincode     string
	Street      string
	City        string
	State       string
	FullAddress string
}

// Customer is a marketplace end user.
type Customer struct {
	ID            string
	Name          string
	Mobile        string
	Email         string
	Active        bool
	Verified      bool
	WalletBalance float64
	Address       Address
	Gender        Gender
	CreatedAt     time.Time
}

// ProfessionalInfo captures a vendor's trade background.
type ProfessionalInfo struct {
	YearsOfExperience int
	Skills            []string
	Certifications    []string
	Bio               string
}

// OfferedService is one category/subcategory a vendor serves, with pricing.
type OfferedService struct {
	ServiceID       string
	SubcategoryID   string
	Price           float64
	DurationMinutes int
}

// BusinessAddress locates the vendor's business.
type BusinessAddress struct {
	Address string
	Pincode string
	City    string
	State   string
	Lat     *float64
	Lng     *float64
}

// Verification holds the vendor KYC sub-record.
type Verification struct {
	AadhaarNumber      string
	AadhaarFrontImage  string
	AadhaarBackImage   string
	PANNumber          string
	PANImage           string
	PoliceVerification string
	Verified           bool
}

// BankDetails holds payout account information.
type BankDetails struct {
	AccountNumber string
	HolderName    string
	IFSC          string
	BankName      string
}

// Availability describes when a vendor accepts work.
type Availability struct {
	WorkingDays []string
	StartTime   string
	EndTime     string
	Online      bool
}

// PerformanceMetrics are backend-computed vendor stats, read-only in the console.
type PerformanceMetrics struct {
	Rating        float64
	TotalRatings  int
	CompletedJobs int
	ResponseRate  float64
}

// Vendor is a service partner.
type Vendor struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	BusinessName     string
	BusinessDesc     string
	LogoImage        string
	BannerImage      string
	Professional     ProfessionalInfo
	ServicesOffered  []OfferedService
	BusinessAddress  BusinessAddress
	Verification     Verification
	BankDetails      BankDetails
	Availability     Availability
	Performance      PerformanceMetrics
	Active           bool
	Approved         bool
	CreatedAt        time.Time
}

// PriceType enumerates how a subcategory is billed.
type PriceType string

const (
	PriceFixed   PriceType = "fixed"
	PriceHourly  PriceType = "hourly"
	PricePerArea PriceType = "per-area"
)

// Subcategory is a bookable unit of work under a ServiceCategory.
type Subcategory struct {
	ID              string
	ServiceID       string
	Name            string
	Description     string
	BasePrice       float64
	PriceType       PriceType
	DurationMinutes int
	Active          bool
	Images          []string
}

// ServiceCategory is a top-level catalog category.
type ServiceCategory struct {
	ID            string
	Name          string
	Description   string
	Image         string
	Active        bool
	DisplayOrder  int
	Subcategories []Subcategory
}

// OrderStatus enumerates booking states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderAccepted  OrderStatus = "accepted"
	OrderRejected  OrderStatus = "rejected"
	OrderCompleted OrderStatus = "completed"
)

// PaymentStatus enumerates payment states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is the optional payment sub-record attached to an order.
type Payment struct {
	Mode          string
	Amount        float64
	Status        PaymentStatus
	TransactionID string
	PaidAt        *time.Time
}

// ScheduledSlot is the time window booked for an order.
type ScheduledSlot struct {
	SlotID string
	Start  time.Time
	End    time.Time
}

// Order is a booking. Customer and Vendor references are nullable: orders may
// arrive unassigned and customer-less.
type Order struct {
	ID              string
	CustomerID      string
	CustomerName    string
	SubcategoryID   string
	SubcategoryName string
	Price           float64
	VendorID        string
	VendorName      string
	Slot            ScheduledSlot
	Status          OrderStatus
	TotalPrice      float64
	Payment         *Payment
	CreatedAt       time.Time
}

// DisputeStatus enumerates dispute workflow states. Transitions are not
// constrained console-side; the backend owns the workflow.
type DisputeStatus string

const (
	DisputeOpen       DisputeStatus = "open"
	DisputeInProgress DisputeStatus = "inProgress"
	DisputeClosed     DisputeStatus = "closed"
	DisputeReopen     DisputeStatus = "reopen"
)

// Dispute is a customer/partner conflict under review.
type Dispute struct {
	ID              string
	CustomerID      string
	CustomerName    string
	VendorID        string
	VendorName      string
	ServiceID       string
	ServiceName     string
	Description     string
	CustomerProof   []string
	VendorProof     []string
	Status          DisputeStatus
	Resolution      string
	RefundAmount    *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisputeStats is the aggregate returned by the dispute stats endpoint.
type DisputeStats struct {
	Open       int
	InProgress int
	Closed     int
	Reopened   int
	Total      int
}

// Banner is a promotional image shown in the customer app.
type Banner struct {
	ID        string
	Image     string
	TargetURL string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slot is a bookable time window with its current vendor assignments.
type Slot struct {
	ID        string
	Start     time.Time
	End       time.Time
	VendorIDs []string
	Available bool
}

// Recipient is a notification target row.
type Recipient struct {
	ID     string
	Name   string
	Kind   string // "customer" or "vendor"
	Active bool
}

// Audience is a page-count-independent broadcast target.
type Audience string

const (
	AudienceAllCustomers Audience = "all_customers"
	AudienceAllVendors   Audience = "all_vendors"
)

// Broadcast is a notification send request: either explicit recipient ids or
// a whole audience.
type Broadcast struct {
	Title      string
	Body       string
	Image      *Upload
	Recipients []string
	Audience   Audience
	SendAt     *time.Time
}

// Upload is an in-memory file handle carried by form drafts until submission,
// when clients encode it as a multipart field.
type Upload struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// AdminDirectory manages operator accounts on the remote store.
type AdminDirectory interface {
	ListAdmins(ctx context.Context, q ListQuery) (Page[Admin], error)
	CreateAdmin(ctx context.Context, input AdminInput) (Admin, error)
	UpdateAdmin(ctx context.Context, id string, input AdminInput) (Admin, error)
	DeleteAdmin(ctx context.Context, id string) error
	ToggleAdmin(ctx context.Context, id string, active bool) error
}

// AdminInput is the create/update payload for operator accounts.
type AdminInput struct {
	Name   string
	Email  string
	Active bool
}

// CustomerDirectory manages marketplace customers.
type CustomerDirectory interface {
	ListCustomers(ctx context.Context, q ListQuery) (Page[Customer], error)
	GetCustomer(ctx context.Context, id string) (Customer, error)
	CreateCustomer(ctx context.Context, input CustomerInput) (Customer, error)
	UpdateCustomer(ctx context.Context, id string, input CustomerInput) (Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// CustomerInput carries any subset of mutable customer fields.
type CustomerInput struct {
	Name          string
	Mobile        string
	Email         string
	Active        *bool
	Verified      *bool
	WalletBalance *float64
	Address       *Address
	Gender        Gender
}

// VendorDirectory manages service partners.
type VendorDirectory interface {
	ListVendors(ctx context.Context, q ListQuery) (Page[Vendor], error)
	GetVendor(ctx context.Context, id string) (Vendor, error)
	CreateVendor(ctx context.Context, input VendorInput) (Vendor, error)
	UpdateVendor(ctx context.Context, id string, input VendorInput) (Vendor, error)
	DeleteVendor(ctx context.Context, id string) error
	ToggleVendor(ctx context.Context, id string, active bool) error
	ApproveVendor(ctx context.Context, id string, approved bool) error
}

// VendorInput is the full multi-step onboarding payload. File fields ride as
// Uploads and are only serialized at submission time.
type VendorInput struct {
	Name            string
	Email           string
	Phone           string
	BusinessName    string
	BusinessDesc    string
	Logo            *Upload
	Banner          *Upload
	ProfileImage    *Upload
	Professional    ProfessionalInfo
	ServicesOffered []OfferedService
	BusinessAddress BusinessAddress
	Verification    VerificationInput
	BankDetails     BankDetails
	Availability    Availability
}

// VerificationInput is the KYC step payload, image files included.
type VerificationInput struct {
	AadhaarNumber      string
	AadhaarFront       *Upload
	AadhaarBack        *Upload
	PANNumber          string
	PANImage           *Upload
	PoliceVerification *Upload
}

// CatalogDirectory manages services and subcategories.
type CatalogDirectory interface {
	ListServices(ctx context.Context, q ListQuery) (Page[ServiceCategory], error)
	GetService(ctx context.Context, id string) (ServiceCategory, error)
	CreateService(ctx context.Context, input ServiceInput) (ServiceCategory, error)
	UpdateService(ctx context.Context, id string, input ServiceInput) (ServiceCategory, error)
	DeleteService(ctx context.Context, id string) error
	SetServiceStatus(ctx context.Context, id string, active bool) error

	CreateSubcategory(ctx context.Context, input SubcategoryInput) (Subcategory, error)
	UpdateSubcategory(ctx context.Context, id string, input SubcategoryInput) (Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
	SetSubcategoryStatus(ctx context.Context, id string, active bool) error
}

// ServiceInput is the catalog category payload.
type ServiceInput struct {
	Name         string
	Description  string
	Image        *Upload
	Active       bool
	DisplayOrder int
}

// SubcategoryInput is the bookable-unit payload. Duration arrives as separate
// hour/minute selectors and is recombined into minutes before submission.
type SubcategoryInput struct {
	ServiceID       string
	Name            string
	Description     string
	BasePrice       float64
	PriceType       PriceType
	DurationMinutes int
	Active          bool
	Images          []*Upload
}

// OrderDesk manages bookings and slot assignment.
type OrderDesk interface {
	ListOrders(ctx context.Context, q ListQuery) (Page[Order], error)
	GetOrder(ctx context.Context, id string) (Order, error)
	// AvailableVendors returns vendors able to serve the order's subcategory
	// within its scheduled slot.
	AvailableVendors(ctx context.Context, subcategoryID, slotID string) ([]Vendor, error)
	AssignOrder(ctx context.Context, orderID, vendorID string) error
	ListSlots(ctx context.Context, day time.Time) ([]Slot, error)
	SetSlotAvailability(ctx context.Context, slotID string, available bool) error
}

// DisputeDesk manages disputes.
type DisputeDesk interface {
	ListDisputes(ctx context.Context, q ListQuery) (Page[Dispute], error)
	GetDispute(ctx context.Context, id string) (Dispute, error)
	CreateDispute(ctx context.Context, input DisputeInput) (Dispute, error)
	UpdateDisputeStatus(ctx context.Context, id string, status DisputeStatus, resolution string, refund *float64) error
	DeleteDispute(ctx context.Context, id string) error
	DisputeStats(ctx context.Context) (DisputeStats, error)
}

// DisputeInput opens a dispute on behalf of a customer.
type DisputeInput struct {
	CustomerID  string
	VendorID    string
	ServiceID   string
	Description string
	Evidence    []*Upload
}

// BannerShelf manages promotional banners.
type BannerShelf interface {
	ListBanners(ctx context.Context, q ListQuery) (Page[Banner], error)
	CreateBanner(ctx context.Context, input BannerInput) (Banner, error)
	UpdateBanner(ctx context.Context, id string, input BannerInput) (Banner, error)
	DeleteBanner(ctx context.Context, id string) error
	ToggleBanner(ctx context.Context, id string, active bool) error
}

// BannerInput is the banner payload.
type BannerInput struct {
	Image     *Upload
	TargetURL string
	Active    bool
}

// NotificationGateway lists recipients and sends broadcasts.
type NotificationGateway interface {
	ListRecipients(ctx context.Context, q ListQuery) (Page[Recipient], error)
	SendBroadcast(ctx context.Context, b Broadcast) error
}
