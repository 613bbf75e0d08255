package marketplace

import (
	"context"
	"time"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var _ console.VendorDirectory = (*Client)(nil)

type offeredServiceRecord struct {
	ServiceID       string  `json:"serviceId"`
	SubcategoryID   string  `json:"subCategoryId"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
}

type businessAddressRecord struct {
	Address string   `json:"address"`
	Pincode string   `json:"pincode"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type verificationRecord struct {
	AadhaarNumber      string `json:"aadharNo"`
	AadhaarFrontImage  string `json:"aadharFrontImage"`
	AadhaarBackImage   string `json:"aadharBackImage"`
	PANNumber          string `json:"panNo"`
	PANImage           string `json:"panImage"`
	PoliceVerification string `json:"policeVerification"`
	Verified           bool   `json:"isVerified"`
}

type bankDetailsRecord struct {
	AccountNumber string `json:"accountNo"`
	HolderName    string `json:"holderName"`
	IFSC          string `json:"ifscCode"`
	BankName      string `json:"bankName"`
}

type availabilityRecord struct {
	WorkingDays []string `json:"workingDays"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Online      bool     `json:"isOnline"`
}

type professionalRecord struct {
	YearsOfExperience int      `json:"experience"`
	Skills            []string `json:"skills"`
	Certifications    []string `json:"certifications"`
	Bio               string   `json:"bio"`
}

type performanceRecord struct {
	Rating        float64 `json:"rating"`
	TotalRatings  int     `json:"totalRatings"`
	CompletedJobs int     `json:"completedJobs"`
	ResponseRate  float64 `json:"responseRate"`
}

type vendorRecord struct {
	ID              string                 `json:"_id"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Phone           string                 `json:"phone"`
	BusinessName    string                 `json:"businessName"`
	BusinessDesc    string                 `json:"businessDescription"`
	LogoImage       string                 `json:"logo"`
	BannerImage     string                 `json:"bannerImage"`
	Professional    professionalRecord     `json:"professionalInfo"`
	ServicesOffered []offeredServiceRecord `json:"servicesOffered"`
	BusinessAddress businessAddressRecord  `json:"businessAddress"`
	Verification    verificationRecord     `json:"verification"`
	BankDetails     bankDetailsRecord      `json:"bankDetails"`
	Availability    availabilityRecord     `json:"availability"`
	Performance     performanceRecord      `json:"performance"`
	Active          bool                   `json:"isActive"`
	Approved        bool                   `json:"isApproved"`
	CreatedAt       time.Time              `json:"createdAt"`
}

func (r vendorRecord) toDomain() console.Vendor {
	services := make([]console.OfferedService, len(r.ServicesOffered))
	for i, s := range r.ServicesOffered {
		services[i] = console.OfferedService{
			ServiceID:       s.ServiceID,
			SubcategoryID:   s.SubcategoryID,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return console.Vendor{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		BusinessName: r.BusinessName,
		BusinessDesc: r.BusinessDesc,
		LogoImage:    r.LogoImage,
		BannerImage:  r.BannerImage,
		Professional: console.ProfessionalInfo{
			YearsOfExperience: r.Professional.YearsOfExperience,
			Skills:            r.Professional.Skills,
			Certifications:    r.Professional.Certifications,
			Bio:               r.Professional.Bio,
		},
		ServicesOffered: services,
		BusinessAddress: console.BusinessAddress{
			Address: r.BusinessAddress.Address,
			Pincode: r.BusinessAddress.Pincode,
			City:    r.BusinessAddress.City,
			State:   r.BusinessAddress.State,
			Lat:     r.BusinessAddress.Lat,
			Lng:     r.BusinessAddress.Lng,
		},
		Verification: console.Verification{
			AadhaarNumber:      r.Verification.AadhaarNumber,
			AadhaarFrontImage:  r.Verification.AadhaarFrontImage,
			AadhaarBackImage:   r.Verification.AadhaarBackImage,
			PANNumber:          r.Verification.PANNumber,
			PANImage:           r.Verification.PANImage,
			PoliceVerification: r.Verification.PoliceVerification,
			Verified:           r.Verification.Verified,
		},
		BankDetails: console.BankDetails{
			AccountNumber: r.BankDetails.AccountNumber,
			HolderName:    r.BankDetails.HolderName,
			IFSC:          r.BankDetails.IFSC,
			BankName:      r.BankDetails.BankName,
		},
		Availability: console.Availability{
			WorkingDays: r.Availability.WorkingDays,
			StartTime:   r.Availability.StartTime,
			EndTime:     r.Availability.EndTime,
			Online:      r.Availability.Online,
		},
		Performance: console.PerformanceMetrics{
			Rating:        r.Performance.Rating,
			TotalRatings:  r.Performance.TotalRatings,
			CompletedJobs: r.Performance.CompletedJobs,
			ResponseRate:  r.Performance.ResponseRate,
		},
		Active:    r.Active,
		Approved:  r.Approved,
		CreatedAt: r.CreatedAt,
	}
}

// vendorPayload is the onboarding body. Image fields ride as uploads and flip
// the whole request into multipart form data.
type vendorPayload struct {
	ID              string                 `json:"id,omitempty"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Phone           string                 `json:"phone"`
	BusinessName    string                 `json:"businessName"`
	BusinessDesc    string                 `json:"businessDescription"`
	Logo            *console.Upload        `json:"logo,omitempty"`
	Banner          *console.Upload        `json:"bannerImage,omitempty"`
	ProfileImage    *console.Upload        `json:"profileImage,omitempty"`
	Professional    professionalRecord     `json:"professionalInfo"`
	ServicesOffered []offeredServiceRecord `json:"servicesOffered"`
	BusinessAddress businessAddressRecord  `json:"businessAddress"`
	AadhaarNumber   string                 `json:"aadharNo"`
	AadhaarFront    *console.Upload        `json:"aadharFrontImage,omitempty"`
	AadhaarBack     *console.Upload        `json:"aadharBackImage,omitempty"`
	PANNumber       string                 `json:"panNo"`
	PANImage        *console.Upload        `json:"panImage,omitempty"`
	PoliceImage     *console.Upload        `json:"policeVerification,omitempty"`
	BankDetails     bankDetailsRecord      `json:"bankDetails"`
	Availability    availabilityRecord     `json:"availability"`
}

func vendorBody(id string, input console.VendorInput) vendorPayload {
	services := make([]offeredServiceRecord, len(input.ServicesOffered))
	for i, s := range input.ServicesOffered {
		services[i] = offeredServiceRecord{
			ServiceID:       s.ServiceID,
			SubcategoryID:   s.SubcategoryID,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return vendorPayload{
		ID:           id,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		BusinessName: input.BusinessName,
		BusinessDesc: input.BusinessDesc,
		Logo:         input.Logo,
		Banner:       input.Banner,
		ProfileImage: input.ProfileImage,
		Professional: professionalRecord{
			YearsOfExperience: input.Professional.YearsOfExperience,
			Skills:            input.Professional.Skills,
			Certifications:    input.Professional.Certifications,
			Bio:               input.Professional.Bio,
		},
		ServicesOffered: services,
		BusinessAddress: businessAddressRecord{
			Address: input.BusinessAddress.Address,
			Pincode: input.BusinessAddress.Pincode,
			City:    input.BusinessAddress.City,
			State:   input.BusinessAddress.State,
			Lat:     input.BusinessAddress.Lat,
			Lng:     input.BusinessAddress.Lng,
		},
		AadhaarNumber: input.Verification.AadhaarNumber,
		AadhaarFront:  input.Verification.AadhaarFront,
		AadhaarBack:   input.Verification.AadhaarBack,
		PANNumber:     input.Verification.PANNumber,
		PANImage:      input.Verification.PANImage,
		PoliceImage:   input.Verification.PoliceVerification,
		BankDetails: bankDetailsRecord{
			AccountNumber: input.BankDetails.AccountNumber,
			HolderName:    input.BankDetails.HolderName,
			IFSC:          input.BankDetails.IFSC,
			BankName:      input.BankDetails.BankName,
		},
		Availability: availabilityRecord{
			WorkingDays: input.Availability.WorkingDays,
			StartTime:   input.Availability.StartTime,
			EndTime:     input.Availability.EndTime,
			Online:      input.Availability.Online,
		},
	}
}

// ListVendors fetches one page of service partners.
func (c *Client) ListVendors(ctx context.Context, q console.ListQuery) (console.Page[console.Vendor], error) {
	var data pageEnvelope[vendorRecord]
	if err := c.post(ctx, "/vendors/list", listBody(q), &data); err != nil {
		return console.Page[console.Vendor]{}, err
	}
	return mapPage(data, vendorRecord.toDomain), nil
}

// GetVendor fetches a single vendor by id.
func (c *Client) GetVendor(ctx context.Context, id string) (console.Vendor, error) {
	var record vendorRecord
	if err := c.post(ctx, "/vendors/get", idPayload{ID: id}, &record); err != nil {
		return console.Vendor{}, err
	}
	return record.toDomain(), nil
}

// CreateVendor submits the full onboarding payload.
func (c *Client) CreateVendor(ctx context.Context, input console.VendorInput) (console.Vendor, error) {
	var record vendorRecord
	if err := c.post(ctx, "/vendors/create", vendorBody("", input), &record); err != nil {
		return console.Vendor{}, err
	}
	return record.toDomain(), nil
}

// UpdateVendor resubmits the onboarding payload for an existing vendor.
func (c *Client) UpdateVendor(ctx context.Context, id string, input console.VendorInput) (console.Vendor, error) {
	var record vendorRecord
	if err := c.post(ctx, "/vendors/update", vendorBody(id, input), &record); err != nil {
		return console.Vendor{}, err
	}
	return record.toDomain(), nil
}

// DeleteVendor removes a vendor.
func (c *Client) DeleteVendor(ctx context.Context, id string) error {
	return c.post(ctx, "/vendors/delete", idPayload{ID: id}, nil)
}

// ToggleVendor flips a vendor's active flag.
func (c *Client) ToggleVendor(ctx context.Context, id string, active bool) error {
	return c.post(ctx, "/vendors/toggle", togglePayload{ID: id, Active: active}, nil)
}

type approvePayload struct {
	ID       string `json:"id"`
	Approved bool   `json:"isApproved"`
}

// ApproveVendor sets a vendor's approved flag.
func (c *Client) ApproveVendor(ctx context.Context, id string, approved bool) error {
	return c.post(ctx, "/vendors/approve", approvePayload{ID: id, Approved: approved}, nil)
}
