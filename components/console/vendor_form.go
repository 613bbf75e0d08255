package console

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// VendorFormMode distinguishes onboarding from editing. Edit mode prefills
// the draft from the fetched record and appends the read-only metrics step.
type VendorFormMode int

const (
	VendorFormCreate VendorFormMode = iota
	VendorFormEdit
)

// Wizard step names, in display order.
const (
	StepPersonalInfo    = "Personal Info"
	StepBusinessDetails = "Business Details"
	StepProfessional    = "Professional Info"
	StepBusinessAddress = "Business Address"
	StepVerification    = "Verification Details"
	StepBankDetails     = "Bank Details"
	StepAvailability    = "Availability"
	StepPerformance     = "Performance Metrics"
)

var createSteps = []string{
	StepPersonalInfo,
	StepBusinessDetails,
	StepProfessional,
	StepBusinessAddress,
	StepVerification,
	StepBankDetails,
	StepAvailability,
}

// VendorForm is the multi-step onboarding/edit wizard. The draft is a
// superset of every step's fields held simultaneously; steps only change
// which fields are displayed. Validation runs once, at Submit.
type VendorForm struct {
	mode     VendorFormMode
	vendorID string
	steps    []string
	step     int

	Draft  VendorInput
	Errors FieldErrors

	previews map[string]string
	dir      VendorDirectory
}

// NewVendorForm starts a blank onboarding wizard.
func NewVendorForm(dir VendorDirectory) *VendorForm {
	return &VendorForm{
		mode:     VendorFormCreate,
		steps:    createSteps,
		Errors:   FieldErrors{},
		previews: map[string]string{},
		dir:      dir,
	}
}

// NewVendorEditForm starts an edit wizard prefilled from an existing vendor.
func NewVendorEditForm(dir VendorDirectory, v Vendor) *VendorForm {
	f := NewVendorForm(dir)
	f.mode = VendorFormEdit
	f.vendorID = v.ID
	f.steps = append(append([]string{}, createSteps...), StepPerformance)
	f.Draft = VendorInput{
		Name:            v.Name,
		Email:           v.Email,
		Phone:           v.Phone,
		BusinessName:    v.BusinessName,
		BusinessDesc:    v.BusinessDesc,
		Professional:    v.Professional,
		ServicesOffered: append([]OfferedService{}, v.ServicesOffered...),
		BusinessAddress: v.BusinessAddress,
		Verification: VerificationInput{
			AadhaarNumber: v.Verification.AadhaarNumber,
			PANNumber:     v.Verification.PANNumber,
		},
		BankDetails:  v.BankDetails,
		Availability: v.Availability,
	}
	return f
}

// Steps returns the ordered step names for the active mode.
func (f *VendorForm) Steps() []string { return append([]string{}, f.steps...) }

// Step returns the current zero-based step index.
func (f *VendorForm) Step() int { return f.step }

// StepName returns the display name of the current step.
func (f *VendorForm) StepName() string { return f.steps[f.step] }

// Next advances one step, clamped to the last step.
func (f *VendorForm) Next() {
	if f.step < len(f.steps)-1 {
		f.step++
	}
}

// Prev goes back one step, clamped to step zero.
func (f *VendorForm) Prev() {
	if f.step > 0 {
		f.step--
	}
}

// AttachPreview registers an ephemeral preview key for a just-selected file
// field so the UI can show the image before submission. The key is not a
// resolvable URL; ImageResolver rejects it.
func (f *VendorForm) AttachPreview(field string) string {
	key := "blob:" + uuid.NewString()
	f.previews[field] = key
	return key
}

// Preview returns the preview key for a file field, if one was attached.
func (f *VendorForm) Preview(field string) (string, bool) {
	key, ok := f.previews[field]
	return key, ok
}

// Submit validates the full draft regardless of the displayed step. On any
// failure it records field errors and returns without touching the network;
// otherwise it invokes create or update and reports the saved vendor.
func (f *VendorForm) Submit(ctx context.Context) (Vendor, error) {
	f.Errors = ValidateVendorInput(f.Draft)
	if f.Errors.Has() {
		return Vendor{}, fmt.Errorf("console: vendor form has %d invalid fields", len(f.Errors))
	}
	if f.dir == nil {
		return Vendor{}, fmt.Errorf("console: vendor form requires a directory")
	}
	if f.mode == VendorFormEdit {
		v, err := f.dir.UpdateVendor(ctx, f.vendorID, f.Draft)
		if err != nil {
			return Vendor{}, fmt.Errorf("console: update vendor: %w", err)
		}
		return v, nil
	}
	v, err := f.dir.CreateVendor(ctx, f.Draft)
	if err != nil {
		return Vendor{}, fmt.Errorf("console: create vendor: %w", err)
	}
	return v, nil
}
