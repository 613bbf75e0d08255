package console

import (
	"context"
	"strings"
	"testing"
)

type fakeVendorDirectory struct {
	vendors map[string]Vendor
	created []VendorInput
	updated map[string]VendorInput
}

func newFakeVendorDirectory() *fakeVendorDirectory {
	return &fakeVendorDirectory{
		vendors: map[string]Vendor{},
		updated: map[string]VendorInput{},
	}
}

func (d *fakeVendorDirectory) ListVendors(_ context.Context, _ ListQuery) (Page[Vendor], error) {
	out := make([]Vendor, 0, len(d.vendors))
	for _, v := range d.vendors {
		out = append(out, v)
	}
	return Page[Vendor]{Records: out, CurrentPage: 1, TotalPages: 1, TotalRecords: len(out)}, nil
}

func (d *fakeVendorDirectory) GetVendor(_ context.Context, id string) (Vendor, error) {
	return d.vendors[id], nil
}

func (d *fakeVendorDirectory) CreateVendor(_ context.Context, input VendorInput) (Vendor, error) {
	d.created = append(d.created, input)
	return Vendor{ID: "v-new", Name: input.Name, Phone: input.Phone}, nil
}

func (d *fakeVendorDirectory) UpdateVendor(_ context.Context, id string, input VendorInput) (Vendor, error) {
	d.updated[id] = input
	return Vendor{ID: id, Name: input.Name, Phone: input.Phone}, nil
}

func (d *fakeVendorDirectory) DeleteVendor(context.Context, string) error        { return nil }
func (d *fakeVendorDirectory) ToggleVendor(context.Context, string, bool) error  { return nil }
func (d *fakeVendorDirectory) ApproveVendor(context.Context, string, bool) error { return nil }

func validVendorDraft() VendorInput {
	return VendorInput{
		Name:         "Ravi Kumar",
		Email:        "ravi@example.com",
		Phone:        "9876543210",
		BusinessName: "Kumar Plumbing Works",
		Verification: VerificationInput{
			AadhaarNumber: "123456789012",
			PANNumber:     "ABCDE1234F",
		},
		BusinessAddress: BusinessAddress{Pincode: "560001"},
		BankDetails:     BankDetails{IFSC: "HDFC0001234"},
	}
}

func TestVendorFormStepsClamp(t *testing.T) {
	form := NewVendorForm(newFakeVendorDirectory())
	if got := len(form.Steps()); got != 7 {
		t.Fatalf("expected 7 onboarding steps, got %d", got)
	}
	form.Prev()
	if form.Step() != 0 {
		t.Fatalf("Prev at first step must stay at 0, got %d", form.Step())
	}
	for i := 0; i < 20; i++ {
		form.Next()
	}
	if form.Step() != 6 {
		t.Fatalf("Next past the last step must clamp, got %d", form.Step())
	}
	if form.StepName() != StepAvailability {
		t.Fatalf("expected last step %q, got %q", StepAvailability, form.StepName())
	}
}

func TestVendorEditFormAddsPerformanceStep(t *testing.T) {
	dir := newFakeVendorDirectory()
	form := NewVendorEditForm(dir, Vendor{ID: "v1", Name: "Ravi Kumar", Phone: "9876543210"})
	steps := form.Steps()
	if len(steps) != 8 {
		t.Fatalf("expected 8 edit steps, got %d", len(steps))
	}
	if steps[len(steps)-1] != StepPerformance {
		t.Fatalf("expected trailing metrics step, got %q", steps[len(steps)-1])
	}
	if form.Draft.Name != "Ravi Kumar" {
		t.Fatalf("expected prefilled draft, got %#v", form.Draft)
	}
}

func TestVendorFormSubmitRejectsWithoutNetwork(t *testing.T) {
	dir := newFakeVendorDirectory()
	form := NewVendorForm(dir)
	form.Draft = validVendorDraft()
	form.Draft.Phone = "12345"
	form.Draft.Verification.AadhaarNumber = "99"
	form.Draft.Verification.PANNumber = "abc"

	_, err := form.Submit(context.Background())
	if err == nil {
		t.Fatal("expected submit to fail validation")
	}
	if len(dir.created) != 0 || len(dir.updated) != 0 {
		t.Fatal("invalid draft must never reach the directory")
	}
	for _, field := range []string{"phone", "aadhaarNumber", "panNumber"} {
		if _, ok := form.Errors[field]; !ok {
			t.Fatalf("expected field error for %s, got %v", field, form.Errors)
		}
	}
	if _, ok := form.Errors["name"]; ok {
		t.Fatalf("valid fields must not carry errors: %v", form.Errors)
	}
}

func TestVendorFormSubmitCreates(t *testing.T) {
	dir := newFakeVendorDirectory()
	form := NewVendorForm(dir)
	form.Draft = validVendorDraft()

	saved, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if saved.ID != "v-new" {
		t.Fatalf("expected created vendor, got %#v", saved)
	}
	if len(dir.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(dir.created))
	}
}

func TestVendorFormSubmitUpdatesInEditMode(t *testing.T) {
	dir := newFakeVendorDirectory()
	form := NewVendorEditForm(dir, Vendor{ID: "v7", Name: "Ravi Kumar", Email: "ravi@example.com", Phone: "9876543210", BusinessName: "Kumar Plumbing Works"})
	form.Draft.BusinessDesc = "Residential plumbing"

	_, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if len(dir.created) != 0 {
		t.Fatal("edit mode must not create")
	}
	input, ok := dir.updated["v7"]
	if !ok {
		t.Fatalf("expected update for v7, got %v", dir.updated)
	}
	if input.BusinessDesc != "Residential plumbing" {
		t.Fatalf("draft change not submitted: %#v", input)
	}
}

func TestVendorFormAttachPreview(t *testing.T) {
	form := NewVendorForm(newFakeVendorDirectory())
	key := form.AttachPreview("logo")
	if !strings.HasPrefix(key, "blob:") {
		t.Fatalf("expected blob-prefixed preview key, got %q", key)
	}
	got, ok := form.Preview("logo")
	if !ok || got != key {
		t.Fatalf("expected stored preview %q, got %q (%v)", key, got, ok)
	}
	if _, ok := form.Preview("banner"); ok {
		t.Fatal("unattached field must have no preview")
	}
}
