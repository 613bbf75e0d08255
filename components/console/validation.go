package console

import (
	"regexp"
	"strings"
)

// FieldErrors maps draft field names to a human message. An empty map means
// the draft passed validation.
type FieldErrors map[string]string

// Has reports whether any field failed.
func (e FieldErrors) Has() bool { return len(e) > 0 }

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// ValidEmail checks the basic user@domain.tld shape.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// ValidPhone requires exactly 10 ASCII digits.
func ValidPhone(s string) bool { return phonePattern.MatchString(s) }

// ValidAadhaar requires exactly 12 ASCII digits.
func ValidAadhaar(s string) bool { return aadhaarPattern.MatchString(s) }

// ValidPAN requires 5 uppercase letters, 4 digits, 1 uppercase letter.
func ValidPAN(s string) bool { return panPattern.MatchString(s) }

// ValidPincode requires exactly 6 ASCII digits.
func ValidPincode(s string) bool { return pincodePattern.MatchString(s) }

// ValidIFSC requires 4 uppercase letters, a literal zero, then 6 alphanumerics.
func ValidIFSC(s string) bool { return ifscPattern.MatchString(s) }

// ValidateVendorInput applies the submission-time rules for the vendor
// onboarding form. Optional KYC/bank fields are validated only when present.
func ValidateVendorInput(in VendorInput) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}
	if !ValidEmail(in.Email) {
		errs["email"] = "enter a valid email address"
	}
	if !ValidPhone(in.Phone) {
		errs["phone"] = "phone must be exactly 10 digits"
	}
	if strings.TrimSpace(in.BusinessName) == "" {
		errs["businessName"] = "business name is required"
	}
	if v := in.Verification.AadhaarNumber; v != "" && !ValidAadhaar(v) {
		errs["aadhaarNumber"] = "Aadhaar number must be exactly 12 digits"
	}
	if v := in.Verification.PANNumber; v != "" && !ValidPAN(v) {
		errs["panNumber"] = "PAN must be 5 letters, 4 digits and a letter"
	}
	if v := in.BusinessAddress.Pincode; v != "" && !ValidPincode(v) {
		errs["pincode"] = "pincode must be exactly 6 digits"
	}
	if v := in.BankDetails.IFSC; v != "" && !ValidIFSC(v) {
		errs["ifsc"] = "enter a valid IFSC code"
	}
	return errs
}
