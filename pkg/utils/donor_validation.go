package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// DonorInput is the raw donor form submission before normalization.
type DonorInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// DonorInfo is the normalized donor record. It lives for one request only
// and is never persisted.
type DonorInfo struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// FieldErrors maps a field name to a human-readable validation message.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

var nonDigits = regexp.MustCompile(`\D`)

// ValidateEmail returns an empty string when the address is acceptable,
// otherwise the message to show the donor.
func ValidateEmail(email string) string {
	trimmed := strings.TrimSpace(email)

	if trimmed == "" {
		return "Email is required"
	}

	if !emailPattern.MatchString(trimmed) {
		return "Please provide a valid email address"
	}

	if len(trimmed) > 254 {
		return "Email address is too long"
	}

	if strings.HasPrefix(trimmed, ".") || strings.HasSuffix(trimmed, ".") {
		return "Email address may not start or end with a dot"
	}

	if strings.Contains(trimmed, "..") {
		return "Email address may not contain consecutive dots"
	}

	at := strings.Index(trimmed, "@")
	localPart := trimmed[:at]
	domain := trimmed[at+1:]

	if len(localPart) > 64 {
		return "Email address username is too long"
	}

	if len(domain) < 4 {
		return "Please provide a valid domain"
	}

	domainParts := strings.Split(domain, ".")
	tld := domainParts[len(domainParts)-1]
	if len(tld) < 2 {
		return "Please provide a valid domain extension"
	}

	return ""
}

// NormalizePhone strips everything that is not a digit and truncates to the
// 10-digit local format. Truncation mirrors the input layer: over-long digit
// strings are cut, not rejected.
func NormalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return digits
}

// ValidatePhone normalizes and validates a phone number. The returned string
// is the digits-only form when the message is empty.
func ValidatePhone(phone string) (string, string) {
	digits := NormalizePhone(phone)

	if digits == "" {
		return "", "Phone number is required"
	}

	if !strings.HasPrefix(digits, "0") {
		return "", "Phone number must start with 0"
	}

	if len(digits) < 10 {
		return "", "Phone number must be 10 digits"
	}

	return digits, ""
}

// ValidateDonor applies the full donor contract and either returns a
// normalized DonorInfo or the per-field error map. It is pure: no I/O, no
// panics.
func ValidateDonor(input DonorInput) (*DonorInfo, FieldErrors) {
	fieldErrors := FieldErrors{}

	email := strings.TrimSpace(input.Email)
	if msg := ValidateEmail(input.Email); msg != "" {
		fieldErrors["email"] = msg
	}

	firstName := strings.TrimSpace(input.FirstName)
	if firstName == "" {
		fieldErrors["firstName"] = "First name is required"
	}

	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		fieldErrors["lastName"] = "Last name is required"
	}

	phone, phoneMsg := ValidatePhone(input.Phone)
	if phoneMsg != "" {
		fieldErrors["phone"] = phoneMsg
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &DonorInfo{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}, nil
}

// FormatPhoneNumber renders a normalized number for display: "0828322321"
// becomes "082 832 2321".
func FormatPhoneNumber(phone string) string {
	digits := NormalizePhone(phone)

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + " " + digits[3:]
	default:
		return digits[:3] + " " + digits[3:6] + " " + digits[6:]
	}
}

// FormatAmount renders a whole-unit ZAR amount the way the plan names do,
// e.g. 1000 -> "R1,000".
func FormatAmount(amount int) string {
	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "R" + b.String()
}
