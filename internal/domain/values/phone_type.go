package values

import "strings"

// PhoneType represents the carrier-reported line type attached to a phone
// number by the enrichment vendor. Construction is total: any raw string is
// accepted and normalized (trimmed, case-folded) so that unknown vendor
// labels flow through filters instead of failing the batch.
type PhoneType struct {
	value string
}

// Well-known line types seen in enrichment exports
const (
	PhoneTypeMobile      = "mobile"
	PhoneTypeLandline    = "landline"
	PhoneTypeResidential = "residential"
	PhoneTypeVOIP        = "voip"
	PhoneTypeUnknown     = "unknown"
)

// NewPhoneType creates a PhoneType from a raw vendor label
func NewPhoneType(raw string) PhoneType {
	return PhoneType{value: strings.ToLower(strings.TrimSpace(raw))}
}

// String returns the normalized type label
func (t PhoneType) String() string {
	return t.value
}

// IsEmpty checks if the source label was empty or whitespace
func (t PhoneType) IsEmpty() bool {
	return t.value == ""
}

// IsMobile reports whether the normalized label equals exactly "mobile".
// This is an exact comparison, not a substring match: a vendor label like
// "Mobile Home" must not pass.
func (t PhoneType) IsMobile() bool {
	return t.value == PhoneTypeMobile
}

// Equal checks if two PhoneType values are equal
func (t PhoneType) Equal(other PhoneType) bool {
	return t.value == other.value
}
