package types

// ContactInfo holds best-effort contact details pulled from the resume.
// Every field is optional; absence is not an error.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	City     string `json:"city,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
}

// IsZero reports whether no contact field was extracted.
func (c ContactInfo) IsZero() bool {
	return c == ContactInfo{}
}
