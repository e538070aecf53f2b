package verification

// ApplicantForm carries the applicant's self-reported identity and intended
// visa category. It is externally validated before reaching the core; the
// core only compares it against extracted data.
type ApplicantForm struct {
	FullName       string
	PassportNumber string
	DateOfBirth    string
	Nationality    string
	VisaCategory   string
}

// Policy holds caller-supplied eligibility constraints. Every constraint is
// optional; nil or empty means "not configured" and the corresponding rule
// is skipped.
type Policy struct {
	MinAge               *int
	MaxAge               *int
	AllowedNationalities []string
	BlockedNationalities []string

	// MinPassportValidityMonths is the minimum remaining validity required
	// at evaluation time, in whole months.
	MinPassportValidityMonths *int

	// VisaRequirements is opaque to the core: keyed by visa category, it is
	// carried through for callers but never interpreted beyond presence.
	VisaRequirements map[string][]string
}
