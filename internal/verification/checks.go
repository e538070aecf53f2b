package verification

// CheckStatus grades a single validation rule result. Fail outranks warning
// outranks pass wherever rank matters.
type CheckStatus string

const (
	StatusPass    CheckStatus = "pass"
	StatusWarning CheckStatus = "warning"
	StatusFail    CheckStatus = "fail"
)

// Check records the result of one validation rule: the field (or policy
// aspect) it examined, the graded status, and a human-readable message.
type Check struct {
	Field   string
	Status  CheckStatus
	Message string
}

// Check field labels. Stable strings: they appear in reasons, recommended
// actions, and API responses.
const (
	labelDateOfBirthFormat = "Date of Birth Format"
	labelExpiryDateFormat  = "Expiry Date Format"
	labelDocumentExpiry    = "Document Expiry"
	labelMRZChecksum       = "MRZ Checksum"
	labelDocumentNumber    = "Document Number Consistency"
	labelName              = "Name Consistency"
	labelPassportNumber    = "Passport Number Match"
	labelDateOfBirth       = "Date of Birth Match"
	labelAge               = "Age Requirement"
	labelNationality       = "Nationality Requirement"
	labelValidity          = "Passport Validity"
)
