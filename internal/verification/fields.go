// Package verification cross-validates identity data extracted from a travel
// document against an applicant's self-reported form and an eligibility
// policy, producing graded checks, an eligibility outcome, and an actionable
// recommendation. Every function here is pure: no I/O, no shared state, safe
// for concurrent callers.
package verification

import (
	"fmt"

	dErrors "attesto/pkg/domain-errors"
)

// FieldName enumerates the extracted fields the core understands. Keeping
// the set closed avoids the untyped-dictionary trap: unknown names are
// rejected at the boundary instead of silently ignored downstream.
type FieldName string

const (
	FieldDocumentNumber FieldName = "documentNumber"
	FieldFullName       FieldName = "fullName"
	FieldDateOfBirth    FieldName = "dateOfBirth"
	FieldDateOfIssue    FieldName = "dateOfIssue"
	FieldExpiryDate     FieldName = "expiryDate"
	FieldNationality    FieldName = "nationality"
	FieldIssuingCountry FieldName = "issuingCountry"
	FieldSex            FieldName = "sex"
	FieldPlaceOfBirth   FieldName = "placeOfBirth"
)

// KnownFieldNames lists every field the core accepts, in a stable order.
var KnownFieldNames = []FieldName{
	FieldDocumentNumber,
	FieldFullName,
	FieldDateOfBirth,
	FieldDateOfIssue,
	FieldExpiryDate,
	FieldNationality,
	FieldIssuingCountry,
	FieldSex,
	FieldPlaceOfBirth,
}

// ParseFieldName validates a raw field name against the closed enumeration.
func ParseFieldName(raw string) (FieldName, error) {
	for _, name := range KnownFieldNames {
		if string(name) == raw {
			return name, nil
		}
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown field name %q", raw))
}

// ExtractedField is a value paired with the extraction confidence (0-100)
// reported by whichever source produced it. Immutable once produced.
type ExtractedField struct {
	Value      string
	Confidence float64
}

// Fields maps known field names to their extracted values.
type Fields map[FieldName]ExtractedField
