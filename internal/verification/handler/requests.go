package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"attesto/internal/verification"
	dErrors "attesto/pkg/domain-errors"
)

var validate = validator.New()

// VerifyRequest is the HTTP request body for POST /v1/verify.
type VerifyRequest struct {
	OCRText       string                  `json:"ocr_text"`
	OCRConfidence float64                 `json:"ocr_confidence" validate:"gte=0,lte=100"`
	Fields        map[string]FieldPayload `json:"fields" validate:"dive"`
	ApplicantForm *ApplicantFormPayload   `json:"applicant_form,omitempty"`
	Policy        *PolicyPayload          `json:"policy,omitempty"`

	// Parsed request (populated by Validate)
	parsed verification.Request
}

// FieldPayload is one extracted field with its confidence.
type FieldPayload struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=100"`
}

// ApplicantFormPayload carries the applicant's self-reported data.
type ApplicantFormPayload struct {
	FullName       string `json:"full_name"`
	PassportNumber string `json:"passport_number" validate:"max=20"`
	DateOfBirth    string `json:"date_of_birth" validate:"max=10"`
	Nationality    string `json:"nationality" validate:"max=64"`
	VisaCategory   string `json:"visa_category" validate:"max=64"`
}

// PolicyPayload carries the optional eligibility constraints.
type PolicyPayload struct {
	MinAge                    *int                `json:"min_age,omitempty" validate:"omitempty,gte=0,lte=150"`
	MaxAge                    *int                `json:"max_age,omitempty" validate:"omitempty,gte=0,lte=150"`
	AllowedNationalities      []string            `json:"allowed_nationalities,omitempty"`
	BlockedNationalities      []string            `json:"blocked_nationalities,omitempty"`
	MinPassportValidityMonths *int                `json:"min_passport_validity_months,omitempty" validate:"omitempty,gte=0,lte=240"`
	VisaRequirements          map[string][]string `json:"visa_requirements,omitempty"`
}

// Validate validates and parses the request. Implements the Validatable
// interface for httputil.DecodeAndPrepare.
func (r *VerifyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "request failed validation")
	}

	r.OCRText = strings.TrimSpace(r.OCRText)
	if r.OCRText == "" && len(r.Fields) == 0 {
		return dErrors.New(dErrors.CodeValidation, "either ocr_text or fields is required")
	}

	fields := make(verification.Fields, len(r.Fields))
	for raw, payload := range r.Fields {
		name, err := verification.ParseFieldName(raw)
		if err != nil {
			return err
		}
		fields[name] = verification.ExtractedField{
			Value:      payload.Value,
			Confidence: payload.Confidence,
		}
	}

	r.parsed = verification.Request{
		OCRText:       r.OCRText,
		OCRConfidence: r.OCRConfidence,
		Fields:        fields,
		Form:          r.ApplicantForm.toDomain(),
		Policy:        r.Policy.toDomain(),
	}
	return nil
}

// Parsed returns the validated domain request.
func (r *VerifyRequest) Parsed() verification.Request {
	return r.parsed
}

func (p *ApplicantFormPayload) toDomain() *verification.ApplicantForm {
	if p == nil {
		return nil
	}
	return &verification.ApplicantForm{
		FullName:       p.FullName,
		PassportNumber: p.PassportNumber,
		DateOfBirth:    p.DateOfBirth,
		Nationality:    p.Nationality,
		VisaCategory:   p.VisaCategory,
	}
}

func (p *PolicyPayload) toDomain() *verification.Policy {
	if p == nil {
		return nil
	}
	return &verification.Policy{
		MinAge:                    p.MinAge,
		MaxAge:                    p.MaxAge,
		AllowedNationalities:      p.AllowedNationalities,
		BlockedNationalities:      p.BlockedNationalities,
		MinPassportValidityMonths: p.MinPassportValidityMonths,
		VisaRequirements:          p.VisaRequirements,
	}
}
