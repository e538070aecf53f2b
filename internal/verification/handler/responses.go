package handler

import (
	"attesto/internal/mrz"
	"attesto/internal/verification"
)

// VerifyResponse is the HTTP response for POST /v1/verify.
type VerifyResponse struct {
	OverallConfidence int                      `json:"overall_confidence"`
	DocumentType      string                   `json:"document_type,omitempty"`
	Fields            map[string]FieldPayload  `json:"fields"`
	MRZ               *MRZResponse             `json:"mrz,omitempty"`
	Checks            []CheckResponse          `json:"checks"`
	Eligibility       EligibilityResponse      `json:"eligibility"`
	RecommendedAction []string                 `json:"recommended_actions"`
	Summary           string                   `json:"summary"`
}

// MRZResponse is the decoded MRZ portion of the response.
type MRZResponse struct {
	Format         string `json:"format"`
	DocumentType   string `json:"document_type"`
	IssuingCountry string `json:"issuing_country"`
	DocumentNumber string `json:"document_number"`
	DateOfBirth    string `json:"date_of_birth"`
	ExpiryDate     string `json:"expiry_date"`
	Nationality    string `json:"nationality"`
	Surname        string `json:"surname"`
	GivenNames     string `json:"given_names"`
	Sex            string `json:"sex"`
	ChecksumValid  bool   `json:"checksum_valid"`
}

// CheckResponse is one graded validation check.
type CheckResponse struct {
	Field   string `json:"field"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// EligibilityResponse is the aggregated verdict.
type EligibilityResponse struct {
	Eligible   bool     `json:"eligible"`
	Confidence int      `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// FromResult converts a domain Result to an HTTP response.
func FromResult(result *verification.Result) *VerifyResponse {
	fields := make(map[string]FieldPayload, len(result.Fields))
	for name, f := range result.Fields {
		fields[string(name)] = FieldPayload{Value: f.Value, Confidence: f.Confidence}
	}

	checks := make([]CheckResponse, 0, len(result.Checks))
	for _, c := range result.Checks {
		checks = append(checks, CheckResponse{
			Field:   c.Field,
			Status:  string(c.Status),
			Message: c.Message,
		})
	}

	return &VerifyResponse{
		OverallConfidence: result.OverallConfidence,
		DocumentType:      result.DocumentType,
		Fields:            fields,
		MRZ:               fromRecord(result.MRZ),
		Checks:            checks,
		Eligibility: EligibilityResponse{
			Eligible:   result.Outcome.Eligible,
			Confidence: result.Outcome.Confidence,
			Reasons:    result.Outcome.Reasons,
		},
		RecommendedAction: result.Actions,
		Summary:           result.Summary,
	}
}

func fromRecord(rec *mrz.Record) *MRZResponse {
	if rec == nil {
		return nil
	}
	return &MRZResponse{
		Format:         string(rec.Format),
		DocumentType:   rec.DocumentType,
		IssuingCountry: rec.IssuingCountry,
		DocumentNumber: rec.DocumentNumber,
		DateOfBirth:    rec.DateOfBirth,
		ExpiryDate:     rec.ExpiryDate,
		Nationality:    rec.Nationality,
		Surname:        rec.Surname,
		GivenNames:     rec.GivenNames,
		Sex:            rec.Sex,
		ChecksumValid:  rec.ChecksumValid,
	}
}
