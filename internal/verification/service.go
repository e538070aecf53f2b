package verification

import (
	"context"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"attesto/internal/mrz"
	"attesto/internal/verification/metrics"
	dErrors "attesto/pkg/domain-errors"
	"attesto/pkg/requestcontext"
)

// Request is the single input to a verification pass. OCRText and Fields
// come from the extraction pipeline; Form and Policy are optional
// caller-supplied inputs.
type Request struct {
	OCRText string

	// OCRConfidence is the engine-reported overall confidence (0-100), used
	// only as a fallback when no field carries its own confidence.
	OCRConfidence float64

	Fields Fields
	Form   *ApplicantForm
	Policy *Policy
}

// Result is the terminal aggregate of one verification pass. Assembled once
// and returned; never mutated afterwards.
type Result struct {
	OverallConfidence int
	DocumentType      string
	Fields            Fields
	MRZ               *mrz.Record
	Checks            []Check
	Outcome           Outcome
	Actions           []string
	Summary           string
}

// Service runs verification passes. It holds no request state; a single
// instance serves concurrent callers without synchronization.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// NewService constructs a verification service. logger and m may be nil in
// tests.
func NewService(logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("attesto/verification"),
	}
}

// Verify runs the full pipeline: MRZ line selection and decoding, cross
// validation, eligibility assessment, and recommendation. Absent MRZ data,
// unparseable dates, and missing optional inputs all degrade to reported
// checks; the only error path is a request with nothing to verify.
func (s *Service) Verify(ctx context.Context, req Request) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Verify")
	defer span.End()

	start := time.Now()
	now := requestcontext.Now(ctx)

	if req.OCRText == "" && len(req.Fields) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "nothing to verify: no OCR text and no extracted fields")
	}

	// MRZ decoding and confidence aggregation are independent; run them the
	// way the evidence sources are gathered elsewhere. Both are pure, so the
	// group exists for shape, not safety.
	var (
		rec     *mrz.Record
		overall int
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec = mrz.Decode(mrz.ScanLines(req.OCRText))
		return nil
	})
	g.Go(func() error {
		overall = overallConfidence(req.Fields, req.OCRConfidence)
		return nil
	})
	_ = g.Wait()

	s.metrics.IncrementDecode(decodeLabel(rec))

	checks := CrossValidate(now, req.Fields, rec, req.Form, req.Policy)
	outcome := Assess(checks, req.Form, req.Policy)
	actions := Recommend(outcome, overall, checks)

	docType := documentTypeLabel(rec)
	summary := Summarize(docType, summaryDocNumber(rec, req.Fields), summaryName(rec, req.Fields),
		summaryNationality(rec, req.Fields), outcome, overall)

	result := &Result{
		OverallConfidence: overall,
		DocumentType:      docType,
		Fields:            req.Fields,
		MRZ:               rec,
		Checks:            checks,
		Outcome:           outcome,
		Actions:           actions,
		Summary:           summary,
	}

	span.SetAttributes(
		attribute.Bool("verification.eligible", outcome.Eligible),
		attribute.Int("verification.confidence", outcome.Confidence),
		attribute.String("verification.mrz_format", decodeLabel(rec)),
	)

	eligible := "false"
	if outcome.Eligible {
		eligible = "true"
	}
	s.metrics.IncrementOutcome(eligible)
	s.metrics.ObserveVerifyLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "verification completed",
			"request_id", requestcontext.RequestID(ctx),
			"eligible", outcome.Eligible,
			"confidence", outcome.Confidence,
			"overall_confidence", overall,
			"mrz_format", decodeLabel(rec),
			"checks", len(checks),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	return result, nil
}

// overallConfidence averages the per-field confidences; with no fields it
// falls back to the OCR engine's overall figure.
func overallConfidence(fields Fields, ocrConfidence float64) int {
	if len(fields) == 0 {
		return clampConfidence(int(math.Round(ocrConfidence)))
	}
	sum := 0.0
	for _, f := range fields {
		sum += f.Confidence
	}
	return clampConfidence(int(math.Round(sum / float64(len(fields)))))
}

func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

func decodeLabel(rec *mrz.Record) string {
	if rec == nil {
		return "none"
	}
	switch rec.Format {
	case mrz.FormatTD1:
		return "td1"
	case mrz.FormatTD3:
		return "td3"
	}
	return "none"
}

func documentTypeLabel(rec *mrz.Record) string {
	if rec == nil {
		return ""
	}
	switch {
	case len(rec.DocumentType) > 0 && rec.DocumentType[0] == 'P':
		return "Passport"
	case len(rec.DocumentType) > 0 && rec.DocumentType[0] == 'I':
		return "Identity Card"
	default:
		return "Travel Document"
	}
}

func summaryDocNumber(rec *mrz.Record, fields Fields) string {
	if rec != nil && rec.DocumentNumber != "" {
		return rec.DocumentNumber
	}
	return fields[FieldDocumentNumber].Value
}

func summaryName(rec *mrz.Record, fields Fields) string {
	if rec != nil && rec.Surname != "" {
		if rec.GivenNames != "" {
			return rec.GivenNames + " " + rec.Surname
		}
		return rec.Surname
	}
	return fields[FieldFullName].Value
}

func summaryNationality(rec *mrz.Record, fields Fields) string {
	if rec != nil && rec.Nationality != "" {
		return rec.Nationality
	}
	return fields[FieldNationality].Value
}
