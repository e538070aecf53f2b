package verification

import (
	"fmt"
	"math"
)

// allPassedReason is the closing reason appended when every check passed.
const allPassedReason = "All validation checks passed"

// Outcome is the aggregated eligibility verdict. Derived from the check
// list on every call; never persisted.
type Outcome struct {
	Eligible   bool
	Confidence int
	Reasons    []string
}

// Assess folds a check list into the eligibility verdict. The decision is
// entirely check-list-driven: eligible iff no check failed, confidence
// computed as round(100 * (passes + 0.5*warnings) / total). form and policy
// are accepted for parity with the validator's inputs but contribute no
// decision signal.
//
// An empty check list yields confidence 0 with eligible=true ("no evidence
// of failure"); the all-passed reason is withheld because nothing actually
// passed. This pairing is deliberate and pinned by tests.
func Assess(checks []Check, form *ApplicantForm, policy *Policy) Outcome {
	_ = form
	_ = policy

	var passCount, warnCount, failCount int
	for _, c := range checks {
		switch c.Status {
		case StatusPass:
			passCount++
		case StatusWarning:
			warnCount++
		case StatusFail:
			failCount++
		}
	}

	total := len(checks)
	if total == 0 {
		total = 1
	}
	confidence := int(math.Round(100 * (float64(passCount) + 0.5*float64(warnCount)) / float64(total)))

	eligible := failCount == 0

	// Fails first, then warnings, then the all-passed sentence. Rank order
	// matters to consumers reading the top reason.
	var reasons []string
	for _, c := range checks {
		if c.Status == StatusFail {
			reasons = append(reasons, fmt.Sprintf("%s: %s", c.Field, c.Message))
		}
	}
	for _, c := range checks {
		if c.Status == StatusWarning {
			reasons = append(reasons, fmt.Sprintf("Warning - %s: %s", c.Field, c.Message))
		}
	}
	if eligible && passCount > 0 {
		reasons = append(reasons, allPassedReason)
	}

	return Outcome{
		Eligible:   eligible,
		Confidence: confidence,
		Reasons:    reasons,
	}
}
