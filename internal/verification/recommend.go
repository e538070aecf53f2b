package verification

import (
	"fmt"
	"strings"
)

// Confidence bands used by recommendations and summaries.
const (
	confidenceHigh     = 80
	confidenceModerate = 60
)

// Recommend maps the eligibility outcome and the overall extraction
// confidence to an ordered action list. The mapping is deterministic:
// identical inputs always produce identical actions.
func Recommend(outcome Outcome, overallConfidence int, checks []Check) []string {
	var actions []string

	switch {
	case !outcome.Eligible:
		actions = append(actions, "REJECT APPLICATION - Applicant does not meet eligibility requirements")
		for _, c := range checks {
			if c.Status == StatusFail {
				actions = append(actions, "Resolve: "+c.Field)
			}
		}
	case overallConfidence < confidenceModerate:
		actions = append(actions,
			"MANUAL REVIEW REQUIRED - Low extraction confidence",
			"Request higher quality document images from the applicant",
		)
	case overallConfidence < confidenceHigh || outcome.Confidence < confidenceHigh:
		actions = append(actions, "MANUAL REVIEW RECOMMENDED - Moderate confidence in verification")
		if hasWarnings(checks) {
			actions = append(actions, "Verify discrepancies manually")
		}
	default:
		actions = append(actions,
			"APPROVE - All checks passed with high confidence",
			"Proceed with visa processing",
		)
	}

	return actions
}

// Summarize renders the one-paragraph verification summary from the decoded
// identity, the outcome, and the extraction confidence.
func Summarize(docType, docNumber, name, nationality string, outcome Outcome, overallConfidence int) string {
	status := "NOT ELIGIBLE"
	if outcome.Eligible {
		status = "ELIGIBLE"
	}

	failCount := 0
	for _, r := range outcome.Reasons {
		if r != allPassedReason && !strings.HasPrefix(r, "Warning - ") {
			failCount++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Verified %s %s for %s (%s). Applicant is %s for visa processing with %s confidence (%d%%).",
		orUnknown(docType), orUnknown(docNumber), orUnknown(name), orUnknown(nationality),
		status, confidenceBand(outcome.Confidence), outcome.Confidence)

	if failCount == 0 {
		b.WriteString(" All validation checks passed.")
	} else {
		fmt.Fprintf(&b, " %d issue(s) require attention.", failCount)
	}

	if overallConfidence < confidenceHigh {
		b.WriteString(" Manual review is advised due to extraction confidence.")
	}

	return b.String()
}

func confidenceBand(confidence int) string {
	switch {
	case confidence >= confidenceHigh:
		return "HIGH"
	case confidence >= confidenceModerate:
		return "MODERATE"
	default:
		return "LOW"
	}
}

func hasWarnings(checks []Check) bool {
	for _, c := range checks {
		if c.Status == StatusWarning {
			return true
		}
	}
	return false
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
