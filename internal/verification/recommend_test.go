package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	t.Run("ineligible yields reject plus one bullet per failed check", func(t *testing.T) {
		checks := []Check{
			{"Document Expiry", StatusFail, "expired"},
			{"MRZ Checksum", StatusPass, "ok"},
			{"Age Requirement", StatusFail, "too young"},
		}
		outcome := Outcome{Eligible: false, Confidence: 33}

		actions := Recommend(outcome, 90, checks)
		require.Len(t, actions, 3)
		assert.Contains(t, actions[0], "REJECT APPLICATION")
		assert.Equal(t, "Resolve: Document Expiry", actions[1])
		assert.Equal(t, "Resolve: Age Requirement", actions[2])
	})

	t.Run("low overall confidence requires manual review", func(t *testing.T) {
		outcome := Outcome{Eligible: true, Confidence: 100}
		actions := Recommend(outcome, 45, nil)
		require.Len(t, actions, 2)
		assert.Contains(t, actions[0], "MANUAL REVIEW REQUIRED")
		assert.Contains(t, actions[1], "higher quality")
	})

	t.Run("moderate overall confidence recommends review", func(t *testing.T) {
		outcome := Outcome{Eligible: true, Confidence: 100}
		actions := Recommend(outcome, 70, nil)
		require.Len(t, actions, 1)
		assert.Contains(t, actions[0], "MANUAL REVIEW RECOMMENDED")
	})

	t.Run("moderate eligibility confidence recommends review even with high extraction", func(t *testing.T) {
		outcome := Outcome{Eligible: true, Confidence: 75}
		actions := Recommend(outcome, 95, nil)
		require.NotEmpty(t, actions)
		assert.Contains(t, actions[0], "MANUAL REVIEW RECOMMENDED")
	})

	t.Run("warnings add a manual verification step", func(t *testing.T) {
		checks := []Check{{"Document Number Consistency", StatusWarning, "differs"}}
		outcome := Outcome{Eligible: true, Confidence: 75}
		actions := Recommend(outcome, 70, checks)
		require.Len(t, actions, 2)
		assert.Equal(t, "Verify discrepancies manually", actions[1])
	})

	t.Run("high confidence approves", func(t *testing.T) {
		outcome := Outcome{Eligible: true, Confidence: 95}
		actions := Recommend(outcome, 90, nil)
		require.Len(t, actions, 2)
		assert.Contains(t, actions[0], "APPROVE")
		assert.Equal(t, "Proceed with visa processing", actions[1])
	})
}

func TestSummarize(t *testing.T) {
	t.Run("eligible high confidence", func(t *testing.T) {
		outcome := Outcome{Eligible: true, Confidence: 92, Reasons: []string{"All validation checks passed"}}
		summary := Summarize("Passport", "L898902C3", "ANNA MARIA ERIKSSON", "UTO", outcome, 90)

		assert.Contains(t, summary, "Passport L898902C3")
		assert.Contains(t, summary, "ANNA MARIA ERIKSSON")
		assert.Contains(t, summary, "ELIGIBLE")
		assert.Contains(t, summary, "HIGH confidence (92%)")
		assert.Contains(t, summary, "All validation checks passed.")
		assert.NotContains(t, summary, "Manual review")
	})

	t.Run("ineligible counts only non-warning reasons", func(t *testing.T) {
		outcome := Outcome{
			Eligible:   false,
			Confidence: 40,
			Reasons: []string{
				"Document Expiry: document expired on 2012-04-15",
				"Age Requirement: too young",
				"Warning - Document Number Consistency: differs",
			},
		}
		summary := Summarize("Passport", "L898902C3", "ANNA MARIA ERIKSSON", "UTO", outcome, 90)

		assert.Contains(t, summary, "NOT ELIGIBLE")
		assert.Contains(t, summary, "LOW confidence (40%)")
		assert.Contains(t, summary, "2 issue(s) require attention.")
	})

	t.Run("low overall confidence appends the review suffix", func(t *testing.T) {
		outcome := Outcome{Eligible: true, Confidence: 85, Reasons: []string{"All validation checks passed"}}
		summary := Summarize("Passport", "L898902C3", "ANNA MARIA ERIKSSON", "UTO", outcome, 55)
		assert.Contains(t, summary, "Manual review is advised")
	})

	t.Run("moderate band", func(t *testing.T) {
		outcome := Outcome{Eligible: true, Confidence: 70}
		summary := Summarize("Passport", "L898902C3", "ANNA MARIA ERIKSSON", "UTO", outcome, 90)
		assert.Contains(t, summary, "MODERATE confidence (70%)")
	})

	t.Run("missing identity renders as unknown", func(t *testing.T) {
		outcome := Outcome{Eligible: true, Confidence: 0}
		summary := Summarize("", "", "", "", outcome, 30)
		assert.Contains(t, summary, "unknown unknown for unknown (unknown)")
	})
}
