package verification

import (
	"fmt"
	"time"

	"attesto/internal/mrz"
	strutil "attesto/pkg/platform/strings"
)

// Name similarity thresholds: above nameSimilarityPass the extracted name
// agrees with the MRZ, above nameSimilarityWarn it is close enough to flag
// rather than reject.
const (
	nameSimilarityPass = 0.8
	nameSimilarityWarn = 0.6
)

const isoDateLayout = "2006-01-02"

// CrossValidate runs every applicable validation rule against the extracted
// fields, the decoded MRZ record, the applicant form, and the eligibility
// policy. All of rec, form, and policy may be nil; a rule whose required
// inputs are absent is silently skipped. The rule evaluation order is fixed
// so repeated runs over the same inputs produce identical check lists.
//
// now is the evaluation time for expiry, age, and validity arithmetic;
// callers inside an HTTP request pass the request-scoped time.
func CrossValidate(now time.Time, fields Fields, rec *mrz.Record, form *ApplicantForm, policy *Policy) []Check {
	var checks []Check

	checks = append(checks, dateFormatChecks(fields)...)
	checks = append(checks, expiryChecks(now, fields)...)
	checks = append(checks, mrzChecks(fields, rec)...)
	checks = append(checks, formChecks(fields, form)...)
	if policy != nil {
		checks = append(checks, policyChecks(now, fields, policy)...)
	}

	return checks
}

// dateFormatChecks verifies that extracted date fields match YYYY-MM-DD
// exactly. Format only; calendar validity is rule 2's concern.
func dateFormatChecks(fields Fields) []Check {
	var checks []Check
	for _, target := range []struct {
		name  FieldName
		label string
	}{
		{FieldDateOfBirth, labelDateOfBirthFormat},
		{FieldExpiryDate, labelExpiryDateFormat},
	} {
		f, ok := fields[target.name]
		if !ok {
			continue
		}
		if isISODate(f.Value) {
			checks = append(checks, Check{target.label, StatusPass, "valid date format"})
		} else {
			checks = append(checks, Check{target.label, StatusFail, fmt.Sprintf("%q does not match YYYY-MM-DD", f.Value)})
		}
	}
	return checks
}

// expiryChecks fails a document whose expiry date lies strictly before the
// evaluation time. An unparseable value fails with its own message rather
// than aborting the pass.
func expiryChecks(now time.Time, fields Fields) []Check {
	f, ok := fields[FieldExpiryDate]
	if !ok {
		return nil
	}

	expiry, err := time.Parse(isoDateLayout, f.Value)
	if err != nil {
		return []Check{{labelDocumentExpiry, StatusFail, fmt.Sprintf("unable to parse expiry date %q", f.Value)}}
	}
	if expiry.Before(now.Truncate(24 * time.Hour)) {
		return []Check{{labelDocumentExpiry, StatusFail, fmt.Sprintf("document expired on %s", f.Value)}}
	}
	return []Check{{labelDocumentExpiry, StatusPass, "document is not expired"}}
}

// mrzChecks covers rules that need a decoded MRZ record: checksum
// verification and cross-checks against the free-text extraction.
func mrzChecks(fields Fields, rec *mrz.Record) []Check {
	if rec == nil {
		return nil
	}
	var checks []Check

	if rec.ChecksumValid {
		checks = append(checks, Check{labelMRZChecksum, StatusPass, "all MRZ check digits verified"})
	} else {
		checks = append(checks, Check{labelMRZChecksum, StatusFail, "one or more MRZ check digits failed verification"})
	}

	// Free-text extraction is lower-trust than the MRZ, so a document
	// number mismatch is a warning, not a fail.
	if f, ok := fields[FieldDocumentNumber]; ok {
		if strutil.Normalize(f.Value) == strutil.Normalize(rec.DocumentNumber) {
			checks = append(checks, Check{labelDocumentNumber, StatusPass, "document number matches MRZ"})
		} else {
			checks = append(checks, Check{labelDocumentNumber, StatusWarning,
				fmt.Sprintf("extracted document number %q differs from MRZ %q", f.Value, rec.DocumentNumber)})
		}
	}

	if f, ok := fields[FieldFullName]; ok {
		mrzName := rec.Surname
		if rec.GivenNames != "" {
			mrzName = rec.GivenNames + " " + rec.Surname
		}
		ratio := strutil.SimilarityRatio(strutil.Normalize(f.Value), strutil.Normalize(mrzName))
		msg := fmt.Sprintf("name similarity with MRZ is %.0f%%", ratio*100)
		switch {
		case ratio > nameSimilarityPass:
			checks = append(checks, Check{labelName, StatusPass, msg})
		case ratio > nameSimilarityWarn:
			checks = append(checks, Check{labelName, StatusWarning, msg})
		default:
			checks = append(checks, Check{labelName, StatusFail, msg})
		}
	}

	return checks
}

// formChecks compares the applicant's self-reported data with the extracted
// fields. The form is a higher-trust source, so disagreement is a fail.
func formChecks(fields Fields, form *ApplicantForm) []Check {
	if form == nil {
		return nil
	}
	var checks []Check

	if f, ok := fields[FieldDocumentNumber]; ok && form.PassportNumber != "" {
		if strutil.Normalize(f.Value) == strutil.Normalize(form.PassportNumber) {
			checks = append(checks, Check{labelPassportNumber, StatusPass, "passport number matches the application form"})
		} else {
			checks = append(checks, Check{labelPassportNumber, StatusFail,
				fmt.Sprintf("document number %q does not match the application form %q", f.Value, form.PassportNumber)})
		}
	}

	if f, ok := fields[FieldDateOfBirth]; ok && form.DateOfBirth != "" {
		if f.Value == form.DateOfBirth {
			checks = append(checks, Check{labelDateOfBirth, StatusPass, "date of birth matches the application form"})
		} else {
			checks = append(checks, Check{labelDateOfBirth, StatusFail,
				fmt.Sprintf("date of birth %q does not match the application form %q", f.Value, form.DateOfBirth)})
		}
	}

	return checks
}

// policyChecks evaluates the configured eligibility constraints: age bounds,
// nationality lists, and minimum remaining passport validity.
func policyChecks(now time.Time, fields Fields, policy *Policy) []Check {
	var checks []Check

	if policy.MinAge != nil || policy.MaxAge != nil {
		if dob, ok := parseDateField(fields, FieldDateOfBirth); ok {
			age := ageInYears(dob, now)
			violated := false
			if policy.MinAge != nil && age < *policy.MinAge {
				violated = true
				checks = append(checks, Check{labelAge, StatusFail,
					fmt.Sprintf("applicant age %d is below the minimum age %d", age, *policy.MinAge)})
			}
			if policy.MaxAge != nil && age > *policy.MaxAge {
				violated = true
				checks = append(checks, Check{labelAge, StatusFail,
					fmt.Sprintf("applicant age %d is above the maximum age %d", age, *policy.MaxAge)})
			}
			if !violated {
				checks = append(checks, Check{labelAge, StatusPass,
					fmt.Sprintf("applicant age %d satisfies the policy bounds", age)})
			}
		}
	}

	if len(policy.AllowedNationalities) > 0 || len(policy.BlockedNationalities) > 0 {
		if f, ok := fields[FieldNationality]; ok {
			nationality := strutil.Normalize(f.Value)
			violated := false
			if len(policy.AllowedNationalities) > 0 && !containsNormalized(policy.AllowedNationalities, nationality) {
				violated = true
				checks = append(checks, Check{labelNationality, StatusFail,
					fmt.Sprintf("nationality %q is not in the allowed list", f.Value)})
			}
			if len(policy.BlockedNationalities) > 0 && containsNormalized(policy.BlockedNationalities, nationality) {
				violated = true
				checks = append(checks, Check{labelNationality, StatusFail,
					fmt.Sprintf("nationality %q is in the blocked list", f.Value)})
			}
			if !violated {
				checks = append(checks, Check{labelNationality, StatusPass,
					fmt.Sprintf("nationality %q satisfies the policy lists", f.Value)})
			}
		}
	}

	if policy.MinPassportValidityMonths != nil {
		// An unparseable expiry already failed rule 2; skipping here avoids
		// a duplicate "unable to parse" check.
		if expiry, ok := parseDateField(fields, FieldExpiryDate); ok {
			months := monthsBetween(now, expiry)
			if months < *policy.MinPassportValidityMonths {
				checks = append(checks, Check{labelValidity, StatusFail,
					fmt.Sprintf("remaining validity of %d months is below the required %d months", months, *policy.MinPassportValidityMonths)})
			} else {
				checks = append(checks, Check{labelValidity, StatusPass,
					fmt.Sprintf("remaining validity of %d months meets the required %d months", months, *policy.MinPassportValidityMonths)})
			}
		}
	}

	return checks
}

func parseDateField(fields Fields, name FieldName) (time.Time, bool) {
	f, ok := fields[name]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(isoDateLayout, f.Value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// isISODate checks the YYYY-MM-DD shape with explicit byte predicates: four
// digits, dash, two digits, dash, two digits. No calendar validation.
func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ageInYears computes age in whole years as of now.
func ageInYears(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// monthsBetween returns the whole-month difference from from to to,
// truncating partial months. Negative when to precedes from.
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

func containsNormalized(list []string, normalized string) bool {
	for _, item := range list {
		if strutil.Normalize(item) == normalized {
			return true
		}
	}
	return false
}
