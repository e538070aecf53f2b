package mrz

// checkWeights is the positional weight cycle from ICAO 9303 part 3.
var checkWeights = [3]int{7, 3, 1}

// charValue maps an MRZ character to its checksum value: digits keep their
// value, letters map A=10..Z=35, and the filler character counts as zero.
func charValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 0
	}
}

// CheckDigit computes the ICAO 9303 check digit for data: each character
// value is multiplied by the repeating 7-3-1 weight cycle, summed, and
// reduced mod 10.
func CheckDigit(data string) int {
	sum := 0
	for i := 0; i < len(data); i++ {
		sum += charValue(data[i]) * checkWeights[i%3]
	}
	return sum % 10
}

// VerifyCheckDigit reports whether digit is the check digit for data. A
// non-numeric digit character never verifies.
func VerifyCheckDigit(data string, digit byte) bool {
	return digit >= '0' && digit <= '9' && int(digit-'0') == CheckDigit(data)
}
