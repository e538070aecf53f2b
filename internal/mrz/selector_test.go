package mrz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanLines(t *testing.T) {
	t.Run("finds MRZ lines in noisy OCR text", func(t *testing.T) {
		text := "PASSPORT\nRepublic of Utopia\n" +
			td3Line1 + "\n" +
			td3Line2 + "\n" +
			"Issued by the passport office"

		got := ScanLines(text)
		assert.Equal(t, []string{td3Line1, td3Line2}, got)
	})

	t.Run("strips whitespace inside a line", func(t *testing.T) {
		spaced := "L898902C36UTO 7408122F 1204159ZE184226B<<<<<10"
		got := ScanLines(spaced)
		assert.Equal(t, []string{td3Line2}, got)
	})

	t.Run("preserves input order", func(t *testing.T) {
		got := ScanLines(td3Line2 + "\n" + td3Line1)
		assert.Equal(t, []string{td3Line2, td3Line1}, got)
	})

	t.Run("rejects lines outside the length window", func(t *testing.T) {
		assert.Empty(t, ScanLines("ABC<<DEF"))
		assert.Empty(t, ScanLines(td3Line1+"<<<<<"))
	})

	t.Run("rejects lines with invalid characters", func(t *testing.T) {
		lowercase := "p<utoeriksson<<anna<maria<<<<<<<<<<<<<<<<<<<"
		assert.Empty(t, ScanLines(lowercase))
	})

	t.Run("empty text yields no candidates", func(t *testing.T) {
		assert.Empty(t, ScanLines(""))
	})
}
