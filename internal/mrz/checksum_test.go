package mrz

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDigit(t *testing.T) {
	// Known values from the ICAO 9303 worked example.
	tests := []struct {
		data string
		want int
	}{
		{"L898902C3", 6},
		{"740812", 2},
		{"120415", 9},
		{"", 0},
		{"<<<<<<<<<", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CheckDigit(tt.data), "CheckDigit(%q)", tt.data)
	}
}

func TestVerifyCheckDigit(t *testing.T) {
	t.Run("matching digit verifies", func(t *testing.T) {
		assert.True(t, VerifyCheckDigit("L898902C3", '6'))
	})

	t.Run("wrong digit fails", func(t *testing.T) {
		assert.False(t, VerifyCheckDigit("L898902C3", '7'))
	})

	t.Run("non-numeric digit never verifies", func(t *testing.T) {
		assert.False(t, VerifyCheckDigit("<<<<<<", '<'))
		assert.False(t, VerifyCheckDigit("L898902C3", 'A'))
	})
}

// naiveCheckDigit is an independent O(n) reimplementation used as the
// reference in the property test below.
func naiveCheckDigit(data string) int {
	values := map[byte]int{'<': 0}
	for c := byte('0'); c <= '9'; c++ {
		values[c] = int(c - '0')
	}
	for i, c := 0, byte('A'); c <= 'Z'; i, c = i+1, c+1 {
		values[c] = 10 + i
	}

	sum := 0
	for i := 0; i < len(data); i++ {
		weight := 1
		switch i % 3 {
		case 0:
			weight = 7
		case 1:
			weight = 3
		}
		sum += values[data[i]] * weight
	}
	return sum % 10
}

func TestCheckDigit_AgreesWithReference(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789<"
	rng := rand.New(rand.NewSource(9303))

	for i := 0; i < 2000; i++ {
		n := rng.Intn(45)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		data := b.String()
		assert.Equal(t, naiveCheckDigit(data), CheckDigit(data), "CheckDigit(%q)", data)
	}
}
