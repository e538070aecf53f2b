package strings

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase and punctuation", "l898-902c.3", "L898902C3"},
		{"spaces stripped", "ANNA MARIA", "ANNAMARIA"},
		{"already normalized", "ERIKSSON", "ERIKSSON"},
		{"empty", "", ""},
		{"only noise", " .-/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"ERIKSSON", "ERIKSSON", 0},
		{"ERIKSSON", "ERIKSON", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "Levenshtein(%q,%q)", tt.a, tt.b)
	}
}

func TestSimilarityRatio(t *testing.T) {
	t.Run("both empty is identical", func(t *testing.T) {
		assert.Equal(t, 1.0, SimilarityRatio("", ""))
	})

	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 1.0, SimilarityRatio("ANNAMARIA", "ANNAMARIA"))
	})

	t.Run("disjoint strings score low", func(t *testing.T) {
		assert.Less(t, SimilarityRatio("AAAA", "ZZZZ"), 0.1)
	})

	t.Run("symmetric for random pairs", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		randomWord := func() string {
			n := rng.Intn(12)
			b := make([]byte, n)
			for i := range b {
				b[i] = letters[rng.Intn(len(letters))]
			}
			return string(b)
		}
		for i := 0; i < 500; i++ {
			a, b := randomWord(), randomWord()
			assert.Equal(t, SimilarityRatio(a, b), SimilarityRatio(b, a), "similarity(%q,%q)", a, b)
		}
	})
}
