package ai

import (
	"math"
	"testing"
)

func TestPolarity(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{name: "Empty text", text: "", expected: 0},
		{name: "No scored words", text: "went to the store and bought milk", expected: 0},
		{name: "Single positive word", text: "today was happy", expected: 0.7},
		{name: "Single negative word", text: "a terrible meeting", expected: -0.9},
		{name: "Averaged mix", text: "happy but tired", expected: (0.7 - 0.3) / 2},
		{name: "Punctuation stripped", text: "amazing!", expected: 1.0},
		{name: "Negation flips", text: "not happy today", expected: -0.7},
		{name: "Contraction negation", text: "wasn't good at all", expected: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Polarity(tt.text)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Polarity(%q) = %.4f, want %.4f", tt.text, got, tt.expected)
			}
		})
	}
}

func TestPolarity_Bounds(t *testing.T) {
	texts := []string{
		"amazing wonderful fantastic perfect excellent",
		"terrible horrible awful devastated miserable",
		"not not not happy sad good bad",
	}
	for _, text := range texts {
		got := Polarity(text)
		if got < -1 || got > 1 {
			t.Errorf("Polarity(%q) = %.4f outside [-1,1]", text, got)
		}
	}
}

func TestPolarity_Deterministic(t *testing.T) {
	text := "grateful for a productive day despite the stressed afternoon"
	first := Polarity(text)
	for i := 0; i < 10; i++ {
		if got := Polarity(text); got != first {
			t.Fatalf("polarity changed between runs: %.6f vs %.6f", got, first)
		}
	}
}
