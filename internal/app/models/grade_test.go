package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		maxScore int
		want     string
	}{
		{name: "top of range", score: 95, maxScore: 100, want: "A"},
		{name: "A boundary", score: 85, maxScore: 100, want: "A"},
		{name: "just below A", score: 84, maxScore: 100, want: "B"},
		{name: "B boundary", score: 70, maxScore: 100, want: "B"},
		{name: "C boundary", score: 55, maxScore: 100, want: "C"},
		{name: "just below C", score: 54, maxScore: 100, want: "D"},
		{name: "zero score", score: 0, maxScore: 100, want: "D"},
		{name: "scaled max", score: 42, maxScore: 50, want: "B"},
		{name: "scaled A", score: 43, maxScore: 50, want: "A"},
		{name: "zero max", score: 50, maxScore: 0, want: "D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LetterGrade(tt.score, tt.maxScore))
		})
	}
}

func TestFeeStatus(t *testing.T) {
	tests := []struct {
		name  string
		paid  int
		total int
		want  string
	}{
		{name: "fully paid", paid: 45000, total: 45000, want: FeePaid},
		{name: "overpaid", paid: 50000, total: 45000, want: FeePaid},
		{name: "partial", paid: 30000, total: 45000, want: FeePartial},
		{name: "single rupee", paid: 1, total: 45000, want: FeePartial},
		{name: "nothing paid", paid: 0, total: 45000, want: FeePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeeStatus(tt.paid, tt.total))
		})
	}
}
