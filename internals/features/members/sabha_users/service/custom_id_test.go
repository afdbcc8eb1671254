package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCustomID(t *testing.T) {
	tests := []struct {
		name     string
		initials string
		existing []string
		want     string
	}{
		{"gap in sequence", "A", []string{"A1", "A2", "A5"}, "A6"},
		{"empty group starts at 1", "AB", nil, "AB1"},
		{"single member", "AB", []string{"AB1"}, "AB2"},
		{"unparsable suffixes skipped", "A", []string{"A1", "Axx", "A"}, "A2"},
		{"other groups ignored", "A", []string{"B7", "A3", "AB9"}, "A4"},
		{"multi digit", "KD", []string{"KD9", "KD10", "KD11"}, "KD12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextCustomID(tt.initials, tt.existing))
		})
	}
}

func TestNextCustomIDPrefixOverlap(t *testing.T) {
	// "AB9" has prefix "A" and suffix "B9", which must not parse — otherwise
	// group A's sequence would jump on group AB's IDs.
	assert.Equal(t, "A2", NextCustomID("A", []string{"A1", "AB9"}))
}

func TestNextCustomIDSequentialBatch(t *testing.T) {
	// A bulk add allocates inside one transaction, so every entry sees the
	// IDs of the entries inserted before it.
	existing := []string{"AB4"}
	var got []string
	for i := 0; i < 3; i++ {
		id := NextCustomID("AB", existing)
		got = append(got, id)
		existing = append(existing, id)
	}
	assert.Equal(t, []string{"AB5", "AB6", "AB7"}, got)
}

func TestSuffixOf(t *testing.T) {
	n, ok := SuffixOf("AB", "AB12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = SuffixOf("AB", "CD12")
	assert.False(t, ok)

	_, ok = SuffixOf("AB", "ABx")
	assert.False(t, ok)

	_, ok = SuffixOf("AB", "AB")
	assert.False(t, ok)
}
