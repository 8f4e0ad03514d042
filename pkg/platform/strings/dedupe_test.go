package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "empty", input: []string{}, expected: []string{}},
		{name: "trims", input: []string{" k1:9092 ", "k2:9092\t"}, expected: []string{"k1:9092", "k2:9092"}},
		{name: "keeps first occurrence", input: []string{"k2", "k1", "k2 ", "k1"}, expected: []string{"k2", "k1"}},
		{name: "drops blanks", input: []string{"", "  ", "k1"}, expected: []string{"k1"}},
		{name: "only blanks", input: []string{" ", ""}, expected: []string{}},
		{name: "case sensitive", input: []string{"Broker", "broker"}, expected: []string{"Broker", "broker"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList("", ","))
	assert.Nil(t, SplitList("   ", ","))
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, SplitList("k1:9092, k2:9092,,k1:9092", ","))
	assert.Equal(t, []string{"a", "b"}, SplitList("a;b", ";"))
}
