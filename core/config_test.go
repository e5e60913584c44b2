package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple list", "modA,modB", []string{"modA", "modB"}},
		{"Whitespace trimmed", " modA , modB ,modC", []string{"modA", "modB", "modC"}},
		{"Empty entries dropped", "modA,,modB,", []string{"modA", "modB"}},
		{"Duplicates dropped", "modB,modA,modB", []string{"modB", "modA"}},
		{"Empty string", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}
