package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlausibleBL(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		plausible bool
	}{
		{"Carrier prefixed number", "MEDUH9024256", true},
		{"Reconstructed Maersk number", "MAEU262802788", true},
		{"Separators ignored", "MAEU-262802788", true},
		{"Lowercase accepted", "meduh9024256", true},
		{"Too short", "AB123", false},
		{"Too long", "ABCDEFGHIJ12345678901", false},
		{"Digits only", "262802788", false},
		{"Letters only", "BILLOFLADING", false},
		{"Repeated run", "1A1A1A", true},
		{"Noise word", "KGS", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.plausible, IsPlausibleBL(tt.value))
		})
	}
}

func TestIsRepeatedRun(t *testing.T) {
	assert.True(t, isRepeatedRun("11111"))
	assert.True(t, isRepeatedRun("AAAAAAA"))
	assert.False(t, isRepeatedRun("1111"))
	assert.False(t, isRepeatedRun("1A1A1A"))
	assert.False(t, isRepeatedRun(""))
}
