package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairBrokenCandidates(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "Prefix alone then digits on next line",
			text:     "MAEU\n262802788",
			expected: []string{"MAEU262802788"},
		},
		{
			name:     "Column gap on one line",
			text:     "MAEU          262802788",
			expected: []string{"MAEU262802788"},
		},
		{
			name:     "Prefix as line suffix",
			text:     "CARRIER MAEU\n262802788 CONTINUES",
			expected: []string{"MAEU262802788"},
		},
		{
			name:     "Unknown prefix ignored",
			text:     "ZZZZ\n262802788",
			expected: nil,
		},
		{
			name:     "Digits too short",
			text:     "MAEU\n12345",
			expected: nil,
		},
		{
			name:     "Single space is not a column gap",
			text:     "MAEU 262802788",
			expected: nil,
		},
		{
			name:     "Blank lines between are skipped",
			text:     "MEDU\n\n\n9024256",
			expected: []string{"MEDU9024256"},
		},
		{
			name:     "Duplicates collapse",
			text:     "MAEU          262802788\nMAEU\n262802788",
			expected: []string{"MAEU262802788"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repairBrokenCandidates(tt.text))
		})
	}
}

func TestExtractExplicit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "Bill of lading label",
			text:     "BILL OF LADING NO: MEDUH9024256",
			expected: []string{"MEDUH9024256"},
		},
		{
			name:     "BL NO label",
			text:     "BL NO: EU26752001",
			expected: []string{"EU26752001"},
		},
		{
			name:     "Compacted label from OCR",
			text:     "BILLOFLADING NO: OOLU2164215810",
			expected: []string{"OOLU2164215810"},
		},
		{
			name:     "Master bill label",
			text:     "MASTER BILL NO. HLCU12345678",
			expected: []string{"HLCU12345678"},
		},
		{
			name:     "No label no capture",
			text:     "REFERENCE: MEDUH9024256",
			expected: nil,
		},
		{
			name:     "Alpha-only capture filtered",
			text:     "BL NO: PENDING",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractExplicit(tt.text))
		})
	}
}

func TestMergeCandidatesPriorityOrder(t *testing.T) {
	merged := mergeCandidates(
		[]string{"MAEU262802788"},
		[]string{"EU26752001", "MAEU262802788"},
		[]string{"CD87654321", "EU26752001"},
	)

	assert.Equal(t, []Candidate{
		{Token: "MAEU262802788", Source: SourceRepaired},
		{Token: "EU26752001", Source: SourceExplicit},
		{Token: "CD87654321", Source: SourceGeneric},
	}, merged)
}
