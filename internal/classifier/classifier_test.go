package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHintWins(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		hint     string
		text     string
		expected string
	}{
		{"BL hint overrides IM8 text", "BL", "DECLARATION IM8 DOUANE REPUBLIQUE DU CONGO", TypeBL},
		{"Bill of lading hint variant", "bill of lading", "", TypeBL},
		{"Underscore hint variant", "BILL_OF_LADING", "", TypeBL},
		{"IM8 hint lowercase", "im8", "BILL OF LADING NO: MEDUH9024256", TypeIM8},
		{"Unrecognized hint falls through", "INVOICE", "BILL OF LADING NO: MEDUH9024256", TypeBL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.hint, tt.text))
		})
	}
}

func TestClassifyByText(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Strong bill of lading label",
			text:     "BILL OF LADING NO: MEDUH9024256",
			expected: TypeBL,
		},
		{
			name:     "Compacted label after aggressive normalization",
			text:     "BILLOFLADING MEDUH9024256 CONSIGNEE SHIPPER",
			expected: TypeBL,
		},
		{
			name: "Weak maritime vocabulary accumulates",
			text: "SHIPPER: ACME\nCONSIGNEE: GLOBEX\nVESSEL: EVER GIVEN\nVOYAGE: 041E\n" +
				"PORT OF LOADING: SINGAPORE\nPORT OF DISCHARGE: POINTE NOIRE",
			expected: TypeBL,
		},
		{
			name:     "Too few weak signals",
			text:     "SHIPPER: ACME\nVESSEL: EVER GIVEN",
			expected: TypeUnknown,
		},
		{
			name:     "Customs declaration",
			text:     "DECLARATION IM8\nDOUANE\nREPUBLIQUE DU CONGO",
			expected: TypeIM8,
		},
		{
			name:     "Strong BL beats incidental customs word",
			text:     "BILL OF LADING NO: MEDUH9024256\nDOUANE",
			expected: TypeBL,
		},
		{
			name:     "Empty text",
			text:     "",
			expected: TypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify("", tt.text))
		})
	}
}

func TestClassifyByFilename(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"Underscored BL filename", "bill_of_lading_scan.pdf", TypeBL},
		{"Hyphenated BL filename", "2024-bill-of-lading.pdf", TypeBL},
		{"BL suffix", "shipment_bl.pdf", TypeBL},
		{"IM8 filename", "scan_im8.pdf", TypeIM8},
		{"Unrelated filename", "invoice.pdf", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify("", tt.filename))
		})
	}
}
