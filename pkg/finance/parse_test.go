package finance

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"Plain number", "1234.56", 1234.56},
		{"Thousands separators", "1,234,567.89", 1234567.89},
		{"Currency prefix", "R12,500", 12500},
		{"Leading and trailing spaces", "  42  ", 42},
		{"Negative value", "-500", -500},
		{"Empty string", "", 0},
		{"Garbage", "abc", 0},
		{"Partial number", "12abc", 0},
		{"NaN literal", "NaN", 0},
		{"Infinity literal", "Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseAmount(tt.input)
			if result != tt.expected {
				t.Errorf("ParseAmount(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
