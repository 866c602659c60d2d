package utils

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		symbol string
		amount int
		want   string
	}{
		{"¥", 0, "¥0"},
		{"¥", 156000, "¥156,000"},
		{"¥", 2542500, "¥2,542,500"},
		{"$", 999, "$999"},
		{"", 1000, "1,000"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.symbol, tt.amount); got != tt.want {
			t.Errorf("FormatPrice(%q, %d) = %q, want %q", tt.symbol, tt.amount, got, tt.want)
		}
	}
}
