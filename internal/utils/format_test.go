package utils

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"zero bytes", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"just below one KB", 999, "999 B"},
		{"one KB", 1000, "1.0 KB"},
		{"1.5 KB", 1500, "1.5 KB"},
		{"1.5 MB", 1500000, "1.5 MB"},
		{"4.2 MB", 4200000, "4.2 MB"},
		{"one GB", 1000000000, "1.0 GB"},
		{"rounds up to next unit", 999999999999, "1.0 TB"},
		{"one PB", 1000000000000000, "1.0 PB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatBytes(tt.size)
			if result != tt.expected {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.size, result, tt.expected)
			}
		})
	}
}
