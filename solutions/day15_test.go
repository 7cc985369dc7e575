package main

import "testing"

func TestHolidayHash(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"HASH", 52},
		{"rn=1", 30},
		{"cm-", 253},
		{"rn", 0},
		{"qp", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := holidayHash(tt.s); got != tt.want {
			t.Errorf("holidayHash(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
