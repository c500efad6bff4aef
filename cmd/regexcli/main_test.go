package main

import "testing"

func TestFormatIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want string
	}{
		{"empty", nil, "{}"},
		{"single", []int{2}, "{2}"},
		{"multiple", []int{0, 1, 2}, "{0,1,2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatIDs(tt.ids); got != tt.want {
				t.Errorf("formatIDs(%v) = %q, want %q", tt.ids, got, tt.want)
			}
		})
	}
}
