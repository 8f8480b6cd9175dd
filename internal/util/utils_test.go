package util

import "testing"

func TestSum(t *testing.T) {
	if got := Sum([]int{5, 3, 8}); got != 16 {
		t.Errorf("Sum = %d, want 16", got)
	}
	if got := Sum([]int(nil)); got != 0 {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
	if got := Sum([]float64{0.5, 1.5}); got != 2 {
		t.Errorf("Sum = %v, want 2", got)
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want float64
	}{
		{"empty", nil, 0},
		{"single", []int{7}, 7},
		{"fcfs waits", []int{0, 5, 8}, 13.0 / 3.0},
		{"rr waits", []int{7, 4, 8}, 19.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.in); got != tt.want {
				t.Errorf("Average(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
