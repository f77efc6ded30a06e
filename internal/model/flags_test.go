package model

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"int64 one", int64(1), true},
		{"int64 zero", int64(0), false},
		{"int64 other", int64(2), false},
		{"int one", 1, true},
		{"string one", "1", true},
		{"string true", "true", true},
		{"string zero", "0", false},
		{"bytes one", []byte("1"), true},
		{"nil", nil, false},
		{"float", 1.0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Truthy(c.in); got != c.want {
				t.Errorf("Truthy(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}
