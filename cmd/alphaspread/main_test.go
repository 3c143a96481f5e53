package main

import "testing"

func TestRetentionDays(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"30", 30, true},
		{"1", 1, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"30d", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := retentionDays(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("retentionDays(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
