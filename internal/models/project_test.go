package models

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]ProjectStatus{
		"Active":    StatusActive,
		"On Hold":   StatusOnHold,
		"Completed": StatusCompleted,
		"":          StatusActive,
		"archived":  StatusActive,
		"ACTIVE":    StatusActive,
	}

	for input, want := range cases {
		if got := NormalizeStatus(input); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", input, got, want)
		}
	}
}
