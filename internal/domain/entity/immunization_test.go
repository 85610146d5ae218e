package entity

import (
	"testing"
	"time"
)

func TestImmunizationStatusAt(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)

	due := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name    string
		nextDue *time.Time
		want    ImmunizationStatus
	}{
		{"no next dose", nil, ImmunizationUpToDate},
		{"past due date", due(-24 * time.Hour), ImmunizationOverdue},
		{"due tomorrow", due(24 * time.Hour), ImmunizationDue},
		{"due in 30 days", due(30 * 24 * time.Hour), ImmunizationDue},
		{"due in 31 days", due(31 * 24 * time.Hour), ImmunizationUpToDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImmunizationStatusAt(tt.nextDue, now); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
