package commerce

import (
	"testing"
	"time"
)

func TestMonthlyCycle(t *testing.T) {
	tests := []struct {
		ts   time.Time
		want string
	}{
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), "2025-12"},
		{time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC), "2025-01"},
		{time.Date(1999, 9, 10, 0, 0, 0, 0, time.UTC), "1999-09"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := MonthlyCycle(tt.ts); got != tt.want {
				t.Errorf("MonthlyCycle(%v) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}

func TestMonthlyCycleUsesCalendarFieldsAsGiven(t *testing.T) {
	// 2025-01-01 07:00 +08 is still 2024-12-31 23:00 UTC; the function must
	// read the calendar fields of the supplied value, not normalize them.
	cst := time.FixedZone("CST", 8*60*60)
	ts := time.Date(2025, 1, 1, 7, 0, 0, 0, cst)
	if got := MonthlyCycle(ts); got != "2025-01" {
		t.Errorf("MonthlyCycle(%v) = %q, want 2025-01", ts, got)
	}
	if got := MonthlyCycle(ts.UTC()); got != "2024-12" {
		t.Errorf("MonthlyCycle(%v) = %q, want 2024-12", ts.UTC(), got)
	}
}
