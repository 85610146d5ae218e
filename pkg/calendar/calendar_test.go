package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestEligibleDatesFromFutureMonth(t *testing.T) {
	// September 2026 viewed from August: full month, weekdays only
	today := date(2026, time.August, 10)
	dates := EligibleDatesFrom(2026, time.September, today)

	if len(dates) != 22 {
		t.Fatalf("expected 22 weekdays in September 2026, got %d", len(dates))
	}
	if !dates[0].Equal(date(2026, time.September, 1)) {
		t.Errorf("expected first date 2026-09-01, got %s", dates[0])
	}
	if !dates[len(dates)-1].Equal(date(2026, time.September, 30)) {
		t.Errorf("expected last date 2026-09-30, got %s", dates[len(dates)-1])
	}
	for _, d := range dates {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			t.Errorf("weekend date %s should not be eligible", d)
		}
	}
}

func TestEligibleDatesFromCurrentMonthClipsToToday(t *testing.T) {
	// Mid-month: enumeration starts at today, not the 1st
	today := date(2026, time.September, 15)
	dates := EligibleDatesFrom(2026, time.September, today)

	if len(dates) == 0 {
		t.Fatal("expected dates for the rest of the month")
	}
	if !dates[0].Equal(today) {
		t.Errorf("expected first date to be today %s, got %s", today, dates[0])
	}
	for _, d := range dates {
		if d.Before(today) {
			t.Errorf("date %s is before today %s", d, today)
		}
	}
}

func TestEligibleDatesFromTodayOnWeekend(t *testing.T) {
	// 2026-09-05 is a Saturday; the first eligible date is Monday the 7th
	today := date(2026, time.September, 5)
	dates := EligibleDatesFrom(2026, time.September, today)

	if len(dates) == 0 {
		t.Fatal("expected dates")
	}
	if !dates[0].Equal(date(2026, time.September, 7)) {
		t.Errorf("expected first date 2026-09-07, got %s", dates[0])
	}
}

func TestEligibleDatesFromPastMonth(t *testing.T) {
	today := date(2026, time.September, 1)
	if dates := EligibleDatesFrom(2026, time.August, today); dates != nil {
		t.Errorf("expected nil for a fully past month, got %d dates", len(dates))
	}
}

func TestEligibleDatesFromLastDayOfMonth(t *testing.T) {
	// 2026-09-30 is a Wednesday; it is the only date left
	today := date(2026, time.September, 30)
	dates := EligibleDatesFrom(2026, time.September, today)

	if len(dates) != 1 || !dates[0].Equal(today) {
		t.Fatalf("expected exactly today, got %v", dates)
	}
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		prevYear  int
		prevMonth time.Month
		nextYear  int
		nextMonth time.Month
	}{
		{"mid year", 2026, time.June, 2026, time.May, 2026, time.July},
		{"january rolls back", 2026, time.January, 2025, time.December, 2026, time.February},
		{"december rolls forward", 2026, time.December, 2026, time.November, 2027, time.January},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			py, pm := PreviousMonth(tt.year, tt.month)
			if py != tt.prevYear || pm != tt.prevMonth {
				t.Errorf("PreviousMonth(%d, %s) = %d, %s; want %d, %s",
					tt.year, tt.month, py, pm, tt.prevYear, tt.prevMonth)
			}
			ny, nm := NextMonth(tt.year, tt.month)
			if ny != tt.nextYear || nm != tt.nextMonth {
				t.Errorf("NextMonth(%d, %s) = %d, %s; want %d, %s",
					tt.year, tt.month, ny, nm, tt.nextYear, tt.nextMonth)
			}
		})
	}
}

func TestMonthNavigationRoundTrip(t *testing.T) {
	year, month := 2026, time.January
	for i := 0; i < 24; i++ {
		ny, nm := NextMonth(year, month)
		by, bm := PreviousMonth(ny, nm)
		if by != year || bm != month {
			t.Fatalf("round trip broke at %d-%s", year, month)
		}
		year, month = ny, nm
	}
}
