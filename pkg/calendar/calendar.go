// Package calendar enumerates the dates on which appointments can be booked:
// weekdays only, never in the past.
package calendar

import "time"

// EligibleDates returns the bookable dates of a month in ascending order.
// When the requested month is the current one, enumeration starts at today
// instead of the 1st, so past days never appear.
func EligibleDates(year int, month time.Month) []time.Time {
	return EligibleDatesFrom(year, month, time.Now())
}

// EligibleDatesFrom is EligibleDates with an explicit "today".
func EligibleDatesFrom(year int, month time.Month, today time.Time) []time.Time {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if !day.Before(end) {
		// month fully in the past
		return nil
	}
	if day.After(start) {
		start = day
	}

	var dates []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// PreviousMonth steps one month back, rolling the year over at January.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps one month forward, rolling the year over at December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
