package entity

import "time"

// Layouts for the wire representation of dates and slot times. The server
// runs in a single implicit timezone (time.Local).
const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

// slotTemplate is the fixed daily booking grid, 09:00 through 16:00 on the
// hour. Every provider shares it on every day; it is not persisted.
var slotTemplate = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
}

// SlotTemplate returns the full daily slot grid in booking order. Callers
// receive a copy and may mutate it freely.
func SlotTemplate() []string {
	slots := make([]string, len(slotTemplate))
	copy(slots, slotTemplate)
	return slots
}

// IsTemplateSlot reports whether t is one of the bookable slot times
func IsTemplateSlot(t string) bool {
	for _, s := range slotTemplate {
		if s == t {
			return true
		}
	}
	return false
}

// SlotOf extracts the slot-time component of an appointment timestamp
func SlotOf(t time.Time) string {
	return t.Format(SlotTimeLayout)
}

// CombineDateTime merges a calendar day and a slot time into the absolute
// appointment timestamp.
func CombineDateTime(date, slot string) (time.Time, error) {
	return time.ParseInLocation(SlotDateLayout+" "+SlotTimeLayout, date+" "+slot, time.Local)
}

// DayBounds returns the [local midnight, next local midnight) window of a
// calendar day given as YYYY-MM-DD.
func DayBounds(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(SlotDateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}
