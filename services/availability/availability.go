// Package availability computes bookable start times from a barber's
// weekly window and the appointments already on the books. It is pure
// date arithmetic: callers load the window and the busy intervals
// (confirmed and completed appointments only; cancelled ones must be
// filtered out first) and hand everything in.
package availability

import "time"

// SlotGranularityMin is the fixed step between candidate start times.
const SlotGranularityMin = 15

// DayWindow is a barber's open hours for one weekday, shop-local
// "HH:mm". A blank start or end means the day is closed.
type DayWindow struct {
	Start string
	End   string
}

// Closed reports whether the window represents a day off.
func (w DayWindow) Closed() bool {
	return w.Start == "" || w.End == ""
}

// Interval is a half-open busy range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// ComputeSlots returns the ascending list of bookable start times on
// date for a service of durationMin minutes. Candidates advance on the
// fixed grid from the window start; a candidate is dropped when it
// would run past the window end, when it overlaps a busy interval
// (half-open semantics: touching endpoints do not collide), or when
// date is today and the candidate is already in the past.
func ComputeSlots(window DayWindow, date time.Time, durationMin int, busy []Interval, now time.Time) []time.Time {
	if window.Closed() || durationMin <= 0 {
		return nil
	}

	loc := date.Location()
	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	windowStart, ok := parseHM(window.Start)
	if !ok {
		return nil
	}
	windowEnd, ok := parseHM(window.End)
	if !ok {
		return nil
	}

	duration := time.Duration(durationMin) * time.Minute
	step := SlotGranularityMin * time.Minute
	today := sameDay(date, now.In(loc))

	var slots []time.Time
	for cursor := windowStart; !cursor.Add(duration).After(windowEnd); cursor = cursor.Add(step) {
		candidateEnd := cursor.Add(duration)

		if today && cursor.Before(now) {
			continue
		}
		if overlapsAny(cursor, candidateEnd, busy) {
			continue
		}
		slots = append(slots, cursor)
	}
	return slots
}

// DayEligible reports whether date can be offered on the booking
// calendar. A date with a window can still be ineligible when every
// slot is taken, so this runs the full computation.
func DayEligible(window DayWindow, date time.Time, durationMin int, busy []Interval, now time.Time) bool {
	loc := date.Location()
	startOfToday := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)
	if date.Before(startOfToday) {
		return false
	}
	return len(ComputeSlots(window, date, durationMin, busy, now)) > 0
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
