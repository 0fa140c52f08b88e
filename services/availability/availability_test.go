package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = time.FixedZone("JST", 9*60*60)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, tokyo)
}

func at(base time.Time, hh, mm int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hh, mm, 0, 0, base.Location())
}

// A fixed "now" far before every test date, so the today-filter never
// interferes unless a test wants it to.
var past = day(2024, time.January, 1)

func TestComputeSlotsFillsWindowOnFixedGrid(t *testing.T) {
	date := day(2025, time.March, 10)
	slots := ComputeSlots(DayWindow{Start: "09:00", End: "12:00"}, date, 45, nil, past)

	require.NotEmpty(t, slots)
	assert.Equal(t, at(date, 9, 0), slots[0])
	assert.Equal(t, at(date, 9, 15), slots[1])

	// 11:15 + 45min lands exactly on the window end and fits; 11:30
	// would run to 12:15 and is excluded.
	last := slots[len(slots)-1]
	assert.Equal(t, at(date, 11, 15), last)
	for _, s := range slots {
		assert.False(t, s.Before(at(date, 9, 0)))
		assert.False(t, s.Add(45*time.Minute).After(at(date, 12, 0)))
	}
}

func TestComputeSlotsRejectsOverlaps(t *testing.T) {
	date := day(2025, time.March, 10)
	busy := []Interval{{Start: at(date, 9, 30), End: at(date, 10, 0)}}

	slots := ComputeSlots(DayWindow{Start: "09:00", End: "10:00"}, date, 30, busy, past)

	// 09:00 ends exactly when the busy interval starts, so it fits.
	// 09:15 overlaps, 09:30 onwards overlaps or exceeds the window.
	require.Len(t, slots, 1)
	assert.Equal(t, at(date, 9, 0), slots[0])
}

func TestComputeSlotsTouchingEndpointsDoNotCollide(t *testing.T) {
	date := day(2025, time.March, 10)
	busy := []Interval{{Start: at(date, 10, 0), End: at(date, 10, 30)}}

	slots := ComputeSlots(DayWindow{Start: "09:00", End: "11:00"}, date, 30, busy, past)

	assert.Contains(t, slots, at(date, 9, 30))  // ends 10:00, touches only
	assert.Contains(t, slots, at(date, 10, 30)) // starts as busy ends
	assert.NotContains(t, slots, at(date, 9, 45))
	assert.NotContains(t, slots, at(date, 10, 0))
	assert.NotContains(t, slots, at(date, 10, 15))
}

func TestComputeSlotsClosedDay(t *testing.T) {
	date := day(2025, time.March, 10)

	assert.Nil(t, ComputeSlots(DayWindow{}, date, 30, nil, past))
	assert.Nil(t, ComputeSlots(DayWindow{Start: "09:00"}, date, 30, nil, past))
	assert.Nil(t, ComputeSlots(DayWindow{End: "18:00"}, date, 30, nil, past))
}

func TestComputeSlotsDropsPastSlotsToday(t *testing.T) {
	date := day(2025, time.March, 10)
	now := at(date, 10, 20)

	slots := ComputeSlots(DayWindow{Start: "09:00", End: "12:00"}, date, 30, nil, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, at(date, 10, 30), slots[0])
	for _, s := range slots {
		assert.False(t, s.Before(now))
	}
}

func TestComputeSlotsIgnoresNowOnFutureDates(t *testing.T) {
	date := day(2025, time.March, 11)
	now := at(day(2025, time.March, 10), 23, 0)

	slots := ComputeSlots(DayWindow{Start: "09:00", End: "10:00"}, date, 30, nil, now)
	require.NotEmpty(t, slots)
	assert.Equal(t, at(date, 9, 0), slots[0])
}

func TestComputeSlotsAscendingOrder(t *testing.T) {
	date := day(2025, time.March, 10)
	busy := []Interval{
		{Start: at(date, 10, 0), End: at(date, 10, 45)},
		{Start: at(date, 13, 0), End: at(date, 13, 30)},
	}
	slots := ComputeSlots(DayWindow{Start: "09:00", End: "18:00"}, date, 30, busy, past)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]))
	}
}

func TestComputeSlotsOverlappingBusyIntervalsExcludeIndependently(t *testing.T) {
	// Two busy intervals that overlap each other (a data anomaly) each
	// knock out every candidate they touch; no merging happens.
	date := day(2025, time.March, 10)
	busy := []Interval{
		{Start: at(date, 9, 30), End: at(date, 10, 30)},
		{Start: at(date, 10, 0), End: at(date, 11, 0)},
	}
	slots := ComputeSlots(DayWindow{Start: "09:00", End: "12:00"}, date, 30, busy, past)

	assert.Equal(t, []time.Time{
		at(date, 9, 0),  // ends as the first busy interval starts
		at(date, 11, 0), // starts as the second one ends
		at(date, 11, 15),
		at(date, 11, 30),
	}, slots)
}

func TestRemovingBusyIntervalOnlyAddsSlots(t *testing.T) {
	// Cancelling an appointment can only hand slots back, never take
	// any away.
	date := day(2025, time.March, 10)
	busy := []Interval{
		{Start: at(date, 9, 30), End: at(date, 10, 0)},
		{Start: at(date, 14, 0), End: at(date, 15, 0)},
	}
	window := DayWindow{Start: "09:00", End: "18:00"}

	before := ComputeSlots(window, date, 30, busy, past)
	after := ComputeSlots(window, date, 30, busy[:1], past)

	require.GreaterOrEqual(t, len(after), len(before))
	for _, s := range before {
		assert.Contains(t, after, s)
	}
}

func TestComputeSlotsDurationNotMultipleOfGrid(t *testing.T) {
	// A 50-minute cut still walks the 15-minute grid.
	date := day(2025, time.March, 10)
	slots := ComputeSlots(DayWindow{Start: "09:00", End: "10:45"}, date, 50, nil, past)

	// 10:00 would end at 10:50, past the window, so 09:45 is last.
	assert.Equal(t, []time.Time{
		at(date, 9, 0),
		at(date, 9, 15),
		at(date, 9, 30),
		at(date, 9, 45),
	}, slots)
}

func TestDayEligible(t *testing.T) {
	date := day(2025, time.March, 10)
	window := DayWindow{Start: "09:00", End: "10:00"}

	assert.True(t, DayEligible(window, date, 30, nil, past))

	// Fully booked day: window exists but no slot survives.
	busy := []Interval{{Start: at(date, 9, 0), End: at(date, 10, 0)}}
	assert.False(t, DayEligible(window, date, 30, busy, past))

	// Closed day.
	assert.False(t, DayEligible(DayWindow{}, date, 30, nil, past))

	// Dates before today are never eligible.
	assert.False(t, DayEligible(window, day(2023, time.June, 1), 30, nil, past))
}
