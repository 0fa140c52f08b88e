package models

import "fmt"

// ScheduleEntry is one barber's open window for one weekday.
// Times are shop-local "HH:mm". A blank start or end means the barber
// is off that day, same as having no entry at all.
type ScheduleEntry struct {
	ID        string `bson:"id" json:"id"`
	BarberID  string `bson:"barberId" json:"barberId"`
	DayOfWeek int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// ScheduleEntryID builds the deterministic composite id that enforces
// one entry per (barber, weekday).
func ScheduleEntryID(barberID string, dayOfWeek int) string {
	return fmt.Sprintf("%s_%d", barberID, dayOfWeek)
}

// IsDayOff reports whether the entry represents a closed day.
func (s ScheduleEntry) IsDayOff() bool {
	return s.StartTime == "" || s.EndTime == ""
}
