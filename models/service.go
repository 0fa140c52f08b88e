package models

import "time"

// Service is a bookable catalog entry (haircut, beard trim, ...).
// Name and duration are snapshotted onto appointments at booking time,
// so later edits never rewrite history.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	DurationMin int       `bson:"durationMin" json:"durationMin"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
