package models

import "time"

// PageContent is the singleton editable marketing copy shown on the
// public booking page.
type PageContent struct {
	ID        string    `bson:"id" json:"id"`
	Headline  string    `bson:"headline" json:"headline"`
	Subtitle  string    `bson:"subtitle" json:"subtitle"`
	AboutText string    `bson:"aboutText" json:"aboutText"`
	Address   string    `bson:"address" json:"address"`
	Phone     string    `bson:"phone" json:"phone"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ShopSettings is the singleton holding the shop's default working
// hours, used to prefill a new barber's weekly schedule.
type ShopSettings struct {
	ID               string    `bson:"id" json:"id"`
	DefaultStartTime string    `bson:"defaultStartTime" json:"defaultStartTime"`
	DefaultEndTime   string    `bson:"defaultEndTime" json:"defaultEndTime"`
	ClosedDays       []int     `bson:"closedDays" json:"closedDays"` // weekdays with no default window
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
