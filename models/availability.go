package models

import "time"

// AvailabilityOverride is a doctor-set flag for one date. IsAvailable=false
// suppresses every slot on that date.
type AvailabilityOverride struct {
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	Notes       string    `bson:"notes" json:"notes"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type AvailabilityRequest struct {
	Date        string `json:"date"`
	IsAvailable *bool  `json:"isAvailable"`
	Notes       string `json:"notes"`
}
