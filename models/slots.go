package models

type SlotPeriod string

const (
	PeriodMorning   SlotPeriod = "morning"
	PeriodAfternoon SlotPeriod = "afternoon"
	PeriodEvening   SlotPeriod = "evening"
)

// TimeSlot is a derived, never persisted, bookable interval for one doctor on one date.
type TimeSlot struct {
	ID          string     `json:"id"`
	StartMinute int        `json:"startMinute"` // minutes from midnight (e.g., 540 for 9:00 AM)
	Time        string     `json:"time"`        // e.g. "9:00 AM"
	Type        SlotPeriod `json:"type"`
	Available   bool       `json:"available"`
	Date        string     `json:"date"`
	DoctorID    string     `json:"doctorId"`
}

type GroupedSlots struct {
	Morning   []TimeSlot `json:"morning"`
	Afternoon []TimeSlot `json:"afternoon"`
	Evening   []TimeSlot `json:"evening"`
}

// DaySlots is the slot listing for one doctor and date. The period groups are
// flattened into the top-level object.
type DaySlots struct {
	DoctorID   string `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Date       string `json:"date"`
	DayOfWeek  string `json:"dayOfWeek"`
	GroupedSlots
	TotalSlots     int                   `json:"totalSlots"`
	AvailableSlots int                   `json:"availableSlots"`
	IsWorkingDay   bool                  `json:"isWorkingDay"`
	WorkingHours   string                `json:"workingHours"`
	Override       *AvailabilityOverride `json:"override,omitempty"`
}

// All returns every slot in start order.
func (g GroupedSlots) All() []TimeSlot {
	all := make([]TimeSlot, 0, len(g.Morning)+len(g.Afternoon)+len(g.Evening))
	all = append(all, g.Morning...)
	all = append(all, g.Afternoon...)
	return append(all, g.Evening...)
}
