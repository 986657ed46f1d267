package booking

import (
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"
)

// SlotWindow is the daily bookable grid: [StartHour, EndHour) in IntervalMinutes steps.
type SlotWindow struct {
	StartHour       int
	EndHour         int
	IntervalMinutes int
}

func DefaultSlotWindow() SlotWindow {
	return SlotWindow{StartHour: 9, EndHour: 18, IntervalMinutes: 30}
}

func (w SlotWindow) normalized() SlotWindow {
	if w.IntervalMinutes <= 0 || w.EndHour <= w.StartHour {
		return DefaultSlotWindow()
	}
	return w
}

// Minutes returns every slot start of the window in minutes since midnight.
func (w SlotWindow) Minutes() []int {
	w = w.normalized()
	var minutes []int
	for m := w.StartHour * 60; m < w.EndHour*60; m += w.IntervalMinutes {
		minutes = append(minutes, m)
	}
	return minutes
}

// Contains reports whether minute is a slot start on the grid.
func (w SlotWindow) Contains(minute int) bool {
	w = w.normalized()
	start, end := w.StartHour*60, w.EndHour*60
	return minute >= start && minute < end && (minute-start)%w.IntervalMinutes == 0
}

// PeriodFor classifies a slot start: morning before noon, afternoon before 17:00, evening after.
func PeriodFor(minute int) models.SlotPeriod {
	switch hour := minute / 60; {
	case hour < 12:
		return models.PeriodMorning
	case hour < 17:
		return models.PeriodAfternoon
	default:
		return models.PeriodEvening
	}
}

// BuildDaySlots generates the slot listing for doctor on date. booked holds the active
// appointments of that doctor and date. When date is the same calendar day as now,
// slots starting at or before the current minute are omitted.
func BuildDaySlots(doctor models.Doctor, date, now time.Time, window SlotWindow, booked []models.Appointment) models.DaySlots {
	day := newDaySlots(doctor, date)
	dateStr := day.Date
	if !day.IsWorkingDay {
		return day
	}

	taken := make(map[int]bool, len(booked))
	for _, a := range booked {
		if a.Status.Active() {
			taken[a.StartMinute] = true
		}
	}

	isToday := now.Format(utils.DateLayout) == dateStr
	nowMinute := minuteOfDay(now)

	// Ids number the retained slots from 1.
	slotID := 0
	for _, minute := range window.Minutes() {
		if isToday && minute <= nowMinute {
			continue
		}
		slotID++
		slot := models.TimeSlot{
			ID:          fmt.Sprintf("slot-%s-%s-%d", doctor.ID, dateStr, slotID),
			StartMinute: minute,
			Time:        FormatMinutes(minute),
			Type:        PeriodFor(minute),
			Available:   !taken[minute],
			Date:        dateStr,
			DoctorID:    doctor.ID,
		}
		switch slot.Type {
		case models.PeriodMorning:
			day.Morning = append(day.Morning, slot)
		case models.PeriodAfternoon:
			day.Afternoon = append(day.Afternoon, slot)
		default:
			day.Evening = append(day.Evening, slot)
		}
		day.TotalSlots++
		if slot.Available {
			day.AvailableSlots++
		}
	}
	return day
}

// newDaySlots returns the listing header for doctor on date with no slots.
func newDaySlots(doctor models.Doctor, date time.Time) models.DaySlots {
	weekday := date.Weekday().String()
	return models.DaySlots{
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		Date:         date.Format(utils.DateLayout),
		DayOfWeek:    weekday,
		GroupedSlots: emptyGroups(),
		IsWorkingDay: doctor.WorksOn(weekday),
		WorkingHours: doctor.WorkingHours,
	}
}

func emptyGroups() models.GroupedSlots {
	return models.GroupedSlots{
		Morning:   []models.TimeSlot{},
		Afternoon: []models.TimeSlot{},
		Evening:   []models.TimeSlot{},
	}
}
