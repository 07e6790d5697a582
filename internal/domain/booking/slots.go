package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// FixedSlots are the offerable slot starts, in shop local time.
var FixedSlots = []string{
	"09:00", "09:45", "10:30", "11:15",
	"13:00", "13:45", "14:30", "15:15",
	"16:00", "16:45", "17:30", "18:15",
	"19:00",
}

type Slot struct {
	Time      string    `json:"time"`
	Start     time.Time `json:"start"`
	Available bool      `json:"available"`
}

// BuildSlots expands FixedSlots on day (in loc) and marks each one
// unavailable when occupied, already started, or outside the schedule.
// A nil schedule leaves the fixed list unfiltered.
func BuildSlots(
	day time.Time,
	loc *time.Location,
	occupied []time.Time,
	schedule *models.BarberSchedule,
	now time.Time,
) []Slot {

	local := day.In(loc)

	taken := make(map[int64]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t.Unix()] = struct{}{}
	}

	slots := make([]Slot, 0, len(FixedSlots))
	for _, hm := range FixedSlots {
		start, err := atClock(local, hm, loc)
		if err != nil {
			continue
		}

		_, busy := taken[start.Unix()]
		available := !busy &&
			!start.Before(now) &&
			withinSchedule(local, hm, schedule)

		slots = append(slots, Slot{
			Time:      hm,
			Start:     start.UTC(),
			Available: available,
		})
	}

	return slots
}

func withinSchedule(day time.Time, hm string, schedule *models.BarberSchedule) bool {
	if schedule == nil {
		return true
	}
	if !schedule.Active || schedule.Start == "" || schedule.End == "" {
		return false
	}
	// "HH:MM" strings compare in clock order.
	return hm >= schedule.Start && hm < schedule.End
}

func atClock(day time.Time, hm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}
