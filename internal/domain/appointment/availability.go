package appointment

import "fmt"

const (
	gridStartMinutes = 9 * 60
	gridEndMinutes   = 18*60 + 30
	gridStepMinutes  = 30
)

type AvailabilityInput struct {
	Date      string
	ServiceID uint
	StaffID   *uint
}

// DayGrid is the fixed half-hour grid, 09:00 through 18:30.
func DayGrid() []string {
	slots := make([]string, 0, (gridEndMinutes-gridStartMinutes)/gridStepMinutes+1)
	for m := gridStartMinutes; m <= gridEndMinutes; m += gridStepMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// FreeSlots removes booked times from the grid, keeping grid order.
func FreeSlots(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(DayGrid()))
	for _, t := range DayGrid() {
		if _, ok := taken[t]; !ok {
			free = append(free, t)
		}
	}
	return free
}
