package appointment

import (
	"fmt"
	"strconv"

	"github.com/BruksfildServices01/barbercraft/internal/models"
)

// Slot is a bookable point in the day. A nil StaffID means any staff member.
type Slot struct {
	Date    string
	Time    string
	StaffID *uint
}

func SlotOf(ap *models.Appointment) Slot {
	return Slot{Date: ap.Date, Time: ap.Time, StaffID: ap.StaffID}
}

func (s Slot) Key() string {
	staff := "any"
	if s.StaffID != nil {
		staff = strconv.FormatUint(uint64(*s.StaffID), 10)
	}
	return fmt.Sprintf("%s %s#%s", s.Date, s.Time, staff)
}

// LockKey identifies the (date, time) pair regardless of staff.
func (s Slot) LockKey() string {
	return "slot:" + s.Date + " " + s.Time
}

// Conflicts reports whether two live appointments cannot coexist: same
// date and time, and either the same staff member or no staff on one side.
func Conflicts(a, b Slot) bool {
	if a.Date != b.Date || a.Time != b.Time {
		return false
	}
	if a.StaffID == nil || b.StaffID == nil {
		return true
	}
	return *a.StaffID == *b.StaffID
}

func (s Slot) SameAs(o Slot) bool {
	if s.Date != o.Date || s.Time != o.Time {
		return false
	}
	if s.StaffID == nil || o.StaffID == nil {
		return s.StaffID == nil && o.StaffID == nil
	}
	return *s.StaffID == *o.StaffID
}
