package domain

// StaffStatus enumerates barber availability states.
type StaffStatus string

const (
	StaffAvailable   StaffStatus = "available"
	StaffBusy        StaffStatus = "busy"
	StaffUnavailable StaffStatus = "unavailable"
)

// Valid reports whether the status is one of the known states.
func (s StaffStatus) Valid() bool {
	switch s {
	case StaffAvailable, StaffBusy, StaffUnavailable:
		return true
	}
	return false
}

// StaffMember models a barber on the shop roster. The roster is loaded
// once at process start; planners only ever see read-only snapshots.
type StaffMember struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Phone  string      `json:"phone"`
	Status StaffStatus `json:"status"`
}
