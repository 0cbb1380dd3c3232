package roster

import (
	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
	"github.com/elitekutzdev/elitekutz-sms/internal/phone"
)

// Snapshot is a read-only view of the roster taken at a point in time.
// Planners and the inbound classifier operate on snapshots only, so no
// locking is needed at request time.
type Snapshot struct {
	members []domain.StaffMember
	byID    map[string]int
	byPhone map[string]int
}

// NewSnapshot builds a snapshot from a staff list. Load order is
// preserved; it governs fan-out ordering for roster-wide notifications.
func NewSnapshot(members []domain.StaffMember) *Snapshot {
	s := &Snapshot{
		members: append([]domain.StaffMember(nil), members...),
		byID:    make(map[string]int, len(members)),
		byPhone: make(map[string]int, len(members)),
	}
	for i, m := range s.members {
		s.byID[m.ID] = i
		if key := phone.Normalize(m.Phone); key != "" {
			s.byPhone[key] = i
		}
	}
	return s
}

// All returns every staff member in load order.
func (s *Snapshot) All() []domain.StaffMember {
	return append([]domain.StaffMember(nil), s.members...)
}

// ByID looks up a staff member by id.
func (s *Snapshot) ByID(id string) (domain.StaffMember, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.StaffMember{}, false
	}
	return s.members[i], true
}

// ByPhone looks up a staff member by phone number. The key is
// normalized before comparison, so any textual form of the same number
// resolves identically.
func (s *Snapshot) ByPhone(raw string) (domain.StaffMember, bool) {
	i, ok := s.byPhone[phone.Normalize(raw)]
	if !ok {
		return domain.StaffMember{}, false
	}
	return s.members[i], true
}

// Busy returns staff whose status is anything other than available.
func (s *Snapshot) Busy() []domain.StaffMember {
	var out []domain.StaffMember
	for _, m := range s.members {
		if m.Status != domain.StaffAvailable {
			out = append(out, m)
		}
	}
	return out
}

// Unavailable returns staff explicitly marked unavailable. This is a
// subset of Busy; callers that union the two keep the union form for
// extensibility even though it is redundant today.
func (s *Snapshot) Unavailable() []domain.StaffMember {
	var out []domain.StaffMember
	for _, m := range s.members {
		if m.Status == domain.StaffUnavailable {
			out = append(out, m)
		}
	}
	return out
}
