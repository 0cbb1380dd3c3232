package roster

import (
	"sync"

	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
	apperrors "github.com/elitekutzdev/elitekutz-sms/pkg/util/errorutil"
)

// Store holds the mutable roster state. Status changes arrive as
// external inputs (admin endpoint, barber AVAILABLE/UNAVAILABLE texts);
// everything else reads immutable snapshots.
type Store struct {
	mu      sync.RWMutex
	members []domain.StaffMember
}

// NewStore seeds a store with the loaded staff list.
func NewStore(members []domain.StaffMember) *Store {
	return &Store{members: append([]domain.StaffMember(nil), members...)}
}

// Snapshot returns a read-only copy of the current roster.
func (st *Store) Snapshot() *Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return NewSnapshot(st.members)
}

// SetStatus updates one staff member's availability.
func (st *Store) SetStatus(id string, status domain.StaffStatus) (domain.StaffMember, error) {
	if !status.Valid() {
		return domain.StaffMember{}, apperrors.NewValidationError("invalid staff status", map[string]any{"status": string(status)})
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.members {
		if st.members[i].ID == id {
			st.members[i].Status = status
			return st.members[i], nil
		}
	}
	return domain.StaffMember{}, apperrors.NewNotFound("staff", map[string]any{"staff_id": id})
}
