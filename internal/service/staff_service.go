package service

import (
	"go.uber.org/zap"

	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
)

// StaffService exposes roster reads and the external availability
// input. Planners never touch the store directly; they get snapshots
// through NotificationService.
type StaffService struct {
	store  *roster.Store
	logger *zap.Logger
}

// NewStaffService constructs the service.
func NewStaffService(store *roster.Store, logger *zap.Logger) *StaffService {
	return &StaffService{store: store, logger: logger}
}

// List returns the current roster in load order.
func (s *StaffService) List() []domain.StaffMember {
	return s.store.Snapshot().All()
}

// SetStatus applies an availability change from the kiosk/admin side.
func (s *StaffService) SetStatus(id string, status domain.StaffStatus) (domain.StaffMember, error) {
	member, err := s.store.SetStatus(id, status)
	if err != nil {
		return domain.StaffMember{}, err
	}
	s.logger.Info("staff status updated",
		zap.String("staff_id", member.ID),
		zap.String("status", string(member.Status)))
	return member, nil
}
