package dto

import "github.com/elitekutzdev/elitekutz-sms/internal/domain"

// StaffResponse is the roster entry shape returned to kiosk callers.
type StaffResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// StatusUpdateRequest carries an availability change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// NewStaffResponse maps a domain staff member.
func NewStaffResponse(m domain.StaffMember) StaffResponse {
	return StaffResponse{
		ID:     m.ID,
		Name:   m.Name,
		Phone:  m.Phone,
		Status: string(m.Status),
	}
}
