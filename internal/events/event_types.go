package events

import (
	apperrors "github.com/elitekutzdev/elitekutz-sms/pkg/util/errorutil"
)

// EventKind enumerates kiosk lifecycle events recognized by the
// planning engine.
type EventKind string

const (
	EventSpecificBarberRequest EventKind = "SPECIFIC_BARBER_REQUEST"
	EventClientRemoved         EventKind = "CLIENT_REMOVED_FROM_KIOSK"
	EventClientAssigned        EventKind = "CLIENT_ASSIGNED"
	EventClientWaitlisted      EventKind = "CLIENT_PLACED_ON_WAITLIST"
	EventClientRewaitlisted    EventKind = "CLIENT_RE-WAITLISTED"
)

// ParseKind validates a raw event kind string.
func ParseKind(raw string) (EventKind, error) {
	switch EventKind(raw) {
	case EventSpecificBarberRequest, EventClientRemoved, EventClientAssigned,
		EventClientWaitlisted, EventClientRewaitlisted:
		return EventKind(raw), nil
	}
	return "", apperrors.NewUnknownEventKind(raw)
}

// Assignment pairs a barber with a position inside the client's party.
// MemberIndex defaults to 1 when unset.
type Assignment struct {
	BarberID    string `json:"barber_id"`
	MemberIndex int    `json:"member_index"`
}

// Payload carries the event fields supplied by the kiosk. Kind-specific
// fields are left zero for kinds that do not use them.
type Payload struct {
	ClientName     string       `json:"client_name"`
	ClientPhone    string       `json:"client_phone"`
	Assignments    []Assignment `json:"assignments,omitempty"`
	DeclinedPhotos bool         `json:"declined_photos,omitempty"`
	IndexLabel     string       `json:"index_label,omitempty"`
}
