package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/elitekutzdev/elitekutz-sms/internal/events"
)

// FlexLabel accepts a JSON string or number; kiosks have sent both for
// line positions. The core only ever sees the string form.
type FlexLabel string

func (f *FlexLabel) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexLabel(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexLabel(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexLabel(n.String())
	return nil
}

// AssignmentRequest mirrors the kiosk's assignment shape.
type AssignmentRequest struct {
	BarberID    string `json:"barberId"`
	MemberIndex int    `json:"memberIndex"`
}

// EventRequest is the kiosk event payload.
type EventRequest struct {
	Kind           string              `json:"kind"`
	ClientName     string              `json:"clientName"`
	ClientPhone    string              `json:"clientPhone"`
	Assignments    []AssignmentRequest `json:"assignments"`
	DeclinedPhotos bool                `json:"declinedPhotos"`
	IndexLabel     FlexLabel           `json:"indexLabel"`
}

// ToPayload converts the transport shape into the planner payload.
func (r EventRequest) ToPayload() events.Payload {
	assignments := make([]events.Assignment, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		assignments = append(assignments, events.Assignment{
			BarberID:    a.BarberID,
			MemberIndex: a.MemberIndex,
		})
	}
	if len(assignments) == 0 {
		assignments = nil
	}
	return events.Payload{
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		Assignments:    assignments,
		DeclinedPhotos: r.DeclinedPhotos,
		IndexLabel:     string(r.IndexLabel),
	}
}
