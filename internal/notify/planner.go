package notify

import (
	"strings"

	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
	"github.com/elitekutzdev/elitekutz-sms/internal/events"
	"github.com/elitekutzdev/elitekutz-sms/internal/phone"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
	apperrors "github.com/elitekutzdev/elitekutz-sms/pkg/util/errorutil"
)

// PlannedMessage is one outbound SMS produced by a planner. Immutable
// once produced; list order is client message first, then staff
// messages in roster/group order.
type PlannedMessage struct {
	To   string `json:"to"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type plannerFunc func(events.Payload, *roster.Snapshot) ([]PlannedMessage, error)

// planners selects the planner for an event kind.
var planners = map[events.EventKind]plannerFunc{
	events.EventSpecificBarberRequest: planSpecificRequest,
	events.EventClientRemoved:         planRemoved,
	events.EventClientAssigned:        planAssigned,
	events.EventClientWaitlisted:      planWaitlisted,
	events.EventClientRewaitlisted:    planRewaitlisted,
}

// Plan converts one event into its outbound messages. Pure given the
// snapshot; validation failures abort the whole plan with no partial
// list.
func Plan(kind events.EventKind, p events.Payload, snap *roster.Snapshot) ([]PlannedMessage, error) {
	planner, ok := planners[kind]
	if !ok {
		return nil, apperrors.NewUnknownEventKind(string(kind))
	}
	if strings.TrimSpace(p.ClientName) == "" {
		return nil, apperrors.NewMissingField("client_name")
	}
	if strings.TrimSpace(p.ClientPhone) == "" {
		return nil, apperrors.NewMissingField("client_phone")
	}
	return planner(p, snap)
}

func planSpecificRequest(p events.Payload, snap *roster.Snapshot) ([]PlannedMessage, error) {
	if len(p.Assignments) == 0 {
		return nil, apperrors.NewMissingAssignments()
	}
	groups, err := GroupByBarber(p.Assignments, snap)
	if err != nil {
		return nil, err
	}

	text, isMulti := SingleOrMulti(Names(groups),
		func(name string) string { return RequestClientSingle(p.ClientName, name) },
		func(names string) string { return RequestClientMulti(p.ClientName, names) })
	kind := KindRequestClientSingle
	if isMulti {
		kind = KindRequestClientMulti
	}

	msgs := []PlannedMessage{{To: p.ClientPhone, Kind: kind, Text: text}}
	for _, g := range groups {
		msgs = append(msgs, PlannedMessage{
			To:   g.Phone,
			Kind: KindRequestBarber,
			Text: RequestBarber(p.ClientName, MembersNote(g.Count, g.Indexes), declinedNote(p)),
		})
	}
	return msgs, nil
}

func planRemoved(p events.Payload, _ *roster.Snapshot) ([]PlannedMessage, error) {
	return []PlannedMessage{{
		To:   p.ClientPhone,
		Kind: KindRemovedClient,
		Text: RemovedClient(p.ClientName),
	}}, nil
}

func planAssigned(p events.Payload, snap *roster.Snapshot) ([]PlannedMessage, error) {
	if len(p.Assignments) == 0 {
		return nil, apperrors.NewMissingAssignments()
	}
	groups, err := GroupByBarber(p.Assignments, snap)
	if err != nil {
		return nil, err
	}

	text, isMulti := SingleOrMulti(Names(groups),
		func(name string) string { return AssignedClientSingle(p.ClientName, name) },
		func(names string) string { return AssignedClientMulti(p.ClientName, names) })
	kind := KindAssignedClientSingle
	if isMulti {
		kind = KindAssignedClientMulti
	}

	msgs := []PlannedMessage{{To: p.ClientPhone, Kind: kind, Text: text}}
	for _, g := range groups {
		msgs = append(msgs, PlannedMessage{
			To:   g.Phone,
			Kind: KindAssignedBarber,
			Text: AssignedBarber(p.ClientName, MembersNote(g.Count, g.Indexes)),
		})
	}
	return msgs, nil
}

func planWaitlisted(p events.Payload, snap *roster.Snapshot) ([]PlannedMessage, error) {
	if len(p.Assignments) > 0 {
		groups, err := GroupByBarber(p.Assignments, snap)
		if err != nil {
			return nil, err
		}
		// the single-barber case also renders the multi template here
		msgs := []PlannedMessage{{
			To:   p.ClientPhone,
			Kind: KindWaitlistClientMulti,
			Text: WaitlistClient(p.ClientName, strings.Join(Names(groups), ", ")),
		}}
		for _, g := range groups {
			msgs = append(msgs, PlannedMessage{
				To:   g.Phone,
				Kind: KindWaitlistBarber,
				Text: WaitlistBarber(p.ClientName, MembersNote(g.Count, g.Indexes), declinedNote(p)),
			})
		}
		return msgs, nil
	}

	// first-available flow: position text to the client, compact text to
	// every busy-or-unavailable barber
	label := p.IndexLabel
	if label == "" {
		label = "?"
	}
	msgs := []PlannedMessage{{
		To:   p.ClientPhone,
		Kind: KindWaitlistClientPosition,
		Text: WaitlistClientPosition(p.ClientName, label),
	}}
	for _, m := range notifySet(snap) {
		msgs = append(msgs, PlannedMessage{
			To:   m.Phone,
			Kind: KindWaitlistBarberFirstAvailable,
			Text: WaitlistBarberFirstAvailable(p.ClientName),
		})
	}
	return msgs, nil
}

func planRewaitlisted(p events.Payload, snap *roster.Snapshot) ([]PlannedMessage, error) {
	groups, err := GroupByBarber(p.Assignments, snap)
	if err != nil {
		return nil, err
	}

	var msgs []PlannedMessage
	if len(groups) > 0 {
		// no single variant on this path; multi template regardless of count
		msgs = append(msgs, PlannedMessage{
			To:   p.ClientPhone,
			Kind: KindRewaitlistClientMulti,
			Text: RewaitlistClient(p.ClientName, strings.Join(Names(groups), ", ")),
		})
	} else {
		msgs = append(msgs, PlannedMessage{
			To:   p.ClientPhone,
			Kind: KindRewaitlistClientSingle,
			Text: RewaitlistClientSingle(p.ClientName),
		})
	}

	byBarber := make(map[string]GroupedAssignment, len(groups))
	for _, g := range groups {
		byBarber[g.BarberID] = g
	}
	positionNote := PositionNote(p.IndexLabel)
	for _, m := range notifySet(snap) {
		note := ""
		if g, ok := byBarber[m.ID]; ok {
			note = MembersNote(g.Count, g.Indexes)
		}
		msgs = append(msgs, PlannedMessage{
			To:   m.Phone,
			Kind: KindRewaitlistBarber,
			Text: RewaitlistBarber(p.ClientName, positionNote, note),
		})
	}
	return msgs, nil
}

func declinedNote(p events.Payload) string {
	if p.DeclinedPhotos {
		return DeclinedNote
	}
	return ""
}

// notifySet returns busy ∪ unavailable staff in roster order, with each
// phone number appearing at most once. The union is redundant today
// (unavailable implies busy) but kept deliberately.
func notifySet(snap *roster.Snapshot) []domain.StaffMember {
	want := make(map[string]bool)
	for _, m := range snap.Busy() {
		want[phone.Normalize(m.Phone)] = true
	}
	for _, m := range snap.Unavailable() {
		want[phone.Normalize(m.Phone)] = true
	}

	seen := make(map[string]bool, len(want))
	var out []domain.StaffMember
	for _, m := range snap.All() {
		key := phone.Normalize(m.Phone)
		if want[key] && !seen[key] {
			seen[key] = true
			out = append(out, m)
		}
	}
	return out
}
