package inbound

import (
	"strings"

	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
)

// ActionKind is the closed set of inbound command classifications.
type ActionKind string

const (
	ActionOptOut          ActionKind = "opt_out"
	ActionOptIn           ActionKind = "opt_in"
	ActionHelp            ActionKind = "help"
	ActionSetAvailability ActionKind = "set_availability"
	ActionUnrecognized    ActionKind = "unrecognized"
)

// Action is the result of classifying one inbound message. For
// ActionSetAvailability, StaffID is empty when the sender's phone did
// not match any barber; the caller replies "not recognized" and leaves
// the roster untouched.
type Action struct {
	Kind      ActionKind
	StaffID   string
	StaffName string
	Available bool
}

// Carrier-standard compliance keywords, matched exactly after
// normalization.
var optOutKeywords = map[string]bool{
	"STOP": true, "STOPALL": true, "UNSUBSCRIBE": true,
	"CANCEL": true, "END": true, "QUIT": true,
}

var optInKeywords = map[string]bool{
	"START": true, "YES": true, "UNSTOP": true,
}

// Classify maps one inbound SMS to an action. Single-shot, no
// multi-turn state; it never fails, degrading to ActionUnrecognized.
// Matching runs in priority order: opt-out, opt-in, HELP, availability
// commands, then the unrecognized fallback.
func Classify(fromRaw, textRaw string, snap *roster.Snapshot) Action {
	text := normalizeText(textRaw)

	switch {
	case optOutKeywords[text]:
		return Action{Kind: ActionOptOut}
	case optInKeywords[text]:
		return Action{Kind: ActionOptIn}
	case text == "HELP":
		return Action{Kind: ActionHelp}
	case text == "AVAILABLE" || text == "UNAVAILABLE":
		action := Action{Kind: ActionSetAvailability, Available: text == "AVAILABLE"}
		if member, ok := snap.ByPhone(fromRaw); ok {
			action.StaffID = member.ID
			action.StaffName = member.Name
		}
		return action
	}
	return Action{Kind: ActionUnrecognized}
}

// Status returns the roster status an availability action maps to.
func (a Action) Status() domain.StaffStatus {
	if a.Available {
		return domain.StaffAvailable
	}
	return domain.StaffUnavailable
}

// normalizeText trims, uppercases and collapses interior whitespace.
func normalizeText(raw string) string {
	return strings.Join(strings.Fields(strings.ToUpper(raw)), " ")
}
