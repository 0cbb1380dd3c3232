package notify

import "fmt"

// Message kind identifiers attached to planned messages. They name the
// template used, which drives logging and result reporting.
const (
	KindRequestClientSingle          = "request_client_single"
	KindRequestClientMulti           = "request_client_multi"
	KindRequestBarber                = "request_barber"
	KindRemovedClient                = "removed_client"
	KindAssignedClientSingle         = "assigned_client_single"
	KindAssignedClientMulti          = "assigned_client_multi"
	KindAssignedBarber               = "assigned_barber"
	KindWaitlistClientMulti          = "waitlist_client_multi"
	KindWaitlistClientPosition       = "waitlist_client_position"
	KindWaitlistBarber               = "waitlist_barber"
	KindWaitlistBarberFirstAvailable = "waitlist_barber_first_available"
	KindRewaitlistClientMulti        = "rewaitlist_client_multi"
	KindRewaitlistClientSingle       = "rewaitlist_client_single"
	KindRewaitlistBarber             = "rewaitlist_barber"
)

// DeclinedNote is appended to staff-facing texts when the client
// declined photos and videos at the kiosk. The literal text is part of
// the user-facing contract.
const DeclinedNote = " — PHOTOS/VIDEOS DECLINED"

// Everything below is a pure text function. No I/O, no state; the
// exact strings are contract, not illustration.

func RequestClientSingle(client, barber string) string {
	return fmt.Sprintf("Hi %s! Your request for %s at Elite Kutz has been received. We'll text you when your barber is ready.", client, barber)
}

func RequestClientMulti(client, barbers string) string {
	return fmt.Sprintf("Hi %s! Your request for %s at Elite Kutz has been received. We'll text you when your barbers are ready.", client, barbers)
}

func RequestBarber(client, membersNote, declinedNote string) string {
	return fmt.Sprintf("Elite Kutz: %s requested you at the kiosk%s%s", client, membersNote, declinedNote)
}

func RemovedClient(client string) string {
	return fmt.Sprintf("Hi %s, you have been removed from the Elite Kutz waitlist. See us again soon!", client)
}

func AssignedClientSingle(client, barber string) string {
	return fmt.Sprintf("Hi %s! %s will be taking care of you at Elite Kutz today.", client, barber)
}

func AssignedClientMulti(client, barbers string) string {
	return fmt.Sprintf("Hi %s! %s will be taking care of your party at Elite Kutz today.", client, barbers)
}

func AssignedBarber(client, membersNote string) string {
	return fmt.Sprintf("Elite Kutz: %s has been assigned to you%s", client, membersNote)
}

// WaitlistClient renders the waitlist confirmation. This is the
// multi-arity template; it is used even when a single barber was
// selected, matching longstanding output.
func WaitlistClient(client, barbers string) string {
	return fmt.Sprintf("Hi %s! You're on the Elite Kutz waitlist for %s. We'll text you when it's your turn.", client, barbers)
}

func WaitlistClientPosition(client, indexLabel string) string {
	return fmt.Sprintf("Hi %s! You're #%s on the Elite Kutz waitlist for the first available barber. We'll text you when it's your turn.", client, indexLabel)
}

func WaitlistBarber(client, membersNote, declinedNote string) string {
	return fmt.Sprintf("Elite Kutz: %s joined your waitlist%s%s", client, membersNote, declinedNote)
}

func WaitlistBarberFirstAvailable(client string) string {
	return fmt.Sprintf("Elite Kutz: %s joined the waitlist for the first available barber", client)
}

// RewaitlistClient is the multi-arity template; like WaitlistClient it
// also serves the single-barber case.
func RewaitlistClient(client, barbers string) string {
	return fmt.Sprintf("Hi %s, you're back on the Elite Kutz waitlist for %s. We'll text you when it's your turn.", client, barbers)
}

func RewaitlistClientSingle(client string) string {
	return fmt.Sprintf("Hi %s, you're back on the Elite Kutz waitlist. We'll text you when it's your turn.", client)
}

func RewaitlistBarber(client, positionNote, membersNote string) string {
	return fmt.Sprintf("Elite Kutz: %s is back on the waitlist%s%s", client, positionNote, membersNote)
}

// PositionNote annotates staff re-waitlist texts with the client's line
// position when the kiosk supplied one.
func PositionNote(indexLabel string) string {
	if indexLabel == "" {
		return ""
	}
	return fmt.Sprintf(" at position %s", indexLabel)
}

// Inbound reply texts.

const (
	ReplyOptIn         = "You're opted back in to Elite Kutz notifications. Reply STOP at any time to opt out."
	ReplyHelp          = "Elite Kutz: reply STOP to opt out of notifications, START to opt back in. Barbers can text AVAILABLE or UNAVAILABLE to update their status."
	ReplyNotRecognized = "Sorry, this number isn't recognized as an Elite Kutz barber. No changes were made."
	ReplyDefault       = "Thanks! Reply HELP for a list of commands."
)

func ReplyAvailability(name string, available bool) string {
	status := "available"
	if !available {
		status = "unavailable"
	}
	return fmt.Sprintf("Thanks %s, you're now marked as %s.", name, status)
}
