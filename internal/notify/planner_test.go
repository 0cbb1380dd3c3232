package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
	"github.com/elitekutzdev/elitekutz-sms/internal/events"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
	apperrors "github.com/elitekutzdev/elitekutz-sms/pkg/util/errorutil"
)

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, code, de.Code)
}

func TestPlanValidation(t *testing.T) {
	snap := testSnapshot()

	_, err := Plan("BOGUS_EVENT", events.Payload{ClientName: "Ana", ClientPhone: "+12145551000"}, snap)
	assertDomainCode(t, err, "UNKNOWN_EVENT_KIND")

	_, err = Plan(events.EventClientAssigned, events.Payload{ClientPhone: "+12145551000"}, snap)
	assertDomainCode(t, err, "MISSING_FIELD")

	msgs, err := Plan(events.EventClientAssigned, events.Payload{ClientName: "Ana"}, snap)
	assertDomainCode(t, err, "MISSING_FIELD")
	assert.Empty(t, msgs, "no partial plan on validation failure")

	_, err = Plan(events.EventClientAssigned, events.Payload{ClientName: "Ana", ClientPhone: "+12145551000"}, snap)
	assertDomainCode(t, err, "MISSING_ASSIGNMENTS")

	_, err = Plan(events.EventSpecificBarberRequest, events.Payload{ClientName: "Ana", ClientPhone: "+12145551000"}, snap)
	assertDomainCode(t, err, "MISSING_ASSIGNMENTS")

	_, err = Plan(events.EventClientAssigned, events.Payload{
		ClientName:  "Ana",
		ClientPhone: "+12145551000",
		Assignments: []events.Assignment{{BarberID: "ghost"}},
	}, snap)
	assertDomainCode(t, err, "UNKNOWN_BARBER")
}

func TestPlanAssignedSingleBarber(t *testing.T) {
	msgs, err := Plan(events.EventClientAssigned, events.Payload{
		ClientName:  "Ana",
		ClientPhone: "+12145551000",
		Assignments: []events.Assignment{{BarberID: "lyric"}},
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, "+12145551000", msgs[0].To)
	assert.Equal(t, KindAssignedClientSingle, msgs[0].Kind)
	assert.Equal(t, "Hi Ana! Lyric will be taking care of you at Elite Kutz today.", msgs[0].Text)

	assert.Equal(t, "+12145550002", msgs[1].To)
	assert.Equal(t, KindAssignedBarber, msgs[1].Kind)
	assert.Equal(t, "Elite Kutz: Ana has been assigned to you", msgs[1].Text, "no members note for count 1")
}

func TestPlanAssignedMultipleBarbers(t *testing.T) {
	msgs, err := Plan(events.EventClientAssigned, events.Payload{
		ClientName:  "Ana",
		ClientPhone: "+12145551000",
		Assignments: []events.Assignment{{BarberID: "lyric"}, {BarberID: "taja", MemberIndex: 2}},
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Equal(t, KindAssignedClientMulti, msgs[0].Kind)
	assert.Equal(t, "Hi Ana! Lyric, Taja will be taking care of your party at Elite Kutz today.", msgs[0].Text)
	assert.Equal(t, "+12145550002", msgs[1].To)
	assert.Equal(t, "+12145550003", msgs[2].To)
}

func TestPlanSpecificRequest(t *testing.T) {
	msgs, err := Plan(events.EventSpecificBarberRequest, events.Payload{
		ClientName:     "Jo",
		ClientPhone:    "+12145551001",
		DeclinedPhotos: true,
		Assignments: []events.Assignment{
			{BarberID: "mike", MemberIndex: 2},
			{BarberID: "mike", MemberIndex: 1},
		},
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, KindRequestClientSingle, msgs[0].Kind)
	assert.Equal(t, "Hi Jo! Your request for Mike at Elite Kutz has been received. We'll text you when your barber is ready.", msgs[0].Text)

	assert.Equal(t, KindRequestBarber, msgs[1].Kind)
	assert.Equal(t, "Elite Kutz: Jo requested you at the kiosk (members: 1, 2) — PHOTOS/VIDEOS DECLINED", msgs[1].Text)
}

func TestPlanRemoved(t *testing.T) {
	msgs, err := Plan(events.EventClientRemoved, events.Payload{
		ClientName:  "Jo",
		ClientPhone: "+12145551001",
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, KindRemovedClient, msgs[0].Kind)
	assert.Equal(t, "Hi Jo, you have been removed from the Elite Kutz waitlist. See us again soon!", msgs[0].Text)
}

func TestPlanWaitlistedWithSelection(t *testing.T) {
	msgs, err := Plan(events.EventClientWaitlisted, events.Payload{
		ClientName:  "Jo",
		ClientPhone: "+12145551001",
		Assignments: []events.Assignment{{BarberID: "taja"}},
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	// single barber still renders the multi template on this path
	assert.Equal(t, KindWaitlistClientMulti, msgs[0].Kind)
	assert.Equal(t, "Hi Jo! You're on the Elite Kutz waitlist for Taja. We'll text you when it's your turn.", msgs[0].Text)
	assert.Equal(t, "Elite Kutz: Jo joined your waitlist", msgs[1].Text)
}

func TestPlanWaitlistedFirstAvailable(t *testing.T) {
	msgs, err := Plan(events.EventClientWaitlisted, events.Payload{
		ClientName:  "Jo",
		ClientPhone: "+12145551001",
		IndexLabel:  "3",
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, msgs, 3, "client plus both busy-or-unavailable barbers")

	assert.Equal(t, KindWaitlistClientPosition, msgs[0].Kind)
	assert.Equal(t, "Hi Jo! You're #3 on the Elite Kutz waitlist for the first available barber. We'll text you when it's your turn.", msgs[0].Text)

	assert.Equal(t, "+12145550002", msgs[1].To)
	assert.Equal(t, "+12145550003", msgs[2].To)
	for _, m := range msgs[1:] {
		assert.Equal(t, KindWaitlistBarberFirstAvailable, m.Kind)
		assert.Equal(t, "Elite Kutz: Jo joined the waitlist for the first available barber", m.Text)
	}
}

func TestPlanWaitlistedFirstAvailableDefaultsLabel(t *testing.T) {
	msgs, err := Plan(events.EventClientWaitlisted, events.Payload{
		ClientName:  "Jo",
		ClientPhone: "+12145551001",
	}, testSnapshot())
	require.NoError(t, err)
	assert.Contains(t, msgs[0].Text, "#?")
}

func TestPlanWaitlistedDeduplicatesPhones(t *testing.T) {
	// two roster entries share a phone in different textual forms
	snap := roster.NewSnapshot([]domain.StaffMember{
		{ID: "lyric", Name: "Lyric", Phone: "+12145550002", Status: domain.StaffBusy},
		{ID: "lyric2", Name: "Lyric B", Phone: "(214) 555-0002", Status: domain.StaffUnavailable},
	})
	msgs, err := Plan(events.EventClientWaitlisted, events.Payload{
		ClientName:  "Jo",
		ClientPhone: "+12145551001",
	}, snap)
	require.NoError(t, err)
	require.Len(t, msgs, 2, "shared phone notified once")
	assert.Equal(t, "+12145550002", msgs[1].To)
}

func TestPlanRewaitlistedWithAssignments(t *testing.T) {
	msgs, err := Plan(events.EventClientRewaitlisted, events.Payload{
		ClientName:  "Jo",
		ClientPhone: "+12145551001",
		IndexLabel:  "2",
		Assignments: []events.Assignment{
			{BarberID: "lyric", MemberIndex: 1},
			{BarberID: "lyric", MemberIndex: 2},
		},
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, msgs, 3, "client plus busy set in roster order")

	assert.Equal(t, KindRewaitlistClientMulti, msgs[0].Kind)
	assert.Equal(t, "Hi Jo, you're back on the Elite Kutz waitlist for Lyric. We'll text you when it's your turn.", msgs[0].Text)

	// lyric is in the assignment groups, so her text carries the note
	assert.Equal(t, "+12145550002", msgs[1].To)
	assert.Equal(t, "Elite Kutz: Jo is back on the waitlist at position 2 (members: 1, 2)", msgs[1].Text)

	// taja is in the notify set but not the groups: empty note kept
	assert.Equal(t, "+12145550003", msgs[2].To)
	assert.Equal(t, "Elite Kutz: Jo is back on the waitlist at position 2", msgs[2].Text)
}

func TestPlanRewaitlistedWithoutAssignments(t *testing.T) {
	msgs, err := Plan(events.EventClientRewaitlisted, events.Payload{
		ClientName:  "Jo",
		ClientPhone: "+12145551001",
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, KindRewaitlistClientSingle, msgs[0].Kind)
	assert.Equal(t, "Hi Jo, you're back on the Elite Kutz waitlist. We'll text you when it's your turn.", msgs[0].Text)
	assert.Equal(t, "Elite Kutz: Jo is back on the waitlist", msgs[1].Text, "no position note without index label")
}

func TestPlanIsIdempotent(t *testing.T) {
	payload := events.Payload{
		ClientName:  "Ana",
		ClientPhone: "+12145551000",
		Assignments: []events.Assignment{{BarberID: "lyric"}, {BarberID: "taja"}},
	}
	snap := testSnapshot()

	first, err := Plan(events.EventClientAssigned, payload, snap)
	require.NoError(t, err)
	second, err := Plan(events.EventClientAssigned, payload, snap)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
