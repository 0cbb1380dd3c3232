package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
	"github.com/elitekutzdev/elitekutz-sms/internal/events"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
)

func testSnapshot() *roster.Snapshot {
	return roster.NewSnapshot([]domain.StaffMember{
		{ID: "mike", Name: "Mike", Phone: "+12145550001", Status: domain.StaffAvailable},
		{ID: "lyric", Name: "Lyric", Phone: "+12145550002", Status: domain.StaffBusy},
		{ID: "taja", Name: "Taja", Phone: "+12145550003", Status: domain.StaffUnavailable},
	})
}

func TestGroupByBarberSortsIndexes(t *testing.T) {
	groups, err := GroupByBarber([]events.Assignment{
		{BarberID: "mike", MemberIndex: 2},
		{BarberID: "mike", MemberIndex: 1},
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{1, 2}, groups[0].Indexes)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "Mike", groups[0].BarberName)
	assert.Equal(t, "+12145550001", groups[0].Phone)
}

func TestGroupByBarberPreservesFirstSeenOrder(t *testing.T) {
	groups, err := GroupByBarber([]events.Assignment{
		{BarberID: "taja", MemberIndex: 1},
		{BarberID: "mike", MemberIndex: 2},
		{BarberID: "taja", MemberIndex: 3},
	}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "taja", groups[0].BarberID)
	assert.Equal(t, "mike", groups[1].BarberID)
	assert.Equal(t, []int{1, 3}, groups[0].Indexes)
}

func TestGroupByBarberDefaultsMemberIndex(t *testing.T) {
	groups, err := GroupByBarber([]events.Assignment{{BarberID: "lyric"}}, testSnapshot())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{1}, groups[0].Indexes)
}

func TestGroupByBarberUnknownID(t *testing.T) {
	_, err := GroupByBarber([]events.Assignment{{BarberID: "ghost"}}, testSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown barber ghost")
}

func TestSingleOrMulti(t *testing.T) {
	single := func(n string) string { return "one:" + n }
	multi := func(n string) string { return "many:" + n }

	text, isMulti := SingleOrMulti([]string{"Lyric"}, single, multi)
	assert.False(t, isMulti)
	assert.Equal(t, "one:Lyric", text)

	text, isMulti = SingleOrMulti([]string{"Lyric", "Taja"}, single, multi)
	assert.True(t, isMulti)
	assert.Equal(t, "many:Lyric, Taja", text)
}

func TestMembersNote(t *testing.T) {
	assert.Equal(t, "", MembersNote(1, []int{1}))
	assert.Equal(t, "", MembersNote(0, nil))
	assert.Equal(t, " (members: 1, 3)", MembersNote(2, []int{1, 3}))
}
