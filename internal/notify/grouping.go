package notify

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/elitekutzdev/elitekutz-sms/internal/events"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
	apperrors "github.com/elitekutzdev/elitekutz-sms/pkg/util/errorutil"
)

// GroupedAssignment aggregates the party members served by one barber.
// Indexes are sorted ascending so rendering is stable regardless of
// input order; Count always equals len(Indexes).
type GroupedAssignment struct {
	BarberID   string
	BarberName string
	Phone      string
	Indexes    []int
	Count      int
}

// GroupByBarber folds assignments into per-barber groups, preserving
// first-seen barber order. An assignment referencing a staff id that is
// not on the roster fails the whole event.
func GroupByBarber(assignments []events.Assignment, snap *roster.Snapshot) ([]GroupedAssignment, error) {
	byID := make(map[string]int)
	var groups []GroupedAssignment
	for _, a := range assignments {
		member, ok := snap.ByID(a.BarberID)
		if !ok {
			return nil, apperrors.NewUnknownBarber(a.BarberID)
		}
		index := a.MemberIndex
		if index < 1 {
			index = 1
		}
		if i, seen := byID[a.BarberID]; seen {
			groups[i].Indexes = append(groups[i].Indexes, index)
			groups[i].Count++
			continue
		}
		byID[a.BarberID] = len(groups)
		groups = append(groups, GroupedAssignment{
			BarberID:   a.BarberID,
			BarberName: member.Name,
			Phone:      member.Phone,
			Indexes:    []int{index},
			Count:      1,
		})
	}
	for i := range groups {
		sort.Ints(groups[i].Indexes)
	}
	return groups, nil
}

// Names extracts barber display names in group order.
func Names(groups []GroupedAssignment) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.BarberName)
	}
	return names
}

// SingleOrMulti picks between the single- and multi-recipient template
// by distinct barber count. The bool reports whether the multi template
// was used.
func SingleOrMulti(names []string, single func(string) string, multi func(string) string) (string, bool) {
	if len(names) == 1 {
		return single(names[0]), false
	}
	return multi(strings.Join(names, ", ")), true
}

// MembersNote renders the parenthetical party-position suffix. Empty
// when the barber serves at most one member.
func MembersNote(count int, indexes []int) string {
	if count <= 1 {
		return ""
	}
	parts := make([]string, 0, len(indexes))
	for _, i := range indexes {
		parts = append(parts, strconv.Itoa(i))
	}
	return fmt.Sprintf(" (members: %s)", strings.Join(parts, ", "))
}
