package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/elitekutzdev/elitekutz-sms/internal/domain"
)

// Load reads the roster from a JSON file (an array of staff records)
// or, when path is empty, from inline JSON. Statuses default to
// available when omitted.
func Load(path, inline string) ([]domain.StaffMember, error) {
	var raw []byte
	switch {
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read roster file: %w", err)
		}
		raw = data
	case strings.TrimSpace(inline) != "":
		raw = []byte(inline)
	default:
		return nil, fmt.Errorf("no roster source configured")
	}

	var members []domain.StaffMember
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}
	seen := make(map[string]bool, len(members))
	for i := range members {
		m := &members[i]
		if m.ID == "" || m.Name == "" || m.Phone == "" {
			return nil, fmt.Errorf("roster entry %d missing id, name or phone", i)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate roster id %q", m.ID)
		}
		seen[m.ID] = true
		if m.Status == "" {
			m.Status = domain.StaffAvailable
		}
		if !m.Status.Valid() {
			return nil, fmt.Errorf("roster entry %q has unknown status %q", m.ID, m.Status)
		}
	}
	return members, nil
}
