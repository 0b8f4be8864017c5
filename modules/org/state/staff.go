package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

func reduceStaff(s Snapshot, tr Transition) Snapshot {
	switch t := tr.(type) {
	case AddStaff:
		s.Staff = withAppended(s.Staff, t.Staff)
	case UpdateStaff:
		s.Staff = replaceByID(s.Staff, t.Staff.ID, staffID, t.Staff)
	case DeleteStaff:
		s.Staff = removeWhere(s.Staff, func(m domain.Staff) bool { return m.ID == t.ID })
	}
	return s
}

func staffID(m domain.Staff) string { return m.ID }
