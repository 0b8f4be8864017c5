package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

func reduceResponsibility(s Snapshot, tr Transition) Snapshot {
	switch t := tr.(type) {
	case AddResponsibility:
		s.Responsibilities = withAppended(s.Responsibilities, t.Responsibility)
	case UpdateResponsibility:
		s.Responsibilities = replaceByID(s.Responsibilities, t.Responsibility.ID, responsibilityID, t.Responsibility)
	case DeleteResponsibility:
		s.Responsibilities = removeWhere(s.Responsibilities, func(r domain.Responsibility) bool { return r.ID == t.ID })
	case TransferResponsibility:
		s.Responsibilities = updateByID(s.Responsibilities, t.ID, responsibilityID, func(r domain.Responsibility) domain.Responsibility {
			r.FunctionID = t.NewFunctionID
			return r
		})
	}
	return s
}

func responsibilityID(r domain.Responsibility) string { return r.ID }
