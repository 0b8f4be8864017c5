package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

func reduceFunction(s Snapshot, tr Transition) Snapshot {
	switch t := tr.(type) {
	case AddFunction:
		s.Functions = withAppended(s.Functions, t.Function)
	case UpdateFunction:
		s.Functions = replaceByID(s.Functions, t.Function.ID, functionID, t.Function)
	case DeleteFunction:
		s.Functions = removeWhere(s.Functions, func(f domain.OrgFunction) bool { return f.ID == t.ID })
	}
	return s
}

func functionID(f domain.OrgFunction) string { return f.ID }
