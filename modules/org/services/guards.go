package services

import (
	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/state"
)

// Guard errors carry the exact message shown to the user. Guards run against
// the snapshot before any remote call: a blocked delete costs zero network
// round trips.
var (
	ErrDepartmentHasStaff          = errors.New("Cannot delete — staff are assigned to this department.")
	ErrDepartmentHasFunctions      = errors.New("Cannot delete — functions exist in this department.")
	ErrFunctionHasStaff            = errors.New("Cannot delete – staff are assigned to this function.")
	ErrFunctionHasResponsibilities = errors.New("Cannot delete – responsibilities are assigned to this function.")
	ErrStaffIsManager              = errors.New("Cannot delete — this person is assigned as a department manager.")
	ErrStaffOnTeam                 = errors.New("Cannot delete — this person is part of a cross-functional team.")
	ErrResponsibilityInWorkflow    = errors.New("Cannot delete — this responsibility is used in a workflow.")

	ErrUnknownFunction = errors.New("Selected function does not exist.")
	ErrUnknownStaff    = errors.New("Selected staff member does not exist.")
)

func guardDeleteDepartment(s state.Snapshot, id string) error {
	for _, st := range s.Staff {
		if st.DepartmentID == id {
			return ErrDepartmentHasStaff
		}
	}
	for _, f := range s.Functions {
		if f.DepartmentID == id {
			return ErrDepartmentHasFunctions
		}
	}
	return nil
}

func guardDeleteFunction(s state.Snapshot, id string) error {
	for _, st := range s.Staff {
		if st.PrimaryFunctionID == id {
			return ErrFunctionHasStaff
		}
		if st.SecondaryFunctionID != nil && *st.SecondaryFunctionID == id {
			return ErrFunctionHasStaff
		}
		for _, extra := range st.AdditionalFunctionIDs {
			if extra == id {
				return ErrFunctionHasStaff
			}
		}
	}
	for _, r := range s.Responsibilities {
		if r.FunctionID == id {
			return ErrFunctionHasResponsibilities
		}
	}
	return nil
}

func guardDeleteStaff(s state.Snapshot, id string) error {
	for _, d := range s.Departments {
		if d.ManagerID != nil && *d.ManagerID == id {
			return ErrStaffIsManager
		}
	}
	for _, t := range s.CrossFunctionalTeams {
		if t.LeadID != nil && *t.LeadID == id {
			return ErrStaffOnTeam
		}
	}
	for _, m := range s.TeamMembers {
		if m.StaffID == id {
			return ErrStaffOnTeam
		}
	}
	return nil
}

// Reassignment targets must already be loaded in the snapshot; the UI only
// offers existing records, so an unknown id means a stale or bad caller.
func guardFunctionExists(s state.Snapshot, id string) error {
	for _, f := range s.Functions {
		if f.ID == id {
			return nil
		}
	}
	return ErrUnknownFunction
}

func guardStaffExists(s state.Snapshot, id string) error {
	for _, st := range s.Staff {
		if st.ID == id {
			return nil
		}
	}
	return ErrUnknownStaff
}

func guardDeleteResponsibility(s state.Snapshot, id string) error {
	for _, st := range s.WorkflowSteps {
		if st.ResponsibilityID == id {
			return ErrResponsibilityInWorkflow
		}
	}
	return nil
}
