package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

func reduceDepartment(s Snapshot, tr Transition) Snapshot {
	switch t := tr.(type) {
	case AddDepartment:
		s.Departments = withAppended(s.Departments, t.Department)
	case UpdateDepartment:
		s.Departments = replaceByID(s.Departments, t.Department.ID, departmentID, t.Department)
	case DeleteDepartment:
		s.Departments = removeWhere(s.Departments, func(d domain.Department) bool { return d.ID == t.ID })
	case AssignManager:
		s.Departments = updateByID(s.Departments, t.DepartmentID, departmentID, func(d domain.Department) domain.Department {
			d.ManagerID = t.StaffID
			return d
		})
	}
	return s
}

func departmentID(d domain.Department) string { return d.ID }
