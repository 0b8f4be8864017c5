package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateEmail builds an address from a name pair and the configured format.
//
//	firstname.L → jane.d@acme.ae
//	F.lastname  → j.doe@acme.ae
func GenerateEmail(firstName, lastName string, settings AppSettings) string {
	fn := strings.ToLower(firstName)
	ln := strings.ToLower(lastName)
	if fn == "" || ln == "" {
		return ""
	}
	if settings.EmailFormat == EmailFirstnameL {
		return fmt.Sprintf("%s.%s@%s", fn, ln[:1], settings.EmailDomain)
	}
	return fmt.Sprintf("%s.%s@%s", fn[:1], ln, settings.EmailDomain)
}

// StaffEmail derives a staff member's address from the app settings.
func StaffEmail(s Staff, settings AppSettings) string {
	return GenerateEmail(s.FirstName, s.LastName, settings)
}

// StaffFullName returns the display name "First Last".
func StaffFullName(s Staff) string {
	return s.FirstName + " " + s.LastName
}

// StaffMobile derives a deterministic display number from the numeric portion
// of the staff UID.
func StaffMobile(s Staff) string {
	n, _ := strconv.Atoi(s.UID)
	return fmt.Sprintf("+971 50 111 %04d", n)
}

// StatusOf computes a department's management status. A missing manager,
// a dangling manager reference, or a manager without a grade all resolve to
// Unmanaged rather than failing.
func StatusOf(dept Department, allStaff []Staff, allGrades []Grade, maxManagerGradeLevel int) DepartmentStatus {
	if dept.ManagerID == nil {
		return DepartmentUnmanaged
	}
	var manager *Staff
	for i := range allStaff {
		if allStaff[i].ID == *dept.ManagerID {
			manager = &allStaff[i]
			break
		}
	}
	if manager == nil || manager.GradeID == nil {
		return DepartmentUnmanaged
	}
	for _, g := range allGrades {
		if g.ID == *manager.GradeID {
			if g.Level <= maxManagerGradeLevel {
				return DepartmentManaged
			}
			return DepartmentActing
		}
	}
	return DepartmentUnmanaged
}
