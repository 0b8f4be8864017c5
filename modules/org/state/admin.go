package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

// reduceAdmin covers the administration entities: grades, compliance tags,
// company numbers and their allocations, the two singletons, and user roles.
func reduceAdmin(s Snapshot, tr Transition) Snapshot {
	switch t := tr.(type) {
	case AddGrade:
		s.Grades = withAppended(s.Grades, t.Grade)
	case UpdateGrade:
		s.Grades = replaceByID(s.Grades, t.Grade.ID, gradeID, t.Grade)
	case DeleteGrade:
		s.Grades = removeWhere(s.Grades, func(g domain.Grade) bool { return g.ID == t.ID })

	case AddComplianceTag:
		s.ComplianceTags = withAppended(s.ComplianceTags, t.Tag)
	case UpdateComplianceTag:
		s.ComplianceTags = replaceByID(s.ComplianceTags, t.Tag.ID, tagID, t.Tag)
	case DeleteComplianceTag:
		s.ComplianceTags = removeWhere(s.ComplianceTags, func(c domain.ComplianceTag) bool { return c.ID == t.ID })

	case AddCompanyNumbers:
		s.CompanyNumbers = withAppended(s.CompanyNumbers, t.Numbers...)
	case DeleteCompanyNumber:
		// Allocations of a deleted number go with it.
		s.CompanyNumbers = removeWhere(s.CompanyNumbers, func(n domain.CompanyNumber) bool { return n.ID == t.ID })
		s.CompanyNumberAllocations = removeWhere(s.CompanyNumberAllocations, func(a domain.CompanyNumberAllocation) bool {
			return a.CompanyNumberID == t.ID
		})
	case AllocateNumber:
		s.CompanyNumberAllocations = withAppended(s.CompanyNumberAllocations, t.Allocation)
	case ReleaseNumber:
		s.CompanyNumberAllocations = removeWhere(s.CompanyNumberAllocations, func(a domain.CompanyNumberAllocation) bool {
			return a.ID == t.AllocationID
		})

	case MergeAppSettings:
		s.AppSettings = t.Settings
	case MergeCompanyProfile:
		s.CompanyProfile = t.Profile

	case SetUserRole:
		s.Users = updateByID(s.Users, t.UserID, userID, func(u domain.User) domain.User {
			u.Role = t.Role
			return u
		})
	}
	return s
}

func gradeID(g domain.Grade) string       { return g.ID }
func tagID(c domain.ComplianceTag) string { return c.ID }
func userID(u domain.User) string         { return u.ID }
