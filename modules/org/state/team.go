package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

func reduceTeam(s Snapshot, tr Transition) Snapshot {
	switch t := tr.(type) {
	case AddTeam:
		s.CrossFunctionalTeams = withAppended(s.CrossFunctionalTeams, t.Team)
		s.TeamMembers = withAppended(s.TeamMembers, t.Members...)
	case ReplaceTeam:
		// Parent swap plus delete-all-then-insert-all of its member rows,
		// as one atomic local step. Members of other teams are untouched.
		s.CrossFunctionalTeams = replaceByID(s.CrossFunctionalTeams, t.Team.ID, teamID, t.Team)
		kept := removeWhere(s.TeamMembers, func(m domain.TeamMember) bool { return m.TeamID == t.Team.ID })
		s.TeamMembers = withAppended(kept, t.Members...)
	case DeleteTeam:
		// Local cascade mirrors the remote FK cascade on team_member.
		s.CrossFunctionalTeams = removeWhere(s.CrossFunctionalTeams, func(c domain.CrossFunctionalTeam) bool { return c.ID == t.ID })
		s.TeamMembers = removeWhere(s.TeamMembers, func(m domain.TeamMember) bool { return m.TeamID == t.ID })
	}
	return s
}

func teamID(c domain.CrossFunctionalTeam) string { return c.ID }
