package services

import (
	"context"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type TeamDTO struct {
	Name                  string   `validate:"required"`
	Purpose               string   `validate:"-"`
	ReportingDepartmentID string   `validate:"required"`
	LeadID                *string  `validate:"-"`
	MemberStaffIDs        []string `validate:"-"`
}

type TeamService struct {
	c *core
}

func (dto TeamDTO) entity() domain.CrossFunctionalTeam {
	return domain.CrossFunctionalTeam{
		Name:                  dto.Name,
		Purpose:               dto.Purpose,
		ReportingDepartmentID: dto.ReportingDepartmentID,
		LeadID:                dto.LeadID,
	}
}

func memberRows(teamID string, staffIDs []string) []domain.TeamMember {
	rows := make([]domain.TeamMember, 0, len(staffIDs))
	for _, staffID := range staffIDs {
		rows = append(rows, domain.TeamMember{TeamID: teamID, StaffID: staffID})
	}
	return rows
}

func teamComposite() composite[domain.CrossFunctionalTeam, domain.TeamMember] {
	return composite[domain.CrossFunctionalTeam, domain.TeamMember]{
		parentCollection: gateway.Teams,
		childCollection:  gateway.TeamMembers,
		childColumn:      "team_id",
		parentID:         func(t domain.CrossFunctionalTeam) string { return t.ID },
		noun:             "Team",
		childNoun:        "members",
	}
}

func (s *TeamService) Create(ctx context.Context, dto TeamDTO) (domain.CrossFunctionalTeam, error) {
	if err := validateDTO(dto); err != nil {
		return domain.CrossFunctionalTeam{}, err
	}
	return teamComposite().create(ctx, s.c, dto.entity(),
		func(teamID string) []domain.TeamMember {
			return memberRows(teamID, dto.MemberStaffIDs)
		},
		func(team domain.CrossFunctionalTeam, members []domain.TeamMember) {
			s.c.store.Dispatch(state.AddTeam{Team: team, Members: members})
		})
}

func (s *TeamService) Update(ctx context.Context, id string, dto TeamDTO) (domain.CrossFunctionalTeam, error) {
	if err := validateDTO(dto); err != nil {
		return domain.CrossFunctionalTeam{}, err
	}
	return teamComposite().update(ctx, s.c, id, dto.entity(),
		func(teamID string) []domain.TeamMember {
			return memberRows(teamID, dto.MemberStaffIDs)
		},
		func(team domain.CrossFunctionalTeam, members []domain.TeamMember) {
			s.c.store.Dispatch(state.ReplaceTeam{Team: team, Members: members})
		})
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	return teamComposite().delete(ctx, s.c, id, func(id string) {
		s.c.store.Dispatch(state.DeleteTeam{ID: id})
	})
}
