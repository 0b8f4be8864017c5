package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

// Level 0 is the highest grade.
type GradeDTO struct {
	Level int    `validate:"gte=0"`
	Name  string `validate:"required"`
}

type GradeService struct {
	c *core
}

func (s *GradeService) Create(ctx context.Context, dto GradeDTO) (domain.Grade, error) {
	var created domain.Grade
	if err := validateDTO(dto); err != nil {
		return created, err
	}
	err := s.c.mutate("create grade", func() error {
		var err error
		created, err = gateway.Create(ctx, s.c.gw, gateway.Grades, domain.Grade{Level: dto.Level, Name: dto.Name})
		if err != nil {
			return errors.Wrap(err, "failed to add grade")
		}
		s.c.store.Dispatch(state.AddGrade{Grade: created})
		s.c.success("Grade added")
		return nil
	})
	return created, err
}

func (s *GradeService) Update(ctx context.Context, id string, dto GradeDTO) (domain.Grade, error) {
	var updated domain.Grade
	if err := validateDTO(dto); err != nil {
		return updated, err
	}
	err := s.c.mutate("update grade", func() error {
		var err error
		updated, err = gateway.Patch[domain.Grade](ctx, s.c.gw, gateway.Grades, id, map[string]any{
			"level": dto.Level,
			"name":  dto.Name,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update grade")
		}
		s.c.store.Dispatch(state.UpdateGrade{Grade: updated})
		s.c.success("Grade updated")
		return nil
	})
	return updated, err
}

func (s *GradeService) Delete(ctx context.Context, id string) error {
	return s.c.mutate("delete grade", func() error {
		if err := s.c.gw.DeleteOne(ctx, gateway.Grades, id); err != nil {
			return errors.Wrap(err, "failed to delete grade")
		}
		s.c.store.Dispatch(state.DeleteGrade{ID: id})
		s.c.success("Grade deleted")
		return nil
	})
}
