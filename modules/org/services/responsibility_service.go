package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type ResponsibilityDTO struct {
	Name               string  `validate:"required"`
	Description        string  `validate:"-"`
	FunctionID         string  `validate:"required"`
	SOPLink            string  `validate:"omitempty,url"`
	IsComplianceTagged bool    `validate:"-"`
	ComplianceTagID    *string `validate:"required_if=IsComplianceTagged true"`
}

type ResponsibilityService struct {
	c *core
}

func (dto ResponsibilityDTO) entity() domain.Responsibility {
	return domain.Responsibility{
		Name:               dto.Name,
		Description:        dto.Description,
		FunctionID:         dto.FunctionID,
		SOPLink:            dto.SOPLink,
		IsComplianceTagged: dto.IsComplianceTagged,
		ComplianceTagID:    dto.ComplianceTagID,
	}
}

func (s *ResponsibilityService) Create(ctx context.Context, dto ResponsibilityDTO) (domain.Responsibility, error) {
	var created domain.Responsibility
	if err := validateDTO(dto); err != nil {
		return created, err
	}
	err := s.c.mutate("create responsibility", func() error {
		var err error
		created, err = gateway.Create(ctx, s.c.gw, gateway.Responsibilities, dto.entity())
		if err != nil {
			return errors.Wrap(err, "failed to add responsibility")
		}
		s.c.store.Dispatch(state.AddResponsibility{Responsibility: created})
		s.c.success("Responsibility added")
		return nil
	})
	return created, err
}

func (s *ResponsibilityService) Update(ctx context.Context, id string, dto ResponsibilityDTO) (domain.Responsibility, error) {
	var updated domain.Responsibility
	if err := validateDTO(dto); err != nil {
		return updated, err
	}
	err := s.c.mutate("update responsibility", func() error {
		var err error
		updated, err = gateway.Update(ctx, s.c.gw, gateway.Responsibilities, id, dto.entity())
		if err != nil {
			return errors.Wrap(err, "failed to update responsibility")
		}
		s.c.store.Dispatch(state.UpdateResponsibility{Responsibility: updated})
		s.c.success("Responsibility updated")
		return nil
	})
	return updated, err
}

// Transfer moves a responsibility to another function, leaving every other
// field as it is.
func (s *ResponsibilityService) Transfer(ctx context.Context, id, newFunctionID string) error {
	return s.c.mutate("transfer responsibility", func() error {
		if err := guardFunctionExists(s.c.store.Snapshot(), newFunctionID); err != nil {
			return err
		}
		_, err := gateway.Patch[domain.Responsibility](ctx, s.c.gw, gateway.Responsibilities, id, map[string]any{
			"functionId": newFunctionID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to transfer responsibility")
		}
		s.c.store.Dispatch(state.TransferResponsibility{ID: id, NewFunctionID: newFunctionID})
		s.c.success("Responsibility transferred")
		return nil
	})
}

func (s *ResponsibilityService) Delete(ctx context.Context, id string) error {
	return s.c.mutate("delete responsibility", func() error {
		if err := guardDeleteResponsibility(s.c.store.Snapshot(), id); err != nil {
			return err
		}
		if err := s.c.gw.DeleteOne(ctx, gateway.Responsibilities, id); err != nil {
			return errors.Wrap(err, "failed to delete responsibility")
		}
		s.c.store.Dispatch(state.DeleteResponsibility{ID: id})
		s.c.success("Responsibility deleted")
		return nil
	})
}
