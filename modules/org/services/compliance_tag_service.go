package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type ComplianceTagService struct {
	c *core
}

func (s *ComplianceTagService) Create(ctx context.Context, name string) (domain.ComplianceTag, error) {
	var created domain.ComplianceTag
	err := s.c.mutate("create compliance tag", func() error {
		var err error
		created, err = gateway.Create(ctx, s.c.gw, gateway.ComplianceTags, domain.ComplianceTag{Name: name})
		if err != nil {
			return errors.Wrap(err, "failed to add tag")
		}
		s.c.store.Dispatch(state.AddComplianceTag{Tag: created})
		s.c.success("Compliance tag added")
		return nil
	})
	return created, err
}

func (s *ComplianceTagService) Update(ctx context.Context, id, name string) (domain.ComplianceTag, error) {
	var updated domain.ComplianceTag
	err := s.c.mutate("update compliance tag", func() error {
		var err error
		updated, err = gateway.Patch[domain.ComplianceTag](ctx, s.c.gw, gateway.ComplianceTags, id, map[string]any{
			"name": name,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update tag")
		}
		s.c.store.Dispatch(state.UpdateComplianceTag{Tag: updated})
		s.c.success("Compliance tag updated")
		return nil
	})
	return updated, err
}

func (s *ComplianceTagService) Delete(ctx context.Context, id string) error {
	return s.c.mutate("delete compliance tag", func() error {
		if err := s.c.gw.DeleteOne(ctx, gateway.ComplianceTags, id); err != nil {
			return errors.Wrap(err, "failed to delete tag")
		}
		s.c.store.Dispatch(state.DeleteComplianceTag{ID: id})
		s.c.success("Compliance tag deleted")
		return nil
	})
}
