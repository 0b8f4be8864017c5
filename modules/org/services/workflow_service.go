package services

import (
	"context"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type WorkflowDTO struct {
	Name              string                `validate:"required"`
	Description       string                `validate:"-"`
	OwnerDepartmentID string                `validate:"required"`
	Status            domain.WorkflowStatus `validate:"required,oneof=Draft Active"`
	// StepResponsibilityIDs is the ordered list of responsibilities; step
	// order is assigned 1..N from the slice positions.
	StepResponsibilityIDs []string `validate:"-"`
}

type WorkflowService struct {
	c *core
}

func (dto WorkflowDTO) entity() domain.Workflow {
	return domain.Workflow{
		Name:              dto.Name,
		Description:       dto.Description,
		OwnerDepartmentID: dto.OwnerDepartmentID,
		Status:            dto.Status,
	}
}

func stepRows(workflowID string, responsibilityIDs []string) []domain.WorkflowStep {
	rows := make([]domain.WorkflowStep, 0, len(responsibilityIDs))
	for i, respID := range responsibilityIDs {
		rows = append(rows, domain.WorkflowStep{
			WorkflowID:       workflowID,
			ResponsibilityID: respID,
			StepOrder:        i + 1,
		})
	}
	return rows
}

func workflowComposite() composite[domain.Workflow, domain.WorkflowStep] {
	return composite[domain.Workflow, domain.WorkflowStep]{
		parentCollection: gateway.Workflows,
		childCollection:  gateway.WorkflowSteps,
		childColumn:      "workflow_id",
		parentID:         func(w domain.Workflow) string { return w.ID },
		noun:             "Workflow",
		childNoun:        "steps",
	}
}

func (s *WorkflowService) Create(ctx context.Context, dto WorkflowDTO) (domain.Workflow, error) {
	if err := validateDTO(dto); err != nil {
		return domain.Workflow{}, err
	}
	return workflowComposite().create(ctx, s.c, dto.entity(),
		func(workflowID string) []domain.WorkflowStep {
			return stepRows(workflowID, dto.StepResponsibilityIDs)
		},
		func(workflow domain.Workflow, steps []domain.WorkflowStep) {
			s.c.store.Dispatch(state.AddWorkflow{Workflow: workflow, Steps: steps})
		})
}

func (s *WorkflowService) Update(ctx context.Context, id string, dto WorkflowDTO) (domain.Workflow, error) {
	if err := validateDTO(dto); err != nil {
		return domain.Workflow{}, err
	}
	return workflowComposite().update(ctx, s.c, id, dto.entity(),
		func(workflowID string) []domain.WorkflowStep {
			return stepRows(workflowID, dto.StepResponsibilityIDs)
		},
		func(workflow domain.Workflow, steps []domain.WorkflowStep) {
			s.c.store.Dispatch(state.ReplaceWorkflow{Workflow: workflow, Steps: steps})
		})
}

func (s *WorkflowService) Delete(ctx context.Context, id string) error {
	return workflowComposite().delete(ctx, s.c, id, func(id string) {
		s.c.store.Dispatch(state.DeleteWorkflow{ID: id})
	})
}
