package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

func reduceWorkflow(s Snapshot, tr Transition) Snapshot {
	switch t := tr.(type) {
	case AddWorkflow:
		s.Workflows = withAppended(s.Workflows, t.Workflow)
		s.WorkflowSteps = withAppended(s.WorkflowSteps, t.Steps...)
	case ReplaceWorkflow:
		s.Workflows = replaceByID(s.Workflows, t.Workflow.ID, workflowID, t.Workflow)
		kept := removeWhere(s.WorkflowSteps, func(st domain.WorkflowStep) bool { return st.WorkflowID == t.Workflow.ID })
		s.WorkflowSteps = withAppended(kept, t.Steps...)
	case DeleteWorkflow:
		// Local cascade mirrors the remote FK cascade on workflow_step.
		s.Workflows = removeWhere(s.Workflows, func(w domain.Workflow) bool { return w.ID == t.ID })
		s.WorkflowSteps = removeWhere(s.WorkflowSteps, func(st domain.WorkflowStep) bool { return st.WorkflowID == t.ID })
	}
	return s
}

func workflowID(w domain.Workflow) string { return w.ID }
