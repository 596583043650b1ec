// ABOUTME: Workflow collection operations
// ABOUTME: Assigns step identifiers derived from the workflow ID
package store

import (
	"fmt"

	"github.com/suresphere/atlas/models"
)

// WorkflowPatch carries the fields of an upsert. Active is a pointer so an
// omitted value leaves the stored flag alone.
type WorkflowPatch struct {
	ID      string
	Name    string
	Trigger string
	Active  *bool
	Steps   []models.WorkflowStep
}

// UpsertWorkflow creates or updates a workflow. Steps without IDs get
// sequential identifiers derived from the workflow ID.
func (s *Store) UpsertWorkflow(patch WorkflowPatch) models.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.ID != "" {
		for i := range s.workflows {
			if s.workflows[i].ID == patch.ID {
				s.workflows[i] = mergeWorkflow(s.workflows[i], patch)
				return s.workflows[i]
			}
		}
		record := models.Workflow{ID: patch.ID, Name: patch.Name, Trigger: patch.Trigger, Steps: patch.Steps}
		if patch.Active != nil {
			record.Active = *patch.Active
		}
		return record
	}

	record := models.Workflow{
		ID:      newID(prefixWorkflow),
		Name:    patch.Name,
		Trigger: patch.Trigger,
		Steps:   append([]models.WorkflowStep(nil), patch.Steps...),
	}
	if patch.Active != nil {
		record.Active = *patch.Active
	}
	numberSteps(&record)
	s.workflows = append([]models.Workflow{record}, s.workflows...)
	return record
}

func numberSteps(w *models.Workflow) {
	for i := range w.Steps {
		if w.Steps[i].ID == "" {
			w.Steps[i].ID = fmt.Sprintf("%s-s%d", w.ID, i+1)
		}
	}
}

func mergeWorkflow(existing models.Workflow, patch WorkflowPatch) models.Workflow {
	merged := existing
	if patch.Name != "" {
		merged.Name = patch.Name
	}
	if patch.Trigger != "" {
		merged.Trigger = patch.Trigger
	}
	if patch.Active != nil {
		merged.Active = *patch.Active
	}
	if patch.Steps != nil {
		merged.Steps = append([]models.WorkflowStep(nil), patch.Steps...)
		numberSteps(&merged)
	}
	return merged
}
