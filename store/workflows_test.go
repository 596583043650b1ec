// ABOUTME: Tests for workflow upserts and merges
// ABOUTME: Covers partial updates, the active flag, and step numbering
package store

import (
	"testing"

	"github.com/suresphere/atlas/models"
)

func TestUpsertWorkflowPartialUpdateKeepsActive(t *testing.T) {
	s := New()

	active := true
	created := s.UpsertWorkflow(WorkflowPatch{
		Name:    "Renewal Chase",
		Trigger: "renewal_window",
		Active:  &active,
		Steps:   []models.WorkflowStep{{Title: "Send reminder", Owner: "broker"}},
	})
	if !created.Active {
		t.Fatal("Expected workflow to be created active")
	}

	renamed := s.UpsertWorkflow(WorkflowPatch{ID: created.ID, Name: "Renewal Chase v2"})
	if renamed.Name != "Renewal Chase v2" {
		t.Errorf("Expected rename to apply, got %q", renamed.Name)
	}
	if !renamed.Active {
		t.Error("Rename-only update deactivated the workflow")
	}
	if renamed.Trigger != "renewal_window" {
		t.Errorf("Expected trigger unchanged, got %q", renamed.Trigger)
	}
	if len(renamed.Steps) != 1 {
		t.Errorf("Expected steps unchanged, got %d", len(renamed.Steps))
	}

	off := false
	toggled := s.UpsertWorkflow(WorkflowPatch{ID: created.ID, Active: &off})
	if toggled.Active {
		t.Error("Expected explicit active=false to apply")
	}
	if toggled.Name != "Renewal Chase v2" {
		t.Errorf("Expected name to survive the toggle, got %q", toggled.Name)
	}
}

func TestUpsertWorkflowNumbersSteps(t *testing.T) {
	s := New()

	record := s.UpsertWorkflow(WorkflowPatch{
		Name:  "Claims intake",
		Steps: []models.WorkflowStep{{Title: "Acknowledge"}, {Title: "Assign adjuster"}},
	})
	for i, step := range record.Steps {
		if step.ID == "" {
			t.Errorf("Step %d has no ID", i)
		}
	}
	if len(record.Steps) == 2 && record.Steps[0].ID == record.Steps[1].ID {
		t.Error("Expected distinct step IDs")
	}
}

func TestUpsertWorkflowDoesNotMutateCallerSteps(t *testing.T) {
	s := New()

	steps := []models.WorkflowStep{{Title: "Acknowledge"}}
	s.UpsertWorkflow(WorkflowPatch{Name: "Claims intake", Steps: steps})
	if steps[0].ID != "" {
		t.Errorf("Caller's step slice was mutated: ID=%q", steps[0].ID)
	}

	created := s.UpsertWorkflow(WorkflowPatch{Name: "Second"})
	replacement := []models.WorkflowStep{{Title: "Review"}}
	s.UpsertWorkflow(WorkflowPatch{ID: created.ID, Steps: replacement})
	if replacement[0].ID != "" {
		t.Errorf("Caller's replacement slice was mutated: ID=%q", replacement[0].ID)
	}
}
