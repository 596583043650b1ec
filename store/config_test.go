// ABOUTME: Tests for platform config updates and module reordering
// ABOUTME: Verifies the module order stays a permutation of the catalog
package store

import (
	"testing"
)

func TestReorderModules(t *testing.T) {
	s := New()
	before := s.Config().ModuleOrder

	after, err := s.ReorderModules(1, 4)
	if err != nil {
		t.Fatalf("ReorderModules failed: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("Length changed: %d -> %d", len(before), len(after))
	}

	// Same operation by hand: remove at 1, insert at 4.
	want := make([]string, 0, len(before))
	want = append(want, before[0])
	want = append(want, before[2:]...)
	want = append(want[:4], append([]string{before[1]}, want[4:]...)...)
	for i := range want {
		if after[i] != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, after[i], want[i])
		}
	}

	// Identifier set preserved.
	seen := make(map[string]bool)
	for _, id := range after {
		seen[id] = true
	}
	for _, id := range before {
		if !seen[id] {
			t.Errorf("Module %s lost in reorder", id)
		}
	}
}

func TestReorderModulesToEnd(t *testing.T) {
	s := New()
	n := len(s.Config().ModuleOrder)

	after, err := s.ReorderModules(0, n-1)
	if err != nil {
		t.Fatalf("ReorderModules failed: %v", err)
	}
	if after[n-1] != ModuleControlStudio {
		t.Errorf("Expected controlStudio at end, got %s", after[n-1])
	}
}

func TestReorderModulesOutOfRange(t *testing.T) {
	s := New()

	if _, err := s.ReorderModules(-1, 2); err == nil {
		t.Error("Expected error for negative index")
	}
	if _, err := s.ReorderModules(0, 99); err == nil {
		t.Error("Expected error for out-of-range target")
	}
}

func TestUpdateConfigMergesToggles(t *testing.T) {
	s := New()

	cfg := s.UpdateConfig(ConfigPatch{
		BrandName: "Northwind Broking",
		Toggles:   map[string]bool{"sandboxMode": true},
	})

	if cfg.BrandName != "Northwind Broking" {
		t.Errorf("Brand not applied: %s", cfg.BrandName)
	}
	if cfg.Theme != "Aurora" {
		t.Errorf("Omitted theme was not retained: %s", cfg.Theme)
	}
	if !cfg.Toggles["sandboxMode"] {
		t.Error("Toggle not applied")
	}
	if !cfg.Toggles["aiCopilot"] {
		t.Error("Unrelated toggle was lost")
	}
}

func TestModulesFollowConfiguredOrder(t *testing.T) {
	s := New()
	if _, err := s.ReorderModules(0, 2); err != nil {
		t.Fatalf("ReorderModules failed: %v", err)
	}

	mods := s.Modules()
	order := s.Config().ModuleOrder
	if len(mods) != len(order) {
		t.Fatalf("Expected %d modules, got %d", len(order), len(mods))
	}
	for i, mod := range mods {
		if mod.ID != order[i] {
			t.Errorf("Position %d: module %s, order %s", i, mod.ID, order[i])
		}
	}
}

func TestConfigReturnsCopy(t *testing.T) {
	s := New()

	cfg := s.Config()
	cfg.ModuleOrder[0] = "tampered"
	cfg.Toggles["aiCopilot"] = false

	fresh := s.Config()
	if fresh.ModuleOrder[0] == "tampered" {
		t.Error("Config snapshot shares module order backing array")
	}
	if !fresh.Toggles["aiCopilot"] {
		t.Error("Config snapshot shares toggle map")
	}
}
