// ABOUTME: Platform configuration CLI commands
// ABOUTME: Module listing, reordering, and feature toggle management
package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/suresphere/atlas/store"
)

// ListModulesCommand prints the module catalog in configured order.
func ListModulesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-modules", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg := s.Config()
	fmt.Printf("%s (theme %s, accent %s)\n\n", cfg.BrandName, cfg.Theme, cfg.AccentMode)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "POS\tICON\tMODULE\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "---\t----\t------\t-----------")
	for i, mod := range s.Modules() {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, mod.Icon, mod.Name, mod.Description)
	}
	_ = w.Flush()
	return nil
}

// ReorderModuleCommand moves a module between positions.
func ReorderModuleCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("reorder-module", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 2 {
		return fmt.Errorf("usage: reorder-module <from> <to>")
	}
	from, err := strconv.Atoi(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid from position: %w", err)
	}
	to, err := strconv.Atoi(fs.Args()[1])
	if err != nil {
		return fmt.Errorf("invalid to position: %w", err)
	}

	order, err := s.ReorderModules(from, to)
	if err != nil {
		return err
	}
	fmt.Printf("✓ New order: %v\n", order)
	return nil
}

// TogglesCommand lists or sets feature toggles.
func TogglesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("toggles", flag.ExitOnError)
	set := fs.String("set", "", "Toggle to change, e.g. sandboxMode=true")
	_ = fs.Parse(args)

	if *set != "" {
		key, value, err := parseToggle(*set)
		if err != nil {
			return err
		}
		s.UpdateConfig(store.ConfigPatch{Toggles: map[string]bool{key: value}})
		fmt.Printf("✓ %s = %t\n", key, value)
		return nil
	}

	toggles := s.Config().Toggles
	keys := make([]string, 0, len(toggles))
	for k := range toggles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		state := "off"
		if toggles[k] {
			state = "on"
		}
		fmt.Printf("  %-20s %s\n", k, state)
	}
	return nil
}

func parseToggle(raw string) (string, bool, error) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '=' {
			value, err := strconv.ParseBool(raw[i+1:])
			if err != nil {
				return "", false, fmt.Errorf("invalid toggle value in %q: %w", raw, err)
			}
			return raw[:i], value, nil
		}
	}
	return "", false, fmt.Errorf("toggle must be key=value, got %q", raw)
}

// BrandCommand updates branding fields.
func BrandCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("brand", flag.ExitOnError)
	name := fs.String("name", "", "Brand name")
	theme := fs.String("theme", "", "Theme name")
	accent := fs.String("accent", "", "Accent mode")
	_ = fs.Parse(args)

	if *name == "" && *theme == "" && *accent == "" {
		cfg := s.Config()
		fmt.Printf("Brand: %s\nTheme: %s\nAccent: %s\n", cfg.BrandName, cfg.Theme, cfg.AccentMode)
		return nil
	}

	cfg := s.UpdateConfig(store.ConfigPatch{
		BrandName:  *name,
		Theme:      *theme,
		AccentMode: *accent,
	})
	fmt.Printf("✓ Brand: %s (theme %s, accent %s)\n", cfg.BrandName, cfg.Theme, cfg.AccentMode)
	return nil
}
