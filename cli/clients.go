// ABOUTME: Client CLI commands
// ABOUTME: Human-friendly commands for managing clients plus CSV export/import
package cli

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

// csvHeader is the column layout for client exports and imports.
var csvHeader = []string{"Name", "Email", "Company", "Status", "Tags"}

// AddClientCommand adds a new client, reporting duplicates instead of
// creating a second record.
func AddClientCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-client", flag.ExitOnError)
	name := fs.String("name", "", "Client name (required)")
	email := fs.String("email", "", "Email address (required)")
	company := fs.String("company", "", "Company name")
	status := fs.String("status", "", "Status (Active, Prospect, Dormant)")
	tags := fs.String("tags", "", "Pipe-separated tags, e.g. vip|construction")
	_ = fs.Parse(args)

	if *name == "" || *email == "" {
		return fmt.Errorf("--name and --email are required")
	}

	result := s.UpsertClient(models.Client{
		Name:    *name,
		Email:   *email,
		Company: *company,
		Status:  *status,
		Tags:    splitTags(*tags),
	})

	if result.Status == models.UpsertDuplicate {
		fmt.Printf("✗ Duplicate of existing client: %s (ID: %s)\n", result.DuplicateOf.Name, result.DuplicateOf.ID)
		return nil
	}

	fmt.Printf("✓ Client created: %s (ID: %s)\n", result.Record.Name, result.Record.ID)
	fmt.Printf("  Email: %s\n", result.Record.Email)
	fmt.Printf("  Status: %s\n", result.Record.Status)
	return nil
}

// ListClientsCommand lists clients, optionally filtered by status.
func ListClientsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-clients", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status")
	_ = fs.Parse(args)

	clients := s.Clients()
	if *status != "" {
		filtered := clients[:0]
		for _, c := range clients {
			if strings.EqualFold(c.Status, *status) {
				filtered = append(filtered, c)
			}
		}
		clients = filtered
	}

	if len(clients) == 0 {
		fmt.Println("No clients found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tSTATUS\tPOLICIES\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t------\t--------\t--")
	for _, c := range clients {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", c.Name, c.Email, c.Status, c.PolicyCount, c.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d client(s)\n", len(clients))
	return nil
}

// RemoveClientCommand deletes a client by ID.
func RemoveClientCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("remove-client", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("client ID is required")
	}
	id := fs.Args()[0]

	if !s.RemoveClient(id) {
		return fmt.Errorf("no client with ID: %s", id)
	}
	fmt.Printf("✓ Client removed: %s\n", id)
	return nil
}

// ExportClientsCommand writes the client book as CSV.
func ExportClientsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("export-clients", flag.ExitOnError)
	output := fs.String("output", "", "Output file (defaults to stdout)")
	_ = fs.Parse(args)

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range s.Clients() {
		row := []string{c.Name, c.Email, c.Company, c.Status, strings.Join(c.Tags, "|")}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	if *output != "" {
		fmt.Printf("✓ Exported %d client(s) to %s\n", len(s.Clients()), *output)
	}
	return nil
}

// ImportClientsCommand reads clients from a CSV file. Duplicates are
// skipped and reported.
func ImportClientsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("import-clients", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("input file is required")
	}

	f, err := os.Open(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("empty CSV file")
	}

	created, duplicates := 0, 0
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "Name") {
			continue // header row
		}
		if len(row) < len(csvHeader) {
			return fmt.Errorf("row %d has %d columns, expected %d", i+1, len(row), len(csvHeader))
		}

		result := s.UpsertClient(models.Client{
			Name:    row[0],
			Email:   row[1],
			Company: row[2],
			Status:  row[3],
			Tags:    splitTags(row[4]),
		})
		switch result.Status {
		case models.UpsertDuplicate:
			duplicates++
			fmt.Printf("  skipped duplicate: %s (matches %s)\n", row[0], result.DuplicateOf.ID)
		default:
			created++
		}
	}

	fmt.Printf("✓ Imported %d client(s), skipped %d duplicate(s)\n", created, duplicates)
	return nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
