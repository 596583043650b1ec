// ABOUTME: Policy and claim CLI commands
// ABOUTME: Commands for managing the policy book and claims workload
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/suresphere/atlas/models"
	"github.com/suresphere/atlas/store"
)

// AddPolicyCommand adds a new policy.
func AddPolicyCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-policy", flag.ExitOnError)
	number := fs.String("number", "", "Carrier policy number (required)")
	clientID := fs.String("client", "", "Owning client ID")
	carrier := fs.String("carrier", "", "Carrier name")
	product := fs.String("product", "", "Product line")
	premium := fs.Int64("premium", 0, "Annual premium")
	effective := fs.String("effective", "", "Effective date (YYYY-MM-DD)")
	renewal := fs.String("renewal", "", "Renewal date (YYYY-MM-DD)")
	status := fs.String("status", "", "Status (Active, Pending, Lapsed)")
	_ = fs.Parse(args)

	if *number == "" {
		return fmt.Errorf("--number is required")
	}

	policy := s.UpsertPolicy(models.Policy{
		PolicyNumber:  *number,
		ClientID:      *clientID,
		Carrier:       *carrier,
		Product:       *product,
		Premium:       *premium,
		EffectiveDate: *effective,
		RenewalDate:   *renewal,
		Status:        *status,
	})

	fmt.Printf("✓ Policy created: %s (ID: %s)\n", policy.PolicyNumber, policy.ID)
	if policy.Product != "" {
		fmt.Printf("  Product: %s\n", policy.Product)
	}
	fmt.Printf("  Status: %s\n", policy.Status)
	return nil
}

// ListPoliciesCommand lists the policy book.
func ListPoliciesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-policies", flag.ExitOnError)
	clientID := fs.String("client", "", "Filter by client ID")
	_ = fs.Parse(args)

	policies := s.Policies()
	if *clientID != "" {
		filtered := policies[:0]
		for _, p := range policies {
			if p.ClientID == *clientID {
				filtered = append(filtered, p)
			}
		}
		policies = filtered
	}

	if len(policies) == 0 {
		fmt.Println("No policies found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NUMBER\tPRODUCT\tPREMIUM\tRENEWAL\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "------\t-------\t-------\t-------\t------\t--")
	for _, p := range policies {
		renewal := p.RenewalDate
		if renewal == "" {
			renewal = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			p.PolicyNumber, p.Product, p.Premium, renewal, p.Status, p.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d policy(ies)\n", len(policies))
	return nil
}

// ListClaimsCommand lists claims, optionally filtered by stage.
func ListClaimsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-claims", flag.ExitOnError)
	stage := fs.String("stage", "", "Filter by stage")
	_ = fs.Parse(args)

	claims := s.Claims()
	if *stage != "" {
		filtered := claims[:0]
		for _, c := range claims {
			if c.Stage == *stage {
				filtered = append(filtered, c)
			}
		}
		claims = filtered
	}

	if len(claims) == 0 {
		fmt.Println("No claims found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TYPE\tAMOUNT\tSTAGE\tHANDLER\tID")
	_, _ = fmt.Fprintln(w, "----\t------\t-----\t-------\t--")
	for _, c := range claims {
		handler := c.Handler
		if handler == "" {
			handler = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", c.Type, c.Amount, c.Stage, handler, c.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d claim(s)\n", len(claims))
	return nil
}

// RecountPoliciesCommand reconciles client policy counters.
func RecountPoliciesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("recount-policies", flag.ExitOnError)
	_ = fs.Parse(args)

	changed := s.RecountPolicies()
	fmt.Printf("✓ Recounted policies: %d client(s) corrected\n", changed)
	return nil
}
