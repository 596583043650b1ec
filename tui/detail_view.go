// ABOUTME: Detail view rendering for the TUI
// ABOUTME: Shows a single record with its related entities
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DETAIL VIEW"))
	s.WriteString("\n\n")

	switch m.entityType {
	case EntityClients:
		s.WriteString(m.renderClientDetail())
	case EntityPolicies:
		s.WriteString(m.renderPolicyDetail())
	case EntityClaims:
		s.WriteString(m.renderClaimDetail())
	case EntityQuotes:
		s.WriteString(m.renderQuoteDetail())
	case EntityWorkflows:
		s.WriteString(m.renderWorkflowDetail())
	}

	s.WriteString("\n\n")
	s.WriteString(m.renderDetailHelp())

	return s.String()
}

func (m Model) renderClientDetail() string {
	client, ok := m.store.GetClient(m.selectedID)
	if !ok {
		return fmt.Sprintf("Error: client not found: %s", m.selectedID)
	}

	var s strings.Builder
	s.WriteString(m.renderField("Name", client.Name))
	s.WriteString(m.renderField("Email", client.Email))
	s.WriteString(m.renderField("Company", client.Company))
	s.WriteString(m.renderField("Status", client.Status))
	s.WriteString(m.renderField("Policies", fmt.Sprintf("%d", client.PolicyCount)))
	if len(client.Tags) > 0 {
		s.WriteString(m.renderField("Tags", strings.Join(client.Tags, ", ")))
	}

	// Related policies
	var related []string
	for _, p := range m.store.Policies() {
		if p.ClientID == client.ID {
			related = append(related, fmt.Sprintf("  %s - %s (%s)", p.PolicyNumber, p.Product, p.Status))
		}
	}
	if len(related) > 0 {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Bold(true).Render("POLICIES"))
		s.WriteString("\n")
		s.WriteString(strings.Join(related, "\n"))
		s.WriteString("\n")
	}

	return s.String()
}

func (m Model) renderPolicyDetail() string {
	policy, ok := m.store.GetPolicy(m.selectedID)
	if !ok {
		return fmt.Sprintf("Error: policy not found: %s", m.selectedID)
	}

	var s strings.Builder
	s.WriteString(m.renderField("Number", policy.PolicyNumber))
	s.WriteString(m.renderField("Product", policy.Product))
	s.WriteString(m.renderField("Carrier", policy.Carrier))
	s.WriteString(m.renderField("Premium", fmt.Sprintf("%d", policy.Premium)))
	s.WriteString(m.renderField("Effective", policy.EffectiveDate))
	s.WriteString(m.renderField("Renewal", policy.RenewalDate))
	s.WriteString(m.renderField("Status", policy.Status))

	if client, ok := m.store.GetClient(policy.ClientID); ok {
		s.WriteString(m.renderField("Client", client.Name))
	}

	// Related claims
	var related []string
	for _, c := range m.store.Claims() {
		if c.PolicyID == policy.ID {
			related = append(related, fmt.Sprintf("  %s - %d (%s)", c.Type, c.Amount, c.Stage))
		}
	}
	if len(related) > 0 {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Bold(true).Render("CLAIMS"))
		s.WriteString("\n")
		s.WriteString(strings.Join(related, "\n"))
		s.WriteString("\n")
	}

	return s.String()
}

func (m Model) renderClaimDetail() string {
	for _, claim := range m.store.Claims() {
		if claim.ID != m.selectedID {
			continue
		}

		var s strings.Builder
		s.WriteString(m.renderField("Type", claim.Type))
		s.WriteString(m.renderField("Amount", fmt.Sprintf("%d", claim.Amount)))
		s.WriteString(m.renderField("Stage", claim.Stage))
		s.WriteString(m.renderField("Handler", claim.Handler))
		s.WriteString(m.renderField("Last Updated", claim.LastUpdated))
		if policy, ok := m.store.GetPolicy(claim.PolicyID); ok {
			s.WriteString(m.renderField("Policy", policy.PolicyNumber))
		}
		if client, ok := m.store.GetClient(claim.ClientID); ok {
			s.WriteString(m.renderField("Client", client.Name))
		}
		return s.String()
	}
	return fmt.Sprintf("Error: claim not found: %s", m.selectedID)
}

func (m Model) renderQuoteDetail() string {
	for _, quote := range m.store.Quotes() {
		if quote.ID != m.selectedID {
			continue
		}

		var s strings.Builder
		s.WriteString(m.renderField("Product", quote.Product))
		s.WriteString(m.renderField("Coverage", fmt.Sprintf("%d", quote.Coverage)))
		s.WriteString(m.renderField("Estimate", fmt.Sprintf("%d", quote.PremiumEstimate)))
		s.WriteString(m.renderField("Probability", fmt.Sprintf("%.0f%%", quote.Probability*100)))
		s.WriteString(m.renderField("Weighted", fmt.Sprintf("%.0f", quote.WeightedPremium())))
		s.WriteString(m.renderField("Notes", quote.Notes))
		if client, ok := m.store.GetClient(quote.ClientID); ok {
			s.WriteString(m.renderField("Client", client.Name))
		}
		return s.String()
	}
	return fmt.Sprintf("Error: quote not found: %s", m.selectedID)
}

func (m Model) renderWorkflowDetail() string {
	for _, workflow := range m.store.Workflows() {
		if workflow.ID != m.selectedID {
			continue
		}

		var s strings.Builder
		s.WriteString(m.renderField("Name", workflow.Name))
		s.WriteString(m.renderField("Trigger", workflow.Trigger))
		active := "no"
		if workflow.Active {
			active = "yes"
		}
		s.WriteString(m.renderField("Active", active))

		if len(workflow.Steps) > 0 {
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Bold(true).Render("STEPS"))
			s.WriteString("\n")
			for i, step := range workflow.Steps {
				line := fmt.Sprintf("  %d. %s", i+1, step.Title)
				if step.Owner != "" {
					line += " (" + step.Owner + ")"
				}
				if step.SLA != "" {
					line += " [SLA " + step.SLA + "]"
				}
				s.WriteString(line)
				s.WriteString("\n")
			}
		}
		return s.String()
	}
	return fmt.Sprintf("Error: workflow not found: %s", m.selectedID)
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fieldLabelStyle.Render(label) + fieldValueStyle.Render(value) + "\n"
}

func (m Model) renderDetailHelp() string {
	help := []string{
		"Esc: Back to list",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.viewMode = ViewList
		m.selectedID = ""
	}
	return m, nil
}
