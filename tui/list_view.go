// ABOUTME: List view rendering for the TUI
// ABOUTME: Tabbed tables over the dashboard collections with keyword filtering
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/suresphere/atlas/models"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(m.store.Config().BrandName))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.searching {
		s.WriteString(m.searchInput.View())
		s.WriteString("\n\n")
	}

	s.WriteString(m.renderTable())
	s.WriteString("\n\n")

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Clients", "Policies", "Claims", "Quotes", "Workflows"}
	var rendered []string

	for i, tab := range tabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// matchesFilter is the list view's keyword filter against a row's fields.
func (m Model) matchesFilter(fields ...string) bool {
	query := strings.ToLower(strings.TrimSpace(m.searchInput.Value()))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func (m Model) renderTable() string {
	switch m.entityType {
	case EntityClients:
		return m.renderClientsTable()
	case EntityPolicies:
		return m.renderPoliciesTable()
	case EntityClaims:
		return m.renderClaimsTable()
	case EntityQuotes:
		return m.renderQuotesTable()
	case EntityWorkflows:
		return m.renderWorkflowsTable()
	}
	return ""
}

func (m Model) renderClientsTable() string {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Email", Width: 28},
		{Title: "Status", Width: 10},
		{Title: "Policies", Width: 8},
	}

	var rows []table.Row
	for _, c := range m.filteredClients() {
		rows = append(rows, table.Row{
			c.Name,
			c.Email,
			c.Status,
			fmt.Sprintf("%d", c.PolicyCount),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderPoliciesTable() string {
	columns := []table.Column{
		{Title: "Number", Width: 14},
		{Title: "Product", Width: 24},
		{Title: "Premium", Width: 10},
		{Title: "Renewal", Width: 12},
		{Title: "Status", Width: 8},
	}

	var rows []table.Row
	for _, p := range m.filteredPolicies() {
		rows = append(rows, table.Row{
			p.PolicyNumber,
			p.Product,
			fmt.Sprintf("%d", p.Premium),
			p.RenewalDate,
			p.Status,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderClaimsTable() string {
	columns := []table.Column{
		{Title: "Type", Width: 24},
		{Title: "Amount", Width: 10},
		{Title: "Stage", Width: 14},
		{Title: "Handler", Width: 20},
	}

	var rows []table.Row
	for _, c := range m.filteredClaims() {
		rows = append(rows, table.Row{
			c.Type,
			fmt.Sprintf("%d", c.Amount),
			c.Stage,
			c.Handler,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderQuotesTable() string {
	columns := []table.Column{
		{Title: "Product", Width: 26},
		{Title: "Coverage", Width: 12},
		{Title: "Estimate", Width: 10},
		{Title: "Prob", Width: 6},
	}

	var rows []table.Row
	for _, q := range m.filteredQuotes() {
		rows = append(rows, table.Row{
			q.Product,
			fmt.Sprintf("%d", q.Coverage),
			fmt.Sprintf("%d", q.PremiumEstimate),
			fmt.Sprintf("%.0f%%", q.Probability*100),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderWorkflowsTable() string {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Trigger", Width: 24},
		{Title: "Active", Width: 8},
		{Title: "Steps", Width: 6},
	}

	var rows []table.Row
	for _, w := range m.filteredWorkflows() {
		active := "no"
		if w.Active {
			active = "yes"
		}
		rows = append(rows, table.Row{
			w.Name,
			w.Trigger,
			active,
			fmt.Sprintf("%d", len(w.Steps)),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) buildTable(columns []table.Column, rows []table.Row) string {
	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) filteredClients() []models.Client {
	var out []models.Client
	for _, c := range m.store.Clients() {
		if m.matchesFilter(c.Name, c.Email, c.Status) {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) filteredPolicies() []models.Policy {
	var out []models.Policy
	for _, p := range m.store.Policies() {
		if m.matchesFilter(p.PolicyNumber, p.Product, p.Status) {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) filteredClaims() []models.Claim {
	var out []models.Claim
	for _, c := range m.store.Claims() {
		if m.matchesFilter(c.Type, c.Stage, c.Handler) {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) filteredQuotes() []models.Quote {
	var out []models.Quote
	for _, q := range m.store.Quotes() {
		if m.matchesFilter(q.Product, q.Notes) {
			out = append(out, q)
		}
	}
	return out
}

func (m Model) filteredWorkflows() []models.Workflow {
	var out []models.Workflow
	for _, w := range m.store.Workflows() {
		if m.matchesFilter(w.Name, w.Trigger) {
			out = append(out, w)
		}
	}
	return out
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Tab: Switch tabs",
		"Enter: View details",
		"/: Search",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		m.selectedRow++
	case "tab":
		m.entityType = (m.entityType + 1) % entityCount
		m.selectedRow = 0
	case "enter":
		m.viewMode = ViewDetail
		m.selectedID = m.getSelectedID()
	case "/":
		m.searching = true
		m.searchInput.Focus()
	}

	return m, nil
}

func (m Model) getSelectedID() string {
	switch m.entityType {
	case EntityClients:
		clients := m.filteredClients()
		if m.selectedRow < len(clients) {
			return clients[m.selectedRow].ID
		}
	case EntityPolicies:
		policies := m.filteredPolicies()
		if m.selectedRow < len(policies) {
			return policies[m.selectedRow].ID
		}
	case EntityClaims:
		claims := m.filteredClaims()
		if m.selectedRow < len(claims) {
			return claims[m.selectedRow].ID
		}
	case EntityQuotes:
		quotes := m.filteredQuotes()
		if m.selectedRow < len(quotes) {
			return quotes[m.selectedRow].ID
		}
	case EntityWorkflows:
		workflows := m.filteredWorkflows()
		if m.selectedRow < len(workflows) {
			return workflows[m.selectedRow].ID
		}
	}
	return ""
}
