// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server exposing dashboard tools over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/suresphere/atlas/assistant"
	"github.com/suresphere/atlas/handlers"
	"github.com/suresphere/atlas/preview"
	"github.com/suresphere/atlas/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(s *store.Store) error {
	log.Println("Starting Atlas MCP Server...")

	clientHandlers := handlers.NewClientHandlers(s)
	policyHandlers := handlers.NewPolicyHandlers(s)
	claimHandlers := handlers.NewClaimHandlers(s)
	quoteHandlers := handlers.NewQuoteHandlers(s)
	commissionHandlers := handlers.NewCommissionHandlers(s)
	complianceHandlers := handlers.NewComplianceHandlers(s)
	documentHandlers := handlers.NewDocumentHandlers(s, preview.NewGenerator())
	partnerHandlers := handlers.NewPartnerHandlers(s)
	communicationHandlers := handlers.NewCommunicationHandlers(s)
	workflowHandlers := handlers.NewWorkflowHandlers(s)
	queryHandlers := handlers.NewQueryHandlers(s)
	suggestHandlers := handlers.NewSuggestHandlers()
	copilotHandlers := handlers.NewCopilotHandlers(assistant.NewResponder(s))
	configHandlers := handlers.NewConfigHandlers(s)
	promptHandlers := handlers.NewPromptHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "atlas",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_client",
		Description: "Create or update a client, with duplicate detection by name or email",
	}, clientHandlers.UpsertClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_clients",
		Description: "Merge duplicate client data into a surviving record with tag union",
	}, clientHandlers.MergeClients)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_client",
		Description: "Remove a client record; related records are left untouched",
	}, clientHandlers.RemoveClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_policy",
		Description: "Create or update a policy and maintain the owning client's policy count",
	}, policyHandlers.UpsertPolicy)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recount_policies",
		Description: "Reconcile client policy counters against the policy collection",
	}, policyHandlers.RecountPolicies)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_claim",
		Description: "Create or update a claim with stage tracking",
	}, claimHandlers.UpsertClaim)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_quote",
		Description: "Create or update a quote with coverage and bind probability",
	}, quoteHandlers.UpsertQuote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_commission",
		Description: "Create or update a monthly commission record",
	}, commissionHandlers.UpsertCommission)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_compliance_task",
		Description: "Create or update a compliance task",
	}, complianceHandlers.UpsertComplianceTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compliance_due_soon",
		Description: "List open compliance tasks due within a window",
	}, complianceHandlers.ComplianceDueSoon)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upload_document",
		Description: "Store a document and generate an instant text extract preview",
	}, documentHandlers.UploadDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_document",
		Description: "Create or update a document record without generating an extract",
	}, documentHandlers.UpsertDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_partner",
		Description: "Create or update a partner broker or carrier contact",
	}, partnerHandlers.UpsertPartner)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_communication",
		Description: "Create or update a communication thread with sentiment",
	}, communicationHandlers.UpsertCommunication)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "upsert_workflow",
		Description: "Create or update an automation workflow with ordered steps",
	}, workflowHandlers.UpsertWorkflow)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_workflow",
		Description: "Activate or deactivate a workflow",
	}, workflowHandlers.ToggleWorkflow)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_records",
		Description: "Universal query tool for filtering across all dashboard collections (client, policy, claim, quote, commission, compliance, document, partner, communication, workflow)",
	}, queryHandlers.QueryRecords)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "global_search",
		Description: "Keyword search across clients, policies, claims, quotes, partners, and workflows",
	}, queryHandlers.GlobalSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_field_values",
		Description: "Canned field suggestions, including premium estimates from a coverage amount",
	}, suggestHandlers.SuggestFieldValues)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_copilot",
		Description: "Ask the scripted operations copilot about renewals, claims, or the portfolio",
	}, copilotHandlers.AskCopilot)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_config",
		Description: "Read the platform branding and module configuration",
	}, configHandlers.GetConfig)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_config",
		Description: "Patch branding, theme, accent mode, or feature toggles",
	}, configHandlers.UpdateConfig)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reorder_modules",
		Description: "Move a dashboard module to a new position",
	}, configHandlers.ReorderModules)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_modules",
		Description: "List dashboard modules in their configured order",
	}, configHandlers.ListModules)

	server.AddPrompt(&mcp.Prompt{
		Name:        "client-summary",
		Description: "Comprehensive client summary with policy book and claims",
		Arguments: []*mcp.PromptArgument{
			{Name: "client_id", Description: "Client ID to summarize", Required: true},
		},
	}, promptHandlers.GetPrompt)

	server.AddPrompt(&mcp.Prompt{
		Name:        "renewal-strategy",
		Description: "Renewal strategy briefing for the policy book",
	}, promptHandlers.GetPrompt)

	server.AddPrompt(&mcp.Prompt{
		Name:        "claims-triage",
		Description: "Claims workload triage briefing",
	}, promptHandlers.GetPrompt)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
