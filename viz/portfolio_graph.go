// ABOUTME: Portfolio graph generation linking clients, policies, and claims
// ABOUTME: Generates DOT visualizations of the book of business
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/suresphere/atlas/store"
)

type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(s *store.Store) *GraphGenerator {
	return &GraphGenerator{store: s}
}

// GeneratePortfolioGraph creates a graph linking clients to their policies
// and policies to their claims.
func (g *GraphGenerator) GeneratePortfolioGraph() (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() {
		if err := gv.Close(); err != nil {
			fmt.Printf("Error closing graphviz: %v\n", err)
		}
	}()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			fmt.Printf("Error closing graph: %v\n", err)
		}
	}()

	graph.SetLabel("Portfolio Graph")
	graph.SetRankDir(cgraph.LRRank)

	// Client nodes
	clientNodes := make(map[string]*cgraph.Node)
	for _, client := range g.store.Clients() {
		node, err := graph.CreateNodeByName(fmt.Sprintf("client_%s", client.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create client node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n%s", client.Name, client.Status))
		node.SetShape("box")
		node.SetStyle("filled")
		node.SetFillColor("lightblue")
		clientNodes[client.ID] = node
	}

	// Policy nodes
	policyNodes := make(map[string]*cgraph.Node)
	for _, policy := range g.store.Policies() {
		node, err := graph.CreateNodeByName(fmt.Sprintf("policy_%s", policy.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create policy node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n%s", policy.Product, policy.PolicyNumber))
		node.SetShape("ellipse")
		node.SetStyle("filled")
		node.SetFillColor("lightgreen")
		policyNodes[policy.ID] = node

		if clientNode, ok := clientNodes[policy.ClientID]; ok {
			edge, err := graph.CreateEdgeByName("covers", clientNode, node)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetLabel("holds")
		}
	}

	// Claim nodes
	for _, claim := range g.store.Claims() {
		node, err := graph.CreateNodeByName(fmt.Sprintf("claim_%s", claim.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create claim node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n%s", claim.Type, claim.Stage))
		node.SetShape("diamond")
		node.SetStyle("filled")
		node.SetFillColor("lightyellow")

		if policyNode, ok := policyNodes[claim.PolicyID]; ok {
			edge, err := graph.CreateEdgeByName("claim", policyNode, node)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetLabel("claim")
			edge.SetStyle("dashed")
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}

// GeneratePipelineGraph renders open quotes grouped by bind probability.
// The pipeline spine runs early -> working -> closing, with each quote
// hanging off its stage.
func (g *GraphGenerator) GeneratePipelineGraph() (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() {
		if err := gv.Close(); err != nil {
			fmt.Printf("Error closing graphviz: %v\n", err)
		}
	}()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			fmt.Printf("Error closing graph: %v\n", err)
		}
	}()

	graph.SetLabel("Quote Pipeline")
	graph.SetRankDir(cgraph.LRRank)

	stages := []struct {
		name  string
		label string
		color string
	}{
		{"stage_early", "Early\n< 40%", "lightgray"},
		{"stage_working", "Working\n40-70%", "lightyellow"},
		{"stage_closing", "Closing\n> 70%", "lightgreen"},
	}
	stageNodes := make([]*cgraph.Node, len(stages))
	for i, stage := range stages {
		node, err := graph.CreateNodeByName(stage.name)
		if err != nil {
			return "", fmt.Errorf("failed to create stage node: %w", err)
		}
		node.SetLabel(stage.label)
		node.SetShape("box")
		node.SetStyle("filled")
		node.SetFillColor(stage.color)
		stageNodes[i] = node

		if i > 0 {
			edge, err := graph.CreateEdgeByName("", stageNodes[i-1], node)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetStyle("bold")
		}
	}

	clientNames := make(map[string]string)
	for _, client := range g.store.Clients() {
		clientNames[client.ID] = client.Name
	}

	for _, quote := range g.store.Quotes() {
		node, err := graph.CreateNodeByName(fmt.Sprintf("quote_%s", quote.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create quote node: %w", err)
		}
		label := fmt.Sprintf("%s\n$%d (%.0f%%)", quote.Product, quote.PremiumEstimate, quote.Probability*100)
		if name, ok := clientNames[quote.ClientID]; ok {
			label = fmt.Sprintf("%s\n%s", name, label)
		}
		node.SetLabel(label)
		node.SetShape("ellipse")

		stage := stageNodes[0]
		switch {
		case quote.Probability > 0.7:
			stage = stageNodes[2]
		case quote.Probability >= 0.4:
			stage = stageNodes[1]
		}
		edge, err := graph.CreateEdgeByName("", stage, node)
		if err != nil {
			return "", fmt.Errorf("failed to create edge: %w", err)
		}
		edge.SetStyle("dashed")
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}

// RenderImage rasterizes a DOT document into the given image format.
func RenderImage(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() {
		if err := gv.Close(); err != nil {
			fmt.Printf("Error closing graphviz: %v\n", err)
		}
	}()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph: %w", err)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			fmt.Printf("Error closing graph: %v\n", err)
		}
	}()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, format, &buf); err != nil {
		return nil, fmt.Errorf("failed to render image: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateWorkflowGraph renders a workflow's steps as an ordered chain.
func (g *GraphGenerator) GenerateWorkflowGraph(workflowID string) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() {
		if err := gv.Close(); err != nil {
			fmt.Printf("Error closing graphviz: %v\n", err)
		}
	}()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			fmt.Printf("Error closing graph: %v\n", err)
		}
	}()

	graph.SetRankDir(cgraph.LRRank)

	for _, workflow := range g.store.Workflows() {
		if workflowID != "" && workflow.ID != workflowID {
			continue
		}

		trigger, err := graph.CreateNodeByName(fmt.Sprintf("trigger_%s", workflow.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create trigger node: %w", err)
		}
		label := workflow.Trigger
		if label == "" {
			label = "manual"
		}
		trigger.SetLabel(fmt.Sprintf("%s\n(%s)", workflow.Name, label))
		trigger.SetShape("box")
		trigger.SetStyle("filled")
		if workflow.Active {
			trigger.SetFillColor("lightgreen")
		} else {
			trigger.SetFillColor("lightgray")
		}

		prev := trigger
		for _, step := range workflow.Steps {
			node, err := graph.CreateNodeByName(fmt.Sprintf("step_%s", step.ID))
			if err != nil {
				return "", fmt.Errorf("failed to create step node: %w", err)
			}
			stepLabel := step.Title
			if step.SLA != "" {
				stepLabel = fmt.Sprintf("%s\nSLA %s", step.Title, step.SLA)
			}
			node.SetLabel(stepLabel)
			node.SetShape("ellipse")

			edge, err := graph.CreateEdgeByName("", prev, node)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			if step.Owner != "" {
				edge.SetLabel(step.Owner)
			}
			prev = node
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}
