// ABOUTME: Visualization CLI commands
// ABOUTME: Handles viz dashboard and graph generation commands
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"
	"github.com/suresphere/atlas/store"
	"github.com/suresphere/atlas/viz"
)

// VizDashboardCommand prints the ASCII operations dashboard.
func VizDashboardCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz dashboard", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	stats := viz.GenerateDashboardStats(s)
	fmt.Print(viz.RenderDashboard(stats))
	return nil
}

// VizPortfolioCommand generates the client/policy/claim graph.
func VizPortfolioCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz portfolio", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	format := fs.String("format", "dot", "Output format: dot, png, svg")
	if err := fs.Parse(args); err != nil {
		return err
	}

	generator := viz.NewGraphGenerator(s)
	dot, err := generator.GeneratePortfolioGraph()
	if err != nil {
		return err
	}
	return writeGraph(dot, *output, *format)
}

// VizPipelineCommand renders open quotes grouped by bind probability.
func VizPipelineCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz pipeline", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	format := fs.String("format", "dot", "Output format: dot, png, svg")
	if err := fs.Parse(args); err != nil {
		return err
	}

	generator := viz.NewGraphGenerator(s)
	dot, err := generator.GeneratePipelineGraph()
	if err != nil {
		return err
	}
	return writeGraph(dot, *output, *format)
}

// VizWorkflowCommand renders a workflow's step chain.
func VizWorkflowCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz workflow", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	format := fs.String("format", "dot", "Output format: dot, png, svg")
	if err := fs.Parse(args); err != nil {
		return err
	}

	workflowID := ""
	if fs.NArg() > 0 {
		workflowID = fs.Arg(0)
	}

	generator := viz.NewGraphGenerator(s)
	dot, err := generator.GenerateWorkflowGraph(workflowID)
	if err != nil {
		return err
	}
	return writeGraph(dot, *output, *format)
}

// writeGraph writes a DOT document as text or rasterizes it first.
// Image formats require an output file.
func writeGraph(dot, output, format string) error {
	var imageFormat graphviz.Format
	switch format {
	case "dot":
		if output != "" {
			return os.WriteFile(output, []byte(dot), 0644)
		}
		fmt.Println(dot)
		return nil
	case "png":
		imageFormat = graphviz.PNG
	case "svg":
		imageFormat = graphviz.SVG
	default:
		return fmt.Errorf("unknown format: %s (expected dot, png, or svg)", format)
	}

	if output == "" {
		return fmt.Errorf("--output is required for %s format", format)
	}
	img, err := viz.RenderImage(dot, imageFormat)
	if err != nil {
		return err
	}
	return os.WriteFile(output, img, 0644)
}
