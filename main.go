// ABOUTME: Entry point for the Atlas MCP server and CLI
// ABOUTME: Routes to MCP server, ops commands, web, TUI, and viz based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/suresphere/atlas/cli"
	"github.com/suresphere/atlas/store"
)

const version = "0.1.0"

func main() {
	// Load env from .env and the XDG config file; branding overrides are
	// read below
	_ = godotenv.Load()
	_ = godotenv.Load(filepath.Join(xdg.ConfigHome, "atlas", "atlas.env"))

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	empty := flag.Bool("empty", false, "Start with an empty store instead of seed data")
	webPort := flag.Int("port", 8080, "Web server port (use with 'web')")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("atlas version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	s := openStore(*empty)

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		if err := cli.MCPCommand(s); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "ops":
		if len(commandArgs) == 0 {
			fmt.Println("Error: ops requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		opsCommand := commandArgs[0]
		opsArgs := commandArgs[1:]

		switch opsCommand {
		// Client commands
		case "add-client":
			if err := cli.AddClientCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-clients":
			if err := cli.ListClientsCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "remove-client":
			if err := cli.RemoveClientCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "export-clients":
			if err := cli.ExportClientsCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "import-clients":
			if err := cli.ImportClientsCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Policy and claim commands
		case "add-policy":
			if err := cli.AddPolicyCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-policies":
			if err := cli.ListPoliciesCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-claims":
			if err := cli.ListClaimsCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "recount-policies":
			if err := cli.RecountPoliciesCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Search and copilot
		case "search":
			if err := cli.SearchCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "ask":
			if err := cli.AskCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Platform configuration
		case "list-modules":
			if err := cli.ListModulesCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "reorder-module":
			if err := cli.ReorderModuleCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "toggles":
			if err := cli.TogglesCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "brand":
			if err := cli.BrandCommand(s, opsArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		default:
			fmt.Printf("Unknown ops command: %s\n\n", opsCommand)
			printUsage()
			os.Exit(1)
		}

	case "viz":
		if len(commandArgs) == 0 {
			fmt.Println("Error: viz requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		vizCommand := commandArgs[0]
		vizArgs := commandArgs[1:]

		switch vizCommand {
		case "dashboard":
			if err := cli.VizDashboardCommand(s, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "portfolio":
			if err := cli.VizPortfolioCommand(s, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "pipeline":
			if err := cli.VizPipelineCommand(s, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "workflow":
			if err := cli.VizWorkflowCommand(s, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown viz command: %s\n\n", vizCommand)
			printUsage()
			os.Exit(1)
		}

	case "ask":
		if err := cli.AskCommand(s, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "web":
		if err := cli.WebCommand(s, *webPort); err != nil {
			log.Fatalf("Web server failed: %v", err)
		}

	case "tui":
		if err := cli.TUICommand(s); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// openStore builds the record store and applies branding overrides from the
// environment.
func openStore(empty bool) *store.Store {
	var s *store.Store
	if empty {
		s = store.New()
	} else {
		s = store.NewSeeded()
	}

	patch := store.ConfigPatch{
		BrandName:  os.Getenv("ATLAS_BRAND_NAME"),
		Theme:      os.Getenv("ATLAS_THEME"),
		AccentMode: os.Getenv("ATLAS_ACCENT_MODE"),
	}
	if patch.BrandName != "" || patch.Theme != "" || patch.AccentMode != "" {
		s.UpdateConfig(patch)
	}

	return s
}

func printUsage() {
	fmt.Printf(`atlas v%s - Broking operations toolkit

USAGE:
  atlas [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --empty                Start with an empty store instead of seed data
  --port <n>             Web server port (default: 8080)

COMMANDS:
  mcp                    Start MCP server for assistant integration
  ops                    Operations management commands
  ask                    Ask the operations copilot a question
  viz                    Visualization commands
  web                    Start the JSON API server
  tui                    Start the interactive terminal interface

OPS COMMANDS:
  atlas ops add-client      Add a new client (duplicates are detected)
    --name <name>             Client name (required)
    --email <email>           Email address (required)
    --company <company>       Company name
    --status <status>         Active, Prospect, or Dormant
    --tags <a|b>              Pipe-separated tags

  atlas ops list-clients    List clients
    --status <status>         Filter by status

  atlas ops remove-client <id>   Remove a client

  atlas ops export-clients  Export clients as CSV
    --output <file>           Output file (default: stdout)

  atlas ops import-clients <file>  Import clients from CSV (skips duplicates)

  atlas ops add-policy      Add a policy
    --number <number>         Carrier policy number (required)
    --client <id>             Owning client ID
    --carrier <name>          Carrier name
    --product <name>          Product line
    --premium <n>             Annual premium
    --effective <date>        Effective date (YYYY-MM-DD)
    --renewal <date>          Renewal date (YYYY-MM-DD)
    --status <status>         Active, Pending, or Lapsed

  atlas ops list-policies   List the policy book
    --client <id>             Filter by client ID

  atlas ops list-claims     List claims
    --stage <stage>           Filter by stage

  atlas ops recount-policies  Reconcile client policy counters

  atlas ops search <terms>  Keyword search across collections
  atlas ops ask <prompt>    Ask the operations copilot

  atlas ops list-modules    Show dashboard modules in order
  atlas ops reorder-module <from> <to>  Move a module
  atlas ops toggles         List feature toggles
    --set <key=value>         Change a toggle
  atlas ops brand           Show or update branding
    --name <name>             Brand name
    --theme <theme>           Theme name
    --accent <mode>           Accent mode

VIZ COMMANDS:
  atlas viz dashboard       ASCII operations dashboard
  atlas viz portfolio       Client/policy/claim graph
  atlas viz pipeline        Quote pipeline by bind probability
  atlas viz workflow [id]   Workflow step chain
    --output <file>           Output file (default: stdout)
    --format <fmt>            dot, png, or svg (default: dot)

ENVIRONMENT:
  ATLAS_BRAND_NAME          Override the brand name
  ATLAS_THEME               Override the theme
  ATLAS_ACCENT_MODE         Override the accent mode
  (loaded from .env when present)
`, version)
}
