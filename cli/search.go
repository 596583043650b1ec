// ABOUTME: Global search and copilot CLI commands
// ABOUTME: Keyword search across collections and scripted assistant access
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/suresphere/atlas/assistant"
	"github.com/suresphere/atlas/store"
)

// SearchCommand runs a keyword search across the dashboard collections.
func SearchCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	_ = fs.Parse(args)

	query := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is required")
	}

	results := s.GlobalSearch(query)
	if len(results) == 0 {
		fmt.Println("No matches found")
		return nil
	}

	for _, r := range results {
		fmt.Printf("  %s  %s\n", r.ID, r.Label)
	}
	fmt.Printf("\nTotal: %d match(es)\n", len(results))
	return nil
}

// AskCommand sends a prompt to the scripted copilot and prints the answer.
func AskCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	_ = fs.Parse(args)

	prompt := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("prompt is required")
	}

	conv := assistant.NewConversation(assistant.NewResponder(s))
	reply := conv.Ask(prompt)
	fmt.Println(reply.Content)
	return nil
}
