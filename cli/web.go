// ABOUTME: Web server subcommand
// ABOUTME: Starts the JSON API server
package cli

import (
	"github.com/suresphere/atlas/store"
	"github.com/suresphere/atlas/web"
)

// WebCommand starts the JSON API server on the given port.
func WebCommand(s *store.Store, port int) error {
	return web.NewServer(s).Start(port)
}
