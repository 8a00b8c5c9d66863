// cmd/personasweep/main.go
package main

import (
	cmd "github.com/mwiater/personasweep/internal/commands"
)

// Populated at build time via -ldflags "-X main.version=... -X main.commit=...
// -X main.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the personasweep CLI application by delegating to the
// cobra root command defined in the commands package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
